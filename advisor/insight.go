package advisor

// GeneratePlayerInsight produces a loose natural-language read of an
// opponent's betting line plus a bluff-likelihood percentage. It applies
// the same style of ordered threshold rules as the decision engine, keyed
// on the count of aggressive actions in the observed sequence.
func GeneratePlayerInsight(actions []ObservedAction, game GameContext, profile OpponentProfile) InsightSummary {
	raises := 0
	calls := 0
	for _, a := range actions {
		switch {
		case a.Type.IsAggressive():
			raises++
		case a.Type == ActionCall:
			calls++
		}
	}

	var read string
	switch {
	case raises >= 3:
		read = "Relentless aggression polarizes the range: either a monster or a committed bluff, little in between."
	case raises == 2:
		read = "Repeated aggression across streets points at a strong made hand range with some draws mixed in."
	case raises == 1 && calls > 0:
		read = "One raise then calls reads like a decent made hand keeping the pot in check."
	case raises == 1:
		read = "A single raise suggests a real hand or a strong draw opening for value."
	case calls >= 2:
		read = "A passive calling line fits a wide range of draws and marginal pairs hoping to get there cheap."
	default:
		read = "A quiet line so far; the range is wide and undefined."
	}

	likelihood := profile.BluffFrequency * 100
	if likelihood == 0 {
		likelihood = 25
	}

	// Heavy aggression carries more bluffs; calls carry almost none.
	likelihood += 8 * float64(max(0, raises-1))
	likelihood -= 10 * float64(calls)

	switch game.Street {
	case StreetRiver:
		// Missed draws turn into river bluffs
		likelihood += 10
	case StreetPreflop:
		likelihood -= 5
	}

	if profile.Style == StyleAggressive {
		likelihood += 10
	}
	if profile.Tightness == TightnessTight {
		likelihood -= 5
	}

	return InsightSummary{
		RangeRead:       read,
		BluffLikelihood: clamp(likelihood, 5, 90),
	}
}
