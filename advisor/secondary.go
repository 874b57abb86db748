package advisor

import "math"

// SecondaryFor derives the alternative line from the primary action: it
// trades aggression for caution or vice versa. It returns nil when the
// primary has no sensible counterpart.
func SecondaryFor(primary Decision, ctx GameContext) *SecondaryLine {
	switch primary.Action {
	case ActionBet:
		return &SecondaryLine{
			Action:    ActionCheck,
			Reasoning: "Check instead to control the pot and induce bluffs.",
		}
	case ActionRaise:
		if ctx.CallAmount > 0 {
			return &SecondaryLine{
				Action:    ActionCall,
				Amount:    ctx.CallAmount,
				Reasoning: "Flat call instead to keep the pot small and the bettor's bluffs in.",
			}
		}
		return &SecondaryLine{
			Action:    ActionCheck,
			Reasoning: "Decline the raise and take the passive line this time.",
		}
	case ActionAllIn:
		if ctx.CallAmount > 0 {
			return &SecondaryLine{
				Action:    ActionCall,
				Amount:    ctx.CallAmount,
				Reasoning: "Just call instead and keep options open for later streets.",
			}
		}
		return &SecondaryLine{
			Action:    ActionBet,
			Amount:    strongBetPotFraction * ctx.Pot,
			Reasoning: "Bet large instead of shoving to keep worse hands in.",
		}
	case ActionCall:
		return &SecondaryLine{
			Action:    ActionRaise,
			Amount:    math.Max(minRaiseSize(ctx), bluffRaiseCallMultiple*ctx.CallAmount),
			Reasoning: "Raise instead to put maximum pressure on marginal hands.",
		}
	case ActionCheck:
		return &SecondaryLine{
			Action:    ActionBet,
			Amount:    math.Max(probeBetPotFraction*ctx.Pot, ctx.BigBlind),
			Reasoning: "Small probe bet instead to pick up the pot uncontested.",
		}
	case ActionFold:
		if ctx.CallAmount == 0 {
			return &SecondaryLine{
				Action:    ActionCheck,
				Reasoning: "Check instead; the fold gives up a free card.",
			}
		}
		return &SecondaryLine{
			Action:    ActionCall,
			Amount:    ctx.CallAmount,
			Reasoning: "Call instead if the bettor is capable of bluffing here.",
		}
	default:
		return nil
	}
}

// PrimaryFrequency computes the 50-100 weighting of the primary action
// versus the secondary line. The bigger the edge of win probability over
// pot odds, the more the primary dominates. Bluff intent shifts weight
// toward whichever line is the aggressive one.
func PrimaryFrequency(primary Decision, secondary *SecondaryLine, winProb, potOdds float64, bluffIntent bool) int {
	freq := frequencyBase + int(math.Min(frequencyEdgeCap, math.Floor((winProb-potOdds)/5)))

	if bluffIntent && secondary != nil {
		if primary.Action.IsAggressive() {
			freq += frequencyBluffBoost
		} else if secondary.Action.IsAggressive() {
			freq -= frequencyBluffCut
		}
	}

	if freq < frequencyFloor {
		freq = frequencyFloor
	}
	if freq > frequencyCeiling {
		freq = frequencyCeiling
	}
	return freq
}
