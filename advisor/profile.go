package advisor

// Tightness classifies how selective the table's opponents are preflop.
type Tightness string

const (
	TightnessTight    Tightness = "tight"
	TightnessLoose    Tightness = "loose"
	TightnessBalanced Tightness = "balanced"
)

// Style classifies how the table's opponents put chips in.
type Style string

const (
	StyleAggressive Style = "aggressive"
	StylePassive    Style = "passive"
	StyleBalanced   Style = "balanced"
)

// OpponentProfile aggregates the tracked tendencies of all opponents in the
// hand into a single table read.
type OpponentProfile struct {
	VPIP             float64
	PFR              float64
	AggressionFactor float64
	BluffFrequency   float64
	FoldToAggression float64
	Tightness        Tightness
	Style            Style
}

// NeutralProfile is the fallback when no opponent statistics are available.
// It classifies as balanced on both axes so no tendency adjustment applies.
func NeutralProfile() OpponentProfile {
	return OpponentProfile{
		VPIP:             25,
		PFR:              15,
		AggressionFactor: 1.5,
		BluffFrequency:   0.3,
		FoldToAggression: 0.5,
		Tightness:        TightnessBalanced,
		Style:            StyleBalanced,
	}
}

// BuildOpponentProfile averages per-opponent statistics and classifies the
// result. An empty map yields the neutral profile.
func BuildOpponentProfile(opponents map[string]OpponentStats) OpponentProfile {
	if len(opponents) == 0 {
		return NeutralProfile()
	}

	var p OpponentProfile
	for _, s := range opponents {
		p.VPIP += s.VPIP
		p.PFR += s.PFR
		p.AggressionFactor += s.AggressionFactor
		p.BluffFrequency += s.BluffFrequency
		p.FoldToAggression += s.FoldToAggression
	}
	n := float64(len(opponents))
	p.VPIP /= n
	p.PFR /= n
	p.AggressionFactor /= n
	p.BluffFrequency /= n
	p.FoldToAggression /= n

	p.Tightness = classifyTightness(p.VPIP)
	p.Style = classifyStyle(p.AggressionFactor, p.PFR)
	return p
}

// AggressionScore normalizes the aggression factor to [0,1], where 1 means
// an opponent who bets and raises three times as often as they call.
func (p OpponentProfile) AggressionScore() float64 {
	score := p.AggressionFactor / 3.0
	if score > 1 {
		return 1
	}
	if score < 0 {
		return 0
	}
	return score
}

func classifyTightness(vpip float64) Tightness {
	switch {
	case vpip < tightVPIP:
		return TightnessTight
	case vpip > looseVPIP:
		return TightnessLoose
	default:
		return TightnessBalanced
	}
}

func classifyStyle(af, pfr float64) Style {
	switch {
	case af > aggressiveAF || pfr > aggressivePFR:
		return StyleAggressive
	case af < passiveAF:
		return StylePassive
	default:
		return StyleBalanced
	}
}
