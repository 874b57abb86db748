package advisor

// StackDepth tiers a stack by big blind count.
type StackDepth string

const (
	StackShort  StackDepth = "short"  // < 20 BB
	StackMedium StackDepth = "medium" // 20-50 BB
	StackDeep   StackDepth = "deep"   // > 50 BB
)

// StackPressure describes the hero's position relative to the table's stacks.
type StackPressure string

const (
	PressureFacingDeep  StackPressure = "facing-deep"
	PressureFacingShort StackPressure = "facing-short"
	PressureBalanced    StackPressure = "balanced"
)

// StackPsychology captures the stack-size dynamics that skew decisions:
// desperation when the hero is getting short, intimidation when covered by
// much deeper opponents.
type StackPsychology struct {
	HeroBB            float64
	HeroDepth         StackDepth
	AvgOpponentBB     float64
	DesperationScore  float64 // 0-100, rises as hero falls below 30 BB
	IntimidationScore float64 // 0-100, rises as the biggest opponent covers hero
	Pressure          StackPressure
	HasShortOpponent  bool
	HasDeepOpponent   bool
}

// NeutralStackPsychology is the fallback when no stack information is
// available: medium depth, balanced pressure, zero adjustment everywhere.
func NeutralStackPsychology() StackPsychology {
	return StackPsychology{
		HeroDepth: StackMedium,
		Pressure:  PressureBalanced,
	}
}

// AnalyzeStacks classifies hero and opponent stacks and derives the
// desperation and intimidation scores. A zero big blind or missing opponent
// stacks yields the neutral result.
func AnalyzeStacks(heroStack, startingStack, bigBlind float64, opponentStacks []float64) StackPsychology {
	if bigBlind <= 0 {
		return NeutralStackPsychology()
	}

	psych := StackPsychology{
		HeroBB:   heroStack / bigBlind,
		Pressure: PressureBalanced,
	}
	psych.HeroDepth = classifyDepth(psych.HeroBB)
	psych.DesperationScore = desperationScore(psych.HeroBB, heroStack, startingStack)

	if len(opponentStacks) == 0 {
		return psych
	}

	var sum, largest float64
	for _, s := range opponentStacks {
		bb := s / bigBlind
		sum += bb
		if s > largest {
			largest = s
		}
		switch classifyDepth(bb) {
		case StackShort:
			psych.HasShortOpponent = true
		case StackDeep:
			psych.HasDeepOpponent = true
		}
	}
	psych.AvgOpponentBB = sum / float64(len(opponentStacks))
	psych.IntimidationScore = intimidationScore(heroStack, largest)

	switch {
	case psych.AvgOpponentBB > psych.HeroBB*facingDeepRatio:
		psych.Pressure = PressureFacingDeep
	case psych.AvgOpponentBB < psych.HeroBB*facingShortRatio:
		psych.Pressure = PressureFacingShort
	}

	return psych
}

// SizingMultiplier scales aggressive bet sizing for stack dynamics: short
// heroes size up to maximize fold equity before blinding out, deep heroes
// size down to control pots.
func (sp StackPsychology) SizingMultiplier() float64 {
	mult := 1.0
	switch sp.HeroDepth {
	case StackShort:
		mult *= heroShortSizingFactor
	case StackDeep:
		mult *= heroDeepSizingFactor
	}
	switch sp.Pressure {
	case PressureFacingShort:
		mult *= facingShortSizingFactor
	case PressureFacingDeep:
		mult *= facingDeepSizingFactor
	}
	return mult
}

// SmallCallThresholdBB is the largest call, in big blinds, treated as cheap
// for a medium-strength hand.
func (sp StackPsychology) SmallCallThresholdBB() float64 {
	switch {
	case sp.HeroDepth == StackShort:
		return smallCallShortBB
	case sp.Pressure == PressureFacingShort:
		return smallCallPressedBB
	default:
		return smallCallBB
	}
}

func classifyDepth(bb float64) StackDepth {
	switch {
	case bb < shortStackBB:
		return StackShort
	case bb > deepStackBB:
		return StackDeep
	default:
		return StackMedium
	}
}

// desperationScore rises linearly as the hero's stack falls below 30 BB and
// gets a flat boost once more than half the starting stack is gone.
func desperationScore(heroBB, heroStack, startingStack float64) float64 {
	var score float64
	if heroBB < desperationOnsetBB {
		score = (desperationOnsetBB - heroBB) / desperationOnsetBB * 100
	}
	if startingStack > 0 && heroStack < startingStack/2 {
		score += 25
	}
	return clamp(score, 0, 100)
}

// intimidationScore rises as the largest opponent stack exceeds the hero's
// by a growing multiple; twice covered scores 50, three times covered 100.
func intimidationScore(heroStack, largestOpponent float64) float64 {
	if heroStack <= 0 || largestOpponent <= heroStack {
		return 0
	}
	ratio := largestOpponent / heroStack
	return clamp((ratio-1)*50, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
