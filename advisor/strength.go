package advisor

import (
	"math"

	"github.com/apbharucha/poker/evaluator"
	"github.com/apbharucha/poker/poker"
)

// HandStrength converts hole plus community cards into a normalized [0,1]
// strength. Preflop strength is a closed-form function of the two hole
// cards; postflop strength is a step function of the best-hand category.
// Within-category granularity is deliberately discarded here; the full
// tiebreak value is only used for hand-vs-hand comparison.
func HandStrength(hole, community []poker.Card) float64 {
	if len(community) == 0 {
		return preflopStrength(hole)
	}
	return categoryStrength(evaluator.BestHand(hole, community).Category)
}

func preflopStrength(hole []poker.Card) float64 {
	if len(hole) < 2 {
		return 0
	}

	high, low := hole[0].Rank, hole[1].Rank
	if low > high {
		high, low = low, high
	}

	if high == low {
		switch {
		case high >= poker.Queen:
			return preflopPremiumPairScore
		case high >= poker.Ten:
			return preflopStrongPairScore
		case high >= poker.Eight:
			return preflopMediumPairScore
		default:
			return preflopSmallPairScore
		}
	}

	strength := preflopNonPairBase
	switch {
	case high >= poker.Queen:
		strength += preflopHighCardQueen
	case high >= poker.Ten:
		strength += preflopHighCardTen
	case high >= poker.Eight:
		strength += preflopHighCardEight
	}

	if hole[0].Suit == hole[1].Suit {
		strength += preflopSuitedBonus
	}

	gap := int(high) - int(low) - 1
	switch {
	case gap <= 1:
		strength += preflopConnectorGap1
	case gap <= 3:
		strength += preflopConnectorGap3
	}

	return math.Min(strength, preflopStrengthCap)
}

func categoryStrength(category evaluator.HandCategory) float64 {
	switch category {
	case evaluator.RoyalFlush, evaluator.StraightFlush:
		return strengthStraightFlush
	case evaluator.FourOfAKind:
		return strengthQuads
	case evaluator.FullHouse:
		return strengthFullHouse
	case evaluator.Flush:
		return strengthFlush
	case evaluator.Straight:
		return strengthStraight
	case evaluator.ThreeOfAKind:
		return strengthTrips
	case evaluator.TwoPair:
		return strengthTwoPair
	case evaluator.OnePair:
		return strengthPair
	default:
		return strengthHighCard
	}
}

// WinProbability estimates the chance of winning at showdown as a
// percentage in [5,95]. The adjustments apply in a fixed order: opponent
// count discount, street multiplier, opponent tendencies, stack psychology,
// then the final clamp. Reordering would shift results at the margins, so
// the order is part of the contract.
func WinProbability(hole, community []poker.Card, activePlayers int, street Street, profile OpponentProfile, psych StackPsychology) float64 {
	strength := HandStrength(hole, community)
	prob := strength

	if activePlayers > 1 {
		prob *= math.Pow(opponentDiscountFactor, float64(activePlayers-1))
	}

	prob *= streetFactor(street)
	prob *= tendencyFactor(strength, profile)
	prob *= stackFactor(strength, psych)

	return clamp(prob*100, winProbFloor, winProbCeiling)
}

func streetFactor(street Street) float64 {
	switch street {
	case StreetPreflop:
		return streetFactorPreflop
	case StreetFlop:
		return streetFactorFlop
	case StreetTurn:
		return streetFactorTurn
	default:
		return streetFactorRiver
	}
}

func tendencyFactor(strength float64, profile OpponentProfile) float64 {
	factor := 1.0

	switch profile.Tightness {
	case TightnessTight:
		factor *= tightOpponentFactor
	case TightnessLoose:
		factor *= looseOpponentFactor
	}

	switch profile.Style {
	case StyleAggressive:
		if strength < 0.6 {
			factor *= aggressiveOpponentFactor
		}
	case StylePassive:
		factor *= passiveOpponentFactor
	}

	return factor
}

func stackFactor(strength float64, psych StackPsychology) float64 {
	factor := 1.0
	if psych.HasShortOpponent && strength >= 0.50 {
		factor *= shortOpponentFactor
	}
	if psych.HasDeepOpponent && strength < 0.60 {
		factor *= deepOpponentFactor
	}
	if psych.HeroDepth == StackShort && strength < 0.55 {
		factor *= heroShortFactor
	}
	return factor
}
