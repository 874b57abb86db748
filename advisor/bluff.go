package advisor

import (
	"fmt"
	"sort"

	"github.com/apbharucha/poker/advisor/model"
	"github.com/apbharucha/poker/poker"
)

// BoardThreat scores how threatening the community cards look, in
// [0.1,0.8]. Flush draws, connected ranks, and high-card density all push
// the score up; a ragged rainbow board stays near the floor.
func BoardThreat(community []poker.Card) float64 {
	threat := boardThreatBase

	var suitCounts [4]int
	for _, c := range community {
		suitCounts[c.Suit]++
	}
	for _, count := range suitCounts {
		if count >= 3 {
			threat += boardThreatFlushBonus
			break
		}
	}

	threat += connectivityBonus(community)

	if len(community) > 0 {
		high := 0
		for _, c := range community {
			if c.Rank >= poker.Ten {
				high++
			}
		}
		threat += boardThreatHighCardMax * float64(high) / float64(len(community))
	}

	return clamp(threat, boardThreatFloor, boardThreatCeiling)
}

// connectivityBonus adds for each adjacent pair of distinct ranks on the
// board, capped so a fully connected runout does not dominate the score.
func connectivityBonus(community []poker.Card) float64 {
	if len(community) < 2 {
		return 0
	}

	ranks := make([]int, 0, len(community))
	seen := make(map[int]bool)
	for _, c := range community {
		if !seen[c.Value()] {
			seen[c.Value()] = true
			ranks = append(ranks, c.Value())
		}
	}
	sort.Ints(ranks)

	bonus := 0.0
	for i := 1; i < len(ranks); i++ {
		if ranks[i]-ranks[i-1] == 1 {
			bonus += boardThreatConnectBonus
		}
	}
	if bonus > boardThreatConnectCap {
		bonus = boardThreatConnectCap
	}
	return bonus
}

// BluffSuccessProbability estimates the chance a bluff takes the pot, as a
// percentage in [5,90]. The street baseline (optionally replaced by a
// learned rate with enough samples) is discounted for every extra opponent,
// credited for board threat and sizing aggression, and debited for opponent
// aggression.
func BluffSuccessProbability(street Street, activePlayers int, boardThreat, betSize, pot float64, profile OpponentProfile, params model.Parameters) float64 {
	estimate := bluffBaseline(street)
	if learned, ok := params.BluffRate(string(street)); ok {
		estimate = learned
	}

	if activePlayers > 1 {
		estimate -= bluffMultiwayPenalty * float64(activePlayers-1)
	}

	sizingAggression := 0.0
	if pot > 0 {
		sizingAggression = clamp(betSize/pot*100, 0, 100)
	}
	bonus := boardThreat*100*bluffThreatWeight + sizingAggression*bluffSizingWeight
	if bonus > bluffBonusCap {
		bonus = bluffBonusCap
	}
	estimate += bonus

	penalty := profile.AggressionScore() * 100 * bluffAggressionWeight
	if penalty > bluffAggressionCap {
		penalty = bluffAggressionCap
	}
	estimate -= penalty

	return clamp(estimate, bluffSuccessFloor, bluffSuccessCeiling)
}

func bluffBaseline(street Street) float64 {
	switch street {
	case StreetPreflop:
		return bluffBaselinePreflop
	case StreetFlop:
		return bluffBaselineFlop
	case StreetTurn:
		return bluffBaselineTurn
	default:
		return bluffBaselineRiver
	}
}

// DetectBluffOpportunity flags spots where a deliberate bluff rates to
// succeed: river bets with no showdown value on scary boards, flop and turn
// semi-bluffs, and preflop steals against short-handed passive tables. It
// returns nil when no spot qualifies or when the caller is already
// committed to bluffing.
func DetectBluffOpportunity(strength, winProb float64, ctx GameContext, profile OpponentProfile, params model.Parameters) *BluffOpportunity {
	if ctx.ForceBluff {
		return nil
	}

	threat := BoardThreat(ctx.CommunityCards)
	aggression := profile.AggressionScore()

	switch ctx.Street {
	case StreetRiver:
		if strength < oppRiverMaxStrength && winProb < oppRiverMaxWinProb && threat >= oppThreatMin && aggression <= oppMaxAggression {
			odds := BluffSuccessProbability(ctx.Street, ctx.ActivePlayers, threat, strongBetPotFraction*ctx.Pot, ctx.Pot, profile, params)
			return &BluffOpportunity{
				Reason:          "No showdown value on a scary river against opponents who rarely fight back. A confident bet represents the nut hands this board hits.",
				SuggestedAction: ActionBet,
				SuccessOdds:     odds,
			}
		}

	case StreetFlop, StreetTurn:
		if strength >= oppSemiBluffMinStrength && strength <= oppSemiBluffMaxStrength && threat >= oppThreatMin {
			odds := BluffSuccessProbability(ctx.Street, ctx.ActivePlayers, threat, mediumBetPotFraction*ctx.Pot, ctx.Pot, profile, params)
			return &BluffOpportunity{
				Reason:          "Semi-bluff spot: the hand has live outs and the board threatens ranges that check. Betting wins now or improves later.",
				SuggestedAction: ActionBet,
				SuccessOdds:     odds,
			}
		}

	case StreetPreflop:
		if ctx.ActivePlayers >= oppStealMinPlayers && ctx.ActivePlayers <= oppStealMaxPlayers && aggression <= oppMaxAggression {
			odds := clamp(65-10*float64(ctx.ActivePlayers-1), bluffSuccessFloor, bluffSuccessCeiling)
			return &BluffOpportunity{
				Reason:          fmt.Sprintf("Short-handed pot (%d opponents) against passive players: a steal raise takes the blinds uncontested most of the time.", ctx.ActivePlayers),
				SuggestedAction: ActionRaise,
				SuccessOdds:     odds,
			}
		}
	}

	return nil
}
