// Package advisor derives heuristic action recommendations from a snapshot
// of live game state. Every public function is a pure computation over its
// arguments; the engine performs no I/O and keeps no state between calls
// apart from the optional historical-parameter cache it is handed.
package advisor

import (
	"github.com/apbharucha/poker/evaluator"
	"github.com/apbharucha/poker/poker"
)

// Street identifies the betting round
type Street string

const (
	StreetPreflop Street = "preflop"
	StreetFlop    Street = "flop"
	StreetTurn    Street = "turn"
	StreetRiver   Street = "river"
)

// Action is a recommended player action
type Action string

const (
	ActionFold  Action = "fold"
	ActionCheck Action = "check"
	ActionCall  Action = "call"
	ActionBet   Action = "bet"
	ActionRaise Action = "raise"
	ActionAllIn Action = "all-in"
)

// IsAggressive reports whether the action puts chips in voluntarily beyond a call.
func (a Action) IsAggressive() bool {
	return a == ActionBet || a == ActionRaise || a == ActionAllIn
}

// ObservedAction is one entry in the chronological action history of a hand.
type ObservedAction struct {
	Type   Action  `json:"type"`
	Amount float64 `json:"amount"`
}

// OpponentStats holds the tracked tendencies of a single opponent.
// VPIP and PFR are percentages (0-100); AggressionFactor is the
// (bets+raises)/calls ratio; BluffFrequency and FoldToAggression are
// fractions in [0,1].
type OpponentStats struct {
	VPIP             float64 `json:"vpip"`
	PFR              float64 `json:"pfr"`
	AggressionFactor float64 `json:"aggressionFactor"`
	BluffFrequency   float64 `json:"bluffFrequency"`
	FoldToAggression float64 `json:"foldToAggression"`
}

// GameContext is the immutable per-request snapshot assembled by the caller.
// Optional fields may be left zero; the engine falls back to neutral
// defaults rather than failing.
type GameContext struct {
	HoleCards      []poker.Card             `json:"holeCards"`
	CommunityCards []poker.Card             `json:"communityCards"`
	Street         Street                   `json:"street"`
	Pot            float64                  `json:"pot"`
	CallAmount     float64                  `json:"callAmount"`
	Stack          float64                  `json:"stack"`
	BigBlind       float64                  `json:"bigBlind"`
	SmallBlind     float64                  `json:"smallBlind"`
	ActivePlayers  int                      `json:"activePlayers"` // count of active opponents
	Actions        []ObservedAction         `json:"actions,omitempty"`
	BluffIntent    bool                     `json:"bluffIntent,omitempty"`
	ForceBluff     bool                     `json:"forceBluff,omitempty"`
	Opponents      map[string]OpponentStats `json:"opponents,omitempty"`
	OpponentStacks []float64                `json:"opponentStacks,omitempty"`
	StartingStack  float64                  `json:"startingStack,omitempty"`
}

// SecondaryLine is the alternative play offered alongside the primary action.
type SecondaryLine struct {
	Action    Action  `json:"action"`
	Amount    float64 `json:"amount,omitempty"`
	Reasoning string  `json:"reasoning"`
	Frequency int     `json:"frequency"` // 0-50, complement of the primary frequency
}

// BluffOpportunity flags a spot where a well-timed bluff rates to succeed.
type BluffOpportunity struct {
	Reason          string  `json:"reason"`
	SuggestedAction Action  `json:"suggestedAction"`
	SuccessOdds     float64 `json:"successOdds"` // 0-100
}

// AIRecommendation is the engine's complete output for one request.
type AIRecommendation struct {
	Action           Action               `json:"action"`
	Amount           float64              `json:"amount,omitempty"` // set for bet/raise/call, zero otherwise
	WinProbability   float64              `json:"winProbability"`   // 0-100
	PotOdds          float64              `json:"potOdds,omitempty"`
	ExpectedValue    float64              `json:"expectedValue"`
	Reasoning        string               `json:"reasoning"`
	Hand             evaluator.Evaluation `json:"hand"`
	Secondary        *SecondaryLine       `json:"secondary,omitempty"`
	BluffAware       bool                 `json:"bluffAware"`
	PrimaryFrequency int                  `json:"primaryFrequency"` // 50-100
	BluffSuccessOdds float64              `json:"bluffSuccessOdds"` // 0-100
	GoodForValue     bool                 `json:"goodForValue"`
	Opportunity      *BluffOpportunity    `json:"opportunity,omitempty"`
}

// InsightSummary is a loose natural-language read of an opponent's line.
type InsightSummary struct {
	RangeRead       string  `json:"rangeRead"`
	BluffLikelihood float64 `json:"bluffLikelihood"` // 0-100
}
