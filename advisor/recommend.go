package advisor

import (
	"context"

	"github.com/apbharucha/poker/advisor/model"
	"github.com/apbharucha/poker/evaluator"
)

// Engine generates recommendations. It carries no state between calls other
// than the optional historical-parameter store, so a single Engine is safe
// for concurrent use.
type Engine struct {
	store *model.Store
}

// Option configures an Engine.
type Option func(*Engine)

// WithParameterStore attaches a historical-parameter store. Without one the
// engine always uses its baseline heuristics.
func WithParameterStore(store *model.Store) Option {
	return func(e *Engine) { e.store = store }
}

// NewEngine creates a recommendation engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PotOdds returns the price of a call as a percentage of the resulting pot,
// or zero when there is nothing to call.
func PotOdds(pot, callAmount float64) float64 {
	if callAmount <= 0 {
		return 0
	}
	return callAmount / (pot + callAmount) * 100
}

// Recommend produces the full recommendation for one game snapshot. The
// context only bounds the first (and only) historical-parameter fetch;
// everything else is pure computation.
func (e *Engine) Recommend(ctx context.Context, game GameContext) AIRecommendation {
	var params model.Parameters
	if e.store != nil {
		params = e.store.Load(ctx)
	}
	return recommend(game, params)
}

// GenerateRecommendation is the plain-function form of Recommend for
// callers without learned parameters.
func GenerateRecommendation(game GameContext) AIRecommendation {
	return recommend(game, model.Parameters{})
}

func recommend(game GameContext, params model.Parameters) AIRecommendation {
	profile := BuildOpponentProfile(game.Opponents)
	psych := AnalyzeStacks(game.Stack, game.StartingStack, game.BigBlind, game.OpponentStacks)

	hand := evaluator.BestHand(game.HoleCards, game.CommunityCards)
	strength := HandStrength(game.HoleCards, game.CommunityCards)
	winProb := WinProbability(game.HoleCards, game.CommunityCards, game.ActivePlayers, game.Street, profile, psych)
	potOdds := PotOdds(game.Pot, game.CallAmount)

	decision := Decide(strength, winProb, potOdds, game, profile, psych)

	secondary := SecondaryFor(decision, game)
	frequency := PrimaryFrequency(decision, secondary, winProb, potOdds, game.BluffIntent || game.ForceBluff)
	if secondary != nil {
		secondary.Frequency = 100 - frequency
	}

	threat := BoardThreat(game.CommunityCards)
	bluffSize := decision.Amount
	if !decision.Action.IsAggressive() {
		bluffSize = mediumBetPotFraction * game.Pot
	}
	bluffOdds := BluffSuccessProbability(game.Street, game.ActivePlayers, threat, bluffSize, game.Pot, profile, params)

	winFraction := winProb / 100
	ev := winFraction*game.Pot - (1-winFraction)*game.CallAmount

	return AIRecommendation{
		Action:           decision.Action,
		Amount:           decision.Amount,
		WinProbability:   winProb,
		PotOdds:          potOdds,
		ExpectedValue:    ev,
		Reasoning:        decision.Reasoning,
		Hand:             hand,
		Secondary:        secondary,
		BluffAware:       game.BluffIntent || game.ForceBluff,
		PrimaryFrequency: frequency,
		BluffSuccessOdds: bluffOdds,
		GoodForValue:     winProb >= 55 && strength >= generalMarginalStrength,
		Opportunity:      DetectBluffOpportunity(strength, winProb, game, profile, params),
	}
}
