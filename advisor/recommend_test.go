package advisor

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apbharucha/poker/advisor/model"
	"github.com/apbharucha/poker/evaluator"
	"github.com/apbharucha/poker/poker"
)

func TestRecommendPocketAcesPreflop(t *testing.T) {
	t.Parallel()

	game := GameContext{
		HoleCards:     poker.MustParseCards("AsAd"),
		Street:        StreetPreflop,
		Pot:           30,
		CallAmount:    0,
		Stack:         1000,
		BigBlind:      20,
		SmallBlind:    10,
		ActivePlayers: 1,
	}
	rec := GenerateRecommendation(game)

	assert.Equal(t, ActionRaise, rec.Action)
	assert.InDelta(t, 3*game.BigBlind, rec.Amount, 0.001)
	assert.GreaterOrEqual(t, rec.WinProbability, 5.0)
	assert.LessOrEqual(t, rec.WinProbability, 95.0)
	assert.True(t, rec.GoodForValue)
	require.NotNil(t, rec.Secondary)
	assert.Equal(t, 100, rec.PrimaryFrequency+rec.Secondary.Frequency)
}

func TestRecommendHighCardRiverChecksForFree(t *testing.T) {
	t.Parallel()

	game := GameContext{
		HoleCards:      poker.MustParseCards("3h4h"),
		CommunityCards: poker.MustParseCards("2c7d9sJhKc"),
		Street:         StreetRiver,
		Pot:            120,
		CallAmount:     0,
		Stack:          500,
		BigBlind:       10,
		ActivePlayers:  2,
	}
	rec := GenerateRecommendation(game)

	assert.Equal(t, evaluator.HighCard, rec.Hand.Category)
	assert.Equal(t, ActionCheck, rec.Action, "a free check must never become a fold")
}

func TestRecommendDeterminism(t *testing.T) {
	t.Parallel()

	game := GameContext{
		HoleCards:      poker.MustParseCards("KhQh"),
		CommunityCards: poker.MustParseCards("9hThJs"),
		Street:         StreetFlop,
		Pot:            80,
		CallAmount:     25,
		Stack:          400,
		BigBlind:       10,
		ActivePlayers:  3,
		Opponents: map[string]OpponentStats{
			"v1": {VPIP: 28, PFR: 20, AggressionFactor: 2.4, BluffFrequency: 0.35, FoldToAggression: 0.4},
		},
		OpponentStacks: []float64{300, 800, 150},
		StartingStack:  500,
	}

	first := GenerateRecommendation(game)
	for i := 0; i < 20; i++ {
		if got := GenerateRecommendation(game); !reflect.DeepEqual(first, got) {
			t.Fatalf("recommendation not deterministic:\nfirst: %+v\n  got: %+v", first, got)
		}
	}
}

func TestRecommendMissingOptionalContext(t *testing.T) {
	t.Parallel()

	// No opponents, no stacks, no starting stack: neutral defaults, no failure
	game := GameContext{
		HoleCards:     poker.MustParseCards("7s2d"),
		Street:        StreetPreflop,
		Pot:           15,
		CallAmount:    10,
		Stack:         1000,
		BigBlind:      10,
		ActivePlayers: 4,
	}
	rec := GenerateRecommendation(game)
	assert.Contains(t, []Action{ActionFold, ActionCall, ActionCheck}, rec.Action)
	assert.NotEmpty(t, rec.Reasoning)
}

func TestRecommendPotOddsAndEV(t *testing.T) {
	t.Parallel()

	game := GameContext{
		HoleCards:      poker.MustParseCards("KsKd"),
		CommunityCards: poker.MustParseCards("2c7h9s"),
		Street:         StreetFlop,
		Pot:            100,
		CallAmount:     100,
		Stack:          1000,
		BigBlind:       10,
		ActivePlayers:  1,
	}
	rec := GenerateRecommendation(game)

	assert.InDelta(t, 50.0, rec.PotOdds, 0.001)
	expectedEV := rec.WinProbability/100*game.Pot - (1-rec.WinProbability/100)*game.CallAmount
	assert.InDelta(t, expectedEV, rec.ExpectedValue, 0.001)
}

func TestEngineUsesLearnedParametersOnce(t *testing.T) {
	t.Parallel()

	fetches := 0
	store := model.NewStore(model.FetcherFunc(func(ctx context.Context) (model.Parameters, error) {
		fetches++
		return model.Parameters{
			BluffSuccessRates: map[string]model.SuccessRate{
				"river": {Successes: 20, Attempts: 25},
			},
		}, nil
	}))
	engine := NewEngine(WithParameterStore(store))

	game := GameContext{
		HoleCards:      poker.MustParseCards("3h4h"),
		CommunityCards: poker.MustParseCards("2c7d9sJhKc"),
		Street:         StreetRiver,
		Pot:            100,
		Stack:          500,
		BigBlind:       10,
		ActivePlayers:  1,
	}

	first := engine.Recommend(context.Background(), game)
	second := engine.Recommend(context.Background(), game)

	assert.Equal(t, 1, fetches, "parameters must be fetched at most once")
	assert.Equal(t, first, second)

	// The learned 80% river rate should lift the bluff estimate over the
	// plain-function baseline.
	baseline := GenerateRecommendation(game)
	assert.Greater(t, first.BluffSuccessOdds, baseline.BluffSuccessOdds)
}

func TestRecommendBluffAware(t *testing.T) {
	t.Parallel()

	game := GameContext{
		HoleCards:      poker.MustParseCards("3h4h"),
		CommunityCards: poker.MustParseCards("2c7d9sJhKc"),
		Street:         StreetRiver,
		Pot:            100,
		CallAmount:     50,
		Stack:          500,
		BigBlind:       10,
		ActivePlayers:  1,
		ForceBluff:     true,
	}
	rec := GenerateRecommendation(game)

	assert.True(t, rec.BluffAware)
	assert.NotEqual(t, ActionFold, rec.Action)
	assert.Nil(t, rec.Opportunity, "no opportunity block while already bluffing")
}
