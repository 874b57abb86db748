package advisor

import "testing"

func TestBuildOpponentProfileAverages(t *testing.T) {
	t.Parallel()

	opponents := map[string]OpponentStats{
		"villain1": {VPIP: 10, PFR: 8, AggressionFactor: 0.5, BluffFrequency: 0.1, FoldToAggression: 0.7},
		"villain2": {VPIP: 20, PFR: 12, AggressionFactor: 1.5, BluffFrequency: 0.3, FoldToAggression: 0.5},
	}
	p := BuildOpponentProfile(opponents)

	if p.VPIP != 15 {
		t.Errorf("expected averaged VPIP 15, got %.1f", p.VPIP)
	}
	if p.AggressionFactor != 1.0 {
		t.Errorf("expected averaged AF 1.0, got %.2f", p.AggressionFactor)
	}
	if p.Tightness != TightnessTight {
		t.Errorf("VPIP 15 should classify tight, got %s", p.Tightness)
	}
}

func TestProfileClassificationThresholds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		stats     OpponentStats
		tightness Tightness
		style     Style
	}{
		{"nit", OpponentStats{VPIP: 12, PFR: 8, AggressionFactor: 0.5}, TightnessTight, StylePassive},
		{"maniac", OpponentStats{VPIP: 45, PFR: 30, AggressionFactor: 4}, TightnessLoose, StyleAggressive},
		{"tag", OpponentStats{VPIP: 22, PFR: 19, AggressionFactor: 1.8}, TightnessBalanced, StyleAggressive},
		{"station", OpponentStats{VPIP: 35, PFR: 5, AggressionFactor: 0.4}, TightnessLoose, StylePassive},
		{"regular", OpponentStats{VPIP: 25, PFR: 15, AggressionFactor: 1.5}, TightnessBalanced, StyleBalanced},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := BuildOpponentProfile(map[string]OpponentStats{"v": tt.stats})
			if p.Tightness != tt.tightness {
				t.Errorf("expected %s, got %s", tt.tightness, p.Tightness)
			}
			if p.Style != tt.style {
				t.Errorf("expected %s, got %s", tt.style, p.Style)
			}
		})
	}
}

func TestNeutralProfileFallback(t *testing.T) {
	t.Parallel()

	p := BuildOpponentProfile(nil)
	if p.Tightness != TightnessBalanced || p.Style != StyleBalanced {
		t.Errorf("empty stats must classify balanced/balanced, got %s/%s", p.Tightness, p.Style)
	}
}

func TestAggressionScoreClamped(t *testing.T) {
	t.Parallel()

	p := OpponentProfile{AggressionFactor: 9}
	if got := p.AggressionScore(); got != 1 {
		t.Errorf("expected score clamped to 1, got %.2f", got)
	}
	p.AggressionFactor = 1.5
	if got := p.AggressionScore(); got != 0.5 {
		t.Errorf("expected score 0.5 for AF 1.5, got %.2f", got)
	}
}
