package persona

import (
	"testing"

	"uxengine/internal/types"
)

const desktopChromeUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

func TestClassifyTechEarlyAdopter(t *testing.T) {
	sig := types.BehaviorSignal{
		ClickSpeed:       0.9,
		NavigationDepth:  8,
		InteractionStyle: "exploratory",
		SessionCount:     3,
	}

	p := Classify(desktopChromeUA, sig)
	if p.Type != types.PersonaTechEarlyAdopter {
		t.Fatalf("expected TechEarlyAdopter, got %s", p.Type)
	}
	if p.Confidence <= 70 {
		t.Fatalf("expected confidence > 70, got %.1f", p.Confidence)
	}
	if p.Characteristics.TechSavviness != types.LevelHigh {
		t.Fatalf("expected high tech savviness for TechEarlyAdopter")
	}
}

func TestClassifyRemoteDad(t *testing.T) {
	sig := types.BehaviorSignal{
		ClickSpeed:       0.4,
		InteractionStyle: "cautious",
		TimeDistribution: []float64{140, 190, 210},
		SessionCount:     2,
		NavigationDepth:  4,
	}

	p := Classify("Mozilla/5.0 (Windows NT 10.0; Win64; x64) Firefox/121.0", sig)
	if p.Type != types.PersonaRemoteDad {
		t.Fatalf("expected RemoteDad, got %s", p.Type)
	}
	if p.Characteristics.PriceSensitivity != types.LevelHigh {
		t.Fatalf("expected high price sensitivity, got %s", p.Characteristics.PriceSensitivity)
	}
}

func TestClassifyLowSignalSessionCapsConfidence(t *testing.T) {
	// One short session with barely any navigation: callers must be able to
	// fall back to generic defaults.
	sig := types.BehaviorSignal{
		ClickSpeed:         0.8,
		InteractionStyle:   "exploratory",
		NavigationDepth:    1,
		SessionCount:       1,
		AvgSessionDuration: 30,
	}

	p := Classify(desktopChromeUA, sig)
	if p.Confidence >= 50 {
		t.Fatalf("expected confidence < 50 for a single short session, got %.1f", p.Confidence)
	}
}

func TestClassifyGarbagePlatformFallsBackToBehavior(t *testing.T) {
	sig := types.BehaviorSignal{
		ClickSpeed:       0.4,
		InteractionStyle: "cautious",
		TimeDistribution: []float64{150, 180},
		SessionCount:     3,
		NavigationDepth:  5,
	}

	for _, platform := range []string{"", "   ", "curl/8.4", "x!!@@##"} {
		p := Classify(platform, sig)
		if p.Type != types.PersonaRemoteDad {
			t.Fatalf("platform %q: expected behavior-only RemoteDad, got %s", platform, p.Type)
		}
	}
}

func TestClassifyNeverPanicsOnExtremeInput(t *testing.T) {
	sigs := []types.BehaviorSignal{
		{},
		{ClickSpeed: -5, NavigationDepth: -3, SessionCount: -1},
		{ClickSpeed: 1e12, NavigationDepth: 1 << 30, TimeDistribution: []float64{-1, 1e18}},
	}
	for _, sig := range sigs {
		p := Classify("Mozilla/5.0", sig)
		if p.Confidence < 0 || p.Confidence > 100 {
			t.Fatalf("confidence out of range: %.1f", p.Confidence)
		}
		if p.Type == "" {
			t.Fatalf("expected a persona type even with no signal")
		}
	}
}

func TestClassifyTieBreaksByPriorityOrder(t *testing.T) {
	// Zero signal everywhere scores every archetype at zero; the fixed
	// priority order must make the result deterministic.
	p := Classify("", types.BehaviorSignal{})
	if p.Type != types.PersonaPriority[0] {
		t.Fatalf("expected priority winner %s, got %s", types.PersonaPriority[0], p.Type)
	}
	if p.Confidence != 0 {
		t.Fatalf("expected zero confidence with zero signal, got %.1f", p.Confidence)
	}
}

func TestClassifyDoesNotMutateInput(t *testing.T) {
	dist := []float64{10, 20, 30}
	sig := types.BehaviorSignal{TimeDistribution: dist}
	Classify(desktopChromeUA, sig)
	if dist[0] != 10 || dist[1] != 20 || dist[2] != 30 {
		t.Fatalf("classifier mutated the input time distribution")
	}
}
