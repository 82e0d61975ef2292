package intent

import (
	"testing"
	"time"

	"uxengine/internal/types"
)

var t0 = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

// purchasePath builds home->products->pricing->checkout->payment with dense
// interactions, all inside three minutes.
func purchasePath() types.UserPath {
	pages := []string{"/home", "/products", "/pricing", "/checkout", "/payment"}
	stamps := make([]time.Time, len(pages))
	for i := range pages {
		stamps[i] = t0.Add(time.Duration(i) * 45 * time.Second)
	}

	var interactions []types.Interaction
	for i := 0; i < 20; i++ {
		interactions = append(interactions, types.Interaction{
			Type:      "click",
			Element:   "cta",
			Timestamp: t0.Add(time.Duration(i) * 9 * time.Second),
		})
	}

	return types.UserPath{
		Pages:        pages,
		Timestamps:   stamps,
		Interactions: interactions,
		Referrer:     "google",
		ExitPage:     "/payment",
	}
}

func TestRecognizeEmptyPathIsZeroCase(t *testing.T) {
	got := Recognize(types.UserPath{})
	if got.Score != 0 {
		t.Fatalf("expected score 0, got %.1f", got.Score)
	}
	if got.Stage != types.StageAwareness {
		t.Fatalf("expected awareness, got %s", got.Stage)
	}
	if got.Urgency != types.LevelLow {
		t.Fatalf("expected low urgency, got %s", got.Urgency)
	}
}

func TestRecognizePurchasePath(t *testing.T) {
	got := Recognize(purchasePath())
	if got.Score <= 70 {
		t.Fatalf("expected score > 70, got %.1f", got.Score)
	}
	if got.Stage != types.StagePurchase {
		t.Fatalf("expected purchase stage, got %s", got.Stage)
	}
	if got.PredictedConversion <= 60 {
		t.Fatalf("expected predicted conversion > 60, got %.1f", got.PredictedConversion)
	}
	if got.Urgency != types.LevelHigh {
		t.Fatalf("expected high urgency for dense interactions, got %s", got.Urgency)
	}
}

func TestRecognizeOrderIndependent(t *testing.T) {
	ordered := purchasePath()
	ordered.Interactions[3].Timestamp = ordered.Interactions[4].Timestamp
	want := Recognize(ordered)

	// Same log reversed, including the duplicated timestamp; the result must
	// not change.
	shuffled := purchasePath()
	shuffled.Interactions[3].Timestamp = shuffled.Interactions[4].Timestamp
	for i, j := 0, len(shuffled.Interactions)-1; i < j; i, j = i+1, j-1 {
		shuffled.Interactions[i], shuffled.Interactions[j] = shuffled.Interactions[j], shuffled.Interactions[i]
	}

	if got := Recognize(shuffled); got != want {
		t.Fatalf("interaction order changed the result: got %+v want %+v", got, want)
	}
}

func TestRecognizeStageIsDeepestPageReached(t *testing.T) {
	tests := []struct {
		pages []string
		want  types.FunnelStage
	}{
		{[]string{"/home", "/blog"}, types.StageAwareness},
		{[]string{"/home", "/products"}, types.StageConsideration},
		{[]string{"/pricing", "/home"}, types.StageDecision},
		{[]string{"/home", "/checkout", "/blog"}, types.StagePurchase},
	}
	for _, tt := range tests {
		got := Recognize(types.UserPath{Pages: tt.pages})
		if got.Stage != tt.want {
			t.Fatalf("pages %v: expected %s, got %s", tt.pages, tt.want, got.Stage)
		}
	}
}

func TestRecognizeLowVelocityKeepsLowUrgency(t *testing.T) {
	path := types.UserPath{
		Pages:      []string{"/home", "/blog"},
		Timestamps: []time.Time{t0, t0.Add(10 * time.Minute)},
		Interactions: []types.Interaction{
			{Type: "scroll", Timestamp: t0},
			{Type: "click", Timestamp: t0.Add(10 * time.Minute)},
		},
	}
	got := Recognize(path)
	if got.Urgency != types.LevelLow {
		t.Fatalf("expected low urgency, got %s", got.Urgency)
	}
}

func TestRecognizePredictedConversionMonotone(t *testing.T) {
	prev := -1.0
	for s := 0.0; s <= 100; s += 5 {
		pc := predictConversion(s)
		if pc < prev {
			t.Fatalf("predicted conversion decreased at score %.0f", s)
		}
		if pc < 0 || pc > 100 {
			t.Fatalf("predicted conversion out of bounds: %.1f", pc)
		}
		prev = pc
	}
}

func TestRecognizeSaturatesOnDegenerateTimestamps(t *testing.T) {
	// All interactions at the same instant: velocity saturates instead of
	// dividing by zero, and urgency may legitimately be high.
	path := types.UserPath{
		Pages: []string{"/pricing"},
		Interactions: []types.Interaction{
			{Type: "click", Timestamp: t0},
			{Type: "click", Timestamp: t0},
			{Type: "click", Timestamp: t0},
		},
	}
	got := Recognize(path)
	if got.Score < 0 || got.Score > 100 {
		t.Fatalf("score out of bounds: %.1f", got.Score)
	}

	// Timestamps running backwards clamp dwell to zero rather than producing
	// negative components.
	back := types.UserPath{
		Pages:      []string{"/home", "/products"},
		Timestamps: []time.Time{t0.Add(time.Hour), t0},
	}
	if got := Recognize(back); got.Score < 0 {
		t.Fatalf("negative score from backwards timestamps: %.1f", got.Score)
	}
}
