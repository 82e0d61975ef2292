// Package intent scores a navigation and interaction history into a funnel
// stage, an urgency grade, and a 0-100 purchase-intent score.
//
// The score is a weighted composite of three components: funnel-critical page
// presence, interaction density per unit elapsed time, and recency-weighted
// dwell time. The recognizer is stateless and recomputes everything on every
// call; an empty path is the defined zero-case, not an error.
package intent

import (
	"math"
	"sort"
	"strings"
	"time"

	"uxengine/internal/types"
)

// Funnel page weights. The deepest page reached fixes both the stage and the
// funnel component of the score. Content pages score lowest by design: a
// visitor reading the blog is further from checkout than one on pricing.
const (
	weightAwareness     = 10
	weightConsideration = 25
	weightDecision      = 38
	weightPurchase      = 50
)

// Component ceilings. Funnel presence dominates the composite.
const (
	maxDensityComponent = 25
	maxDwellComponent   = 25
)

// Interactions-per-minute thresholds for urgency escalation.
const (
	defaultHighUrgencyVelocity = 5.0
	mediumUrgencyVelocity      = 2.0
)

// minElapsedMinutes floors the elapsed-time divisor so bursts with identical
// timestamps saturate instead of dividing by zero.
const minElapsedMinutes = 0.5

// Options tunes the recognizer. The zero value is not meaningful; start from
// DefaultOptions.
type Options struct {
	// HighUrgencyVelocity is the interactions-per-minute threshold above
	// which urgency escalates to high.
	HighUrgencyVelocity float64
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{HighUrgencyVelocity: defaultHighUrgencyVelocity}
}

// Recognize scores one user path with the default tuning. Interactions are
// sorted by timestamp before scoring, so duplicate or out-of-order entries
// never change the result.
func Recognize(path types.UserPath) types.IntentScore {
	return RecognizeWith(DefaultOptions(), path)
}

// RecognizeWith scores one user path with explicit tuning.
func RecognizeWith(opts Options, path types.UserPath) types.IntentScore {
	if path.Empty() {
		return types.IntentScore{
			Score:   0,
			Stage:   types.StageAwareness,
			Urgency: types.LevelLow,
		}
	}

	interactions := sortedInteractions(path.Interactions)

	stage, funnelWeight := deepestStage(path.Pages)
	velocity := interactionVelocity(interactions, path.Timestamps)

	score := float64(funnelWeight)
	score += clamp01(velocity/10) * maxDensityComponent
	score += clamp01(recencyWeightedDwell(path.Timestamps)/60) * maxDwellComponent
	score = clampRange(score, 0, 100)

	return types.IntentScore{
		Score:               score,
		Stage:               stage,
		Urgency:             urgency(opts, velocity),
		PredictedConversion: predictConversion(score),
	}
}

// predictConversion maps the composite score to a bounded conversion
// probability estimate. Strictly monotone: a higher score never predicts a
// lower conversion.
func predictConversion(score float64) float64 {
	return clampRange(0.9*score+5, 0, 95)
}

func urgency(opts Options, velocity float64) types.Level {
	high := opts.HighUrgencyVelocity
	if high <= 0 {
		high = defaultHighUrgencyVelocity
	}
	switch {
	case velocity > high:
		return types.LevelHigh
	case velocity > mediumUrgencyVelocity:
		return types.LevelMedium
	}
	return types.LevelLow
}

// sortedInteractions returns a timestamp-ordered copy; the input slice is
// never reordered in place.
func sortedInteractions(in []types.Interaction) []types.Interaction {
	if len(in) < 2 {
		return in
	}
	out := append([]types.Interaction(nil), in...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.Before(out[j].Timestamp)
	})
	return out
}

// deepestStage classifies every visited page and returns the deepest funnel
// stage reached plus its score weight.
func deepestStage(pages []string) (types.FunnelStage, int) {
	stage, weight := types.StageAwareness, weightAwareness
	if len(pages) == 0 {
		// Interactions without page history still indicate a live visitor,
		// but tell us nothing about funnel depth.
		return types.StageAwareness, 0
	}
	for _, page := range pages {
		s, w := classifyPage(page)
		if w > weight {
			stage, weight = s, w
		}
	}
	return stage, weight
}

func classifyPage(page string) (types.FunnelStage, int) {
	p := strings.ToLower(page)
	switch {
	case strings.Contains(p, "payment") || strings.Contains(p, "checkout") || strings.Contains(p, "cart"):
		return types.StagePurchase, weightPurchase
	case strings.Contains(p, "pricing") || strings.Contains(p, "plans") || strings.Contains(p, "offer"):
		return types.StageDecision, weightDecision
	case strings.Contains(p, "product") || strings.Contains(p, "feature") || strings.Contains(p, "compar") || strings.Contains(p, "demo"):
		return types.StageConsideration, weightConsideration
	}
	return types.StageAwareness, weightAwareness
}

// interactionVelocity is interactions per minute over the full observed span.
func interactionVelocity(interactions []types.Interaction, pageStamps []time.Time) float64 {
	if len(interactions) == 0 {
		return 0
	}

	first, last := interactions[0].Timestamp, interactions[len(interactions)-1].Timestamp
	for _, ts := range pageStamps {
		if ts.IsZero() {
			continue
		}
		if first.IsZero() || ts.Before(first) {
			first = ts
		}
		if ts.After(last) {
			last = ts
		}
	}

	elapsed := last.Sub(first).Minutes()
	if math.IsNaN(elapsed) || elapsed < minElapsedMinutes {
		elapsed = minElapsedMinutes
	}
	return float64(len(interactions)) / elapsed
}

// recencyWeightedDwell averages per-page dwell seconds with linearly
// increasing weight toward the most recent pages. Negative or absurd gaps
// saturate instead of skewing the average.
func recencyWeightedDwell(stamps []time.Time) float64 {
	if len(stamps) < 2 {
		return 0
	}
	var weighted, totalWeight float64
	for i := 1; i < len(stamps); i++ {
		dwell := clampRange(stamps[i].Sub(stamps[i-1]).Seconds(), 0, 300)
		w := float64(i) / float64(len(stamps)-1)
		weighted += dwell * w
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0
	}
	return weighted / totalWeight
}

func clamp01(v float64) float64 {
	return clampRange(v, 0, 1)
}

func clampRange(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v), v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
