// Package adapt evaluates a live telemetry snapshot against fixed thresholds
// and emits sparse adjustment directives. Three branches are checked
// independently; any subset may fire. Healthy metrics produce an empty
// directive with no allocated branches.
package adapt

import (
	"math"

	"uxengine/internal/types"
)

// Budgets holds the threshold set for one evaluation. Zero-valued fields are
// not valid; obtain a set from DefaultBudgets and override as needed.
type Budgets struct {
	// Performance ceilings, milliseconds.
	LoadTimeMS         float64
	RenderTimeMS       float64
	InteractionDelayMS float64

	// Engagement floors and ceiling.
	ScrollDepthFloor float64 // percent
	TimeOnPageFloor  float64 // seconds
	BounceRateCeil   float64 // 0-1

	// Conversion floor and ceiling, 0-1 rates.
	ConversionRateFloor float64
	AbandonmentRateCeil float64
}

// DefaultBudgets returns the stock thresholds.
func DefaultBudgets() Budgets {
	return Budgets{
		LoadTimeMS:          3000,
		RenderTimeMS:        800,
		InteractionDelayMS:  300,
		ScrollDepthFloor:    25,
		TimeOnPageFloor:     20,
		BounceRateCeil:      0.55,
		ConversionRateFloor: 0.02,
		AbandonmentRateCeil: 0.70,
	}
}

// Evaluate checks one snapshot against the default budgets.
func Evaluate(m types.LiveMetrics) types.AdaptationDirective {
	return EvaluateWith(DefaultBudgets(), m)
}

// EvaluateWith checks one snapshot against an explicit budget set. Metric
// values outside their natural domain (negative, NaN, absurdly large)
// saturate into the same branch logic; the function never panics.
func EvaluateWith(b Budgets, m types.LiveMetrics) types.AdaptationDirective {
	var d types.AdaptationDirective
	d.Performance = performanceBranch(b, m.Performance)
	d.Engagement = engagementBranch(b, m.Engagement)
	d.Conversion = conversionBranch(b, m.Conversion)
	return d
}

func performanceBranch(b Budgets, p types.PerformanceMetrics) *types.PerformanceAdjustment {
	var exceeded []string
	if sanitize(p.LoadTime) > b.LoadTimeMS {
		exceeded = append(exceeded, "load_time")
	}
	if sanitize(p.RenderTime) > b.RenderTimeMS {
		exceeded = append(exceeded, "render_time")
	}
	if sanitize(p.InteractionDelay) > b.InteractionDelayMS {
		exceeded = append(exceeded, "interaction_delay")
	}
	if len(exceeded) == 0 {
		return nil
	}
	return &types.PerformanceAdjustment{
		EnableLazyLoading:  true,
		ReduceImageQuality: true,
		ExceededBudgets:    exceeded,
	}
}

func engagementBranch(b Budgets, e types.EngagementMetrics) *types.EngagementAdjustment {
	var triggers []string
	if sanitize(e.ScrollDepth) < b.ScrollDepthFloor {
		triggers = append(triggers, "shallow_scroll")
	}
	if sanitize(e.TimeOnPage) < b.TimeOnPageFloor {
		triggers = append(triggers, "short_visit")
	}
	if sanitize(e.BounceRate) > b.BounceRateCeil {
		triggers = append(triggers, "high_bounce")
	}
	if len(triggers) == 0 {
		return nil
	}
	return &types.EngagementAdjustment{
		AddProgressIndicators:  true,
		AddInteractiveElements: true,
		Triggers:               triggers,
	}
}

func conversionBranch(b Budgets, c types.ConversionMetrics) *types.ConversionAdjustment {
	var triggers []string
	if sanitize(c.ConversionRate) < b.ConversionRateFloor {
		triggers = append(triggers, "low_conversion")
	}
	if sanitize(c.AbandonmentRate) > b.AbandonmentRateCeil {
		triggers = append(triggers, "high_abandonment")
	}
	if len(triggers) == 0 {
		return nil
	}
	return &types.ConversionAdjustment{
		EmphasizeValueProposition: true,
		OfferIncentive:            true,
		Triggers:                  triggers,
	}
}

// sanitize collapses NaN to zero and negative values to zero so out-of-domain
// readings flow through the ordinary comparisons. +Inf is left alone: it
// correctly exceeds every ceiling.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}
