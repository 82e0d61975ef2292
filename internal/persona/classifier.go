// Package persona classifies a visitor into one of four fixed archetypes from
// a raw platform string plus aggregated behavior signals.
//
// Classification is a table-driven weighted scoring over an explicit feature
// vector. Each archetype carries its own weight row; the highest aggregate
// score wins, with ties broken by the fixed priority order in
// types.PersonaPriority. Confidence is the normalized margin between the top
// two scores, clamped to [0,100]. The classifier never fails: unparsable
// platform strings degrade to behavior-only scoring, and a single short
// low-interaction session is capped below 50 confidence so callers fall back
// to generic defaults.
package persona

import (
	"math"

	"uxengine/internal/types"
)

// feature indexes the classifier's feature vector. All feature values are
// normalized to [0,1] before weighting.
type feature int

const (
	featClickSpeed feature = iota
	featClickDeliberate     // inverse of click speed
	featNavDepth
	featDwell               // mean per-page dwell, saturating at 2 minutes
	featSessionFrequency
	featScrollFastScan
	featScrollDeepRead
	featStyleExploratory
	featStyleCautious
	featStyleFocused
	featStyleDirect
	featPlatformDesktop
	featPlatformMobile
	featPlatformModernBrowser
	featPlatformWindows
	featPlatformAndroid
	featPlatformApple
	featureCount
)

type featureVector [featureCount]float64

// weights is the scoring table: one row per archetype. Row sums are
// intentionally unequal; confidence is margin-based, not absolute.
var weights = map[types.PersonaType]featureVector{
	types.PersonaTechEarlyAdopter: buildRow(map[feature]float64{
		featClickSpeed:            30,
		featNavDepth:              25,
		featStyleExploratory:      25,
		featScrollFastScan:        5,
		featPlatformModernBrowser: 10,
		featPlatformDesktop:       5,
	}),
	types.PersonaRemoteDad: buildRow(map[feature]float64{
		featStyleCautious:   30,
		featDwell:           25,
		featScrollDeepRead:  20,
		featClickDeliberate: 15,
		featPlatformApple:   5,
		featPlatformDesktop: 5,
	}),
	types.PersonaStudentHustler: buildRow(map[feature]float64{
		featPlatformMobile:   20,
		featPlatformAndroid:  10,
		featScrollFastScan:   15,
		featSessionFrequency: 25,
		featStyleDirect:      10,
		featClickSpeed:       20,
	}),
	types.PersonaBusinessOwner: buildRow(map[feature]float64{
		featStyleFocused:     30,
		featStyleDirect:      20,
		featPlatformWindows:  10,
		featPlatformDesktop:  15,
		featNavDepth:         10,
		featSessionFrequency: 15,
	}),
}

// Static trait tables per archetype.
var characteristics = map[types.PersonaType]types.PersonaCharacteristics{
	types.PersonaTechEarlyAdopter: {
		TechSavviness:    types.LevelHigh,
		PriceSensitivity: types.LevelMedium,
		PurchaseUrgency:  types.LevelMedium,
		ResearchDepth:    types.LevelHigh,
	},
	types.PersonaRemoteDad: {
		TechSavviness:    types.LevelMedium,
		PriceSensitivity: types.LevelHigh,
		PurchaseUrgency:  types.LevelLow,
		ResearchDepth:    types.LevelHigh,
	},
	types.PersonaStudentHustler: {
		TechSavviness:    types.LevelMedium,
		PriceSensitivity: types.LevelHigh,
		PurchaseUrgency:  types.LevelHigh,
		ResearchDepth:    types.LevelLow,
	},
	types.PersonaBusinessOwner: {
		TechSavviness:    types.LevelMedium,
		PriceSensitivity: types.LevelLow,
		PurchaseUrgency:  types.LevelMedium,
		ResearchDepth:    types.LevelMedium,
	},
}

var preferences = map[types.PersonaType]types.PersonaPreferences{
	types.PersonaTechEarlyAdopter: {
		ContentType:  "interactive-demo",
		TrustFactors: []string{"benchmarks", "peer-reviews", "changelogs"},
	},
	types.PersonaRemoteDad: {
		ContentType:  "step-by-step-guide",
		TrustFactors: []string{"testimonials", "money-back-guarantee", "support-availability"},
	},
	types.PersonaStudentHustler: {
		ContentType:  "short-video",
		TrustFactors: []string{"social-proof", "student-discounts", "free-tier"},
	},
	types.PersonaBusinessOwner: {
		ContentType:  "case-study",
		TrustFactors: []string{"roi-figures", "case-studies", "support-sla"},
	},
}

// lowSignalConfidenceCap bounds confidence for visitors we have barely seen.
const lowSignalConfidenceCap = 45

// Classify scores the visitor against every archetype and returns the winning
// profile. It never returns an error; see the package comment for degradation
// rules.
func Classify(platform string, sig types.BehaviorSignal) types.PersonaProfile {
	fv := extractFeatures(ParsePlatform(platform), sig)

	best, second := types.PersonaType(""), 0.0
	bestScore := math.Inf(-1)
	for _, pt := range types.PersonaPriority {
		s := score(weights[pt], fv)
		if s > bestScore {
			if best != "" {
				second = bestScore
			}
			best, bestScore = pt, s
		} else if s > second {
			second = s
		}
	}

	conf := confidence(bestScore, second)
	if lowSignalSession(sig) && conf > lowSignalConfidenceCap {
		conf = lowSignalConfidenceCap
	}

	prefs := preferences[best]
	return types.PersonaProfile{
		Type:            best,
		Confidence:      conf,
		Characteristics: characteristics[best],
		Preferences: types.PersonaPreferences{
			ContentType:  prefs.ContentType,
			TrustFactors: append([]string(nil), prefs.TrustFactors...),
		},
	}
}

func buildRow(m map[feature]float64) featureVector {
	var row featureVector
	for f, w := range m {
		row[f] = w
	}
	return row
}

func score(row, fv featureVector) float64 {
	var sum float64
	for i := 0; i < int(featureCount); i++ {
		sum += row[i] * fv[i]
	}
	return sum
}

// confidenceMarginScale is the score margin that maps to full confidence.
const confidenceMarginScale = 50

// confidence normalizes the margin between the top two scores to a 0-100
// scale. A zero top score means no signal at all.
func confidence(top, second float64) float64 {
	if top <= 0 {
		return 0
	}
	return clamp01((top-second)/confidenceMarginScale) * 100
}

// lowSignalSession reports whether the visitor history is too thin to trust:
// at most one session, short, and barely any navigation.
func lowSignalSession(sig types.BehaviorSignal) bool {
	return sig.SessionCount <= 1 &&
		sig.AvgSessionDuration < 90 &&
		sig.NavigationDepth <= 2
}

func extractFeatures(h PlatformHints, sig types.BehaviorSignal) featureVector {
	var fv featureVector

	// ClickSpeed of exactly zero means the signal was never collected; only a
	// present measurement contributes, in either direction.
	if sig.ClickSpeed > 0 {
		cs := clamp01(sig.ClickSpeed)
		fv[featClickSpeed] = cs
		fv[featClickDeliberate] = 1 - cs
	}

	fv[featNavDepth] = clamp01(float64(sig.NavigationDepth) / 10)
	fv[featDwell] = clamp01(meanDwell(sig.TimeDistribution) / 120)
	fv[featSessionFrequency] = clamp01(float64(sig.SessionCount) / 8)

	switch sig.ScrollPattern {
	case "fast-scan":
		fv[featScrollFastScan] = 1
	case "deep-read":
		fv[featScrollDeepRead] = 1
	}

	switch sig.InteractionStyle {
	case "exploratory":
		fv[featStyleExploratory] = 1
	case "cautious":
		fv[featStyleCautious] = 1
	case "focused":
		fv[featStyleFocused] = 1
	case "direct":
		fv[featStyleDirect] = 1
	}

	if !h.Known {
		return fv
	}
	if h.Desktop {
		fv[featPlatformDesktop] = 1
	}
	if h.Mobile {
		fv[featPlatformMobile] = 1
	}
	if h.Chrome || h.Edge || h.Firefox {
		fv[featPlatformModernBrowser] = 1
	}
	if h.Windows {
		fv[featPlatformWindows] = 1
	}
	if h.Android {
		fv[featPlatformAndroid] = 1
	}
	if h.MacOS || h.IOS {
		fv[featPlatformApple] = 1
	}
	return fv
}

func meanDwell(dist []float64) float64 {
	if len(dist) == 0 {
		return 0
	}
	var sum float64
	for _, d := range dist {
		if d > 0 && !math.IsInf(d, 1) && !math.IsNaN(d) {
			sum += d
		}
	}
	return sum / float64(len(dist))
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
