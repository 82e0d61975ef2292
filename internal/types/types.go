// Package types provides shared data-model definitions used across uxengine packages.
// This package exists to break import cycles between the classifier, profiler,
// recognizer, adapter, and engine packages. Types here are plain data structures
// with no behavior beyond small convenience accessors.
package types

import "time"

// PersonaType identifies one of the fixed visitor archetypes.
type PersonaType string

const (
	PersonaTechEarlyAdopter PersonaType = "TechEarlyAdopter"
	PersonaRemoteDad        PersonaType = "RemoteDad"
	PersonaStudentHustler   PersonaType = "StudentHustler"
	PersonaBusinessOwner    PersonaType = "BusinessOwner"
)

// PersonaPriority is the fixed tie-break order for classification.
// Earlier entries win when aggregate scores are equal.
var PersonaPriority = []PersonaType{
	PersonaTechEarlyAdopter,
	PersonaBusinessOwner,
	PersonaRemoteDad,
	PersonaStudentHustler,
}

// Level is a coarse low/medium/high grading used for urgency, sensitivity
// and similar ordinal characteristics.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"
)

// PersonaCharacteristics describes behavioral traits attributed to a persona.
type PersonaCharacteristics struct {
	TechSavviness    Level `json:"tech_savviness"`
	PriceSensitivity Level `json:"price_sensitivity"`
	PurchaseUrgency  Level `json:"purchase_urgency"`
	ResearchDepth    Level `json:"research_depth"`
}

// PersonaPreferences describes content and trust preferences attributed to a persona.
type PersonaPreferences struct {
	ContentType  string   `json:"content_type"`
	TrustFactors []string `json:"trust_factors"`
}

// PersonaProfile is the classifier output: an archetype plus a 0-100 confidence.
// Profiles are produced fresh per call and never mutated afterwards; the engine
// caches the latest instance per session.
type PersonaProfile struct {
	Type            PersonaType            `json:"type"`
	Confidence      float64                `json:"confidence"`
	Characteristics PersonaCharacteristics `json:"characteristics"`
	Preferences     PersonaPreferences     `json:"preferences"`
}

// BehaviorSignal aggregates per-session interaction measurements supplied by
// the web/session layer. All fields are optional; zero values read as absent
// signal, never as an error.
type BehaviorSignal struct {
	ClickSpeed         float64   `json:"click_speed"`       // 0..1, normalized
	ScrollPattern      string    `json:"scroll_pattern"`    // fast-scan, steady, deep-read, erratic
	NavigationDepth    int       `json:"navigation_depth"`  // distinct pages this session
	TimeDistribution   []float64 `json:"time_distribution"` // per-page dwell seconds
	InteractionStyle   string    `json:"interaction_style"` // exploratory, cautious, focused, direct
	SessionCount       int       `json:"session_count"`
	AvgSessionDuration float64   `json:"avg_session_duration"` // seconds
}

// DeviceType identifies the device form factor.
type DeviceType string

const (
	DeviceMobile  DeviceType = "mobile"
	DeviceTablet  DeviceType = "tablet"
	DeviceDesktop DeviceType = "desktop"
)

// Tier grades CPU and memory capability.
type Tier string

const (
	TierLow    Tier = "low"
	TierMedium Tier = "medium"
	TierHigh   Tier = "high"
)

// ConnectionTier grades effective network quality, ordered slowest first.
type ConnectionTier string

const (
	ConnSlow2G ConnectionTier = "slow-2g"
	Conn2G     ConnectionTier = "2g"
	Conn3G     ConnectionTier = "3g"
	Conn4G     ConnectionTier = "4g"
	ConnWifi   ConnectionTier = "wifi"
)

// ScreenInfo describes the client viewport.
type ScreenInfo struct {
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	PixelRatio float64 `json:"pixel_ratio"`
}

// DevicePerformance describes hardware and network capability tiers.
type DevicePerformance struct {
	CPU        Tier           `json:"cpu"`
	Memory     Tier           `json:"memory"`
	Connection ConnectionTier `json:"connection"`
}

// InputMethods flags the interaction modalities available on the client.
type InputMethods struct {
	Touch    bool `json:"touch"`
	Mouse    bool `json:"mouse"`
	Keyboard bool `json:"keyboard"`
}

// DeviceCapabilities flags rendering features the client supports.
type DeviceCapabilities struct {
	WebGL    bool `json:"webgl"`
	WebP     bool `json:"webp"`
	ModernJS bool `json:"modern_js"`
}

// DeviceContext is the capability probe result supplied by the client.
type DeviceContext struct {
	Type         DeviceType         `json:"type"`
	Screen       ScreenInfo         `json:"screen"`
	Performance  DevicePerformance  `json:"performance"`
	Input        InputMethods       `json:"input"`
	Capabilities DeviceCapabilities `json:"capabilities"`
}

// NavigationStyle selects the navigation chrome for a layout.
type NavigationStyle string

const (
	NavHamburger  NavigationStyle = "hamburger"
	NavSidebar    NavigationStyle = "sidebar"
	NavHorizontal NavigationStyle = "horizontal"
)

// CTAPlacement selects where calls-to-action are rendered.
type CTAPlacement string

const (
	CTAStickyBottom CTAPlacement = "sticky-bottom"
	CTAFloating     CTAPlacement = "floating"
	CTAInline       CTAPlacement = "inline"
)

// ImageQuality selects the asset quality ladder rung.
type ImageQuality string

const (
	QualityLow    ImageQuality = "low"
	QualityMedium ImageQuality = "medium"
	QualityHigh   ImageQuality = "high"
)

// LayoutSpec is the structural half of a LayoutDirective.
type LayoutSpec struct {
	Columns    int             `json:"columns"`
	Navigation NavigationStyle `json:"navigation"`
	CTA        CTAPlacement    `json:"cta"`
}

// PerformanceSpec is the load-budget half of a LayoutDirective.
type PerformanceSpec struct {
	MaxLoadTime int `json:"max_load_time"` // milliseconds
}

// AssetSpec configures asset delivery.
type AssetSpec struct {
	ImageQuality  ImageQuality `json:"image_quality"`
	VideoAutoplay bool         `json:"video_autoplay"`
}

// LayoutDirective is the profiler output: a pure function of DeviceContext.
type LayoutDirective struct {
	Layout      LayoutSpec      `json:"layout"`
	Performance PerformanceSpec `json:"performance"`
	Assets      AssetSpec       `json:"assets"`
}

// Interaction is a single logged page interaction. Interactions arrive in
// arbitrary order; consumers sort by timestamp before scoring.
type Interaction struct {
	Type      string    `json:"type"` // click, scroll, hover, input, submit
	Element   string    `json:"element"`
	Timestamp time.Time `json:"timestamp"`
}

// UserPath is the navigation history for one session. It may be empty, which
// is a defined zero-case rather than an error.
type UserPath struct {
	Pages        []string      `json:"pages"`
	Timestamps   []time.Time   `json:"timestamps"`
	Interactions []Interaction `json:"interactions"`
	Referrer     string        `json:"referrer"`
	ExitPage     string        `json:"exit_page"`
}

// Empty reports whether the path carries no navigation signal at all.
func (p UserPath) Empty() bool {
	return len(p.Pages) == 0 && len(p.Interactions) == 0
}

// FunnelStage is the conversion-journey depth reached by a visitor.
type FunnelStage string

const (
	StageAwareness     FunnelStage = "awareness"
	StageConsideration FunnelStage = "consideration"
	StageDecision      FunnelStage = "decision"
	StagePurchase      FunnelStage = "purchase"
)

// IntentScore is the recognizer output. Recomputed fully on every call.
type IntentScore struct {
	Score               float64     `json:"score"` // 0-100
	Stage               FunnelStage `json:"stage"`
	Urgency             Level       `json:"urgency"`
	PredictedConversion float64     `json:"predicted_conversion"` // 0-100
}

// PerformanceMetrics are live page-timing measurements in milliseconds.
type PerformanceMetrics struct {
	LoadTime         float64 `json:"load_time"`
	RenderTime       float64 `json:"render_time"`
	InteractionDelay float64 `json:"interaction_delay"`
}

// EngagementMetrics are live engagement measurements.
type EngagementMetrics struct {
	ScrollDepth      float64 `json:"scroll_depth"` // 0-100 percent
	TimeOnPage       float64 `json:"time_on_page"` // seconds
	ClickThroughRate float64 `json:"click_through_rate"`
	BounceRate       float64 `json:"bounce_rate"` // 0-1
}

// ConversionMetrics are live conversion measurements, all 0-1 rates.
type ConversionMetrics struct {
	ConversionRate  float64 `json:"conversion_rate"`
	AbandonmentRate float64 `json:"abandonment_rate"`
	UpsellRate      float64 `json:"upsell_rate"`
}

// LiveMetrics is one telemetry snapshot from the analytics pipeline.
type LiveMetrics struct {
	Performance PerformanceMetrics `json:"performance"`
	Engagement  EngagementMetrics  `json:"engagement"`
	Conversion  ConversionMetrics  `json:"conversion"`
}

// PerformanceAdjustment recommends load-path mitigations.
type PerformanceAdjustment struct {
	EnableLazyLoading  bool     `json:"enable_lazy_loading"`
	ReduceImageQuality bool     `json:"reduce_image_quality"`
	ExceededBudgets    []string `json:"exceeded_budgets"`
}

// EngagementAdjustment recommends engagement mitigations.
type EngagementAdjustment struct {
	AddProgressIndicators  bool     `json:"add_progress_indicators"`
	AddInteractiveElements bool     `json:"add_interactive_elements"`
	Triggers               []string `json:"triggers"`
}

// ConversionAdjustment recommends conversion mitigations.
type ConversionAdjustment struct {
	EmphasizeValueProposition bool     `json:"emphasize_value_proposition"`
	OfferIncentive            bool     `json:"offer_incentive"`
	Triggers                  []string `json:"triggers"`
}

// AdaptationDirective is the sparse adapter output. Absent branches are nil;
// a directive with all three branches nil is the defined "no change" result.
type AdaptationDirective struct {
	Performance *PerformanceAdjustment `json:"performance,omitempty"`
	Engagement  *EngagementAdjustment  `json:"engagement,omitempty"`
	Conversion  *ConversionAdjustment  `json:"conversion,omitempty"`
}

// Empty reports whether no branch fired.
func (d AdaptationDirective) Empty() bool {
	return d.Performance == nil && d.Engagement == nil && d.Conversion == nil
}

// SessionInput bundles the per-call inputs to the engine. It mirrors what the
// web/session layer collects for one visitor and is the on-disk fixture format
// consumed by the CLI.
type SessionInput struct {
	SessionID string         `json:"session_id,omitempty"`
	Platform  string         `json:"platform"` // raw user-agent / platform string
	Behavior  BehaviorSignal `json:"behavior"`
	Device    DeviceContext  `json:"device"`
	Path      UserPath       `json:"path"`
	Metrics   LiveMetrics    `json:"metrics"`
}

// Decision is the engine output bundle for one call.
type Decision struct {
	SessionID   string              `json:"session_id"`
	Persona     PersonaProfile      `json:"persona"`
	Layout      LayoutDirective     `json:"layout"`
	Intent      IntentScore         `json:"intent"`
	Adjustments AdaptationDirective `json:"adjustments"`
}
