// Package engine composes the persona classifier, device profiler, intent
// recognizer, and real-time adapter into one decision bundle per call.
//
// The engine is the only stateful part of uxengine: it retains the
// last-computed persona per session in a bounded LRU store keyed by session
// ID. Keying the store removes the cross-session leakage a single
// last-write-wins slot would have under concurrent sessions; one engine
// instance can safely serve many sessions from many goroutines.
package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"uxengine/internal/adapt"
	"uxengine/internal/config"
	"uxengine/internal/device"
	"uxengine/internal/intent"
	"uxengine/internal/metrics"
	"uxengine/internal/persona"
	"uxengine/internal/types"
)

// Options configures a new Engine. All fields are optional: a nil Config
// means defaults, a nil Logger means no logging, a nil Metrics means no
// instrumentation.
type Options struct {
	Config  *config.Config
	Logger  *zap.Logger
	Metrics *metrics.Metrics
}

// Engine is the orchestrator. Safe for concurrent use.
type Engine struct {
	mu         sync.RWMutex
	budgets    adapt.Budgets
	intentOpts intent.Options

	sessions *lru.Cache[string, types.PersonaProfile]
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

// New builds an engine from options.
func New(opts Options) (*Engine, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	sessions, err := lru.New[string, types.PersonaProfile](cfg.Engine.SessionCapacity)
	if err != nil {
		return nil, err
	}

	return &Engine{
		budgets:    budgetsFromConfig(cfg.Budgets),
		intentOpts: intent.Options{HighUrgencyVelocity: cfg.Intent.HighUrgencyVelocity},
		sessions:   sessions,
		logger:     logger,
		metrics:    opts.Metrics,
	}, nil
}

// Optimize runs all four components over one session snapshot and returns the
// assembled decision bundle. The four component calls are independent; only
// the persona write touches shared state. An empty SessionID gets a freshly
// minted UUID so the caller can correlate follow-up calls.
func (e *Engine) Optimize(in types.SessionInput) types.Decision {
	sessionID := in.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	e.mu.RLock()
	budgets := e.budgets
	intentOpts := e.intentOpts
	e.mu.RUnlock()

	start := time.Now()
	prof := persona.Classify(in.Platform, in.Behavior)
	e.metrics.ObserveComponent(metrics.ComponentPersona, time.Since(start))

	start = time.Now()
	layout := device.Optimize(in.Device)
	e.metrics.ObserveComponent(metrics.ComponentDevice, time.Since(start))

	start = time.Now()
	score := intent.RecognizeWith(intentOpts, in.Path)
	e.metrics.ObserveComponent(metrics.ComponentIntent, time.Since(start))

	start = time.Now()
	adjustments := adapt.EvaluateWith(budgets, in.Metrics)
	e.metrics.ObserveComponent(metrics.ComponentAdapt, time.Since(start))

	e.sessions.Add(sessionID, prof)
	e.metrics.SetTrackedSessions(e.sessions.Len())
	e.metrics.CountDecision(string(prof.Type))
	e.countBranches(adjustments)

	e.logger.Debug("decision computed",
		zap.String("session_id", sessionID),
		zap.String("persona", string(prof.Type)),
		zap.Float64("confidence", prof.Confidence),
		zap.String("stage", string(score.Stage)),
		zap.Float64("intent_score", score.Score),
		zap.Bool("adjustments", !adjustments.Empty()),
	)

	return types.Decision{
		SessionID:   sessionID,
		Persona:     prof,
		Layout:      layout,
		Intent:      score,
		Adjustments: adjustments,
	}
}

// CurrentPersona returns the last persona computed for a session, if any.
func (e *Engine) CurrentPersona(sessionID string) (types.PersonaProfile, bool) {
	return e.sessions.Get(sessionID)
}

// ForgetSession drops one session from the store. The web layer calls this on
// explicit logout or consent withdrawal.
func (e *Engine) ForgetSession(sessionID string) {
	e.sessions.Remove(sessionID)
	e.metrics.SetTrackedSessions(e.sessions.Len())
}

// TrackedSessions reports how many sessions currently hold a cached persona.
func (e *Engine) TrackedSessions() int {
	return e.sessions.Len()
}

// Reconfigure swaps in new thresholds, typically from a config hot reload.
// In-flight calls keep the thresholds they started with.
func (e *Engine) Reconfigure(cfg *config.Config) {
	if cfg == nil {
		return
	}
	if err := cfg.Validate(); err != nil {
		e.logger.Warn("ignoring invalid config on reconfigure", zap.Error(err))
		return
	}

	e.mu.Lock()
	e.budgets = budgetsFromConfig(cfg.Budgets)
	e.intentOpts = intent.Options{HighUrgencyVelocity: cfg.Intent.HighUrgencyVelocity}
	e.mu.Unlock()

	e.logger.Info("engine thresholds reconfigured")
}

func (e *Engine) countBranches(d types.AdaptationDirective) {
	if d.Performance != nil {
		e.metrics.CountAdaptBranch("performance")
	}
	if d.Engagement != nil {
		e.metrics.CountAdaptBranch("engagement")
	}
	if d.Conversion != nil {
		e.metrics.CountAdaptBranch("conversion")
	}
}

func budgetsFromConfig(b config.BudgetsConfig) adapt.Budgets {
	return adapt.Budgets{
		LoadTimeMS:          b.LoadTimeMS,
		RenderTimeMS:        b.RenderTimeMS,
		InteractionDelayMS:  b.InteractionDelayMS,
		ScrollDepthFloor:    b.ScrollDepthFloor,
		TimeOnPageFloor:     b.TimeOnPageFloor,
		BounceRateCeil:      b.BounceRateCeil,
		ConversionRateFloor: b.ConversionRateFloor,
		AbandonmentRateCeil: b.AbandonmentRateCeil,
	}
}
