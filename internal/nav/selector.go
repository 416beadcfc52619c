// Package nav holds the active-page selector and its scroll side effects.
//
// A Selector owns exactly one View. Every navigation command bumps a
// generation sequence; deferred anchor scrolls carry the sequence they were
// issued under and are dropped at resolve time when it no longer matches.
// Scheduling itself is left to the caller (the UI turns requests into
// tea.Tick commands), so the selector stays synchronous and lock-free.
package nav

import (
	"time"

	"go.uber.org/zap"
)

// Scroller is the host document the selector drives.
type Scroller interface {
	// ScrollTop resets the scroll offset to (0,0).
	ScrollTop()
	// ScrollToAnchor brings the named anchor into view.
	// Returns false when no such anchor is mounted.
	ScrollToAnchor(id string) bool
}

// Outcome is the result of resolving a deferred anchor scroll.
type Outcome int

const (
	OutcomeScrolled Outcome = iota
	OutcomeMissing
	OutcomeStale
	OutcomeRetry
)

func (o Outcome) String() string {
	switch o {
	case OutcomeScrolled:
		return "scrolled"
	case OutcomeMissing:
		return "missing"
	case OutcomeStale:
		return "stale"
	case OutcomeRetry:
		return "retry"
	default:
		return "unknown"
	}
}

// AnchorRequest is a pending scroll to a named section of View.
type AnchorRequest struct {
	Seq     uint64
	View    View
	Anchor  string
	Attempt int
}

// Observer is notified of view changes and anchor resolutions.
type Observer interface {
	ViewChanged(from, to View)
	AnchorResolved(req AnchorRequest, outcome Outcome)
}

// Config controls the deferred anchor scroll timing.
type Config struct {
	// AnchorDelay is the wait before the first attempt, giving the new page
	// time to mount.
	AnchorDelay time.Duration
	// PollInterval is the wait between later attempts while the anchor is
	// not yet mounted.
	PollInterval time.Duration
	// MaxPolls bounds the attempts after the first. Zero means a single try.
	MaxPolls int
}

// DefaultConfig returns the stock timings.
func DefaultConfig() Config {
	return Config{
		AnchorDelay:  100 * time.Millisecond,
		PollInterval: 50 * time.Millisecond,
		MaxPolls:     5,
	}
}

// Option customizes a Selector.
type Option func(*Selector)

// WithConfig overrides the anchor timings.
func WithConfig(cfg Config) Option {
	return func(s *Selector) { s.cfg = cfg }
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Selector) {
		if l != nil {
			s.log = l
		}
	}
}

// WithObserver registers an observer for view changes and anchor outcomes.
func WithObserver(o Observer) Option {
	return func(s *Selector) { s.obs = o }
}

// WithInitialView starts the selector on v instead of Home.
func WithInitialView(v View) Option {
	return func(s *Selector) { s.current = v }
}

// Selector tracks which page is displayed.
type Selector struct {
	current  View
	seq      uint64
	pending  *AnchorRequest
	scroller Scroller
	cfg      Config
	log      *zap.Logger
	obs      Observer
}

// NewSelector creates a selector on Home driving scroller.
func NewSelector(scroller Scroller, opts ...Option) *Selector {
	s := &Selector{
		current:  Home,
		scroller: scroller,
		cfg:      DefaultConfig(),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Current returns the active view.
func (s *Selector) Current() View {
	return s.current
}

// Delay returns the wait before the first anchor attempt.
func (s *Selector) Delay() time.Duration {
	return s.cfg.AnchorDelay
}

// PollInterval returns the wait between anchor attempts.
func (s *Selector) PollInterval() time.Duration {
	return s.cfg.PollInterval
}

// Pending returns the outstanding anchor request, if any.
func (s *Selector) Pending() (AnchorRequest, bool) {
	if s.pending == nil {
		return AnchorRequest{}, false
	}
	return *s.pending, true
}

// SetActiveView replaces the active view. Any pending anchor scroll is
// cancelled; a later Resolve for it reports OutcomeStale.
func (s *Selector) SetActiveView(target View) {
	from := s.current
	s.current = target
	s.supersede()
	if from != target {
		s.log.Info("view changed",
			zap.Stringer("from", from),
			zap.Stringer("to", target))
	}
	if s.obs != nil {
		s.obs.ViewChanged(from, target)
	}
}

// NavigateAndScrollTop sets the view and resets the scroll offset.
func (s *Selector) NavigateAndScrollTop(target View) {
	s.SetActiveView(target)
	if s.scroller != nil {
		s.scroller.ScrollTop()
	}
}

// NavigateToAnchor sets the view, resets the scroll offset and, when target
// is Home, returns a request the caller must resolve after Delay.
// For any other target the anchor is ignored and no request is issued.
func (s *Selector) NavigateToAnchor(target View, anchor string) (AnchorRequest, bool) {
	s.NavigateAndScrollTop(target)
	if target != Home || anchor == "" {
		return AnchorRequest{}, false
	}
	req := AnchorRequest{Seq: s.seq, View: target, Anchor: anchor}
	s.pending = &req
	return req, true
}

// supersede starts a new generation, so any deferred scroll issued before
// it resolves as OutcomeStale.
func (s *Selector) supersede() {
	s.seq++
	if s.pending != nil {
		s.log.Debug("anchor scroll cancelled",
			zap.String("anchor", s.pending.Anchor),
			zap.Uint64("seq", s.pending.Seq))
		s.pending = nil
	}
}

// ScrollToAnchorNow scrolls to an anchor of the current page without
// changing views. Reports whether the anchor was found. It is a navigation
// command of its own: a pending deferred scroll is cancelled either way.
func (s *Selector) ScrollToAnchorNow(anchor string) bool {
	s.supersede()
	if s.scroller == nil {
		return false
	}
	return s.scroller.ScrollToAnchor(anchor)
}

// Resolve performs a deferred anchor scroll.
// When the anchor is not yet mounted and polls remain, it returns
// OutcomeRetry together with the follow-up request to schedule after
// PollInterval. A missing anchor is otherwise a silent no-op.
func (s *Selector) Resolve(req AnchorRequest) (Outcome, AnchorRequest) {
	outcome, next := s.resolve(req)
	switch outcome {
	case OutcomeRetry:
		s.pending = &next
	case OutcomeScrolled, OutcomeMissing:
		s.pending = nil
	}
	s.log.Debug("anchor resolved",
		zap.String("anchor", req.Anchor),
		zap.Int("attempt", req.Attempt),
		zap.Stringer("outcome", outcome))
	if s.obs != nil {
		s.obs.AnchorResolved(req, outcome)
	}
	return outcome, next
}

func (s *Selector) resolve(req AnchorRequest) (Outcome, AnchorRequest) {
	if req.Seq != s.seq || req.View != s.current {
		return OutcomeStale, AnchorRequest{}
	}
	if s.scroller != nil && s.scroller.ScrollToAnchor(req.Anchor) {
		return OutcomeScrolled, AnchorRequest{}
	}
	if req.Attempt < s.cfg.MaxPolls {
		next := req
		next.Attempt++
		return OutcomeRetry, next
	}
	return OutcomeMissing, AnchorRequest{}
}
