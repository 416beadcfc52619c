// Package telemetry wires structured logging and tracing for navigation.
package telemetry

import (
	"context"

	"qualitybuilt/internal/nav"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	oteltrace "go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// Span names and attribute keys.
const (
	SpanViewChange    = "qualitybuilt.view.change"
	SpanAnchorResolve = "qualitybuilt.anchor.resolve"

	AttrFrom    = "qualitybuilt.view.from"
	AttrTo      = "qualitybuilt.view.to"
	AttrAnchor  = "qualitybuilt.anchor.id"
	AttrAttempt = "qualitybuilt.anchor.attempt"
	AttrOutcome = "qualitybuilt.anchor.outcome"
)

// Tracer records navigation as spans. It implements nav.Observer.
type Tracer struct {
	tracer oteltrace.Tracer
}

var _ nav.Observer = (*Tracer)(nil)

// NewTracer wraps provider. A nil provider yields a no-op tracer.
func NewTracer(provider oteltrace.TracerProvider) *Tracer {
	if provider == nil {
		provider = noop.NewTracerProvider()
	}
	return &Tracer{tracer: provider.Tracer("qualitybuilt/nav")}
}

// ViewChanged implements nav.Observer.
func (t *Tracer) ViewChanged(from, to nav.View) {
	_, span := t.tracer.Start(context.Background(), SpanViewChange)
	span.SetAttributes(
		attribute.String(AttrFrom, from.String()),
		attribute.String(AttrTo, to.String()),
	)
	span.End()
}

// AnchorResolved implements nav.Observer.
// A missing anchor is not an error; it is marked only through the outcome.
func (t *Tracer) AnchorResolved(req nav.AnchorRequest, outcome nav.Outcome) {
	_, span := t.tracer.Start(context.Background(), SpanAnchorResolve)
	span.SetAttributes(
		attribute.String(AttrTo, req.View.String()),
		attribute.String(AttrAnchor, req.Anchor),
		attribute.Int(AttrAttempt, req.Attempt),
		attribute.String(AttrOutcome, outcome.String()),
	)
	if outcome == nav.OutcomeScrolled {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
