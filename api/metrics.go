package api

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	decksRoute       = "/api/decks"
	decksSpanName    = "portfolio.api.decks.request"
	decksEventName   = "portfolio.api.decks.request"
	decksEventDomain = "app"
	decksAttrPrefix  = "portfolio.decks."
)

// deckRequestMetrics accumulates per-request timings and counters for the
// deck endpoint and emits them once, as an OTel span plus a structured
// observability.event log entry.
type deckRequestMetrics struct {
	logger          *log.Logger
	span            trace.Span
	start           time.Time
	authDuration    time.Duration
	renderDuration  time.Duration
	deliverDuration time.Duration
	deckID          string
	records         int
	pages           int
	duplicate       bool
	errorStage      string
}

func newDeckRequestMetrics(ctx context.Context, logger *log.Logger) (*deckRequestMetrics, context.Context) {
	tracer := otel.Tracer("portfolio-deck-api/api")
	spanCtx, span := tracer.Start(ctx, decksSpanName,
		trace.WithAttributes(attribute.String("http.route", decksRoute)))
	return &deckRequestMetrics{
		logger: logger,
		span:   span,
		start:  time.Now(),
	}, spanCtx
}

func (m *deckRequestMetrics) ObserveAuth(duration time.Duration) {
	if duration <= 0 {
		return
	}
	m.authDuration = duration
}

func (m *deckRequestMetrics) ObserveRender(duration time.Duration) {
	if duration <= 0 {
		return
	}
	m.renderDuration = duration
}

func (m *deckRequestMetrics) ObserveDeliver(duration time.Duration) {
	if duration <= 0 {
		return
	}
	m.deliverDuration = duration
}

func (m *deckRequestMetrics) SetDeckID(id string) {
	m.deckID = id
}

func (m *deckRequestMetrics) SetRecords(count int) {
	if count < 0 {
		count = 0
	}
	m.records = count
}

func (m *deckRequestMetrics) SetPages(count int) {
	if count < 0 {
		count = 0
	}
	m.pages = count
}

func (m *deckRequestMetrics) SetDuplicate(duplicate bool) {
	m.duplicate = duplicate
}

func (m *deckRequestMetrics) SetErrorStage(stage string) {
	if stage == "" {
		return
	}
	m.errorStage = stage
}

// Log finalizes the request span and writes the observability event. Call
// exactly once per request.
func (m *deckRequestMetrics) Log(status int, err error) {
	if m == nil || m.logger == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("http.route", decksRoute),
		attribute.Int("http.status_code", status),
		attribute.Float64(decksAttrPrefix+"total_ms", durationToMillis(time.Since(m.start))),
		attribute.Int(decksAttrPrefix+"records", m.records),
		attribute.Int(decksAttrPrefix+"pages", m.pages),
		attribute.Bool(decksAttrPrefix+"duplicate", m.duplicate),
	}
	if m.deckID != "" {
		attrs = append(attrs, attribute.String(decksAttrPrefix+"deck_id", m.deckID))
	}
	if m.authDuration > 0 {
		attrs = append(attrs, attribute.Float64(decksAttrPrefix+"auth_ms", durationToMillis(m.authDuration)))
	}
	if m.renderDuration > 0 {
		attrs = append(attrs, attribute.Float64(decksAttrPrefix+"render_ms", durationToMillis(m.renderDuration)))
	}
	if m.deliverDuration > 0 {
		attrs = append(attrs, attribute.Float64(decksAttrPrefix+"deliver_ms", durationToMillis(m.deliverDuration)))
	}
	if m.errorStage != "" {
		attrs = append(attrs, attribute.String(decksAttrPrefix+"error_stage", m.errorStage))
	}

	severityText, severityNumber := severityForStatus(status, err)
	eventAttrs := make([]attribute.KeyValue, 0, len(attrs)+5)
	eventAttrs = append(eventAttrs,
		attribute.String("event.name", decksEventName),
		attribute.String("event.domain", decksEventDomain),
		attribute.String("severity_text", severityText),
		attribute.Int("severity_number", severityNumber),
	)
	eventAttrs = append(eventAttrs, attrs...)
	if err != nil {
		eventAttrs = append(eventAttrs, attribute.String("error.message", err.Error()))
	}

	if m.span != nil {
		m.span.SetAttributes(attrs...)
		m.span.AddEvent("observability.event", trace.WithAttributes(eventAttrs...))
		if severityText == "ERROR" {
			desc := "request failed"
			if err != nil {
				desc = err.Error()
			}
			m.span.SetStatus(codes.Error, desc)
		} else {
			m.span.SetStatus(codes.Ok, "")
		}
		m.span.End()
	}

	fields := log.Fields{
		"event.name":      decksEventName,
		"event.domain":    decksEventDomain,
		"severity_text":   severityText,
		"severity_number": severityNumber,
		"attributes":      attributesAsFields(attrs),
	}
	if m.span != nil {
		if sc := m.span.SpanContext(); sc.HasTraceID() {
			fields["trace_id"] = sc.TraceID().String()
		}
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	m.logger.WithFields(fields).Info("observability.event")
}

func severityForStatus(status int, err error) (string, int) {
	switch {
	case err != nil || status >= 500:
		return "ERROR", 17
	case status >= 400:
		return "WARN", 13
	default:
		return "INFO", 9
	}
}

func attributesAsFields(attrs []attribute.KeyValue) map[string]any {
	out := make(map[string]any, len(attrs))
	for _, kv := range attrs {
		out[string(kv.Key)] = kv.Value.AsInterface()
	}
	return out
}

func durationToMillis(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(d) / float64(time.Millisecond)
}
