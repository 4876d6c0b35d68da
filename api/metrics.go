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
	tracerName       = "taskpad/api"
	tasksRoute       = "/api/tasks"
	tasksSpanName    = "tasks.fetch"
	tasksEventName   = "tasks.list"
	tasksEventDomain = "taskpad"
)

// taskRequestMetrics collects stage timings for the list endpoint and emits
// them both as a span and as a structured observability log record.
type taskRequestMetrics struct {
	logger         *log.Logger
	span           trace.Span
	start          time.Time
	fetchDuration  time.Duration
	encodeDuration time.Duration
	tasksReturned  int
	errorStage     string
}

// newTaskRequestMetrics starts the request span and returns the span-scoped
// context for downstream calls.
func newTaskRequestMetrics(ctx context.Context, logger *log.Logger) (*taskRequestMetrics, context.Context) {
	m := &taskRequestMetrics{
		logger: logger,
		start:  time.Now(),
	}
	spanCtx, span := otel.Tracer(tracerName).Start(ctx, tasksSpanName,
		trace.WithSpanKind(trace.SpanKindServer),
		trace.WithAttributes(attribute.String("http.route", tasksRoute)),
	)
	m.span = span
	return m, spanCtx
}

func (m *taskRequestMetrics) ObserveFetch(duration time.Duration) {
	if duration <= 0 {
		return
	}
	m.fetchDuration = duration
}

func (m *taskRequestMetrics) ObserveEncode(duration time.Duration) {
	if duration <= 0 {
		return
	}
	m.encodeDuration = duration
}

func (m *taskRequestMetrics) SetTasksReturned(count int) {
	if count < 0 {
		count = 0
	}
	m.tasksReturned = count
}

func (m *taskRequestMetrics) SetErrorStage(stage string) {
	if stage == "" {
		return
	}
	m.errorStage = stage
}

// Log finishes the span and writes the observability event. It must be
// called exactly once per request.
func (m *taskRequestMetrics) Log(status int, err error) {
	if m == nil || m.logger == nil {
		return
	}

	totalMillis := durationToMillis(time.Since(m.start))

	attrs := map[string]any{
		"http.route":                   tasksRoute,
		"http.status_code":             status,
		"taskpad.tasks.total_ms":       totalMillis,
		"taskpad.tasks.tasks_returned": m.tasksReturned,
	}
	spanAttrs := []attribute.KeyValue{
		attribute.Int("http.status_code", status),
		attribute.Float64("taskpad.tasks.total_ms", totalMillis),
		attribute.Int("taskpad.tasks.tasks_returned", m.tasksReturned),
	}
	if m.fetchDuration > 0 {
		fetchMillis := durationToMillis(m.fetchDuration)
		attrs["taskpad.tasks.fetch_ms"] = fetchMillis
		spanAttrs = append(spanAttrs, attribute.Float64("taskpad.tasks.fetch_ms", fetchMillis))
	}
	if m.encodeDuration > 0 {
		encodeMillis := durationToMillis(m.encodeDuration)
		attrs["taskpad.tasks.encode_ms"] = encodeMillis
		spanAttrs = append(spanAttrs, attribute.Float64("taskpad.tasks.encode_ms", encodeMillis))
	}
	if m.errorStage != "" {
		attrs["taskpad.tasks.error_stage"] = m.errorStage
		spanAttrs = append(spanAttrs, attribute.String("taskpad.tasks.error_stage", m.errorStage))
	}
	if err != nil {
		attrs["error"] = err.Error()
	}

	severityText := "INFO"
	severityNumber := 9
	if err != nil || m.errorStage != "" {
		severityText = "ERROR"
		severityNumber = 17
	}

	if m.span != nil {
		m.span.SetAttributes(spanAttrs...)
		eventAttrs := append([]attribute.KeyValue{
			attribute.String("event.name", tasksEventName),
			attribute.String("event.domain", tasksEventDomain),
			attribute.String("severity_text", severityText),
		}, spanAttrs...)
		m.span.AddEvent("observability.event", trace.WithAttributes(eventAttrs...))
		if err != nil {
			m.span.RecordError(err)
			m.span.SetStatus(codes.Error, err.Error())
		} else if m.errorStage != "" {
			m.span.SetStatus(codes.Error, m.errorStage)
		} else {
			m.span.SetStatus(codes.Ok, "")
		}
		m.span.End()
	}

	fields := log.Fields{
		"event.name":      tasksEventName,
		"event.domain":    tasksEventDomain,
		"attributes":      attrs,
		"severity_text":   severityText,
		"severity_number": severityNumber,
	}
	if m.span != nil && m.span.SpanContext().HasTraceID() {
		fields["trace_id"] = m.span.SpanContext().TraceID().String()
	}

	entry := m.logger.WithFields(fields)
	if severityText == "ERROR" {
		entry.Error("observability.event")
	} else {
		entry.Info("observability.event")
	}
}

func durationToMillis(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(d) / float64(time.Millisecond)
}
