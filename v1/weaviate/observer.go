package weaviate

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/weaviate/v1/logger"
	"github.com/Aleph-Alpha/weaviate/v1/observability"
	"github.com/Aleph-Alpha/weaviate/v1/tracer"
)

const component = "weaviate"

// PollObserver is implemented by observers that count status checks of
// long-running jobs. *metrics.Metrics implements it.
type PollObserver interface {
	IncrementPollAttempts(job string)
}

// pollObservers fans a poll attempt out to several observers.
type pollObservers []PollObserver

func (p pollObservers) IncrementPollAttempts(job string) {
	for _, o := range p {
		o.IncrementPollAttempts(job)
	}
}

// clientObserver fans a request out to the configured logger, observer and
// tracer. Every field is optional.
type clientObserver struct {
	logger       logger.Logger
	observer     observability.Observer
	pollObserver PollObserver
	tracer       *tracer.Tracer
}

// operation names one façade call for logs, metrics and spans.
type operation struct {
	name   string
	method string
	path   string
}

// start opens a span for op when tracing is enabled. The returned function
// must be called exactly once with the outcome.
func (o *clientObserver) start(ctx context.Context, op operation) (context.Context, func(status int, size int64, err error)) {
	begin := time.Now()

	var span trace.Span
	if o.tracer != nil {
		ctx, span = o.tracer.StartSpan(ctx, "weaviate."+op.name)
		o.tracer.SetAttributes(span, map[string]interface{}{
			"http.method": op.method,
			"http.route":  op.path,
		})
	}

	return ctx, func(status int, size int64, err error) {
		duration := time.Since(begin)
		if span != nil {
			if status > 0 {
				o.tracer.SetAttributes(span, map[string]interface{}{"http.status_code": status})
			}
			if err != nil {
				o.tracer.RecordErrorOnSpan(span, err)
			}
			span.End()
		}
		o.observe(ctx, op, status, size, duration, err)
	}
}

func (o *clientObserver) observe(ctx context.Context, op operation, status int, size int64, duration time.Duration, err error) {
	fields := map[string]interface{}{
		"operation":   op.name,
		"method":      op.method,
		"path":        op.path,
		"duration_ms": duration.Milliseconds(),
	}
	if status > 0 {
		fields["status_code"] = status
	}

	if o.logger != nil {
		if err != nil {
			o.logger.WarnWithContext(ctx, "weaviate request failed", err, fields)
		} else {
			o.logger.DebugWithContext(ctx, "weaviate request", nil, fields)
		}
	}

	if o.observer != nil {
		o.observer.ObserveOperation(observability.OperationContext{
			Component:   component,
			Operation:   op.name,
			Resource:    op.path,
			SubResource: op.method,
			Duration:    duration,
			Error:       err,
			Size:        size,
			Metadata:    map[string]interface{}{"status_code": status},
		})
	}
}

func (o *clientObserver) pollAttempt(job string) {
	if o.pollObserver != nil {
		o.pollObserver.IncrementPollAttempts(job)
	}
}
