// Package tracer wraps OpenTelemetry tracing for the Weaviate client.
//
// When a *Tracer is passed to the client with weaviate.WithTracer, every
// request runs in its own client span, failures are recorded on the span,
// and the W3C trace context is injected into the outgoing HTTP headers so
// the server side can join the trace.
package tracer
