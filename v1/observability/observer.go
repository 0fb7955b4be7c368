// Package observability defines the hook through which clients report the
// operations they perform.
package observability

import "time"

// OperationContext describes one completed operation.
type OperationContext struct {
	// Component is the client reporting, e.g. "weaviate".
	Component string

	// Operation is the logical operation, e.g. "schema.create_class".
	Operation string

	// Resource is what was operated on, usually the request path.
	Resource string

	// SubResource carries extra context such as the HTTP method.
	SubResource string

	Duration time.Duration

	// Error is nil on success.
	Error error

	// Size is the number of response bytes, when known.
	Size int64

	Metadata map[string]interface{}
}

// Observer receives operation reports. Implementations must be safe for
// concurrent use.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx OperationContext)

func (f ObserverFunc) ObserveOperation(ctx OperationContext) { f(ctx) }

// Multi fans a report out to several observers; nil entries are skipped.
func Multi(observers ...Observer) Observer {
	var list []Observer
	for _, o := range observers {
		if o != nil {
			list = append(list, o)
		}
	}
	return multi(list)
}

type multi []Observer

func (m multi) ObserveOperation(ctx OperationContext) {
	for _, o := range m {
		o.ObserveOperation(ctx)
	}
}

// Status returns "success" or "error" for use as a metric label.
func (c OperationContext) Status() string {
	if c.Error != nil {
		return "error"
	}
	return "success"
}
