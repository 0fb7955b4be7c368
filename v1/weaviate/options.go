package weaviate

import (
	"net/url"
	"strings"

	"github.com/Aleph-Alpha/weaviate/v1/weaviate/models"
)

// CallOption sets a per-call query parameter. Operations ignore options
// their endpoint does not accept.
type CallOption func(*callOptions)

type callOptions struct {
	consistency models.ConsistencyLevel
	tenant      string
	include     []string
}

// WithConsistencyLevel sets consistency_level on writes and reads of
// replicated classes.
func WithConsistencyLevel(level models.ConsistencyLevel) CallOption {
	return func(o *callOptions) { o.consistency = level }
}

// WithTenant targets one tenant of a multi-tenant class.
func WithTenant(tenant string) CallOption {
	return func(o *callOptions) { o.tenant = tenant }
}

// WithInclude requests additional fields such as models.IncludeVector.
func WithInclude(fields ...string) CallOption {
	return func(o *callOptions) { o.include = append(o.include, fields...) }
}

func applyOptions(opts []CallOption) callOptions {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type queryParam int

const (
	paramConsistency queryParam = iota
	paramTenant
	paramInclude
)

// query encodes the options named in params.
func (o callOptions) query(params ...queryParam) url.Values {
	q := url.Values{}
	for _, p := range params {
		switch p {
		case paramConsistency:
			if o.consistency != "" {
				q.Set("consistency_level", string(o.consistency))
			}
		case paramTenant:
			if o.tenant != "" {
				q.Set("tenant", o.tenant)
			}
		case paramInclude:
			if len(o.include) > 0 {
				q.Set("include", strings.Join(o.include, ","))
			}
		}
	}
	return q
}
