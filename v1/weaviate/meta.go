package weaviate

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Aleph-Alpha/weaviate/v1/weaviate/models"
)

// Meta reads server metadata.
type Meta struct {
	t *transport
}

// Get returns the server version, hostname and enabled modules.
func (m *Meta) Get(ctx context.Context) (*models.Meta, error) {
	var out models.Meta
	if err := m.t.doJSON(ctx, request{op: "meta.get", method: http.MethodGet, path: "/meta"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Nodes reads cluster membership.
type Nodes struct {
	t *transport
}

// Status returns every node with its shards and statistics.
func (n *Nodes) Status(ctx context.Context) (*models.NodesStatus, error) {
	var out models.NodesStatus
	if err := n.t.doJSON(ctx, request{op: "nodes.status", method: http.MethodGet, path: "/nodes"}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// OIDC discovers the OpenID Connect provider of the server.
type OIDC struct {
	t *transport
}

// GetConfig returns the provider discovery document. A server without a
// provider yields an error matching ErrOIDCNotConfigured.
func (o *OIDC) GetConfig(ctx context.Context) (*models.OIDCConfig, error) {
	var out models.OIDCConfig
	r := request{op: "oidc.get_config", method: http.MethodGet, path: "/.well-known/openid-configuration"}
	if err := o.t.doJSON(ctx, r, &out); err != nil {
		if IsNotFound(err) {
			return nil, fmt.Errorf("%w: %w", ErrOIDCNotConfigured, err)
		}
		return nil, err
	}
	return &out, nil
}

// Modules calls module specific endpoints.
type Modules struct {
	t *transport
}

const contextionaryPath = "/modules/text2vec-contextionary"

// ContextionaryConcept looks up how the contextionary understands concept.
func (m *Modules) ContextionaryConcept(ctx context.Context, concept string) (*models.ContextionaryConcept, error) {
	const op = "modules.contextionary_concept"
	if concept == "" {
		return nil, invalid(op, errors.New("concept is empty"))
	}
	var out models.ContextionaryConcept
	r := request{op: op, method: http.MethodGet, path: contextionaryPath + "/concepts/" + url.PathEscape(concept)}
	if err := m.t.doJSON(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ContextionaryExtend teaches the contextionary a new concept.
func (m *Modules) ContextionaryExtend(ctx context.Context, ext models.ContextionaryExtension) (*models.ContextionaryExtension, error) {
	const op = "modules.contextionary_extend"
	if err := ext.Validate(); err != nil {
		return nil, invalid(op, err)
	}
	var out models.ContextionaryExtension
	r := request{op: op, method: http.MethodPost, path: contextionaryPath + "/extensions", body: ext}
	if err := m.t.doJSON(ctx, r, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
