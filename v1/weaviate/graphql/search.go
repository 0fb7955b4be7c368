package graphql

import (
	"strconv"
	"strings"

	"github.com/go-openapi/strfmt"

	"github.com/Aleph-Alpha/weaviate/v1/weaviate/models"
)

// args collects "name: value" pairs of a GraphQL field in insertion order.
type args []string

func (a *args) add(name, value string) {
	*a = append(*a, name+": "+value)
}

func (a args) String() string {
	if len(a) == 0 {
		return ""
	}
	return "(" + strings.Join(a, ", ") + ")"
}

func quote(s string) string { return models.GraphQLString(s) }

func quoteAll(ss []string) string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = quote(s)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatFloat(f float64) string { return models.GraphQLFloat(f) }

func formatVector(v []float32) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = models.GraphQLFloat32(f)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func object(a args) string {
	return "{" + strings.Join(a, ", ") + "}"
}

// Move shifts a nearText query towards or away from concepts or objects.
type Move struct {
	Concepts []string
	Objects  []strfmt.UUID
	Force    float64
}

func (m Move) render() string {
	var a args
	if len(m.Concepts) > 0 {
		a.add("concepts", quoteAll(m.Concepts))
	}
	if len(m.Objects) > 0 {
		objs := make([]string, len(m.Objects))
		for i, id := range m.Objects {
			objs[i] = "{id: " + quote(id.String()) + "}"
		}
		a.add("objects", "["+strings.Join(objs, ", ")+"]")
	}
	a.add("force", formatFloat(m.Force))
	return object(a)
}

// NearText searches by concepts vectorized on the server.
type NearText struct {
	concepts     []string
	certainty    *float64
	distance     *float64
	moveTo       *Move
	moveAwayFrom *Move
}

// NewNearText searches by concepts.
func NewNearText(concepts ...string) NearText {
	return NearText{concepts: append([]string(nil), concepts...)}
}

// WithCertainty sets the minimum certainty.
func (n NearText) WithCertainty(c float64) NearText {
	n.certainty = &c
	return n
}

// WithDistance sets the maximum distance.
func (n NearText) WithDistance(d float64) NearText {
	n.distance = &d
	return n
}

// WithMoveTo shifts the query towards m.
func (n NearText) WithMoveTo(m Move) NearText {
	n.moveTo = &m
	return n
}

// WithMoveAwayFrom shifts the query away from m.
func (n NearText) WithMoveAwayFrom(m Move) NearText {
	n.moveAwayFrom = &m
	return n
}

func (n NearText) render() string {
	var a args
	a.add("concepts", quoteAll(n.concepts))
	addThreshold(&a, n.certainty, n.distance)
	if n.moveTo != nil {
		a.add("moveTo", n.moveTo.render())
	}
	if n.moveAwayFrom != nil {
		a.add("moveAwayFrom", n.moveAwayFrom.render())
	}
	return object(a)
}

func addThreshold(a *args, certainty, distance *float64) {
	if certainty != nil {
		a.add("certainty", formatFloat(*certainty))
	}
	if distance != nil {
		a.add("distance", formatFloat(*distance))
	}
}

// NearVector searches by a query vector.
type NearVector struct {
	vector    []float32
	certainty *float64
	distance  *float64
}

// NewNearVector searches by vector.
func NewNearVector(vector []float32) NearVector {
	return NearVector{vector: append([]float32(nil), vector...)}
}

// WithCertainty sets the minimum certainty.
func (n NearVector) WithCertainty(c float64) NearVector {
	n.certainty = &c
	return n
}

// WithDistance sets the maximum distance.
func (n NearVector) WithDistance(d float64) NearVector {
	n.distance = &d
	return n
}

func (n NearVector) render() string {
	var a args
	a.add("vector", formatVector(n.vector))
	addThreshold(&a, n.certainty, n.distance)
	return object(a)
}

// NearObject searches by the vector of a stored object.
type NearObject struct {
	id        strfmt.UUID
	beacon    string
	certainty *float64
	distance  *float64
}

// NewNearObject searches by the vector of the object id.
func NewNearObject(id strfmt.UUID) NearObject { return NearObject{id: id} }

// NewNearObjectBeacon targets an object by beacon, e.g. one in another class.
func NewNearObjectBeacon(beacon models.Beacon) NearObject {
	return NearObject{beacon: beacon.Beacon}
}

// WithCertainty sets the minimum certainty.
func (n NearObject) WithCertainty(c float64) NearObject {
	n.certainty = &c
	return n
}

// WithDistance sets the maximum distance.
func (n NearObject) WithDistance(d float64) NearObject {
	n.distance = &d
	return n
}

func (n NearObject) render() string {
	var a args
	if n.id != "" {
		a.add("id", quote(n.id.String()))
	}
	if n.beacon != "" {
		a.add("beacon", quote(n.beacon))
	}
	addThreshold(&a, n.certainty, n.distance)
	return object(a)
}

// BM25 is a keyword search.
type BM25 struct {
	query      string
	properties []string
}

// NewBM25 is a keyword search over properties, or all text properties when none are given.
func NewBM25(query string, properties ...string) BM25 {
	return BM25{query: query, properties: append([]string(nil), properties...)}
}

func (b BM25) render() string {
	var a args
	a.add("query", quote(b.query))
	if len(b.properties) > 0 {
		a.add("properties", quoteAll(b.properties))
	}
	return object(a)
}

// Fusion algorithms of hybrid search.
const (
	FusionRanked        = "rankedFusion"
	FusionRelativeScore = "relativeScoreFusion"
)

// Hybrid combines keyword and vector search. Alpha 1 is pure vector
// search, 0 pure keyword search.
type Hybrid struct {
	query      string
	alpha      *float64
	vector     []float32
	properties []string
	fusionType string
}

// NewHybrid combines keyword and vector search for query.
func NewHybrid(query string) Hybrid { return Hybrid{query: query} }

// WithAlpha weights vector search against keyword search; 1 is pure vector.
func (h Hybrid) WithAlpha(alpha float64) Hybrid {
	h.alpha = &alpha
	return h
}

// WithVector supplies the vector instead of vectorizing query.
func (h Hybrid) WithVector(v []float32) Hybrid {
	h.vector = append([]float32(nil), v...)
	return h
}

// WithProperties appends properties for the keyword part.
func (h Hybrid) WithProperties(props ...string) Hybrid {
	h.properties = append(append([]string(nil), h.properties...), props...)
	return h
}

// WithFusionType selects how the two result lists are merged.
func (h Hybrid) WithFusionType(fusion string) Hybrid {
	h.fusionType = fusion
	return h
}

func (h Hybrid) render() string {
	var a args
	a.add("query", quote(h.query))
	if h.alpha != nil {
		a.add("alpha", formatFloat(*h.alpha))
	}
	if h.vector != nil {
		a.add("vector", formatVector(h.vector))
	}
	if len(h.properties) > 0 {
		a.add("properties", quoteAll(h.properties))
	}
	if h.fusionType != "" {
		a.add("fusionType", h.fusionType)
	}
	return object(a)
}

// Ask is a question answering search of the qna modules.
type Ask struct {
	question   string
	properties []string
	certainty  *float64
	rerank     *bool
}

// NewAsk asks question against properties.
func NewAsk(question string, properties ...string) Ask {
	return Ask{question: question, properties: append([]string(nil), properties...)}
}

// WithCertainty sets the minimum answer certainty.
func (q Ask) WithCertainty(c float64) Ask {
	q.certainty = &c
	return q
}

// WithRerank reorders results by answer score.
func (q Ask) WithRerank(rerank bool) Ask {
	q.rerank = &rerank
	return q
}

func (q Ask) render() string {
	var a args
	a.add("question", quote(q.question))
	if len(q.properties) > 0 {
		a.add("properties", quoteAll(q.properties))
	}
	if q.certainty != nil {
		a.add("certainty", formatFloat(*q.certainty))
	}
	if q.rerank != nil {
		a.add("rerank", strconv.FormatBool(*q.rerank))
	}
	return object(a)
}

// GroupBy groups Get results by a property.
type GroupBy struct {
	Path            []string
	Groups          int
	ObjectsPerGroup int
}

func (g GroupBy) render() string {
	var a args
	a.add("path", quoteAll(g.Path))
	a.add("groups", strconv.Itoa(g.Groups))
	a.add("objectsPerGroup", strconv.Itoa(g.ObjectsPerGroup))
	return object(a)
}

// Sort orders Get results. Order is "asc" or "desc".
type Sort struct {
	Path  []string
	Order string
}

func renderSort(sorts []Sort) string {
	parts := make([]string, len(sorts))
	for i, s := range sorts {
		var a args
		a.add("path", quoteAll(s.Path))
		if s.Order != "" {
			a.add("order", s.Order)
		}
		parts[i] = object(a)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
