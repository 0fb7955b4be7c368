package vectordb

import (
	"encoding/json"
	"fmt"
	"time"
)

// NewFilterSet builds a FilterSet from clauses:
//
//	vectordb.NewFilterSet(
//	    vectordb.Must(vectordb.NewMatch("status", "published")),
//	    vectordb.Should(vectordb.NewMatch("tag", "ml"), vectordb.NewMatch("tag", "ai")),
//	)
func NewFilterSet(clauses ...func(*FilterSet)) *FilterSet {
	fs := &FilterSet{}
	for _, clause := range clauses {
		clause(fs)
	}
	return fs
}

// Must appends conditions that all have to hold.
func Must(conditions ...Condition) func(*FilterSet) {
	return func(fs *FilterSet) { fs.Must = append(fs.Must, conditions...) }
}

// Should appends conditions of which at least one has to hold.
func Should(conditions ...Condition) func(*FilterSet) {
	return func(fs *FilterSet) { fs.Should = append(fs.Should, conditions...) }
}

// MustNot appends conditions that must not hold.
func MustNot(conditions ...Condition) func(*FilterSet) {
	return func(fs *FilterSet) { fs.MustNot = append(fs.MustNot, conditions...) }
}

// NewMatch holds when field equals value.
func NewMatch(field string, value any) *Match { return &Match{Field: field, Value: value} }

// NewMatchAny holds when field equals one of values.
func NewMatchAny(field string, values ...any) *MatchAny {
	return &MatchAny{Field: field, Values: values}
}

// NewMatchExcept holds when field equals none of values.
func NewMatchExcept(field string, values ...any) *MatchExcept {
	return &MatchExcept{Field: field, Values: values}
}

// NewRange bounds field inclusively on both sides.
func NewRange(field string, gte, lte float64) *NumericRange {
	return &NumericRange{Field: field, Gte: &gte, Lte: &lte}
}

// NewTimeWindow holds for from <= field < to.
func NewTimeWindow(field string, from, to time.Time) *TimeRange {
	return &TimeRange{Field: field, AtOrAfter: &from, Before: &to}
}

// NewIsNull holds when field is null or missing.
func NewIsNull(field string) *IsNull { return &IsNull{Field: field} }

// conditionList carries the kind of each condition on the wire so a
// FilterSet survives a JSON round trip.
type conditionList []Condition

type taggedCondition struct {
	Kind      string          `json:"kind"`
	Condition json.RawMessage `json:"condition"`
}

func (l conditionList) MarshalJSON() ([]byte, error) {
	out := make([]taggedCondition, len(l))
	for i, c := range l {
		raw, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		out[i] = taggedCondition{Kind: c.Kind(), Condition: raw}
	}
	return json.Marshal(out)
}

func (l *conditionList) UnmarshalJSON(data []byte) error {
	var tagged []taggedCondition
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	conds := make(conditionList, 0, len(tagged))
	for _, t := range tagged {
		c, err := newCondition(t.Kind)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(t.Condition, c); err != nil {
			return fmt.Errorf("vectordb: %s condition: %w", t.Kind, err)
		}
		conds = append(conds, c)
	}
	*l = conds
	return nil
}

func newCondition(kind string) (Condition, error) {
	switch kind {
	case "match":
		return &Match{}, nil
	case "matchAny":
		return &MatchAny{}, nil
	case "matchExcept":
		return &MatchExcept{}, nil
	case "numericRange":
		return &NumericRange{}, nil
	case "timeRange":
		return &TimeRange{}, nil
	case "isNull":
		return &IsNull{}, nil
	}
	return nil, fmt.Errorf("vectordb: unknown condition kind %q", kind)
}

type filterSetJSON struct {
	Must    conditionList `json:"must,omitempty"`
	Should  conditionList `json:"should,omitempty"`
	MustNot conditionList `json:"mustNot,omitempty"`
}

func (fs FilterSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(filterSetJSON{Must: fs.Must, Should: fs.Should, MustNot: fs.MustNot})
}

func (fs *FilterSet) UnmarshalJSON(data []byte) error {
	var raw filterSetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*fs = FilterSet{Must: raw.Must, Should: raw.Should, MustNot: raw.MustNot}
	return nil
}
