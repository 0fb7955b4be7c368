package models

import "errors"

// ContextionaryConcept is the body of
// GET /v1/modules/text2vec-contextionary/concepts/{concept}.
type ContextionaryConcept struct {
	IndividualWords  []ConceptWord     `json:"individualWords,omitempty"`
	ConcatenatedWord *ConcatenatedWord `json:"concatenatedWord,omitempty"`
}

type ConceptWord struct {
	Word    string       `json:"word"`
	Present bool         `json:"present"`
	Info    *ConceptInfo `json:"info,omitempty"`
}

type ConceptInfo struct {
	NearestNeighbors []NearestNeighbor `json:"nearestNeighbors,omitempty"`
	Vector           []float32         `json:"vector,omitempty"`
}

type NearestNeighbor struct {
	Word     string  `json:"word"`
	Distance float64 `json:"distance"`
}

type ConcatenatedWord struct {
	ConcatenatedWord             string            `json:"concatenatedWord"`
	SingleWords                  []string          `json:"singleWords,omitempty"`
	ConcatenatedVector           []float32         `json:"concatenatedVector,omitempty"`
	ConcatenatedNearestNeighbors []NearestNeighbor `json:"concatenatedNearestNeighbors,omitempty"`
}

// ContextionaryExtension teaches the contextionary a new concept. It is
// the body of POST /v1/modules/text2vec-contextionary/extensions.
type ContextionaryExtension struct {
	Concept    string  `json:"concept"`
	Definition string  `json:"definition"`
	Weight     float64 `json:"weight"`
}

// NewContextionaryExtension builds an extension. Weight is between 0 and 1;
// 1 replaces an existing concept.
func NewContextionaryExtension(concept, definition string, weight float64) ContextionaryExtension {
	return ContextionaryExtension{Concept: concept, Definition: definition, Weight: weight}
}

// Validate requires a concept and a definition.
func (e ContextionaryExtension) Validate() error {
	if e.Concept == "" {
		return errors.New("concept is empty")
	}
	if e.Definition == "" {
		return errors.New("definition is empty")
	}
	if e.Weight < 0 || e.Weight > 1 {
		return errors.New("weight must be between 0 and 1")
	}
	return nil
}
