package models

import (
	"errors"

	"github.com/go-openapi/strfmt"
)

// ClassificationType selects the classification algorithm.
type ClassificationType string

const (
	ClassificationKNN           ClassificationType = "knn"
	ClassificationZeroShot      ClassificationType = "zeroshot"
	ClassificationContextionary ClassificationType = "text2vec-contextionary"
)

// ClassificationStatus is the state of a classification job. Completed and
// failed are the service's names for SUCCESS and FAILED.
type ClassificationStatus string

const (
	ClassificationRunning   ClassificationStatus = "running"
	ClassificationCompleted ClassificationStatus = "completed"
	ClassificationFailed    ClassificationStatus = "failed"
)

// Terminal reports whether the job has finished.
func (s ClassificationStatus) Terminal() bool {
	return s == ClassificationCompleted || s == ClassificationFailed
}

// ClassificationFilters narrow which objects take part in a classification.
type ClassificationFilters struct {
	SourceWhere      *Where `json:"sourceWhere,omitempty"`
	TargetWhere      *Where `json:"targetWhere,omitempty"`
	TrainingSetWhere *Where `json:"trainingSetWhere,omitempty"`
}

// ClassificationRequest is the body of POST /v1/classification.
type ClassificationRequest struct {
	Type               ClassificationType     `json:"type"`
	Class              string                 `json:"class"`
	ClassifyProperties []string               `json:"classifyProperties"`
	BasedOnProperties  []string               `json:"basedOnProperties,omitempty"`
	Filters            *ClassificationFilters `json:"filters,omitempty"`
	Settings           map[string]Value       `json:"settings,omitempty"`
}

// ClassificationBuilder assembles a ClassificationRequest. The type
// defaults to knn.
//
//	req := models.NewClassification("Article").
//		WithClassifyProperties("hasPopularity").
//		WithBasedOnProperties("summary").
//		WithSetting("k", models.Int(3)).
//		Build()
type ClassificationBuilder struct {
	r ClassificationRequest
}

// NewClassification starts a knn classification of class.
func NewClassification(class string) ClassificationBuilder {
	return ClassificationBuilder{r: ClassificationRequest{Class: class}}
}

// WithType selects the algorithm.
func (b ClassificationBuilder) WithType(t ClassificationType) ClassificationBuilder {
	b.r.Type = t
	return b
}

// WithClassifyProperties appends the reference properties to fill in.
func (b ClassificationBuilder) WithClassifyProperties(props ...string) ClassificationBuilder {
	b.r.ClassifyProperties = appendCopy(b.r.ClassifyProperties, props...)
	return b
}

// WithBasedOnProperties appends the properties the decision is based on.
func (b ClassificationBuilder) WithBasedOnProperties(props ...string) ClassificationBuilder {
	b.r.BasedOnProperties = appendCopy(b.r.BasedOnProperties, props...)
	return b
}

// WithSourceWhere restricts the objects to classify.
func (b ClassificationBuilder) WithSourceWhere(w Where) ClassificationBuilder {
	b.r.Filters = b.filters()
	b.r.Filters.SourceWhere = &w
	return b
}

// WithTargetWhere restricts the candidate targets.
func (b ClassificationBuilder) WithTargetWhere(w Where) ClassificationBuilder {
	b.r.Filters = b.filters()
	b.r.Filters.TargetWhere = &w
	return b
}

// WithTrainingSetWhere restricts the training set of knn.
func (b ClassificationBuilder) WithTrainingSetWhere(w Where) ClassificationBuilder {
	b.r.Filters = b.filters()
	b.r.Filters.TrainingSetWhere = &w
	return b
}

func (b ClassificationBuilder) filters() *ClassificationFilters {
	if b.r.Filters == nil {
		return &ClassificationFilters{}
	}
	f := *b.r.Filters
	return &f
}

// WithSetting sets one algorithm setting such as k for knn.
func (b ClassificationBuilder) WithSetting(key string, v Value) ClassificationBuilder {
	b.r.Settings = setCopy(b.r.Settings, key, v)
	return b
}

// Build returns the request.
func (b ClassificationBuilder) Build() ClassificationRequest {
	r := b.r
	if r.Type == "" {
		r.Type = ClassificationKNN
	}
	r.ClassifyProperties = cloneSlice(r.ClassifyProperties)
	if r.ClassifyProperties == nil {
		r.ClassifyProperties = []string{}
	}
	r.BasedOnProperties = cloneSlice(r.BasedOnProperties)
	r.Settings = cloneMap(r.Settings)
	return r
}

// Validate requires a class and at least one property to classify.
func (r ClassificationRequest) Validate() error {
	if r.Class == "" {
		return errors.New("classification class is empty")
	}
	if len(r.ClassifyProperties) == 0 {
		return errors.New("classification needs at least one property to classify")
	}
	if r.Filters != nil {
		for _, w := range []*Where{r.Filters.SourceWhere, r.Filters.TargetWhere, r.Filters.TrainingSetWhere} {
			if w == nil {
				continue
			}
			if err := w.Validate(); err != nil {
				return err
			}
		}
	}
	return nil
}

type ClassificationMeta struct {
	Started        *strfmt.DateTime `json:"started,omitempty"`
	Completed      *strfmt.DateTime `json:"completed,omitempty"`
	Count          int              `json:"count"`
	CountSucceeded int              `json:"countSucceeded"`
	CountFailed    int              `json:"countFailed"`
}

// ClassificationResponse describes a classification job.
type ClassificationResponse struct {
	ID                 strfmt.UUID            `json:"id"`
	Class              string                 `json:"class"`
	ClassifyProperties []string               `json:"classifyProperties,omitempty"`
	BasedOnProperties  []string               `json:"basedOnProperties,omitempty"`
	Status             ClassificationStatus   `json:"status"`
	Meta               *ClassificationMeta    `json:"meta,omitempty"`
	Type               ClassificationType     `json:"type,omitempty"`
	Settings           map[string]Value       `json:"settings,omitempty"`
	Filters            *ClassificationFilters `json:"filters,omitempty"`
	Error              string                 `json:"error,omitempty"`
}
