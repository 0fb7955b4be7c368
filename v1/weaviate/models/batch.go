package models

import (
	"strings"

	"github.com/go-openapi/strfmt"
)

// ErrorResponse is the error body the server uses for failed requests and
// for failed batch items.
type ErrorResponse struct {
	Error []ErrorMessage `json:"error"`
}

type ErrorMessage struct {
	Message string `json:"message"`
}

// Messages flattens the error list.
func (e *ErrorResponse) Messages() []string {
	if e == nil {
		return nil
	}
	out := make([]string, 0, len(e.Error))
	for _, m := range e.Error {
		out = append(out, m.Message)
	}
	return out
}

func (e *ErrorResponse) String() string {
	return strings.Join(e.Messages(), "; ")
}

// BatchObjectsRequest is the body of POST /v1/batch/objects.
type BatchObjectsRequest struct {
	Fields  []string `json:"fields,omitempty"`
	Objects []Object `json:"objects"`
}

// NewBatchObjects keeps objs in order.
func NewBatchObjects(objs ...Object) BatchObjectsRequest {
	return BatchObjectsRequest{Objects: appendCopy[Object](nil, objs...)}
}

// WithObjects appends objects.
func (r BatchObjectsRequest) WithObjects(objs ...Object) BatchObjectsRequest {
	r.Objects = appendCopy(r.Objects, objs...)
	return r
}

// BatchResult is the per item outcome of a batch write.
type BatchResult struct {
	Status string         `json:"status,omitempty"`
	Errors *ErrorResponse `json:"errors,omitempty"`
}

// Failed reports whether the item was rejected.
func (r *BatchResult) Failed() bool {
	return r != nil && (r.Status == BatchStatusFailed || (r.Errors != nil && len(r.Errors.Error) > 0))
}

type BatchObjectResult struct {
	Object
	Result *BatchResult `json:"result,omitempty"`
}

type BatchReferenceResult struct {
	From   string       `json:"from"`
	To     string       `json:"to"`
	Result *BatchResult `json:"result,omitempty"`
}

// Batch delete output modes.
const (
	DeleteOutputMinimal = "minimal"
	DeleteOutputVerbose = "verbose"
)

// Batch item statuses.
const (
	BatchStatusSuccess = "SUCCESS"
	BatchStatusFailed  = "FAILED"
	BatchStatusDryRun  = "DRYRUN"
)

// BatchDeleteRequest is the body of DELETE /v1/batch/objects.
type BatchDeleteRequest struct {
	Match  BatchDeleteMatch `json:"match"`
	Output string           `json:"output,omitempty"`
	DryRun *bool            `json:"dryRun,omitempty"`
}

type BatchDeleteMatch struct {
	Class string `json:"class"`
	Where *Where `json:"where,omitempty"`
}

// NewBatchDelete deletes every object of class matching where.
//
//	req := models.NewBatchDelete("Article", models.WherePath("wordCount").LessThan(10)).
//		WithOutput(models.DeleteOutputVerbose).
//		WithDryRun(true)
func NewBatchDelete(class string, where Where) BatchDeleteRequest {
	return BatchDeleteRequest{Match: BatchDeleteMatch{Class: class, Where: &where}}
}

// WithOutput selects DeleteOutputMinimal or DeleteOutputVerbose.
func (r BatchDeleteRequest) WithOutput(output string) BatchDeleteRequest {
	r.Output = output
	return r
}

// WithDryRun reports matches without deleting them.
func (r BatchDeleteRequest) WithDryRun(dryRun bool) BatchDeleteRequest {
	r.DryRun = ptr(dryRun)
	return r
}

type BatchDeleteResponse struct {
	Match   BatchDeleteMatch   `json:"match"`
	Output  string             `json:"output,omitempty"`
	DryRun  bool               `json:"dryRun"`
	Results BatchDeleteResults `json:"results"`
}

type BatchDeleteResults struct {
	Matches    int64               `json:"matches"`
	Limit      int64               `json:"limit"`
	Successful int64               `json:"successful"`
	Failed     int64               `json:"failed"`
	Objects    []BatchDeleteObject `json:"objects,omitempty"`
}

type BatchDeleteObject struct {
	ID     strfmt.UUID    `json:"id"`
	Status string         `json:"status"`
	Errors *ErrorResponse `json:"errors,omitempty"`
}
