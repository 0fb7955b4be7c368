package models

import "errors"

// BackupBackend names the storage module a backup is written to.
type BackupBackend string

const (
	BackupBackendFilesystem BackupBackend = "filesystem"
	BackupBackendS3         BackupBackend = "s3"
	BackupBackendGCS        BackupBackend = "gcs"
	BackupBackendAzure      BackupBackend = "azure"
)

// BackupStatus is the server reported state of a backup or restore job.
type BackupStatus string

const (
	BackupStarted      BackupStatus = "STARTED"
	BackupTransferring BackupStatus = "TRANSFERRING"
	BackupTransferred  BackupStatus = "TRANSFERRED"
	BackupSuccess      BackupStatus = "SUCCESS"
	BackupFailed       BackupStatus = "FAILED"
)

// Terminal reports whether no further state change can happen.
func (s BackupStatus) Terminal() bool {
	return s == BackupSuccess || s == BackupFailed
}

// BackupCreateRequest is the body of POST /v1/backups/{backend}.
type BackupCreateRequest struct {
	ID      string   `json:"id"`
	Include []string `json:"include,omitempty"`
	Exclude []string `json:"exclude,omitempty"`
}

// NewBackupCreate backs up every class unless WithInclude or WithExclude
// narrows it.
func NewBackupCreate(id string) BackupCreateRequest {
	return BackupCreateRequest{ID: id}
}

// WithInclude appends classes to back up.
func (r BackupCreateRequest) WithInclude(classes ...string) BackupCreateRequest {
	r.Include = appendCopy(r.Include, classes...)
	return r
}

// WithExclude appends classes to leave out.
func (r BackupCreateRequest) WithExclude(classes ...string) BackupCreateRequest {
	r.Exclude = appendCopy(r.Exclude, classes...)
	return r
}

// Validate requires an id and rejects include together with exclude.
func (r BackupCreateRequest) Validate() error {
	if r.ID == "" {
		return errors.New("backup id is empty")
	}
	return validateIncludeExclude(r.Include, r.Exclude)
}

// BackupRestoreRequest is the body of POST /v1/backups/{backend}/{id}/restore.
type BackupRestoreRequest struct {
	Include []string `json:"include,omitempty"`
	Exclude []string `json:"exclude,omitempty"`
}

// NewBackupRestore restores every class in the backup unless narrowed.
func NewBackupRestore() BackupRestoreRequest { return BackupRestoreRequest{} }

// WithInclude appends classes to restore.
func (r BackupRestoreRequest) WithInclude(classes ...string) BackupRestoreRequest {
	r.Include = appendCopy(r.Include, classes...)
	return r
}

// WithExclude appends classes to skip.
func (r BackupRestoreRequest) WithExclude(classes ...string) BackupRestoreRequest {
	r.Exclude = appendCopy(r.Exclude, classes...)
	return r
}

// Validate rejects include together with exclude.
func (r BackupRestoreRequest) Validate() error {
	return validateIncludeExclude(r.Include, r.Exclude)
}

func validateIncludeExclude(include, exclude []string) error {
	if len(include) > 0 && len(exclude) > 0 {
		return errors.New("include and exclude cannot both be set")
	}
	return nil
}

// BackupResponse describes a backup or restore job. Create, restore and
// both status endpoints return it.
type BackupResponse struct {
	Backend string       `json:"backend,omitempty"`
	Classes []string     `json:"classes,omitempty"`
	ID      string       `json:"id"`
	Path    string       `json:"path,omitempty"`
	Status  BackupStatus `json:"status"`
	Error   string       `json:"error,omitempty"`
}
