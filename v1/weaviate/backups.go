package weaviate

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/Aleph-Alpha/weaviate/v1/weaviate/models"
)

// Backups starts backup and restore jobs. The server writes the data to
// the backend; the client only drives and observes the job.
type Backups struct {
	t    *transport
	poll PollConfig
}

func backupPath(backend models.BackupBackend, id string) string {
	return "/backups/" + url.PathEscape(string(backend)) + "/" + url.PathEscape(id)
}

func requireBackend(op string, backend models.BackupBackend) error {
	if backend == "" {
		return invalid(op, errors.New("backup backend is empty"))
	}
	return nil
}

// Create starts a backup. With wait set it returns once the job reached
// SUCCESS or FAILED; a FAILED job is returned, not raised.
func (b *Backups) Create(ctx context.Context, backend models.BackupBackend, req models.BackupCreateRequest, wait bool) (*models.BackupResponse, error) {
	const op = "backups.create"
	if err := requireBackend(op, backend); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, invalid(op, err)
	}

	var started models.BackupResponse
	r := request{op: op, method: http.MethodPost, path: "/backups/" + url.PathEscape(string(backend)), body: req}
	if err := b.t.doJSON(ctx, r, &started); err != nil {
		return nil, err
	}
	if !wait {
		return &started, nil
	}
	return b.wait(ctx, op, &started, func(ctx context.Context) (*models.BackupResponse, error) {
		return b.GetCreateStatus(ctx, backend, req.ID)
	})
}

// GetCreateStatus returns the current state of a backup job.
func (b *Backups) GetCreateStatus(ctx context.Context, backend models.BackupBackend, id string) (*models.BackupResponse, error) {
	return b.status(ctx, "backups.create_status", backend, id, "")
}

// Restore restores backup id. With wait set it behaves like Create.
func (b *Backups) Restore(ctx context.Context, backend models.BackupBackend, id string, req models.BackupRestoreRequest, wait bool) (*models.BackupResponse, error) {
	const op = "backups.restore"
	if err := requireBackend(op, backend); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, invalid(op, errors.New("backup id is empty"))
	}
	if err := req.Validate(); err != nil {
		return nil, invalid(op, err)
	}

	var started models.BackupResponse
	r := request{op: op, method: http.MethodPost, path: backupPath(backend, id) + "/restore", body: req}
	if err := b.t.doJSON(ctx, r, &started); err != nil {
		return nil, err
	}
	if !wait {
		return &started, nil
	}
	return b.wait(ctx, op, &started, func(ctx context.Context) (*models.BackupResponse, error) {
		return b.GetRestoreStatus(ctx, backend, id)
	})
}

// GetRestoreStatus returns the current state of a restore job.
func (b *Backups) GetRestoreStatus(ctx context.Context, backend models.BackupBackend, id string) (*models.BackupResponse, error) {
	return b.status(ctx, "backups.restore_status", backend, id, "/restore")
}

func (b *Backups) status(ctx context.Context, op string, backend models.BackupBackend, id, suffix string) (*models.BackupResponse, error) {
	if err := requireBackend(op, backend); err != nil {
		return nil, err
	}
	if id == "" {
		return nil, invalid(op, errors.New("backup id is empty"))
	}
	var out models.BackupResponse
	if err := b.t.doJSON(ctx, request{op: op, method: http.MethodGet, path: backupPath(backend, id) + suffix}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (b *Backups) wait(ctx context.Context, job string, started *models.BackupResponse, check func(context.Context) (*models.BackupResponse, error)) (*models.BackupResponse, error) {
	return poll(ctx, b.poll, b.t.obs, job, started,
		func(r *models.BackupResponse) bool { return r.Status.Terminal() },
		check,
	)
}
