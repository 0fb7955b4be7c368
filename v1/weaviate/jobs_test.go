package weaviate

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Aleph-Alpha/weaviate/v1/observability"
	"github.com/Aleph-Alpha/weaviate/v1/weaviate/models"
)

// pollCounter records operations and counts status checks per job.
type pollCounter struct {
	mu       sync.Mutex
	ops      []observability.OperationContext
	attempts map[string]int
}

func (p *pollCounter) ObserveOperation(ctx observability.OperationContext) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ops = append(p.ops, ctx)
}

func (p *pollCounter) IncrementPollAttempts(job string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.attempts == nil {
		p.attempts = make(map[string]int)
	}
	p.attempts[job]++
}

func (p *pollCounter) count(job string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.attempts[job]
}

func backupBody(status models.BackupStatus) string {
	return `{"backend":"filesystem","id":"b1","status":"` + string(status) + `"}`
}

func TestBackupCreateWaitPollsUntilSuccess(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodPost, "/v1/backups/filesystem", http.StatusOK, backupBody(models.BackupStarted))
	srv.sequence(http.MethodGet, "/v1/backups/filesystem/b1",
		backupBody(models.BackupStarted),
		backupBody(models.BackupTransferring),
		backupBody(models.BackupTransferred),
		backupBody(models.BackupSuccess),
	)
	counter := &pollCounter{}
	c := srv.client(t, WithObserver(counter))

	resp, err := c.Backups.Create(context.Background(), models.BackupBackendFilesystem, models.NewBackupCreate("b1").WithInclude("Article"), true)
	require.NoError(t, err)
	assert.Equal(t, models.BackupSuccess, resp.Status)

	assert.Len(t, srv.to(http.MethodGet, "/v1/backups/filesystem/b1"), 4)
	assert.Equal(t, 4, counter.count("backups.create"))

	create := srv.to(http.MethodPost, "/v1/backups/filesystem")
	require.Len(t, create, 1)
	assert.JSONEq(t, `{"id":"b1","include":["Article"]}`, string(create[0].Body))
}

func TestBackupCreateWithoutWait(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodPost, "/v1/backups/filesystem", http.StatusOK, backupBody(models.BackupStarted))
	c := srv.client(t)

	resp, err := c.Backups.Create(context.Background(), models.BackupBackendFilesystem, models.NewBackupCreate("b1"), false)
	require.NoError(t, err)
	assert.Equal(t, models.BackupStarted, resp.Status)
	assert.Empty(t, srv.to(http.MethodGet, "/v1/backups/filesystem/b1"))
}

func TestBackupRestoreFailedIsReturned(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodPost, "/v1/backups/filesystem/b1/restore", http.StatusOK, backupBody(models.BackupStarted))
	srv.sequence(http.MethodGet, "/v1/backups/filesystem/b1/restore",
		backupBody(models.BackupTransferring),
		`{"backend":"filesystem","id":"b1","status":"FAILED","error":"class Article already exists"}`,
	)
	c := srv.client(t)

	resp, err := c.Backups.Restore(context.Background(), models.BackupBackendFilesystem, "b1", models.NewBackupRestore(), true)
	require.NoError(t, err)
	assert.Equal(t, models.BackupFailed, resp.Status)
	assert.Equal(t, "class Article already exists", resp.Error)
	assert.Len(t, srv.to(http.MethodGet, "/v1/backups/filesystem/b1/restore"), 2)
}

func TestPollMaxAttemptsExceeded(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodPost, "/v1/backups/filesystem", http.StatusOK, backupBody(models.BackupStarted))
	srv.reply(http.MethodGet, "/v1/backups/filesystem/b1", http.StatusOK, backupBody(models.BackupTransferring))

	cfg, err := FromURL(srv.URL)
	require.NoError(t, err)
	c, err := NewClient(cfg.WithPollInterval(time.Millisecond).WithPollMaxAttempts(2))
	require.NoError(t, err)

	resp, err := c.Backups.Create(context.Background(), models.BackupBackendFilesystem, models.NewBackupCreate("b1"), true)
	require.ErrorIs(t, err, ErrPollAttemptsExceeded)
	require.NotNil(t, resp)
	assert.Equal(t, models.BackupTransferring, resp.Status)
	assert.Len(t, srv.to(http.MethodGet, "/v1/backups/filesystem/b1"), 2)
}

func TestPollStatusErrorAborts(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodPost, "/v1/backups/filesystem", http.StatusOK, backupBody(models.BackupStarted))
	srv.reply(http.MethodGet, "/v1/backups/filesystem/b1", http.StatusInternalServerError, `{"error":[{"message":"boom"}]}`)
	c := srv.client(t)

	_, err := c.Backups.Create(context.Background(), models.BackupBackendFilesystem, models.NewBackupCreate("b1"), true)
	status, ok := StatusCode(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Len(t, srv.to(http.MethodGet, "/v1/backups/filesystem/b1"), 1)
}

func TestPollHonoursContext(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodPost, "/v1/backups/filesystem", http.StatusOK, backupBody(models.BackupStarted))
	srv.reply(http.MethodGet, "/v1/backups/filesystem/b1", http.StatusOK, backupBody(models.BackupStarted))

	cfg, err := FromURL(srv.URL)
	require.NoError(t, err)
	c, err := NewClient(cfg.WithPollInterval(10 * time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	resp, err := c.Backups.Create(ctx, models.BackupBackendFilesystem, models.NewBackupCreate("b1"), true)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	require.NotNil(t, resp)
	assert.Equal(t, models.BackupStarted, resp.Status)
}

func TestBackupValidation(t *testing.T) {
	srv := newFakeServer(t)
	c := srv.client(t)
	ctx := context.Background()

	_, err := c.Backups.Create(ctx, models.BackupBackendFilesystem, models.NewBackupCreate("b1").WithInclude("A").WithExclude("B"), false)
	assert.True(t, IsValidationError(err))
	_, err = c.Backups.Create(ctx, "", models.NewBackupCreate("b1"), false)
	assert.True(t, IsValidationError(err))
	_, err = c.Backups.GetRestoreStatus(ctx, models.BackupBackendS3, "")
	assert.True(t, IsValidationError(err))
	assert.Empty(t, srv.all())
}

func TestClassificationScheduleWait(t *testing.T) {
	const id = "ee722219-b8ec-4db1-8f8d-5150bb1a9e0c"
	srv := newFakeServer(t)
	srv.reply(http.MethodPost, "/v1/classification", http.StatusCreated,
		`{"id":"`+id+`","class":"Article","status":"running","type":"knn"}`)
	srv.sequence(http.MethodGet, "/v1/classification/"+id,
		`{"id":"`+id+`","class":"Article","status":"running"}`,
		`{"id":"`+id+`","class":"Article","status":"completed","meta":{"count":3,"countSucceeded":3,"countFailed":0}}`,
	)
	counter := &pollCounter{}
	c := srv.client(t, WithObserver(counter))

	req := models.NewClassification("Article").
		WithClassifyProperties("hasPopularity").
		WithBasedOnProperties("summary").
		WithSetting("k", models.Int(3)).
		Build()
	resp, err := c.Classification.Schedule(context.Background(), req, true)
	require.NoError(t, err)
	assert.Equal(t, models.ClassificationCompleted, resp.Status)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 3, resp.Meta.CountSucceeded)
	assert.Equal(t, 2, counter.count("classification.schedule"))

	body := srv.to(http.MethodPost, "/v1/classification")[0].decodeBody(t)
	assert.Equal(t, "knn", body["type"])
	assert.Equal(t, []any{"hasPopularity"}, body["classifyProperties"])
}

func TestClassificationGetValidatesID(t *testing.T) {
	srv := newFakeServer(t)
	c := srv.client(t)

	_, err := c.Classification.Get(context.Background(), "nope")
	assert.True(t, IsValidationError(err))
}
