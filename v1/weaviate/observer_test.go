package weaviate

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"

	"github.com/Aleph-Alpha/weaviate/v1/logger"
	"github.com/Aleph-Alpha/weaviate/v1/metrics"
	"github.com/Aleph-Alpha/weaviate/v1/tracer"
	"github.com/Aleph-Alpha/weaviate/v1/weaviate/models"
)

func TestLoggerSeesRequests(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodGet, "/v1/meta", http.StatusOK, `{}`)
	srv.reply(http.MethodGet, "/v1/nodes", http.StatusInternalServerError, `oops`)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLogger := logger.NewMockLogger(ctrl)

	mockLogger.EXPECT().Info("weaviate client created", nil, gomock.Any()).Times(1)
	mockLogger.EXPECT().DebugWithContext(gomock.Any(), "weaviate request", nil, gomock.Any()).Times(1)
	mockLogger.EXPECT().WarnWithContext(gomock.Any(), "weaviate request failed", gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, _ string, err error, fields ...map[string]interface{}) {
			assert.True(t, IsRequestError(err))
			require.Len(t, fields, 1)
			assert.Equal(t, "nodes.status", fields[0]["operation"])
			assert.Equal(t, http.StatusInternalServerError, fields[0]["status_code"])
		}).Times(1)

	c := srv.client(t, WithLogger(mockLogger))
	ctx := context.Background()

	_, err := c.Meta.Get(ctx)
	require.NoError(t, err)
	_, err = c.Nodes.Status(ctx)
	require.Error(t, err)
}

func counterValue(t *testing.T, m *metrics.Metrics, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := m.Registry.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	next:
		for _, metric := range f.GetMetric() {
			for _, lp := range metric.GetLabel() {
				if want, ok := labels[lp.GetName()]; ok && want != lp.GetValue() {
					continue next
				}
			}
			return metric.GetCounter().GetValue()
		}
	}
	return 0
}

func TestMetricsCountOperationsAndPolls(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodGet, "/v1/meta", http.StatusOK, `{}`)
	srv.reply(http.MethodPost, "/v1/backups/filesystem/b1/restore", http.StatusOK, backupBody("STARTED"))
	srv.reply(http.MethodGet, "/v1/backups/filesystem/b1/restore", http.StatusOK, backupBody("SUCCESS"))

	m := metrics.NewMetrics(metrics.Config{})
	c := srv.client(t, WithMetrics(m))
	ctx := context.Background()

	_, err := c.Meta.Get(ctx)
	require.NoError(t, err)
	_, err = c.Backups.Restore(ctx, "filesystem", "b1", models.NewBackupRestore(), true)
	require.NoError(t, err)

	assert.Equal(t, 1.0, counterValue(t, m, "weaviate_operations_total",
		map[string]string{"component": "weaviate", "operation": "meta.get", "status": "success"}))
	assert.Equal(t, 1.0, counterValue(t, m, "weaviate_operations_total",
		map[string]string{"operation": "backups.restore_status", "status": "success"}))
	assert.Equal(t, 1.0, counterValue(t, m, "weaviate_poll_attempts_total",
		map[string]string{"job": "backups.restore"}))
}

func TestObserverAndMetricsBothReceiveReports(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodPost, "/v1/backups/filesystem/b1/restore", http.StatusOK, backupBody(models.BackupStarted))
	srv.reply(http.MethodGet, "/v1/backups/filesystem/b1/restore", http.StatusOK, backupBody(models.BackupSuccess))

	m := metrics.NewMetrics(metrics.Config{})
	counter := &pollCounter{}
	c := srv.client(t, WithObserver(counter), WithMetrics(m))

	_, err := c.Backups.Restore(context.Background(), models.BackupBackendFilesystem, "b1", models.NewBackupRestore(), true)
	require.NoError(t, err)

	assert.Equal(t, 1, counter.count("backups.restore"))
	assert.Len(t, counter.ops, 2)
	assert.Equal(t, 1.0, counterValue(t, m, "weaviate_poll_attempts_total",
		map[string]string{"job": "backups.restore"}))
	assert.Equal(t, 1.0, counterValue(t, m, "weaviate_operations_total",
		map[string]string{"operation": "backups.restore", "status": "success"}))
}

func TestTracerSpansAndPropagation(t *testing.T) {
	srv := newFakeServer(t)
	srv.reply(http.MethodGet, "/v1/meta", http.StatusOK, `{}`)
	srv.reply(http.MethodGet, "/v1/schema/Missing", http.StatusNotFound, ``)

	rec := tracetest.NewSpanRecorder()
	tr := tracer.NewWithProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec)))
	c := srv.client(t, WithTracer(tr))
	ctx := context.Background()

	_, err := c.Meta.Get(ctx)
	require.NoError(t, err)
	_, err = c.Schema.GetClass(ctx, "Missing")
	require.Error(t, err)

	ended := rec.Ended()
	require.Len(t, ended, 2)
	assert.Equal(t, "weaviate.meta.get", ended[0].Name())
	assert.Equal(t, "weaviate.schema.get_class", ended[1].Name())
	assert.Equal(t, codes.Error, ended[1].Status().Code)

	assert.NotEmpty(t, srv.all()[0].Header.Get("Traceparent"))
}

func TestNilObserverIsSafe(t *testing.T) {
	obs := &clientObserver{}
	ctx, finish := obs.start(context.Background(), operation{name: "meta.get", method: http.MethodGet, path: "/meta"})
	assert.NotNil(t, ctx)
	finish(http.StatusOK, 2, nil)
	obs.pollAttempt("backups.create")
}
