package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/contact-form/internal/config"
	"github.com/deppfellow/contact-form/internal/database"
	"github.com/deppfellow/contact-form/internal/server"
	"github.com/go-redis/redismock/v9"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthServer(store database.Store, rdb *redis.Client) *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: config.DefaultConfig(),
		Logger: &logger,
		DB:     store,
		Redis:  rdb,
	}
}

type statusBody struct {
	Status string                       `json:"status"`
	Checks map[string]map[string]string `json:"checks"`
}

func checkStatus(t *testing.T, h *HealthHandler) (int, statusBody) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), rec)

	require.NoError(t, h.CheckHealth(c))

	var body statusBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestHealth_AlwaysOK(t *testing.T) {
	h := NewHealthHandler(newHealthServer(database.NewMemoryStore("ns", "db"), nil))

	e := echo.New()
	rec := httptest.NewRecorder()
	require.NoError(t, h.Health(e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","message":"Server is running"}`, rec.Body.String())
}

func TestCheckHealth_StoreAndRedisHealthy(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectPing().SetVal("PONG")

	h := NewHealthHandler(newHealthServer(database.NewMemoryStore("ns", "db"), rdb))
	code, body := checkStatus(t, h)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "healthy", body.Checks["store"]["status"])
	assert.Equal(t, "memory", body.Checks["store"]["driver"])
	assert.Equal(t, "healthy", body.Checks["redis"]["status"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckHealth_RedisFailureIsReportedOnly(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	mock.ExpectPing().SetErr(errors.New("connection refused"))

	h := NewHealthHandler(newHealthServer(database.NewMemoryStore("ns", "db"), rdb))
	code, body := checkStatus(t, h)

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "unhealthy", body.Checks["redis"]["status"])
	assert.Equal(t, "connection refused", body.Checks["redis"]["error"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckHealth_StoreFailure(t *testing.T) {
	store := database.NewMemoryStore("ns", "db")
	require.NoError(t, store.Close())

	h := NewHealthHandler(newHealthServer(store, nil))
	code, body := checkStatus(t, h)

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "unhealthy", body.Status)
	assert.Equal(t, database.ErrClosed.Error(), body.Checks["store"]["error"])
	assert.NotContains(t, body.Checks, "redis")
}

func TestCheckHealth_Disabled(t *testing.T) {
	s := newHealthServer(database.NewMemoryStore("ns", "db"), nil)
	s.Config.Observability.HealthChecks.Enabled = false

	code, body := checkStatus(t, NewHealthHandler(s))

	assert.Equal(t, http.StatusOK, code)
	assert.Empty(t, body.Checks)
}
