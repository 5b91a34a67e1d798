package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveSubmission(t *testing.T) {
	m := New()

	m.ObserveSubmission(OutcomeStored)
	m.ObserveSubmission(OutcomeStored)
	m.ObserveSubmission(OutcomeInvalid)

	body := scrape(t, m)
	assert.Contains(t, body, `contact_form_submissions_total{outcome="stored"} 2`)
	assert.Contains(t, body, `contact_form_submissions_total{outcome="invalid"} 1`)
}

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestNilMetricsAreNoops(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveSubmission(OutcomeStored)
		m.ObserveStoreCreate("memory", time.Millisecond)
		m.NotificationFailed()
	})
}

func TestHandler(t *testing.T) {
	m := New()
	m.ObserveSubmission(OutcomeStoreFail)
	m.ObserveStoreCreate("memory", 3*time.Millisecond)
	m.NotificationFailed()

	body := scrape(t, m)
	assert.Contains(t, body, `contact_form_submissions_total{outcome="store_error"} 1`)
	assert.Contains(t, body, `contact_form_store_create_duration_seconds_count{driver="memory"} 1`)
	assert.Contains(t, body, "contact_form_notification_enqueue_errors_total 1")
}
