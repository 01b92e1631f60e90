package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"lockers/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Handler(t *testing.T) {
	m := metrics.New()
	m.Requests.WithLabelValues("/api/v1/lockers", http.MethodGet, "200").Inc()
	m.DeliveryFailures.WithLabelValues("sms").Add(2)
	m.ThrottledLockers.Set(3)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `lockers_http_requests_total{method="GET",route="/api/v1/lockers",status="200"} 1`)
	assert.Contains(t, string(body), "lockers_throttled_lockers 3")
	assert.InDelta(t, 2, testutil.ToFloat64(m.DeliveryFailures.WithLabelValues("sms")), 0)
}

func TestNew_InstancesAreIndependent(t *testing.T) {
	a := metrics.New()
	b := metrics.New()

	a.InvariantViolations.Set(1)

	assert.InDelta(t, 0, testutil.ToFloat64(b.InvariantViolations), 0)
}
