package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func scrapeMetrics(t *testing.T) []byte {
	t.Helper()
	mrr := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(mrr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if mrr.Code != http.StatusOK {
		t.Fatalf("/metrics status=%d", mrr.Code)
	}
	return mrr.Body.Bytes()
}

func preview(b []byte) string {
	if len(b) > 400 {
		b = b[:400]
	}
	return string(b)
}

// TestMetricsMiddleware_EmitsRequestCounters verifies that wrapping a handler
// with MetricsMiddleware results in request metrics being exposed.
func TestMetricsMiddleware_EmitsRequestCounters(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	rr := httptest.NewRecorder()
	MetricsMiddleware(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/test", nil))
	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status 418, got %d", rr.Code)
	}
	body := scrapeMetrics(t)
	if !bytes.Contains(body, []byte("solarcast_http_requests_total")) || !bytes.Contains(body, []byte(`status="418"`)) {
		t.Fatalf("expected solarcast_http_requests_total with status 418; got: %q", preview(body))
	}
}

// TestMux_MetricsUseRoutePatternAndForecastOutcome drives the real mux and
// checks both the HTTP and the forecast counters.
func TestMux_MetricsUseRoutePatternAndForecastOutcome(t *testing.T) {
	h := NewMux(newMockService())
	rec := postJSON(t, h, "/predict_date", `{"date":"2023-06-15","model_type":"global"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", rec.Code, rec.Body.String())
	}
	rec = postJSON(t, h, "/predict_date", `{"date":"2023-06-15","model_type":"nope"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d", rec.Code)
	}
	body := scrapeMetrics(t)
	for _, want := range []string{
		`path="/predict_date"`,
		`solarcast_forecast_requests_total{kind="date",model_type="global",outcome="ok"}`,
		`solarcast_forecast_requests_total{kind="date",model_type="invalid",outcome="rejected"}`,
	} {
		if !bytes.Contains(body, []byte(want)) {
			t.Fatalf("metrics missing %s; got: %q", want, preview(body))
		}
	}
}
