//go:build swagger

package httpapi

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMountSwagger_ServesDoc(t *testing.T) {
	rec := httptest.NewRecorder()
	NewMux(newMockService()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "/predict_year") {
		t.Fatalf("status=%d body=%.200s", rec.Code, rec.Body.String())
	}
}
