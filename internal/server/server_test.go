package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

const sampleYAML = `
coil:
  inductance: 100e-6
  resistance: 0.5
  frequency: 25000
  targetImpedance: 50
toroid:
  wireDiameter: 2e-3
  layers: 2
  alpha: 2
  fillFactor: 0.8
sweep:
  startFreq: 10000
  stopFreq: 100000
  points: 101
drift:
  enabled: true
  tolerance: 0.05
`

func TestDesignEndpoint(t *testing.T) {
	handler := NewHandler(zap.NewNop(), 0)

	req := httptest.NewRequest(http.MethodPost, "/api/design", strings.NewReader(sampleYAML))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp designResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Network == nil || resp.Network.MatchInductor <= 0 {
		t.Errorf("response should contain a synthesized network, got %+v", resp.Network)
	}
	if resp.Toroid == nil || resp.Toroid.DShaped.Turns < 2 {
		t.Errorf("response should contain a solved toroid geometry")
	}
	if resp.Drift == nil {
		t.Errorf("drift was enabled, response should contain a drift result")
	}
	if resp.Peak.Frequency <= 0 || resp.Peak.Magnitude <= 0 {
		t.Errorf("response should summarize the response peak, got %+v", resp.Peak)
	}
}

func TestDesignEndpointRejectsBadRequests(t *testing.T) {
	handler := NewHandler(zap.NewNop(), 0)

	tests := []struct {
		name   string
		method string
		body   string
		status int
	}{
		{
			name:   "wrong method",
			method: http.MethodGet,
			status: http.StatusMethodNotAllowed,
		},
		{
			name:   "malformed yaml",
			method: http.MethodPost,
			body:   "coil: [oops",
			status: http.StatusBadRequest,
		},
		{
			name:   "missing coil parameters",
			method: http.MethodPost,
			body:   "toroid:\n  wireDiameter: 2e-3\n",
			status: http.StatusBadRequest,
		},
		{
			name:   "unsupported alpha",
			method: http.MethodPost,
			body:   strings.Replace(sampleYAML, "alpha: 2", "alpha: 6", 1),
			status: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/design", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.status {
				t.Errorf("status = %d, expected %d (body %s)", rec.Code, tt.status, rec.Body.String())
			}
		})
	}
}

func TestHealthEndpoint(t *testing.T) {
	handler := NewHandler(nil, 0)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, expected 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "ok") {
		t.Errorf("unexpected health body: %s", rec.Body.String())
	}
}
