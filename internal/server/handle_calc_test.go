package server

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jetlaghelper/api/internal/jetlag"
)

func tripBody() map[string]any {
	return map[string]any{
		"originTz":          "America/Los_Angeles",
		"destTz":            "Europe/London",
		"departureLocalISO": "2025-03-01T18:00",
		"arrivalLocalISO":   "2025-03-02T12:00",
		"sleptOnFlight":     false,
		"age":               "31-50",
	}
}

func TestCalc(t *testing.T) {
	h := newTestHandler(t, testDeps())

	tests := []struct {
		name     string
		edit     func(map[string]any)
		wantDays int
		wantDir  jetlag.Direction
		wantSev  jetlag.Severity
	}{
		{
			name:     "eastbound",
			edit:     func(map[string]any) {},
			wantDays: 7,
			wantDir:  jetlag.DirectionEast,
			wantSev:  jetlag.SeverityModerate,
		},
		{
			name: "westbound rested",
			edit: func(b map[string]any) {
				b["originTz"] = "Asia/Tokyo"
				b["destTz"] = "America/New_York"
				b["sleptOnFlight"] = true
				b["age"] = "18-30"
			},
			wantDays: 8,
			wantDir:  jetlag.DirectionWest,
			wantSev:  jetlag.SeverityModerate,
		},
		{
			name: "same zone",
			edit: func(b map[string]any) {
				b["destTz"] = b["originTz"]
			},
			wantDays: 1,
			wantDir:  jetlag.DirectionNone,
			wantSev:  jetlag.SeverityMild,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := tripBody()
			tt.edit(body)
			w := postJSON(t, h, "/api/calc", body)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
			}
			got := decode[jetlag.RecoveryResult](t, w)
			if got.EstimatedRecoveryDays != tt.wantDays {
				t.Errorf("days = %d, want %d", got.EstimatedRecoveryDays, tt.wantDays)
			}
			if got.Direction != tt.wantDir {
				t.Errorf("direction = %q, want %q", got.Direction, tt.wantDir)
			}
			if got.Severity != tt.wantSev {
				t.Errorf("severity = %q, want %q", got.Severity, tt.wantSev)
			}
			if len(got.TopTips) == 0 || len(got.TopTips) > 5 {
				t.Errorf("got %d tips, want 1..5", len(got.TopTips))
			}
		})
	}
}

func TestCalcMissingField(t *testing.T) {
	h := newTestHandler(t, testDeps())

	for field := range tripBody() {
		t.Run(field, func(t *testing.T) {
			body := tripBody()
			delete(body, field)
			w := postJSON(t, h, "/api/calc", body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
			if got := decode[ErrorResponse](t, w).Error; got != "Missing required fields" {
				t.Fatalf("error = %q, want %q", got, "Missing required fields")
			}
		})
	}
}

func TestCalcNullSleptIsMissing(t *testing.T) {
	h := newTestHandler(t, testDeps())

	body := tripBody()
	body["sleptOnFlight"] = nil
	w := postJSON(t, h, "/api/calc", body)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestCalcInvalidBody(t *testing.T) {
	h := newTestHandler(t, testDeps())

	req := httptest.NewRequest(http.MethodPost, "/api/calc", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if got := decode[ErrorResponse](t, w).Error; got != "Invalid request body" {
		t.Fatalf("error = %q, want %q", got, "Invalid request body")
	}
}
