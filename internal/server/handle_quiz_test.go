package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jetlaghelper/api/internal/jetlag"
)

func TestQuiz(t *testing.T) {
	h := newTestHandler(t, testDeps())

	w := postJSON(t, h, "/api/quiz", jetlag.QuizAnswers{
		Zones:     3,
		Direction: 2,
		Sleep:     2,
		Symptoms:  []int{1, 1},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}

	got := decode[jetlag.QuizResult](t, w)
	if got.Score != 9 {
		t.Errorf("score = %d, want 9", got.Score)
	}
	if got.Severity != jetlag.SeverityModerate {
		t.Errorf("severity = %q, want %q", got.Severity, jetlag.SeverityModerate)
	}
	if got.Label != "Moderate Jet Lag" {
		t.Errorf("label = %q, want %q", got.Label, "Moderate Jet Lag")
	}
	if len(got.Tips) != 5 {
		t.Errorf("got %d tips, want 5", len(got.Tips))
	}
}

func TestQuizRejectsNegativePoints(t *testing.T) {
	h := newTestHandler(t, testDeps())

	w := postJSON(t, h, "/api/quiz", map[string]any{"zones": 3, "symptoms": []int{-4}})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	if got := decode[ErrorResponse](t, w).Error; got != "Invalid quiz answers" {
		t.Fatalf("error = %q, want %q", got, "Invalid quiz answers")
	}
}

func TestZones(t *testing.T) {
	h := newTestHandler(t, testDeps())

	req := httptest.NewRequest(http.MethodGet, "/api/zones", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	zones := decode[[]jetlag.Zone](t, w)
	if len(zones) != 11 {
		t.Fatalf("got %d zones, want 11", len(zones))
	}
	if zones[0].Name != "America/Los_Angeles" || zones[0].OffsetHours != -8 {
		t.Fatalf("first zone = %+v, want America/Los_Angeles -8", zones[0])
	}
}
