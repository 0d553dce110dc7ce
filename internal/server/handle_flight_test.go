package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jetlaghelper/api/internal/flight"
)

type fakeFlights struct {
	f   flight.Flight
	err error
	got string
}

func (f *fakeFlights) Lookup(_ context.Context, number string) (flight.Flight, error) {
	f.got = number
	return f.f, f.err
}

func getFlight(t *testing.T, h http.Handler, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/flight-lookup"+query, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestFlightLookupRequiresNumber(t *testing.T) {
	h := newTestHandler(t, testDeps())

	for _, q := range []string{"", "?flight=", "?flight=%20%20"} {
		w := getFlight(t, h, q)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%q: status = %d, want %d", q, w.Code, http.StatusBadRequest)
		}
		if got := decode[ErrorResponse](t, w).Error; got != "Flight number is required" {
			t.Fatalf("%q: error = %q", q, got)
		}
	}
}

func TestFlightLookupNotConfigured(t *testing.T) {
	h := newTestHandler(t, testDeps())

	w := getFlight(t, h, "?flight=BA117")
	if w.Code != http.StatusNotImplemented {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusNotImplemented)
	}
	got := decode[FlightUnavailableResponse](t, w)
	if got != flightUnavailable {
		t.Fatalf("body = %+v, want %+v", got, flightUnavailable)
	}
}

func TestFlightLookup(t *testing.T) {
	dep := time.Date(2025, 3, 1, 18, 5, 0, 0, time.UTC)
	arr := dep.Add(7 * time.Hour)

	tests := []struct {
		name       string
		fake       *fakeFlights
		wantStatus int
		wantError  string
	}{
		{
			name: "found",
			fake: &fakeFlights{f: flight.Flight{
				FlightNumber:  "BAW117",
				Origin:        "EGLL",
				Destination:   "KJFK",
				DepartureTime: dep,
				ArrivalTime:   arr,
			}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "not found",
			fake:       &fakeFlights{err: flight.ErrNotFound},
			wantStatus: http.StatusNotFound,
			wantError:  "Flight not found",
		},
		{
			name:       "upstream failure",
			fake:       &fakeFlights{err: errors.New("opensky: unexpected status 503")},
			wantStatus: http.StatusInternalServerError,
			wantError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := testDeps()
			deps.Flights = tt.fake
			h := newTestHandler(t, deps)

			w := getFlight(t, h, "?flight=+BAW117+")
			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", w.Code, tt.wantStatus, w.Body.String())
			}
			if tt.fake.got != "BAW117" {
				t.Errorf("looked up %q, want trimmed BAW117", tt.fake.got)
			}
			if tt.wantError != "" {
				if got := decode[ErrorResponse](t, w).Error; got != tt.wantError {
					t.Fatalf("error = %q, want %q", got, tt.wantError)
				}
				return
			}

			got := decode[FlightResponse](t, w)
			want := FlightResponse{
				FlightNumber:  "BAW117",
				Origin:        "EGLL",
				Destination:   "KJFK",
				DepartureTime: "2025-03-01T18:05:00.000Z",
				ArrivalTime:   "2025-03-02T01:05:00.000Z",
			}
			if got != want {
				t.Fatalf("body = %+v, want %+v", got, want)
			}
		})
	}
}
