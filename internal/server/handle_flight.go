package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jetlaghelper/api/internal/flight"
)

// isoMillis matches JavaScript's Date.toISOString for UTC times.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type FlightLookup interface {
	Lookup(ctx context.Context, flightNumber string) (flight.Flight, error)
}

type FlightLookupQuery struct {
	Flight string `query:"flight" description:"Flight number or callsign, e.g. BAW2."`
}

type FlightResponse struct {
	FlightNumber  string `json:"flightNumber"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departureTime"`
	ArrivalTime   string `json:"arrivalTime"`
}

// FlightUnavailableResponse is the 501 body while no provider is configured.
type FlightUnavailableResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Note    string `json:"note"`
}

var flightUnavailable = FlightUnavailableResponse{
	Error:   "Flight lookup not yet implemented",
	Message: "This feature is coming soon. Please use manual entry for now.",
	Note:    "To enable: set OPENSKY_USERNAME and OPENSKY_PASSWORD in the server environment",
}

func handleFlightLookup(logger *slog.Logger, flights FlightLookup) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number := strings.TrimSpace(r.URL.Query().Get("flight"))
		if number == "" {
			writeError(w, http.StatusBadRequest, "Flight number is required")
			return
		}

		f, err := flights.Lookup(r.Context(), number)
		switch {
		case errors.Is(err, flight.ErrNotConfigured):
			writeJSON(w, http.StatusNotImplemented, flightUnavailable)
			return
		case errors.Is(err, flight.ErrNotFound):
			writeJSON(w, http.StatusNotFound, ErrorResponse{
				Error:   "Flight not found",
				Message: "No data available for this flight number",
			})
			return
		case err != nil:
			logger.Error("flight lookup failed", "flight", number, "error", err)
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, FlightResponse{
			FlightNumber:  f.FlightNumber,
			Origin:        f.Origin,
			Destination:   f.Destination,
			DepartureTime: f.DepartureTime.UTC().Format(isoMillis),
			ArrivalTime:   f.ArrivalTime.UTC().Format(isoMillis),
		})
	}
}
