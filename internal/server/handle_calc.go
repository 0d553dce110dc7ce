package server

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jetlaghelper/api/internal/jetlag"
)

func handleCalc(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req jetlag.TripRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		result, err := jetlag.Calculate(req)
		var verr *jetlag.ValidationError
		if errors.As(err, &verr) {
			logger.Debug("calc rejected", "missing", verr.Fields)
			writeError(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		if err != nil {
			logger.Error("calc failed", "error", err)
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
