package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jetlaghelper/api/internal/subscribe"
)

// Subscriber records newsletter sign-ups.
type Subscriber interface {
	Subscribe(ctx context.Context, email string) error
}

type SubscribeRequest struct {
	Email string `json:"email"`
}

// SubscribeResponse is used for every /api/subscribe answer, success or not.
type SubscribeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

func handleSubscribe(logger *slog.Logger, subs Subscriber) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubscribeRequest
		if err := readJSON(r, &req); err != nil {
			writeJSON(w, http.StatusBadRequest, SubscribeResponse{Error: "Invalid request body"})
			return
		}

		err := subs.Subscribe(r.Context(), req.Email)
		var verr *subscribe.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, SubscribeResponse{Error: verr.Msg})
			return
		}
		if err != nil {
			logger.Error("subscribe failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, SubscribeResponse{
				Error:   "Internal server error",
				Message: err.Error(),
			})
			return
		}

		writeJSON(w, http.StatusOK, SubscribeResponse{
			Success: true,
			Message: "Subscribed successfully",
		})
	}
}
