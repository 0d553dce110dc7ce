package server

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/jetlaghelper/api/internal/handler/health"
)

func addRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Jet Lag Helper API", "/openapi.json", "/docs"))
	r.Mount("/healthz", health.NewHandler(logger, deps.Checks).Routes())

	r.Route("/api", func(r chi.Router) {
		r.Post("/calc", handleCalc(logger))
		r.Options("/calc", handlePreflight(http.MethodPost))

		r.Post("/quiz", handleQuiz())
		r.Options("/quiz", handlePreflight(http.MethodPost))

		r.Get("/zones", handleZones())

		r.Post("/subscribe", handleSubscribe(logger, deps.Subscriptions))
		r.Options("/subscribe", handlePreflight(http.MethodPost))

		r.Get("/flight-lookup", handleFlightLookup(logger, deps.Flights))
		r.Options("/flight-lookup", handlePreflight(http.MethodGet))
	})

	if deps.SiteDir != "" {
		if info, err := os.Stat(deps.SiteDir); err == nil && info.IsDir() {
			logger.Info("serving site", "dir", deps.SiteDir)
			r.NotFound(handleSite(deps.SiteDir))
		}
	}
}
