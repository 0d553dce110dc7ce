package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/jetlaghelper/api/internal/handler/health"
	"github.com/jetlaghelper/api/internal/jetlag"
)

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Jet Lag Helper API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Recovery estimates, symptom quiz scoring and newsletter sign-up.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(health.Response{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(health.Response{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// POST /api/calc
	postCalc, _ := r.NewOperationContext(http.MethodPost, "/api/calc")
	postCalc.SetSummary("Estimate recovery")
	postCalc.SetDescription("Estimates jet lag recovery days, severity and the top tips for a trip. All fields are required.")
	postCalc.AddReqStructure(jetlag.TripRequest{})
	postCalc.AddRespStructure(jetlag.RecoveryResult{}, openapi.WithHTTPStatus(http.StatusOK))
	postCalc.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postCalc.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusInternalServerError))
	_ = r.AddOperation(postCalc)

	// POST /api/quiz
	postQuiz, _ := r.NewOperationContext(http.MethodPost, "/api/quiz")
	postQuiz.SetSummary("Score symptom quiz")
	postQuiz.SetDescription("Sums the answer points and returns a severity band with fixed tips.")
	postQuiz.AddReqStructure(jetlag.QuizAnswers{})
	postQuiz.AddRespStructure(jetlag.QuizResult{}, openapi.WithHTTPStatus(http.StatusOK))
	postQuiz.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	_ = r.AddOperation(postQuiz)

	// GET /api/zones
	getZones, _ := r.NewOperationContext(http.MethodGet, "/api/zones")
	getZones.SetSummary("List time zones")
	getZones.SetDescription("Returns the supported zone names with their fixed UTC offsets.")
	getZones.AddRespStructure([]jetlag.Zone{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getZones)

	// POST /api/subscribe
	postSubscribe, _ := r.NewOperationContext(http.MethodPost, "/api/subscribe")
	postSubscribe.SetSummary("Subscribe")
	postSubscribe.SetDescription("Validates an email address and records the subscription.")
	postSubscribe.AddReqStructure(SubscribeRequest{})
	postSubscribe.AddRespStructure(SubscribeResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	postSubscribe.AddRespStructure(SubscribeResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	postSubscribe.AddRespStructure(SubscribeResponse{}, openapi.WithHTTPStatus(http.StatusInternalServerError))
	_ = r.AddOperation(postSubscribe)

	// GET /api/flight-lookup
	getFlight, _ := r.NewOperationContext(http.MethodGet, "/api/flight-lookup")
	getFlight.SetSummary("Look up flight")
	getFlight.SetDescription("Finds a recent flight by callsign. Answers 501 until a provider is configured.")
	getFlight.AddReqStructure(FlightLookupQuery{})
	getFlight.AddRespStructure(FlightResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getFlight.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	getFlight.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	getFlight.AddRespStructure(FlightUnavailableResponse{}, openapi.WithHTTPStatus(http.StatusNotImplemented))
	_ = r.AddOperation(getFlight)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
