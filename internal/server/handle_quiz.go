package server

import (
	"errors"
	"net/http"

	"github.com/jetlaghelper/api/internal/jetlag"
)

func handleQuiz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var answers jetlag.QuizAnswers
		if err := readJSON(r, &answers); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if err := answers.Validate(); err != nil {
			if errors.Is(err, jetlag.ErrInvalidAnswers) {
				writeError(w, http.StatusBadRequest, "Invalid quiz answers")
				return
			}
			writeInternalError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, jetlag.ScoreQuiz(answers))
	}
}

func handleZones() http.HandlerFunc {
	zones := jetlag.Zones()
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, zones)
	}
}
