package jetlag

import (
	"errors"
	"slices"

	"github.com/jetlaghelper/api/internal/validate"
)

// QuizAnswers holds the point value of each questionnaire selection.
// Unanswered questions are zero.
type QuizAnswers struct {
	Zones     int   `json:"zones" validate:"min=0"`
	Direction int   `json:"direction" validate:"min=0"`
	Sleep     int   `json:"sleep" validate:"min=0"`
	Symptoms  []int `json:"symptoms" validate:"omitempty,dive,min=0"`
	Arrival   int   `json:"arrival" validate:"min=0"`
}

type QuizResult struct {
	Score    int      `json:"score"`
	Severity Severity `json:"severity"`
	Label    string   `json:"label"`
	Tips     []string `json:"tips"`
}

var ErrInvalidAnswers = errors.New("invalid quiz answers")

var (
	mildQuizTips = []string{
		"Stay hydrated - drink at least 2-3 liters of water daily",
		"Get 15-20 minutes of morning sunlight exposure",
		"Maintain regular meal times in your new timezone",
		"Avoid heavy meals and alcohol for the first day",
	}
	moderateQuizTips = []string{
		"Seek bright light exposure in the morning for 30-45 minutes",
		"Avoid caffeine after 2pm local time",
		"Take short 20-minute power naps if needed, before 3pm",
		"Exercise lightly in the morning to reset your circadian rhythm",
		"Consider 0.5mg melatonin 30 minutes before target bedtime",
	}
	severeQuizTips = []string{
		"Seek morning light exposure for 45-60 minutes daily for first 3 days",
		"Strictly avoid caffeine after 12pm local time",
		"Take 0.5-1mg melatonin 30 minutes before your target bedtime",
		"Stay very well hydrated - aim for 3+ liters of water daily",
		"Do light exercise (walking) in morning sunlight",
		"Avoid all alcohol for the first 48 hours",
	}
)

// Validate rejects negative point values.
func (a QuizAnswers) Validate() error {
	if err := inputs.Struct(a); err != nil {
		if validate.Failures(err) != nil {
			return ErrInvalidAnswers
		}
		return err
	}
	return nil
}

// Score sums the selected points.
func (a QuizAnswers) Score() int {
	total := a.Zones + a.Direction + a.Sleep + a.Arrival
	for _, s := range a.Symptoms {
		total += s
	}
	return total
}

// ScoreQuiz maps the questionnaire total to a tier and its fixed tips.
func ScoreQuiz(a QuizAnswers) QuizResult {
	score := a.Score()

	var (
		sev  Severity
		tips []string
	)
	switch {
	case score <= 5:
		sev, tips = SeverityMild, mildQuizTips
	case score <= 10:
		sev, tips = SeverityModerate, moderateQuizTips
	default:
		sev, tips = SeveritySevere, severeQuizTips
	}

	return QuizResult{
		Score:    score,
		Severity: sev,
		Label:    string(sev) + " Jet Lag",
		Tips:     slices.Clone(tips),
	}
}
