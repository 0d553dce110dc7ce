// Package jetlag holds the recovery estimator and the symptom quiz scorer.
// Everything here is pure: no I/O, no shared mutable state.
package jetlag

type Direction string

const (
	DirectionEast Direction = "East"
	DirectionWest Direction = "West"
	DirectionNone Direction = "None"
)

type Severity string

const (
	SeverityMild     Severity = "Mild"
	SeverityModerate Severity = "Moderate"
	SeveritySevere   Severity = "Severe"
)

type AgeBand string

const (
	AgeUnspecified AgeBand = ""
	Age18To30      AgeBand = "18-30"
	Age31To50      AgeBand = "31-50"
	Age51To65      AgeBand = "51-65"
	Age66Plus      AgeBand = "66+"
)

// ParseAgeBand maps a form value to a band. Anything unrecognised is
// AgeUnspecified and earns no adjustment.
func ParseAgeBand(s string) AgeBand {
	switch b := AgeBand(s); b {
	case Age18To30, Age31To50, Age51To65, Age66Plus:
		return b
	default:
		return AgeUnspecified
	}
}

func (a AgeBand) senior() bool {
	return a == Age51To65 || a == Age66Plus
}
