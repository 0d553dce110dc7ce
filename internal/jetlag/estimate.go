package jetlag

import "math"

// TripInput is a trip with zone names already resolved to offsets.
type TripInput struct {
	OriginOffset  int
	DestOffset    int
	SleptOnFlight bool
	Age           AgeBand
}

type RecoveryResult struct {
	TimeDiffHours         int       `json:"timeDiffHours"`
	ZonesCrossed          int       `json:"zonesCrossed"`
	Direction             Direction `json:"direction"`
	EstimatedRecoveryDays int       `json:"estimatedRecoveryDays"`
	Severity              Severity  `json:"severity"`
	TopTips               []string  `json:"topTips"`
}

const daysPerZone = 0.7

// Estimate computes recovery days, severity and ranked tips for a trip.
func Estimate(in TripInput) RecoveryResult {
	diff := in.DestOffset - in.OriginOffset
	zones := abs(diff)

	dir := DirectionWest
	switch {
	case diff > 0:
		dir = DirectionEast
	case diff == 0:
		dir = DirectionNone
	}

	days := int(math.Ceil(float64(zones) * daysPerZone))

	if dir == DirectionEast {
		days++
	}
	if in.SleptOnFlight {
		days = max(1, days-1)
	}
	if in.Age.senior() {
		days++
	} else if in.Age == Age18To30 {
		days = max(1, days-1)
	}
	days = max(1, days)

	sev := severityForDays(days)

	return RecoveryResult{
		TimeDiffHours:         zones,
		ZonesCrossed:          zones,
		Direction:             dir,
		EstimatedRecoveryDays: days,
		Severity:              sev,
		TopTips:               rankTips(zones, dir, sev, in.SleptOnFlight, in.Age),
	}
}

func severityForDays(days int) Severity {
	switch {
	case days >= 9:
		return SeveritySevere
	case days >= 5:
		return SeverityModerate
	default:
		return SeverityMild
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
