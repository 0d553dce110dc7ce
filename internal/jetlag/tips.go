package jetlag

const maxTips = 5

const (
	tipMorningLight    = "Seek bright morning light exposure for 30-45 minutes upon waking"
	tipEveningDark     = "Avoid bright light in the evening, especially 2 hours before bed"
	tipAfternoonLight  = "Get afternoon/evening light exposure between 4-7pm local time"
	tipMorningShades   = "Wear sunglasses in the morning to delay your body clock"
	tipCaffeineStrict  = "Avoid caffeine after 12pm local time for the first 3 days"
	tipCaffeineLimit   = "Limit caffeine intake after 2pm local time"
	tipMelatonin       = "Consider 0.5-1mg melatonin 30 minutes before your target bedtime"
	tipHydrateHigh     = "Stay very well hydrated - drink at least 3 liters of water daily"
	tipHydrateModerate = "Maintain good hydration - aim for 2-3 liters of water per day"
	tipExercise        = "Do light exercise (walking, stretching) in the morning sunlight"
	tipMeals           = "Eat meals at local times immediately upon arrival"
	tipNaps            = "Take short 20-minute power naps before 3pm if extremely tired"
	tipSeniorRest      = "Allow extra time for adjustment and prioritize sleep quality"
	tipAlcohol         = "Avoid alcohol for the first 48 hours after arrival"
)

// rankTips builds candidates in fixed priority order and keeps the first
// maxTips. Order matters: truncation drops the tail, not the least relevant.
func rankTips(zones int, dir Direction, sev Severity, slept bool, age AgeBand) []string {
	tips := make([]string, 0, 10)

	switch dir {
	case DirectionEast:
		tips = append(tips, tipMorningLight, tipEveningDark)
	case DirectionWest:
		tips = append(tips, tipAfternoonLight, tipMorningShades)
	}

	if sev == SeveritySevere {
		tips = append(tips, tipCaffeineStrict)
	} else {
		tips = append(tips, tipCaffeineLimit)
	}

	if zones >= 5 {
		tips = append(tips, tipMelatonin)
	}

	if sev == SeveritySevere || !slept {
		tips = append(tips, tipHydrateHigh)
	} else {
		tips = append(tips, tipHydrateModerate)
	}

	tips = append(tips, tipExercise, tipMeals)

	if !slept {
		tips = append(tips, tipNaps)
	}
	if age.senior() {
		tips = append(tips, tipSeniorRest)
	}
	if sev == SeveritySevere {
		tips = append(tips, tipAlcohol)
	}

	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}
	return tips
}
