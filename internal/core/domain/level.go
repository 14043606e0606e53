package domain

// Bucket boundaries on count/max. Levels are relative to the user's own peak day.
const (
	levelOneRatio   = 0.15
	levelTwoRatio   = 0.40
	levelThreeRatio = 0.70
)

// Level maps a day count to a colour bucket in [0, LevelCount).
func Level(count, max int) int {
	if count <= 0 {
		return 0
	}
	if max < 1 {
		max = 1
	}

	r := float64(count) / float64(max)
	switch {
	case r < levelOneRatio:
		return 1
	case r < levelTwoRatio:
		return 2
	case r < levelThreeRatio:
		return 3
	default:
		return 4
	}
}
