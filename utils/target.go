package utils

import "errors"

// RecommendedDailyTargetMl suggests a daily water target from body weight
// using the common 35ml-per-kg guideline, snapped to the 100ml steps the
// settings validation accepts and clamped to its 1000..4000 range.
func RecommendedDailyTargetMl(weightKg float64) (int, error) {
	if weightKg <= 0 {
		return 0, errors.New("weight must be positive")
	}
	// Sanity checks to avoid garbage input
	if weightKg < 10 || weightKg > 400 {
		return 0, errors.New("weight out of plausible range")
	}

	ml := int(weightKg * 35)
	ml = ((ml + 50) / 100) * 100 // round to nearest 100
	if ml < 1000 {
		ml = 1000
	}
	if ml > 4000 {
		ml = 4000
	}
	return ml, nil
}
