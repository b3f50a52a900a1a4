package utils

import "backend/models"

// Circadian weighting of insulin sensitivity and cortisol, keyed off hours
// since waking. Curves follow Poggiogalle et al. (2018) on circadian
// regulation of glucose and energy metabolism.

// HoursSinceWaking returns elapsed hours from wake time to t. A t earlier in
// the day than the wake time is read as belonging to the next day.
func HoursSinceWaking(wake, t models.Clock) float64 {
	diff := t.Minutes() - wake.Minutes()
	if diff < 0 {
		diff += 24 * 60
	}
	return float64(diff) / 60
}

// InsulinSensitivity scores carbohydrate responsiveness at a meal time on a
// 0.3–1.0 scale. Sensitivity peaks 2–6 hours after waking and declines in
// steps through the evening.
func InsulinSensitivity(wake, mealTime models.Clock) float64 {
	hours := HoursSinceWaking(wake, mealTime)

	switch {
	case hours < 0:
		// Before waking; unreachable after wraparound but kept as a guard.
		return 0.3
	case hours < 2:
		return 0.9
	case hours < 6:
		return 1.0
	case hours < 10:
		return 0.7
	case hours < 14:
		return 0.5
	default:
		return 0.3
	}
}

// CortisolLevel estimates relative cortisol (0–1) at time t. The curve rises
// to the awakening-response peak within the first hour, then declines
// rapidly until hour 4 and gradually until hour 12.
func CortisolLevel(wake, t models.Clock) float64 {
	hours := HoursSinceWaking(wake, t)

	switch {
	case hours < 0:
		return 0.2
	case hours < 0.5:
		return 0.7 + (hours/0.5)*0.3
	case hours < 1:
		return 1.0
	case hours < 4:
		return 1.0 - ((hours-1)/3)*0.4
	case hours < 12:
		return 0.6 - ((hours-4)/8)*0.3
	default:
		return 0.3
	}
}

// CarbPriority maps a sensitivity score to a display label.
func CarbPriority(sensitivity float64) string {
	switch {
	case sensitivity >= 0.9:
		return "Best for carbs"
	case sensitivity >= 0.7:
		return "Good for carbs"
	case sensitivity >= 0.5:
		return "Moderate carbs"
	default:
		return "Minimize carbs"
	}
}

// IsOptimalFirstMealWindow reports whether a meal lands 30–60 minutes after
// waking, once the cortisol awakening response has peaked and begun to fall.
func IsOptimalFirstMealWindow(wake, mealTime models.Clock) bool {
	hours := HoursSinceWaking(wake, mealTime)
	return hours >= 0.5 && hours <= 1.0
}
