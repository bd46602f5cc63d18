package utils

import (
	"math"

	"github.com/roadtrack-api/models"
)

// SecondsToHours converts a duration in seconds to hours rounded to one
// decimal place (half away from zero): 3600s -> 1.0, 1800s -> 0.5, 5400s -> 1.5
func SecondsToHours(seconds int64) float64 {
	return math.Round(float64(seconds)/3600*10) / 10
}

// HoursFromSessions recomputes a project's accumulated time from its sessions.
// Missing sessions mean zero hours; the computed value always wins over any
// caller-supplied time_spent_hours when sessions exist.
func HoursFromSessions(sessions []models.WorkSession) float64 {
	var total int64
	for _, s := range sessions {
		total += s.DurationSeconds
	}
	return SecondsToHours(total)
}
