package utils

import (
	"testing"

	"github.com/roadtrack-api/models"
	"github.com/stretchr/testify/assert"
)

func TestSecondsToHours(t *testing.T) {
	assert.Equal(t, 1.0, SecondsToHours(3600))
	assert.Equal(t, 0.5, SecondsToHours(1800))
	assert.Equal(t, 1.5, SecondsToHours(5400))
	assert.Equal(t, 0.0, SecondsToHours(0))
	// 10 minutes is 0.1666..h, rounds to 0.2
	assert.Equal(t, 0.2, SecondsToHours(600))
}

func TestHoursFromSessions(t *testing.T) {
	sessions := []models.WorkSession{
		{DurationSeconds: 3600},
		{DurationSeconds: 1800},
	}
	assert.Equal(t, 1.5, HoursFromSessions(sessions))
}

func TestHoursFromNoSessionsIsZero(t *testing.T) {
	assert.Equal(t, 0.0, HoursFromSessions(nil))
}
