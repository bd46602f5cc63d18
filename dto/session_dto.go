package dto

import (
	"github.com/roadtrack-api/models"
)

// CreateSessionRequest represents a work session to record on a project.
// DurationSeconds is independent of start/end; manual entries carry it alone.
type CreateSessionRequest struct {
	StartTime       int64              `json:"startTime" binding:"required"`
	EndTime         *int64             `json:"endTime"`
	DurationSeconds int64              `json:"durationSeconds" binding:"gte=0"`
	Type            models.SessionType `json:"type" binding:"required,oneof=focus pomodoro manual"`
	Notes           *string            `json:"notes"`
	TaskID          *string            `json:"taskId"`
}
