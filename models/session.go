package models

import (
	"time"
)

// SessionType represents how a work session was recorded
type SessionType string

const (
	SessionFocus    SessionType = "focus"
	SessionPomodoro SessionType = "pomodoro"
	SessionManual   SessionType = "manual"
)

// WorkSession is a time-tracking entry belonging to a project.
// DurationSeconds is authoritative and independent of start/end times,
// since manual entries carry no end timestamp.
type WorkSession struct {
	ID        string `json:"id" gorm:"primaryKey;type:uuid"`
	ProjectID string `json:"projectId" gorm:"size:50;not null;index"`
	UserID    string `json:"-" gorm:"type:uuid;not null;index"`

	StartTime       int64       `json:"startTime" gorm:"not null"` // Unix timestamp ms
	EndTime         *int64      `json:"endTime" gorm:"default:null"`
	DurationSeconds int64       `json:"durationSeconds" gorm:"default:0"`
	Type            SessionType `json:"type" gorm:"type:varchar(10);default:'focus'"`
	Notes           *string     `json:"notes" gorm:"type:text;default:null"`
	TaskID          *string     `json:"taskId" gorm:"size:100;default:null"`

	CreatedAt time.Time `json:"createdAt"`
}
