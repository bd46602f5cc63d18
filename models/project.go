package models

import (
	"time"

	"gorm.io/datatypes"
)

// ProjectStatus represents the lifecycle state of a project
type ProjectStatus string

const (
	StatusLocked     ProjectStatus = "locked"
	StatusUnlocked   ProjectStatus = "unlocked"
	StatusInProgress ProjectStatus = "in_progress"
	StatusDone       ProjectStatus = "done"
)

// Priority represents project priority levels
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Coordinates is a 2D position on the roadmap graph view
type Coordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// SubTask is a single checklist entry on a project
type SubTask struct {
	ID          string `json:"id"`
	Text        string `json:"text"`
	IsCompleted bool   `json:"isCompleted"`
}

// Resource is a reference link attached to a project
type Resource struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Project is a node in a user's roadmap dependency graph.
// IDs are unique per owning user, so the primary key is (id, user_id);
// seed projects share ids like "p1_1" across users.
type Project struct {
	ID     string `json:"id" gorm:"primaryKey;size:50"`
	UserID string `json:"-" gorm:"primaryKey;type:uuid;index"`

	Title       string        `json:"title" gorm:"not null"`
	Level       int           `json:"level" gorm:"default:1"`
	Status      ProjectStatus `json:"status" gorm:"type:varchar(20);default:'locked'"`
	Category    string        `json:"category" gorm:"not null"`
	Description string        `json:"description" gorm:"type:text;default:''"`

	Position     datatypes.JSONType[Coordinates] `json:"position"`
	Dependencies datatypes.JSONSlice[string]     `json:"dependencies"`
	TechStack    datatypes.JSONSlice[string]     `json:"techStack"`
	Checklist    datatypes.JSONSlice[SubTask]    `json:"checklist"`
	Resources    datatypes.JSONSlice[Resource]   `json:"resources"`

	Complexity     *int      `json:"complexity" gorm:"default:null"`
	Priority       *Priority `json:"priority" gorm:"type:varchar(10);default:null"`
	GithubURL      *string   `json:"githubUrl" gorm:"default:null"`
	Notes          *string   `json:"notes" gorm:"type:text;default:null"`
	TimeSpentHours float64   `json:"timeSpentHours" gorm:"default:0"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	CompletedAt *time.Time `json:"completedAt" gorm:"default:null"`

	// Loaded explicitly by the repository, not an ORM association
	Sessions []WorkSession `json:"sessions" gorm:"-"`
}
