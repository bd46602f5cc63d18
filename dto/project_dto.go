package dto

import (
	"time"

	"github.com/roadtrack-api/models"
)

// CreateProjectRequest represents the payload for creating a project.
// Status, checklist and resources are not accepted: new projects always
// start locked and empty, then the dependency resolver runs.
type CreateProjectRequest struct {
	ID           string              `json:"id"` // auto-generated if empty
	Title        string              `json:"title" binding:"required,max=255"`
	Level        int                 `json:"level" binding:"omitempty,gte=1,lte=10"`
	Category     string              `json:"category" binding:"required,max=100"`
	Description  string              `json:"description"`
	Position     *models.Coordinates `json:"position"`
	Dependencies []string            `json:"dependencies"`
	TechStack    []string            `json:"techStack"`
	Complexity   *int                `json:"complexity" binding:"omitempty,gte=1,lte=5"`
	Priority     *models.Priority    `json:"priority" binding:"omitempty,oneof=low medium high"`
}

// UpdateProjectRequest is a partial-update payload: nil means "leave
// unchanged", a present field overwrites. TimeSpentHours is overridden by
// the time aggregator whenever the project has sessions.
type UpdateProjectRequest struct {
	Title          *string               `json:"title" binding:"omitempty,min=1,max=255"`
	Level          *int                  `json:"level" binding:"omitempty,gte=1,lte=10"`
	Status         *models.ProjectStatus `json:"status" binding:"omitempty,oneof=locked unlocked in_progress done"`
	Category       *string               `json:"category" binding:"omitempty,min=1,max=100"`
	Description    *string               `json:"description"`
	Position       *models.Coordinates   `json:"position"`
	Dependencies   *[]string             `json:"dependencies"`
	TechStack      *[]string             `json:"techStack"`
	Complexity     *int                  `json:"complexity" binding:"omitempty,gte=1,lte=5"`
	Priority       *models.Priority      `json:"priority" binding:"omitempty,oneof=low medium high"`
	Checklist      *[]models.SubTask     `json:"checklist"`
	Resources      *[]models.Resource    `json:"resources"`
	GithubURL      *string               `json:"githubUrl" binding:"omitempty,max=500"`
	Notes          *string               `json:"notes"`
	TimeSpentHours *float64              `json:"timeSpentHours" binding:"omitempty,gte=0"`
	CompletedAt    *time.Time            `json:"completedAt"`
}
