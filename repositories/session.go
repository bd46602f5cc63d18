package repositories

import (
	"github.com/roadtrack-api/database"
	"github.com/roadtrack-api/models"
)

// SessionRepository handles database operations for work sessions
type SessionRepository struct{}

// NewSessionRepository creates a new session repository instance
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

// FindByProject retrieves all sessions for a project, newest first.
// Scoped by owner so another user's project yields an empty result.
func (r *SessionRepository) FindByProject(userID, projectID string) ([]models.WorkSession, error) {
	sessions := []models.WorkSession{}
	result := database.DB.Where("user_id = ? AND project_id = ?", userID, projectID).
		Order("start_time desc").
		Find(&sessions)
	return sessions, result.Error
}
