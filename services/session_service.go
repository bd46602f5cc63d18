package services

import (
	"errors"
	"fmt"

	"github.com/roadtrack-api/database"
	"github.com/roadtrack-api/dto"
	"github.com/roadtrack-api/models"
	"github.com/roadtrack-api/repositories"
	"github.com/roadtrack-api/utils"
	"gorm.io/gorm"
)

// SessionService handles business logic for work sessions
type SessionService struct {
	projectRepo *repositories.ProjectRepository
	sessionRepo *repositories.SessionRepository
}

// NewSessionService creates a new session service instance
func NewSessionService() *SessionService {
	return &SessionService{
		projectRepo: repositories.NewProjectRepository(),
		sessionRepo: repositories.NewSessionRepository(),
	}
}

// AddSession records a work session on a project and recomputes the project's
// accumulated hours from the full session list in the same transaction
func (s *SessionService) AddSession(projectID, userID string, req dto.CreateSessionRequest) (models.WorkSession, error) {
	unlock := lockUser(userID)
	defer unlock()

	_, err := s.projectRepo.FindByIDAndUser(projectID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.WorkSession{}, fmt.Errorf("%w: project", ErrNotFound)
	}
	if err != nil {
		return models.WorkSession{}, err
	}

	session := models.WorkSession{
		ID:              utils.NewID(),
		ProjectID:       projectID,
		UserID:          userID,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationSeconds: req.DurationSeconds,
		Type:            req.Type,
		Notes:           req.Notes,
		TaskID:          req.TaskID,
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&session).Error; err != nil {
			return err
		}

		updated, err := s.projectRepo.FindByIDAndUserTx(tx, projectID, userID)
		if err != nil {
			return err
		}
		return tx.Model(&models.Project{}).
			Where("id = ? AND user_id = ?", projectID, userID).
			Update("time_spent_hours", utils.HoursFromSessions(updated.Sessions)).Error
	})
	if err != nil {
		return models.WorkSession{}, err
	}

	return session, nil
}

// ListSessions retrieves all sessions for a project, newest first
func (s *SessionService) ListSessions(projectID, userID string) ([]models.WorkSession, error) {
	_, err := s.projectRepo.FindByIDAndUser(projectID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: project", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return s.sessionRepo.FindByProject(userID, projectID)
}
