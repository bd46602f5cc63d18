package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/roadtrack-api/database"
	"github.com/roadtrack-api/dto"
	"github.com/roadtrack-api/models"
	"github.com/roadtrack-api/repositories"
	"github.com/roadtrack-api/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectService handles business logic for roadmap projects.
// Every mutation runs under the owner's lock and inside one transaction, and
// finishes with a dependency resolver pass over the user's full project set.
type ProjectService struct {
	projectRepo *repositories.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		projectRepo: repositories.NewProjectRepository(),
	}
}

// ListProjects retrieves all projects for a user, sessions included
func (s *ProjectService) ListProjects(userID string) ([]models.Project, error) {
	return s.projectRepo.FindByUser(userID)
}

// GetProject retrieves a single project scoped to its owner
func (s *ProjectService) GetProject(projectID, userID string) (models.Project, error) {
	project, err := s.projectRepo.FindByIDAndUser(projectID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Project{}, fmt.Errorf("%w: project", ErrNotFound)
	}
	return project, err
}

// CreateProject creates a new project. Caller-supplied status, checklist and
// resources are ignored: projects always start locked and empty, then the
// resolver decides whether the new project unlocks immediately.
func (s *ProjectService) CreateProject(userID string, req dto.CreateProjectRequest) (models.Project, error) {
	unlock := lockUser(userID)
	defer unlock()

	projectID := req.ID
	if projectID == "" {
		projectID = utils.NewProjectID()
	}

	exists, err := s.projectRepo.ExistsForUser(projectID, userID)
	if err != nil {
		return models.Project{}, err
	}
	if exists {
		return models.Project{}, fmt.Errorf("%w: project id already exists", ErrConflict)
	}

	now := time.Now()
	project := models.Project{
		ID:           projectID,
		UserID:       userID,
		Title:        req.Title,
		Level:        req.Level,
		Status:       models.StatusLocked,
		Category:     req.Category,
		Description:  req.Description,
		Position:     datatypes.NewJSONType(models.Coordinates{X: 100, Y: 100}),
		Dependencies: datatypes.JSONSlice[string]{},
		TechStack:    datatypes.JSONSlice[string]{},
		Checklist:    datatypes.JSONSlice[models.SubTask]{},
		Resources:    datatypes.JSONSlice[models.Resource]{},
		Complexity:   req.Complexity,
		Priority:     req.Priority,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if project.Level == 0 {
		project.Level = 1
	}
	if req.Position != nil {
		project.Position = datatypes.NewJSONType(*req.Position)
	}
	if req.Dependencies != nil {
		project.Dependencies = req.Dependencies
	}
	if req.TechStack != nil {
		project.TechStack = req.TechStack
	}
	if project.Priority == nil {
		medium := models.PriorityMedium
		project.Priority = &medium
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&project).Error; err != nil {
			return err
		}
		return s.resolveSet(tx, userID)
	})
	if err != nil {
		return models.Project{}, err
	}

	// Re-read so the returned status reflects the resolver pass
	return s.projectRepo.FindByIDAndUser(projectID, userID)
}

// UpdateProject applies a partial update to a project. When the project has
// sessions, the time aggregator's value overrides any caller-supplied
// timeSpentHours. Finishes with a resolver pass over the whole set.
func (s *ProjectService) UpdateProject(projectID, userID string, req dto.UpdateProjectRequest) (models.Project, error) {
	unlock := lockUser(userID)
	defer unlock()

	project, err := s.projectRepo.FindByIDAndUser(projectID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Project{}, fmt.Errorf("%w: project", ErrNotFound)
	}
	if err != nil {
		return models.Project{}, err
	}

	applyProjectPatch(&project, req)

	// The aggregator wins over the caller whenever sessions exist
	if len(project.Sessions) > 0 {
		project.TimeSpentHours = utils.HoursFromSessions(project.Sessions)
	}
	project.UpdatedAt = time.Now()

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&project).Error; err != nil {
			return err
		}
		return s.resolveSet(tx, userID)
	})
	if err != nil {
		return models.Project{}, err
	}

	return s.projectRepo.FindByIDAndUser(projectID, userID)
}

// DeleteProject removes a project, its sessions, and every reference to it in
// sibling dependency lists, then re-resolves the remaining set — all in one
// transaction so a project that depended solely on the deleted one unlocks in
// the same operation.
func (s *ProjectService) DeleteProject(projectID, userID string) error {
	unlock := lockUser(userID)
	defer unlock()

	_, err := s.projectRepo.FindByIDAndUser(projectID, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: project", ErrNotFound)
	}
	if err != nil {
		return err
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ? AND project_id = ?", userID, projectID).
			Delete(&models.WorkSession{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ? AND user_id = ?", projectID, userID).
			Delete(&models.Project{}).Error; err != nil {
			return err
		}

		// Purge the id from everyone's dependency lists before resolving
		projects, err := s.projectRepo.FindByUserTx(tx, userID)
		if err != nil {
			return err
		}
		for _, id := range utils.RemoveDependency(projects, projectID) {
			deps := dependenciesOf(projects, id)
			if err := tx.Model(&models.Project{}).
				Where("id = ? AND user_id = ?", id, userID).
				Update("dependencies", deps).Error; err != nil {
				return err
			}
		}

		return persistStatusChanges(tx, userID, projects, utils.ResolveProjectStatuses(projects))
	})
}

// resolveSet loads the user's full project set, runs one resolver pass, and
// persists any status transitions
func (s *ProjectService) resolveSet(tx *gorm.DB, userID string) error {
	projects, err := s.projectRepo.FindByUserTx(tx, userID)
	if err != nil {
		return err
	}
	return persistStatusChanges(tx, userID, projects, utils.ResolveProjectStatuses(projects))
}

// persistStatusChanges writes the status of each changed project back to the store
func persistStatusChanges(tx *gorm.DB, userID string, projects []models.Project, changed []string) error {
	for _, id := range changed {
		if err := tx.Model(&models.Project{}).
			Where("id = ? AND user_id = ?", id, userID).
			Update("status", statusOf(projects, id)).Error; err != nil {
			return err
		}
	}
	return nil
}

// statusOf returns the status of the project with the given id in the set
func statusOf(projects []models.Project, id string) models.ProjectStatus {
	for i := range projects {
		if projects[i].ID == id {
			return projects[i].Status
		}
	}
	return models.StatusLocked
}

// applyProjectPatch overwrites exactly the fields present in the patch;
// absent (nil) fields leave the project unchanged
func applyProjectPatch(project *models.Project, req dto.UpdateProjectRequest) {
	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Level != nil {
		project.Level = *req.Level
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Category != nil {
		project.Category = *req.Category
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Position != nil {
		project.Position = datatypes.NewJSONType(*req.Position)
	}
	if req.Dependencies != nil {
		project.Dependencies = *req.Dependencies
	}
	if req.TechStack != nil {
		project.TechStack = *req.TechStack
	}
	if req.Complexity != nil {
		project.Complexity = req.Complexity
	}
	if req.Priority != nil {
		project.Priority = req.Priority
	}
	if req.Checklist != nil {
		project.Checklist = *req.Checklist
	}
	if req.Resources != nil {
		project.Resources = *req.Resources
	}
	if req.GithubURL != nil {
		project.GithubURL = req.GithubURL
	}
	if req.Notes != nil {
		project.Notes = req.Notes
	}
	if req.TimeSpentHours != nil {
		project.TimeSpentHours = *req.TimeSpentHours
	}
	if req.CompletedAt != nil {
		project.CompletedAt = req.CompletedAt
	}
}

// dependenciesOf returns the dependency list of the project with the given id
func dependenciesOf(projects []models.Project, id string) datatypes.JSONSlice[string] {
	for i := range projects {
		if projects[i].ID == id {
			return projects[i].Dependencies
		}
	}
	return datatypes.JSONSlice[string]{}
}
