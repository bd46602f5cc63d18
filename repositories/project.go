package repositories

import (
	"github.com/roadtrack-api/database"
	"github.com/roadtrack-api/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects.
// Every query is scoped by the owning user id; a project belonging to
// another user is indistinguishable from a missing one.
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindByUser retrieves a user's full project set with sessions attached,
// ordered by level then creation time
func (r *ProjectRepository) FindByUser(userID string) ([]models.Project, error) {
	return r.FindByUserTx(database.DB, userID)
}

// FindByUserTx is FindByUser against an explicit transaction handle
func (r *ProjectRepository) FindByUserTx(tx *gorm.DB, userID string) ([]models.Project, error) {
	var projects []models.Project
	result := tx.Where("user_id = ?", userID).
		Order("level, created_at").
		Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}
	if err := attachSessions(tx, userID, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// FindByIDAndUser retrieves a single project with its sessions, scoped to the owner
func (r *ProjectRepository) FindByIDAndUser(id, userID string) (models.Project, error) {
	return r.FindByIDAndUserTx(database.DB, id, userID)
}

// FindByIDAndUserTx is FindByIDAndUser against an explicit transaction handle
func (r *ProjectRepository) FindByIDAndUserTx(tx *gorm.DB, id, userID string) (models.Project, error) {
	var project models.Project
	result := tx.First(&project, "id = ? AND user_id = ?", id, userID)
	if result.Error != nil {
		return project, result.Error
	}
	sessions, err := sessionsForProject(tx, userID, id)
	if err != nil {
		return project, err
	}
	project.Sessions = sessions
	return project, nil
}

// ExistsForUser checks whether a project id is already taken within a user's set
func (r *ProjectRepository) ExistsForUser(id, userID string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.Project{}).
		Where("id = ? AND user_id = ?", id, userID).
		Count(&count).Error
	return count > 0, err
}

// attachSessions loads all of a user's sessions in one query and groups them
// onto their projects, avoiding ORM back-references
func attachSessions(tx *gorm.DB, userID string, projects []models.Project) error {
	var sessions []models.WorkSession
	result := tx.Where("user_id = ?", userID).
		Order("start_time desc").
		Find(&sessions)
	if result.Error != nil {
		return result.Error
	}

	byProject := make(map[string][]models.WorkSession, len(projects))
	for _, s := range sessions {
		byProject[s.ProjectID] = append(byProject[s.ProjectID], s)
	}
	for i := range projects {
		if grouped, ok := byProject[projects[i].ID]; ok {
			projects[i].Sessions = grouped
		} else {
			projects[i].Sessions = []models.WorkSession{}
		}
	}
	return nil
}

func sessionsForProject(tx *gorm.DB, userID, projectID string) ([]models.WorkSession, error) {
	sessions := []models.WorkSession{}
	result := tx.Where("user_id = ? AND project_id = ?", userID, projectID).
		Order("start_time desc").
		Find(&sessions)
	return sessions, result.Error
}
