package services

import (
	"testing"

	"github.com/roadtrack-api/database"
	"github.com/roadtrack-api/dto"
	"github.com/roadtrack-api/models"
	"github.com/roadtrack-api/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProjectOtherUserNotFound(t *testing.T) {
	setupTestDB(t)
	svc := NewProjectService()
	owner := seedUser(t, "owner")
	stranger := seedUser(t, "stranger")
	seedProject(t, owner.ID, "p1", models.StatusUnlocked)

	// Someone else's project is indistinguishable from a missing one
	_, err := svc.GetProject("p1", stranger.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	project, err := svc.GetProject("p1", owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "p1", project.ID)
}

func TestDeleteProjectUnlocksDependentInSameCall(t *testing.T) {
	setupTestDB(t)
	svc := NewProjectService()
	user := seedUser(t, "alice")
	seedProject(t, user.ID, "blocker", models.StatusUnlocked)
	seedProject(t, user.ID, "dependent", models.StatusLocked, "blocker")

	require.NoError(t, svc.DeleteProject("blocker", user.ID))

	dependent, err := svc.GetProject("dependent", user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnlocked, dependent.Status)
	assert.Empty(t, dependent.Dependencies)

	_, err = svc.GetProject("blocker", user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProjectAggregatorOverridesCaller(t *testing.T) {
	setupTestDB(t)
	svc := NewProjectService()
	user := seedUser(t, "bob")
	seedProject(t, user.ID, "p1", models.StatusInProgress)

	session := models.WorkSession{
		ID:              utils.NewID(),
		ProjectID:       "p1",
		UserID:          user.ID,
		StartTime:       1700000000000,
		DurationSeconds: 5400,
		Type:            models.SessionFocus,
	}
	require.NoError(t, database.DB.Create(&session).Error)

	// 99 is ignored: with sessions on record the aggregate wins
	hours := 99.0
	updated, err := svc.UpdateProject("p1", user.ID, dto.UpdateProjectRequest{TimeSpentHours: &hours})
	require.NoError(t, err)
	assert.Equal(t, 1.5, updated.TimeSpentHours)
}

func TestCreateProjectResolvesInitialStatus(t *testing.T) {
	setupTestDB(t)
	svc := NewProjectService()
	user := seedUser(t, "carol")
	seedProject(t, user.ID, "base", models.StatusDone)

	created, err := svc.CreateProject(user.ID, dto.CreateProjectRequest{
		Title:        "Follow-up",
		Category:     "General",
		Dependencies: []string{"base"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnlocked, created.Status)

	blocked, err := svc.CreateProject(user.ID, dto.CreateProjectRequest{
		Title:        "Too early",
		Category:     "General",
		Dependencies: []string{created.ID},
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusLocked, blocked.Status)
}
