package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/roadtrack-api/database"
	"github.com/roadtrack-api/models"
	"github.com/roadtrack-api/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the global handle at an in-memory sqlite database so
// service logic runs against a real store without a postgres instance
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection keeps every query on the same in-memory database
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Project{},
		&models.WorkSession{},
	))

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })
}

func seedUser(t *testing.T, username string) models.User {
	t.Helper()
	user := models.User{
		ID:       utils.NewID(),
		Email:    username + "@example.com",
		Username: username,
		Password: "not-a-real-hash",
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func seedProfile(t *testing.T, userID string, xp int) {
	t.Helper()
	profile := models.UserProfile{
		ID:             utils.NewID(),
		UserID:         userID,
		XP:             xp,
		Level:          1,
		UnlockedBadges: datatypes.JSONSlice[string]{},
	}
	require.NoError(t, database.DB.Create(&profile).Error)
}

func seedProject(t *testing.T, userID, id string, status models.ProjectStatus, deps ...string) {
	t.Helper()
	project := models.Project{
		ID:           id,
		UserID:       userID,
		Title:        id,
		Level:        1,
		Status:       status,
		Category:     "General",
		Dependencies: datatypes.JSONSlice[string](deps),
		TechStack:    datatypes.JSONSlice[string]{},
		Checklist:    datatypes.JSONSlice[models.SubTask]{},
		Resources:    datatypes.JSONSlice[models.Resource]{},
	}
	require.NoError(t, database.DB.Create(&project).Error)
}
