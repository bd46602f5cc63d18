package repositories

import (
	"github.com/roadtrack-api/database"
	"github.com/roadtrack-api/models"
)

// ProfileRepository handles database operations for user profiles
type ProfileRepository struct{}

// NewProfileRepository creates a new profile repository instance
func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{}
}

// FindByUserID retrieves the profile owned by a user
func (r *ProfileRepository) FindByUserID(userID string) (models.UserProfile, error) {
	var profile models.UserProfile
	result := database.DB.First(&profile, "user_id = ?", userID)
	return profile, result.Error
}

// Save persists profile changes
func (r *ProfileRepository) Save(profile *models.UserProfile) error {
	return database.DB.Save(profile).Error
}
