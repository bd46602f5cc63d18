package repositories

import (
	"strings"

	"github.com/roadtrack-api/database"
	"github.com/roadtrack-api/models"
)

// UserRepository handles database operations for user accounts
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "id = ?", id)
	return user, result.Error
}

// FindByEmail retrieves a user by email (case-folded)
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "email = ?", strings.ToLower(email))
	return user, result.Error
}

// FindByUsername retrieves a user by username (case-folded)
func (r *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "username = ?", strings.ToLower(username))
	return user, result.Error
}
