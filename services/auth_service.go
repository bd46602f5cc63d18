package services

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/roadtrack-api/database"
	"github.com/roadtrack-api/dto"
	"github.com/roadtrack-api/models"
	"github.com/roadtrack-api/repositories"
	"github.com/roadtrack-api/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

var userRepo = repositories.NewUserRepository()

// Register creates a new user account with its profile and starter roadmap.
// Email and username are stored lowercase; the whole creation is one
// transaction so a failed seed leaves no half-created account behind.
func Register(req dto.RegisterRequest) (*models.User, error) {
	email := strings.ToLower(req.Email)
	username := strings.ToLower(req.Username)

	if !usernamePattern.MatchString(username) {
		return nil, fmt.Errorf("%w: username must be alphanumeric (underscores/dashes allowed)", ErrValidation)
	}

	// Check if email already exists
	if _, err := userRepo.FindByEmail(email); err == nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Check if username already exists
	if _, err := userRepo.FindByUsername(username); err == nil {
		return nil, fmt.Errorf("%w: username already taken", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:       utils.NewID(),
		Email:    email,
		Username: username,
		Password: string(hashedPassword),
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		profile := models.UserProfile{
			ID:             utils.NewID(),
			UserID:         user.ID,
			XP:             0,
			Level:          1,
			UnlockedBadges: datatypes.JSONSlice[string]{},
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		return seedStarterProjects(tx, user.ID)
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// seedStarterProjects copies the starter roadmap into a new user's project
// set, statuses as catalogued, then runs one resolver pass over the result
func seedStarterProjects(tx *gorm.DB, userID string) error {
	now := time.Now()
	seeded := make([]models.Project, len(models.StarterProjects))
	copy(seeded, models.StarterProjects)
	for i := range seeded {
		seeded[i].UserID = userID
		seeded[i].Checklist = datatypes.JSONSlice[models.SubTask]{}
		seeded[i].Resources = datatypes.JSONSlice[models.Resource]{}
		seeded[i].CreatedAt = now
		seeded[i].UpdatedAt = now
	}
	// insert one row at a time: the catalog mixes nil and non-nil values in
	// columns with defaults, and a multi-row insert makes gorm pad the gaps
	// with the DEFAULT keyword, which sqlite rejects inside a VALUES list
	if err := tx.CreateInBatches(seeded, 1).Error; err != nil {
		return err
	}

	return persistStatusChanges(tx, userID, seeded, utils.ResolveProjectStatuses(seeded))
}

// GetUser retrieves a user by ID
func GetUser(id string) (*models.User, error) {
	user, err := userRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates by username or email and returns a token.
// The failure message never says which of the two was wrong.
func Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	identifier := strings.ToLower(req.Username)

	user, err := userRepo.FindByUsername(identifier)
	if err != nil {
		user, err = userRepo.FindByEmail(identifier)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: incorrect username or password", ErrUnauthenticated)
	}

	// Check password
	err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password))
	if err != nil {
		return nil, fmt.Errorf("%w: incorrect username or password", ErrUnauthenticated)
	}

	// Generate token
	token, expiresAt, err := GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	responseUser := user
	responseUser.Password = ""

	return &dto.AuthResponse{
		Token:     token,
		User:      responseUser,
		ExpiresAt: expiresAt,
	}, nil
}

// GenerateToken generates a new JWT token for a user
func GenerateToken(userID, username string) (string, time.Time, error) {
	// Get secret key from environment
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return "", time.Time{}, errors.New("JWT_SECRET not set in environment")
	}

	// Token expires in 24 hours
	expiresAt := time.Now().Add(24 * time.Hour)

	claims := dto.TokenClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(secretKey))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns claims if valid
func ValidateToken(tokenString string) (*dto.TokenClaims, error) {
	// Get secret key from environment
	secretKey := os.Getenv("JWT_SECRET")
	if secretKey == "" {
		return nil, errors.New("JWT_SECRET not set in environment")
	}

	// Parse the token
	token, err := jwt.ParseWithClaims(tokenString, &dto.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(*dto.TokenClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
