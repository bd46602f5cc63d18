package services

import (
	"testing"

	"github.com/roadtrack-api/dto"
	"github.com/roadtrack-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterSeedsAccount(t *testing.T) {
	setupTestDB(t)

	user, err := Register(dto.RegisterRequest{
		Email:    "Alice@Example.com",
		Username: "Alice",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "alice", user.Username)

	profile, err := NewProfileService().GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, profile.Level)

	projects, err := NewProjectService().ListProjects(user.ID)
	require.NoError(t, err)
	assert.Len(t, projects, len(models.StarterProjects))
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	setupTestDB(t)

	_, err := Register(dto.RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "supersecret",
	})
	require.NoError(t, err)

	_, err = Register(dto.RegisterRequest{
		Email:    "ALICE@example.com",
		Username: "someone_else",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrConflict)

	_, err = Register(dto.RegisterRequest{
		Email:    "other@example.com",
		Username: "Alice",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestLoginByUsernameOrEmail(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := Register(dto.RegisterRequest{
		Email:    "alice@example.com",
		Username: "alice",
		Password: "supersecret",
	})
	require.NoError(t, err)

	byUsername, err := Login(dto.LoginRequest{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)
	assert.NotEmpty(t, byUsername.Token)

	byEmail, err := Login(dto.LoginRequest{Username: "alice@example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, byUsername.User.ID, byEmail.User.ID)

	_, err = Login(dto.LoginRequest{Username: "alice", Password: "wrongpass"})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
