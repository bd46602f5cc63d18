package services

import (
	"sync"
	"testing"

	"github.com/roadtrack-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddXPConcurrentGrants(t *testing.T) {
	setupTestDB(t)
	svc := NewProfileService()
	user := seedUser(t, "dave")
	seedProfile(t, user.ID, 0)

	// Concurrent grants must serialize; a lost update would leave XP short
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddXP(user.ID, 10)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	profile, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 200, profile.XP)
}

func TestAddXPRejectsNegativeAmount(t *testing.T) {
	setupTestDB(t)
	svc := NewProfileService()
	user := seedUser(t, "erin")
	seedProfile(t, user.ID, 50)

	_, err := svc.AddXP(user.ID, -1)
	assert.ErrorIs(t, err, ErrValidation)

	profile, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, profile.XP, "a rejected grant must not touch the profile")
}

func TestCheckBadgesPersistsEarnedBadges(t *testing.T) {
	setupTestDB(t)
	svc := NewProfileService()
	user := seedUser(t, "frank")
	seedProfile(t, user.ID, 0)
	seedProject(t, user.ID, "p1", models.StatusDone)

	result, err := svc.CheckBadges(user.ID)
	require.NoError(t, err)
	assert.Contains(t, result.NewlyEarned, "b_first_step")

	profile, err := svc.GetProfile(user.ID)
	require.NoError(t, err)
	assert.Contains(t, []string(profile.UnlockedBadges), "b_first_step")

	again, err := svc.CheckBadges(user.ID)
	require.NoError(t, err)
	assert.Empty(t, again.NewlyEarned)
}
