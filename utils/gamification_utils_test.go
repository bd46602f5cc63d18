package utils

import (
	"testing"

	"github.com/roadtrack-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestRankForXP(t *testing.T) {
	assert.Equal(t, "Script Kiddie", RankForXP(0).Title)
	assert.Equal(t, "Script Kiddie", RankForXP(999).Title)
	assert.Equal(t, "Code Monkey", RankForXP(1000).Title)
	assert.Equal(t, "Full Stack Dev", RankForXP(7999).Title)
	assert.Equal(t, "10x Engineer", RankForXP(30000).Title)
	assert.Equal(t, "10x Engineer", RankForXP(1000000).Title)
}

func TestXPForLevel(t *testing.T) {
	assert.Equal(t, 0, XPForLevel(0))
	assert.Equal(t, 100, XPForLevel(1))
	assert.Equal(t, 282, XPForLevel(2))
	assert.Equal(t, 519, XPForLevel(3))
	assert.Equal(t, 0, XPForLevel(-3))
}

func doneProject(category string, tech ...string) models.Project {
	return models.Project{
		Status:    models.StatusDone,
		Category:  category,
		TechStack: datatypes.JSONSlice[string](tech),
	}
}

func TestEvaluateBadgesProjectCount(t *testing.T) {
	projects := []models.Project{
		doneProject("Network"),
		{Status: models.StatusInProgress, Category: "Cloud"},
	}

	all, earned := EvaluateBadges(nil, projects)

	assert.Contains(t, earned, "b_first_step")
	assert.Contains(t, all, "b_first_step")
	assert.NotContains(t, all, "b_builder")
}

func TestEvaluateBadgesHourCount(t *testing.T) {
	projects := []models.Project{
		{Status: models.StatusInProgress, TimeSpentHours: 6.5},
		{Status: models.StatusLocked, TimeSpentHours: 4.0},
	}

	all, _ := EvaluateBadges(nil, projects)

	assert.Contains(t, all, "b_grinder")
	assert.NotContains(t, all, "b_master")
}

func TestEvaluateBadgesCategoryCount(t *testing.T) {
	projects := []models.Project{
		doneProject("Network"),
		doneProject("Network"),
		// in-progress projects do not count toward category badges
		{Status: models.StatusInProgress, Category: "Network"},
	}

	all, _ := EvaluateBadges(nil, projects)

	assert.Contains(t, all, "b_net_eng")
}

func TestEvaluateBadgesTechStackAnyStatus(t *testing.T) {
	projects := []models.Project{
		doneProject("Network", "Python"),
		{Status: models.StatusLocked, TechStack: datatypes.JSONSlice[string]{"Python"}},
		{Status: models.StatusInProgress, TechStack: datatypes.JSONSlice[string]{"Python", "Flask"}},
	}

	all, _ := EvaluateBadges(nil, projects)

	assert.Contains(t, all, "b_py_snake")
}

func TestEvaluateBadgesIsIdempotent(t *testing.T) {
	projects := []models.Project{doneProject("Network")}

	all, earned := EvaluateBadges(nil, projects)
	require.Contains(t, earned, "b_first_step")

	again, earnedAgain := EvaluateBadges(all, projects)
	assert.Empty(t, earnedAgain)
	assert.ElementsMatch(t, all, again)
}
