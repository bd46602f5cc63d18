package utils

import (
	"testing"

	"github.com/roadtrack-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func proj(id string, status models.ProjectStatus, deps ...string) models.Project {
	return models.Project{
		ID:           id,
		Status:       status,
		Dependencies: datatypes.JSONSlice[string](deps),
	}
}

func statusByID(projects []models.Project, id string) models.ProjectStatus {
	for _, p := range projects {
		if p.ID == id {
			return p.Status
		}
	}
	return ""
}

func TestResolveUnlocksProjectWithoutDependencies(t *testing.T) {
	projects := []models.Project{proj("a", models.StatusLocked)}

	changed := ResolveProjectStatuses(projects)

	require.Equal(t, []string{"a"}, changed)
	assert.Equal(t, models.StatusUnlocked, projects[0].Status)
}

func TestResolveUnlocksWhenAllDependenciesDone(t *testing.T) {
	projects := []models.Project{
		proj("a", models.StatusDone),
		proj("b", models.StatusLocked, "a"),
		proj("c", models.StatusLocked, "a", "b"),
	}

	ResolveProjectStatuses(projects)

	assert.Equal(t, models.StatusUnlocked, statusByID(projects, "b"))
	// b is not done yet, so c stays locked
	assert.Equal(t, models.StatusLocked, statusByID(projects, "c"))
}

func TestResolveLocksWhenDependencyNoLongerMet(t *testing.T) {
	projects := []models.Project{
		proj("a", models.StatusLocked),
		proj("b", models.StatusUnlocked, "missing"),
	}

	ResolveProjectStatuses(projects)

	assert.Equal(t, models.StatusLocked, statusByID(projects, "b"))
}

func TestResolveNeverTouchesDoneOrInProgress(t *testing.T) {
	// b went in_progress while a was done; a then reverted to locked.
	// Active work must not be retroactively locked.
	projects := []models.Project{
		proj("a", models.StatusLocked),
		proj("b", models.StatusInProgress, "a"),
		proj("c", models.StatusDone, "a"),
	}

	changed := ResolveProjectStatuses(projects)

	assert.Equal(t, []string{"a"}, changed)
	assert.Equal(t, models.StatusInProgress, statusByID(projects, "b"))
	assert.Equal(t, models.StatusDone, statusByID(projects, "c"))
}

func TestResolveDanglingDependencyNeverMet(t *testing.T) {
	projects := []models.Project{proj("a", models.StatusLocked, "ghost")}

	changed := ResolveProjectStatuses(projects)

	assert.Empty(t, changed)
	assert.Equal(t, models.StatusLocked, projects[0].Status)
}

func TestResolveIsIdempotent(t *testing.T) {
	projects := []models.Project{
		proj("a", models.StatusDone),
		proj("b", models.StatusLocked, "a"),
		proj("c", models.StatusUnlocked, "b"),
		proj("d", models.StatusInProgress, "c"),
		proj("e", models.StatusLocked, "ghost"),
	}

	first := ResolveProjectStatuses(projects)
	require.NotEmpty(t, first)

	second := ResolveProjectStatuses(projects)
	assert.Empty(t, second, "second pass with no intervening mutation must be a no-op")
}

func TestRemoveDependencyPurgesAndUnlocks(t *testing.T) {
	// b depends solely on x; deleting x must unlock b in the same operation
	projects := []models.Project{
		proj("a", models.StatusDone),
		proj("b", models.StatusLocked, "x"),
		proj("c", models.StatusUnlocked, "a"),
	}

	changed := RemoveDependency(projects, "x")
	require.Equal(t, []string{"b"}, changed)
	assert.Empty(t, statusDeps(projects, "b"))

	ResolveProjectStatuses(projects)
	assert.Equal(t, models.StatusUnlocked, statusByID(projects, "b"))
}

func statusDeps(projects []models.Project, id string) []string {
	for _, p := range projects {
		if p.ID == id {
			return p.Dependencies
		}
	}
	return nil
}
