package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRanksAscendByXP(t *testing.T) {
	for i := 1; i < len(Ranks); i++ {
		assert.Greater(t, Ranks[i].MinXP, Ranks[i-1].MinXP,
			"rank %q must require more XP than %q", Ranks[i].Title, Ranks[i-1].Title)
	}
	assert.Equal(t, 0, Ranks[0].MinXP, "lowest rank must start at zero")
}

func TestBadgeIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, b := range Badges {
		assert.False(t, seen[b.ID], "duplicate badge id %q", b.ID)
		seen[b.ID] = true
		assert.Positive(t, b.Threshold, "badge %q must have a positive threshold", b.ID)
	}
}

func TestStarterDependenciesReferenceStarterProjects(t *testing.T) {
	ids := make(map[string]bool, len(StarterProjects))
	for _, p := range StarterProjects {
		ids[p.ID] = true
	}
	for _, p := range StarterProjects {
		for _, dep := range p.Dependencies {
			assert.True(t, ids[dep], "project %q depends on unknown id %q", p.ID, dep)
		}
	}
}

func TestStarterUnlockedProjectsHaveMetDependencies(t *testing.T) {
	done := make(map[string]bool)
	for _, p := range StarterProjects {
		if p.Status == StatusDone {
			done[p.ID] = true
		}
	}
	// A project must never be seeded unlocked ahead of its dependencies.
	// The reverse (locked despite met dependencies) is fine: the resolver
	// pass after seeding promotes those.
	for _, p := range StarterProjects {
		if p.Status != StatusUnlocked {
			continue
		}
		for _, dep := range p.Dependencies {
			assert.True(t, done[dep],
				"project %q is unlocked but dependency %q is not done", p.ID, dep)
		}
	}
}
