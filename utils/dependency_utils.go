package utils

import (
	"github.com/roadtrack-api/models"
)

// ResolveProjectStatuses runs one resolver pass over a user's full project set,
// mutating statuses in place. A project is unlocked when every dependency id is
// the id of a done project in the same set; dangling ids never count as met.
// Projects that are done or in_progress are never touched, so active work is
// never retroactively locked. The pass is idempotent and never fails.
//
// Returns the ids of projects whose status changed so the caller can persist
// only dirty rows. Callers must re-run the pass after every mutation of the
// project set (create, update, delete).
func ResolveProjectStatuses(projects []models.Project) []string {
	completed := make(map[string]bool, len(projects))
	for _, p := range projects {
		if p.Status == models.StatusDone {
			completed[p.ID] = true
		}
	}

	var changed []string
	for i := range projects {
		p := &projects[i]
		if p.Status == models.StatusDone || p.Status == models.StatusInProgress {
			continue
		}

		met := true
		for _, dep := range p.Dependencies {
			if !completed[dep] {
				met = false
				break
			}
		}

		if met && p.Status == models.StatusLocked {
			p.Status = models.StatusUnlocked
			changed = append(changed, p.ID)
		} else if !met && p.Status == models.StatusUnlocked {
			p.Status = models.StatusLocked
			changed = append(changed, p.ID)
		}
	}

	return changed
}

// RemoveDependency strips the given project id from every project's dependency
// list, mutating in place. Used when a project is deleted so nothing keeps
// depending on it. Returns the ids of projects whose list changed.
func RemoveDependency(projects []models.Project, id string) []string {
	var changed []string
	for i := range projects {
		p := &projects[i]
		kept := p.Dependencies[:0]
		removed := false
		for _, dep := range p.Dependencies {
			if dep == id {
				removed = true
				continue
			}
			kept = append(kept, dep)
		}
		if removed {
			p.Dependencies = kept
			changed = append(changed, p.ID)
		}
	}
	return changed
}
