package utils

import (
	"math"

	"github.com/roadtrack-api/models"
)

// RankForXP returns the highest rank whose threshold the given XP reaches.
// Falls back to the lowest tier when xp is below every threshold.
func RankForXP(xp int) models.Rank {
	current := models.Ranks[0]
	for _, rank := range models.Ranks {
		if xp >= rank.MinXP {
			current = rank
		}
	}
	return current
}

// XPForLevel returns the total XP required to finish the given level:
// floor(100 * level^1.5). Levels below 1 require nothing.
func XPForLevel(level int) int {
	if level <= 0 {
		return 0
	}
	return int(math.Floor(100 * math.Pow(float64(level), 1.5)))
}

// EvaluateBadges checks every badge condition against a user's project history
// and returns the full unlocked set plus the badges newly earned this pass.
// Already-unlocked badges are never re-added or revoked. Deterministic and
// side-effect free.
func EvaluateBadges(unlocked []string, projects []models.Project) (all []string, earned []string) {
	have := make(map[string]bool, len(unlocked))
	all = append(all, unlocked...)
	for _, id := range unlocked {
		have[id] = true
	}

	for _, badge := range models.Badges {
		if have[badge.ID] {
			continue
		}
		if badgeCounter(badge, projects) >= float64(badge.Threshold) {
			all = append(all, badge.ID)
			earned = append(earned, badge.ID)
			have[badge.ID] = true
		}
	}
	return all, earned
}

// badgeCounter computes the counter a badge's threshold is compared against
func badgeCounter(badge models.Badge, projects []models.Project) float64 {
	var counter float64
	switch badge.ConditionType {
	case models.ConditionProjectCount:
		for _, p := range projects {
			if p.Status == models.StatusDone {
				counter++
			}
		}
	case models.ConditionHourCount:
		for _, p := range projects {
			counter += p.TimeSpentHours
		}
	case models.ConditionCategoryCount:
		for _, p := range projects {
			if p.Status == models.StatusDone && p.Category == badge.ConditionDetail {
				counter++
			}
		}
	case models.ConditionTechStack:
		// Counts projects regardless of status
		for _, p := range projects {
			for _, tech := range p.TechStack {
				if tech == badge.ConditionDetail {
					counter++
					break
				}
			}
		}
	}
	return counter
}
