package dto

import (
	"gorm.io/datatypes"
)

// UpdateProfileRequest is a partial-update payload for the user profile:
// nil means "leave unchanged"
type UpdateProfileRequest struct {
	XP              *int            `json:"xp" binding:"omitempty,gte=0"`
	Level           *int            `json:"level" binding:"omitempty,gte=1"`
	UnlockedBadges  *[]string       `json:"unlockedBadges"`
	AvatarURL       *string         `json:"avatarUrl"`
	BannerURL       *string         `json:"bannerUrl"`
	IsPublic        *bool           `json:"isPublic"`
	ShowInProgress  *bool           `json:"showInProgress"`
	ShowPersonalCV  *bool           `json:"showPersonalCv"`
	ShowGeneratedCV *bool           `json:"showGeneratedCv"`
	CVConfig        *datatypes.JSON `json:"cvConfig"`
}

// AddXPRequest represents an XP grant. Amount is a pointer so that an
// explicit zero passes the required check; negative amounts are rejected.
type AddXPRequest struct {
	Amount *int `json:"amount" binding:"required,gte=0"`
}

// StatsResponse represents computed user statistics
type StatsResponse struct {
	XP                int    `json:"xp"`
	Level             int    `json:"level"`
	CompletedProjects int    `json:"completedProjects"`
	TotalProjects     int    `json:"totalProjects"`
	RankTitle         string `json:"rankTitle"`
	NextLevelXP       int    `json:"nextLevelXP"`
	CurrentLevelXP    int    `json:"currentLevelXP"`
}

// BadgeCheckResponse reports a badge evaluation pass
type BadgeCheckResponse struct {
	UnlockedBadges []string `json:"unlockedBadges"`
	NewlyEarned    []string `json:"newlyEarned"`
}

// PublicUser is the user half of a public profile view
type PublicUser struct {
	Username  string `json:"username"`
	CreatedAt string `json:"createdAt"`
}

// PublicProfile is the profile half of a public profile view
type PublicProfile struct {
	XP             int            `json:"xp"`
	Level          int            `json:"level"`
	UnlockedBadges []string       `json:"unlockedBadges"`
	AvatarURL      *string        `json:"avatarUrl"`
	BannerURL      *string        `json:"bannerUrl"`
	CVConfig       datatypes.JSON `json:"cvConfig"`
}

// PublicProfileResponse is returned for public usernames only; private and
// unknown usernames are indistinguishable to the caller
type PublicProfileResponse struct {
	User    PublicUser    `json:"user"`
	Profile PublicProfile `json:"profile"`
}
