package models

import (
	"time"

	"gorm.io/datatypes"
)

// UserProfile holds the gamification state for a user (1:1 with User).
// XP and level drive rank progression; unlocked badges accumulate over time.
type UserProfile struct {
	ID             string                     `json:"id" gorm:"primaryKey;type:uuid"`
	UserID         string                     `json:"userId" gorm:"type:uuid;uniqueIndex;not null"`
	XP             int                        `json:"xp" gorm:"default:0"`
	Level          int                        `json:"level" gorm:"default:1"`
	UnlockedBadges datatypes.JSONSlice[string] `json:"unlockedBadges"`

	// Public profile customization
	AvatarURL       *string        `json:"avatarUrl" gorm:"default:null"`
	BannerURL       *string        `json:"bannerUrl" gorm:"default:null"`
	IsPublic        bool           `json:"isPublic" gorm:"not null;default:false"`
	ShowInProgress  bool           `json:"showInProgress" gorm:"not null;default:false"`
	ShowPersonalCV  bool           `json:"showPersonalCv" gorm:"not null;default:false"`
	ShowGeneratedCV bool           `json:"showGeneratedCv" gorm:"not null;default:false"`
	CVConfig        datatypes.JSON `json:"cvConfig" gorm:"default:null"`

	UpdatedAt time.Time `json:"updatedAt"`
}
