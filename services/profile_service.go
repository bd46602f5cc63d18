package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/roadtrack-api/dto"
	"github.com/roadtrack-api/models"
	"github.com/roadtrack-api/repositories"
	"github.com/roadtrack-api/utils"
	"gorm.io/gorm"
)

// ProfileService handles gamification state and public profile reads.
// Profile mutations are read-modify-write over the whole row, so they run
// under the same per-user lock as project mutations.
type ProfileService struct {
	profileRepo *repositories.ProfileRepository
	projectRepo *repositories.ProjectRepository
	userRepo    *repositories.UserRepository
}

// NewProfileService creates a new profile service instance
func NewProfileService() *ProfileService {
	return &ProfileService{
		profileRepo: repositories.NewProfileRepository(),
		projectRepo: repositories.NewProjectRepository(),
		userRepo:    repositories.NewUserRepository(),
	}
}

// GetProfile retrieves the caller's profile
func (s *ProfileService) GetProfile(userID string) (models.UserProfile, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.UserProfile{}, fmt.Errorf("%w: profile", ErrNotFound)
	}
	return profile, err
}

// UpdateProfile applies a partial update to the caller's profile
func (s *ProfileService) UpdateProfile(userID string, req dto.UpdateProfileRequest) (models.UserProfile, error) {
	unlock := lockUser(userID)
	defer unlock()

	profile, err := s.GetProfile(userID)
	if err != nil {
		return models.UserProfile{}, err
	}

	if req.XP != nil {
		profile.XP = *req.XP
	}
	if req.Level != nil {
		profile.Level = *req.Level
	}
	if req.UnlockedBadges != nil {
		profile.UnlockedBadges = *req.UnlockedBadges
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = req.AvatarURL
	}
	if req.BannerURL != nil {
		profile.BannerURL = req.BannerURL
	}
	if req.IsPublic != nil {
		profile.IsPublic = *req.IsPublic
	}
	if req.ShowInProgress != nil {
		profile.ShowInProgress = *req.ShowInProgress
	}
	if req.ShowPersonalCV != nil {
		profile.ShowPersonalCV = *req.ShowPersonalCV
	}
	if req.ShowGeneratedCV != nil {
		profile.ShowGeneratedCV = *req.ShowGeneratedCV
	}
	if req.CVConfig != nil {
		profile.CVConfig = *req.CVConfig
	}
	profile.UpdatedAt = time.Now()

	if err := s.profileRepo.Save(&profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

// AddXP grants XP to the caller's profile. Negative amounts are rejected
// before any mutation; XP only ever grows through this operation.
func (s *ProfileService) AddXP(userID string, amount int) (models.UserProfile, error) {
	if amount < 0 {
		return models.UserProfile{}, fmt.Errorf("%w: xp amount must not be negative", ErrValidation)
	}

	unlock := lockUser(userID)
	defer unlock()

	profile, err := s.GetProfile(userID)
	if err != nil {
		return models.UserProfile{}, err
	}

	profile.XP += amount
	profile.UpdatedAt = time.Now()
	if err := s.profileRepo.Save(&profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

// ComputeStats derives the caller's rank and progress numbers. Level is
// stored state: leveling up is an explicit profile update, never automatic.
func (s *ProfileService) ComputeStats(userID string) (dto.StatsResponse, error) {
	profile, err := s.GetProfile(userID)
	if err != nil {
		return dto.StatsResponse{}, err
	}

	projects, err := s.projectRepo.FindByUser(userID)
	if err != nil {
		return dto.StatsResponse{}, err
	}

	completed := 0
	for _, p := range projects {
		if p.Status == models.StatusDone {
			completed++
		}
	}

	currentLevelXP := 0
	if profile.Level > 1 {
		currentLevelXP = utils.XPForLevel(profile.Level - 1)
	}

	return dto.StatsResponse{
		XP:                profile.XP,
		Level:             profile.Level,
		CompletedProjects: completed,
		TotalProjects:     len(projects),
		RankTitle:         utils.RankForXP(profile.XP).Title,
		NextLevelXP:       utils.XPForLevel(profile.Level),
		CurrentLevelXP:    currentLevelXP,
	}, nil
}

// CheckBadges evaluates every badge condition against the caller's project
// history and persists newly earned badges. Idempotent: calling again without
// new progress changes nothing.
func (s *ProfileService) CheckBadges(userID string) (dto.BadgeCheckResponse, error) {
	unlock := lockUser(userID)
	defer unlock()

	profile, err := s.GetProfile(userID)
	if err != nil {
		return dto.BadgeCheckResponse{}, err
	}

	projects, err := s.projectRepo.FindByUser(userID)
	if err != nil {
		return dto.BadgeCheckResponse{}, err
	}

	all, earned := utils.EvaluateBadges(profile.UnlockedBadges, projects)
	if len(earned) > 0 {
		profile.UnlockedBadges = all
		profile.UpdatedAt = time.Now()
		if err := s.profileRepo.Save(&profile); err != nil {
			return dto.BadgeCheckResponse{}, err
		}
	}

	return dto.BadgeCheckResponse{UnlockedBadges: all, NewlyEarned: earned}, nil
}

// PublicProfile returns the public view for a username. Private profiles and
// unknown usernames both come back as not-found so the two cases cannot be
// told apart.
func (s *ProfileService) PublicProfile(username string) (dto.PublicProfileResponse, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return dto.PublicProfileResponse{}, fmt.Errorf("%w: user not found or profile is private", ErrNotFound)
	}

	profile, err := s.profileRepo.FindByUserID(user.ID)
	if err != nil || !profile.IsPublic {
		return dto.PublicProfileResponse{}, fmt.Errorf("%w: user not found or profile is private", ErrNotFound)
	}

	return dto.PublicProfileResponse{
		User: dto.PublicUser{
			Username:  user.Username,
			CreatedAt: user.CreatedAt.Format(time.RFC3339),
		},
		Profile: dto.PublicProfile{
			XP:             profile.XP,
			Level:          profile.Level,
			UnlockedBadges: profile.UnlockedBadges,
			AvatarURL:      profile.AvatarURL,
			BannerURL:      profile.BannerURL,
			CVConfig:       profile.CVConfig,
		},
	}, nil
}

// Ranks returns the static rank catalog
func (s *ProfileService) Ranks() []models.Rank {
	return models.Ranks
}

// Badges returns the static badge catalog
func (s *ProfileService) Badges() []models.Badge {
	return models.Badges
}
