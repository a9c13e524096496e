package services

import (
	"errors"
	"fmt"

	"conduit-api/models"
	"conduit-api/repositories"

	"gorm.io/gorm"
)

type ProfileService interface {
	GetProfile(username string, viewerID uint) (*models.ProfileResponse, error)
	FollowUser(username string, viewerID uint) (*models.ProfileResponse, error)
	UnfollowUser(username string, viewerID uint) (*models.ProfileResponse, error)
}

type profileService struct {
	userRepo   repositories.UserRepository
	followRepo repositories.FollowRepository
}

func NewProfileService(userRepo repositories.UserRepository, followRepo repositories.FollowRepository) ProfileService {
	return &profileService{
		userRepo:   userRepo,
		followRepo: followRepo,
	}
}

func (s *profileService) GetProfile(username string, viewerID uint) (*models.ProfileResponse, error) {
	user, err := s.findByUsername(username)
	if err != nil {
		return nil, err
	}

	following := false
	if viewerID > 0 {
		if following, err = s.followRepo.IsFollowing(viewerID, user.ID); err != nil {
			return nil, err
		}
	}

	return buildProfileResponse(user, following), nil
}

func (s *profileService) FollowUser(username string, viewerID uint) (*models.ProfileResponse, error) {
	user, err := s.findByUsername(username)
	if err != nil {
		return nil, err
	}

	if user.ID == viewerID {
		return nil, fmt.Errorf("cannot follow yourself: %w", models.ErrInvalidOperation)
	}

	// Idempotent: re-following an already followed user is a no-op.
	if err := s.followRepo.Follow(viewerID, user.ID); err != nil {
		return nil, err
	}

	return buildProfileResponse(user, true), nil
}

func (s *profileService) UnfollowUser(username string, viewerID uint) (*models.ProfileResponse, error) {
	user, err := s.findByUsername(username)
	if err != nil {
		return nil, err
	}

	if user.ID == viewerID {
		return nil, fmt.Errorf("cannot unfollow yourself: %w", models.ErrInvalidOperation)
	}

	// Idempotent: unfollowing without an edge is a no-op, not an error.
	if err := s.followRepo.Unfollow(viewerID, user.ID); err != nil {
		return nil, err
	}

	return buildProfileResponse(user, false), nil
}

func (s *profileService) findByUsername(username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("profile %q: %w", username, models.ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func buildProfileResponse(user *models.User, following bool) *models.ProfileResponse {
	return &models.ProfileResponse{
		Profile: models.Profile{
			Username:  user.Username,
			Bio:       user.Bio,
			Image:     user.Image,
			Following: following,
		},
	}
}
