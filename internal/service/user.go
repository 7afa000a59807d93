package service

import (
	"errors"
	"fmt"
	"time"

	"cadet-corps-backend/internal/database/models"
	apperrors "cadet-corps-backend/internal/errors"
	"cadet-corps-backend/internal/repository"

	"gorm.io/gorm"
)

// UserService handles user profiles. The identity provider is external; this
// service only records display attributes keyed by the provider's opaque
// subject identifier.
type UserService struct {
	repo repository.UserProfileRepositoryInterface
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserProfileRepositoryInterface) *UserService {
	return &UserService{repo: repo}
}

// ProfileAttributes carries the display attributes delivered by the identity
// provider alongside the authenticated subject.
type ProfileAttributes struct {
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	AvatarURL   string `json:"avatar_url"`
}

// UserProfileResponse represents a stored profile
type UserProfileResponse struct {
	Subject     string          `json:"subject"`
	Email       string          `json:"email"`
	DisplayName string          `json:"display_name"`
	AvatarURL   string          `json:"avatar_url,omitempty"`
	Role        models.UserRole `json:"role"`
	LastLogin   string          `json:"last_login"`
}

// GetOrCreate fetches the profile for a subject, creating it with the
// default role on first sight. Every call stamps LastLogin.
func (s *UserService) GetOrCreate(subject string, attrs ProfileAttributes) (*UserProfileResponse, error) {
	if subject == "" {
		return nil, apperrors.ErrMissingSubject
	}

	profile, err := s.repo.GetBySubject(subject)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get user profile: %w", err)
		}
		profile = &models.UserProfile{
			Subject:     subject,
			Email:       attrs.Email,
			DisplayName: attrs.DisplayName,
			AvatarURL:   attrs.AvatarURL,
			Role:        models.UserRoleInstructor,
			LastLogin:   time.Now(),
		}
		if err := s.repo.Create(profile); err != nil {
			return nil, fmt.Errorf("failed to create user profile: %w", err)
		}
		return toProfileResponse(profile), nil
	}

	// Refresh display attributes delivered by the provider.
	if attrs.Email != "" {
		profile.Email = attrs.Email
	}
	if attrs.DisplayName != "" {
		profile.DisplayName = attrs.DisplayName
	}
	if attrs.AvatarURL != "" {
		profile.AvatarURL = attrs.AvatarURL
	}
	profile.LastLogin = time.Now()

	if err := s.repo.Update(profile); err != nil {
		return nil, fmt.Errorf("failed to update user profile: %w", err)
	}
	return toProfileResponse(profile), nil
}

// GetBySubject fetches an existing profile
func (s *UserService) GetBySubject(subject string) (*UserProfileResponse, error) {
	profile, err := s.repo.GetBySubject(subject)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserProfileNotFound
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	return toProfileResponse(profile), nil
}

func toProfileResponse(profile *models.UserProfile) *UserProfileResponse {
	return &UserProfileResponse{
		Subject:     profile.Subject,
		Email:       profile.Email,
		DisplayName: profile.DisplayName,
		AvatarURL:   profile.AvatarURL,
		Role:        profile.Role,
		LastLogin:   profile.LastLogin.Format("2006-01-02T15:04:05Z07:00"),
	}
}
