package repository

import "github.com/voknelis/XSched/internal/profile/domain"

// ProfileRepository is the persistence boundary for user profiles.
type ProfileRepository interface {
	FindByUserID(userID string) ([]domain.UserProfile, error)
	FindByUserAndID(userID, profileID string) (*domain.UserProfile, error)
	FindByID(profileID string) (*domain.UserProfile, error)

	// FindDefaults returns every profile of the user with the default
	// flag set; callers decide how to treat zero or multiple rows.
	FindDefaults(userID string) ([]domain.UserProfile, error)

	// ResetDefault clears the default flag on all of the user's
	// profiles.
	ResetDefault(userID string) error

	Create(profile *domain.UserProfile) error
	Save(profile *domain.UserProfile) error
	Delete(profile *domain.UserProfile) error
}
