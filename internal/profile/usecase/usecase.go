package usecase

import (
	authdomain "github.com/voknelis/XSched/internal/auth/domain"
	"github.com/voknelis/XSched/internal/profile/domain"
	"github.com/voknelis/XSched/pkg/apperror"
)

var (
	ErrProfileNotFound         = apperror.NotFound("Requested profile was not found")
	ErrDefaultProfileDelete    = apperror.BadRequest("Default profile cannot be deleted")
	ErrNoDefaultProfile        = apperror.BadRequest("User has no default profile")
	ErrMultipleDefaultProfiles = apperror.Internal("User has multiple default profiles")
)

// ProfilePatch is an explicit field mask for partial updates: only
// non-nil fields are applied.
type ProfilePatch struct {
	Title     *string `json:"title,omitempty"`
	IsDefault *bool   `json:"isDefault,omitempty"`
}

// Apply merges the patched fields onto profile. ID and UserID are
// never touched.
func (p *ProfilePatch) Apply(profile *domain.UserProfile) {
	if p.Title != nil {
		profile.Title = *p.Title
	}
	if p.IsDefault != nil {
		profile.IsDefault = *p.IsDefault
	}
}

// Instance builds a new profile from the patch fields, used when a
// PATCH targets a missing id and upserts instead.
func (p *ProfilePatch) Instance() *domain.UserProfile {
	profile := &domain.UserProfile{}
	p.Apply(profile)
	return profile
}

// ProfileUsecase orchestrates profile CRUD, enforcing ownership, the
// single-default invariant and default-delete protection.
type ProfileUsecase interface {
	GetUserProfiles(user *authdomain.User) ([]domain.UserProfile, error)
	GetUserProfile(user *authdomain.User, profileID string) (*domain.UserProfile, error)

	// GetProfileByID looks a profile up without ownership scoping so
	// the delivery layer can distinguish missing (upsert) from
	// foreign-owned (forbidden). Returns (nil, nil) when absent.
	GetProfileByID(profileID string) (*domain.UserProfile, error)

	// GetDefaultProfile resolves the user's single default profile.
	// Fails with ErrNoDefaultProfile when none exists and with
	// ErrMultipleDefaultProfiles when the invariant has been violated
	// by direct data manipulation.
	GetDefaultProfile(userID string) (*domain.UserProfile, error)

	CreateProfile(user *authdomain.User, profile *domain.UserProfile) error
	UpdateProfile(user *authdomain.User, profile, profileDB *domain.UserProfile) error
	PartiallyUpdateProfile(user *authdomain.User, patch *ProfilePatch, profileDB *domain.UserProfile) (*domain.UserProfile, error)
	DeleteProfile(user *authdomain.User, profileID string) error
}
