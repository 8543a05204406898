package usecase

import (
	authdomain "github.com/voknelis/XSched/internal/auth/domain"
	"github.com/voknelis/XSched/internal/profile/domain"
	"github.com/voknelis/XSched/internal/profile/repository"
)

type profileUsecase struct {
	profileRepo repository.ProfileRepository
}

func NewProfileUsecase(profileRepo repository.ProfileRepository) ProfileUsecase {
	return &profileUsecase{profileRepo: profileRepo}
}

func (u *profileUsecase) GetUserProfiles(user *authdomain.User) ([]domain.UserProfile, error) {
	return u.profileRepo.FindByUserID(user.ID)
}

func (u *profileUsecase) GetUserProfile(user *authdomain.User, profileID string) (*domain.UserProfile, error) {
	profile, err := u.profileRepo.FindByUserAndID(user.ID, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func (u *profileUsecase) GetProfileByID(profileID string) (*domain.UserProfile, error) {
	return u.profileRepo.FindByID(profileID)
}

func (u *profileUsecase) GetDefaultProfile(userID string) (*domain.UserProfile, error) {
	defaults, err := u.profileRepo.FindDefaults(userID)
	if err != nil {
		return nil, err
	}
	switch len(defaults) {
	case 0:
		return nil, ErrNoDefaultProfile
	case 1:
		return &defaults[0], nil
	default:
		return nil, ErrMultipleDefaultProfiles
	}
}

func (u *profileUsecase) CreateProfile(user *authdomain.User, profile *domain.UserProfile) error {
	profile.UserID = user.ID
	if profile.IsDefault {
		if err := u.profileRepo.ResetDefault(user.ID); err != nil {
			return err
		}
	}
	return u.profileRepo.Create(profile)
}

func (u *profileUsecase) UpdateProfile(user *authdomain.User, profile, profileDB *domain.UserProfile) error {
	if profile.IsDefault {
		if err := u.profileRepo.ResetDefault(user.ID); err != nil {
			return err
		}
	}
	profileDB.CopyFrom(profile)
	return u.profileRepo.Save(profileDB)
}

func (u *profileUsecase) PartiallyUpdateProfile(user *authdomain.User, patch *ProfilePatch, profileDB *domain.UserProfile) (*domain.UserProfile, error) {
	if patch.IsDefault != nil && *patch.IsDefault {
		if err := u.profileRepo.ResetDefault(user.ID); err != nil {
			return nil, err
		}
	}
	patch.Apply(profileDB)
	if err := u.profileRepo.Save(profileDB); err != nil {
		return nil, err
	}
	return profileDB, nil
}

func (u *profileUsecase) DeleteProfile(user *authdomain.User, profileID string) error {
	profile, err := u.GetUserProfile(user, profileID)
	if err != nil {
		return err
	}
	if profile.IsDefault {
		return ErrDefaultProfileDelete
	}
	return u.profileRepo.Delete(profile)
}
