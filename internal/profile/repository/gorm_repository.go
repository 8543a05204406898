package repository

import (
	"errors"

	"github.com/voknelis/XSched/internal/profile/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormProfileRepository struct {
	db *gorm.DB
}

func NewGormProfileRepository(db *gorm.DB) ProfileRepository {
	return &gormProfileRepository{db: db}
}

func (r *gormProfileRepository) FindByUserID(userID string) ([]domain.UserProfile, error) {
	var profiles []domain.UserProfile
	err := r.db.Where("user_id = ?", userID).Find(&profiles).Error
	return profiles, err
}

func (r *gormProfileRepository) FindByUserAndID(userID, profileID string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	err := r.db.Where("user_id = ? AND id = ?", userID, profileID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *gormProfileRepository) FindByID(profileID string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	err := r.db.Where("id = ?", profileID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *gormProfileRepository) FindDefaults(userID string) ([]domain.UserProfile, error) {
	var profiles []domain.UserProfile
	err := r.db.Where("user_id = ? AND is_default = ?", userID, true).Find(&profiles).Error
	return profiles, err
}

func (r *gormProfileRepository) ResetDefault(userID string) error {
	return r.db.Model(&domain.UserProfile{}).
		Where("user_id = ? AND is_default = ?", userID, true).
		Update("is_default", false).Error
}

func (r *gormProfileRepository) Create(profile *domain.UserProfile) error {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	return r.db.Create(profile).Error
}

func (r *gormProfileRepository) Save(profile *domain.UserProfile) error {
	return r.db.Save(profile).Error
}

func (r *gormProfileRepository) Delete(profile *domain.UserProfile) error {
	return r.db.Delete(profile).Error
}
