package repository

import (
	"errors"
	"time"

	"github.com/voknelis/XSched/internal/calendar/domain"
	profiledomain "github.com/voknelis/XSched/internal/profile/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormEventRepository struct {
	db *gorm.DB
}

func NewGormEventRepository(db *gorm.DB) EventRepository {
	return &gormEventRepository{db: db}
}

// userProfileIDs is the ownership subquery: ids of all profiles that
// belong to the user.
func (r *gormEventRepository) userProfileIDs(userID string) *gorm.DB {
	return r.db.Model(&profiledomain.UserProfile{}).Select("id").Where("user_id = ?", userID)
}

func (r *gormEventRepository) FindByUser(userID string) ([]domain.CalendarEvent, error) {
	var events []domain.CalendarEvent
	err := r.db.Preload("Profile").
		Where("profile_id IN (?)", r.userProfileIDs(userID)).
		Find(&events).Error
	return events, err
}

func (r *gormEventRepository) FindByUserAndID(userID, eventID string) (*domain.CalendarEvent, error) {
	var event domain.CalendarEvent
	err := r.db.Preload("Profile").
		Where("id = ? AND profile_id IN (?)", eventID, r.userProfileIDs(userID)).
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *gormEventRepository) FindByID(eventID string) (*domain.CalendarEvent, error) {
	var event domain.CalendarEvent
	err := r.db.Preload("Profile").Where("id = ?", eventID).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *gormEventRepository) Create(event *domain.CalendarEvent) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	return r.db.Omit("Profile").Create(event).Error
}

func (r *gormEventRepository) Save(event *domain.CalendarEvent) error {
	return r.db.Omit("Profile").Save(event).Error
}

func (r *gormEventRepository) Delete(event *domain.CalendarEvent) error {
	return r.db.Delete(event).Error
}

func (r *gormEventRepository) FindPendingReminders(now time.Time) ([]domain.CalendarEvent, error) {
	var events []domain.CalendarEvent
	err := r.db.Preload("Profile").
		Where("reminder_at IS NOT NULL AND reminder_at <= ? AND reminder_sent = ?", now, false).
		Find(&events).Error
	return events, err
}

func (r *gormEventRepository) MarkReminderSent(eventID string) error {
	return r.db.Model(&domain.CalendarEvent{}).Where("id = ?", eventID).
		Update("reminder_sent", true).Error
}
