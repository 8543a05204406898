package repository

import (
	"time"

	"github.com/voknelis/XSched/internal/calendar/domain"
)

// EventRepository is the persistence boundary for calendar events.
// Ownership filtering goes through the profile relation.
type EventRepository interface {
	FindByUser(userID string) ([]domain.CalendarEvent, error)
	FindByUserAndID(userID, eventID string) (*domain.CalendarEvent, error)
	FindByID(eventID string) (*domain.CalendarEvent, error)

	Create(event *domain.CalendarEvent) error
	Save(event *domain.CalendarEvent) error
	Delete(event *domain.CalendarEvent) error

	// FindPendingReminders returns events whose reminder is due and
	// has not been sent yet.
	FindPendingReminders(now time.Time) ([]domain.CalendarEvent, error)
	MarkReminderSent(eventID string) error
}
