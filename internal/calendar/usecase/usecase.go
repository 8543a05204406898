package usecase

import (
	"time"

	authdomain "github.com/voknelis/XSched/internal/auth/domain"
	"github.com/voknelis/XSched/internal/calendar/domain"
	"github.com/voknelis/XSched/pkg/apperror"
)

var ErrEventNotFound = apperror.NotFound("Requested calendar event was not found")

// EventPatch is an explicit field mask for partial updates: only
// non-nil fields are applied. The event id is always pinned to the
// stored row regardless of patch content.
type EventPatch struct {
	Title               *string    `json:"title,omitempty"`
	Description         *string    `json:"description,omitempty"`
	StartDate           *time.Time `json:"startDate,omitempty"`
	EndDate             *time.Time `json:"endDate,omitempty"`
	AllDay              *bool      `json:"allDay,omitempty"`
	RecurrenceRule      *string    `json:"recurrenceRule,omitempty"`
	RecurrenceException *string    `json:"recurrenceException,omitempty"`
	ProfileID           *string    `json:"profileId,omitempty"`
	ReminderAt          *time.Time `json:"reminderAt,omitempty"`
}

// Apply merges the patched fields onto event, leaving ID untouched.
func (p *EventPatch) Apply(event *domain.CalendarEvent) {
	if p.Title != nil {
		event.Title = *p.Title
	}
	if p.Description != nil {
		event.Description = *p.Description
	}
	if p.StartDate != nil {
		event.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		event.EndDate = *p.EndDate
	}
	if p.AllDay != nil {
		event.AllDay = p.AllDay
	}
	if p.RecurrenceRule != nil {
		event.RecurrenceRule = *p.RecurrenceRule
	}
	if p.RecurrenceException != nil {
		event.RecurrenceException = *p.RecurrenceException
	}
	if p.ProfileID != nil {
		event.ProfileID = *p.ProfileID
	}
	if p.ReminderAt != nil {
		event.ReminderAt = p.ReminderAt
	}
}

// Instance builds a new event from the patch fields, used when a
// PATCH targets a missing id and upserts instead.
func (p *EventPatch) Instance() *domain.CalendarEvent {
	event := &domain.CalendarEvent{}
	p.Apply(event)
	return event
}

// EventUsecase orchestrates calendar-event CRUD with ownership checks
// transitively through the owning profile.
type EventUsecase interface {
	GetUserEvents(user *authdomain.User) ([]domain.CalendarEvent, error)
	GetUserEvent(user *authdomain.User, eventID string) (*domain.CalendarEvent, error)

	// GetEventByID looks an event up without ownership scoping so the
	// delivery layer can distinguish missing (upsert) from
	// foreign-owned (forbidden). Returns (nil, nil) when absent.
	GetEventByID(eventID string) (*domain.CalendarEvent, error)

	// CreateEvent stores a new event. Without a profileId the user's
	// default profile is assigned; with one, the profile must belong
	// to the user.
	CreateEvent(user *authdomain.User, event *domain.CalendarEvent) (*domain.CalendarEvent, error)

	// CreateEventWithID is the upsert-style create used by PUT/PATCH
	// against a missing id.
	CreateEventWithID(user *authdomain.User, event *domain.CalendarEvent, eventID string) (*domain.CalendarEvent, error)

	UpdateEvent(user *authdomain.User, event, eventDB *domain.CalendarEvent) (*domain.CalendarEvent, error)
	PartiallyUpdateEvent(user *authdomain.User, patch *EventPatch, eventDB *domain.CalendarEvent) (*domain.CalendarEvent, error)
	DeleteEvent(user *authdomain.User, eventID string) error
}
