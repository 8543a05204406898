package domain

import (
	"time"

	profiledomain "github.com/voknelis/XSched/internal/profile/domain"
)

// CalendarEvent belongs to a user through its owning profile. When
// AllDay is set, EndDate is forced equal to StartDate on every write.
type CalendarEvent struct {
	ID                  string                     `json:"id" gorm:"primaryKey"`
	Title               string                     `json:"title" binding:"required" gorm:"not null"`
	Description         string                     `json:"description,omitempty"`
	StartDate           time.Time                  `json:"startDate" binding:"required"`
	EndDate             time.Time                  `json:"endDate" binding:"required"`
	AllDay              *bool                      `json:"allDay,omitempty"`
	RecurrenceRule      string                     `json:"recurrenceRule,omitempty"`
	RecurrenceException string                     `json:"recurrenceException,omitempty"`
	ProfileID           string                     `json:"profileId" gorm:"index"`
	Profile             *profiledomain.UserProfile `json:"profile,omitempty" gorm:"foreignKey:ProfileID"`
	ReminderAt          *time.Time                 `json:"reminderAt,omitempty"`
	ReminderSent        bool                       `json:"-" gorm:"default:false"`
}

func (e *CalendarEvent) IsAllDay() bool {
	return e.AllDay != nil && *e.AllDay
}

// CopyFrom overwrites every mutable field from other. ID is pinned by
// the caller and never copied.
func (e *CalendarEvent) CopyFrom(other *CalendarEvent) {
	e.Title = other.Title
	e.Description = other.Description
	e.StartDate = other.StartDate
	e.EndDate = other.EndDate
	e.AllDay = other.AllDay
	e.RecurrenceRule = other.RecurrenceRule
	e.RecurrenceException = other.RecurrenceException
	e.ProfileID = other.ProfileID
	e.ReminderAt = other.ReminderAt
}
