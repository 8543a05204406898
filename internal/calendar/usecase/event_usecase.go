package usecase

import (
	authdomain "github.com/voknelis/XSched/internal/auth/domain"
	"github.com/voknelis/XSched/internal/calendar/domain"
	"github.com/voknelis/XSched/internal/calendar/repository"
	profileUsecase "github.com/voknelis/XSched/internal/profile/usecase"
)

type eventUsecase struct {
	eventRepo repository.EventRepository
	profiles  profileUsecase.ProfileUsecase
}

func NewEventUsecase(eventRepo repository.EventRepository, profiles profileUsecase.ProfileUsecase) EventUsecase {
	return &eventUsecase{
		eventRepo: eventRepo,
		profiles:  profiles,
	}
}

func (u *eventUsecase) GetUserEvents(user *authdomain.User) ([]domain.CalendarEvent, error) {
	return u.eventRepo.FindByUser(user.ID)
}

func (u *eventUsecase) GetUserEvent(user *authdomain.User, eventID string) (*domain.CalendarEvent, error) {
	event, err := u.eventRepo.FindByUserAndID(user.ID, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

func (u *eventUsecase) GetEventByID(eventID string) (*domain.CalendarEvent, error) {
	return u.eventRepo.FindByID(eventID)
}

func (u *eventUsecase) CreateEvent(user *authdomain.User, event *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	applyAllDayRule(event)

	if event.ProfileID == "" {
		defaultProfile, err := u.profiles.GetDefaultProfile(user.ID)
		if err != nil {
			return nil, err
		}
		event.ProfileID = defaultProfile.ID
	} else {
		// An explicit profile must belong to the caller.
		if _, err := u.profiles.GetUserProfile(user, event.ProfileID); err != nil {
			return nil, err
		}
	}

	event.Profile = nil
	if err := u.eventRepo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (u *eventUsecase) CreateEventWithID(user *authdomain.User, event *domain.CalendarEvent, eventID string) (*domain.CalendarEvent, error) {
	event.ID = eventID
	return u.CreateEvent(user, event)
}

func (u *eventUsecase) UpdateEvent(user *authdomain.User, event, eventDB *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	applyAllDayRule(event)

	originalProfileID := eventDB.ProfileID
	eventDB.CopyFrom(event)
	if eventDB.ProfileID == "" {
		// A full replace without profileId keeps the stored profile.
		eventDB.ProfileID = originalProfileID
	}
	if err := u.eventRepo.Save(eventDB); err != nil {
		return nil, err
	}
	return eventDB, nil
}

func (u *eventUsecase) PartiallyUpdateEvent(user *authdomain.User, patch *EventPatch, eventDB *domain.CalendarEvent) (*domain.CalendarEvent, error) {
	patch.Apply(eventDB)
	applyAllDayRule(eventDB)

	if err := u.eventRepo.Save(eventDB); err != nil {
		return nil, err
	}
	return eventDB, nil
}

func (u *eventUsecase) DeleteEvent(user *authdomain.User, eventID string) error {
	event, err := u.GetUserEvent(user, eventID)
	if err != nil {
		return err
	}
	return u.eventRepo.Delete(event)
}

// applyAllDayRule forces an all-day event to a single day.
func applyAllDayRule(event *domain.CalendarEvent) {
	if event.IsAllDay() {
		event.EndDate = event.StartDate
	}
}
