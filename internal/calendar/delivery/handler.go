package delivery

import (
	"net/http"

	authDelivery "github.com/voknelis/XSched/internal/auth/delivery"
	"github.com/voknelis/XSched/internal/calendar/domain"
	"github.com/voknelis/XSched/internal/calendar/usecase"
	"github.com/voknelis/XSched/pkg/apperror"

	"github.com/gin-gonic/gin"
)

var errForeignEvent = apperror.Forbidden("Requested calendar event belongs to another user")

type EventHandler struct {
	eventUsecase usecase.EventUsecase
}

func NewEventHandler(eventUsecase usecase.EventUsecase) *EventHandler {
	return &EventHandler{eventUsecase: eventUsecase}
}

func (h *EventHandler) GetUserCalendarEvents(c *gin.Context) {
	user := authDelivery.CurrentUser(c)

	events, err := h.eventUsecase.GetUserEvents(user)
	if err != nil {
		apperror.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetUserCalendarEvent(c *gin.Context) {
	user := authDelivery.CurrentUser(c)

	event, err := h.eventUsecase.GetUserEvent(user, c.Param("eventId"))
	if err != nil {
		apperror.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) CreateUserCalendarEvent(c *gin.Context) {
	var event domain.CalendarEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		apperror.Abort(c, apperror.BadRequest(err.Error()))
		return
	}

	user := authDelivery.CurrentUser(c)
	created, err := h.eventUsecase.CreateEvent(user, &event)
	if err != nil {
		apperror.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpsertUserCalendarEvent implements PUT: a missing id creates the
// event with that id (201), an owned one is fully replaced (200) and a
// foreign-owned one is rejected (403) without touching create or
// update.
func (h *EventHandler) UpsertUserCalendarEvent(c *gin.Context) {
	var event domain.CalendarEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		apperror.Abort(c, apperror.BadRequest(err.Error()))
		return
	}

	user := authDelivery.CurrentUser(c)
	eventID := c.Param("eventId")

	eventDB, err := h.eventUsecase.GetEventByID(eventID)
	if err != nil {
		apperror.Abort(c, err)
		return
	}
	if eventDB == nil {
		created, err := h.eventUsecase.CreateEventWithID(user, &event, eventID)
		if err != nil {
			apperror.Abort(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
		return
	}
	if eventDB.Profile == nil || eventDB.Profile.UserID != user.ID {
		apperror.Abort(c, errForeignEvent)
		return
	}

	updated, err := h.eventUsecase.UpdateEvent(user, &event, eventDB)
	if err != nil {
		apperror.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) PartiallyUpdateUserCalendarEvent(c *gin.Context) {
	var patch usecase.EventPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		apperror.Abort(c, apperror.BadRequest(err.Error()))
		return
	}

	user := authDelivery.CurrentUser(c)
	eventID := c.Param("eventId")

	eventDB, err := h.eventUsecase.GetEventByID(eventID)
	if err != nil {
		apperror.Abort(c, err)
		return
	}
	if eventDB == nil {
		created, err := h.eventUsecase.CreateEventWithID(user, patch.Instance(), eventID)
		if err != nil {
			apperror.Abort(c, err)
			return
		}
		c.JSON(http.StatusCreated, created)
		return
	}
	if eventDB.Profile == nil || eventDB.Profile.UserID != user.ID {
		apperror.Abort(c, errForeignEvent)
		return
	}

	updated, err := h.eventUsecase.PartiallyUpdateEvent(user, &patch, eventDB)
	if err != nil {
		apperror.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) DeleteUserCalendarEvent(c *gin.Context) {
	user := authDelivery.CurrentUser(c)

	if err := h.eventUsecase.DeleteEvent(user, c.Param("eventId")); err != nil {
		apperror.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
