package delivery

import (
	"net/http"

	authDelivery "github.com/voknelis/XSched/internal/auth/delivery"
	"github.com/voknelis/XSched/internal/profile/domain"
	"github.com/voknelis/XSched/internal/profile/usecase"
	"github.com/voknelis/XSched/pkg/apperror"

	"github.com/gin-gonic/gin"
)

var errForeignProfile = apperror.Forbidden("Requested profile belongs to another user")

type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
}

func NewProfileHandler(profileUsecase usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profileUsecase: profileUsecase}
}

func (h *ProfileHandler) GetUserProfiles(c *gin.Context) {
	user := authDelivery.CurrentUser(c)

	profiles, err := h.profileUsecase.GetUserProfiles(user)
	if err != nil {
		apperror.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

func (h *ProfileHandler) GetUserProfile(c *gin.Context) {
	user := authDelivery.CurrentUser(c)

	profile, err := h.profileUsecase.GetUserProfile(user, c.Param("profileId"))
	if err != nil {
		apperror.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) CreateUserProfile(c *gin.Context) {
	var profile domain.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		apperror.Abort(c, apperror.BadRequest(err.Error()))
		return
	}

	user := authDelivery.CurrentUser(c)
	if err := h.profileUsecase.CreateProfile(user, &profile); err != nil {
		apperror.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// UpsertUserProfile implements PUT: a missing id creates the profile
// (201), an owned one is fully replaced (200), a foreign-owned one is
// rejected (403) without touching create or update.
func (h *ProfileHandler) UpsertUserProfile(c *gin.Context) {
	var profile domain.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		apperror.Abort(c, apperror.BadRequest(err.Error()))
		return
	}

	user := authDelivery.CurrentUser(c)
	profileID := c.Param("profileId")

	profileDB, err := h.profileUsecase.GetProfileByID(profileID)
	if err != nil {
		apperror.Abort(c, err)
		return
	}
	if profileDB == nil {
		profile.ID = profileID
		if err := h.profileUsecase.CreateProfile(user, &profile); err != nil {
			apperror.Abort(c, err)
			return
		}
		c.JSON(http.StatusCreated, profile)
		return
	}
	if profileDB.UserID != user.ID {
		apperror.Abort(c, errForeignProfile)
		return
	}

	if err := h.profileUsecase.UpdateProfile(user, &profile, profileDB); err != nil {
		apperror.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, profileDB)
}

func (h *ProfileHandler) PartiallyUpdateUserProfile(c *gin.Context) {
	var patch usecase.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		apperror.Abort(c, apperror.BadRequest(err.Error()))
		return
	}

	user := authDelivery.CurrentUser(c)
	profileID := c.Param("profileId")

	profileDB, err := h.profileUsecase.GetProfileByID(profileID)
	if err != nil {
		apperror.Abort(c, err)
		return
	}
	if profileDB == nil {
		profile := patch.Instance()
		profile.ID = profileID
		if err := h.profileUsecase.CreateProfile(user, profile); err != nil {
			apperror.Abort(c, err)
			return
		}
		c.JSON(http.StatusCreated, profile)
		return
	}
	if profileDB.UserID != user.ID {
		apperror.Abort(c, errForeignProfile)
		return
	}

	updated, err := h.profileUsecase.PartiallyUpdateProfile(user, &patch, profileDB)
	if err != nil {
		apperror.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *ProfileHandler) DeleteUserProfile(c *gin.Context) {
	user := authDelivery.CurrentUser(c)

	if err := h.profileUsecase.DeleteProfile(user, c.Param("profileId")); err != nil {
		apperror.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
