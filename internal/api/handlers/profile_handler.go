package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirebridge/hirebridge/internal/models"
	"github.com/hirebridge/hirebridge/internal/services"
	"github.com/hirebridge/hirebridge/internal/utils"
)

type ProfileHandler struct {
	svc services.ProfileService
}

func NewProfileHandler(svc services.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

func (h *ProfileHandler) Me(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	view, err := h.svc.GetMe(c.Request.Context(), userID, currentRole(c))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// Update applies a partial profile update; the request body shape depends on
// the caller's role, so binding is deferred to the matching input struct.
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	switch currentRole(c) {
	case models.RoleJobSeeker:
		var in services.SeekerProfileInput
		if err := c.ShouldBindJSON(&in); err != nil {
			writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.Update", "invalid request body", err))
			return
		}
		p, err := h.svc.UpdateSeeker(c.Request.Context(), userID, in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	case models.RoleJobProvider:
		var in services.ProviderProfileInput
		if err := c.ShouldBindJSON(&in); err != nil {
			writeError(c, utils.E(utils.CodeInvalidArgument, "ProfileHandler.Update", "invalid request body", err))
			return
		}
		p, err := h.svc.UpdateProvider(c.Request.Context(), userID, in)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	default:
		writeError(c, utils.E(utils.CodeForbidden, "ProfileHandler.Update", "forbidden", nil))
	}
}
