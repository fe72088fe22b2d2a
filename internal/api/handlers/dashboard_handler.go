package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirebridge/hirebridge/internal/models"
	"github.com/hirebridge/hirebridge/internal/services"
	"github.com/hirebridge/hirebridge/internal/utils"
)

type DashboardHandler struct {
	svc services.DashboardService
}

func NewDashboardHandler(svc services.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Get serves the dashboard matching the caller's role.
func (h *DashboardHandler) Get(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	switch currentRole(c) {
	case models.RoleJobSeeker:
		data, err := h.svc.ForSeeker(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, data)
	case models.RoleJobProvider:
		data, err := h.svc.ForProvider(c.Request.Context(), userID)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, data)
	default:
		writeError(c, utils.E(utils.CodeForbidden, "DashboardHandler.Get", "forbidden", nil))
	}
}
