package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hirebridge/hirebridge/internal/models"
	"github.com/hirebridge/hirebridge/internal/services"
	"github.com/hirebridge/hirebridge/internal/utils"
)

type ApplicationHandler struct {
	svc services.ApplicationService
}

func NewApplicationHandler(svc services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{svc: svc}
}

type ApplyRequest struct {
	CoverLetter string `json:"cover_letter"`
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.Apply", "invalid request body", err))
		return
	}

	app, err := h.svc.Apply(c.Request.Context(), userID, c.Param("id"), req.CoverLetter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

// List returns the caller's applications: a seeker sees what they submitted,
// a provider sees everything received across their jobs.
func (h *ApplicationHandler) List(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var (
		rows []models.Application
		err  error
	)
	switch currentRole(c) {
	case models.RoleJobSeeker:
		rows, err = h.svc.ListForSeeker(c.Request.Context(), userID)
	case models.RoleJobProvider:
		rows, err = h.svc.ListForProvider(c.Request.Context(), userID)
	default:
		writeError(c, utils.E(utils.CodeForbidden, "ApplicationHandler.List", "forbidden", nil))
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ApplicationHandler.UpdateStatus", "invalid request body", err))
		return
	}

	if err := h.svc.UpdateStatus(c.Request.Context(), userID, c.Param("id"), models.ApplicationStatus(req.Status)); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
