package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hirebridge/hirebridge/internal/models"
	pgrepo "github.com/hirebridge/hirebridge/internal/repositories/postgres"
	"github.com/hirebridge/hirebridge/internal/services"
	"github.com/hirebridge/hirebridge/internal/utils"
)

type JobHandler struct {
	svc services.JobService
}

func NewJobHandler(svc services.JobService) *JobHandler {
	return &JobHandler{svc: svc}
}

// List is the public job board. All filters are optional query params; see
// pgrepo.JobFilter for the remote/location interaction.
func (h *JobHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.List", "limit must be a non-negative integer", err))
			return
		}
		limit = n
	}

	jobs, err := h.svc.List(c.Request.Context(), pgrepo.JobFilter{
		Search:   c.Query("search"),
		Location: c.Query("location"),
		JobType:  c.Query("jobType"),
		Remote:   c.Query("remote"),
		Featured: c.Query("featured") == "true",
		Limit:    limit,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

type CreateJobRequest struct {
	Title            string   `json:"title" binding:"required"`
	Company          string   `json:"company" binding:"required"`
	Location         string   `json:"location"`
	Type             string   `json:"type"`
	Salary           string   `json:"salary"`
	Description      string   `json:"description"`
	Requirements     []string `json:"requirements"`
	Responsibilities []string `json:"responsibilities"`
	Experience       string   `json:"experience"`
	Education        string   `json:"education"`
	Industry         string   `json:"industry"`
	Skills           []string `json:"skills"`
	Featured         bool     `json:"featured"`
}

func (h *JobHandler) Create(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.Create", "invalid request body", err))
		return
	}

	job, err := h.svc.Create(c.Request.Context(), userID, services.CreateJobInput{
		Title:            req.Title,
		Company:          req.Company,
		Location:         req.Location,
		Type:             models.JobType(req.Type),
		Salary:           req.Salary,
		Description:      req.Description,
		Requirements:     req.Requirements,
		Responsibilities: req.Responsibilities,
		Experience:       req.Experience,
		Education:        req.Education,
		Industry:         req.Industry,
		Skills:           req.Skills,
		Featured:         req.Featured,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

type UpdateJobStatusRequest struct {
	Status string `json:"status" binding:"required"` // ACTIVE|CLOSED
}

func (h *JobHandler) UpdateStatus(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req UpdateJobStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "JobHandler.UpdateStatus", "invalid request body", err))
		return
	}

	if err := h.svc.SetStatus(c.Request.Context(), userID, c.Param("id"), models.JobStatus(req.Status)); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
