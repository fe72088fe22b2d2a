package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hirebridge/hirebridge/internal/cache"
	"github.com/hirebridge/hirebridge/internal/models"
	pgrepo "github.com/hirebridge/hirebridge/internal/repositories/postgres"
	"github.com/hirebridge/hirebridge/internal/utils"
)

type CreateJobInput struct {
	Title            string
	Company          string
	Location         string
	Type             models.JobType
	Salary           string
	Description      string
	Requirements     []string
	Responsibilities []string
	Experience       string
	Education        string
	Industry         string
	Skills           []string
	Featured         bool
}

type JobService interface {
	Create(ctx context.Context, providerID string, in CreateJobInput) (*models.Job, error)
	List(ctx context.Context, f pgrepo.JobFilter) ([]models.Job, error)
	GetByID(ctx context.Context, id string) (*models.Job, error)
	// SetStatus archives or reactivates a job; only the posting provider may
	// change it.
	SetStatus(ctx context.Context, providerID, jobID string, status models.JobStatus) error
}

type jobService struct {
	jobs  pgrepo.JobRepository
	cache cache.Cache
}

func NewJobService(jobs pgrepo.JobRepository, c cache.Cache) JobService {
	return &jobService{jobs: jobs, cache: c}
}

const jobDetailTTL = 5 * time.Minute

func (s *jobService) Create(ctx context.Context, providerID string, in CreateJobInput) (*models.Job, error) {
	const op = "JobService.Create"

	if providerID == "" {
		return nil, utils.E(utils.CodeUnauthorized, op, "unauthorized", nil)
	}
	if in.Title == "" || in.Company == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "title and company are required", nil)
	}
	if in.Type != "" && !in.Type.Valid() {
		return nil, utils.E(utils.CodeInvalidArgument, op, "unknown job type", nil)
	}

	now := time.Now().UTC()
	job := &models.Job{
		ID:               uuid.NewString(),
		UserID:           providerID,
		Title:            in.Title,
		Company:          in.Company,
		Location:         in.Location,
		Type:             in.Type,
		Salary:           in.Salary,
		Description:      in.Description,
		Requirements:     in.Requirements,
		Responsibilities: in.Responsibilities,
		Experience:       in.Experience,
		Education:        in.Education,
		Industry:         in.Industry,
		Skills:           in.Skills,
		Status:           models.JobStatusActive,
		Featured:         in.Featured,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create job", err)
	}

	invalidate(ctx, s.cache, providerDashboardKey(providerID))
	return job, nil
}

func (s *jobService) List(ctx context.Context, f pgrepo.JobFilter) ([]models.Job, error) {
	const op = "JobService.List"

	jobs, err := s.jobs.List(ctx, f)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list jobs", err)
	}
	return jobs, nil
}

func (s *jobService) GetByID(ctx context.Context, id string) (*models.Job, error) {
	const op = "JobService.GetByID"

	if id == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "id is required", nil)
	}

	key := jobDetailKey(id)
	if s.cache != nil {
		var cached models.Job
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	job, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get job", err)
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, job, jobDetailTTL)
	}
	return job, nil
}

func (s *jobService) SetStatus(ctx context.Context, providerID, jobID string, status models.JobStatus) error {
	const op = "JobService.SetStatus"

	if !status.Valid() {
		return utils.E(utils.CodeInvalidArgument, op, "unknown job status", nil)
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to get job", err)
	}
	if job.UserID != providerID {
		return utils.E(utils.CodeForbidden, op, "job belongs to another provider", nil)
	}

	if err := s.jobs.UpdateStatus(ctx, jobID, status); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to update job status", err)
	}

	invalidate(ctx, s.cache, jobDetailKey(jobID), providerDashboardKey(providerID))
	return nil
}
