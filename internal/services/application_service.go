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

type ApplicationService interface {
	// Apply submits an application for the seeker. A second submission for
	// the same job reports CONFLICT and leaves the first row untouched.
	Apply(ctx context.Context, seekerID, jobID, coverLetter string) (*models.Application, error)
	// UpdateStatus transitions an application; the caller must be the
	// provider who posted the parent job, and status must be a known value.
	UpdateStatus(ctx context.Context, providerID, applicationID string, status models.ApplicationStatus) error
	ListForSeeker(ctx context.Context, seekerID string) ([]models.Application, error)
	ListForProvider(ctx context.Context, providerID string) ([]models.Application, error)
}

type applicationService struct {
	applications pgrepo.ApplicationRepository
	jobs         pgrepo.JobRepository
	cache        cache.Cache
}

func NewApplicationService(applications pgrepo.ApplicationRepository, jobs pgrepo.JobRepository, c cache.Cache) ApplicationService {
	return &applicationService{applications: applications, jobs: jobs, cache: c}
}

func (s *applicationService) Apply(ctx context.Context, seekerID, jobID, coverLetter string) (*models.Application, error) {
	const op = "ApplicationService.Apply"

	if seekerID == "" {
		return nil, utils.E(utils.CodeUnauthorized, op, "unauthorized", nil)
	}
	if jobID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "job_id is required", nil)
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "job not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get job", err)
	}

	now := time.Now().UTC()
	app := &models.Application{
		ID:          uuid.NewString(),
		JobID:       jobID,
		UserID:      seekerID,
		CoverLetter: coverLetter,
		Status:      models.ApplicationStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.applications.CreateIfAbsent(ctx, app)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to create application", err)
	}
	if !created {
		return nil, utils.E(utils.CodeConflict, op, "you have already applied for this job", nil)
	}

	invalidate(ctx, s.cache,
		seekerDashboardKey(seekerID),
		providerDashboardKey(job.UserID),
	)
	return app, nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, providerID, applicationID string, status models.ApplicationStatus) error {
	const op = "ApplicationService.UpdateStatus"

	if !status.Valid() {
		return utils.E(utils.CodeInvalidArgument, op, "unknown application status", nil)
	}

	app, err := s.applications.GetWithJob(ctx, applicationID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "application not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to get application", err)
	}
	if app.Job == nil || app.Job.UserID != providerID {
		return utils.E(utils.CodeForbidden, op, "application belongs to another provider's job", nil)
	}

	if err := s.applications.UpdateStatus(ctx, applicationID, status); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to update status", err)
	}

	invalidate(ctx, s.cache,
		seekerDashboardKey(app.UserID),
		providerDashboardKey(providerID),
	)
	return nil
}

func (s *applicationService) ListForSeeker(ctx context.Context, seekerID string) ([]models.Application, error) {
	const op = "ApplicationService.ListForSeeker"

	rows, err := s.applications.ListByUser(ctx, seekerID, 0)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}
	return rows, nil
}

func (s *applicationService) ListForProvider(ctx context.Context, providerID string) ([]models.Application, error) {
	const op = "ApplicationService.ListForProvider"

	rows, err := s.applications.ListByProvider(ctx, providerID, 0)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list applications", err)
	}
	return rows, nil
}
