package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/hirebridge/hirebridge/internal/models"
	"github.com/hirebridge/hirebridge/internal/utils"
	"gorm.io/gorm"
)

// JobFilter is the loose filter bag accepted by the public job listing.
// Remote carries the raw query value; "true" replaces any explicit location
// with a substring match on "remote".
type JobFilter struct {
	Search   string
	Location string
	JobType  string
	Remote   string
	Featured bool
	Limit    int
}

type JobRepository interface {
	Create(ctx context.Context, j *models.Job) error
	GetByID(ctx context.Context, id string) (*models.Job, error)
	List(ctx context.Context, f JobFilter) ([]models.Job, error)
	// ListUnapplied returns ACTIVE jobs the user has no application for,
	// newest first. limit <= 0 means unbounded.
	ListUnapplied(ctx context.Context, userID string, limit int) ([]models.Job, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Job, error)
	CountByProvider(ctx context.Context, providerID string, status models.JobStatus) (int64, error)
	UpdateStatus(ctx context.Context, id string, status models.JobStatus) error
}

type jobRepo struct {
	db *gorm.DB
}

func NewJobRepo(db *gorm.DB) JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, j *models.Job) error {
	return r.db.WithContext(ctx).Create(j).Error
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	var j models.Job
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&j).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &j, err
}

func contains(s string) string {
	return "%" + strings.ToLower(s) + "%"
}

func (r *jobRepo) List(ctx context.Context, f JobFilter) ([]models.Job, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("status = ?", models.JobStatusActive)

	if f.Featured {
		q = q.Where("featured = ?", true)
	}
	if f.Search != "" {
		s := contains(f.Search)
		q = q.Where("LOWER(title) LIKE ? OR LOWER(company) LIKE ? OR LOWER(description) LIKE ?", s, s, s)
	}

	// remote=true overrides an explicit location; the filter form exposes both
	// and the override is the documented behavior.
	location := f.Location
	if f.Remote == "true" {
		location = "remote"
	}
	if location != "" {
		q = q.Where("LOWER(location) LIKE ?", contains(location))
	}

	if f.JobType != "" {
		q = q.Where("type = ?", f.JobType)
	}

	q = q.Order("created_at DESC")
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	var jobs []models.Job
	err := q.Find(&jobs).Error
	return jobs, err
}

func (r *jobRepo) ListUnapplied(ctx context.Context, userID string, limit int) ([]models.Job, error) {
	applied := r.db.
		Model(&models.Application{}).
		Select("job_id").
		Where("user_id = ?", userID)

	q := r.db.WithContext(ctx).
		Where("status = ?", models.JobStatusActive).
		Where("id NOT IN (?)", applied).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var jobs []models.Job
	err := q.Find(&jobs).Error
	return jobs, err
}

func (r *jobRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Where("user_id = ?", providerID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

func (r *jobRepo) CountByProvider(ctx context.Context, providerID string, status models.JobStatus) (int64, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("user_id = ?", providerID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *jobRepo) UpdateStatus(ctx context.Context, id string, status models.JobStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("id = ?", id).
		Update("status", status).Error
}
