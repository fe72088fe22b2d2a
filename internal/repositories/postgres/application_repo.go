package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/hirebridge/hirebridge/internal/models"
	"github.com/hirebridge/hirebridge/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ApplicationCountFilter narrows the count queries used by the dashboards.
// Zero values skip the corresponding predicate.
type ApplicationCountFilter struct {
	Status       models.ApplicationStatus
	CreatedSince time.Time
	UpdatedSince time.Time
}

type ApplicationRepository interface {
	// CreateIfAbsent inserts the application unless one already exists for the
	// same (job_id, user_id). Returns false without error when the row was
	// already there. The unique index makes this safe under concurrent
	// duplicate submissions.
	CreateIfAbsent(ctx context.Context, a *models.Application) (bool, error)
	GetWithJob(ctx context.Context, id string) (*models.Application, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error
	// ListByUser returns the seeker's applications with the job joined,
	// newest first. limit <= 0 means all.
	ListByUser(ctx context.Context, userID string, limit int) ([]models.Application, error)
	// ListByProvider returns applications across all of the provider's jobs
	// with the job and the applicant joined, newest first.
	ListByProvider(ctx context.Context, providerID string, limit int) ([]models.Application, error)
	CountByUser(ctx context.Context, userID string, f ApplicationCountFilter) (int64, error)
	CountByProvider(ctx context.Context, providerID string, f ApplicationCountFilter) (int64, error)
	CountByJob(ctx context.Context, jobID string) (int64, error)
}

type applicationRepo struct {
	db *gorm.DB
}

func NewApplicationRepo(db *gorm.DB) ApplicationRepository {
	return &applicationRepo{db: db}
}

func (r *applicationRepo) CreateIfAbsent(ctx context.Context, a *models.Application) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "job_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(a)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *applicationRepo) GetWithJob(ctx context.Context, id string) (*models.Application, error) {
	var a models.Application
	err := r.db.WithContext(ctx).
		Preload("Job").
		Where("id = ?", id).
		Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &a, err
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *applicationRepo) ListByUser(ctx context.Context, userID string, limit int) ([]models.Application, error) {
	q := r.db.WithContext(ctx).
		Preload("Job").
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []models.Application
	err := q.Find(&rows).Error
	return rows, err
}

func (r *applicationRepo) ListByProvider(ctx context.Context, providerID string, limit int) ([]models.Application, error) {
	q := r.db.WithContext(ctx).
		Preload("Job").
		Preload("User").
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.user_id = ?", providerID).
		Order("applications.created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var rows []models.Application
	err := q.Find(&rows).Error
	return rows, err
}

func applyCountFilter(q *gorm.DB, f ApplicationCountFilter) *gorm.DB {
	if f.Status != "" {
		q = q.Where("applications.status = ?", f.Status)
	}
	if !f.CreatedSince.IsZero() {
		q = q.Where("applications.created_at >= ?", f.CreatedSince)
	}
	if !f.UpdatedSince.IsZero() {
		q = q.Where("applications.updated_at >= ?", f.UpdatedSince)
	}
	return q
}

func (r *applicationRepo) CountByUser(ctx context.Context, userID string, f ApplicationCountFilter) (int64, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("applications.user_id = ?", userID)
	q = applyCountFilter(q, f)

	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *applicationRepo) CountByProvider(ctx context.Context, providerID string, f ApplicationCountFilter) (int64, error) {
	q := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.user_id = ?", providerID)
	q = applyCountFilter(q, f)

	var count int64
	err := q.Count(&count).Error
	return count, err
}

func (r *applicationRepo) CountByJob(ctx context.Context, jobID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("job_id = ?", jobID).
		Count(&count).Error
	return count, err
}
