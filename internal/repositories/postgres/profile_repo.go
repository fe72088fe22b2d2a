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

type SeekerProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.JobSeekerProfile, error)
	Upsert(ctx context.Context, p *models.JobSeekerProfile) error
	UpsertResume(ctx context.Context, userID, resumeURL string) error
}

type seekerProfileRepo struct {
	db *gorm.DB
}

func NewSeekerProfileRepo(db *gorm.DB) SeekerProfileRepository {
	return &seekerProfileRepo{db: db}
}

func (r *seekerProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.JobSeekerProfile, error) {
	var p models.JobSeekerProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

func (r *seekerProfileRepo) Upsert(ctx context.Context, p *models.JobSeekerProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"title", "bio", "location", "skills", "experience", "education", "resume", "linkedin", "github", "website", "updated_at"}),
		}).
		Create(p).Error
}

func (r *seekerProfileRepo) UpsertResume(ctx context.Context, userID, resumeURL string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"resume", "updated_at"}),
		}).
		Create(&models.JobSeekerProfile{UserID: userID, Resume: resumeURL, UpdatedAt: time.Now().UTC()}).Error
}

type ProviderProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.JobProviderProfile, error)
	Upsert(ctx context.Context, p *models.JobProviderProfile) error
}

type providerProfileRepo struct {
	db *gorm.DB
}

func NewProviderProfileRepo(db *gorm.DB) ProviderProfileRepository {
	return &providerProfileRepo{db: db}
}

func (r *providerProfileRepo) GetByUserID(ctx context.Context, userID string) (*models.JobProviderProfile, error) {
	var p models.JobProviderProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

func (r *providerProfileRepo) Upsert(ctx context.Context, p *models.JobProviderProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"company_name", "company_description", "industry", "location", "website", "linkedin", "founded_year", "company_size", "updated_at"}),
		}).
		Create(p).Error
}
