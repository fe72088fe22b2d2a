package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hirebridge/hirebridge/internal/models"
	pgrepo "github.com/hirebridge/hirebridge/internal/repositories/postgres"
	"github.com/hirebridge/hirebridge/internal/utils"
)

func TestCreateJobDefaultsToActive(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(pgrepo.NewJobRepo(db), newMemCache())

	provider := uuid.NewString()
	job, err := svc.Create(context.Background(), provider, CreateJobInput{
		Title:   "Backend Engineer",
		Company: "Acme",
		Type:    models.JobTypeFullTime,
		Skills:  []string{"Go", "SQL"},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if job.Status != models.JobStatusActive {
		t.Fatalf("status = %q, want ACTIVE", job.Status)
	}
	if job.UserID != provider {
		t.Fatalf("user_id = %q, want provider", job.UserID)
	}

	_, err = svc.Create(context.Background(), provider, CreateJobInput{Title: "X", Company: "Y", Type: "WEEKEND"})
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("bad type error = %v, want INVALID_ARGUMENT", err)
	}
}

func TestGetJobByIDNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewJobService(pgrepo.NewJobRepo(db), newMemCache())

	_, err := svc.GetByID(context.Background(), uuid.NewString())
	if !utils.IsCode(err, utils.CodeNotFound) {
		t.Fatalf("GetByID() error = %v, want NOT_FOUND", err)
	}
}

func TestSetJobStatusRequiresOwnership(t *testing.T) {
	db := newTestDB(t)
	repo := pgrepo.NewJobRepo(db)
	svc := NewJobService(repo, newMemCache())

	owner := uuid.NewString()
	job := seedJobRow(t, db, owner, models.Job{Title: "Backend", Company: "Acme"})

	err := svc.SetStatus(context.Background(), uuid.NewString(), job.ID, models.JobStatusClosed)
	if !utils.IsCode(err, utils.CodeForbidden) {
		t.Fatalf("SetStatus() by stranger error = %v, want FORBIDDEN", err)
	}

	if err := svc.SetStatus(context.Background(), owner, job.ID, models.JobStatusClosed); err != nil {
		t.Fatalf("SetStatus() by owner error = %v", err)
	}
	got, err := repo.GetByID(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Status != models.JobStatusClosed {
		t.Fatalf("status = %q, want CLOSED", got.Status)
	}

	err = svc.SetStatus(context.Background(), owner, job.ID, "PAUSED")
	if !utils.IsCode(err, utils.CodeInvalidArgument) {
		t.Fatalf("bad status error = %v, want INVALID_ARGUMENT", err)
	}
}
