package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hirebridge/hirebridge/internal/models"
	pgrepo "github.com/hirebridge/hirebridge/internal/repositories/postgres"
	"github.com/hirebridge/hirebridge/internal/utils"
	"gorm.io/gorm"
)

func seedJobRow(t *testing.T, db *gorm.DB, providerID string, j models.Job) models.Job {
	t.Helper()

	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	j.UserID = providerID
	if j.Status == "" {
		j.Status = models.JobStatusActive
	}
	if j.CreatedAt.IsZero() {
		j.CreatedAt = time.Now().UTC()
	}
	j.UpdatedAt = j.CreatedAt
	if err := db.Create(&j).Error; err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return j
}

func TestApplyTwiceYieldsOneApplicationAndConflict(t *testing.T) {
	db := newTestDB(t)
	apps := pgrepo.NewApplicationRepo(db)
	jobs := pgrepo.NewJobRepo(db)
	svc := NewApplicationService(apps, jobs, newMemCache())

	provider := uuid.NewString()
	seeker := uuid.NewString()
	job := seedJobRow(t, db, provider, models.Job{Title: "Backend", Company: "Acme"})

	if _, err := svc.Apply(context.Background(), seeker, job.ID, "hello"); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	_, err := svc.Apply(context.Background(), seeker, job.ID, "hello again")
	if !utils.IsCode(err, utils.CodeConflict) {
		t.Fatalf("second Apply() error = %v, want CONFLICT", err)
	}

	count, err := apps.CountByJob(context.Background(), job.ID)
	if err != nil {
		t.Fatalf("CountByJob() error = %v", err)
	}
	if count != 1 {
		t.Fatalf("persisted applications = %d, want 1", count)
	}
}

func TestApplyUnknownJobIsNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewApplicationService(pgrepo.NewApplicationRepo(db), pgrepo.NewJobRepo(db), newMemCache())

	_, err := svc.Apply(context.Background(), uuid.NewString(), uuid.NewString(), "hello")
	if !utils.IsCode(err, utils.CodeNotFound) {
		t.Fatalf("Apply() error = %v, want NOT_FOUND", err)
	}
}

func TestUpdateStatusRequiresJobOwnership(t *testing.T) {
	db := newTestDB(t)
	apps := pgrepo.NewApplicationRepo(db)
	jobs := pgrepo.NewJobRepo(db)
	svc := NewApplicationService(apps, jobs, newMemCache())

	owner := uuid.NewString()
	stranger := uuid.NewString()
	seeker := uuid.NewString()
	job := seedJobRow(t, db, owner, models.Job{Title: "Backend", Company: "Acme"})

	app, err := svc.Apply(context.Background(), seeker, job.ID, "hello")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	err = svc.UpdateStatus(context.Background(), stranger, app.ID, models.ApplicationStatusReviewing)
	if !utils.IsCode(err, utils.CodeForbidden) {
		t.Fatalf("UpdateStatus() by stranger error = %v, want FORBIDDEN", err)
	}

	got, err := apps.GetWithJob(context.Background(), app.ID)
	if err != nil {
		t.Fatalf("GetWithJob() error = %v", err)
	}
	if got.Status != models.ApplicationStatusPending {
		t.Fatalf("status = %q, want PENDING untouched", got.Status)
	}

	if err := svc.UpdateStatus(context.Background(), owner, app.ID, models.ApplicationStatusInterview); err != nil {
		t.Fatalf("UpdateStatus() by owner error = %v", err)
	}
	got, _ = apps.GetWithJob(context.Background(), app.ID)
	if got.Status != models.ApplicationStatusInterview {
		t.Fatalf("status = %q, want INTERVIEW", got.Status)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	db := newTestDB(t)
	apps := pgrepo.NewApplicationRepo(db)
	jobs := pgrepo.NewJobRepo(db)
	svc := NewApplicationService(apps, jobs, newMemCache())

	owner := uuid.NewString()
	job := seedJobRow(t, db, owner, models.Job{Title: "Backend", Company: "Acme"})
	app, err := svc.Apply(context.Background(), uuid.NewString(), job.ID, "hi")
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	for _, bad := range []models.ApplicationStatus{"SHORTLISTED", "pending", ""} {
		err := svc.UpdateStatus(context.Background(), owner, app.ID, bad)
		if !utils.IsCode(err, utils.CodeInvalidArgument) {
			t.Fatalf("UpdateStatus(%q) error = %v, want INVALID_ARGUMENT", bad, err)
		}
	}

	got, _ := apps.GetWithJob(context.Background(), app.ID)
	if got.Status != models.ApplicationStatusPending {
		t.Fatalf("status = %q, want PENDING untouched", got.Status)
	}
}

func TestApplyInvalidatesDashboards(t *testing.T) {
	db := newTestDB(t)
	mc := newMemCache()
	svc := NewApplicationService(pgrepo.NewApplicationRepo(db), pgrepo.NewJobRepo(db), mc)

	provider := uuid.NewString()
	seeker := uuid.NewString()
	job := seedJobRow(t, db, provider, models.Job{Title: "Backend", Company: "Acme"})

	mc.m[seekerDashboardKey(seeker)] = []byte("{}")
	mc.m[providerDashboardKey(provider)] = []byte("{}")

	if _, err := svc.Apply(context.Background(), seeker, job.ID, "hello"); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if _, ok := mc.m[seekerDashboardKey(seeker)]; ok {
		t.Fatal("seeker dashboard cache not invalidated")
	}
	if _, ok := mc.m[providerDashboardKey(provider)]; ok {
		t.Fatal("provider dashboard cache not invalidated")
	}
}
