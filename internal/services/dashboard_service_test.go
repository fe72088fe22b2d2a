package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hirebridge/hirebridge/internal/models"
	pgrepo "github.com/hirebridge/hirebridge/internal/repositories/postgres"
	"gorm.io/gorm"
)

func seedApplicationRow(t *testing.T, db *gorm.DB, a models.Application) models.Application {
	t.Helper()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Status == "" {
		a.Status = models.ApplicationStatusPending
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = a.CreatedAt
	}
	if err := db.Create(&a).Error; err != nil {
		t.Fatalf("seed application: %v", err)
	}
	return a
}

func TestSeekerRecommendationsMatchSkillOverlap(t *testing.T) {
	db := newTestDB(t)
	seekers := pgrepo.NewSeekerProfileRepo(db)
	svc := NewDashboardService(pgrepo.NewJobRepo(db), pgrepo.NewApplicationRepo(db), seekers, newMemCache())

	seeker := uuid.NewString()
	provider := uuid.NewString()

	if err := seekers.Upsert(context.Background(), &models.JobSeekerProfile{
		UserID: seeker,
		Skills: []string{"React", "SQL"},
	}); err != nil {
		t.Fatalf("seed profile: %v", err)
	}

	jobA := seedJobRow(t, db, provider, models.Job{Title: "Frontend", Company: "Acme", Skills: []string{"React"}})
	seedJobRow(t, db, provider, models.Job{Title: "Backend", Company: "Acme", Skills: []string{"Go"}})
	jobC := seedJobRow(t, db, provider, models.Job{Title: "Fullstack", Company: "Acme", Skills: []string{"React"}})

	seedApplicationRow(t, db, models.Application{JobID: jobC.ID, UserID: seeker})

	out, err := svc.ForSeeker(context.Background(), seeker)
	if err != nil {
		t.Fatalf("ForSeeker() error = %v", err)
	}
	if len(out.RecommendedJobs) != 1 {
		t.Fatalf("recommended = %d jobs, want 1", len(out.RecommendedJobs))
	}
	if out.RecommendedJobs[0].ID != jobA.ID {
		t.Fatalf("recommended %q, want job A", out.RecommendedJobs[0].Title)
	}
}

func TestSeekerRecommendationsFallBackWithoutSkills(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(pgrepo.NewJobRepo(db), pgrepo.NewApplicationRepo(db), pgrepo.NewSeekerProfileRepo(db), newMemCache())

	seeker := uuid.NewString()
	provider := uuid.NewString()

	applied := seedJobRow(t, db, provider, models.Job{Title: "Applied", Company: "Acme", Skills: []string{"Go"}})
	open := seedJobRow(t, db, provider, models.Job{Title: "Open", Company: "Acme", Skills: []string{"Go"}})
	seedApplicationRow(t, db, models.Application{JobID: applied.ID, UserID: seeker})

	out, err := svc.ForSeeker(context.Background(), seeker)
	if err != nil {
		t.Fatalf("ForSeeker() error = %v", err)
	}
	if len(out.RecommendedJobs) != 1 || out.RecommendedJobs[0].ID != open.ID {
		t.Fatalf("recommended = %d jobs, want only the unapplied one", len(out.RecommendedJobs))
	}
}

func TestSeekerStats(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(pgrepo.NewJobRepo(db), pgrepo.NewApplicationRepo(db), pgrepo.NewSeekerProfileRepo(db), newMemCache())

	seeker := uuid.NewString()
	provider := uuid.NewString()
	now := time.Now().UTC()

	for _, a := range []models.Application{
		{CreatedAt: now.Add(-2 * 24 * time.Hour)},
		{CreatedAt: now.Add(-40 * 24 * time.Hour)},
		{Status: models.ApplicationStatusInterview, CreatedAt: now.Add(-10 * 24 * time.Hour), UpdatedAt: now.Add(-time.Hour)},
		{Status: models.ApplicationStatusInterview, CreatedAt: now.Add(-20 * 24 * time.Hour), UpdatedAt: now.Add(-10 * 24 * time.Hour)},
	} {
		job := seedJobRow(t, db, provider, models.Job{Title: "Job", Company: "Acme"})
		a.JobID = job.ID
		a.UserID = seeker
		seedApplicationRow(t, db, a)
	}

	out, err := svc.ForSeeker(context.Background(), seeker)
	if err != nil {
		t.Fatalf("ForSeeker() error = %v", err)
	}

	s := out.Stats
	if s.Applications != 4 {
		t.Fatalf("applications = %d, want 4", s.Applications)
	}
	if s.RecentApplications != 3 {
		t.Fatalf("recent applications = %d, want 3", s.RecentApplications)
	}
	if s.Interviews != 2 {
		t.Fatalf("interviews = %d, want 2", s.Interviews)
	}
	if s.UpcomingInterviews != 1 {
		t.Fatalf("upcoming interviews = %d, want 1", s.UpcomingInterviews)
	}
	if len(out.RecentApplications) != 4 {
		t.Fatalf("recent list = %d, want 4", len(out.RecentApplications))
	}
}

func TestProviderDashboard(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(pgrepo.NewJobRepo(db), pgrepo.NewApplicationRepo(db), pgrepo.NewSeekerProfileRepo(db), newMemCache())

	provider := uuid.NewString()
	now := time.Now().UTC()

	jobA := seedJobRow(t, db, provider, models.Job{Title: "A", Company: "Acme"})
	jobB := seedJobRow(t, db, provider, models.Job{Title: "B", Company: "Acme"})
	seedJobRow(t, db, provider, models.Job{Title: "Archived", Company: "Acme", Status: models.JobStatusClosed})
	seedJobRow(t, db, uuid.NewString(), models.Job{Title: "Foreign", Company: "Beta"})

	// 5 applications across the provider's jobs, one of them recent
	for i := 0; i < 4; i++ {
		seedApplicationRow(t, db, models.Application{
			JobID: jobA.ID, UserID: uuid.NewString(),
			CreatedAt: now.Add(-20 * 24 * time.Hour),
		})
	}
	seedApplicationRow(t, db, models.Application{
		JobID: jobB.ID, UserID: uuid.NewString(),
		CreatedAt: now.Add(-2 * 24 * time.Hour),
	})

	out, err := svc.ForProvider(context.Background(), provider)
	if err != nil {
		t.Fatalf("ForProvider() error = %v", err)
	}

	s := out.Stats
	if s.ActiveJobs != 2 {
		t.Fatalf("active jobs = %d, want 2", s.ActiveJobs)
	}
	if s.TotalApplications != 5 {
		t.Fatalf("total applications = %d, want 5", s.TotalApplications)
	}
	if s.NewApplications != 1 {
		t.Fatalf("new applications = %d, want 1", s.NewApplications)
	}

	if len(out.Jobs) != 3 {
		t.Fatalf("owned jobs = %d, want 3", len(out.Jobs))
	}
	counts := map[string]int64{}
	for _, j := range out.Jobs {
		counts[j.ID] = j.ApplicationCount
	}
	if counts[jobA.ID] != 4 || counts[jobB.ID] != 1 {
		t.Fatalf("per-job counts = %v, want jobA=4 jobB=1", counts)
	}

	if len(out.RecentApplications) != 5 {
		t.Fatalf("recent applications = %d, want 5", len(out.RecentApplications))
	}
}

func TestDashboardIsServedFromCacheUntilInvalidated(t *testing.T) {
	db := newTestDB(t)
	mc := newMemCache()
	svc := NewDashboardService(pgrepo.NewJobRepo(db), pgrepo.NewApplicationRepo(db), pgrepo.NewSeekerProfileRepo(db), mc)

	seeker := uuid.NewString()
	provider := uuid.NewString()
	job := seedJobRow(t, db, provider, models.Job{Title: "A", Company: "Acme"})

	first, err := svc.ForSeeker(context.Background(), seeker)
	if err != nil {
		t.Fatalf("ForSeeker() error = %v", err)
	}
	if first.Stats.Applications != 0 {
		t.Fatalf("applications = %d, want 0", first.Stats.Applications)
	}

	// new row, but the cached copy is still served
	seedApplicationRow(t, db, models.Application{JobID: job.ID, UserID: seeker})
	cached, err := svc.ForSeeker(context.Background(), seeker)
	if err != nil {
		t.Fatalf("ForSeeker() (cached) error = %v", err)
	}
	if cached.Stats.Applications != 0 {
		t.Fatalf("cached applications = %d, want stale 0", cached.Stats.Applications)
	}

	if err := mc.Del(context.Background(), seekerDashboardKey(seeker)); err != nil {
		t.Fatalf("Del() error = %v", err)
	}
	fresh, err := svc.ForSeeker(context.Background(), seeker)
	if err != nil {
		t.Fatalf("ForSeeker() (fresh) error = %v", err)
	}
	if fresh.Stats.Applications != 1 {
		t.Fatalf("fresh applications = %d, want 1", fresh.Stats.Applications)
	}
}
