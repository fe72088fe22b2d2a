package services

import (
	"context"
	"errors"
	"time"

	"github.com/hirebridge/hirebridge/internal/cache"
	"github.com/hirebridge/hirebridge/internal/models"
	pgrepo "github.com/hirebridge/hirebridge/internal/repositories/postgres"
	"github.com/hirebridge/hirebridge/internal/utils"
)

const (
	dashboardTTL       = time.Minute
	recentItems        = 5
	recommendedItems   = 5
	seekerRecentWindow = 30 * 24 * time.Hour
	providerNewWindow  = 7 * 24 * time.Hour
	// "Upcoming" interviews are INTERVIEW applications touched in the last
	// week; there is no scheduling field to compare against.
	upcomingWindow = 7 * 24 * time.Hour
)

type SeekerStats struct {
	Applications       int64 `json:"applications"`
	RecentApplications int64 `json:"recent_applications"`
	Interviews         int64 `json:"interviews"`
	UpcomingInterviews int64 `json:"upcoming_interviews"`
	SavedJobs          int64 `json:"saved_jobs"`
	NewSavedJobs       int64 `json:"new_saved_jobs"`
}

type SeekerDashboard struct {
	RecentApplications []models.Application `json:"recent_applications"`
	RecommendedJobs    []models.Job         `json:"recommended_jobs"`
	Stats              SeekerStats          `json:"stats"`
}

type ProviderStats struct {
	ActiveJobs         int64 `json:"active_jobs"`
	TotalViews         int64 `json:"total_views"`
	TotalApplications  int64 `json:"total_applications"`
	NewApplications    int64 `json:"new_applications"`
	Interviews         int64 `json:"interviews"`
	UpcomingInterviews int64 `json:"upcoming_interviews"`
}

type JobWithCount struct {
	models.Job
	ApplicationCount int64 `json:"application_count"`
}

type ProviderDashboard struct {
	Jobs               []JobWithCount       `json:"jobs"`
	RecentApplications []models.Application `json:"recent_applications"`
	Stats              ProviderStats        `json:"stats"`
}

type DashboardService interface {
	ForSeeker(ctx context.Context, seekerID string) (*SeekerDashboard, error)
	ForProvider(ctx context.Context, providerID string) (*ProviderDashboard, error)
}

type dashboardService struct {
	jobs         pgrepo.JobRepository
	applications pgrepo.ApplicationRepository
	seekers      pgrepo.SeekerProfileRepository
	cache        cache.Cache
}

func NewDashboardService(jobs pgrepo.JobRepository, applications pgrepo.ApplicationRepository, seekers pgrepo.SeekerProfileRepository, c cache.Cache) DashboardService {
	return &dashboardService{jobs: jobs, applications: applications, seekers: seekers, cache: c}
}

func (s *dashboardService) ForSeeker(ctx context.Context, seekerID string) (*SeekerDashboard, error) {
	const op = "DashboardService.ForSeeker"

	if seekerID == "" {
		return nil, utils.E(utils.CodeUnauthorized, op, "unauthorized", nil)
	}

	key := seekerDashboardKey(seekerID)
	if s.cache != nil {
		var cached SeekerDashboard
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	recent, err := s.applications.ListByUser(ctx, seekerID, recentItems)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list recent applications", err)
	}

	recommended, err := s.recommendJobs(ctx, seekerID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to compute recommendations", err)
	}

	now := time.Now().UTC()
	var stats SeekerStats
	if stats.Applications, err = s.applications.CountByUser(ctx, seekerID, pgrepo.ApplicationCountFilter{}); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count applications", err)
	}
	if stats.RecentApplications, err = s.applications.CountByUser(ctx, seekerID, pgrepo.ApplicationCountFilter{
		CreatedSince: now.Add(-seekerRecentWindow),
	}); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count recent applications", err)
	}
	if stats.Interviews, err = s.applications.CountByUser(ctx, seekerID, pgrepo.ApplicationCountFilter{
		Status: models.ApplicationStatusInterview,
	}); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count interviews", err)
	}
	if stats.UpcomingInterviews, err = s.applications.CountByUser(ctx, seekerID, pgrepo.ApplicationCountFilter{
		Status:       models.ApplicationStatusInterview,
		UpdatedSince: now.Add(-upcomingWindow),
	}); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count upcoming interviews", err)
	}

	out := &SeekerDashboard{
		RecentApplications: recent,
		RecommendedJobs:    recommended,
		Stats:              stats,
	}
	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, out, dashboardTTL)
	}
	return out, nil
}

// recommendJobs selects ACTIVE jobs the seeker has not applied to, newest
// first. With a non-empty skill set only jobs sharing at least one skill
// qualify; without one the not-yet-applied filter stands alone. The overlap
// runs over the fetched rows so the same path works on every SQL backend.
func (s *dashboardService) recommendJobs(ctx context.Context, seekerID string) ([]models.Job, error) {
	profile, err := s.seekers.GetByUserID(ctx, seekerID)
	if err != nil && !errors.Is(err, utils.ErrNotFound) {
		return nil, err
	}

	var skills []string
	if profile != nil {
		skills = profile.Skills
	}

	if len(skills) == 0 {
		return s.jobs.ListUnapplied(ctx, seekerID, recommendedItems)
	}

	candidates, err := s.jobs.ListUnapplied(ctx, seekerID, 0)
	if err != nil {
		return nil, err
	}

	want := make(map[string]struct{}, len(skills))
	for _, sk := range skills {
		want[sk] = struct{}{}
	}

	matched := make([]models.Job, 0, recommendedItems)
	for _, job := range candidates {
		for _, sk := range job.Skills {
			if _, ok := want[sk]; ok {
				matched = append(matched, job)
				break
			}
		}
		if len(matched) == recommendedItems {
			break
		}
	}
	return matched, nil
}

func (s *dashboardService) ForProvider(ctx context.Context, providerID string) (*ProviderDashboard, error) {
	const op = "DashboardService.ForProvider"

	if providerID == "" {
		return nil, utils.E(utils.CodeUnauthorized, op, "unauthorized", nil)
	}

	key := providerDashboardKey(providerID)
	if s.cache != nil {
		var cached ProviderDashboard
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	jobs, err := s.jobs.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list jobs", err)
	}

	withCounts := make([]JobWithCount, 0, len(jobs))
	for _, job := range jobs {
		count, err := s.applications.CountByJob(ctx, job.ID)
		if err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to count applications for job", err)
		}
		withCounts = append(withCounts, JobWithCount{Job: job, ApplicationCount: count})
	}

	recent, err := s.applications.ListByProvider(ctx, providerID, recentItems)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list recent applications", err)
	}

	now := time.Now().UTC()
	var stats ProviderStats
	if stats.ActiveJobs, err = s.jobs.CountByProvider(ctx, providerID, models.JobStatusActive); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count active jobs", err)
	}
	if stats.TotalApplications, err = s.applications.CountByProvider(ctx, providerID, pgrepo.ApplicationCountFilter{}); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count applications", err)
	}
	if stats.NewApplications, err = s.applications.CountByProvider(ctx, providerID, pgrepo.ApplicationCountFilter{
		CreatedSince: now.Add(-providerNewWindow),
	}); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count new applications", err)
	}
	if stats.Interviews, err = s.applications.CountByProvider(ctx, providerID, pgrepo.ApplicationCountFilter{
		Status: models.ApplicationStatusInterview,
	}); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count interviews", err)
	}
	if stats.UpcomingInterviews, err = s.applications.CountByProvider(ctx, providerID, pgrepo.ApplicationCountFilter{
		Status:       models.ApplicationStatusInterview,
		UpdatedSince: now.Add(-upcomingWindow),
	}); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to count upcoming interviews", err)
	}

	out := &ProviderDashboard{
		Jobs:               withCounts,
		RecentApplications: recent,
		Stats:              stats,
	}
	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, out, dashboardTTL)
	}
	return out, nil
}
