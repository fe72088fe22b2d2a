package services

import (
	"context"

	"github.com/hirebridge/hirebridge/internal/cache"
)

// Cache keys shared across services. Mutations invalidate the views the
// original UI would have revalidated: the affected dashboards and the job
// detail page.

func jobDetailKey(jobID string) string { return "job:" + jobID }

func seekerDashboardKey(userID string) string { return "dashboard:seeker:" + userID }

func providerDashboardKey(userID string) string { return "dashboard:provider:" + userID }

// invalidate drops keys best-effort; a failed delete only shortens cache
// freshness, it never fails the mutation.
func invalidate(ctx context.Context, c cache.Cache, keys ...string) {
	if c == nil {
		return
	}
	_ = c.Del(ctx, keys...)
}
