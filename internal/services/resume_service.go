package services

import (
	"context"
	"io"

	"github.com/hirebridge/hirebridge/internal/cache"
	pgrepo "github.com/hirebridge/hirebridge/internal/repositories/postgres"
	"github.com/hirebridge/hirebridge/internal/storage"
	"github.com/hirebridge/hirebridge/internal/utils"
)

type ResumeService interface {
	// Upload stores the resume file and records its public URL on the
	// seeker's profile, creating the profile row if it does not exist yet.
	Upload(ctx context.Context, userID, objectName, mimeType string, r io.Reader) (string, error)
}

type resumeService struct {
	seekers  pgrepo.SeekerProfileRepository
	uploader storage.Uploader
	cache    cache.Cache
}

func NewResumeService(seekers pgrepo.SeekerProfileRepository, uploader storage.Uploader, c cache.Cache) ResumeService {
	return &resumeService{seekers: seekers, uploader: uploader, cache: c}
}

func (s *resumeService) Upload(ctx context.Context, userID, objectName, mimeType string, r io.Reader) (string, error) {
	const op = "ResumeService.Upload"

	if userID == "" || objectName == "" {
		return "", utils.E(utils.CodeInvalidArgument, op, "user_id and object_name are required", nil)
	}
	if s.uploader == nil {
		return "", utils.E(utils.CodeInternal, op, "uploader is not configured", nil)
	}

	url, err := s.uploader.Upload(ctx, objectName, mimeType, r)
	if err != nil {
		return "", utils.E(utils.CodeUnavailable, op, "failed to upload resume", err)
	}

	if err := s.seekers.UpsertResume(ctx, userID, url); err != nil {
		return "", utils.E(utils.CodeInternal, op, "failed to save resume url", err)
	}

	invalidate(ctx, s.cache, seekerDashboardKey(userID))
	return url, nil
}
