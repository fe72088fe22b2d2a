package services

import (
	"context"
	"errors"
	"time"

	"github.com/hirebridge/hirebridge/internal/models"
	pgrepo "github.com/hirebridge/hirebridge/internal/repositories/postgres"
	"github.com/hirebridge/hirebridge/internal/utils"
)

// ProfileView pairs the identity record with the profile matching its role.
type ProfileView struct {
	User        *models.User               `json:"user"`
	JobSeeker   *models.JobSeekerProfile   `json:"job_seeker,omitempty"`
	JobProvider *models.JobProviderProfile `json:"job_provider,omitempty"`
}

// SeekerProfileInput carries a partial update; nil fields are left unchanged.
type SeekerProfileInput struct {
	Name       *string   `json:"name,omitempty"`
	Title      *string   `json:"title,omitempty"`
	Bio        *string   `json:"bio,omitempty"`
	Location   *string   `json:"location,omitempty"`
	Skills     *[]string `json:"skills,omitempty"`
	Experience *string   `json:"experience,omitempty"`
	Education  *string   `json:"education,omitempty"`
	Resume     *string   `json:"resume,omitempty"`
	LinkedIn   *string   `json:"linkedin,omitempty"`
	GitHub     *string   `json:"github,omitempty"`
	Website    *string   `json:"website,omitempty"`
}

type ProviderProfileInput struct {
	Name               *string `json:"name,omitempty"`
	CompanyName        *string `json:"company_name,omitempty"`
	CompanyDescription *string `json:"company_description,omitempty"`
	Industry           *string `json:"industry,omitempty"`
	Location           *string `json:"location,omitempty"`
	Website            *string `json:"website,omitempty"`
	LinkedIn           *string `json:"linkedin,omitempty"`
	FoundedYear        *int    `json:"founded_year,omitempty"`
	CompanySize        *string `json:"company_size,omitempty"`
}

type ProfileService interface {
	GetMe(ctx context.Context, userID string, role models.UserRole) (*ProfileView, error)
	UpdateSeeker(ctx context.Context, userID string, in SeekerProfileInput) (*models.JobSeekerProfile, error)
	UpdateProvider(ctx context.Context, userID string, in ProviderProfileInput) (*models.JobProviderProfile, error)
}

type profileService struct {
	users     pgrepo.UserRepository
	seekers   pgrepo.SeekerProfileRepository
	providers pgrepo.ProviderProfileRepository
}

func NewProfileService(users pgrepo.UserRepository, seekers pgrepo.SeekerProfileRepository, providers pgrepo.ProviderProfileRepository) ProfileService {
	return &profileService{users: users, seekers: seekers, providers: providers}
}

func (s *profileService) GetMe(ctx context.Context, userID string, role models.UserRole) (*ProfileView, error) {
	const op = "ProfileService.GetMe"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to get user", err)
	}

	view := &ProfileView{User: user}
	switch role {
	case models.RoleJobSeeker:
		p, err := s.seekers.GetByUserID(ctx, userID)
		if err != nil && !errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
		}
		view.JobSeeker = p
	case models.RoleJobProvider:
		p, err := s.providers.GetByUserID(ctx, userID)
		if err != nil && !errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeInternal, op, "failed to get profile", err)
		}
		view.JobProvider = p
	}
	return view, nil
}

func (s *profileService) UpdateSeeker(ctx context.Context, userID string, in SeekerProfileInput) (*models.JobSeekerProfile, error) {
	const op = "ProfileService.UpdateSeeker"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	if in.Name != nil {
		if err := s.users.UpdateName(ctx, userID, *in.Name); err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to update name", err)
		}
	}

	// Missing profile means first save: start from a blank row.
	existing, err := s.seekers.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeInternal, op, "failed to load profile", err)
		}
		existing = &models.JobSeekerProfile{UserID: userID}
	}

	if in.Title != nil {
		existing.Title = *in.Title
	}
	if in.Bio != nil {
		existing.Bio = *in.Bio
	}
	if in.Location != nil {
		existing.Location = *in.Location
	}
	if in.Skills != nil {
		existing.Skills = *in.Skills
	}
	if in.Experience != nil {
		existing.Experience = *in.Experience
	}
	if in.Education != nil {
		existing.Education = *in.Education
	}
	if in.Resume != nil {
		existing.Resume = *in.Resume
	}
	if in.LinkedIn != nil {
		existing.LinkedIn = *in.LinkedIn
	}
	if in.GitHub != nil {
		existing.GitHub = *in.GitHub
	}
	if in.Website != nil {
		existing.Website = *in.Website
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.seekers.Upsert(ctx, existing); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to upsert profile", err)
	}
	return existing, nil
}

func (s *profileService) UpdateProvider(ctx context.Context, userID string, in ProviderProfileInput) (*models.JobProviderProfile, error) {
	const op = "ProfileService.UpdateProvider"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	if in.Name != nil {
		if err := s.users.UpdateName(ctx, userID, *in.Name); err != nil {
			return nil, utils.E(utils.CodeInternal, op, "failed to update name", err)
		}
	}

	existing, err := s.providers.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeInternal, op, "failed to load profile", err)
		}
		existing = &models.JobProviderProfile{UserID: userID}
	}

	if in.CompanyName != nil {
		existing.CompanyName = *in.CompanyName
	}
	if in.CompanyDescription != nil {
		existing.CompanyDescription = *in.CompanyDescription
	}
	if in.Industry != nil {
		existing.Industry = *in.Industry
	}
	if in.Location != nil {
		existing.Location = *in.Location
	}
	if in.Website != nil {
		existing.Website = *in.Website
	}
	if in.LinkedIn != nil {
		existing.LinkedIn = *in.LinkedIn
	}
	if in.FoundedYear != nil {
		existing.FoundedYear = *in.FoundedYear
	}
	if in.CompanySize != nil {
		existing.CompanySize = *in.CompanySize
	}
	existing.UpdatedAt = time.Now().UTC()

	if err := s.providers.Upsert(ctx, existing); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to upsert profile", err)
	}
	return existing, nil
}
