package services

import (
	"context"
	"testing"
	"time"

	"github.com/hirebridge/hirebridge/internal/models"
	pgrepo "github.com/hirebridge/hirebridge/internal/repositories/postgres"
)

func newProfileFixture(t *testing.T) (AuthService, ProfileService) {
	t.Helper()

	db := newTestDB(t)
	users := pgrepo.NewUserRepo(db)
	auth := NewAuthService(users, []byte("test-secret"), time.Hour)
	profiles := NewProfileService(users, pgrepo.NewSeekerProfileRepo(db), pgrepo.NewProviderProfileRepo(db))
	return auth, profiles
}

func strp(s string) *string { return &s }

func TestUpdateSeekerProfileMergesPartialInput(t *testing.T) {
	auth, profiles := newProfileFixture(t)

	user, err := auth.Register(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@example.com", Password: "correct-horse", Role: models.RoleJobSeeker,
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	skills := []string{"React", "SQL"}
	if _, err := profiles.UpdateSeeker(context.Background(), user.ID, SeekerProfileInput{
		Title:  strp("Frontend Developer"),
		Skills: &skills,
	}); err != nil {
		t.Fatalf("UpdateSeeker() error = %v", err)
	}

	// second partial update must not wipe earlier fields
	if _, err := profiles.UpdateSeeker(context.Background(), user.ID, SeekerProfileInput{
		Location: strp("Berlin"),
		Name:     strp("Ada L."),
	}); err != nil {
		t.Fatalf("UpdateSeeker() (2nd) error = %v", err)
	}

	view, err := profiles.GetMe(context.Background(), user.ID, models.RoleJobSeeker)
	if err != nil {
		t.Fatalf("GetMe() error = %v", err)
	}
	if view.User.Name != "Ada L." {
		t.Fatalf("name = %q, want updated", view.User.Name)
	}
	if view.JobSeeker == nil {
		t.Fatal("expected seeker profile")
	}
	if view.JobSeeker.Title != "Frontend Developer" {
		t.Fatalf("title = %q, want kept", view.JobSeeker.Title)
	}
	if view.JobSeeker.Location != "Berlin" {
		t.Fatalf("location = %q, want Berlin", view.JobSeeker.Location)
	}
	if len(view.JobSeeker.Skills) != 2 {
		t.Fatalf("skills = %v, want kept", view.JobSeeker.Skills)
	}
	if view.JobProvider != nil {
		t.Fatal("seeker view must not carry a provider profile")
	}
}

func TestUpdateProviderProfileUpserts(t *testing.T) {
	auth, profiles := newProfileFixture(t)

	user, err := auth.Register(context.Background(), RegisterInput{
		Name: "Grace", Email: "grace@example.com", Password: "correct-horse", Role: models.RoleJobProvider,
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	year := 2012
	if _, err := profiles.UpdateProvider(context.Background(), user.ID, ProviderProfileInput{
		CompanyName: strp("Acme"),
		FoundedYear: &year,
	}); err != nil {
		t.Fatalf("UpdateProvider() error = %v", err)
	}

	view, err := profiles.GetMe(context.Background(), user.ID, models.RoleJobProvider)
	if err != nil {
		t.Fatalf("GetMe() error = %v", err)
	}
	if view.JobProvider == nil {
		t.Fatal("expected provider profile")
	}
	if view.JobProvider.CompanyName != "Acme" || view.JobProvider.FoundedYear != 2012 {
		t.Fatalf("profile = %+v, want Acme/2012", view.JobProvider)
	}
}
