package profiles

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/tennisconnect/server/internal/authz"
	"github.com/tennisconnect/server/internal/models"
	"github.com/tennisconnect/server/internal/validate"
)

type fakeProfilesRepo struct {
	profile    *models.Profile
	created    *CreateProfileParams
	updated    *UpdateProfileParams
	deleted    []uuid.UUID
	listFilter ListFilter
}

func (f *fakeProfilesRepo) CreateProfile(ctx context.Context, params CreateProfileParams) (*models.Profile, error) {
	f.created = &params
	return &models.Profile{ID: uuid.New(), UserID: params.UserID, City: params.City}, nil
}

func (f *fakeProfilesRepo) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	if f.profile == nil || f.profile.ID != id {
		return nil, ErrNotFound
	}
	return f.profile, nil
}

func (f *fakeProfilesRepo) UpdateProfile(ctx context.Context, id uuid.UUID, params UpdateProfileParams) (*models.Profile, error) {
	f.updated = &params
	return f.profile, nil
}

func (f *fakeProfilesRepo) DeleteProfile(ctx context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeProfilesRepo) ListProfiles(ctx context.Context, filter ListFilter) (*ListResult, error) {
	f.listFilter = filter
	return &ListResult{}, nil
}

func validProfileRequest() CreateProfileRequest {
	return CreateProfileRequest{
		City:              "Amsterdam",
		SkillLevel:        models.SkillLevelIntermediate,
		LookingForPartner: true,
	}
}

func TestCreateProfileForActor(t *testing.T) {
	repo := &fakeProfilesRepo{}
	app := NewApp(repo)
	actor := uuid.New()

	profile, err := app.CreateProfile(context.Background(), actor, validProfileRequest())
	if err != nil {
		t.Fatalf("create profile: %v", err)
	}
	if profile.UserID != actor {
		t.Errorf("profile user = %s, want %s", profile.UserID, actor)
	}
}

func TestCreateProfileValidation(t *testing.T) {
	longBio := strings.Repeat("x", 1001)
	tests := []struct {
		name    string
		mutate  func(*CreateProfileRequest)
		field   string
		message string
	}{
		{
			name:    "missing city",
			mutate:  func(r *CreateProfileRequest) { r.City = "" },
			field:   "city",
			message: "Please enter your city.",
		},
		{
			name:    "city too long",
			mutate:  func(r *CreateProfileRequest) { r.City = strings.Repeat("x", 256) },
			field:   "city",
			message: "City cannot exceed 255 characters.",
		},
		{
			name:    "bad skill level",
			mutate:  func(r *CreateProfileRequest) { r.SkillLevel = "expert" },
			field:   "skill_level",
			message: "Please select a valid skill level.",
		},
		{
			name: "skill level all rejected on write",
			mutate: func(r *CreateProfileRequest) {
				r.SkillLevel = models.SkillLevelAll
			},
			field:   "skill_level",
			message: "Please select a valid skill level.",
		},
		{
			name:    "bio too long",
			mutate:  func(r *CreateProfileRequest) { r.Bio = &longBio },
			field:   "bio",
			message: "Bio cannot exceed 1000 characters.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := NewApp(&fakeProfilesRepo{})
			req := validProfileRequest()
			tc.mutate(&req)

			_, err := app.CreateProfile(context.Background(), uuid.New(), req)
			var fe validate.FieldErrors
			if !errors.As(err, &fe) {
				t.Fatalf("err = %v, want field errors", err)
			}
			if got := fe[tc.field]; got != tc.message {
				t.Errorf("fe[%q] = %q, want %q", tc.field, got, tc.message)
			}
		})
	}
}

func TestCreateProfileLimitsCountCharactersNotBytes(t *testing.T) {
	app := NewApp(&fakeProfilesRepo{})
	req := validProfileRequest()
	req.City = strings.Repeat("é", 255)

	if _, err := app.CreateProfile(context.Background(), uuid.New(), req); err != nil {
		t.Fatalf("create profile with 255-rune city: %v", err)
	}

	wideBio := strings.Repeat("é", 1000)
	req = validProfileRequest()
	req.Bio = &wideBio
	if _, err := app.CreateProfile(context.Background(), uuid.New(), req); err != nil {
		t.Fatalf("create profile with 1000-rune bio: %v", err)
	}

	req.City = strings.Repeat("é", 256)
	_, err := app.CreateProfile(context.Background(), uuid.New(), req)
	var fe validate.FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want field errors", err)
	}
	if got := fe["city"]; got != "City cannot exceed 255 characters." {
		t.Errorf("fe[%q] = %q, want length message", "city", got)
	}
}

func TestUpdateProfileByNonOwnerForbidden(t *testing.T) {
	profile := &models.Profile{ID: uuid.New(), UserID: uuid.New()}
	repo := &fakeProfilesRepo{profile: profile}
	app := NewApp(repo)

	req := UpdateProfileRequest{City: "Utrecht", SkillLevel: models.SkillLevelBeginner}
	_, err := app.UpdateProfile(context.Background(), uuid.New(), profile.ID, req)
	if !errors.Is(err, authz.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	if repo.updated != nil {
		t.Error("update reached the repository despite forbidden actor")
	}
}

func TestDeleteProfileByOwner(t *testing.T) {
	owner := uuid.New()
	profile := &models.Profile{ID: uuid.New(), UserID: owner}
	repo := &fakeProfilesRepo{profile: profile}
	app := NewApp(repo)

	if err := app.DeleteProfile(context.Background(), owner, profile.ID); err != nil {
		t.Fatalf("delete profile: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Errorf("deleted = %v, want one entry", repo.deleted)
	}
}

func TestDeleteProfileByNonOwnerForbidden(t *testing.T) {
	profile := &models.Profile{ID: uuid.New(), UserID: uuid.New()}
	repo := &fakeProfilesRepo{profile: profile}
	app := NewApp(repo)

	err := app.DeleteProfile(context.Background(), uuid.New(), profile.ID)
	if !errors.Is(err, authz.ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
	if len(repo.deleted) != 0 {
		t.Error("delete reached the repository despite forbidden actor")
	}
}

func TestListProfilesNormalizesPage(t *testing.T) {
	repo := &fakeProfilesRepo{}
	app := NewApp(repo)

	if _, err := app.ListProfiles(context.Background(), ListFilter{Page: -3}); err != nil {
		t.Fatalf("list profiles: %v", err)
	}
	if repo.listFilter.Page != 1 {
		t.Errorf("page = %d, want 1", repo.listFilter.Page)
	}
}
