package profile_test

import (
	"context"
	"testing"

	"leavedesk/internal/profile"
	profileerrors "leavedesk/internal/profile/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeProfileRepository struct {
	createFn     func(ctx context.Context, p *profile.Profile) error
	findByIDFn   func(ctx context.Context, id string) (*profile.Profile, error)
	findAllFn    func(ctx context.Context) ([]profile.Profile, error)
	updateFn     func(ctx context.Context, p *profile.Profile) error
	updateRoleFn func(ctx context.Context, id, role string) (*profile.Profile, error)
}

func (f *fakeProfileRepository) Create(ctx context.Context, p *profile.Profile) error {
	if f.createFn != nil {
		return f.createFn(ctx, p)
	}
	return nil
}

func (f *fakeProfileRepository) FindByID(ctx context.Context, id string) (*profile.Profile, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProfileRepository) FindAll(ctx context.Context) ([]profile.Profile, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, p)
	}
	return nil
}

func (f *fakeProfileRepository) UpdateRole(ctx context.Context, id, role string) (*profile.Profile, error) {
	if f.updateRoleFn != nil {
		return f.updateRoleFn(ctx, id, role)
	}
	return nil, gorm.ErrRecordNotFound
}

func TestProfileService_Ensure(t *testing.T) {
	ctx := context.Background()
	firstAdmin := "founder@acme.test"

	t.Run("default role assignment at creation", func(t *testing.T) {
		tests := []struct {
			email string
			role  string
		}{
			{"admin@demo.com", "ADMIN"},
			{"manager@demo.com", "MANAGER"},
			{firstAdmin, "ADMIN"},
			{"someone@acme.test", "MEMBER"},
		}
		for _, tt := range tests {
			var created *profile.Profile
			repo := &fakeProfileRepository{
				createFn: func(ctx context.Context, p *profile.Profile) error {
					created = p
					return nil
				},
			}
			svc := profile.NewService(repo, firstAdmin)

			resp, err := svc.Ensure(ctx, uuid.New().String(), tt.email, "Dana", "")

			assert.NoError(t, err, tt.email)
			assert.Equal(t, tt.role, resp.Role, tt.email)
			assert.NotNil(t, created)
		}
	})

	t.Run("existing profile keeps its role", func(t *testing.T) {
		id := uuid.New()
		repo := &fakeProfileRepository{
			findByIDFn: func(ctx context.Context, gotID string) (*profile.Profile, error) {
				return &profile.Profile{ID: id, Email: "admin@demo.com", FullName: "Old Name", Role: "MEMBER"}, nil
			},
			updateFn: func(ctx context.Context, p *profile.Profile) error {
				// Even a demo-admin email must not escalate an existing row.
				assert.Equal(t, "MEMBER", p.Role)
				assert.Equal(t, "New Name", p.FullName)
				return nil
			},
		}
		svc := profile.NewService(repo, firstAdmin)

		resp, err := svc.Ensure(ctx, id.String(), "admin@demo.com", "New Name", "")

		assert.NoError(t, err)
		assert.Equal(t, "MEMBER", resp.Role)
	})

	t.Run("empty update fields keep existing values", func(t *testing.T) {
		id := uuid.New()
		repo := &fakeProfileRepository{
			findByIDFn: func(ctx context.Context, gotID string) (*profile.Profile, error) {
				return &profile.Profile{ID: id, Email: "dana@acme.test", FullName: "Dana", AvatarURL: "http://a/1.png", Role: "MEMBER"}, nil
			},
		}
		svc := profile.NewService(repo, "")

		resp, err := svc.Ensure(ctx, id.String(), "dana@acme.test", "", "")

		assert.NoError(t, err)
		assert.Equal(t, "Dana", resp.FullName)
		assert.Equal(t, "http://a/1.png", resp.AvatarURL)
	})

	t.Run("invalid id", func(t *testing.T) {
		svc := profile.NewService(&fakeProfileRepository{}, "")

		_, err := svc.Ensure(ctx, "nope", "a@b.c", "", "")

		assert.ErrorIs(t, err, profileerrors.ErrInvalidUserID)
	})
}

func TestProfileService_UpdateRole(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()
	targetID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		repo := &fakeProfileRepository{
			updateRoleFn: func(ctx context.Context, id, role string) (*profile.Profile, error) {
				assert.Equal(t, targetID, id)
				assert.Equal(t, "MANAGER", role)
				return &profile.Profile{ID: uuid.MustParse(targetID), Email: "dana@acme.test", Role: "MEMBER"}, nil
			},
		}
		svc := profile.NewService(repo, "")

		resp, err := svc.UpdateRole(ctx, actorID, targetID, "MANAGER")

		assert.NoError(t, err)
		assert.Equal(t, "MANAGER", resp.Role)
	})

	t.Run("invalid role value", func(t *testing.T) {
		svc := profile.NewService(&fakeProfileRepository{}, "")

		_, err := svc.UpdateRole(ctx, actorID, targetID, "SUPERUSER")

		assert.ErrorIs(t, err, profileerrors.ErrInvalidRole)
		assert.EqualError(t, err, "Invalid role")
	})

	t.Run("self change is blocked", func(t *testing.T) {
		svc := profile.NewService(&fakeProfileRepository{}, "")

		_, err := svc.UpdateRole(ctx, actorID, actorID, "ADMIN")

		assert.ErrorIs(t, err, profileerrors.ErrSelfRoleChange)
		assert.EqualError(t, err, "Cannot change your own role")
	})

	t.Run("unknown target", func(t *testing.T) {
		svc := profile.NewService(&fakeProfileRepository{}, "")

		_, err := svc.UpdateRole(ctx, actorID, targetID, "ADMIN")

		assert.ErrorIs(t, err, profileerrors.ErrProfileNotFound)
	})
}

func TestProfileService_GetAll(t *testing.T) {
	repo := &fakeProfileRepository{
		findAllFn: func(ctx context.Context) ([]profile.Profile, error) {
			return []profile.Profile{
				{ID: uuid.New(), Email: "a@acme.test", FullName: "Ana", Role: "MEMBER"},
				{ID: uuid.New(), Email: "b@acme.test", FullName: "Ben", Role: "MANAGER"},
			}, nil
		},
	}
	svc := profile.NewService(repo, "")

	resp, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "Ana", resp[0].FullName)
}
