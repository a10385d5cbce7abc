package profile

import (
	"context"
	"errors"

	"leavedesk/internal/policy"
	profileerrors "leavedesk/internal/profile/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	demoAdminEmail   = "admin@demo.com"
	demoManagerEmail = "manager@demo.com"
)

type Service interface {
	// Ensure returns the profile for id, creating it on first authenticated
	// contact. Updates never touch the role column.
	Ensure(ctx context.Context, id, email, fullName, avatarURL string) (ProfileResponse, error)
	GetByID(ctx context.Context, id string) (ProfileResponse, error)
	GetAll(ctx context.Context) ([]ProfileResponse, error)
	UpdateRole(ctx context.Context, actorID, targetID, role string) (ProfileResponse, error)
}

type service struct {
	repo            Repository
	firstAdminEmail string
	logger          *zap.Logger
}

func NewService(repo Repository, firstAdminEmail string, logger ...*zap.Logger) Service {
	l := zap.L().Named("profile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("profile.service")
	}
	return &service{repo: repo, firstAdminEmail: firstAdminEmail, logger: l}
}

// defaultRole assigns the role once, at profile creation. Demo accounts and
// the configured first-admin address bootstrap the hierarchy; everyone else
// starts as MEMBER.
func (s *service) defaultRole(email string) policy.Role {
	switch email {
	case demoAdminEmail:
		return policy.RoleAdmin
	case demoManagerEmail:
		return policy.RoleManager
	}
	if s.firstAdminEmail != "" && email == s.firstAdminEmail {
		return policy.RoleAdmin
	}
	return policy.RoleMember
}

func (s *service) Ensure(ctx context.Context, id, email, fullName, avatarURL string) (ProfileResponse, error) {
	userID, err := uuid.Parse(id)
	if err != nil {
		return ProfileResponse{}, profileerrors.ErrInvalidUserID
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err == nil {
		if fullName != "" {
			existing.FullName = fullName
		}
		if avatarURL != "" {
			existing.AvatarURL = avatarURL
		}
		existing.Email = email
		if err := s.repo.Update(ctx, existing); err != nil {
			s.logger.Error("profile update failed", zap.String("user_id", id), zap.Error(err))
			return ProfileResponse{}, err
		}
		return mapToResponse(*existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return ProfileResponse{}, err
	}

	p := &Profile{
		ID:        userID,
		Email:     email,
		FullName:  fullName,
		AvatarURL: avatarURL,
		Role:      s.defaultRole(email).String(),
	}
	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("profile create failed", zap.String("user_id", id), zap.Error(err))
		return ProfileResponse{}, err
	}
	s.logger.Info("profile created",
		zap.String("user_id", id),
		zap.String("role", p.Role),
	)
	return mapToResponse(*p), nil
}

func (s *service) GetByID(ctx context.Context, id string) (ProfileResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProfileResponse{}, profileerrors.ErrProfileNotFound
		}
		return ProfileResponse{}, err
	}
	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context) ([]ProfileResponse, error) {
	profiles, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	resp := make([]ProfileResponse, len(profiles))
	for i, p := range profiles {
		resp[i] = mapToResponse(p)
	}
	return resp, nil
}

func (s *service) UpdateRole(ctx context.Context, actorID, targetID, role string) (ProfileResponse, error) {
	if _, ok := policy.ParseRole(role); !ok {
		return ProfileResponse{}, profileerrors.ErrInvalidRole
	}
	if actorID == targetID {
		s.logger.Warn("self role change blocked", zap.String("user_id", actorID))
		return ProfileResponse{}, profileerrors.ErrSelfRoleChange
	}
	if _, err := uuid.Parse(targetID); err != nil {
		return ProfileResponse{}, profileerrors.ErrInvalidUserID
	}

	p, err := s.repo.UpdateRole(ctx, targetID, role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProfileResponse{}, profileerrors.ErrProfileNotFound
		}
		return ProfileResponse{}, err
	}
	p.Role = role
	s.logger.Info("role updated",
		zap.String("target_id", targetID),
		zap.String("role", role),
		zap.String("actor_id", actorID),
	)
	return mapToResponse(*p), nil
}

func mapToResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		ID:        p.ID.String(),
		Email:     p.Email,
		FullName:  p.FullName,
		AvatarURL: p.AvatarURL,
		Role:      p.Role,
		CreatedAt: p.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
