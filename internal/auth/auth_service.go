package auth

import (
	"context"
	"strings"
	"time"

	autherrors "leavedesk/internal/auth/errors"
	"leavedesk/internal/middleware"
	"leavedesk/internal/policy"
	"leavedesk/internal/profile"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type TokenConfig struct {
	Secret          string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

type Service interface {
	Login(ctx context.Context, email, password string) (AuthResponse, error)
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (AuthResponse, error)
	GetMe(ctx context.Context, userID string) (MeResponse, error)

	// Resolve implements middleware.IdentityResolver: it verifies the bearer
	// token and ensures a profile exists for the identity, creating one on
	// first authenticated contact.
	Resolve(ctx context.Context, token string) (middleware.Identity, error)
}

type service struct {
	repo     Repository
	profiles profile.Service
	tokens   TokenConfig
}

func NewService(repo Repository, profiles profile.Service, tokens TokenConfig) Service {
	return &service{repo: repo, profiles: profiles, tokens: tokens}
}

func (s *service) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	cred, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !cred.IsActive {
		return AuthResponse{}, autherrors.ErrAccountDisabled
	}

	p, err := s.profiles.Ensure(ctx, cred.ID.String(), cred.Email, "", "")
	if err != nil {
		return AuthResponse{}, err
	}

	return s.issueTokens(cred, p)
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	cred := &Credential{
		ID:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hashed),
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, cred); err != nil {
		return AuthResponse{}, autherrors.ErrEmailAlreadyRegistered
	}

	p, err := s.profiles.Ensure(ctx, cred.ID.String(), cred.Email, req.FullName, "")
	if err != nil {
		return AuthResponse{}, err
	}

	return s.issueTokens(cred, p)
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (AuthResponse, error) {
	userID, _, err := s.parseToken(refreshToken)
	if err != nil {
		return AuthResponse{}, err
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidToken
	}

	cred, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidToken
	}

	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return AuthResponse{}, err
	}

	return s.issueTokens(cred, p)
}

func (s *service) GetMe(ctx context.Context, userID string) (MeResponse, error) {
	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return MeResponse{}, err
	}

	return MeResponse{
		User:    UserView{ID: p.ID, Email: p.Email},
		Profile: mapProfileView(p),
	}, nil
}

func (s *service) Resolve(ctx context.Context, token string) (middleware.Identity, error) {
	userID, email, err := s.parseToken(token)
	if err != nil {
		return middleware.Identity{}, err
	}

	p, err := s.profiles.Ensure(ctx, userID, email, "", "")
	if err != nil {
		return middleware.Identity{}, err
	}

	role, ok := policy.ParseRole(p.Role)
	if !ok {
		role = policy.RoleMember
	}

	return middleware.Identity{
		UserID: userID,
		Email:  email,
		Role:   role,
	}, nil
}

func (s *service) issueTokens(cred *Credential, p profile.ProfileResponse) (AuthResponse, error) {
	accessToken, err := s.generateToken(cred.ID.String(), cred.Email, s.tokens.AccessTokenTTL)
	if err != nil {
		return AuthResponse{}, err
	}
	refreshToken, err := s.generateToken(cred.ID.String(), cred.Email, s.tokens.RefreshTokenTTL)
	if err != nil {
		return AuthResponse{}, err
	}

	return AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile:      mapProfileView(p),
	}, nil
}

func (s *service) generateToken(userID, email string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.tokens.Secret))
}

func (s *service) parseToken(tokenString string) (userID, email string, err error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(s.tokens.Secret), nil
	})
	if err != nil || !token.Valid {
		if err != nil && strings.Contains(err.Error(), "expired") {
			return "", "", autherrors.ErrTokenExpired
		}
		return "", "", autherrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", autherrors.ErrInvalidToken
	}

	userID, ok = claims["user_id"].(string)
	if !ok || userID == "" {
		return "", "", autherrors.ErrInvalidToken
	}
	email, _ = claims["email"].(string)

	return userID, email, nil
}

func mapProfileView(p profile.ProfileResponse) ProfileView {
	return ProfileView{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		AvatarURL: p.AvatarURL,
		Role:      p.Role,
	}
}
