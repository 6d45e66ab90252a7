// Package auth
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"storefront/internal/domain"
)

type Service struct {
	users       domain.UserRepository
	sessions    domain.SessionStore
	jwtSecret   []byte
	tokenExpiry time.Duration
}

func NewService(users domain.UserRepository, sessions domain.SessionStore, secret string, expiry time.Duration) domain.AuthService {
	return &Service{
		users:       users,
		sessions:    sessions,
		jwtSecret:   []byte(secret),
		tokenExpiry: expiry,
	}
}

// Register hashes the password and inserts the account. Email uniqueness is
// enforced by the store constraint; a duplicate surfaces as
// domain.ErrEmailAlreadyExists from the repository, so no pre-insert lookup
// is made.
func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	hashedPwd, err := HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPwd,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and issues a signed, expiring access token
// backed by a session record. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*domain.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(req.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	session := domain.Session{
		ID:       uuid.NewString(),
		UserID:   user.ID,
		Email:    user.Email,
		IssuedAt: time.Now(),
	}

	tokenString, err := generateToken(user.ID, user.Email, session.ID, s.jwtSecret, s.tokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	if err := s.sessions.Save(ctx, session, s.tokenExpiry); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	return &domain.AuthResponse{
		AccessToken: tokenString,
		TokenType:   "bearer",
	}, nil
}

// Authenticate resolves a presented access token to an identity. The
// signature and expiry are checked first, then the session record behind
// the token's jti must still exist; a revoked session fails even if the
// token itself is valid.
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.Identity, error) {
	claims, err := parseToken(token, s.jwtSecret)
	if err != nil {
		return nil, err
	}

	session, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}

	return &domain.Identity{
		UserID:    session.UserID,
		Email:     session.Email,
		SessionID: session.ID,
	}, nil
}

func (s *Service) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

func (s *Service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.GetByID(ctx, userID)
}
