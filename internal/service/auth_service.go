package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"job_portal/internal/model"
	"job_portal/internal/repository"
	"job_portal/internal/session"
	"job_portal/internal/utils"
)

var (
	ErrUserAlreadyExists = errors.New("user with this username already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrWrongPassword     = errors.New("wrong password")
	ErrInvalidRole       = errors.New("invalid role")
)

// AuthService provides registration, login and session lifecycle
type AuthService interface {
	Register(ctx context.Context, username, password, role string) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.Identity, string, error)
	Authenticate(ctx context.Context, token string) (*model.Identity, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	userRepo  repository.UserRepository
	sessions  session.Store
	tokenUtil *utils.TokenUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, sessions session.Store, tokenUtil *utils.TokenUtil) AuthService {
	return &authService{
		userRepo:  userRepo,
		sessions:  sessions,
		tokenUtil: tokenUtil,
	}
}

// Register creates a new account. It does not log the caller in; the
// frontend redirects to the login form afterwards.
func (s *authService) Register(ctx context.Context, username, password, role string) (*model.User, error) {
	if role == "" {
		role = model.RoleUser
	}
	if role != model.RoleUser && role != model.RoleAdmin {
		return nil, ErrInvalidRole
	}

	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hashedPassword,
		Role:         role,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// The unique constraint closes the pre-check race: a
		// concurrent insert of the same username lands here.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}

	return user, nil
}

// Login verifies credentials and establishes a session, returning the
// identity triple and the signed cookie token.
func (s *authService) Login(ctx context.Context, username, password string) (*model.Identity, string, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by username: %w", err)
	}
	if user == nil {
		return nil, "", ErrUserNotFound
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, "", ErrWrongPassword
	}

	identity := user.Identity()
	sessionID := uuid.NewString()

	if err := s.sessions.Save(ctx, sessionID, identity, session.TTL); err != nil {
		return nil, "", fmt.Errorf("failed to save session: %w", err)
	}

	token, err := s.tokenUtil.GenerateToken(sessionID, identity)
	if err != nil {
		// Best effort: the orphaned record expires with its TTL anyway.
		_ = s.sessions.Delete(ctx, sessionID)
		return nil, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	return &identity, token, nil
}

// Authenticate resolves a cookie token to the current session identity.
// A missing, malformed, expired or revoked token yields (nil, nil);
// only store failures are errors.
func (s *authService) Authenticate(ctx context.Context, token string) (*model.Identity, error) {
	if token == "" {
		return nil, nil
	}

	claims, err := s.tokenUtil.ValidateToken(token)
	if err != nil {
		return nil, nil
	}

	// The store record is authoritative so logout revokes immediately.
	identity, err := s.sessions.Get(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}
	return identity, nil
}

// Logout destroys the session behind the token. Idempotent: an absent
// or invalid token still succeeds.
func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	claims, err := s.tokenUtil.ValidateToken(token)
	if err != nil {
		return nil
	}
	if err := s.sessions.Delete(ctx, claims.ID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
