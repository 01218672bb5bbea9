package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AuthUseCase describes authentication/registration behavior.
type AuthUseCase interface {
	Register(ctx context.Context, input RegisterInput) error
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	Logout(ctx context.Context) error
}

// RegisterInput carries the fields a new user signs up with. The profile
// attributes are stored verbatim and not interpreted here.
type RegisterInput struct {
	Username       string
	Email          string
	Password       string
	SkillLevel     string
	FavoritePlaces []string
}

// AuthResult is returned on successful login: the token pair plus a
// snapshot of the user's profile for the response payload.
type AuthResult struct {
	User   User
	Tokens TokenPair
}

type authService struct {
	repo   UserRepository
	hasher PasswordHasher
	tokens TokenIssuer
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, hasher PasswordHasher, tokens TokenIssuer) AuthUseCase {
	return &authService{repo: repo, hasher: hasher, tokens: tokens}
}

// Register creates the user but deliberately issues no tokens; the client
// logs in separately.
func (s *authService) Register(ctx context.Context, input RegisterInput) error {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return ErrInvalidCredentials
	}

	// Friendly pre-check; the store's unique constraint is the real guard
	// against concurrent duplicates.
	if _, err := s.repo.GetByEmail(ctx, input.Email); err == nil {
		return ErrUserAlreadyExists
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:             uuid.New(),
		Username:       input.Username,
		Email:          strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash:   passwordHash,
		SkillLevel:     input.SkillLevel,
		FavoritePlaces: input.FavoritePlaces,
		CreatedAt:      time.Now().UTC(),
	}
	return s.repo.Create(ctx, user)
}

// Login verifies credentials and mints a fresh token pair.
//
// Unknown email and wrong password are distinguishable (ErrNotFound vs
// ErrInvalidCredentials) and the transport maps them to different statuses.
// That distinction leaks account existence; kept for contract compatibility.
func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return AuthResult{}, ErrInvalidCredentials
	}
	pair, err := s.tokens.Issue(ctx, user.ID.String(), user.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue tokens: %w", err)
	}
	return AuthResult{User: user, Tokens: pair}, nil
}

// Refresh redeems a refresh token for a brand-new pair. The presented token
// is not invalidated: with no server-side registry it remains usable until
// its own expiry.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	if refreshToken == "" {
		return TokenPair{}, ErrMissingRefreshToken
	}
	subjectID, email, err := s.tokens.VerifyRefresh(ctx, refreshToken)
	if err != nil {
		return TokenPair{}, ErrInvalidRefreshToken
	}
	pair, err := s.tokens.Issue(ctx, subjectID, email)
	if err != nil {
		return TokenPair{}, fmt.Errorf("issue tokens: %w", err)
	}
	return pair, nil
}

// Logout is a best-effort acknowledgement only. Issued tokens stay valid
// until expiry; the client is expected to discard its copies.
func (s *authService) Logout(ctx context.Context) error {
	return nil
}
