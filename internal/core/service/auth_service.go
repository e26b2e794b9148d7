package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/clientportal/project-portal/internal/core/access"
	"github.com/clientportal/project-portal/internal/core/domain"
	"github.com/clientportal/project-portal/internal/core/ports"
	"github.com/clientportal/project-portal/internal/core/token"
)

// AuthService implements login, identity lookup, client registration and
// the one-time admin bootstrap.
type AuthService struct {
	users  ports.UserRepository
	tokens *token.Service
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *token.Service, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	tkn, err := s.tokens.Issue(user.ID, user.Role, user.Email)
	if err != nil {
		return "", nil, err
	}

	return tkn, user, nil
}

// Me resolves the token subject to its persisted account.
func (s *AuthService) Me(ctx context.Context, claims *token.Claims) (*domain.User, error) {
	if claims == nil {
		return nil, domain.ErrUnauthenticated
	}
	return s.users.FindByID(ctx, claims.SubjectID)
}

// RegisterClient creates a client account on behalf of an admin. Email
// uniqueness is checked before insert; the unique index backs up the race.
func (s *AuthService) RegisterClient(ctx context.Context, claims *token.Claims, input ports.RegisterClientInput) (*domain.User, error) {
	if err := access.Decide(claims, access.ActionCreateUser, ""); err != nil {
		return nil, err
	}

	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		Name:         input.Name,
		Role:         domain.RoleClient,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("client account created")
	return created, nil
}

// SeedAdmin inserts the bootstrap admin account when missing. Check-then-
// insert: racy against concurrent startups, acceptable for a single
// instance.
func (s *AuthService) SeedAdmin(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = s.users.Create(ctx, &domain.User{
		Email:        email,
		Name:         "Admin",
		Role:         domain.RoleAdmin,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	s.logger.Info().Str("email", email).Msg("admin account seeded")
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
