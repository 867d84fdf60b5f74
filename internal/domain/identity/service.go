package identity

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/medtrack/medtrack/internal/platform/auth"
)

type Service struct {
	users  UserRepository
	secret []byte
}

func NewService(users UserRepository, secret []byte) *Service {
	return &Service{users: users, secret: secret}
}

// Register creates a new account. Emails are unique; the password is stored
// only as a bcrypt hash.
func (s *Service) Register(ctx context.Context, name, email, password, role string) (*User, error) {
	if name == "" || email == "" || password == "" || role == "" {
		return nil, ErrMissingField
	}

	parsedRole, err := auth.ParseRole(role)
	if err != nil {
		return nil, ErrInvalidRole
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("check existing email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         parsedRole,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Login verifies the password and issues a signed credential carrying the
// account's identity and role. Unknown emails and wrong passwords fail the
// same way.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", fmt.Errorf("look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := auth.IssueToken(s.secret, u.ID, u.Email, u.Role)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
