package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayrabia/planpal/internal/model"
	"github.com/ayrabia/planpal/internal/repository"
)

// AuthService wraps signup and login around the user repository.
// Credentials are plain text end to end; see model.User.
type AuthService struct {
	users *repository.UserRepository
}

func NewAuthService(users *repository.UserRepository) *AuthService {
	return &AuthService{users: users}
}

// Signup creates a new account. The username is trimmed; both fields must
// be non-empty. A taken username surfaces as repository.ErrDuplicateKey.
func (s *AuthService) Signup(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if password == "" {
		return nil, fmt.Errorf("password is required")
	}
	return s.users.Create(ctx, username, password)
}

// Login returns the matching user, or (nil, nil) when either the username
// or the password is wrong, without telling which.
func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	return s.users.Authenticate(ctx, strings.TrimSpace(username), password)
}

// GetOrCreate resolves the working identity for flows without an explicit
// signup, creating the account with the default password on first use.
func (s *AuthService) GetOrCreate(ctx context.Context, username, defaultPassword string) (*model.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	return s.users.GetOrCreate(ctx, username, defaultPassword)
}
