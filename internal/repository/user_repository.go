package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ayrabia/planpal/internal/model"
)

// UserRepository handles CRUD for users.
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user. Returns ErrDuplicateKey if the username is
// already taken; the existing row is left untouched.
func (r *UserRepository) Create(ctx context.Context, username, password string) (*model.User, error) {
	user := model.User{Username: username, Password: password}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("create user: %w", classify(err))
	}
	return &user, nil
}

// Authenticate returns the user only when both username and password match
// exactly. A wrong password and an unknown username both yield (nil, nil),
// deliberately not revealing which one was wrong.
func (r *UserRepository) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("username = ? AND password = ?", username, password).
		First(&user).Error
	switch {
	case err == nil:
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, fmt.Errorf("authenticate user: %w", classify(err))
	}
}

// FindByUsername fetches a user by exact username, (nil, nil) when absent.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	switch {
	case err == nil:
		return &user, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, fmt.Errorf("find user: %w", classify(err))
	}
}

// GetOrCreate returns the existing user or creates one with the supplied
// default password. Used by flows that skip explicit signup and assume a
// default identity.
func (r *UserRepository) GetOrCreate(ctx context.Context, username, defaultPassword string) (*model.User, error) {
	user, err := r.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user != nil {
		return user, nil
	}
	return r.Create(ctx, username, defaultPassword)
}
