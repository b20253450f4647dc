package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayrabia/planpal/internal/model"
	"github.com/ayrabia/planpal/internal/repository"
)

// CategoryService provides helpers around categories.
type CategoryService struct {
	repo *repository.CategoryRepository
}

func NewCategoryService(repo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// Create adds a category for the user. Color is optional and kept verbatim
// (typically a hex code).
func (s *CategoryService) Create(ctx context.Context, user *model.User, name string, color *string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	return s.repo.Create(ctx, user.ID, name, color)
}

// GetOrCreate resolves a category by name, creating it on first use.
func (s *CategoryService) GetOrCreate(ctx context.Context, user *model.User, name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("category name is required")
	}
	return s.repo.GetOrCreate(ctx, user.ID, name)
}

// List returns the user's categories sorted by name.
func (s *CategoryService) List(ctx context.Context, user *model.User) ([]model.Category, error) {
	return s.repo.ListByUser(ctx, user.ID)
}

// Delete removes a category. Referencing tasks keep living and lose the
// reference via the storage-level FK rule.
func (s *CategoryService) Delete(ctx context.Context, categoryID uint) error {
	return s.repo.Delete(ctx, categoryID)
}
