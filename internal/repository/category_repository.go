package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ayrabia/planpal/internal/model"
)

// CategoryRepository manages task categories.
type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create inserts a category for the user. Duplicate names within a user are
// permitted. Returns ErrConstraintViolation if the user does not exist.
func (r *CategoryRepository) Create(ctx context.Context, userID uint, name string, color *string) (*model.Category, error) {
	category := model.Category{UserID: userID, Name: name, Color: color}
	if err := r.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, fmt.Errorf("create category: %w", classify(err))
	}
	return &category, nil
}

// GetOrCreate returns the user's category with the given name, creating it
// if absent. When names are duplicated the first one in id order wins.
func (r *CategoryRepository) GetOrCreate(ctx context.Context, userID uint, name string) (*model.Category, error) {
	category, err := r.FindByName(ctx, userID, name)
	if err != nil {
		return nil, err
	}
	if category != nil {
		return category, nil
	}
	return r.Create(ctx, userID, name, nil)
}

// FindByName returns the user's first category with the given name in id
// order, (nil, nil) when absent.
func (r *CategoryRepository) FindByName(ctx context.Context, userID uint, name string) (*model.Category, error) {
	var category model.Category
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		Order("id ASC").
		First(&category).Error
	switch {
	case err == nil:
		return &category, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, nil
	default:
		return nil, fmt.Errorf("find category: %w", classify(err))
	}
}

// ListByUser returns all categories of the user sorted ascending by name.
// SQLite's default BINARY collation applies, so the sort is case sensitive
// with uppercase letters first.
func (r *CategoryRepository) ListByUser(ctx context.Context, userID uint) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", classify(err))
	}
	return categories, nil
}

// FindByID fetches a single category, ErrNotFound when absent.
func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		return nil, fmt.Errorf("find category %d: %w", id, classify(err))
	}
	return &category, nil
}

// Delete removes the category. Tasks referencing it get their category
// cleared by the ON DELETE SET NULL rule, not by application code.
// Returns ErrNotFound if no such category exists.
func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Category{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete category %d: %w", id, classify(res.Error))
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete category %d: %w", id, ErrNotFound)
	}
	return nil
}
