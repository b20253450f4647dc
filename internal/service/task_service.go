package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayrabia/planpal/internal/model"
	"github.com/ayrabia/planpal/internal/repository"
)

// TaskInput represents the caller-supplied fields of a task. Category may
// be given by id or by name; a name is resolved (and created on first use)
// against the user's categories.
type TaskInput struct {
	Title        string
	Description  string
	CategoryID   *uint
	CategoryName string
	DueDate      *model.Date
	Priority     model.Priority
}

// TaskService wraps task-related business logic.
type TaskService struct {
	taskRepo     *repository.TaskRepository
	categoryRepo *repository.CategoryRepository
}

func NewTaskService(taskRepo *repository.TaskRepository, categoryRepo *repository.CategoryRepository) *TaskService {
	return &TaskService{taskRepo: taskRepo, categoryRepo: categoryRepo}
}

// Create validates the input and inserts the task. Status, timestamps and
// completion are owned by the store; the returned record is the persisted
// one, defaults included.
func (s *TaskService) Create(ctx context.Context, user *model.User, input TaskInput) (*model.Task, error) {
	resolved, err := s.resolve(ctx, user, input)
	if err != nil {
		return nil, err
	}
	return s.taskRepo.Create(ctx, user.ID, resolved)
}

// Update overwrites the mutable fields of an existing task and returns the
// refreshed record. repository.ErrNotFound when the id does not exist.
func (s *TaskService) Update(ctx context.Context, user *model.User, taskID uint, input TaskInput) (*model.Task, error) {
	resolved, err := s.resolve(ctx, user, input)
	if err != nil {
		return nil, err
	}
	return s.taskRepo.Update(ctx, taskID, resolved)
}

// Complete marks a task as done. Reopen undoes it.
func (s *TaskService) Complete(ctx context.Context, taskID uint) (*model.Task, error) {
	return s.taskRepo.Complete(ctx, taskID)
}

func (s *TaskService) Reopen(ctx context.Context, taskID uint) (*model.Task, error) {
	return s.taskRepo.Reopen(ctx, taskID)
}

// Delete removes a task; deleting an unknown id is not an error.
func (s *TaskService) Delete(ctx context.Context, taskID uint) error {
	return s.taskRepo.Delete(ctx, taskID)
}

// Get fetches a single task by id.
func (s *TaskService) Get(ctx context.Context, taskID uint) (*model.Task, error) {
	return s.taskRepo.FindByID(ctx, taskID)
}

// List returns all tasks of the user, most urgent first.
func (s *TaskService) List(ctx context.Context, user *model.User) ([]model.Task, error) {
	return s.taskRepo.ListByUser(ctx, user.ID)
}

// ListByCategory filters the user's tasks to one category by name; an empty
// name selects uncategorized tasks.
func (s *TaskService) ListByCategory(ctx context.Context, user *model.User, categoryName string) ([]model.Task, error) {
	if categoryName == "" {
		return s.taskRepo.ListByCategory(ctx, user.ID, nil)
	}
	category, err := s.categoryRepo.FindByName(ctx, user.ID, categoryName)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, nil
	}
	return s.taskRepo.ListByCategory(ctx, user.ID, &category.ID)
}

// ListDueBy returns open tasks due on or before the given date.
func (s *TaskService) ListDueBy(ctx context.Context, user *model.User, due model.Date) ([]model.Task, error) {
	return s.taskRepo.ListDueBy(ctx, user.ID, due)
}

// resolve validates the input and turns it into the repository shape,
// checking that an explicit category id exists and belongs to the user.
func (s *TaskService) resolve(ctx context.Context, user *model.User, input TaskInput) (repository.TaskInput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return repository.TaskInput{}, fmt.Errorf("title is required")
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		return repository.TaskInput{}, fmt.Errorf("unknown priority %q", priority)
	}

	categoryID := input.CategoryID
	switch {
	case categoryID != nil:
		category, err := s.categoryRepo.FindByID(ctx, *categoryID)
		if err != nil {
			return repository.TaskInput{}, err
		}
		if category.UserID != user.ID {
			return repository.TaskInput{}, fmt.Errorf("category %d: %w", *categoryID, repository.ErrNotFound)
		}
	case input.CategoryName != "":
		category, err := s.categoryRepo.GetOrCreate(ctx, user.ID, input.CategoryName)
		if err != nil {
			return repository.TaskInput{}, err
		}
		categoryID = &category.ID
	}

	return repository.TaskInput{
		Title:       title,
		Description: input.Description,
		CategoryID:  categoryID,
		DueDate:     input.DueDate,
		Priority:    priority,
	}, nil
}
