package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ayrabia/planpal/internal/model"
)

// listOrder surfaces the most urgent work first: dated tasks before undated
// ones, earlier due dates first, then higher priority within the same date.
const listOrder = `(due_date IS NULL), due_date ASC,
	CASE priority WHEN 'High' THEN 3 WHEN 'Medium' THEN 2 ELSE 1 END DESC`

// TaskRepository handles CRUD for tasks.
type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// TaskInput carries the five caller-mutable fields of a task. Everything
// else (status, timestamps) is owned by the repository.
type TaskInput struct {
	Title       string
	Description string
	CategoryID  *uint
	DueDate     *model.Date
	Priority    model.Priority
}

// Create inserts a task with status forced to Todo, both timestamps set to
// the insertion time and no completion time. The returned record is re-read
// from the database so the caller sees exactly what was persisted, column
// defaults included.
func (r *TaskRepository) Create(ctx context.Context, userID uint, input TaskInput) (*model.Task, error) {
	if input.Priority == "" {
		input.Priority = model.PriorityMedium
	}
	now := model.Now()
	task := model.Task{
		UserID:      userID,
		CategoryID:  input.CategoryID,
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		Priority:    input.Priority,
		Status:      model.StatusTodo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.db.WithContext(ctx).Create(&task).Error; err != nil {
		return nil, fmt.Errorf("create task: %w", classify(err))
	}
	return r.FindByID(ctx, task.ID)
}

// Update overwrites the five mutable fields and refreshes the update
// timestamp. Status, creation and completion times are left untouched.
// Returns ErrNotFound if the task does not exist; the refreshed record
// otherwise.
func (r *TaskRepository) Update(ctx context.Context, taskID uint, input TaskInput) (*model.Task, error) {
	if err := r.exists(ctx, taskID); err != nil {
		return nil, fmt.Errorf("update task %d: %w", taskID, err)
	}
	updates := map[string]any{
		"title":       input.Title,
		"description": input.Description,
		"category_id": input.CategoryID,
		"due_date":    input.DueDate,
		"priority":    input.Priority,
		"updated_at":  model.Now(),
	}
	if err := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", taskID).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("update task %d: %w", taskID, classify(err))
	}
	return r.FindByID(ctx, taskID)
}

// Complete marks the task Done and records the completion time. Completing
// an already completed task just moves the timestamps forward.
func (r *TaskRepository) Complete(ctx context.Context, taskID uint) (*model.Task, error) {
	now := model.Now()
	return r.setStatus(ctx, taskID, map[string]any{
		"status":       model.StatusDone,
		"completed_at": now,
		"updated_at":   now,
	})
}

// Reopen puts the task back to Todo and clears the completion time.
func (r *TaskRepository) Reopen(ctx context.Context, taskID uint) (*model.Task, error) {
	return r.setStatus(ctx, taskID, map[string]any{
		"status":       model.StatusTodo,
		"completed_at": nil,
		"updated_at":   model.Now(),
	})
}

func (r *TaskRepository) setStatus(ctx context.Context, taskID uint, updates map[string]any) (*model.Task, error) {
	if err := r.exists(ctx, taskID); err != nil {
		return nil, fmt.Errorf("task %d: %w", taskID, err)
	}
	if err := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", taskID).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("task %d: %w", taskID, classify(err))
	}
	return r.FindByID(ctx, taskID)
}

// Delete removes the task unconditionally. Deleting a nonexistent id is
// not an error.
func (r *TaskRepository) Delete(ctx context.Context, taskID uint) error {
	if err := r.db.WithContext(ctx).Delete(&model.Task{}, taskID).Error; err != nil {
		return fmt.Errorf("delete task %d: %w", taskID, classify(err))
	}
	return nil
}

// FindByID fetches a single task, ErrNotFound when absent.
func (r *TaskRepository) FindByID(ctx context.Context, taskID uint) (*model.Task, error) {
	var task model.Task
	if err := r.db.WithContext(ctx).First(&task, taskID).Error; err != nil {
		return nil, fmt.Errorf("find task %d: %w", taskID, classify(err))
	}
	return &task, nil
}

// ListByUser returns every task of the user in the fixed urgency order.
func (r *TaskRepository) ListByUser(ctx context.Context, userID uint) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(listOrder).
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks: %w", classify(err))
	}
	return tasks, nil
}

// ListByCategory returns the user's tasks in one category, same ordering
// as ListByUser. A nil categoryID selects uncategorized tasks.
func (r *TaskRepository) ListByCategory(ctx context.Context, userID uint, categoryID *uint) ([]model.Task, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if categoryID == nil {
		q = q.Where("category_id IS NULL")
	} else {
		q = q.Where("category_id = ?", *categoryID)
	}
	var tasks []model.Task
	if err := q.Order(listOrder).Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list tasks by category: %w", classify(err))
	}
	return tasks, nil
}

// ListDueBy returns the user's open tasks due on or before the given date.
// ISO dates compare correctly as text.
func (r *TaskRepository) ListDueBy(ctx context.Context, userID uint, due model.Date) ([]model.Task, error) {
	var tasks []model.Task
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ? AND due_date IS NOT NULL AND due_date <= ?",
			userID, model.StatusTodo, due.String()).
		Order(listOrder).
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list due tasks: %w", classify(err))
	}
	return tasks, nil
}

// CategoryCount is one bar of the per-category report.
type CategoryCount struct {
	Name  string
	Count int64
}

// CountByCategory aggregates the user's task counts per category name,
// bucketing uncategorized tasks under the given label.
func (r *TaskRepository) CountByCategory(ctx context.Context, userID uint, uncategorized string) ([]CategoryCount, error) {
	var counts []CategoryCount
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(categories.name, ?) AS name, COUNT(*) AS count
		FROM tasks
		LEFT JOIN categories ON categories.id = tasks.category_id
		WHERE tasks.user_id = ?
		GROUP BY COALESCE(categories.name, ?)
		ORDER BY name ASC`,
		uncategorized, userID, uncategorized,
	).Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("count tasks by category: %w", classify(err))
	}
	return counts, nil
}

func (r *TaskRepository) exists(ctx context.Context, taskID uint) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).Where("id = ?", taskID).Count(&count).Error
	if err != nil {
		return classify(err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
