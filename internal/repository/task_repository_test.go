package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayrabia/planpal/internal/model"
)

func mustDate(t *testing.T, s string) *model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return &d
}

func TestTaskRepositoryCreate(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "alice")

	t.Run("persisted record is returned, defaults included", func(t *testing.T) {
		due := mustDate(t, "2025-06-30")
		task, err := repo.Create(ctx, user.ID, TaskInput{
			Title:       "water plants",
			Description: "the big one first",
			DueDate:     due,
			Priority:    model.PriorityHigh,
		})
		require.NoError(t, err)

		assert.NotZero(t, task.ID)
		assert.Equal(t, "water plants", task.Title)
		assert.Equal(t, "the big one first", task.Description)
		assert.Equal(t, model.PriorityHigh, task.Priority)
		assert.Equal(t, model.StatusTodo, task.Status)
		assert.Nil(t, task.CompletedAt)
		assert.False(t, task.CreatedAt.IsZero())
		assert.Equal(t, task.CreatedAt, task.UpdatedAt)

		// Calendar date round-trips exactly, no timezone shift.
		fetched, err := repo.FindByID(ctx, task.ID)
		require.NoError(t, err)
		require.NotNil(t, fetched.DueDate)
		assert.Equal(t, "2025-06-30", fetched.DueDate.String())
	})

	t.Run("priority defaults to Medium", func(t *testing.T) {
		task, err := repo.Create(ctx, user.ID, TaskInput{Title: "untagged"})
		require.NoError(t, err)
		assert.Equal(t, model.PriorityMedium, task.Priority)
	})

	t.Run("unknown category is a constraint violation", func(t *testing.T) {
		bogus := uint(9999)
		_, err := repo.Create(ctx, user.ID, TaskInput{Title: "lost", CategoryID: &bogus})
		require.ErrorIs(t, err, ErrConstraintViolation)
	})

	t.Run("invalid priority is rejected by the check constraint", func(t *testing.T) {
		_, err := repo.Create(ctx, user.ID, TaskInput{Title: "odd", Priority: "Urgent"})
		require.ErrorIs(t, err, ErrConstraintViolation)
	})
}

func TestTaskRepositoryListOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "alice")

	mk := func(title string, due *model.Date, priority model.Priority) {
		_, err := repo.Create(ctx, user.ID, TaskInput{Title: title, DueDate: due, Priority: priority})
		require.NoError(t, err)
	}

	// Inserted deliberately out of order.
	mk("no due date", nil, model.PriorityHigh)
	mk("jan 10 low", mustDate(t, "2025-01-10"), model.PriorityLow)
	mk("jan 10 high", mustDate(t, "2025-01-10"), model.PriorityHigh)
	mk("jan 05 medium", mustDate(t, "2025-01-05"), model.PriorityMedium)

	want := []string{"jan 05 medium", "jan 10 high", "jan 10 low", "no due date"}

	tasks, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, tasks, len(want))
	for i, task := range tasks {
		assert.Equal(t, want[i], task.Title, "position %d", i)
	}

	t.Run("repeated reads are stable", func(t *testing.T) {
		again, err := repo.ListByUser(ctx, user.ID)
		require.NoError(t, err)
		require.Len(t, again, len(want))
		for i, task := range again {
			assert.Equal(t, want[i], task.Title, "position %d", i)
		}
	})
}

func TestTaskRepositoryUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	categories := NewCategoryRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "alice")

	category, err := categories.Create(ctx, user.ID, "Home", nil)
	require.NoError(t, err)

	task, err := repo.Create(ctx, user.ID, TaskInput{
		Title:    "draft",
		DueDate:  mustDate(t, "2025-03-01"),
		Priority: model.PriorityLow,
	})
	require.NoError(t, err)

	t.Run("overwrites the five mutable fields only", func(t *testing.T) {
		updated, err := repo.Update(ctx, task.ID, TaskInput{
			Title:       "final",
			Description: "ship it",
			CategoryID:  &category.ID,
			DueDate:     mustDate(t, "2025-03-05"),
			Priority:    model.PriorityHigh,
		})
		require.NoError(t, err)

		assert.Equal(t, "final", updated.Title)
		assert.Equal(t, "ship it", updated.Description)
		require.NotNil(t, updated.CategoryID)
		assert.Equal(t, category.ID, *updated.CategoryID)
		require.NotNil(t, updated.DueDate)
		assert.Equal(t, "2025-03-05", updated.DueDate.String())
		assert.Equal(t, model.PriorityHigh, updated.Priority)

		assert.Equal(t, model.StatusTodo, updated.Status)
		assert.Nil(t, updated.CompletedAt)
		assert.Equal(t, task.CreatedAt, updated.CreatedAt)
		assert.False(t, updated.UpdatedAt.Time().Before(task.UpdatedAt.Time()))
	})

	t.Run("nil category and due date clear the columns", func(t *testing.T) {
		updated, err := repo.Update(ctx, task.ID, TaskInput{
			Title:    "final",
			Priority: model.PriorityHigh,
		})
		require.NoError(t, err)
		assert.Nil(t, updated.CategoryID)
		assert.Nil(t, updated.DueDate)
	})

	t.Run("missing id reports not found", func(t *testing.T) {
		_, err := repo.Update(ctx, 9999, TaskInput{Title: "ghost", Priority: model.PriorityLow})
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTaskRepositoryCompleteAndReopen(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "alice")

	task, err := repo.Create(ctx, user.ID, TaskInput{Title: "call dentist"})
	require.NoError(t, err)

	done, err := repo.Complete(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusDone, done.Status)
	require.NotNil(t, done.CompletedAt)

	reopened, err := repo.Reopen(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StatusTodo, reopened.Status)
	assert.Nil(t, reopened.CompletedAt)

	_, err = repo.Complete(ctx, 9999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepositoryDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "alice")

	task, err := repo.Create(ctx, user.ID, TaskInput{Title: "gone soon"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, task.ID))

	_, err = repo.FindByID(ctx, task.ID)
	require.ErrorIs(t, err, ErrNotFound)

	// Deleting an id that never existed is fine.
	require.NoError(t, repo.Delete(ctx, 9999))
}

func TestTaskRepositoryFilters(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	categories := NewCategoryRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "alice")

	work, err := categories.Create(ctx, user.ID, "Work", nil)
	require.NoError(t, err)

	_, err = repo.Create(ctx, user.ID, TaskInput{Title: "meeting", CategoryID: &work.ID, DueDate: mustDate(t, "2025-01-08")})
	require.NoError(t, err)
	_, err = repo.Create(ctx, user.ID, TaskInput{Title: "groceries", DueDate: mustDate(t, "2025-01-12")})
	require.NoError(t, err)
	completed, err := repo.Create(ctx, user.ID, TaskInput{Title: "old chore", DueDate: mustDate(t, "2025-01-01")})
	require.NoError(t, err)
	_, err = repo.Complete(ctx, completed.ID)
	require.NoError(t, err)

	t.Run("by category", func(t *testing.T) {
		tasks, err := repo.ListByCategory(ctx, user.ID, &work.ID)
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "meeting", tasks[0].Title)

		uncategorized, err := repo.ListByCategory(ctx, user.ID, nil)
		require.NoError(t, err)
		assert.Len(t, uncategorized, 2)
	})

	t.Run("due by date excludes completed and later tasks", func(t *testing.T) {
		tasks, err := repo.ListDueBy(ctx, user.ID, *mustDate(t, "2025-01-10"))
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "meeting", tasks[0].Title)
	})
}

func TestTaskRepositoryCountByCategory(t *testing.T) {
	db := newTestDB(t)
	repo := NewTaskRepository(db)
	categories := NewCategoryRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "alice")

	work, err := categories.Create(ctx, user.ID, "Work", nil)
	require.NoError(t, err)
	home, err := categories.Create(ctx, user.ID, "Home", nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = repo.Create(ctx, user.ID, TaskInput{Title: "w", CategoryID: &work.ID})
		require.NoError(t, err)
	}
	_, err = repo.Create(ctx, user.ID, TaskInput{Title: "h", CategoryID: &home.ID})
	require.NoError(t, err)
	_, err = repo.Create(ctx, user.ID, TaskInput{Title: "free"})
	require.NoError(t, err)

	counts, err := repo.CountByCategory(ctx, user.ID, "(No category)")
	require.NoError(t, err)
	require.Len(t, counts, 3)
	assert.Equal(t, CategoryCount{Name: "(No category)", Count: 1}, counts[0])
	assert.Equal(t, CategoryCount{Name: "Home", Count: 1}, counts[1])
	assert.Equal(t, CategoryCount{Name: "Work", Count: 3}, counts[2])
}

func TestUserDeletionCascades(t *testing.T) {
	db := newTestDB(t)
	tasks := NewTaskRepository(db)
	categories := NewCategoryRepository(db)
	ctx := context.Background()
	user := seedUser(t, db, "doomed")

	category, err := categories.Create(ctx, user.ID, "Work", nil)
	require.NoError(t, err)
	task, err := tasks.Create(ctx, user.ID, TaskInput{Title: "orphan-to-be", CategoryID: &category.ID})
	require.NoError(t, err)

	require.NoError(t, db.Delete(&model.User{}, user.ID).Error)

	_, err = tasks.FindByID(ctx, task.ID)
	require.ErrorIs(t, err, ErrNotFound)
	remaining, err := categories.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
