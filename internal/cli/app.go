// Package cli is the terminal front end of the planner. It talks to the
// stores only through the service layer and plain values.
package cli

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ayrabia/planpal/internal/config"
	"github.com/ayrabia/planpal/internal/model"
	"github.com/ayrabia/planpal/internal/repository"
	"github.com/ayrabia/planpal/internal/service"
)

// App holds the wired services for one invocation. The database handle is
// opened once before the command runs and closed after it.
type App struct {
	cfg config.Config

	// flag-bound
	dbPath   string
	username string

	db         *gorm.DB
	auth       *service.AuthService
	categories *service.CategoryService
	tasks      *service.TaskService
	reports    *service.ReportService
	reminders  *service.ReminderService
}

func (a *App) open() error {
	db, err := repository.NewDB(a.dbPath)
	if err != nil {
		return err
	}
	a.db = db

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	a.auth = service.NewAuthService(userRepo)
	a.categories = service.NewCategoryService(categoryRepo)
	a.tasks = service.NewTaskService(taskRepo, categoryRepo)
	a.reports = service.NewReportService(taskRepo)
	a.reminders = service.NewReminderService(taskRepo, categoryRepo)
	return nil
}

func (a *App) close() error {
	if a.db == nil {
		return nil
	}
	return repository.CloseDB(a.db)
}

// user resolves the working account, creating it on first use. This mirrors
// the old "Initialize Data" flow that assumed a default identity.
func (a *App) user(ctx context.Context) (*model.User, error) {
	user, err := a.auth.GetOrCreate(ctx, a.username, a.cfg.DefaultPassword)
	if err != nil {
		return nil, fmt.Errorf("resolve user %q: %w", a.username, err)
	}
	return user, nil
}
