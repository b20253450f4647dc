package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ayrabia/planpal/internal/model"
	"github.com/ayrabia/planpal/internal/repository"
)

// ReminderService builds human-readable summaries of overdue and due-today
// work for periodic notifications.
type ReminderService struct {
	taskRepo     *repository.TaskRepository
	categoryRepo *repository.CategoryRepository
}

func NewReminderService(taskRepo *repository.TaskRepository, categoryRepo *repository.CategoryRepository) *ReminderService {
	return &ReminderService{taskRepo: taskRepo, categoryRepo: categoryRepo}
}

// DueSummary lists the user's open tasks due on or before today, split into
// overdue and due-today sections. Returns "" when nothing is due.
func (s *ReminderService) DueSummary(ctx context.Context, user *model.User, now time.Time) (string, error) {
	today := model.DateOf(now)
	tasks, err := s.taskRepo.ListDueBy(ctx, user.ID, today)
	if err != nil {
		return "", err
	}
	if len(tasks) == 0 {
		return "", nil
	}

	categories, err := s.categoryRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return "", err
	}
	catNames := make(map[uint]string, len(categories))
	for _, cat := range categories {
		catNames[cat.ID] = cat.Name
	}

	var overdue, dueToday []model.Task
	for _, task := range tasks {
		if task.DueDate != nil && task.DueDate.Before(today) {
			overdue = append(overdue, task)
		} else {
			dueToday = append(dueToday, task)
		}
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("Reminders for %s\n", today))
	if len(overdue) > 0 {
		builder.WriteString("\nOverdue:\n")
		for _, task := range overdue {
			builder.WriteString(formatReminderLine(task, catNames))
		}
	}
	if len(dueToday) > 0 {
		builder.WriteString("\nDue today:\n")
		for _, task := range dueToday {
			builder.WriteString(formatReminderLine(task, catNames))
		}
	}
	return builder.String(), nil
}

func formatReminderLine(task model.Task, catNames map[uint]string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("  [%d] %s", task.ID, strings.TrimSpace(task.Title)))
	if task.CategoryID != nil {
		if name, ok := catNames[*task.CategoryID]; ok && strings.TrimSpace(name) != "" {
			sb.WriteString(fmt.Sprintf(" (%s)", strings.TrimSpace(name)))
		}
	}
	if task.DueDate != nil {
		sb.WriteString(fmt.Sprintf(", due %s", task.DueDate))
	}
	if task.Priority == model.PriorityHigh {
		sb.WriteString(" !")
	}
	sb.WriteByte('\n')
	return sb.String()
}
