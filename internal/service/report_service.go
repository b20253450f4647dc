package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayrabia/planpal/internal/model"
	"github.com/ayrabia/planpal/internal/repository"
)

// uncategorizedLabel is the report bucket for tasks without a category.
const uncategorizedLabel = "(No category)"

// ReportService renders the per-category task breakdown as plain text, the
// terminal stand-in for the old bar-chart dialog.
type ReportService struct {
	taskRepo *repository.TaskRepository
}

func NewReportService(taskRepo *repository.TaskRepository) *ReportService {
	return &ReportService{taskRepo: taskRepo}
}

// CategoryBreakdown returns task counts per category name, uncategorized
// tasks bucketed under "(No category)".
func (s *ReportService) CategoryBreakdown(ctx context.Context, user *model.User) ([]repository.CategoryCount, error) {
	return s.taskRepo.CountByCategory(ctx, user.ID, uncategorizedLabel)
}

// Render formats the breakdown as an aligned text bar chart.
func (s *ReportService) Render(ctx context.Context, user *model.User) (string, error) {
	counts, err := s.CategoryBreakdown(ctx, user)
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	builder.WriteString("Tasks per category\n")
	if len(counts) == 0 {
		builder.WriteString("(no tasks)\n")
		return builder.String(), nil
	}

	width := 0
	for _, c := range counts {
		if len(c.Name) > width {
			width = len(c.Name)
		}
	}
	for _, c := range counts {
		builder.WriteString(fmt.Sprintf("%-*s  %s %d\n",
			width, c.Name, strings.Repeat("#", int(c.Count)), c.Count))
	}
	return builder.String(), nil
}
