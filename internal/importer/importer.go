// Package importer moves tasks in and out of the database as YAML, for
// bulk entry and plain-text backups.
package importer

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ayrabia/planpal/internal/model"
	"github.com/ayrabia/planpal/internal/service"
)

// YAMLTask represents a single task in the YAML document.
type YAMLTask struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	Category    string `yaml:"category,omitempty"`
	DueDate     string `yaml:"due_date,omitempty"`
	Priority    string `yaml:"priority,omitempty"`
}

// YAMLDocument is the root structure of the YAML file.
type YAMLDocument struct {
	Tasks []YAMLTask `yaml:"tasks"`
}

// Import parses a YAML document and creates its tasks for the user.
// Categories are resolved by name and created on first use. Returns the
// number of tasks created; on error, tasks created so far stay in place.
func Import(ctx context.Context, tasks *service.TaskService, user *model.User, data []byte) (int, error) {
	var doc YAMLDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return 0, fmt.Errorf("parse YAML: %w", err)
	}
	if len(doc.Tasks) == 0 {
		return 0, fmt.Errorf("no tasks found in YAML")
	}

	count := 0
	for _, yt := range doc.Tasks {
		input := service.TaskInput{
			Title:        yt.Title,
			Description:  yt.Description,
			CategoryName: yt.Category,
			Priority:     model.Priority(yt.Priority),
		}
		if yt.DueDate != "" {
			due, err := model.ParseDate(yt.DueDate)
			if err != nil {
				return count, fmt.Errorf("task %q: %w", yt.Title, err)
			}
			input.DueDate = &due
		}
		if _, err := tasks.Create(ctx, user, input); err != nil {
			return count, fmt.Errorf("add task %q: %w", yt.Title, err)
		}
		count++
	}
	return count, nil
}

// Export writes all of the user's tasks as a YAML document in the same
// shape Import reads, in the store's listing order.
func Export(ctx context.Context, tasks *service.TaskService, categories *service.CategoryService, user *model.User) ([]byte, error) {
	list, err := tasks.List(ctx, user)
	if err != nil {
		return nil, err
	}

	cats, err := categories.List(ctx, user)
	if err != nil {
		return nil, err
	}
	catNames := make(map[uint]string, len(cats))
	for _, cat := range cats {
		catNames[cat.ID] = cat.Name
	}

	doc := YAMLDocument{Tasks: make([]YAMLTask, 0, len(list))}
	for _, task := range list {
		yt := YAMLTask{
			Title:       task.Title,
			Description: task.Description,
			Priority:    string(task.Priority),
		}
		if task.CategoryID != nil {
			yt.Category = catNames[*task.CategoryID]
		}
		if task.DueDate != nil {
			yt.DueDate = task.DueDate.String()
		}
		doc.Tasks = append(doc.Tasks, yt)
	}

	out, err := yaml.Marshal(&doc)
	if err != nil {
		return nil, fmt.Errorf("marshal YAML: %w", err)
	}
	return out, nil
}
