package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"smart-todo/internal/model"
	"smart-todo/internal/suggestion"
	"smart-todo/internal/suggestion/repository"
	"smart-todo/pkg/openai"
	"smart-todo/pkg/response"
)

// generatedItem is one element of the JSON array the model is asked for.
type generatedItem struct {
	TaskNumber int    `json:"task_number"`
	Type       string `json:"type"`
	Content    string `json:"content"`
}

// Generate asks the model for recommendations over the user's open tasks and
// stores each one as a pending suggestion.
func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope) ([]model.Suggestion, error) {
	tasks, err := uc.taskUC.List(ctx, sc)
	if err != nil {
		return nil, err
	}

	var open []model.Task
	for _, t := range tasks {
		if !t.Completed {
			open = append(open, t)
		}
	}
	if len(open) == 0 {
		return nil, suggestion.ErrNoOpenTasks
	}

	resp, err := uc.llm.ChatCompletion(ctx, &openai.ChatRequest{
		Messages: []openai.Message{
			{Role: "user", Content: generatePrompt + formatTaskList(open)},
		},
		Temperature: generateTemperature,
		MaxTokens:   uc.maxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "suggestion.usecase.Generate.llm.ChatCompletion: %v", err)
		return nil, err
	}

	items, err := parseGeneratedItems(resp.FirstContent())
	if err != nil {
		uc.l.Errorf(ctx, "suggestion.usecase.Generate.parse: %v", err)
		return nil, err
	}

	metadata := fmt.Sprintf(`{"model":%q}`, uc.llm.Model())

	var created []model.Suggestion
	for _, item := range items {
		if item.Content == "" {
			continue
		}

		var taskID *int64
		if item.TaskNumber > 0 && item.TaskNumber <= len(open) {
			id := open[item.TaskNumber-1].ID
			taskID = &id
		}

		s, err := uc.repo.CreateSuggestion(ctx, sc, repository.CreateSuggestionOptions{
			TaskID:   taskID,
			Type:     normalizeType(item.Type),
			Content:  item.Content,
			Metadata: metadata,
		})
		if err != nil {
			uc.l.Errorf(ctx, "suggestion.usecase.Generate.repo.CreateSuggestion: %v", err)
			return nil, err
		}
		created = append(created, s)
	}
	return created, nil
}

// formatTaskList renders open tasks the way positional references expect,
// numbered from 1 in creation order.
func formatTaskList(tasks []model.Task) string {
	var b strings.Builder
	for i, t := range tasks {
		fmt.Fprintf(&b, "%d. %s (priority: %s", i+1, t.Title, t.Priority)
		if t.DueDate != nil {
			fmt.Fprintf(&b, ", due: %s", t.DueDate.Format(response.DateFormat))
		}
		b.WriteString(")\n")
	}
	return b.String()
}

// parseGeneratedItems strips code fences and unmarshals the model's array.
func parseGeneratedItems(raw string) ([]generatedItem, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```json") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimSuffix(raw, "```")
		raw = strings.TrimSpace(raw)
	} else if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSuffix(raw, "```")
		raw = strings.TrimSpace(raw)
	}

	var items []generatedItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("model returned malformed suggestions: %w", err)
	}
	return items, nil
}

// normalizeType keeps only known suggestion types.
func normalizeType(t string) string {
	switch t {
	case model.SuggestionTypePriority, model.SuggestionTypeDeadline,
		model.SuggestionTypeGroup, model.SuggestionTypeReminder:
		return t
	default:
		return model.SuggestionTypeReminder
	}
}

// List returns the user's suggestions, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, status string) ([]model.Suggestion, error) {
	suggestions, err := uc.repo.ListSuggestions(ctx, sc, status)
	if err != nil {
		uc.l.Errorf(ctx, "suggestion.usecase.List.repo.ListSuggestions: %v", err)
		return nil, err
	}
	return suggestions, nil
}

// UpdateStatus marks a suggestion accepted or dismissed.
func (uc *implUseCase) UpdateStatus(ctx context.Context, sc model.Scope, id int64, status string) (model.Suggestion, error) {
	if status != model.SuggestionStatusAccepted && status != model.SuggestionStatusDismissed {
		return model.Suggestion{}, suggestion.ErrInvalidStatus
	}

	s, err := uc.repo.UpdateSuggestionStatus(ctx, sc, id, status)
	if err != nil {
		uc.l.Errorf(ctx, "suggestion.usecase.UpdateStatus.repo.UpdateSuggestionStatus: %v", err)
		return model.Suggestion{}, err
	}

	if s.ID == 0 {
		return model.Suggestion{}, suggestion.ErrSuggestionNotFound
	}
	return s, nil
}
