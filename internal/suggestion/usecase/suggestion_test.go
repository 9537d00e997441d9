package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/suggestion"
	"smart-todo/internal/suggestion/repository"
	"smart-todo/internal/task"
	"smart-todo/internal/task/repository/memory"
	taskusecase "smart-todo/internal/task/usecase"
	pkgLog "smart-todo/pkg/log"
	"smart-todo/pkg/openai"
)

type mockSuggestionRepo struct {
	suggestions []model.Suggestion
	nextID      int64
}

func (m *mockSuggestionRepo) CreateSuggestion(ctx context.Context, sc model.Scope, opt repository.CreateSuggestionOptions) (model.Suggestion, error) {
	m.nextID++
	s := model.Suggestion{
		ID:        m.nextID,
		UserID:    sc.UserID,
		TaskID:    opt.TaskID,
		Type:      opt.Type,
		Content:   opt.Content,
		Metadata:  opt.Metadata,
		Status:    model.SuggestionStatusPending,
		CreatedAt: time.Now(),
	}
	m.suggestions = append(m.suggestions, s)
	return s, nil
}

func (m *mockSuggestionRepo) GetOneSuggestion(ctx context.Context, sc model.Scope, id int64) (model.Suggestion, error) {
	for _, s := range m.suggestions {
		if s.ID == id && s.UserID == sc.UserID {
			return s, nil
		}
	}
	return model.Suggestion{}, nil
}

func (m *mockSuggestionRepo) ListSuggestions(ctx context.Context, sc model.Scope, status string) ([]model.Suggestion, error) {
	var out []model.Suggestion
	for i := len(m.suggestions) - 1; i >= 0; i-- {
		s := m.suggestions[i]
		if s.UserID != sc.UserID {
			continue
		}
		if status != "" && s.Status != status {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

func (m *mockSuggestionRepo) UpdateSuggestionStatus(ctx context.Context, sc model.Scope, id int64, status string) (model.Suggestion, error) {
	for i, s := range m.suggestions {
		if s.ID == id && s.UserID == sc.UserID {
			m.suggestions[i].Status = status
			return m.suggestions[i], nil
		}
	}
	return model.Suggestion{}, nil
}

type mockLLM struct {
	content string
	err     error
	prompt  string
}

func (m *mockLLM) ChatCompletion(ctx context.Context, req *openai.ChatRequest) (*openai.ChatResponse, error) {
	if len(req.Messages) > 0 {
		m.prompt = req.Messages[len(req.Messages)-1].Content
	}
	if m.err != nil {
		return nil, m.err
	}
	return &openai.ChatResponse{
		Choices: []openai.Choice{
			{Message: openai.Message{Role: "assistant", Content: m.content}},
		},
	}, nil
}

func (m *mockLLM) Model() string { return "test-model" }

type testEnv struct {
	uc     *implUseCase
	repo   *mockSuggestionRepo
	taskUC task.UseCase
	llm    *mockLLM
	sc     model.Scope
}

func newTestEnv() *testEnv {
	taskUC := taskusecase.New(pkgLog.NewNop(), memory.New(), nil, "", "UTC")
	repo := &mockSuggestionRepo{}
	llm := &mockLLM{}
	return &testEnv{
		uc:     New(pkgLog.NewNop(), repo, taskUC, llm, 300),
		repo:   repo,
		taskUC: taskUC,
		llm:    llm,
		sc:     model.Scope{UserID: 1},
	}
}

func (e *testEnv) mustCreateTask(t *testing.T, title string) model.Task {
	t.Helper()
	created, err := e.taskUC.Create(context.Background(), e.sc, task.CreateTaskInput{Title: title})
	if err != nil {
		t.Fatalf("taskUC.Create: %v", err)
	}
	return created
}

func TestGenerateStoresSuggestions(t *testing.T) {
	env := newTestEnv()
	first := env.mustCreateTask(t, "write report")
	env.mustCreateTask(t, "send invoices")

	env.llm.content = `[
		{"task_number": 1, "type": "deadline", "content": "Set a due date for the report."},
		{"task_number": 0, "type": "group", "content": "Batch these into one work block."}
	]`

	created, err := env.uc.Generate(context.Background(), env.sc)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("created = %d suggestions, want 2", len(created))
	}

	if created[0].TaskID == nil || *created[0].TaskID != first.ID {
		t.Errorf("first suggestion TaskID = %v, want %d", created[0].TaskID, first.ID)
	}
	if created[0].Type != model.SuggestionTypeDeadline {
		t.Errorf("Type = %q", created[0].Type)
	}
	if created[0].Status != model.SuggestionStatusPending {
		t.Errorf("Status = %q, want pending", created[0].Status)
	}
	if created[1].TaskID != nil {
		t.Error("task_number 0 must produce a nil TaskID")
	}

	if !strings.Contains(env.llm.prompt, "1. write report") {
		t.Errorf("prompt missing task listing: %q", env.llm.prompt)
	}
}

func TestGenerateSkipsCompletedTasks(t *testing.T) {
	env := newTestEnv()
	done := env.mustCreateTask(t, "already done")
	if _, err := env.taskUC.SetCompletion(context.Background(), env.sc, done.ID, true); err != nil {
		t.Fatalf("SetCompletion: %v", err)
	}

	if _, err := env.uc.Generate(context.Background(), env.sc); !errors.Is(err, suggestion.ErrNoOpenTasks) {
		t.Errorf("Generate() error = %v, want ErrNoOpenTasks", err)
	}
}

func TestGenerateMalformedReply(t *testing.T) {
	env := newTestEnv()
	env.mustCreateTask(t, "open task")
	env.llm.content = "I think you should focus on the report first."

	if _, err := env.uc.Generate(context.Background(), env.sc); err == nil {
		t.Fatal("Generate() expected error on malformed reply")
	}
	if len(env.repo.suggestions) != 0 {
		t.Errorf("suggestions = %d, want none stored", len(env.repo.suggestions))
	}
}

func TestGenerateStripsCodeFences(t *testing.T) {
	env := newTestEnv()
	env.mustCreateTask(t, "open task")
	env.llm.content = "```json\n[{\"task_number\": 1, \"type\": \"reminder\", \"content\": \"Do it.\"}]\n```"

	created, err := env.uc.Generate(context.Background(), env.sc)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("created = %d, want 1", len(created))
	}
}

func TestGenerateUnknownTypeDefaultsToReminder(t *testing.T) {
	env := newTestEnv()
	env.mustCreateTask(t, "open task")
	env.llm.content = `[{"task_number": 1, "type": "celebrate", "content": "Party."}]`

	created, err := env.uc.Generate(context.Background(), env.sc)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if created[0].Type != model.SuggestionTypeReminder {
		t.Errorf("Type = %q, want reminder", created[0].Type)
	}
}

func TestListFiltersByStatus(t *testing.T) {
	env := newTestEnv()
	env.mustCreateTask(t, "open task")
	env.llm.content = `[
		{"task_number": 1, "type": "reminder", "content": "one"},
		{"task_number": 1, "type": "reminder", "content": "two"}
	]`

	created, err := env.uc.Generate(context.Background(), env.sc)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := env.uc.UpdateStatus(context.Background(), env.sc, created[0].ID, model.SuggestionStatusAccepted); err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}

	pending, err := env.uc.List(context.Background(), env.sc, model.SuggestionStatusPending)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(pending) != 1 || pending[0].Content != "two" {
		t.Errorf("pending = %+v, want only the second suggestion", pending)
	}

	all, err := env.uc.List(context.Background(), env.sc, "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all = %d, want 2", len(all))
	}
}

func TestUpdateStatusValidation(t *testing.T) {
	env := newTestEnv()

	if _, err := env.uc.UpdateStatus(context.Background(), env.sc, 1, "archived"); !errors.Is(err, suggestion.ErrInvalidStatus) {
		t.Errorf("UpdateStatus() error = %v, want ErrInvalidStatus", err)
	}

	if _, err := env.uc.UpdateStatus(context.Background(), env.sc, 99, model.SuggestionStatusDismissed); !errors.Is(err, suggestion.ErrSuggestionNotFound) {
		t.Errorf("UpdateStatus() error = %v, want ErrSuggestionNotFound", err)
	}
}
