package classifier

import (
	"context"
	"errors"
	"testing"

	"smart-todo/internal/model"
	pkgLog "smart-todo/pkg/log"
	"smart-todo/pkg/openai"
)

type mockLLM struct {
	content string
	err     error
}

func (m *mockLLM) ChatCompletion(ctx context.Context, req *openai.ChatRequest) (*openai.ChatResponse, error) {
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

func TestClassifyStructuredReply(t *testing.T) {
	llm := &mockLLM{content: `{
		"intent": "create_task",
		"confidence": 0.95,
		"task_title": "Buy groceries",
		"due_date": "tomorrow",
		"priority": "high",
		"response": "I'll create that task."
	}`}
	c := New(llm, pkgLog.NewNop(), 300)

	got, err := c.Classify(context.Background(), "Add task: Buy groceries tomorrow")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}

	if got.Intent != model.IntentCreateTask {
		t.Errorf("Intent = %q, want create_task", got.Intent)
	}
	if got.Confidence != 0.95 {
		t.Errorf("Confidence = %v, want 0.95", got.Confidence)
	}
	if got.TaskTitle != "Buy groceries" {
		t.Errorf("TaskTitle = %q", got.TaskTitle)
	}
	if got.DueDate != "tomorrow" {
		t.Errorf("DueDate = %q", got.DueDate)
	}
}

func TestClassifyStripsCodeFences(t *testing.T) {
	llm := &mockLLM{content: "```json\n{\"intent\": \"list_tasks\", \"confidence\": 1.0, \"response\": \"Here are your tasks:\"}\n```"}
	c := New(llm, pkgLog.NewNop(), 300)

	got, err := c.Classify(context.Background(), "Show my tasks")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if got.Intent != model.IntentListTasks {
		t.Errorf("Intent = %q, want list_tasks", got.Intent)
	}
}

func TestClassifyProseFallsBackToGeneral(t *testing.T) {
	llm := &mockLLM{content: "Sure, I can help you organize your day!"}
	c := New(llm, pkgLog.NewNop(), 300)

	got, err := c.Classify(context.Background(), "hello there")
	if err != nil {
		t.Fatalf("Classify() error = %v, prose replies must not error", err)
	}
	if got.Intent != model.IntentGeneral {
		t.Errorf("Intent = %q, want general", got.Intent)
	}
	if got.Confidence != fallbackConfidence {
		t.Errorf("Confidence = %v, want %v", got.Confidence, fallbackConfidence)
	}
	if got.Response != "Sure, I can help you organize your day!" {
		t.Errorf("Response = %q, want the raw model text", got.Response)
	}
}

func TestClassifyDefaultsMissingFields(t *testing.T) {
	llm := &mockLLM{content: `{"intent": "list_tasks"}`}
	c := New(llm, pkgLog.NewNop(), 300)

	got, err := c.Classify(context.Background(), "what's on my plate")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if got.Confidence != defaultConfidence {
		t.Errorf("Confidence = %v, want default %v", got.Confidence, defaultConfidence)
	}
	if got.Response != defaultResponse {
		t.Errorf("Response = %q, want default", got.Response)
	}
}

func TestClassifyUnknownIntentBecomesGeneral(t *testing.T) {
	llm := &mockLLM{content: `{"intent": "make_coffee", "confidence": 0.9, "response": "ok"}`}
	c := New(llm, pkgLog.NewNop(), 300)

	got, err := c.Classify(context.Background(), "brew something")
	if err != nil {
		t.Fatalf("Classify() error = %v", err)
	}
	if got.Intent != model.IntentGeneral {
		t.Errorf("Intent = %q, want general", got.Intent)
	}
}

func TestClassifyTransportError(t *testing.T) {
	llm := &mockLLM{err: errors.New("connection refused")}
	c := New(llm, pkgLog.NewNop(), 300)

	if _, err := c.Classify(context.Background(), "anything"); err == nil {
		t.Fatal("Classify() expected error on transport failure")
	}
}
