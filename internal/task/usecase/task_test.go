package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
	"smart-todo/internal/task/repository/memory"
	"smart-todo/pkg/gcalendar"
	pkgLog "smart-todo/pkg/log"
)

type mockCalendar struct {
	requests []gcalendar.CreateEventRequest
	err      error
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return &gcalendar.Event{ID: "evt-1", Summary: req.Summary}, nil
}

func newTestUseCase(calendar gcalendar.ICalendar) *implUseCase {
	return New(pkgLog.NewNop(), memory.New(), calendar, "primary", "UTC")
}

func TestCreateValidation(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: 1}
	uc := newTestUseCase(nil)

	tests := []struct {
		name    string
		input   task.CreateTaskInput
		wantErr error
	}{
		{
			name:    "empty title",
			input:   task.CreateTaskInput{Title: ""},
			wantErr: task.ErrEmptyTitle,
		},
		{
			name:    "whitespace only title",
			input:   task.CreateTaskInput{Title: "   "},
			wantErr: task.ErrEmptyTitle,
		},
		{
			name:    "title too long",
			input:   task.CreateTaskInput{Title: strings.Repeat("a", 201)},
			wantErr: task.ErrTitleTooLong,
		},
		{
			name: "description too long",
			input: task.CreateTaskInput{
				Title:       "ok",
				Description: strings.Repeat("b", 1001),
			},
			wantErr: task.ErrDescriptionTooLong,
		},
		{
			name:    "invalid priority",
			input:   task.CreateTaskInput{Title: "ok", Priority: "urgent"},
			wantErr: task.ErrInvalidPriority,
		},
		{
			name:  "title at max length",
			input: task.CreateTaskInput{Title: strings.Repeat("a", 200)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Create(ctx, sc, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateDefaultsAndTrimming(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: 1}
	uc := newTestUseCase(nil)

	got, err := uc.Create(ctx, sc, task.CreateTaskInput{
		Title:       "  Buy groceries  ",
		Description: "  milk and eggs  ",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if got.Title != "Buy groceries" {
		t.Errorf("Title = %q, want trimmed", got.Title)
	}
	if got.Description != "milk and eggs" {
		t.Errorf("Description = %q, want trimmed", got.Description)
	}
	if got.Priority != model.PriorityMedium {
		t.Errorf("Priority = %q, want default %q", got.Priority, model.PriorityMedium)
	}
	if got.Completed {
		t.Error("new task should start incomplete")
	}
}

func TestCreateSyncsCalendarEvent(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: 1}
	cal := &mockCalendar{}
	uc := newTestUseCase(cal)

	due := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if _, err := uc.Create(ctx, sc, task.CreateTaskInput{Title: "with due", DueDate: &due}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := uc.Create(ctx, sc, task.CreateTaskInput{Title: "no due"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if len(cal.requests) != 1 {
		t.Fatalf("calendar requests = %d, want 1", len(cal.requests))
	}
	req := cal.requests[0]
	if req.Summary != "with due" {
		t.Errorf("event summary = %q", req.Summary)
	}
	if !req.StartTime.Equal(due) {
		t.Errorf("event start = %v, want %v", req.StartTime, due)
	}
}

func TestCreateSurvivesCalendarFailure(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: 1}
	cal := &mockCalendar{err: errors.New("calendar unavailable")}
	uc := newTestUseCase(cal)

	due := time.Now()
	got, err := uc.Create(ctx, sc, task.CreateTaskInput{Title: "still created", DueDate: &due})
	if err != nil {
		t.Fatalf("Create() error = %v, calendar failures must not fail creation", err)
	}
	if got.ID == 0 {
		t.Error("task was not persisted")
	}
}

func TestGetNotFound(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(nil)

	_, err := uc.Get(ctx, model.Scope{UserID: 1}, 42)
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Get() error = %v, want ErrTaskNotFound", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: 1}
	uc := newTestUseCase(nil)

	created, err := uc.Create(ctx, sc, task.CreateTaskInput{Title: "original", Description: "keep me"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := uc.Update(ctx, sc, task.UpdateTaskInput{ID: created.ID, Title: "renamed"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Title != "renamed" {
		t.Errorf("Title = %q, want %q", updated.Title, "renamed")
	}
	if updated.Description != "keep me" {
		t.Errorf("Description = %q, empty input must keep current value", updated.Description)
	}
}

func TestUpdateValidatesNewTitle(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: 1}
	uc := newTestUseCase(nil)

	created, err := uc.Create(ctx, sc, task.CreateTaskInput{Title: "original"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	_, err = uc.Update(ctx, sc, task.UpdateTaskInput{ID: created.ID, Title: strings.Repeat("x", 201)})
	if !errors.Is(err, task.ErrTitleTooLong) {
		t.Errorf("Update() error = %v, want ErrTitleTooLong", err)
	}
}

func TestUpdateNotFound(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(nil)

	_, err := uc.Update(ctx, model.Scope{UserID: 1}, task.UpdateTaskInput{ID: 99, Title: "x"})
	if !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("Update() error = %v, want ErrTaskNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: 1}
	uc := newTestUseCase(nil)

	created, err := uc.Create(ctx, sc, task.CreateTaskInput{Title: "doomed"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := uc.Delete(ctx, sc, created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if err := uc.Delete(ctx, sc, created.ID); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("second Delete() error = %v, want ErrTaskNotFound", err)
	}
}

func TestToggleCompletion(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: 1}
	uc := newTestUseCase(nil)

	created, err := uc.Create(ctx, sc, task.CreateTaskInput{Title: "flip me"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	toggled, err := uc.ToggleCompletion(ctx, sc, created.ID)
	if err != nil {
		t.Fatalf("ToggleCompletion() error = %v", err)
	}
	if !toggled.Completed {
		t.Error("first toggle should mark complete")
	}

	toggled, err = uc.ToggleCompletion(ctx, sc, created.ID)
	if err != nil {
		t.Fatalf("ToggleCompletion() error = %v", err)
	}
	if toggled.Completed {
		t.Error("second toggle should mark incomplete")
	}

	if _, err := uc.ToggleCompletion(ctx, sc, 999); !errors.Is(err, task.ErrTaskNotFound) {
		t.Errorf("ToggleCompletion() error = %v, want ErrTaskNotFound", err)
	}
}

func TestSetCompletionIdempotent(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: 1}
	uc := newTestUseCase(nil)

	created, err := uc.Create(ctx, sc, task.CreateTaskInput{Title: "set me"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	for i := 0; i < 2; i++ {
		got, err := uc.SetCompletion(ctx, sc, created.ID, true)
		if err != nil {
			t.Fatalf("SetCompletion() error = %v", err)
		}
		if !got.Completed {
			t.Error("task should be complete")
		}
	}

	got, err := uc.SetCompletion(ctx, sc, created.ID, false)
	if err != nil {
		t.Fatalf("SetCompletion() error = %v", err)
	}
	if got.Completed {
		t.Error("task should be incomplete")
	}
}

func TestListIsScopedAndOrdered(t *testing.T) {
	ctx := context.Background()
	uc := newTestUseCase(nil)

	alice := model.Scope{UserID: 1}
	bob := model.Scope{UserID: 2}

	for _, title := range []string{"first", "second", "third"} {
		if _, err := uc.Create(ctx, alice, task.CreateTaskInput{Title: title}); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}
	if _, err := uc.Create(ctx, bob, task.CreateTaskInput{Title: "bob's"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tasks, err := uc.List(ctx, alice)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("len = %d, want 3", len(tasks))
	}
	for i, want := range []string{"first", "second", "third"} {
		if tasks[i].Title != want {
			t.Errorf("tasks[%d].Title = %q, want %q", i, tasks[i].Title, want)
		}
	}
}
