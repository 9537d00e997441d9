package memory_test

import (
	"context"
	"testing"

	"smart-todo/internal/model"
	repo "smart-todo/internal/task/repository"
	"smart-todo/internal/task/repository/memory"
)

func TestCreateAndListOrder(t *testing.T) {
	r := memory.New()
	ctx := context.Background()
	sc := model.Scope{UserID: 1}

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		if _, err := r.CreateTask(ctx, sc, repo.CreateTaskOptions{Title: title, Priority: model.PriorityMedium}); err != nil {
			t.Fatalf("CreateTask: %v", err)
		}
	}

	tasks, err := r.ListTasks(ctx, sc)
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != len(titles) {
		t.Fatalf("expected %d tasks, got %d", len(titles), len(tasks))
	}
	for i, task := range tasks {
		if task.Title != titles[i] {
			t.Errorf("position %d: expected %q, got %q", i+1, titles[i], task.Title)
		}
		if task.ID != int64(i+1) {
			t.Errorf("position %d: expected ID %d, got %d", i+1, i+1, task.ID)
		}
	}
}

func TestUserScoping(t *testing.T) {
	r := memory.New()
	ctx := context.Background()
	alice := model.Scope{UserID: 1}
	bob := model.Scope{UserID: 2}

	created, _ := r.CreateTask(ctx, alice, repo.CreateTaskOptions{Title: "alice task"})

	got, err := r.GetOneTask(ctx, bob, created.ID)
	if err != nil {
		t.Fatalf("GetOneTask: %v", err)
	}
	if got.ID != 0 {
		t.Errorf("expected zero-value task for cross-user access, got %+v", got)
	}

	if err := r.DeleteTask(ctx, bob, created.ID); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	got, _ = r.GetOneTask(ctx, alice, created.ID)
	if got.ID != created.ID {
		t.Errorf("cross-user delete should not remove the task")
	}
}

func TestUpdateKeepsEmptyFields(t *testing.T) {
	r := memory.New()
	ctx := context.Background()
	sc := model.Scope{UserID: 1}

	created, _ := r.CreateTask(ctx, sc, repo.CreateTaskOptions{Title: "title", Description: "desc"})

	updated, err := r.UpdateTask(ctx, sc, repo.UpdateTaskOptions{ID: created.ID, Title: "new title"})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if updated.Title != "new title" {
		t.Errorf("expected title updated, got %q", updated.Title)
	}
	if updated.Description != "desc" {
		t.Errorf("expected description kept, got %q", updated.Description)
	}
}

func TestUpdateCompleted(t *testing.T) {
	r := memory.New()
	ctx := context.Background()
	sc := model.Scope{UserID: 1}

	created, _ := r.CreateTask(ctx, sc, repo.CreateTaskOptions{Title: "t"})

	done := true
	updated, err := r.UpdateTask(ctx, sc, repo.UpdateTaskOptions{ID: created.ID, Completed: &done})
	if err != nil {
		t.Fatalf("UpdateTask: %v", err)
	}
	if !updated.Completed {
		t.Errorf("expected task completed")
	}

	missing, _ := r.UpdateTask(ctx, sc, repo.UpdateTaskOptions{ID: 999, Completed: &done})
	if missing.ID != 0 {
		t.Errorf("expected zero-value for missing task")
	}
}
