package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"smart-todo/internal/task/repository/memory"
	taskusecase "smart-todo/internal/task/usecase"
	pkgLog "smart-todo/pkg/log"
)

// run feeds the scripted input lines to a fresh UI and returns everything it
// printed.
func run(t *testing.T, lines ...string) string {
	t.Helper()

	uc := taskusecase.New(pkgLog.NewNop(), memory.New(), nil, "", "UTC")

	var out bytes.Buffer
	ui := New(pkgLog.NewNop(), uc, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out)

	if err := ui.Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String()
}

func TestExitPrintsGoodbye(t *testing.T) {
	out := run(t, "6")

	if !strings.Contains(out, "Thanks for using Todo App!") {
		t.Errorf("missing goodbye message:\n%s", out)
	}
	if !strings.Contains(out, "All data will be lost.") {
		t.Errorf("missing data-loss warning:\n%s", out)
	}
}

func TestInputEndBehavesLikeExit(t *testing.T) {
	out := run(t) // single empty line, then EOF at the choice prompt

	if !strings.Contains(out, "Thanks for using Todo App!") {
		t.Errorf("missing goodbye message:\n%s", out)
	}
}

func TestInvalidChoiceReprompts(t *testing.T) {
	out := run(t, "abc", "9", "6")

	if strings.Count(out, "✗ Error: Invalid choice. Please enter a number between 1 and 6.") != 2 {
		t.Errorf("want two invalid-choice errors:\n%s", out)
	}
}

func TestAddAndViewTask(t *testing.T) {
	out := run(t,
		"1",            // Add Task
		"Buy milk",     // title
		"2 liters",     // description
		"",             // press enter to continue
		"2",            // View All Tasks
		"",             // press enter to continue
		"6",            // Exit
	)

	if !strings.Contains(out, "✓ Task added successfully!") {
		t.Errorf("missing add confirmation:\n%s", out)
	}
	if !strings.Contains(out, "[1] Buy milk - 2 liters [Incomplete]") {
		t.Errorf("missing task line:\n%s", out)
	}
	if !strings.Contains(out, "Total: 1 task (0 complete, 1 incomplete)") {
		t.Errorf("missing singular summary:\n%s", out)
	}
}

func TestAddTaskRepromptsOnEmptyTitle(t *testing.T) {
	out := run(t,
		"1",
		"   ",       // blank title
		"Real task", // valid retry
		"",          // description skip
		"",          // continue
		"6",
	)

	if !strings.Contains(out, "✗ Error: Title cannot be empty") {
		t.Errorf("missing empty-title error:\n%s", out)
	}
	if !strings.Contains(out, "Title: Real task") {
		t.Errorf("retry did not create the task:\n%s", out)
	}
	if !strings.Contains(out, "Description: (none)") {
		t.Errorf("empty description should show (none):\n%s", out)
	}
}

func TestAddTaskRejectsLongTitle(t *testing.T) {
	out := run(t,
		"1",
		strings.Repeat("x", 201),
		"ok title",
		"",
		"",
		"6",
	)

	if !strings.Contains(out, "✗ Error: Title exceeds 200 characters") {
		t.Errorf("missing long-title error:\n%s", out)
	}
}

func TestAddTaskRejectsLongDescription(t *testing.T) {
	out := run(t,
		"1",
		"fine title",
		strings.Repeat("d", 1001),
		"", // continue
		"6",
	)

	if !strings.Contains(out, "✗ Error: Description exceeds 1000 characters") {
		t.Errorf("missing long-description error:\n%s", out)
	}
	if !strings.Contains(out, "Task not created.") {
		t.Errorf("missing not-created notice:\n%s", out)
	}
}

func TestViewEmpty(t *testing.T) {
	out := run(t, "2", "", "6")

	if !strings.Contains(out, "No tasks found. Start by adding a task!") {
		t.Errorf("missing empty listing message:\n%s", out)
	}
}

func TestUpdateTaskKeepsCurrentOnEmptyInput(t *testing.T) {
	out := run(t,
		"1", "Original", "keep this desc", "", // add
		"3",  // Update Task
		"1",  // task ID
		"Renamed", // new title
		"",   // keep description
		"",   // continue
		"6",
	)

	if !strings.Contains(out, "✓ Task updated successfully!") {
		t.Errorf("missing update confirmation:\n%s", out)
	}
	if !strings.Contains(out, "Title: Renamed") {
		t.Errorf("title was not updated:\n%s", out)
	}
	if !strings.Contains(out, "Description: keep this desc") {
		t.Errorf("description should be kept:\n%s", out)
	}
	if !strings.Contains(out, "Status: Incomplete (unchanged)") {
		t.Errorf("missing unchanged status line:\n%s", out)
	}
}

func TestUpdateMissingTask(t *testing.T) {
	out := run(t, "3", "42", "", "6")

	if !strings.Contains(out, "✗ Error: Task not found. Please check the ID and try again.") {
		t.Errorf("missing not-found error:\n%s", out)
	}
}

func TestDeleteTask(t *testing.T) {
	out := run(t,
		"1", "Doomed", "", "", // add
		"4", "1", "", // delete task 1
		"6",
	)

	if !strings.Contains(out, "✓ Task deleted successfully!") {
		t.Errorf("missing delete confirmation:\n%s", out)
	}
	if !strings.Contains(out, "Deleted: [1] Doomed") {
		t.Errorf("missing deleted task line:\n%s", out)
	}
}

func TestDeleteMissingTask(t *testing.T) {
	out := run(t, "4", "7", "", "6")

	if !strings.Contains(out, "✗ Error: Task not found. No task was deleted.") {
		t.Errorf("missing not-found error:\n%s", out)
	}
}

func TestToggleStatus(t *testing.T) {
	out := run(t,
		"1", "Flip me", "", "", // add
		"5", "1", "", // toggle
		"5", "1", "", // toggle back
		"6",
	)

	if !strings.Contains(out, "✓ Task marked as Complete!") {
		t.Errorf("missing complete confirmation:\n%s", out)
	}
	if !strings.Contains(out, "✓ Task marked as Incomplete!") {
		t.Errorf("missing incomplete confirmation:\n%s", out)
	}
}

func TestTaskIDRepromptsOnBadInput(t *testing.T) {
	out := run(t,
		"5",     // Mark Complete/Incomplete
		"zero",  // not a number
		"-3",    // not positive
		"1",     // valid but no such task
		"",      // continue
		"6",
	)

	if !strings.Contains(out, "✗ Error: Invalid ID format. Please enter a positive number") {
		t.Errorf("missing format error:\n%s", out)
	}
	if !strings.Contains(out, "✗ Error: ID must be a positive number") {
		t.Errorf("missing positive error:\n%s", out)
	}
	if !strings.Contains(out, "✗ Error: Task not found. Please check the ID and try again.") {
		t.Errorf("missing not-found error:\n%s", out)
	}
}
