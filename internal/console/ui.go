package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
)

const menuDivider = "============================="

// Run drives the menu loop until the user exits or input ends.
func (ui *UI) Run(ctx context.Context) error {
	for {
		ui.printMenu()

		choice, ok := ui.readChoice()
		if !ok {
			ui.printGoodbye()
			return nil
		}

		switch choice {
		case 1:
			ui.handleAddTask(ctx)
		case 2:
			ui.handleViewTasks(ctx)
		case 3:
			ui.handleUpdateTask(ctx)
		case 4:
			ui.handleDeleteTask(ctx)
		case 5:
			ui.handleToggleStatus(ctx)
		case 6:
			ui.printGoodbye()
			return nil
		}
	}
}

func (ui *UI) printMenu() {
	fmt.Fprintln(ui.out, "\n"+menuDivider)
	fmt.Fprintln(ui.out, "      Todo App - Phase I")
	fmt.Fprintln(ui.out, menuDivider)
	fmt.Fprintln(ui.out)
	fmt.Fprintln(ui.out, "1. Add Task")
	fmt.Fprintln(ui.out, "2. View All Tasks")
	fmt.Fprintln(ui.out, "3. Update Task")
	fmt.Fprintln(ui.out, "4. Delete Task")
	fmt.Fprintln(ui.out, "5. Mark Complete/Incomplete")
	fmt.Fprintln(ui.out, "6. Exit")
	fmt.Fprintln(ui.out)
	fmt.Fprintln(ui.out, menuDivider)
}

func (ui *UI) printGoodbye() {
	fmt.Fprintln(ui.out, "\n"+menuDivider)
	fmt.Fprintln(ui.out, "   Thanks for using Todo App!")
	fmt.Fprintln(ui.out, "   All data will be lost.")
	fmt.Fprintln(ui.out, menuDivider)
}

// readLine returns the next input line; ok is false when input ends.
func (ui *UI) readLine(prompt string) (string, bool) {
	fmt.Fprint(ui.out, prompt)
	if !ui.in.Scan() {
		return "", false
	}
	return ui.in.Text(), true
}

// readChoice re-prompts until the user enters a number between 1 and 6.
func (ui *UI) readChoice() (int, bool) {
	for {
		line, ok := ui.readLine("Select an option (1-6): ")
		if !ok {
			return 0, false
		}

		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || choice < 1 || choice > 6 {
			fmt.Fprintln(ui.out, "✗ Error: Invalid choice. Please enter a number between 1 and 6.")
			continue
		}
		return choice, true
	}
}

// readTaskID re-prompts until the user enters a positive integer; ok is
// false when input ends.
func (ui *UI) readTaskID(prompt string) (int64, bool) {
	for {
		line, ok := ui.readLine(prompt)
		if !ok {
			return 0, false
		}

		id, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err != nil {
			fmt.Fprintln(ui.out, "✗ Error: Invalid ID format. Please enter a positive number")
			fmt.Fprintln(ui.out)
			continue
		}
		if id <= 0 {
			fmt.Fprintln(ui.out, "✗ Error: ID must be a positive number")
			fmt.Fprintln(ui.out)
			continue
		}
		return id, true
	}
}

func (ui *UI) pause() {
	ui.readLine("\nPress Enter to continue...")
	fmt.Fprintln(ui.out)
}

// formatTask renders a task on one line with a truncated description preview.
func formatTask(t model.Task) string {
	preview := ""
	if t.Description != "" {
		if len([]rune(t.Description)) > 50 {
			preview = fmt.Sprintf(" - %s...", string([]rune(t.Description)[:50]))
		} else {
			preview = fmt.Sprintf(" - %s", t.Description)
		}
	}
	return fmt.Sprintf("[%d] %s%s [%s]", t.ID, t.Title, preview, t.StatusLabel())
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func (ui *UI) handleAddTask(ctx context.Context) {
	fmt.Fprintln(ui.out, "\n--- Add New Task ---")

	var title string
	for {
		line, ok := ui.readLine("Enter task title: ")
		if !ok {
			return
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			fmt.Fprintln(ui.out, "✗ Error: Title cannot be empty")
			fmt.Fprintln(ui.out, "Please try again.")
			fmt.Fprintln(ui.out)
			continue
		}
		if len([]rune(trimmed)) > 200 {
			fmt.Fprintln(ui.out, "✗ Error: Title exceeds 200 characters")
			fmt.Fprintln(ui.out, "Please try again.")
			fmt.Fprintln(ui.out)
			continue
		}
		title = line
		break
	}

	description, ok := ui.readLine("Enter task description (optional, press Enter to skip): ")
	if !ok {
		return
	}

	created, err := ui.uc.Create(ctx, ui.sc, task.CreateTaskInput{
		Title:       title,
		Description: description,
	})
	if err != nil {
		if errors.Is(err, task.ErrDescriptionTooLong) {
			fmt.Fprintln(ui.out, "✗ Error: Description exceeds 1000 characters")
			fmt.Fprintln(ui.out, "Task not created.")
		} else {
			fmt.Fprintf(ui.out, "\n✗ Error: %v\n", err)
		}
		ui.pause()
		return
	}

	fmt.Fprintln(ui.out, "\n✓ Task added successfully!")
	fmt.Fprintf(ui.out, "  ID: %d\n", created.ID)
	fmt.Fprintf(ui.out, "  Title: %s\n", created.Title)
	fmt.Fprintf(ui.out, "  Description: %s\n", orNone(created.Description))
	fmt.Fprintf(ui.out, "  Status: %s\n", created.StatusLabel())

	ui.pause()
}

func (ui *UI) handleViewTasks(ctx context.Context) {
	fmt.Fprintln(ui.out, "\n--- All Tasks ---")
	fmt.Fprintln(ui.out)

	tasks, err := ui.uc.List(ctx, ui.sc)
	if err != nil {
		fmt.Fprintf(ui.out, "✗ Error: %v\n", err)
		ui.pause()
		return
	}

	if len(tasks) == 0 {
		fmt.Fprintln(ui.out, "No tasks found. Start by adding a task!")
		ui.pause()
		return
	}

	completeCount := 0
	for _, t := range tasks {
		fmt.Fprintln(ui.out, formatTask(t))
		fmt.Fprintf(ui.out, "    Created: %s\n", t.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Fprintln(ui.out)
		if t.Completed {
			completeCount++
		}
	}

	plural := "s"
	if len(tasks) == 1 {
		plural = ""
	}
	fmt.Fprintf(ui.out, "Total: %d task%s (%d complete, %d incomplete)\n",
		len(tasks), plural, completeCount, len(tasks)-completeCount)

	ui.pause()
}

func (ui *UI) handleUpdateTask(ctx context.Context) {
	fmt.Fprintln(ui.out, "\n--- Update Task ---")

	id, ok := ui.readTaskID("Enter task ID to update: ")
	if !ok {
		return
	}

	current, err := ui.uc.Get(ctx, ui.sc, id)
	if err != nil {
		fmt.Fprintln(ui.out, "\n✗ Error: Task not found. Please check the ID and try again.")
		ui.pause()
		return
	}

	fmt.Fprintln(ui.out, "\nCurrent task:")
	fmt.Fprintf(ui.out, "  %s\n", formatTask(current))
	fmt.Fprintln(ui.out)

	newTitle, ok := ui.readLine("Enter new title (or press Enter to keep current): ")
	if !ok {
		return
	}
	newDescription, ok := ui.readLine("Enter new description (or press Enter to keep current): ")
	if !ok {
		return
	}

	updated, err := ui.uc.Update(ctx, ui.sc, task.UpdateTaskInput{
		ID:          id,
		Title:       strings.TrimSpace(newTitle),
		Description: strings.TrimSpace(newDescription),
	})
	if err != nil {
		fmt.Fprintf(ui.out, "\n✗ Error: %v\n", err)
		ui.pause()
		return
	}

	fmt.Fprintln(ui.out, "\n✓ Task updated successfully!")
	fmt.Fprintf(ui.out, "  ID: %d\n", updated.ID)
	fmt.Fprintf(ui.out, "  Title: %s\n", updated.Title)
	fmt.Fprintf(ui.out, "  Description: %s\n", orNone(updated.Description))
	fmt.Fprintf(ui.out, "  Status: %s (unchanged)\n", updated.StatusLabel())

	ui.pause()
}

func (ui *UI) handleDeleteTask(ctx context.Context) {
	fmt.Fprintln(ui.out, "\n--- Delete Task ---")

	id, ok := ui.readTaskID("Enter task ID to delete: ")
	if !ok {
		return
	}

	target, err := ui.uc.Get(ctx, ui.sc, id)
	if err != nil {
		fmt.Fprintln(ui.out, "\n✗ Error: Task not found. No task was deleted.")
		ui.pause()
		return
	}

	if err := ui.uc.Delete(ctx, ui.sc, id); err != nil {
		fmt.Fprintf(ui.out, "\n✗ Error: %v\n", err)
		ui.pause()
		return
	}

	fmt.Fprintln(ui.out, "\n✓ Task deleted successfully!")
	fmt.Fprintf(ui.out, "  Deleted: [%d] %s\n", target.ID, target.Title)

	ui.pause()
}

func (ui *UI) handleToggleStatus(ctx context.Context) {
	fmt.Fprintln(ui.out, "\n--- Mark Task ---")

	id, ok := ui.readTaskID("Enter task ID: ")
	if !ok {
		return
	}

	toggled, err := ui.uc.ToggleCompletion(ctx, ui.sc, id)
	if err != nil {
		fmt.Fprintln(ui.out, "\n✗ Error: Task not found. Please check the ID and try again.")
		ui.pause()
		return
	}

	fmt.Fprintf(ui.out, "\n✓ Task marked as %s!\n", toggled.StatusLabel())
	fmt.Fprintf(ui.out, "  %s\n", formatTask(toggled))

	ui.pause()
}
