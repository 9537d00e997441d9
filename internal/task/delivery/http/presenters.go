package http

import (
	"errors"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
	"smart-todo/pkg/response"
)

var errInvalidDueDate = errors.New("due_date must be RFC3339 or YYYY-MM-DD")

// parseDueDate accepts either a full RFC3339 timestamp or a plain date.
func parseDueDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(response.DateFormat, raw); err == nil {
		return t, nil
	}
	return time.Time{}, errInvalidDueDate
}

// --- Request DTOs ---

type createReq struct {
	Title       string  `json:"title"       binding:"required"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"    binding:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"due_date"`

	dueDate *time.Time
}

func (r *createReq) validate() error {
	if r.DueDate == nil || *r.DueDate == "" {
		return nil
	}
	t, err := parseDueDate(*r.DueDate)
	if err != nil {
		return err
	}
	r.dueDate = &t
	return nil
}

func (r createReq) toInput() task.CreateTaskInput {
	return task.CreateTaskInput{
		Title:       r.Title,
		Description: r.Description,
		Priority:    r.Priority,
		DueDate:     r.dueDate,
	}
}

// ---

type updateReq struct {
	ID          int64  `json:"-"` // populated from URI param
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (r updateReq) toInput() task.UpdateTaskInput {
	return task.UpdateTaskInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
	}
}

// ---

type completionReq struct {
	ID        int64 `json:"-"` // populated from URI param
	Completed *bool `json:"completed" binding:"required"`
}

// --- Response DTOs ---

type taskResp struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"due_date"`
	Completed   bool    `json:"completed"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
}

func newTaskResp(t model.Task) taskResp {
	var due *string
	if t.DueDate != nil {
		s := t.DueDate.Format(response.DateFormat)
		due = &s
	}
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		DueDate:     due,
		Completed:   t.Completed,
		Status:      t.StatusLabel(),
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func newListResp(tasks []model.Task) listResp {
	items := make([]taskResp, len(tasks))
	for i, t := range tasks {
		items[i] = newTaskResp(t)
	}
	return listResp{Tasks: items, Total: len(items)}
}
