package usecase

import (
	"context"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/task"
	"smart-todo/internal/task/repository"
	"smart-todo/pkg/gcalendar"
)

func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateTaskInput) (model.Task, error) {
	title, err := validateTitle(input.Title)
	if err != nil {
		return model.Task{}, err
	}

	description, err := validateDescription(input.Description)
	if err != nil {
		return model.Task{}, err
	}

	priority, err := validatePriority(input.Priority)
	if err != nil {
		return model.Task{}, err
	}

	t, err := uc.repo.CreateTask(ctx, sc, repository.CreateTaskOptions{
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     input.DueDate,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create.repo.CreateTask: %v", err)
		return model.Task{}, err
	}

	uc.syncCalendarEvent(ctx, t)

	return t, nil
}

// syncCalendarEvent mirrors a due-dated task into Google Calendar.
// Failures are logged and swallowed, calendar sync never blocks task creation.
func (uc *implUseCase) syncCalendarEvent(ctx context.Context, t model.Task) {
	if uc.calendar == nil || t.DueDate == nil {
		return
	}

	start := *t.DueDate
	if _, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     t.Title,
		Description: t.Description,
		StartTime:   start,
		EndTime:     start.Add(time.Hour),
		Timezone:    uc.timezone,
	}); err != nil {
		uc.l.Warnf(ctx, "task.usecase.syncCalendarEvent: %v", err)
	}
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope) ([]model.Task, error) {
	tasks, err := uc.repo.ListTasks(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List.repo.ListTasks: %v", err)
		return nil, err
	}

	return tasks, nil
}

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, id int64) (model.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, sc, id)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Get.repo.GetOneTask: %v", err)
		return model.Task{}, err
	}

	if t.ID == 0 {
		return model.Task{}, task.ErrTaskNotFound
	}

	return t, nil
}

func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateTaskInput) (model.Task, error) {
	opts := repository.UpdateTaskOptions{ID: input.ID}

	if input.Title != "" {
		title, err := validateTitle(input.Title)
		if err != nil {
			return model.Task{}, err
		}
		opts.Title = title
	}

	if input.Description != "" {
		description, err := validateDescription(input.Description)
		if err != nil {
			return model.Task{}, err
		}
		opts.Description = description
	}

	t, err := uc.repo.UpdateTask(ctx, sc, opts)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Update.repo.UpdateTask: %v", err)
		return model.Task{}, err
	}

	if t.ID == 0 {
		return model.Task{}, task.ErrTaskNotFound
	}

	return t, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	t, err := uc.repo.GetOneTask(ctx, sc, id)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Delete.repo.GetOneTask: %v", err)
		return err
	}

	if t.ID == 0 {
		return task.ErrTaskNotFound
	}

	if err := uc.repo.DeleteTask(ctx, sc, id); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Delete.repo.DeleteTask: %v", err)
		return err
	}

	return nil
}

func (uc *implUseCase) ToggleCompletion(ctx context.Context, sc model.Scope, id int64) (model.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, sc, id)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.ToggleCompletion.repo.GetOneTask: %v", err)
		return model.Task{}, err
	}

	if t.ID == 0 {
		return model.Task{}, task.ErrTaskNotFound
	}

	completed := !t.Completed
	updated, err := uc.repo.UpdateTask(ctx, sc, repository.UpdateTaskOptions{
		ID:        id,
		Completed: &completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.ToggleCompletion.repo.UpdateTask: %v", err)
		return model.Task{}, err
	}

	return updated, nil
}

func (uc *implUseCase) SetCompletion(ctx context.Context, sc model.Scope, id int64, completed bool) (model.Task, error) {
	t, err := uc.repo.GetOneTask(ctx, sc, id)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.SetCompletion.repo.GetOneTask: %v", err)
		return model.Task{}, err
	}

	if t.ID == 0 {
		return model.Task{}, task.ErrTaskNotFound
	}

	updated, err := uc.repo.UpdateTask(ctx, sc, repository.UpdateTaskOptions{
		ID:        id,
		Completed: &completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.SetCompletion.repo.UpdateTask: %v", err)
		return model.Task{}, err
	}

	return updated, nil
}
