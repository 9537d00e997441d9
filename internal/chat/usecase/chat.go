package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"smart-todo/internal/chat"
	"smart-todo/internal/chat/repository"
	"smart-todo/internal/model"
	"smart-todo/internal/task"
	"smart-todo/pkg/response"
)

// SendMessage runs the full chat pipeline: classify the message, execute the
// resulting task action, log the exchange, and return the assistant's reply.
//
// Classifier failures degrade to a general apology rather than failing the
// request; the exchange is still logged. A store failure does fail the
// request, and then nothing is logged.
func (uc *implUseCase) SendMessage(ctx context.Context, sc model.Scope, message string) (chat.SendMessageOutput, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return chat.SendMessageOutput{}, chat.ErrEmptyMessage
	}

	cls, err := uc.classifier.Classify(ctx, message)
	if err != nil {
		uc.l.Warnf(ctx, "chat.usecase.SendMessage.classifier.Classify: %v", err)
		cls = model.ClassifiedMessage{
			Intent:     model.IntentGeneral,
			Confidence: 0.0,
			Response:   respClassifierDown,
		}
	}

	responseText, taskID, err := uc.dispatch(ctx, sc, cls)
	if err != nil {
		return chat.SendMessageOutput{}, err
	}

	if _, err := uc.repo.CreateChatMessage(ctx, sc, repository.CreateChatMessageOptions{
		Message:     message,
		BotResponse: responseText,
		Intent:      string(cls.Intent),
		Confidence:  cls.Confidence,
	}); err != nil {
		uc.l.Errorf(ctx, "chat.usecase.SendMessage.repo.CreateChatMessage: %v", err)
		return chat.SendMessageOutput{}, err
	}

	return chat.SendMessageOutput{
		Response:   responseText,
		Action:     cls.Intent,
		TaskID:     taskID,
		Confidence: cls.Confidence,
	}, nil
}

// dispatch executes the classified action and builds the reply text.
func (uc *implUseCase) dispatch(ctx context.Context, sc model.Scope, cls model.ClassifiedMessage) (string, *int64, error) {
	switch {
	case cls.Intent == model.IntentCreateTask && cls.TaskTitle != "":
		return uc.dispatchCreate(ctx, sc, cls)

	case cls.Intent == model.IntentListTasks:
		return uc.dispatchList(ctx, sc)

	case cls.Intent == model.IntentUpdateTask:
		return uc.dispatchUpdate(ctx, sc, cls)

	case cls.Intent == model.IntentDeleteTask:
		return uc.dispatchDelete(ctx, sc, cls)

	case cls.Intent == model.IntentMarkComplete, cls.Intent == model.IntentMarkIncomplete:
		return uc.dispatchMark(ctx, sc, cls)

	default:
		// General conversation, and create_task without an extracted title.
		if cls.Response != "" {
			return cls.Response, nil, nil
		}
		return respGeneralHelp, nil, nil
	}
}

func (uc *implUseCase) dispatchCreate(ctx context.Context, sc model.Scope, cls model.ClassifiedMessage) (string, *int64, error) {
	var dueDate *time.Time
	if cls.DueDate != "" {
		if resolved, ok := uc.dates.Resolve(cls.DueDate, time.Now()); ok {
			dueDate = &resolved
		}
	}

	created, err := uc.taskUC.Create(ctx, sc, task.CreateTaskInput{
		Title:       cls.TaskTitle,
		Description: cls.TaskDescription,
		Priority:    normalizePriority(cls.Priority),
		DueDate:     dueDate,
	})
	if err != nil {
		return "", nil, err
	}

	text := fmt.Sprintf(respTaskCreated, cls.TaskTitle)
	if dueDate != nil {
		text += fmt.Sprintf(respTaskCreatedDue, dueDate.Format(response.DateFormat))
	}
	return text, &created.ID, nil
}

func (uc *implUseCase) dispatchList(ctx context.Context, sc model.Scope) (string, *int64, error) {
	tasks, err := uc.taskUC.List(ctx, sc)
	if err != nil {
		return "", nil, err
	}

	if len(tasks) == 0 {
		return respNoTasks, nil, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, respTaskListHeader, len(tasks))
	b.WriteString("\n\n")
	for i, t := range tasks {
		glyph := glyphPending
		if t.Completed {
			glyph = glyphDone
		}
		fmt.Fprintf(&b, "%d. %s %s", i+1, glyph, t.Title)
		if t.DueDate != nil {
			fmt.Fprintf(&b, " (Due: %s)", t.DueDate.Format(response.DateFormat))
		}
		if i < len(tasks)-1 {
			b.WriteString("\n")
		}
	}
	return b.String(), nil, nil
}

func (uc *implUseCase) dispatchUpdate(ctx context.Context, sc model.Scope, cls model.ClassifiedMessage) (string, *int64, error) {
	if cls.TaskRef == "" {
		return respUpdateNeedsRef, nil, nil
	}

	target, text, err := uc.resolveRef(ctx, sc, cls.TaskRef)
	if err != nil || text != "" {
		return text, nil, err
	}

	updated, err := uc.taskUC.Update(ctx, sc, task.UpdateTaskInput{
		ID:          target.ID,
		Title:       cls.TaskTitle,
		Description: cls.TaskDescription,
	})
	if err != nil {
		return "", nil, err
	}

	return fmt.Sprintf(respTaskUpdated, cls.TaskTitle), &updated.ID, nil
}

func (uc *implUseCase) dispatchDelete(ctx context.Context, sc model.Scope, cls model.ClassifiedMessage) (string, *int64, error) {
	if cls.TaskRef == "" {
		return respDeleteNeedsRef, nil, nil
	}

	target, text, err := uc.resolveRef(ctx, sc, cls.TaskRef)
	if err != nil || text != "" {
		return text, nil, err
	}

	if err := uc.taskUC.Delete(ctx, sc, target.ID); err != nil {
		return "", nil, err
	}

	return fmt.Sprintf(respTaskDeleted, target.Title), nil, nil
}

func (uc *implUseCase) dispatchMark(ctx context.Context, sc model.Scope, cls model.ClassifiedMessage) (string, *int64, error) {
	if cls.TaskRef == "" {
		return respMarkNeedsRef, nil, nil
	}

	target, text, err := uc.resolveRef(ctx, sc, cls.TaskRef)
	if err != nil || text != "" {
		return text, nil, err
	}

	completed := cls.Intent == model.IntentMarkComplete
	if _, err := uc.taskUC.SetCompletion(ctx, sc, target.ID, completed); err != nil {
		return "", nil, err
	}

	statusWord := statusWordIncomplete
	if completed {
		statusWord = statusWordComplete
	}
	return fmt.Sprintf(respTaskMarked, target.Title, statusWord), &target.ID, nil
}

// resolveRef resolves a positional reference against a fresh task list.
// When the reference cannot be resolved, it returns the user-facing reply
// text instead of a task; the caller short-circuits on non-empty text.
func (uc *implUseCase) resolveRef(ctx context.Context, sc model.Scope, ref string) (model.Task, string, error) {
	tasks, err := uc.taskUC.List(ctx, sc)
	if err != nil {
		return model.Task{}, "", err
	}

	target, n, err := resolveTaskRef(ref, tasks)
	switch {
	case errors.Is(err, errInvalidTaskRef):
		return model.Task{}, respInvalidTaskRef, nil
	case errors.Is(err, errTaskRefOutOfRange):
		return model.Task{}, fmt.Sprintf(respTaskRefNotFound, n), nil
	}

	return target, "", nil
}

// normalizePriority keeps only recognized priority labels; anything else is
// dropped so the task layer applies its default.
func normalizePriority(priority string) string {
	switch priority {
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
		return priority
	default:
		return ""
	}
}

// History returns the user's most recent exchanges, oldest first.
func (uc *implUseCase) History(ctx context.Context, sc model.Scope, limit int) ([]model.ChatMessage, error) {
	if limit <= 0 {
		limit = uc.historyLimit
	}

	messages, err := uc.repo.ListChatMessages(ctx, sc, limit)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.History.repo.ListChatMessages: %v", err)
		return nil, err
	}

	// Stored newest first; present oldest first.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// ClearHistory deletes all of the user's exchanges.
func (uc *implUseCase) ClearHistory(ctx context.Context, sc model.Scope) (int64, error) {
	deleted, err := uc.repo.DeleteChatMessages(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "chat.usecase.ClearHistory.repo.DeleteChatMessages: %v", err)
		return 0, err
	}
	return deleted, nil
}
