package model

import "time"

// Intent is a label classifying what the user asked the assistant to do.
type Intent string

const (
	IntentCreateTask     Intent = "create_task"
	IntentListTasks      Intent = "list_tasks"
	IntentUpdateTask     Intent = "update_task"
	IntentDeleteTask     Intent = "delete_task"
	IntentMarkComplete   Intent = "mark_complete"
	IntentMarkIncomplete Intent = "mark_incomplete"
	IntentGeneral        Intent = "general"
)

// ChatMessage is one logged exchange between a user and the assistant.
// Entries are append-only; they are only ever removed in bulk by a
// clear-history request.
type ChatMessage struct {
	ID          int64
	UserID      int64
	Message     string
	BotResponse string
	Intent      string
	Confidence  float64 // [0.0, 1.0], 0.0 when the classifier omitted it
	CreatedAt   time.Time
}

// ClassifiedMessage is the classifier's structured reading of one user
// message. It is consumed once by the dispatcher and never persisted; only
// its effect (the ChatMessage entry) is.
//
// TaskRef is a 1-based ordinal into the user's creation-ordered task list,
// not a task ID. It is resolved against a fresh list at dispatch time.
type ClassifiedMessage struct {
	Intent          Intent
	Confidence      float64
	TaskTitle       string
	TaskDescription string
	DueDate         string // natural-language phrase, e.g. "tomorrow"
	Priority        string
	TaskRef         string
	Response        string // canned reply suggested by the classifier
}
