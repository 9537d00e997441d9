package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"smart-todo/internal/model"
	"smart-todo/pkg/openai"
)

// classifyOutput is the JSON shape the model is asked to produce.
type classifyOutput struct {
	Intent          string   `json:"intent"`
	Confidence      *float64 `json:"confidence"`
	TaskTitle       string   `json:"task_title"`
	TaskDescription string   `json:"task_description"`
	DueDate         string   `json:"due_date"`
	Priority        string   `json:"priority"`
	TaskID          string   `json:"task_id"`
	Response        string   `json:"response"`
}

// Classify sends the message to the model and parses its structured reply.
//
// A transport or API failure is returned as an error. A reply that is not
// valid JSON is not an error: the raw text is treated as a conversational
// answer and mapped to the general intent.
func (r *LLMClassifier) Classify(ctx context.Context, message string) (model.ClassifiedMessage, error) {
	resp, err := r.llm.ChatCompletion(ctx, &openai.ChatRequest{
		Messages: []openai.Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: message},
		},
		Temperature: classifyTemperature,
		MaxTokens:   r.maxTokens,
	})
	if err != nil {
		return model.ClassifiedMessage{}, fmt.Errorf("%s: %w", logPrefixClassify, err)
	}

	responseText := strings.TrimSpace(resp.FirstContent())

	var output classifyOutput
	if err := json.Unmarshal([]byte(sanitizeJSONResponse(responseText)), &output); err != nil {
		r.l.Warnf(ctx, "%s: failed to parse JSON, falling back to general: %v", logPrefixClassify, err)
		return model.ClassifiedMessage{
			Intent:     model.IntentGeneral,
			Confidence: fallbackConfidence,
			Response:   responseText,
		}, nil
	}

	result := model.ClassifiedMessage{
		Intent:          normalizeIntent(output.Intent),
		Confidence:      defaultConfidence,
		TaskTitle:       output.TaskTitle,
		TaskDescription: output.TaskDescription,
		DueDate:         output.DueDate,
		Priority:        output.Priority,
		TaskRef:         output.TaskID,
		Response:        output.Response,
	}
	if output.Confidence != nil {
		result.Confidence = *output.Confidence
	}
	if result.Response == "" {
		result.Response = defaultResponse
	}

	r.l.Infof(ctx, "%s: classified as %s (confidence: %.2f)", logPrefixClassify, result.Intent, result.Confidence)
	return result, nil
}

// sanitizeJSONResponse strips markdown code fences the model sometimes wraps
// around its JSON (```json ... ```).
func sanitizeJSONResponse(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}

// normalizeIntent maps the model's intent string onto a known label.
// Anything unrecognized is treated as general conversation.
func normalizeIntent(s string) model.Intent {
	switch model.Intent(strings.ToLower(strings.TrimSpace(s))) {
	case model.IntentCreateTask:
		return model.IntentCreateTask
	case model.IntentListTasks:
		return model.IntentListTasks
	case model.IntentUpdateTask:
		return model.IntentUpdateTask
	case model.IntentDeleteTask:
		return model.IntentDeleteTask
	case model.IntentMarkComplete:
		return model.IntentMarkComplete
	case model.IntentMarkIncomplete:
		return model.IntentMarkIncomplete
	default:
		return model.IntentGeneral
	}
}
