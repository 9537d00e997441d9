package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart-todo/pkg/openai"
)

func TestNew(t *testing.T) {
	_, err := openai.New(openai.Config{})
	if err == nil {
		t.Fatalf("expected error for missing API key")
	}

	c, err := openai.New(openai.Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != openai.DefaultModel {
		t.Errorf("expected default model %q, got %q", openai.DefaultModel, c.Model())
	}
}

func TestChatCompletion(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}

		var req openai.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		if req.Model == "" {
			t.Errorf("expected model to be filled in")
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "hello"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 5, "completion_tokens": 1, "total_tokens": 6}
		}`))
	}))
	defer ts.Close()

	c, _ := openai.New(openai.Config{APIKey: "test-key", BaseURL: ts.URL})

	resp, err := c.ChatCompletion(context.Background(), &openai.ChatRequest{
		Messages: []openai.Message{{Role: "user", Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.FirstContent() != "hello" {
		t.Errorf("expected first content %q, got %q", "hello", resp.FirstContent())
	}
}

func TestChatCompletionAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	c, _ := openai.New(openai.Config{APIKey: "test-key", BaseURL: ts.URL})

	_, err := c.ChatCompletion(context.Background(), &openai.ChatRequest{
		Messages: []openai.Message{{Role: "user", Content: "hi"}},
	})
	if err == nil {
		t.Fatalf("expected error on API failure")
	}
}

func TestFirstContentEmpty(t *testing.T) {
	var resp *openai.ChatResponse
	if resp.FirstContent() != "" {
		t.Errorf("expected empty content on nil response")
	}
	if (&openai.ChatResponse{}).FirstContent() != "" {
		t.Errorf("expected empty content on empty choices")
	}
}
