package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestConversationSendsAuthAndRequestID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("unexpected auth header: %q", got)
		}
		if r.Header.Get("X-Request-ID") == "" {
			t.Error("expected a request id header")
		}
		if r.URL.Path != "/chats" {
			t.Errorf("unexpected path: %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("conversation_id"); got != "conv-1" {
			t.Errorf("unexpected conversation id: %q", got)
		}
		json.NewEncoder(w).Encode(ChatHistory{
			ConversationName: "Sleep troubles",
			Chats: []ChatMessage{
				{Sender: "user", Message: "hi", Timestamp: "2026-08-28T10:00:00Z", ConversationID: "conv-1"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	loaded, err := client.Conversation(context.Background(), "tok-123", "conv-1")
	if err != nil {
		t.Fatalf("conversation: %v", err)
	}
	if loaded.ConversationName != "Sleep troubles" || len(loaded.Chats) != 1 {
		t.Fatalf("unexpected response: %+v", loaded)
	}
}

func TestMissingTokenShortCircuits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request may be issued without a token")
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	if _, err := client.Conversation(context.Background(), "", "conv-1"); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := client.Conversations(context.Background(), "   "); !errors.Is(err, ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated for blank token, got %v", err)
	}
}

func TestStatusMapping(t *testing.T) {
	status := http.StatusUnauthorized
	var detail string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		if detail != "" {
			json.NewEncoder(w).Encode(map[string]string{"detail": detail})
		}
	}))
	defer server.Close()
	client := NewClient(server.URL, 5*time.Second)

	if _, err := client.Conversations(context.Background(), "tok"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}

	status = http.StatusNotFound
	if _, err := client.Conversations(context.Background(), "tok"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	status = http.StatusInternalServerError
	detail = "database error"
	_, err := client.Conversations(context.Background(), "tok")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if statusErr.Status != http.StatusInternalServerError || statusErr.Detail != "database error" {
		t.Fatalf("unexpected status error: %+v", statusErr)
	}
}

func TestPredictPostsUserInput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/predict" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			UserInput      string `json:"user_input"`
			ConversationID string `json:"conversation_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body.UserInput != "I have a headache" || body.ConversationID != "conv-9" {
			t.Errorf("unexpected body: %+v", body)
		}
		json.NewEncoder(w).Encode(PredictResult{Response: "rest well", ConversationID: "conv-9"})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	result, err := client.Predict(context.Background(), "tok", "conv-9", "I have a headache")
	if err != nil {
		t.Fatalf("predict: %v", err)
	}
	if result.Response != "rest well" {
		t.Fatalf("unexpected reply: %+v", result)
	}
}

func TestSearchChatsEscapesKeyword(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("keyword"); got != "head ache & more" {
			t.Errorf("unexpected keyword: %q", got)
		}
		json.NewEncoder(w).Encode([]ChatMessage{{Sender: "user", Message: "head ache & more"}})
	}))
	defer server.Close()

	client := NewClient(server.URL, 5*time.Second)
	matches, err := client.SearchChats(context.Background(), "tok", "head ache & more")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("unexpected matches: %+v", matches)
	}
}
