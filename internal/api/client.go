// Package api is the HTTP/JSON client for the Ayurvaid backend. It owns no
// state beyond the transport: tokens are supplied per call and revalidated
// before every request.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ChatMessage is a stored message as the backend reports it.
type ChatMessage struct {
	Sender         string `json:"sender"`
	Message        string `json:"message"`
	Timestamp      string `json:"timestamp"`
	ConversationID string `json:"conversation_id"`
}

// ChatHistory is the response of GET /chats for one conversation.
type ChatHistory struct {
	Chats            []ChatMessage `json:"chats"`
	ConversationName string        `json:"conversation_name"`
}

// ConversationHead is one entry of GET /conversations. LatestTimestamp is the
// store-reported latest activity, not recomputed client-side.
type ConversationHead struct {
	ConversationID  string `json:"conversation_id"`
	LatestTimestamp string `json:"latest_timestamp"`
	Name            string `json:"name"`
}

// PredictResult is the assistant reply returned by POST /predict.
type PredictResult struct {
	Response       string `json:"response"`
	ConversationID string `json:"conversation_id"`
}

type predictRequest struct {
	UserInput      string `json:"user_input"`
	ConversationID string `json:"conversation_id"`
}

// Client talks to one backend instance.
type Client struct {
	base string
	http *http.Client
}

// NewClient builds a client for the backend at base. Timeout bounds every
// request; zero means no client-side bound.
func NewClient(base string, timeout time.Duration) *Client {
	return &Client{
		base: strings.TrimRight(strings.TrimSpace(base), "/"),
		http: &http.Client{Timeout: timeout},
	}
}

// Conversation fetches the ordered message list and display name for one
// conversation.
func (c *Client) Conversation(ctx context.Context, token, conversationID string) (ChatHistory, error) {
	var history ChatHistory
	query := url.Values{"conversation_id": {conversationID}}
	if err := c.get(ctx, token, "/chats", query, &history); err != nil {
		return ChatHistory{}, fmt.Errorf("load conversation: %w", err)
	}
	return history, nil
}

// Predict sends the user's text and returns the assistant reply.
func (c *Client) Predict(ctx context.Context, token, conversationID, input string) (PredictResult, error) {
	var result PredictResult
	body := predictRequest{UserInput: input, ConversationID: conversationID}
	if err := c.post(ctx, token, "/predict", body, &result); err != nil {
		return PredictResult{}, fmt.Errorf("predict: %w", err)
	}
	return result, nil
}

// Conversations lists every conversation on the account, newest activity
// first as the backend orders them.
func (c *Client) Conversations(ctx context.Context, token string) ([]ConversationHead, error) {
	var heads []ConversationHead
	if err := c.get(ctx, token, "/conversations", nil, &heads); err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	return heads, nil
}

// SearchChats returns the flat list of messages matching keyword across all
// of the account's conversations.
func (c *Client) SearchChats(ctx context.Context, token, keyword string) ([]ChatMessage, error) {
	var matches []ChatMessage
	query := url.Values{"keyword": {keyword}}
	if err := c.get(ctx, token, "/search_chats", query, &matches); err != nil {
		return nil, fmt.Errorf("search chats: %w", err)
	}
	return matches, nil
}

func (c *Client) get(ctx context.Context, token, path string, query url.Values, out any) error {
	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	return c.do(ctx, token, http.MethodGet, target, nil, out)
}

func (c *Client) post(ctx context.Context, token, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.do(ctx, token, http.MethodPost, c.base+path, payload, out)
}

func (c *Client) do(ctx context.Context, token, method, target string, body []byte, out any) error {
	// The token check must happen before any request leaves the process; a
	// logged-out session never reaches the network.
	if strings.TrimSpace(token) == "" {
		return ErrUnauthenticated
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusToError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func statusToError(resp *http.Response) error {
	detail := readDetail(resp.Body)
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return &StatusError{Status: resp.StatusCode, Detail: detail}
	}
}

func readDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return strings.TrimSpace(string(raw))
}
