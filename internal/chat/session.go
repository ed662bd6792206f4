// Package chat holds the conversation session state machine: identity
// resolution, message synchronization against the remote store, and the
// optimistic send path. A Session is owned by a single chat view and must be
// driven from one goroutine (the UI update loop); I/O happens elsewhere and
// results are handed back through the Apply methods, which discard anything
// stale via the epoch guard.
package chat

import (
	"strings"
	"time"

	"ayurvaid/internal/api"
)

const (
	SenderUser = "user"
	SenderBot  = "bot"
)

const (
	// DefaultName labels a conversation until the backend assigns one.
	DefaultName = "New Conversation"

	welcomeText     = "\U0001F44B Welcome to Ayurv-aid! How can I assist you today?"
	loginPromptText = "Please log in to start chatting."
	sendFailedText  = "❌ Sorry, something went wrong."
)

// Message is one entry of the live conversation. Bot text is already
// rendered; user text is always raw.
type Message struct {
	Sender    string
	Text      string
	Timestamp string
}

// NewConversationID mints a fresh identifier from now: the digits of the UTC
// timestamp, truncated to 18 characters. Lexically sortable by creation time.
func NewConversationID(now time.Time) string {
	iso := now.UTC().Format(time.RFC3339Nano)
	digits := make([]byte, 0, len(iso))
	for i := 0; i < len(iso); i++ {
		if iso[i] >= '0' && iso[i] <= '9' {
			digits = append(digits, iso[i])
		}
	}
	if len(digits) > 18 {
		digits = digits[:18]
	}
	return string(digits)
}

// Session is the live chat state for one conversation view.
type Session struct {
	ID      string
	Adopted bool
	Name    string

	Messages []Message
	Loading  bool

	epoch    int
	renderer *Renderer
}

// NewSession adopts adoptedID when supplied, otherwise mints a new identifier
// from now.
func NewSession(adoptedID string, renderer *Renderer, now time.Time) *Session {
	s := &Session{
		Name:     DefaultName,
		renderer: renderer,
	}
	if trimmed := strings.TrimSpace(adoptedID); trimmed != "" {
		s.ID = trimmed
		s.Adopted = true
	} else {
		s.ID = NewConversationID(now)
	}
	return s
}

// Epoch identifies the current conversation generation. Results produced for
// an older epoch must not be applied.
func (s *Session) Epoch() int {
	return s.epoch
}

// SwitchTo adopts an externally supplied identifier, discarding all current
// message state. Returns false when id is empty or already active.
func (s *Session) SwitchTo(id string) bool {
	trimmed := strings.TrimSpace(id)
	if trimmed == "" || trimmed == s.ID {
		return false
	}
	s.ID = trimmed
	s.Adopted = true
	s.reset()
	return true
}

// StartNew abandons the current conversation and mints a fresh identifier.
func (s *Session) StartNew(now time.Time) {
	s.ID = NewConversationID(now)
	s.Adopted = false
	s.reset()
}

func (s *Session) reset() {
	s.Name = DefaultName
	s.Messages = nil
	s.Loading = false
	s.epoch++
}

// BeginLoad starts synchronizing against the remote store. Without a token no
// request may be issued: the session is populated with a login prompt and
// fetch is false (the caller surfaces the authentication-required signal).
// Otherwise the caller must fetch and hand the result to ApplyLoad together
// with the returned epoch.
func (s *Session) BeginLoad(token string, now time.Time) (epoch int, fetch bool) {
	if strings.TrimSpace(token) == "" {
		s.Name = DefaultName
		s.Messages = []Message{s.synthetic(loginPromptText, now)}
		s.Loading = false
		return s.epoch, false
	}
	s.Loading = true
	return s.epoch, true
}

// ApplyLoad installs a fetch result. Stale results (epoch mismatch) are
// dropped and the session is left untouched. A failed load substitutes the
// welcome state so the view stays usable for composing; the caller already
// holds err for notification.
func (s *Session) ApplyLoad(epoch int, history api.ChatHistory, err error, now time.Time) bool {
	if epoch != s.epoch {
		return false
	}
	s.Loading = false
	if err != nil {
		s.Name = DefaultName
		s.Messages = []Message{s.synthetic(welcomeText, now)}
		return true
	}
	if name := strings.TrimSpace(history.ConversationName); name != "" {
		s.Name = name
	} else {
		s.Name = DefaultName
	}
	if len(history.Chats) == 0 {
		s.Messages = []Message{s.synthetic(welcomeText, now)}
		return true
	}
	messages := make([]Message, 0, len(history.Chats))
	for _, stored := range history.Chats {
		text := stored.Message
		if stored.Sender == SenderBot {
			text = s.renderer.Render(text)
		}
		messages = append(messages, Message{
			Sender:    stored.Sender,
			Text:      text,
			Timestamp: stored.Timestamp,
		})
	}
	s.Messages = messages
	return true
}

// BeginSend starts a send cycle. Empty or whitespace-only input is a no-op,
// as is a send while another request is in flight. On success the trimmed
// text has been appended optimistically (sender=user, client-stamped) and the
// caller must issue the reply request, then call ApplySend.
func (s *Session) BeginSend(raw string, now time.Time) (text string, epoch int, ok bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || s.Loading {
		return "", s.epoch, false
	}
	s.Messages = append(s.Messages, Message{
		Sender:    SenderUser,
		Text:      trimmed,
		Timestamp: stamp(now),
	})
	s.Loading = true
	return trimmed, s.epoch, true
}

// ApplySend installs the reply outcome. A failure appends a visible error
// message and never rolls back the optimistic user message. refreshName is
// true when the caller should re-fetch the conversation to pick up the
// server-assigned display name, which only happens for conversations whose
// identifier was minted locally.
func (s *Session) ApplySend(epoch int, reply string, err error, now time.Time) (refreshName bool, applied bool) {
	if epoch != s.epoch {
		return false, false
	}
	s.Loading = false
	if err != nil {
		s.Messages = append(s.Messages, s.synthetic(sendFailedText, now))
		return false, true
	}
	s.Messages = append(s.Messages, Message{
		Sender:    SenderBot,
		Text:      s.renderer.Render(strings.TrimSpace(reply)),
		Timestamp: stamp(now),
	})
	return !s.Adopted, true
}

// ApplyName installs a refreshed display name.
func (s *Session) ApplyName(epoch int, name string) bool {
	if epoch != s.epoch {
		return false
	}
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		s.Name = trimmed
	} else {
		s.Name = DefaultName
	}
	return true
}

func (s *Session) synthetic(text string, now time.Time) Message {
	return Message{Sender: SenderBot, Text: text, Timestamp: stamp(now)}
}

func stamp(now time.Time) string {
	return now.UTC().Format(time.RFC3339)
}
