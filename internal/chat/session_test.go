package chat

import (
	"errors"
	"testing"
	"time"

	"ayurvaid/internal/api"
)

var testNow = time.Date(2026, 8, 28, 10, 30, 0, 123456789, time.UTC)

func newTestSession(adopted string) *Session {
	return NewSession(adopted, markerRenderer(), testNow)
}

func TestNewConversationIDDigitsOnly(t *testing.T) {
	id := NewConversationID(testNow)
	if len(id) == 0 || len(id) > 18 {
		t.Fatalf("unexpected id length %d: %q", len(id), id)
	}
	for i := 0; i < len(id); i++ {
		if id[i] < '0' || id[i] > '9' {
			t.Fatalf("expected digits only, got %q", id)
		}
	}
}

func TestNewConversationIDSortsByCreation(t *testing.T) {
	earlier := NewConversationID(testNow)
	later := NewConversationID(testNow.Add(2 * time.Second))
	if !(earlier < later) {
		t.Fatalf("expected lexical ordering by creation time: %q vs %q", earlier, later)
	}
}

func TestNewSessionAdoptsExternalID(t *testing.T) {
	s := newTestSession("  conv-42  ")
	if s.ID != "conv-42" {
		t.Fatalf("expected adopted id, got %q", s.ID)
	}
	if !s.Adopted {
		t.Fatal("expected session to be marked adopted")
	}
}

func TestNewSessionMintsID(t *testing.T) {
	s := newTestSession("")
	if s.ID == "" || s.Adopted {
		t.Fatalf("expected minted id, got %q adopted=%v", s.ID, s.Adopted)
	}
}

func TestBeginLoadUnauthenticated(t *testing.T) {
	s := newTestSession("")
	_, fetch := s.BeginLoad("", testNow)
	if fetch {
		t.Fatal("expected no fetch without a token")
	}
	if len(s.Messages) != 1 {
		t.Fatalf("expected single login prompt, got %d messages", len(s.Messages))
	}
	if s.Messages[0].Sender != SenderBot || s.Messages[0].Text != loginPromptText {
		t.Fatalf("unexpected prompt message: %+v", s.Messages[0])
	}
	if s.Loading {
		t.Fatal("expected loading flag to stay clear")
	}
}

func TestApplyLoadEmptyConversationGetsWelcome(t *testing.T) {
	s := newTestSession("")
	epoch, fetch := s.BeginLoad("tok", testNow)
	if !fetch {
		t.Fatal("expected a fetch with a token present")
	}
	if !s.ApplyLoad(epoch, api.ChatHistory{}, nil, testNow) {
		t.Fatal("expected result to apply")
	}
	if len(s.Messages) != 1 || s.Messages[0].Text != welcomeText {
		t.Fatalf("expected welcome message, got %+v", s.Messages)
	}
	if s.Name != DefaultName {
		t.Fatalf("expected default name, got %q", s.Name)
	}
}

func TestApplyLoadRendersBotTextOnly(t *testing.T) {
	s := newTestSession("")
	epoch, _ := s.BeginLoad("tok", testNow)
	loaded := api.ChatHistory{
		ConversationName: "Sleep troubles",
		Chats: []api.ChatMessage{
			{Sender: "user", Message: "**raw** user text", Timestamp: "2026-08-28T10:00:00Z"},
			{Sender: "bot", Message: "try **ashwagandha**", Timestamp: "2026-08-28T10:00:05Z"},
		},
	}
	s.ApplyLoad(epoch, loaded, nil, testNow)
	if s.Name != "Sleep troubles" {
		t.Fatalf("expected server name, got %q", s.Name)
	}
	if s.Messages[0].Text != "**raw** user text" {
		t.Fatalf("user text must never be rendered, got %q", s.Messages[0].Text)
	}
	if s.Messages[1].Text != "try <b>ashwagandha</b>" {
		t.Fatalf("bot text should be rendered, got %q", s.Messages[1].Text)
	}
}

func TestApplyLoadIdempotent(t *testing.T) {
	loaded := api.ChatHistory{
		ConversationName: "Repeat",
		Chats: []api.ChatMessage{
			{Sender: "user", Message: "hello", Timestamp: "2026-08-28T10:00:00Z"},
			{Sender: "bot", Message: "hi", Timestamp: "2026-08-28T10:00:03Z"},
		},
	}
	first := newTestSession("conv-1")
	epoch, _ := first.BeginLoad("tok", testNow)
	first.ApplyLoad(epoch, loaded, nil, testNow)

	second := newTestSession("conv-1")
	epoch, _ = second.BeginLoad("tok", testNow)
	second.ApplyLoad(epoch, loaded, nil, testNow)

	if len(first.Messages) != len(second.Messages) {
		t.Fatalf("expected identical sequences, got %d vs %d", len(first.Messages), len(second.Messages))
	}
	for i := range first.Messages {
		if first.Messages[i] != second.Messages[i] {
			t.Fatalf("message %d differs: %+v vs %+v", i, first.Messages[i], second.Messages[i])
		}
	}
}

func TestApplyLoadFailureSubstitutesWelcome(t *testing.T) {
	s := newTestSession("")
	epoch, _ := s.BeginLoad("tok", testNow)
	if !s.ApplyLoad(epoch, api.ChatHistory{}, errors.New("boom"), testNow) {
		t.Fatal("expected failure outcome to apply")
	}
	if len(s.Messages) != 1 || s.Messages[0].Text != welcomeText {
		t.Fatalf("expected welcome substitute, got %+v", s.Messages)
	}
	if s.Loading {
		t.Fatal("expected loading flag cleared after failure")
	}
}

func TestApplyLoadDropsStaleResult(t *testing.T) {
	s := newTestSession("")
	epoch, _ := s.BeginLoad("tok", testNow)
	if !s.SwitchTo("other-conv") {
		t.Fatal("expected switch to a different conversation")
	}
	stale := api.ChatHistory{Chats: []api.ChatMessage{{Sender: "bot", Message: "old"}}}
	if s.ApplyLoad(epoch, stale, nil, testNow) {
		t.Fatal("stale load result must not apply")
	}
	if len(s.Messages) != 0 {
		t.Fatalf("stale result leaked into state: %+v", s.Messages)
	}
}

func TestBeginSendEmptyInputIsNoOp(t *testing.T) {
	s := newTestSession("")
	for _, input := range []string{"", "   ", "\n\t "} {
		if _, _, ok := s.BeginSend(input, testNow); ok {
			t.Fatalf("expected no-op for input %q", input)
		}
	}
	if len(s.Messages) != 0 || s.Loading {
		t.Fatalf("no-op send must not change state: %+v loading=%v", s.Messages, s.Loading)
	}
}

func TestSendCycleSuccess(t *testing.T) {
	s := newTestSession("")
	before := len(s.Messages)

	text, epoch, ok := s.BeginSend("  I have a headache  ", testNow)
	if !ok || text != "I have a headache" {
		t.Fatalf("unexpected begin-send result: %q ok=%v", text, ok)
	}
	if len(s.Messages) != before+1 {
		t.Fatalf("expected exactly one optimistic message, got %d", len(s.Messages)-before)
	}
	last := s.Messages[len(s.Messages)-1]
	if last.Sender != SenderUser || last.Text != "I have a headache" {
		t.Fatalf("unexpected optimistic message: %+v", last)
	}
	if !s.Loading {
		t.Fatal("expected loading flag while reply is in flight")
	}

	refreshName, applied := s.ApplySend(epoch, "rest and **hydrate**", nil, testNow)
	if !applied {
		t.Fatal("expected reply to apply")
	}
	if !refreshName {
		t.Fatal("new conversations should trigger a name refresh")
	}
	if len(s.Messages) != before+2 {
		t.Fatalf("expected exactly two messages per send cycle, got %d", len(s.Messages)-before)
	}
	reply := s.Messages[len(s.Messages)-1]
	if reply.Sender != SenderBot || reply.Text != "rest and <b>hydrate</b>" {
		t.Fatalf("unexpected reply message: %+v", reply)
	}
	if s.Loading {
		t.Fatal("expected loading flag cleared after reply")
	}
}

func TestSendCycleFailureKeepsOptimisticMessage(t *testing.T) {
	s := newTestSession("")
	_, epoch, _ := s.BeginSend("hello", testNow)

	refreshName, applied := s.ApplySend(epoch, "", errors.New("backend down"), testNow)
	if !applied {
		t.Fatal("expected failure outcome to apply")
	}
	if refreshName {
		t.Fatal("failed sends must not trigger a name refresh")
	}
	if len(s.Messages) != 2 {
		t.Fatalf("expected user message plus error message, got %d", len(s.Messages))
	}
	if s.Messages[0].Sender != SenderUser || s.Messages[0].Text != "hello" {
		t.Fatalf("optimistic message must survive failure: %+v", s.Messages[0])
	}
	if s.Messages[1].Text != sendFailedText {
		t.Fatalf("expected error message, got %+v", s.Messages[1])
	}
	if s.Loading {
		t.Fatal("expected loading flag cleared after failure")
	}
}

func TestAdoptedConversationSkipsNameRefresh(t *testing.T) {
	s := newTestSession("resumed-conv")
	_, epoch, _ := s.BeginSend("hello again", testNow)
	refreshName, _ := s.ApplySend(epoch, "welcome back", nil, testNow)
	if refreshName {
		t.Fatal("resumed conversations must not re-fetch the name")
	}
}

func TestApplySendDropsStaleResult(t *testing.T) {
	s := newTestSession("")
	_, epoch, _ := s.BeginSend("hello", testNow)
	s.StartNew(testNow.Add(time.Minute))
	if _, applied := s.ApplySend(epoch, "late reply", nil, testNow); applied {
		t.Fatal("stale send result must not apply")
	}
	if len(s.Messages) != 0 {
		t.Fatalf("stale reply leaked into state: %+v", s.Messages)
	}
}

func TestSwitchToResetsState(t *testing.T) {
	s := newTestSession("")
	epoch, _ := s.BeginLoad("tok", testNow)
	s.ApplyLoad(epoch, api.ChatHistory{ConversationName: "Old"}, nil, testNow)

	if s.SwitchTo(s.ID) {
		t.Fatal("switching to the active id should be a no-op")
	}
	if !s.SwitchTo("conv-next") {
		t.Fatal("expected switch to apply")
	}
	if s.ID != "conv-next" || !s.Adopted {
		t.Fatalf("unexpected identity after switch: %q adopted=%v", s.ID, s.Adopted)
	}
	if len(s.Messages) != 0 || s.Name != DefaultName || s.Loading {
		t.Fatalf("expected reset state after switch: %+v", s)
	}
}

func TestApplyName(t *testing.T) {
	s := newTestSession("")
	if !s.ApplyName(s.Epoch(), "  Digestive advice  ") {
		t.Fatal("expected name to apply")
	}
	if s.Name != "Digestive advice" {
		t.Fatalf("unexpected name: %q", s.Name)
	}
	if s.ApplyName(s.Epoch()-1, "stale") {
		t.Fatal("stale name must not apply")
	}
}
