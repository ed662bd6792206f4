// Package history assembles the account-wide conversation overview: full
// aggregation for the history view and keyword search grouped back into
// per-conversation result sets. Both paths produce complete, wholesale
// replacements; a single failed constituent fetch fails the whole
// aggregation rather than surfacing a partial list.
package history

import (
	"context"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"ayurvaid/internal/api"
)

// Backend is the slice of the API client the aggregators consume.
type Backend interface {
	Conversations(ctx context.Context, token string) ([]api.ConversationHead, error)
	Conversation(ctx context.Context, token, conversationID string) (api.ChatHistory, error)
	SearchChats(ctx context.Context, token, keyword string) ([]api.ChatMessage, error)
}

// Summary is one conversation entry of the history or search view. Timestamp
// is the latest-activity value: store-reported on the aggregation path, the
// maximum matched-message timestamp on the search path.
type Summary struct {
	ConversationID string
	Name           string
	Messages       []api.ChatMessage
	Timestamp      string
}

// Aggregate fetches every conversation on the account together with its full
// message list. Per-conversation fetches run concurrently and the result is
// all-or-nothing, sorted most recent first.
func Aggregate(ctx context.Context, backend Backend, token string) ([]Summary, error) {
	heads, err := backend.Conversations(ctx, token)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, len(heads))
	group, ctx := errgroup.WithContext(ctx)
	for i, head := range heads {
		i, head := i, head
		group.Go(func() error {
			loaded, err := backend.Conversation(ctx, token, head.ConversationID)
			if err != nil {
				return err
			}
			summaries[i] = Summary{
				ConversationID: head.ConversationID,
				Name:           head.Name,
				Messages:       loaded.Chats,
				Timestamp:      head.LatestTimestamp,
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	SortByActivity(summaries)
	return summaries, nil
}

// Search groups keyword matches back into per-conversation summaries and
// resolves each group's display name from the conversation list. An empty
// keyword falls back to the full aggregation path.
func Search(ctx context.Context, backend Backend, token, keyword string) ([]Summary, error) {
	trimmed := strings.TrimSpace(keyword)
	if trimmed == "" {
		return Aggregate(ctx, backend, token)
	}

	matches, err := backend.SearchChats(ctx, token, trimmed)
	if err != nil {
		return nil, err
	}
	summaries := groupByConversation(matches)
	if len(summaries) == 0 {
		return summaries, nil
	}

	heads, err := backend.Conversations(ctx, token)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(heads))
	for _, head := range heads {
		names[head.ConversationID] = head.Name
	}
	for i := range summaries {
		if name, found := names[summaries[i].ConversationID]; found && name != "" {
			summaries[i].Name = name
		} else {
			summaries[i].Name = FallbackName(summaries[i].ConversationID)
		}
	}

	SortByActivity(summaries)
	return summaries, nil
}

// groupByConversation partitions the flat match list into per-conversation
// buckets, first-seen order, tracking each bucket's maximum timestamp.
func groupByConversation(matches []api.ChatMessage) []Summary {
	index := make(map[string]int)
	summaries := make([]Summary, 0)
	for _, match := range matches {
		at, found := index[match.ConversationID]
		if !found {
			at = len(summaries)
			index[match.ConversationID] = at
			summaries = append(summaries, Summary{
				ConversationID: match.ConversationID,
				Timestamp:      match.Timestamp,
			})
		}
		summaries[at].Messages = append(summaries[at].Messages, match)
		if laterThan(match.Timestamp, summaries[at].Timestamp) {
			summaries[at].Timestamp = match.Timestamp
		}
	}
	return summaries
}

// FallbackName labels a conversation whose display name could not be
// resolved, using the trailing characters of its identifier.
func FallbackName(conversationID string) string {
	tail := conversationID
	if len(tail) > 6 {
		tail = tail[len(tail)-6:]
	}
	return "Conversation " + tail
}

// SortByActivity stable-sorts summaries by latest activity descending. Ties
// and unparsable timestamps keep their aggregator order; unparsable values
// sort last.
func SortByActivity(summaries []Summary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		return parseOrZero(summaries[i].Timestamp).After(parseOrZero(summaries[j].Timestamp))
	})
}

// Preview extracts the first user message and the latest bot message of a
// summary for display. Either may be absent.
func Preview(summary Summary) (firstUser, latestBot string) {
	var latestAt time.Time
	var haveBot bool
	for _, message := range summary.Messages {
		switch message.Sender {
		case "user":
			if firstUser == "" {
				firstUser = message.Message
			}
		case "bot":
			at := parseOrZero(message.Timestamp)
			if !haveBot || at.After(latestAt) {
				latestBot = message.Message
				latestAt = at
				haveBot = true
			}
		}
	}
	return firstUser, latestBot
}

// ParseTimestamp accepts the backend's timestamp formats: RFC3339 with or
// without fractional seconds, and SQLite's space-separated form.
func ParseTimestamp(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	parsed, err := time.Parse(time.RFC3339, trimmed)
	if err == nil {
		return parsed, nil
	}
	parsed, err = time.Parse(time.RFC3339Nano, trimmed)
	if err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02 15:04:05", trimmed)
}

func parseOrZero(value string) time.Time {
	parsed, err := ParseTimestamp(value)
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func laterThan(a, b string) bool {
	return parseOrZero(a).After(parseOrZero(b))
}
