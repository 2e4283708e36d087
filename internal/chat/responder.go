package chat

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"nird.dev/outreach/common/llm"
	"nird.dev/outreach/common/logger"
	"nird.dev/outreach/common/resilient"
	"nird.dev/outreach/internal/security"
)

// Message is one turn of the widget conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

const meditationReply = "Je médite sur ta question... 🧘"

// Responder answers widget conversations. Same two-tier shape as the intent
// classifier: remote completion over the full history, deterministic canned
// replies on any failure. Respond never fails outward.
type Responder struct {
	llm       llm.Client // nil when no credential is configured
	maxTokens int
	timeout   time.Duration
}

func NewResponder(client llm.Client, maxTokens int, timeout time.Duration) *Responder {
	return &Responder{
		llm:       client,
		maxTokens: maxTokens,
		timeout:   timeout,
	}
}

func (r *Responder) Respond(ctx context.Context, history []Message) string {
	sc := logger.StartSpan(ctx, "outreach.chat.respond")
	defer sc.End()
	ctx = logger.WithLogFields(sc.Context(), logger.LogFields{Component: "outreach.chat.responder"})

	var remote func(ctx context.Context) (string, error)
	if r.llm != nil {
		remote = func(ctx context.Context) (string, error) {
			return r.respondRemote(ctx, history)
		}
	}

	reply := resilient.Call(ctx, r.timeout, remote, func() string {
		return FallbackReply(latestUserContent(history))
	})

	slog.DebugContext(ctx, "chat reply produced", "history_len", len(history))

	return reply
}

func (r *Responder) respondRemote(ctx context.Context, history []Message) (string, error) {
	msgs := make([]llm.Message, 0, len(history)+1)
	msgs = append(msgs, llm.Message{Role: "system", Content: personaPrompt})
	for _, m := range history {
		msgs = append(msgs, llm.Message{Role: m.Role, Content: m.Content})
	}

	content, err := r.llm.Complete(ctx, msgs, r.maxTokens, llm.Temp(0.8))
	if err != nil {
		return "", err
	}

	reply := security.ScrubMarkup(content)
	if reply == "" {
		return meditationReply, nil
	}
	return reply, nil
}

// FallbackReply is the deterministic responder: the latest user message is
// matched against fixed keyword categories; without a match, one of the
// generic redirect replies is chosen at random. Total over every input.
func FallbackReply(userMessage string) string {
	lower := strings.ToLower(userMessage)

	if reply, ok := matchReplyRule(lower); ok {
		return reply
	}

	return defaultReplies[rand.IntN(len(defaultReplies))]
}

func latestUserContent(history []Message) string {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == "user" {
			return history[i].Content
		}
	}
	if len(history) > 0 {
		return history[len(history)-1].Content
	}
	return ""
}
