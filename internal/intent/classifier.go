package intent

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"nird.dev/outreach/common/llm"
	"nird.dev/outreach/common/logger"
	"nird.dev/outreach/common/resilient"
	"nird.dev/outreach/internal/model"
	"nird.dev/outreach/internal/security"
)

// Result routes an utterance to a mission with a human-readable rationale.
// Mission is always one of the four valid values; Explanation is never empty.
type Result struct {
	Mission     model.Mission `json:"mission"`
	Explanation string        `json:"explanation"`
}

type classificationResponse struct {
	Mission     string `json:"mission" jsonschema:"enum=contact,enum=don,enum=benevole,enum=info" jsonschema_description:"Mission the user should be routed to"`
	Explanation string `json:"explanation" jsonschema_description:"Explication engageante en français (2-3 phrases max)"`
}

var classificationSchema = llm.GenerateSchema[classificationResponse]()

// Classifier maps a free-text utterance to a mission. The remote path gives
// nuanced routing; every failure there degrades to the deterministic local
// fallback, so Classify never fails outward.
type Classifier struct {
	llm       llm.Client // nil when no credential is configured
	maxTokens int
	timeout   time.Duration
}

func NewClassifier(client llm.Client, maxTokens int, timeout time.Duration) *Classifier {
	return &Classifier{
		llm:       client,
		maxTokens: maxTokens,
		timeout:   timeout,
	}
}

func (c *Classifier) Classify(ctx context.Context, utterance string) Result {
	sc := logger.StartSpan(ctx, "outreach.intent.classify")
	defer sc.End()
	ctx = logger.WithLogFields(sc.Context(), logger.LogFields{Component: "outreach.intent.classifier"})

	var remote func(ctx context.Context) (Result, error)
	if c.llm != nil {
		remote = func(ctx context.Context) (Result, error) {
			return c.classifyRemote(ctx, utterance)
		}
	}

	result := resilient.Call(ctx, c.timeout, remote, func() Result {
		return Fallback(utterance)
	})

	slog.InfoContext(ctx, "intent classified",
		"mission", result.Mission,
		"utterance", logger.Truncate(utterance, 80))

	return result
}

func (c *Classifier) classifyRemote(ctx context.Context, utterance string) (Result, error) {
	var response classificationResponse
	_, err := c.llm.Chat(ctx, llm.Request{
		SystemPrompt: systemPrompt,
		UserPrompt:   fmt.Sprintf(userPromptFormat, utterance),
		SchemaName:   "intent_classification",
		Schema:       classificationSchema,
		MaxTokens:    c.maxTokens,
		Temperature:  llm.Temp(0.7),
	}, &response)
	if err != nil {
		return Result{}, err
	}

	mission, err := model.ParseMission(response.Mission)
	if err != nil {
		return Result{}, fmt.Errorf("remote classification: %w", err)
	}

	explanation := security.ScrubMarkup(response.Explanation)
	if explanation == "" {
		return Result{}, fmt.Errorf("remote classification: empty explanation")
	}

	return Result{Mission: mission, Explanation: explanation}, nil
}
