package service

import (
	"context"
	"log/slog"
	"math"
	"time"

	"nird.dev/outreach/common/id"
	"nird.dev/outreach/common/logger"
	"nird.dev/outreach/internal/model"
	"nird.dev/outreach/internal/queue"
	"nird.dev/outreach/internal/security"
)

type SubmissionStatus int

const (
	SubmissionAccepted SubmissionStatus = iota
	SubmissionThrottled
	SubmissionMissingData
	SubmissionInvalid
)

// SubmissionResult is the outcome of one submission attempt. Exactly one
// status applies; the other fields are populated per status.
type SubmissionResult struct {
	Status    SubmissionStatus
	Reference string
	Mission   model.Mission
	Nom       string
	Montant   *float64 // resolved amount, donation missions only
	Errors    []string // validation errors, SubmissionInvalid only

	// Throttling metadata, SubmissionThrottled only.
	RetryAfter time.Duration
	Remaining  int
}

// RetryAfterSeconds rounds the retry delay up to whole seconds for the
// Retry-After header and response body.
func (r SubmissionResult) RetryAfterSeconds() int {
	return int(math.Ceil(r.RetryAfter.Seconds()))
}

// SubmissionService runs the mission submission pipeline:
// rate limit → presence → validation → sanitization → reference.
type SubmissionService interface {
	Submit(ctx context.Context, clientID, mission string, data map[string]any) SubmissionResult
}

type submissionService struct {
	limiter  *security.RateLimiter
	producer queue.Producer // nil when no stream is configured
}

func NewSubmissionService(limiter *security.RateLimiter, producer queue.Producer) SubmissionService {
	return &submissionService{
		limiter:  limiter,
		producer: producer,
	}
}

func (s *submissionService) Submit(ctx context.Context, clientID, mission string, data map[string]any) SubmissionResult {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ClientID:  logger.Ptr(clientID),
		Component: "outreach.submission",
	})

	limit := s.limiter.Check(ctx, clientID)
	if !limit.Allowed {
		slog.InfoContext(ctx, "submission throttled", "reset_in_ms", limit.ResetIn.Milliseconds())
		return SubmissionResult{
			Status:     SubmissionThrottled,
			RetryAfter: limit.ResetIn,
			Remaining:  limit.Remaining,
		}
	}

	if mission == "" || data == nil {
		return SubmissionResult{Status: SubmissionMissingData}
	}

	m := model.Mission(mission)
	ctx = logger.WithLogFields(ctx, logger.LogFields{Mission: logger.Ptr(mission)})

	verdict := security.Validate(data, m)
	if !verdict.Valid {
		slog.InfoContext(ctx, "submission rejected", "errors", verdict.Errors)
		return SubmissionResult{Status: SubmissionInvalid, Errors: verdict.Errors}
	}

	sanitized := security.SanitizeFields(data)
	reference := id.NewReference()
	ctx = logger.WithLogFields(ctx, logger.LogFields{Reference: logger.Ptr(reference)})

	result := SubmissionResult{
		Status:    SubmissionAccepted,
		Reference: reference,
		Mission:   m,
		Nom:       stringField(sanitized, "nom"),
	}
	if m == model.MissionDon {
		if montant, ok := security.ResolveAmount(sanitized); ok {
			result.Montant = &montant
		}
	}

	// The stream consumer owns persistence and notification; a publish
	// failure must not turn an accepted submission into an error.
	if s.producer != nil {
		msg := queue.SubmissionMessage{
			Reference:  reference,
			Mission:    mission,
			ClientID:   clientID,
			Fields:     sanitized,
			ReceivedAt: time.Now(),
		}
		if err := s.producer.Publish(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "failed to publish submission", "error", err)
		}
	}

	slog.InfoContext(ctx, "submission accepted", "remaining", limit.Remaining)

	return result
}

func stringField(data map[string]any, key string) string {
	if s, ok := data[key].(string); ok {
		return s
	}
	return ""
}
