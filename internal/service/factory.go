package service

import (
	"context"

	"nird.dev/outreach/internal/chat"
	"nird.dev/outreach/internal/intent"
	"nird.dev/outreach/internal/queue"
	"nird.dev/outreach/internal/security"
)

// IntentClassifier maps a free-text utterance to a mission. Total: always
// produces a valid result.
type IntentClassifier interface {
	Classify(ctx context.Context, utterance string) intent.Result
}

// ChatResponder answers a widget conversation. Total: always produces a reply.
type ChatResponder interface {
	Respond(ctx context.Context, history []chat.Message) string
}

type Services struct {
	classifier  IntentClassifier
	responder   ChatResponder
	submissions SubmissionService
}

type ServicesConfig struct {
	Classifier  IntentClassifier
	Responder   ChatResponder
	RateLimiter *security.RateLimiter
	Producer    queue.Producer // nil when redis is not configured
}

func NewServices(cfg ServicesConfig) *Services {
	return &Services{
		classifier:  cfg.Classifier,
		responder:   cfg.Responder,
		submissions: NewSubmissionService(cfg.RateLimiter, cfg.Producer),
	}
}

func (s *Services) Intent() IntentClassifier {
	return s.classifier
}

func (s *Services) Chat() ChatResponder {
	return s.responder
}

func (s *Services) Submissions() SubmissionService {
	return s.submissions
}
