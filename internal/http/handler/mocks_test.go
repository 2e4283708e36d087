package handler_test

import (
	"context"

	"nird.dev/outreach/internal/chat"
	"nird.dev/outreach/internal/intent"
	"nird.dev/outreach/internal/service"
)

type mockIntentClassifier struct {
	classifyFn func(ctx context.Context, utterance string) intent.Result
}

func (m *mockIntentClassifier) Classify(ctx context.Context, utterance string) intent.Result {
	if m.classifyFn != nil {
		return m.classifyFn(ctx, utterance)
	}
	return intent.Result{}
}

type mockChatResponder struct {
	respondFn func(ctx context.Context, history []chat.Message) string
}

func (m *mockChatResponder) Respond(ctx context.Context, history []chat.Message) string {
	if m.respondFn != nil {
		return m.respondFn(ctx, history)
	}
	return ""
}

type mockSubmissionService struct {
	submitFn func(ctx context.Context, clientID, mission string, data map[string]any) service.SubmissionResult
}

func (m *mockSubmissionService) Submit(ctx context.Context, clientID, mission string, data map[string]any) service.SubmissionResult {
	if m.submitFn != nil {
		return m.submitFn(ctx, clientID, mission, data)
	}
	return service.SubmissionResult{}
}
