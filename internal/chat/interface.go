package chat

import (
	"context"

	"ess-chatbot/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Process runs one message through the full pipeline: command
	// handling, intent matching, slot extraction, the permission gate
	// and the intent dispatcher. It always produces a reply for the
	// caller; only empty input is an error.
	Process(ctx context.Context, sc model.Scope, input ProcessInput) (ProcessOutput, error)
}
