package usecase

import (
	"context"
	"strings"

	"ess-chatbot/internal/chat"
	"ess-chatbot/internal/model"
)

const (
	loginPromptMessage = "This information is private. Please login using /login <employee_id> <password>"
	fallbackMessage    = "I couldn't understand that. Could you rephrase?"
)

// Process implements the chat.UseCase pipeline. Classification and
// handler failures degrade to a fallback reply rather than an error:
// the caller always gets something to render.
func (uc *implUseCase) Process(ctx context.Context, sc model.Scope, input chat.ProcessInput) (chat.ProcessOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return chat.ProcessOutput{}, chat.ErrEmptyMessage
	}

	if strings.HasPrefix(message, "/") {
		return uc.processCommand(ctx, sc, message), nil
	}

	result, err := uc.matcher.Match(ctx, message)
	if err != nil {
		uc.l.Errorf(ctx, "process: intent matching failed: %v", err)
		return chat.ProcessOutput{
			ResponseText: fallbackMessage,
			Intent:       model.IntentUnknown,
			Authorized:   true,
		}, nil
	}

	if result.Intent == model.IntentUnknown {
		return chat.ProcessOutput{
			ResponseText: fallbackMessage,
			Intent:       model.IntentUnknown,
			Confidence:   result.Confidence,
			Authorized:   true,
		}, nil
	}

	def, _ := uc.catalog.Get(result.Intent)
	entities := uc.extractor.Extract(message)

	// Permission gate. The session used for the employee lookup below is
	// the one the decision was made on: a concurrent logout either fails
	// the gate or has no effect on this request. Unauthorized replies
	// carry only the intent name: no confidence, no entities, no handler
	// execution.
	session, allowed := uc.sessions.Authorize(def, sc.SessionID)
	if !allowed {
		uc.l.Infof(ctx, "process: unauthorized access to %s", result.Intent)
		return chat.ProcessOutput{
			ResponseText: loginPromptMessage,
			Intent:       result.Intent,
			Authorized:   false,
		}, nil
	}

	in := handlerInput{entities: entities, query: message}
	if session.ID != "" {
		emp, err := uc.repo.Get(ctx, session.EmployeeID)
		if err != nil {
			uc.l.Errorf(ctx, "process: employee %s behind live session not found: %v", session.EmployeeID, err)
			return chat.ProcessOutput{
				ResponseText: fallbackMessage,
				Intent:       result.Intent,
				Confidence:   result.Confidence,
				Authorized:   true,
			}, nil
		}
		in.employee = &emp
	}

	text, err := uc.dispatch(ctx, result.Intent, in)
	if err != nil {
		uc.l.Errorf(ctx, "process: handler for %s failed: %v", result.Intent, err)
		text = "Something went wrong handling your request. Please try again."
	}

	return chat.ProcessOutput{
		ResponseText: text,
		Intent:       result.Intent,
		Confidence:   result.Confidence,
		Entities:     entities,
		Authorized:   true,
	}, nil
}
