package usecase

import (
	"context"
	"fmt"
	"strings"

	"ess-chatbot/internal/chat"
	"ess-chatbot/internal/model"
)

const helpMessage = "Commands:\n" +
	"/login <id> <password>\n" +
	"/logout\n" +
	"/status\n" +
	"/help\n\n" +
	"Demo Users:\n" +
	"E001 / pass123\n" +
	"E002 / pass456\n" +
	"E003 / pass789"

// processCommand handles the slash command surface. Commands bypass the
// matcher entirely and are always authorized.
func (uc *implUseCase) processCommand(ctx context.Context, sc model.Scope, message string) chat.ProcessOutput {
	fields := strings.Fields(message)
	command := strings.ToLower(fields[0])

	out := chat.ProcessOutput{Intent: "command", Authorized: true}

	switch command {
	case "/login":
		if len(fields) < 3 {
			out.ResponseText = "Usage: /login <employee_id> <password>"
			return out
		}
		session, err := uc.sessions.Login(ctx, fields[1], fields[2])
		if err != nil {
			out.ResponseText = "Invalid employee id or password."
			return out
		}
		emp, _ := uc.repo.Get(ctx, session.EmployeeID)
		out.ResponseText = fmt.Sprintf("Welcome, %s!", emp.Name)
		out.SessionID = session.ID
		return out

	case "/logout":
		name := ""
		if session, ok := uc.sessions.Resolve(sc.SessionID); ok {
			if emp, err := uc.repo.Get(ctx, session.EmployeeID); err == nil {
				name = emp.Name
			}
		}
		uc.sessions.Logout(ctx, sc.SessionID)
		if name == "" {
			out.ResponseText = "No user is currently logged in."
		} else {
			out.ResponseText = fmt.Sprintf("Goodbye, %s!", name)
		}
		return out

	case "/status":
		if session, ok := uc.sessions.Resolve(sc.SessionID); ok {
			if emp, err := uc.repo.Get(ctx, session.EmployeeID); err == nil {
				out.ResponseText = fmt.Sprintf("Logged in as %s (%s)", emp.Name, emp.EmployeeID)
				return out
			}
		}
		out.ResponseText = "Not logged in."
		return out

	case "/help":
		out.ResponseText = helpMessage
		return out

	default:
		out.ResponseText = fmt.Sprintf("Unknown command %q. Type /help for available commands.", command)
		return out
	}
}
