package chat

import "ess-chatbot/internal/extractor"

// ProcessInput is one raw message from the caller.
type ProcessInput struct {
	Message string
}

// ProcessOutput is the reply for one message. Unauthorized replies carry
// the intent name only: confidence and entities stay zeroed so a login
// prompt never leaks what was understood from the query.
type ProcessOutput struct {
	ResponseText string             `json:"response_text"`
	Intent       string             `json:"intent"`
	Confidence   float64            `json:"confidence"`
	Entities     extractor.Entities `json:"entities"`
	Authorized   bool               `json:"authorized"`

	// SessionID is set when a /login command issued a fresh session;
	// the transport returns it to the caller for subsequent requests.
	SessionID string `json:"session_id,omitempty"`
}
