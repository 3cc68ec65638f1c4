package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"ess-chatbot/internal/chat"
	"ess-chatbot/internal/model"
	pkgResponse "ess-chatbot/pkg/response"
)

type processMessageRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message" binding:"required"`
}

type intentItem struct {
	Name       string `json:"name"`
	Visibility string `json:"visibility"`
}

// ProcessMessage runs one chat message through the pipeline. The session
// handle travels in the body or in the X-Session-ID header; the header
// doubles as the per-session rate limiting key.
// @Summary Process a chat message
// @Description Classify the message, extract slots, enforce the permission gate and dispatch the matching handler
// @Tags Chat
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session handle; also keys per-session rate limiting"
// @Param request body processMessageRequest true "Message and optional session handle"
// @Success 200 {object} pkgResponse.Resp "Reply with intent, confidence and entities"
// @Router /api/v1/chat [post]
func (h *handler) ProcessMessage(c *gin.Context) {
	ctx := c.Request.Context()

	var req processMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "chat handler: malformed request: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = c.GetHeader("X-Session-ID")
	}

	sc := model.Scope{SessionID: sessionID}
	out, err := h.uc.Process(ctx, sc, chat.ProcessInput{Message: req.Message})
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			pkgResponse.Error(c, err, nil)
			return
		}
		h.l.Errorf(ctx, "chat handler: process failed: %v", err)
		pkgResponse.InternalError(c, err)
		return
	}

	pkgResponse.OK(c, out)
}

// ListIntents returns the intent catalog, names and visibility only.
// @Summary List supported intents
// @Description Enumerate the closed intent set and whether each requires login
// @Tags Chat
// @Produce json
// @Success 200 {object} pkgResponse.Resp "Intent names with visibility"
// @Router /api/v1/intents [get]
func (h *handler) ListIntents(c *gin.Context) {
	items := make([]intentItem, 0, h.cat.Len())
	for _, def := range h.cat.All() {
		items = append(items, intentItem{
			Name:       def.Name,
			Visibility: string(def.Visibility),
		})
	}
	pkgResponse.OK(c, gin.H{"intents": items, "count": len(items)})
}
