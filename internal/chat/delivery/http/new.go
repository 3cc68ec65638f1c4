package http

import (
	"github.com/gin-gonic/gin"

	"ess-chatbot/internal/catalog"
	"ess-chatbot/internal/chat"
	pkgLog "ess-chatbot/pkg/log"
)

// Handler is the interface for the chat HTTP delivery handler.
type Handler interface {
	ProcessMessage(c *gin.Context)
	ListIntents(c *gin.Context)
}

type handler struct {
	l   pkgLog.Logger
	uc  chat.UseCase
	cat *catalog.Catalog
}

// New creates a new chat delivery handler.
func New(l pkgLog.Logger, uc chat.UseCase, cat *catalog.Catalog) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		cat: cat,
	}
}
