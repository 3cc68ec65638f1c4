package httpserver

import (
	"context"
	"fmt"
)

// Run maps all handlers and starts the HTTP listener. Blocks until the
// listener stops.
func (srv *HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return fmt.Errorf("failed to map handlers: %w", err)
	}

	addr := fmt.Sprintf(":%d", srv.port)
	srv.l.Infof(context.Background(), "HTTP server listening on %s (%s)", addr, srv.environment)

	if err := srv.gin.Run(addr); err != nil {
		return fmt.Errorf("http server stopped: %w", err)
	}
	return nil
}
