package usecase

import (
	"context"
	"fmt"

	"ess-chatbot/internal/auth"
	"ess-chatbot/internal/catalog"
	"ess-chatbot/internal/employee/repository"
	"ess-chatbot/internal/extractor"
	"ess-chatbot/internal/matcher"
	"ess-chatbot/pkg/gcalendar"
	pkgLog "ess-chatbot/pkg/log"
)

// CalendarClient is the slice of pkg/gcalendar the leave handler needs.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type implUseCase struct {
	l          pkgLog.Logger
	matcher    matcher.Matcher
	extractor  *extractor.Extractor
	sessions   *auth.Store
	repo       repository.Repository
	catalog    *catalog.Catalog
	calendar   CalendarClient
	calendarID string
	timezone   string
	handlers   map[string]handlerFunc
}

// New creates a new chat UseCase instance. The dispatch table is checked
// for completeness against the intent catalog here: a catalog intent
// without a handler is a configuration error, caught at startup rather
// than on the first matching query.
func New(
	l pkgLog.Logger,
	m matcher.Matcher,
	ex *extractor.Extractor,
	sessions *auth.Store,
	repo repository.Repository,
	cat *catalog.Catalog,
	calendar CalendarClient,
	calendarID string,
	timezone string,
) (*implUseCase, error) {
	if calendarID == "" {
		calendarID = "primary"
	}
	uc := &implUseCase{
		l:          l,
		matcher:    m,
		extractor:  ex,
		sessions:   sessions,
		repo:       repo,
		catalog:    cat,
		calendar:   calendar,
		calendarID: calendarID,
		timezone:   timezone,
	}
	uc.handlers = uc.buildDispatchTable()

	for _, name := range cat.Names() {
		if _, ok := uc.handlers[name]; !ok {
			return nil, fmt.Errorf("intent %q has no handler", name)
		}
	}

	return uc, nil
}
