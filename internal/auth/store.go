package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"ess-chatbot/internal/model"
	pkgLog "ess-chatbot/pkg/log"
)

// EmployeeGetter is the slice of the employee repository the session
// store needs for credential checks.
type EmployeeGetter interface {
	Get(ctx context.Context, employeeID string) (model.Employee, error)
}

// Store keeps live sessions in memory and gates private intents.
// Safe for concurrent use.
type Store struct {
	l         pkgLog.Logger
	employees EmployeeGetter

	mu         sync.RWMutex
	sessions   map[string]model.Session // session id -> session
	byEmployee map[string]string        // employee id -> session id
}

// New creates an empty session store backed by the given employee source.
func New(l pkgLog.Logger, employees EmployeeGetter) *Store {
	return &Store{
		l:          l,
		employees:  employees,
		sessions:   make(map[string]model.Session),
		byEmployee: make(map[string]string),
	}
}

// Login verifies the credentials and returns a fresh session. A prior
// session for the same employee is replaced: one active session per
// employee, old handles stop resolving immediately.
func (s *Store) Login(ctx context.Context, employeeID, password string) (model.Session, error) {
	emp, err := s.employees.Get(ctx, employeeID)
	if err != nil {
		return model.Session{}, ErrInvalidCredentials
	}
	if emp.Password != password {
		return model.Session{}, ErrInvalidCredentials
	}

	session := model.Session{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		CreatedAt:  time.Now(),
	}

	s.mu.Lock()
	if prev, ok := s.byEmployee[employeeID]; ok {
		delete(s.sessions, prev)
	}
	s.sessions[session.ID] = session
	s.byEmployee[employeeID] = session.ID
	s.mu.Unlock()

	s.l.Infof(ctx, "auth: employee %s logged in", employeeID)
	return session, nil
}

// Logout removes the session. Idempotent: unknown handles are a no-op.
func (s *Store) Logout(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return
	}
	delete(s.sessions, sessionID)
	if s.byEmployee[session.EmployeeID] == sessionID {
		delete(s.byEmployee, session.EmployeeID)
	}
	s.l.Infof(ctx, "auth: employee %s logged out", session.EmployeeID)
}

// Resolve returns the live session for a handle, if any.
func (s *Store) Resolve(sessionID string) (model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	return session, ok
}

// Authorize resolves the session and decides whether it may invoke the
// intent in a single read: the caller gets the exact session the
// decision was made on, so a concurrent logout cannot land between the
// check and the lookup. Public intents always pass; private ones
// require a live session.
func (s *Store) Authorize(def model.IntentDefinition, sessionID string) (model.Session, bool) {
	session, live := s.Resolve(sessionID)
	if def.IsPrivate() && !live {
		return model.Session{}, false
	}
	return session, true
}
