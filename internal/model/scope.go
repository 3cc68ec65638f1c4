package model

import "time"

// Scope carries the caller context through the pipeline.
// One Scope per caller; never shared across conversations.
type Scope struct {
	SessionID string // opaque session handle, empty when not logged in
}

// Session is an authenticated-session record held by the session store.
// Created on successful login, destroyed on logout or process end.
type Session struct {
	ID         string
	EmployeeID string
	CreatedAt  time.Time
}
