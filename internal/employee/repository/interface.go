package repository

import (
	"context"

	"ess-chatbot/internal/model"
)

// Repository is the interface for employee record access. Mutations are
// atomic: a rejected leave application leaves the record untouched.
type Repository interface {
	// Get returns a copy of the employee record.
	Get(ctx context.Context, employeeID string) (model.Employee, error)

	// ApplyLeave checks the balance for the leave type, decrements it and
	// appends a history entry in one step. Returns the updated balance.
	ApplyLeave(ctx context.Context, employeeID, leaveType string, days int) (model.LeaveBalance, error)

	// UpdatePhone replaces the employee's phone number.
	UpdatePhone(ctx context.Context, employeeID, phone string) error

	// UpdateEmergencyContact replaces the emergency contact's phone number.
	UpdateEmergencyContact(ctx context.Context, employeeID, phone string) error

	// CompanyInfo returns the shared company record.
	CompanyInfo(ctx context.Context) model.CompanyInfo
}
