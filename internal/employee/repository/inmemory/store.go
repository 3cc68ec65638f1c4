package inmemory

import (
	"context"

	"ess-chatbot/internal/employee/repository"
	"ess-chatbot/internal/model"
)

// Get returns a copy of the record so callers cannot mutate shared state.
func (s *Store) Get(ctx context.Context, employeeID string) (model.Employee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	emp, ok := s.employees[employeeID]
	if !ok {
		return model.Employee{}, repository.ErrEmployeeNotFound
	}
	return *emp, nil
}

// ApplyLeave validates against the current balance and decrements it in
// one critical section. On ErrInsufficientBalance nothing changes.
func (s *Store) ApplyLeave(ctx context.Context, employeeID, leaveType string, days int) (model.LeaveBalance, error) {
	if days <= 0 {
		return model.LeaveBalance{}, repository.ErrInvalidDays
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	emp, ok := s.employees[employeeID]
	if !ok {
		return model.LeaveBalance{}, repository.ErrEmployeeNotFound
	}

	if emp.LeaveBalance.ForType(leaveType) < days || emp.LeaveBalance.Total < days {
		return model.LeaveBalance{}, repository.ErrInsufficientBalance
	}

	switch leaveType {
	case "sick":
		emp.LeaveBalance.Sick -= days
	case "casual":
		emp.LeaveBalance.Casual -= days
	case "earned":
		emp.LeaveBalance.Earned -= days
	}
	emp.LeaveBalance.Total -= days

	emp.LeaveHistory = append(emp.LeaveHistory, model.LeaveRecord{
		Type:   leaveType,
		Days:   days,
		Status: "approved",
	})

	s.l.Infof(ctx, "employee %s applied %d day(s) of %s leave, %d total remaining",
		employeeID, days, leaveType, emp.LeaveBalance.Total)
	return emp.LeaveBalance, nil
}

func (s *Store) UpdatePhone(ctx context.Context, employeeID, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp, ok := s.employees[employeeID]
	if !ok {
		return repository.ErrEmployeeNotFound
	}
	emp.Phone = phone
	return nil
}

func (s *Store) UpdateEmergencyContact(ctx context.Context, employeeID, phone string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	emp, ok := s.employees[employeeID]
	if !ok {
		return repository.ErrEmployeeNotFound
	}
	emp.EmergencyContact.Phone = phone
	return nil
}

// CompanyInfo returns the shared company record. Read-only after load.
func (s *Store) CompanyInfo(ctx context.Context) model.CompanyInfo {
	return s.company
}
