package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ess-chatbot/internal/employee/repository"
	"ess-chatbot/pkg/gcalendar"
)

func (uc *implUseCase) handleLeaveBalance(ctx context.Context, in handlerInput) (string, error) {
	b := in.employee.LeaveBalance
	return fmt.Sprintf("%s, you have a total of %d leaves remaining. Breakdown: Sick (%d), Casual (%d), Earned (%d).",
		in.employee.Name, b.Total, b.Sick, b.Casual, b.Earned), nil
}

func (uc *implUseCase) handleCheckLeaveEligibility(ctx context.Context, in handlerInput) (string, error) {
	leaveType := in.entities.LeaveType
	if leaveType == "" {
		leaveType = "general"
	}

	available := in.employee.LeaveBalance.ForType(leaveType)
	if available <= 0 {
		return fmt.Sprintf("Sorry, you do not have any %s leave available at the moment.", leaveType), nil
	}
	return fmt.Sprintf("Yes, you are eligible to take %s leave. You have %d %s leave(s) available.",
		leaveType, available, leaveType), nil
}

// handleLeaveRequest applies the leave against the live balance: the
// request is validated, the balance decremented and the history entry
// written in one atomic repository call. Rejections tell the caller what
// remains so they can resubmit a smaller request.
func (uc *implUseCase) handleLeaveRequest(ctx context.Context, in handlerInput) (string, error) {
	leaveType := in.entities.LeaveType
	if leaveType == "" {
		leaveType = "casual"
	}
	days := in.entities.DurationDays

	balance, err := uc.repo.ApplyLeave(ctx, in.employee.EmployeeID, leaveType, days)
	if err != nil {
		if errors.Is(err, repository.ErrInsufficientBalance) {
			return fmt.Sprintf("Sorry %s, you cannot take %d day(s) of %s leave: only %d available.",
				in.employee.Name, days, leaveType, in.employee.LeaveBalance.ForType(leaveType)), nil
		}
		return "", err
	}

	startDate := "not specified"
	if in.entities.Date != nil {
		startDate = in.entities.Date.Format("2006-01-02")
		uc.tryCreateLeaveEvent(ctx, in, leaveType, days)
	}

	return fmt.Sprintf("Your %s leave request for %s (%d day(s)) has been approved. You have %d total leave day(s) remaining.",
		leaveType, startDate, days, balance.Total), nil
}

// tryCreateLeaveEvent blocks the leave period on the employee's calendar.
// Failures are logged and swallowed: the leave itself is already booked.
func (uc *implUseCase) tryCreateLeaveEvent(ctx context.Context, in handlerInput, leaveType string, days int) {
	if uc.calendar == nil {
		return
	}

	start := *in.entities.Date
	end := start.AddDate(0, 0, days)

	_, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  uc.calendarID,
		Summary:     fmt.Sprintf("%s - %s leave", in.employee.Name, leaveType),
		Description: fmt.Sprintf("%d day(s) of %s leave booked via the ESS assistant.", days, leaveType),
		StartTime:   start,
		EndTime:     end,
		Timezone:    uc.timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "leave_request: calendar event creation failed for %s (non-fatal): %v",
			in.employee.EmployeeID, err)
	}
}

func (uc *implUseCase) handleLeaveHistory(ctx context.Context, in handlerInput) (string, error) {
	history := in.employee.LeaveHistory
	if len(history) == 0 {
		return "You have no leave history for this year.", nil
	}

	total := 0
	for _, rec := range history {
		total += rec.Days
	}
	return fmt.Sprintf("You have taken %d leave days. Total records: %d", total, len(history)), nil
}

func (uc *implUseCase) handleLeaveApproval(ctx context.Context, in handlerInput) (string, error) {
	var pending, approved []string
	for _, rec := range in.employee.LeaveHistory {
		entry := fmt.Sprintf("%s (%d days)", rec.Type, rec.Days)
		if rec.Status == "pending" {
			pending = append(pending, entry)
		} else if rec.Status == "approved" {
			approved = append(approved, entry)
		}
	}

	if len(pending) > 0 {
		return fmt.Sprintf("You have %d pending leave(s): %s", len(pending), strings.Join(pending, ", ")), nil
	}
	return fmt.Sprintf("All your %d leave request(s) have been approved.", len(approved)), nil
}

func (uc *implUseCase) handleAttendance(ctx context.Context, in handlerInput) (string, error) {
	days := in.employee.AttendanceDays
	// 250 assumed working days per year.
	var pct float64
	if days > 0 {
		pct = float64(days) / 250 * 100
	}
	return fmt.Sprintf("You have been present for %d days (%.1f%% attendance).", days, pct), nil
}
