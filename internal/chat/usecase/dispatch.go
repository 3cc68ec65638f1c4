package usecase

import (
	"context"
	"fmt"

	"ess-chatbot/internal/extractor"
	"ess-chatbot/internal/model"
)

func errUnknownIntent(name string) error {
	return fmt.Errorf("no handler for intent %q", name)
}

// handlerInput carries everything one intent handler may need. The
// employee pointer is nil for anonymous callers; handlers behind the
// permission gate can rely on it being set.
type handlerInput struct {
	employee *model.Employee
	entities extractor.Entities
	query    string
}

type handlerFunc func(ctx context.Context, in handlerInput) (string, error)

// buildDispatchTable is the closed mapping from intent name to handler.
// Every catalog intent must appear here; New enforces that at startup.
func (uc *implUseCase) buildDispatchTable() map[string]handlerFunc {
	return map[string]handlerFunc{
		// Public intents
		"greeting":        uc.handleGreeting,
		"general_inquiry": uc.handleGeneralInquiry,
		"leave_policy":    uc.handleLeavePolicy,
		"holidays":        uc.handleHolidays,
		"hr_contact":      uc.handleHRContact,
		"company_info":    uc.handleCompanyInfo,
		"benefits":        uc.handleBenefits,

		// Leave intents
		"leave_balance":           uc.handleLeaveBalance,
		"check_leave_eligibility": uc.handleCheckLeaveEligibility,
		"leave_request":           uc.handleLeaveRequest,
		"leave_history":           uc.handleLeaveHistory,
		"leave_approval":          uc.handleLeaveApproval,

		// Profile intents
		"my_manager":               uc.handleMyManager,
		"my_department":            uc.handleMyDepartment,
		"my_profile":               uc.handleMyProfile,
		"attendance":               uc.handleAttendance,
		"skills":                   uc.handleSkills,
		"goals_objectives":         uc.handleGoalsObjectives,
		"appraisal_cycle":          uc.handleAppraisalCycle,
		"birthday_anniversary":     uc.handleBirthdayAnniversary,
		"update_phone":             uc.handleUpdatePhone,
		"update_emergency_contact": uc.handleUpdateEmergencyContact,

		// Payroll intents
		"salary_info": uc.handleSalaryInfo,
		"payslip":     uc.handlePayslip,
		"tax_info":    uc.handleTaxInfo,
	}
}

// dispatch routes one authorized query to its handler.
func (uc *implUseCase) dispatch(ctx context.Context, intent string, in handlerInput) (string, error) {
	handler, ok := uc.handlers[intent]
	if !ok {
		// Unreachable when New's completeness check passed; kept as a
		// guard against catalog reloads growing the intent set.
		return "", errUnknownIntent(intent)
	}
	return handler(ctx, in)
}
