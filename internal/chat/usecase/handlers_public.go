package usecase

import (
	"context"
	"fmt"
	"strings"
)

var greetings = []string{
	"Hello! I'm your Employee Self-Service assistant. How can I help you today?",
	"Hi there! I'm here to assist you with your employee-related queries.",
	"Greetings! I'm your ESS chatbot. What can I do for you?",
	"Hello! Welcome to the Employee Self-Service system. How may I assist you?",
}

func (uc *implUseCase) handleGreeting(ctx context.Context, in handlerInput) (string, error) {
	// Rotate on query length instead of a random source: replies stay
	// deterministic for tests while still varying between phrasings.
	return greetings[len(in.query)%len(greetings)], nil
}

func (uc *implUseCase) handleGeneralInquiry(ctx context.Context, in handlerInput) (string, error) {
	capabilities := []string{
		"leave balance and eligibility",
		"leave requests and history",
		"salary and payslip information",
		"profile and personal details",
		"company policies and benefits",
		"HR contact information",
		"phone number updates",
		"attendance records",
	}
	return fmt.Sprintf(
		"I can help you with various employee-related tasks including: %s. "+
			"You can ask me questions like 'How many leaves do I have?', 'What is my salary?', "+
			"or 'Update my phone number'. If you need help with something specific, just let me know!",
		strings.Join(capabilities, ", ")), nil
}

func (uc *implUseCase) handleLeavePolicy(ctx context.Context, in handlerInput) (string, error) {
	details := []string{
		"• Annual Leave: 20 days",
		"• Sick Leave: 10 days",
		"• Casual Leave: 5 days",
		"• Maternity Leave: 90 days",
		"• Paternity Leave: 10 days",
	}
	return "Our leave policy includes:\n" + strings.Join(details, "\n"), nil
}

func (uc *implUseCase) handleHolidays(ctx context.Context, in handlerInput) (string, error) {
	holidays := uc.repo.CompanyInfo(ctx).Holidays
	if len(holidays) == 0 {
		return "No company holidays are currently scheduled for this year.", nil
	}

	var b strings.Builder
	b.WriteString("Company holidays this year:\n")
	for i, h := range holidays {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("• " + h)
	}
	return b.String(), nil
}

func (uc *implUseCase) handleHRContact(ctx context.Context, in handlerInput) (string, error) {
	info := uc.repo.CompanyInfo(ctx)
	return fmt.Sprintf("HR Contact Information:\n• Phone: %s\n• Email: %s", info.HRPhone, info.HREmail), nil
}

func (uc *implUseCase) handleCompanyInfo(ctx context.Context, in handlerInput) (string, error) {
	info := uc.repo.CompanyInfo(ctx)
	return fmt.Sprintf("Company Information:\n• Name: %s\n• Mission: %s", info.Name, info.Mission), nil
}

func (uc *implUseCase) handleBenefits(ctx context.Context, in handlerInput) (string, error) {
	benefits := []string{
		"• Comprehensive health insurance coverage",
		"• 401(k) matching up to 5%",
		"• Paid time off (20 days annually)",
		"• Annual training budget of $2000",
		"• Flexible remote work policy",
	}
	return "Here are the available employee benefits:\n" + strings.Join(benefits, "\n"), nil
}
