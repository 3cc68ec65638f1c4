package usecase

import (
	"context"
	"fmt"
)

func (uc *implUseCase) handleSalaryInfo(ctx context.Context, in handlerInput) (string, error) {
	salary := in.employee.Salary
	return fmt.Sprintf("Your annual salary is $%.2f ($%.2f monthly).", salary, salary/12), nil
}

func (uc *implUseCase) handlePayslip(ctx context.Context, in handlerInput) (string, error) {
	payslips := in.employee.Payslips
	if len(payslips) == 0 {
		return "No payslips available.", nil
	}

	latest := payslips[0]
	return fmt.Sprintf("Latest payslip (%s): Gross $%.2f, Deductions $%.2f, Net $%.2f",
		latest.Month, latest.GrossSalary, latest.Deductions, latest.NetSalary), nil
}

func (uc *implUseCase) handleTaxInfo(ctx context.Context, in handlerInput) (string, error) {
	tax := in.employee.TaxInfo
	return fmt.Sprintf("Tax for %d: Gross income $%.2f, Tax deducted $%.2f (%s)",
		tax.Year, tax.GrossIncome, tax.TaxDeducted, tax.TaxRate), nil
}
