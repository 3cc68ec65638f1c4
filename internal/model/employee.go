package model

// LeaveBalance tracks remaining leave days per category.
type LeaveBalance struct {
	Sick   int `json:"sick"`
	Casual int `json:"casual"`
	Earned int `json:"earned"`
	Total  int `json:"total"`
}

// ForType returns the remaining balance for a leave type.
// Unknown types fall back to the total pool.
func (b LeaveBalance) ForType(leaveType string) int {
	switch leaveType {
	case "sick":
		return b.Sick
	case "casual":
		return b.Casual
	case "earned":
		return b.Earned
	default:
		return b.Total
	}
}

// LeaveRecord is a single entry in an employee's leave history.
type LeaveRecord struct {
	Type   string `json:"type"`
	Days   int    `json:"days"`
	Status string `json:"status"` // "pending" or "approved"
}

// Payslip is one month's salary statement.
type Payslip struct {
	Month       string  `json:"month"`
	GrossSalary float64 `json:"gross_salary"`
	Deductions  float64 `json:"deductions"`
	NetSalary   float64 `json:"net_salary"`
}

// TaxInfo holds the yearly tax calculation for an employee.
type TaxInfo struct {
	Year        int     `json:"year"`
	GrossIncome float64 `json:"gross_income"`
	TaxDeducted float64 `json:"tax_deducted"`
	TaxRate     string  `json:"tax_rate"`
}

// EmergencyContact is the person to reach in an emergency.
type EmergencyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Employee is a single employee record. Loaded once at startup,
// mutated in-memory by the leave and profile handlers.
type Employee struct {
	EmployeeID       string           `json:"employee_id"`
	Password         string           `json:"password"` // demo seed data, plain text by contract
	Name             string           `json:"name"`
	Department       string           `json:"department"`
	ManagerID        string           `json:"manager_id"`
	Phone            string           `json:"phone"`
	Email            string           `json:"email"`
	EmergencyContact EmergencyContact `json:"emergency_contact"`
	LeaveBalance     LeaveBalance     `json:"leave_balance"`
	LeaveHistory     []LeaveRecord    `json:"leave_history"`
	AttendanceDays   int              `json:"attendance_days"`
	Salary           float64          `json:"salary"`
	Payslips         []Payslip        `json:"payslips"`
	TaxInfo          TaxInfo          `json:"tax_calculation"`
	Skills           []string         `json:"skills"`
	Goals            []string         `json:"goals"`
	AppraisalCycle   string           `json:"appraisal_cycle"`
	Birthday         string           `json:"birthday"`
	Anniversary      string           `json:"anniversary"`
}

// CompanyInfo is the shared non-personal data served by public intents.
type CompanyInfo struct {
	Name     string   `json:"name"`
	Mission  string   `json:"mission"`
	HRPhone  string   `json:"hr_phone"`
	HREmail  string   `json:"hr_email"`
	Holidays []string `json:"holidays"`
}
