package inmemory

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"ess-chatbot/internal/employee/repository"
	"ess-chatbot/internal/model"
	pkgLog "ess-chatbot/pkg/log"
)

// Store is an in-memory employee repository seeded from a JSON file at
// startup. Mutations live for the process lifetime only.
type Store struct {
	l       pkgLog.Logger
	company model.CompanyInfo

	mu        sync.RWMutex
	employees map[string]*model.Employee
}

var _ repository.Repository = (*Store)(nil)

type seedFile struct {
	Company   model.CompanyInfo `json:"company"`
	Employees []model.Employee  `json:"employees"`
}

// New loads the seed file and validates it. Any schema violation fails
// startup loudly rather than serving partial data.
func New(l pkgLog.Logger, path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read employee data %q: %w", path, err)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse employee data %q: %w", path, err)
	}

	if len(seed.Employees) == 0 {
		return nil, fmt.Errorf("employee data %q contains no employees", path)
	}

	employees := make(map[string]*model.Employee, len(seed.Employees))
	for i := range seed.Employees {
		emp := seed.Employees[i]
		if emp.EmployeeID == "" {
			return nil, fmt.Errorf("employee record %d has no id", i)
		}
		if _, ok := employees[emp.EmployeeID]; ok {
			return nil, fmt.Errorf("duplicate employee id %q", emp.EmployeeID)
		}
		b := emp.LeaveBalance
		if b.Sick < 0 || b.Casual < 0 || b.Earned < 0 || b.Total < 0 {
			return nil, fmt.Errorf("employee %q has a negative leave balance", emp.EmployeeID)
		}
		employees[emp.EmployeeID] = &seed.Employees[i]
	}

	return &Store{
		l:         l,
		company:   seed.Company,
		employees: employees,
	}, nil
}
