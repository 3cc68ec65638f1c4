package usecase

import (
	"context"
	"fmt"
	"strings"
)

func (uc *implUseCase) handleMyManager(ctx context.Context, in handlerInput) (string, error) {
	if in.employee.ManagerID == "" {
		return "You do not have a manager (you are the head).", nil
	}

	manager, err := uc.repo.Get(ctx, in.employee.ManagerID)
	if err != nil {
		uc.l.Warnf(ctx, "my_manager: manager %s of %s not found: %v",
			in.employee.ManagerID, in.employee.EmployeeID, err)
		return "Your manager is not on record. Please contact HR.", nil
	}
	return fmt.Sprintf("Your manager is %s.", manager.Name), nil
}

func (uc *implUseCase) handleMyDepartment(ctx context.Context, in handlerInput) (string, error) {
	return fmt.Sprintf("You work in the %s department.", in.employee.Department), nil
}

func (uc *implUseCase) handleMyProfile(ctx context.Context, in handlerInput) (string, error) {
	emp := in.employee
	manager := "Not assigned"
	if emp.ManagerID != "" {
		if m, err := uc.repo.Get(ctx, emp.ManagerID); err == nil {
			manager = m.Name
		}
	}
	return fmt.Sprintf("Hello %s! Your Employee ID is %s, you work in %s department, and your manager is %s.",
		emp.Name, emp.EmployeeID, emp.Department, manager), nil
}

func (uc *implUseCase) handleSkills(ctx context.Context, in handlerInput) (string, error) {
	if len(in.employee.Skills) == 0 {
		return "You have no skills on record yet.", nil
	}
	return "Your skills: " + strings.Join(in.employee.Skills, ", "), nil
}

func (uc *implUseCase) handleGoalsObjectives(ctx context.Context, in handlerInput) (string, error) {
	if len(in.employee.Goals) == 0 {
		return "You have no goals on record yet.", nil
	}

	var b strings.Builder
	b.WriteString("Your goals:")
	for _, g := range in.employee.Goals {
		b.WriteString("\n• " + g)
	}
	return b.String(), nil
}

func (uc *implUseCase) handleAppraisalCycle(ctx context.Context, in handlerInput) (string, error) {
	cycle := in.employee.AppraisalCycle
	if cycle == "" {
		cycle = "Not scheduled"
	}
	return fmt.Sprintf("Your appraisal cycle: %s", cycle), nil
}

func (uc *implUseCase) handleBirthdayAnniversary(ctx context.Context, in handlerInput) (string, error) {
	birthday := in.employee.Birthday
	if birthday == "" {
		birthday = "Not provided"
	}
	anniversary := in.employee.Anniversary
	if anniversary == "" {
		anniversary = "Not provided"
	}
	return fmt.Sprintf("Birthday: %s, Work Anniversary: %s", birthday, anniversary), nil
}

func (uc *implUseCase) handleUpdatePhone(ctx context.Context, in handlerInput) (string, error) {
	phone := in.entities.PhoneNumber
	if phone == "" {
		return "Please provide the new phone number. Use +91 followed by 10 digits.", nil
	}

	if err := uc.repo.UpdatePhone(ctx, in.employee.EmployeeID, phone); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone number updated successfully to %s.", phone), nil
}

func (uc *implUseCase) handleUpdateEmergencyContact(ctx context.Context, in handlerInput) (string, error) {
	phone := in.entities.PhoneNumber
	if phone == "" {
		return "Please provide the new emergency contact phone number. Use +91 followed by 10 digits.", nil
	}

	if err := uc.repo.UpdateEmergencyContact(ctx, in.employee.EmployeeID, phone); err != nil {
		return "", err
	}
	return fmt.Sprintf("Emergency contact updated successfully to %s.", phone), nil
}
