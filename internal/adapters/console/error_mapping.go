package console

import (
	"errors"

	"github.com/ogurasousui/employee-record/internal/core/employee"
)

func describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, employee.ErrInvalidCPR):
		return "must be exactly 10 digits"
	case errors.Is(err, employee.ErrInvalidName):
		return "1-30 letters, spaces or hyphens"
	case errors.Is(err, employee.ErrInvalidDepartment):
		return "unknown department"
	case errors.Is(err, employee.ErrInvalidBaseSalary):
		return "must be between 20000 and 100000"
	case errors.Is(err, employee.ErrInvalidEducationalLevel):
		return "must be between 0 and 3"
	case errors.Is(err, employee.ErrUnparseableDate):
		return "not a calendar date in DD/MM/YYYY"
	case errors.Is(err, employee.ErrUnderage):
		return "employee must be at least 18 years old"
	case errors.Is(err, employee.ErrFutureEmployment):
		return "employment date is in the future"
	default:
		return err.Error()
	}
}
