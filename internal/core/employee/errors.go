package employee

import "errors"

var (
	ErrInvalidCPR              = errors.New("employee: invalid cpr")
	ErrInvalidName             = errors.New("employee: invalid name")
	ErrInvalidDepartment       = errors.New("employee: invalid department")
	ErrInvalidBaseSalary       = errors.New("employee: base salary out of range")
	ErrInvalidEducationalLevel = errors.New("employee: invalid educational level")
	ErrUnparseableDate         = errors.New("employee: unparseable date")
	ErrUnderage                = errors.New("employee: younger than 18 years")
	ErrFutureEmployment        = errors.New("employee: employment date in the future")
	ErrNilEmployee             = errors.New("employee: nil record")
)
