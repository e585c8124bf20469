package employee

import (
	"context"
	"errors"
	"fmt"
)

// Service は社員レコードに関するユースケースをまとめます。
type Service struct {
	clock Clock
}

// UseCase は社員ユースケースの公開インターフェースです。
type UseCase interface {
	Onboard(ctx context.Context, in ProfileInput) (*ApplyResult, error)
	Apply(ctx context.Context, emp *Employee, in ProfileInput) (*ApplyResult, error)
	Summarize(ctx context.Context, emp *Employee) (*Summary, error)
}

// NewService は Service を生成します。
func NewService(clock Clock) *Service {
	if clock == nil {
		clock = realClock{}
	}
	return &Service{clock: clock}
}

// ProfileInput は社員レコードへ一括で適用する生の入力です。nil の項目は変更しません。
type ProfileInput struct {
	CPR              *string
	FirstName        *string
	LastName         *string
	Department       *string
	BaseSalary       *float64
	EducationalLevel *int
	DateOfBirth      *string
	DateOfEmployment *string
	Country          *string
}

// Rejection は受理されなかった入力を表します。
type Rejection struct {
	Field Field
	Value any
	Err   error
}

func (r Rejection) Error() string {
	return fmt.Sprintf("%s=%v: %v", r.Field, r.Value, r.Err)
}

func (r Rejection) Unwrap() error {
	return r.Err
}

// ApplyResult は入力適用の結果です。
type ApplyResult struct {
	Employee *Employee
	Accepted []Field
	Rejected []Rejection
}

// Err は全ての Rejection を結合したエラーを返します。全項目が受理された場合は nil です。
func (r *ApplyResult) Err() error {
	if len(r.Rejected) == 0 {
		return nil
	}
	errs := make([]error, 0, len(r.Rejected))
	for _, rej := range r.Rejected {
		errs = append(errs, rej)
	}
	return errors.Join(errs...)
}

// Summary は社員レコードと派生値のスナップショットです。
type Summary struct {
	CPR              string
	FirstName        string
	LastName         string
	Department       string
	BaseSalary       float64
	EducationalLevel string
	DateOfBirth      string
	DateOfEmployment string
	Country          string

	Salary        float64
	Discount      float64
	ShippingCosts float64
}

// Onboard は新しい社員レコードを生成し、入力を適用します。
func (s *Service) Onboard(ctx context.Context, in ProfileInput) (*ApplyResult, error) {
	return s.Apply(ctx, New(s.clock), in)
}

// Apply は既存の社員レコードへ入力を適用します。
// 検証に失敗した項目は Rejected に記録され、保持中の値は変わりません。
func (s *Service) Apply(ctx context.Context, emp *Employee, in ProfileInput) (*ApplyResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, ErrNilEmployee
	}

	result := &ApplyResult{Employee: emp}
	record := func(f Field, v any, err error) {
		if err != nil {
			result.Rejected = append(result.Rejected, Rejection{Field: f, Value: v, Err: err})
			return
		}
		result.Accepted = append(result.Accepted, f)
	}

	if in.CPR != nil {
		record(FieldCPR, *in.CPR, emp.assignCPR(*in.CPR))
	}
	if in.FirstName != nil {
		record(FieldFirstName, *in.FirstName, emp.assignFirstName(*in.FirstName))
	}
	if in.LastName != nil {
		record(FieldLastName, *in.LastName, emp.assignLastName(*in.LastName))
	}
	if in.Department != nil {
		record(FieldDepartment, *in.Department, emp.assignDepartment(*in.Department))
	}
	if in.BaseSalary != nil {
		record(FieldBaseSalary, *in.BaseSalary, emp.assignBaseSalary(*in.BaseSalary))
	}
	if in.EducationalLevel != nil {
		record(FieldEducationalLevel, *in.EducationalLevel, emp.assignEducationalLevel(*in.EducationalLevel))
	}
	if in.DateOfBirth != nil {
		record(FieldDateOfBirth, *in.DateOfBirth, emp.assignDateOfBirth(*in.DateOfBirth))
	}
	if in.DateOfEmployment != nil {
		record(FieldDateOfEmployment, *in.DateOfEmployment, emp.assignDateOfEmployment(*in.DateOfEmployment))
	}
	if in.Country != nil {
		emp.SetCountry(*in.Country)
		record(FieldCountry, *in.Country, nil)
	}

	return result, nil
}

// Summarize は社員レコードの現在値と派生値を返します。
func (s *Service) Summarize(ctx context.Context, emp *Employee) (*Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, ErrNilEmployee
	}

	return &Summary{
		CPR:              emp.CPR(),
		FirstName:        emp.FirstName(),
		LastName:         emp.LastName(),
		Department:       emp.Department(),
		BaseSalary:       emp.BaseSalary(),
		EducationalLevel: emp.EducationalLevel(),
		DateOfBirth:      emp.DateOfBirth(),
		DateOfEmployment: emp.DateOfEmployment(),
		Country:          emp.Country(),
		Salary:           emp.Salary(),
		Discount:         emp.Discount(),
		ShippingCosts:    emp.ShippingCosts(),
	}, nil
}
