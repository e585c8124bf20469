package employee

import "fmt"

// EducationLevel は教育レベルの添字です。
type EducationLevel int

const (
	EducationNone EducationLevel = iota
	EducationPrimary
	EducationSecondary
	EducationTertiary
)

var educationLabels = [...]string{"None", "Primary", "Secondary", "Tertiary"}

func (l EducationLevel) String() string {
	if l < EducationNone || l > EducationTertiary {
		return fmt.Sprintf("EducationLevel(%d)", int(l))
	}
	return educationLabels[l]
}

// Field は社員レコードの項目名です。
type Field string

const (
	FieldCPR              Field = "cpr"
	FieldFirstName        Field = "first_name"
	FieldLastName         Field = "last_name"
	FieldDepartment       Field = "department"
	FieldBaseSalary       Field = "base_salary"
	FieldEducationalLevel Field = "educational_level"
	FieldDateOfBirth      Field = "date_of_birth"
	FieldDateOfEmployment Field = "date_of_employment"
	FieldCountry          Field = "country"
)

// Fields は全項目を定義順に並べたものです。
var Fields = []Field{
	FieldCPR,
	FieldFirstName,
	FieldLastName,
	FieldDepartment,
	FieldBaseSalary,
	FieldEducationalLevel,
	FieldDateOfBirth,
	FieldDateOfEmployment,
	FieldCountry,
}

type optional[T any] struct {
	value T
	ok    bool
}

func (o *optional[T]) set(v T) {
	o.value = v
	o.ok = true
}

func (o optional[T]) get() (T, bool) {
	return o.value, o.ok
}

// Employee は社員エンティティです。
//
// 各項目は Set 系メソッドでのみ更新され、検証に失敗した値は保持中の値を変更しません。
// getter は一度も受理されていない項目について既定値 (空文字列または 0) を返します。
// 同一インスタンスを複数の goroutine から更新する場合は呼び出し側で直列化してください。
type Employee struct {
	clock Clock

	cpr              optional[string]
	firstName        optional[string]
	lastName         optional[string]
	department       optional[string]
	baseSalary       optional[float64]
	educationalLevel optional[EducationLevel]
	dateOfBirth      optional[Date]
	dateOfEmployment optional[Date]
	country          optional[string]
}

// New は全項目が未設定の Employee を生成します。clock が nil の場合はシステム時計を使います。
func New(clock Clock) *Employee {
	if clock == nil {
		clock = realClock{}
	}
	return &Employee{clock: clock}
}

func (e *Employee) CPR() string {
	v, _ := e.cpr.get()
	return v
}

func (e *Employee) SetCPR(raw string) bool {
	return e.assignCPR(raw) == nil
}

func (e *Employee) assignCPR(raw string) error {
	if err := ValidateCPR(raw); err != nil {
		return err
	}
	e.cpr.set(raw)
	return nil
}

func (e *Employee) FirstName() string {
	v, _ := e.firstName.get()
	return v
}

func (e *Employee) SetFirstName(raw string) bool {
	return e.assignFirstName(raw) == nil
}

func (e *Employee) assignFirstName(raw string) error {
	if err := ValidateName(raw); err != nil {
		return err
	}
	e.firstName.set(raw)
	return nil
}

func (e *Employee) LastName() string {
	v, _ := e.lastName.get()
	return v
}

func (e *Employee) SetLastName(raw string) bool {
	return e.assignLastName(raw) == nil
}

func (e *Employee) assignLastName(raw string) error {
	if err := ValidateName(raw); err != nil {
		return err
	}
	e.lastName.set(raw)
	return nil
}

func (e *Employee) Department() string {
	v, _ := e.department.get()
	return v
}

func (e *Employee) SetDepartment(raw string) bool {
	return e.assignDepartment(raw) == nil
}

func (e *Employee) assignDepartment(raw string) error {
	if err := ValidateDepartment(raw); err != nil {
		return err
	}
	e.department.set(raw)
	return nil
}

// BaseSalary は 1 セント単位に切り捨て済みの基本給を返します。未設定なら 0 です。
func (e *Employee) BaseSalary() float64 {
	v, _ := e.baseSalary.get()
	return v
}

func (e *Employee) SetBaseSalary(v float64) bool {
	return e.assignBaseSalary(v) == nil
}

func (e *Employee) assignBaseSalary(v float64) error {
	if err := ValidateBaseSalary(v); err != nil {
		return err
	}
	e.baseSalary.set(TruncateCents(v))
	return nil
}

// EducationalLevel は教育レベルの表示名を返します。未設定なら空文字列です。
func (e *Employee) EducationalLevel() string {
	v, ok := e.educationalLevel.get()
	if !ok {
		return ""
	}
	return v.String()
}

// EducationIndex は保持している教育レベルの添字を返します。
func (e *Employee) EducationIndex() (EducationLevel, bool) {
	return e.educationalLevel.get()
}

func (e *Employee) SetEducationalLevel(v int) bool {
	return e.assignEducationalLevel(v) == nil
}

func (e *Employee) assignEducationalLevel(v int) error {
	if err := ValidateEducationalLevel(v); err != nil {
		return err
	}
	e.educationalLevel.set(EducationLevel(v))
	return nil
}

// DateOfBirth は生年月日を "DD/MM/YYYY" 形式で返します。未設定なら空文字列です。
func (e *Employee) DateOfBirth() string {
	v, _ := e.dateOfBirth.get()
	return v.String()
}

func (e *Employee) BirthDate() (Date, bool) {
	return e.dateOfBirth.get()
}

func (e *Employee) SetDateOfBirth(raw string) bool {
	return e.assignDateOfBirth(raw) == nil
}

func (e *Employee) assignDateOfBirth(raw string) error {
	dob, err := ValidateDateOfBirth(raw, today(e.clock))
	if err != nil {
		return err
	}
	e.dateOfBirth.set(dob)
	return nil
}

// DateOfEmployment は入社日を "DD/MM/YYYY" 形式で返します。未設定なら空文字列です。
func (e *Employee) DateOfEmployment() string {
	v, _ := e.dateOfEmployment.get()
	return v.String()
}

func (e *Employee) EmploymentDate() (Date, bool) {
	return e.dateOfEmployment.get()
}

func (e *Employee) SetDateOfEmployment(raw string) bool {
	return e.assignDateOfEmployment(raw) == nil
}

func (e *Employee) assignDateOfEmployment(raw string) error {
	doe, err := ValidateDateOfEmployment(raw, today(e.clock))
	if err != nil {
		return err
	}
	e.dateOfEmployment.set(doe)
	return nil
}

func (e *Employee) Country() string {
	v, _ := e.country.get()
	return v
}

// SetCountry は検証なしで国名を保持します。常に true を返します。
func (e *Employee) SetCountry(raw string) bool {
	e.country.set(raw)
	return true
}

// IsSet は項目が一度でも受理されたかを返します。
// 空文字列を返す getter と「未設定」を区別する必要がある場合に使います。
func (e *Employee) IsSet(f Field) bool {
	switch f {
	case FieldCPR:
		return e.cpr.ok
	case FieldFirstName:
		return e.firstName.ok
	case FieldLastName:
		return e.lastName.ok
	case FieldDepartment:
		return e.department.ok
	case FieldBaseSalary:
		return e.baseSalary.ok
	case FieldEducationalLevel:
		return e.educationalLevel.ok
	case FieldDateOfBirth:
		return e.dateOfBirth.ok
	case FieldDateOfEmployment:
		return e.dateOfEmployment.ok
	case FieldCountry:
		return e.country.ok
	default:
		return false
	}
}
