package employee

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"unicode/utf8"
)

const (
	maxNameLength = 30

	MinBaseSalary = 20000
	MaxBaseSalary = 100000

	// EducationBonus は教育レベル 1 段階あたりの加算額です。
	EducationBonus = 1220
)

var (
	cprPattern  = regexp.MustCompile(`^[0-9]{10}$`)
	namePattern = regexp.MustCompile(`^[a-zA-ZæøåñçáéíóúàèìòùäëïöüâêîôûÆØÅÑÇÁÉÍÓÚÀÈÌÒÙÄËÏÖÜÂÊÎÔÛ \-]+$`)
)

// Departments は所属可能な部署の一覧です。
var Departments = []string{"HR", "Finance", "IT", "Sales", "General Services"}

// ValidateCPR は CPR 番号が半角数字 10 桁であることを検証します。
func ValidateCPR(raw string) error {
	if !cprPattern.MatchString(raw) {
		return ErrInvalidCPR
	}
	return nil
}

// ValidateName は氏名 (姓・名共通) を検証します。
func ValidateName(raw string) error {
	n := utf8.RuneCountInString(raw)
	if n < 1 || n > maxNameLength {
		return fmt.Errorf("length %d: %w", n, ErrInvalidName)
	}
	if !namePattern.MatchString(raw) {
		return ErrInvalidName
	}
	return nil
}

// ValidateDepartment は部署名を検証します。空文字列は「部署なし」として有効です。
func ValidateDepartment(raw string) error {
	if raw == "" || slices.Contains(Departments, raw) {
		return nil
	}
	return ErrInvalidDepartment
}

// ValidateBaseSalary は基本給の範囲を検証します。
func ValidateBaseSalary(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrInvalidBaseSalary
	}
	if v < MinBaseSalary || v > MaxBaseSalary {
		return ErrInvalidBaseSalary
	}
	return nil
}

// TruncateCents は値を 1 セント単位に切り捨てます。
// 内側の丸めは 2 進浮動小数点の表現誤差を吸収するためのもので、
// 35045.987 のように端数が 0.5 セント以上あると繰り上がります。
func TruncateCents(v float64) float64 {
	return math.Floor(math.RoundToEven(v*100)) / 100
}

// ValidateEducationalLevel は教育レベルの添字を検証します。
func ValidateEducationalLevel(v int) error {
	if v < int(EducationNone) || v > int(EducationTertiary) {
		return ErrInvalidEducationalLevel
	}
	return nil
}

// ValidateDateOfBirth は生年月日を解析し、today 時点で 18 歳以上であることを検証します。
func ValidateDateOfBirth(raw string, today Date) (Date, error) {
	dob, err := ParseDate(raw)
	if err != nil {
		return Date{}, err
	}
	if dob.AddYears(adultAge).After(today) {
		return Date{}, ErrUnderage
	}
	return dob, nil
}

// ValidateDateOfEmployment は入社日を解析し、today 以前であることを検証します。
func ValidateDateOfEmployment(raw string, today Date) (Date, error) {
	doe, err := ParseDate(raw)
	if err != nil {
		return Date{}, err
	}
	if doe.After(today) {
		return Date{}, ErrFutureEmployment
	}
	return doe, nil
}

const adultAge = 18
