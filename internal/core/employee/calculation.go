package employee

import "slices"

const discountPerYear = 0.5

var (
	freeShippingCountries = []string{"Denmark", "Norway", "Sweden"}
	halfShippingCountries = []string{"Iceland", "Finland"}
)

const (
	freeShippingCost = 0
	halfShippingCost = 50
	fullShippingCost = 100
)

// Salary は基本給に教育レベル加算を足した給与を返します。
// 基本給か教育レベルのどちらかが未設定なら 0 です。
func (e *Employee) Salary() float64 {
	base, ok := e.baseSalary.get()
	if !ok {
		return 0
	}
	level, ok := e.educationalLevel.get()
	if !ok {
		return 0
	}
	return base + float64(level)*EducationBonus
}

// Discount は勤続満年数 1 年につき 0.5 の社員割引を返します。入社日が未設定なら 0 です。
func (e *Employee) Discount() float64 {
	doe, ok := e.dateOfEmployment.get()
	if !ok {
		return 0
	}
	return float64(doe.YearsUntil(today(e.clock))) * discountPerYear
}

// ShippingCosts は国名に応じた送料を返します。国名は大文字小文字を区別して比較します。
func (e *Employee) ShippingCosts() float64 {
	country, ok := e.country.get()
	if !ok {
		return fullShippingCost
	}
	switch {
	case slices.Contains(freeShippingCountries, country):
		return freeShippingCost
	case slices.Contains(halfShippingCountries, country):
		return halfShippingCost
	default:
		return fullShippingCost
	}
}

