package employee

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	minYear = 1
	maxYear = 9999
)

// Date は時刻を持たない暦日です。ゼロ値は未設定を表します。
type Date struct {
	year  int
	month time.Month
	day   int
}

// NewDate は実在する暦日であれば Date を返します。
func NewDate(year int, month time.Month, day int) (Date, error) {
	if year < minYear || year > maxYear {
		return Date{}, ErrUnparseableDate
	}
	if month < time.January || month > time.December {
		return Date{}, ErrUnparseableDate
	}
	if day < 1 || day > daysIn(year, month) {
		return Date{}, ErrUnparseableDate
	}
	return Date{year: year, month: month, day: day}, nil
}

// ParseDate は "DD/MM/YYYY" 形式の文字列を解析します。
// 桁のゼロ埋めは任意で、"23/8/2006" も受け付けます。
func ParseDate(raw string) (Date, error) {
	parts := strings.Split(raw, "/")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%q: %w", raw, ErrUnparseableDate)
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Date{}, fmt.Errorf("%q: %w", raw, ErrUnparseableDate)
		}
		nums[i] = n
	}

	d, err := NewDate(nums[2], time.Month(nums[1]), nums[0])
	if err != nil {
		return Date{}, fmt.Errorf("%q: %w", raw, err)
	}
	return d, nil
}

// DateOf は t の所在地における暦日を返します。
func DateOf(t time.Time) Date {
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

func (d Date) Year() int          { return d.year }
func (d Date) Month() time.Month  { return d.month }
func (d Date) Day() int           { return d.day }
func (d Date) IsZero() bool       { return d.year == 0 }
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }
func (d Date) Equal(o Date) bool  { return d.Compare(o) == 0 }

// Compare は d が o より前なら -1、同日なら 0、後なら +1 を返します。
func (d Date) Compare(o Date) int {
	switch {
	case d.year != o.year:
		return cmp.Compare(d.year, o.year)
	case d.month != o.month:
		return cmp.Compare(d.month, o.month)
	default:
		return cmp.Compare(d.day, o.day)
	}
}

// AddYears は n 年後の同じ月日を返します。該当日が存在しない場合
// (閏日から平年へ移る場合) は月末に丸めます。
func (d Date) AddYears(n int) Date {
	year := d.year + n
	day := d.day
	if last := daysIn(year, d.month); day > last {
		day = last
	}
	return Date{year: year, month: d.month, day: day}
}

// YearsUntil は d から later までに経過した満年数を返します。
func (d Date) YearsUntil(later Date) int {
	if later.Before(d) {
		return -later.YearsUntil(d)
	}
	n := later.year - d.year
	if d.AddYears(n).After(later) {
		n--
	}
	return n
}

// String は "DD/MM/YYYY" 形式で返します。ゼロ値は空文字列です。
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%02d/%02d/%04d", d.day, int(d.month), d.year)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

