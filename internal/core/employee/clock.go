package employee

import "time"

// Clock は現在時刻を提供します。
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// ClockFunc は関数を Clock として扱うためのアダプタです。
type ClockFunc func() time.Time

// Now は f を呼び出します。
func (f ClockFunc) Now() time.Time {
	return f()
}

// FixedClock は常に指定日の 0 時を返す Clock を生成します。
func FixedClock(today Date) Clock {
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.Local)
	return ClockFunc(func() time.Time { return t })
}

func today(c Clock) Date {
	return DateOf(c.Now())
}
