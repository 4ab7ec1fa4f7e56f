package model

import "time"

// DateLayout is the only date format the service accepts or emits.
// Dates are persisted as strings in this layout, so lexicographic
// comparison matches calendar order.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func Today() string {
	return time.Now().Format(DateLayout)
}
