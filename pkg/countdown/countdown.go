package countdown

import (
	"fmt"
	"time"
)

// Parts is a duration split the way a countdown clock displays it.
type Parts struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
}

// Remaining returns the time left until deadline. Parts are all zero once the
// deadline has passed.
func Remaining(now, deadline time.Time) Parts {
	d := deadline.Sub(now)
	if d <= 0 {
		return Parts{}
	}
	total := int64(d / time.Second)
	return Parts{
		Days:    int(total / 86400),
		Hours:   int(total / 3600 % 24),
		Minutes: int(total / 60 % 60),
		Seconds: int(total % 60),
	}
}

// Pad formats n with at least two digits.
func Pad(n int) string {
	return fmt.Sprintf("%02d", n)
}
