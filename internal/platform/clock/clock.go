package clock

import "time"

// DateLayout is the calendar-date form used for completion dates.
const DateLayout = "2006-01-02"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock reports wall time in the local zone so that "today" matches the
// user's calendar.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// Today formats the clock's current local calendar date.
func Today(c Clock) string {
	return c.Now().Format(DateLayout)
}
