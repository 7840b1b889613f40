// date.go — Post date label and output filename formatting.
package post

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate reports a day/month/year triple that is not a real
// calendar date.
var ErrInvalidDate = errors.New("invalid date")

// FormatDate renders the post's date label, e.g. "Jan. 3rd, 2024".
// The triple must name a real calendar date; time.Date normalizes overflow
// (Feb 31 → Mar 2), so the result is checked against the inputs.
func FormatDate(day, month, year int) (string, error) {
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return "", fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return fmt.Sprintf("%s. %d%s, %d", date.Format("Jan"), day, ordinalSuffix(day), year), nil
}

// Filename returns the output file name for a post date, with month and day
// zero-padded to two digits: "2024-01-03.png".
func Filename(year, month, day int) string {
	return fmt.Sprintf("%d-%02d-%02d.png", year, month, day)
}

// ordinalSuffix returns the English ordinal suffix for a day of month.
func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
