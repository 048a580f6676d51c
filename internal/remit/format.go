package remit

import (
	"strconv"
	"strings"
	"time"
)

// FormatDate renders a date as DD/MM/YYYY, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

// FormatAmount renders a monetary amount with exactly two decimal places.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// filenameDate is the MMDD token used in generated filenames.
func filenameDate(t time.Time) string {
	return t.Format("0102")
}

// adviceStamp is the uppercase MonYYDD token stamped on advice rows. It is
// a different encoding than the filename date and the two are intentionally
// not unified.
func adviceStamp(t time.Time) string {
	return strings.ToUpper(t.Format("Jan0602"))
}
