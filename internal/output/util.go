package output

import (
	"errors"
	"strconv"
	"time"
)

// ErrUnsupportedFormat is returned when a report format name does not resolve to a formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

func floatToString(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }

func dateToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
