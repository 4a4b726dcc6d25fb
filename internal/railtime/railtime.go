// Package railtime handles the HHMM time-of-day strings used throughout the
// Realtime Trains API, plus UK wall-clock and service-date helpers.
//
// Times are kept as 4-digit strings, not time.Time: they carry no date or
// zone, and all arithmetic is same-day minutes-since-midnight. Neither the
// delay nor any transfer computation handles a crossing of midnight; that
// matches upstream behavior and is pinned by tests rather than papered over.
package railtime

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// InvalidFormatError reports a user-supplied time or date string that could
// not be parsed. It is always recoverable: reject the one request.
type InvalidFormatError struct {
	Input string
	Want  string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format %q: expected %s", e.Input, e.Want)
}

var (
	colonTime = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	digits    = regexp.MustCompile(`^\d+$`)
	dashDate  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	slashDate = regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`)
)

// NormalizeHHMM converts H:MM, HH:MM, a bare 4-digit, or a bare 3-digit
// string (the malformed single-digit-hour case, "930" meaning 09:30) to a
// zero-padded 4-digit HHMM string. It is the validation boundary for all
// user-supplied time filters and is idempotent on its own output.
func NormalizeHHMM(s string) (string, error) {
	if strings.Contains(s, ":") {
		m := colonTime.FindStringSubmatch(s)
		if m == nil {
			return "", &InvalidFormatError{Input: s, Want: "HH:MM (e.g. 09:30 or 14:00)"}
		}
		hours := m[1]
		if len(hours) == 1 {
			hours = "0" + hours
		}
		return hours + m[2], nil
	}

	if digits.MatchString(s) {
		switch len(s) {
		case 4:
			return s, nil
		case 3:
			return "0" + s, nil
		}
	}

	return "", &InvalidFormatError{Input: s, Want: "HH:MM (e.g. 09:30 or 14:00)"}
}

// ToMinutes converts a normalized HHMM string to minutes since midnight.
// Callers also feed it raw upstream time fields, so anything shorter than
// four digits reads as 0 rather than panicking mid-request. No range
// validation beyond what NormalizeHHMM already guarantees.
func ToMinutes(hhmm string) int {
	if len(hhmm) < 4 {
		return 0
	}
	h := int(hhmm[0]-'0')*10 + int(hhmm[1]-'0')
	m := int(hhmm[2]-'0')*10 + int(hhmm[3]-'0')
	return h*60 + m
}

// Delay returns the signed difference in minutes between a scheduled and an
// actual/estimated HHMM time. Positive is late, negative is early. Missing
// data on either side yields 0: delay is advisory display data, so "no
// data" reads as "no delay" rather than an error.
func Delay(scheduled, actual string) int {
	if scheduled == "" || actual == "" {
		return 0
	}
	return ToMinutes(actual) - ToMinutes(scheduled)
}

// Display renders an HHMM (or HHMMSS) string as HH:MM for output.
// Empty input renders as the "--:--" placeholder.
func Display(hhmm string) string {
	switch len(hhmm) {
	case 0:
		return "--:--"
	case 4, 6:
		return hhmm[:2] + ":" + hhmm[2:4]
	default:
		return hhmm
	}
}

// ukZone is resolved once; the fixed UTC+0 fallback only matters on hosts
// with no tzdata, where board default times will be wrong but well-formed.
var ukZone = func() *time.Location {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		return time.UTC
	}
	return loc
}()

// NowUK returns the current wall-clock time in the Europe/London zone,
// which is what every upstream HHMM value is expressed in.
func NowUK() time.Time {
	return time.Now().In(ukZone)
}

// NowHHMM returns the current UK time as an HHMM string, the default value
// for board "from" filters.
func NowHHMM() string {
	return NowUK().Format("1504")
}

// ServiceDate converts a YYYY-MM-DD or YYYY/MM/DD date to the YYYY/MM/DD
// form the upstream URL scheme uses. An empty input means today in the UK.
func ServiceDate(date string) (string, error) {
	switch {
	case date == "":
		return NowUK().Format("2006/01/02"), nil
	case dashDate.MatchString(date):
		return strings.ReplaceAll(date, "-", "/"), nil
	case slashDate.MatchString(date):
		return date, nil
	default:
		return "", &InvalidFormatError{Input: date, Want: "YYYY-MM-DD or YYYY/MM/DD"}
	}
}
