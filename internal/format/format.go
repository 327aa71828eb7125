// Package format renders dates and times using the legacy PHP-style pattern
// syntax the host's settings use (e.g. "F j, Y", "g:i a"). A backslash
// escapes the next rune so literal letters can appear in a pattern;
// unrecognized runes pass through unchanged.
package format

import (
	"strconv"
	"strings"
	"time"
)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var monthNamesShort = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

var dayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// MonthName returns the English month name for a 1-based month number.
func MonthName(month time.Month) string {
	return monthNames[int(month)-1]
}

// DayName returns the English weekday name for a time.Weekday index.
func DayName(w time.Weekday) string {
	return dayNames[int(w)]
}

// MonthTitle renders the calendar header line, e.g. "March 2024".
func MonthTitle(year int, month time.Month) string {
	return MonthName(month) + " " + strconv.Itoa(year)
}

// Date renders a date with a PHP-style pattern. Recognized tokens:
// F full month, M short month, m zero-padded month, n month, d zero-padded
// day, j day, Y four-digit year, y two-digit year.
func Date(t time.Time, pattern string) string {
	if pattern == "" {
		return ""
	}
	var b strings.Builder
	escaped := false
	for _, r := range pattern {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case 'F':
			b.WriteString(monthNames[int(t.Month())-1])
		case 'M':
			b.WriteString(monthNamesShort[int(t.Month())-1])
		case 'm':
			b.WriteString(pad2(int(t.Month())))
		case 'n':
			b.WriteString(strconv.Itoa(int(t.Month())))
		case 'd':
			b.WriteString(pad2(t.Day()))
		case 'j':
			b.WriteString(strconv.Itoa(t.Day()))
		case 'Y':
			b.WriteString(strconv.Itoa(t.Year()))
		case 'y':
			y := strconv.Itoa(t.Year())
			if len(y) > 2 {
				y = y[len(y)-2:]
			}
			b.WriteString(y)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ISO renders an ISO date string ("YYYY-MM-DD") with a PHP-style pattern.
// A malformed date yields "" rather than an error: the event still renders
// with whatever fields are valid.
func ISO(iso, pattern string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return ""
	}
	return Date(t, pattern)
}

// Clock renders a "HH:MM" or "HH:MM:SS" time-of-day string with a PHP-style
// pattern. Recognized tokens: H zero-padded 24h hour, G 24h hour, h
// zero-padded 12h hour, g 12h hour, i minutes, s seconds, A "AM"/"PM",
// a "am"/"pm". Malformed input yields "".
func Clock(clock, pattern string) string {
	if clock == "" || pattern == "" {
		return ""
	}
	parts := strings.Split(clock, ":")
	if len(parts) < 2 {
		return ""
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return ""
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return ""
	}
	seconds := 0
	if len(parts) > 2 {
		if seconds, err = strconv.Atoi(parts[2]); err != nil || seconds < 0 || seconds > 59 {
			return ""
		}
	}

	hours12 := hours % 12
	if hours12 == 0 {
		hours12 = 12
	}
	meridiem := "AM"
	if hours >= 12 {
		meridiem = "PM"
	}

	var b strings.Builder
	escaped := false
	for _, r := range pattern {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case 'H':
			b.WriteString(pad2(hours))
		case 'G':
			b.WriteString(strconv.Itoa(hours))
		case 'h':
			b.WriteString(pad2(hours12))
		case 'g':
			b.WriteString(strconv.Itoa(hours12))
		case 'i':
			b.WriteString(pad2(minutes))
		case 's':
			b.WriteString(pad2(seconds))
		case 'A':
			b.WriteString(meridiem)
		case 'a':
			b.WriteString(strings.ToLower(meridiem))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
