package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	isoDatePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockPattern    = regexp.MustCompile(`^\d{2}:\d{2}$`)
	meridiemPattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)`)
	hour24Pattern   = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	rangePattern    = regexp.MustCompile(`(.+?)\s*-\s*(.+)`)
)

// ToMinutes converts an "HH:MM" clock value into minutes since midnight.
// Malformed input yields zero.
func ToMinutes(clock string) int {
	if clock == "" {
		return 0
	}
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil {
		return 0
	}
	return h*60 + m
}

// FromMinutes renders minutes since midnight as a zero-padded "HH:MM" value.
func FromMinutes(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// AddMinutes shifts an "HH:MM" clock value forward by the given minutes.
func AddMinutes(clock string, mins int) string {
	return FromMinutes(ToMinutes(clock) + mins)
}

// FormatSeconds renders a countdown total as "MM:SS".
func FormatSeconds(totalSeconds int) string {
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}

// FormatTaskDuration renders a fractional-minute task duration for display.
// Sub-minute values are shown in seconds.
func FormatTaskDuration(minutes float64, long bool) string {
	if minutes < 1 {
		seconds := int(minutes*60 + 0.5)
		if long {
			suffix := "s"
			if seconds == 1 {
				suffix = ""
			}
			return fmt.Sprintf("%d second%s", seconds, suffix)
		}
		return fmt.Sprintf("%ds", seconds)
	}
	if long {
		return fmt.Sprintf("%d min", int(minutes))
	}
	return fmt.Sprintf("%dm", int(minutes))
}

// ParseFormattedDate normalizes a display date like "Mon, Nov 18" to ISO
// YYYY-MM-DD. A date resolving more than 30 days in the past is assumed to
// belong to next year. Unparseable input returns the provided default.
func ParseFormattedDate(dateStr, defaultDate string, now time.Time) string {
	if dateStr == "" {
		return defaultDate
	}
	if isoDatePattern.MatchString(dateStr) {
		return dateStr
	}

	parsed, err := parseWithYear(dateStr, now.Year())
	if err != nil {
		return defaultDate
	}
	if parsed.Sub(now) < -30*24*time.Hour {
		next, err := parseWithYear(dateStr, now.Year()+1)
		if err == nil {
			parsed = next
		}
	}
	return parsed.Format("2006-01-02")
}

func parseWithYear(dateStr string, year int) (time.Time, error) {
	candidate := fmt.Sprintf("%s, %d", dateStr, year)
	for _, layout := range []string{"Mon, Jan 2, 2006", "Jan 2, 2006", "Monday, January 2, 2006"} {
		if parsed, err := time.Parse(layout, candidate); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", dateStr)
}

// ParseClock normalizes a time like "9:30 AM" or "19:30" to 24-hour "HH:MM".
// Unparseable input returns an empty string.
func ParseClock(timeStr string) string {
	timeStr = strings.TrimSpace(timeStr)
	if timeStr == "" {
		return ""
	}
	if clockPattern.MatchString(timeStr) {
		return timeStr
	}

	if match := meridiemPattern.FindStringSubmatch(timeStr); match != nil {
		hours, _ := strconv.Atoi(match[1])
		minutes := match[2]
		period := strings.ToUpper(match[3])
		if period == "PM" && hours != 12 {
			hours += 12
		} else if period == "AM" && hours == 12 {
			hours = 0
		}
		return fmt.Sprintf("%02d:%s", hours, minutes)
	}

	if match := hour24Pattern.FindStringSubmatch(timeStr); match != nil {
		hours, _ := strconv.Atoi(match[1])
		if hours >= 0 && hours <= 23 {
			return fmt.Sprintf("%02d:%s", hours, match[2])
		}
	}

	return ""
}

// ClockRange holds the endpoints extracted from a time-range string.
type ClockRange struct {
	Start string
	End   string
}

// ParseClockRange splits "9:30 AM - 11:00 AM" into normalized start and end
// times. A single time value yields only a start.
func ParseClockRange(timeStr string) ClockRange {
	if timeStr == "" {
		return ClockRange{}
	}
	if match := rangePattern.FindStringSubmatch(timeStr); match != nil {
		return ClockRange{
			Start: ParseClock(match[1]),
			End:   ParseClock(match[2]),
		}
	}
	return ClockRange{Start: ParseClock(timeStr)}
}
