package conversation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// TimeResult is the outcome of scanning text for a start time. When the hour
// is ambiguous (1-12, no meridiem, no time-of-day hint) Time holds the
// NeedsClarification sentinel and Hour/Minutes carry the raw pieces.
type TimeResult struct {
	Time               string
	NeedsClarification bool
	Hour               int
	Minutes            int
}

var (
	mealHintPattern = regexp.MustCompile(`(?i)\bpara\s+(comer|almorzar|lunch)\b`)

	explicitTimePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(am|pm)`),                      // 3:30pm
		regexp.MustCompile(`(?i)\b(\d{1,2})\s*(am|pm)`),                            // 3pm
		regexp.MustCompile(`(?i)(?:at|a(?:\s+las)?)\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)`), // a las 3 pm
	}

	// 24h clock: 13-23 hours resolve without a meridiem.
	clock24Pattern = regexp.MustCompile(`\b(\d{1,2}):(\d{2})\b`)

	aroundPattern = regexp.MustCompile(`(?i)(?:por\s+ah[ií]|alrededor|around)\s+(?:de\s+)?(?:las?\s+)?(\d{1,2})(?:\s+o\s+(\d{1,2}))?`)

	ambiguousHourPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:at|a)\s+(?:las?\s+)?(\d{1,2})(?::(\d{2}))?\b`), // a las 5, at 5
		regexp.MustCompile(`(?i)\blas?\s+(\d{1,2})(?::(\d{2}))?\b`),                 // las 5
	}

	eveningHintPattern   = regexp.MustCompile(`(?i)\b(evening|tarde|noche|tonight|esta\s+noche)\b`)
	afternoonHintPattern = regexp.MustCompile(`(?i)\b(afternoon|mediodía|mediodia)\b`)
	morningHintPattern   = regexp.MustCompile(`(?i)\b(morning|mañana)\b`)
)

// Fixed phrases resolved only when no explicit clock is present.
type timeExpression struct {
	patterns []*regexp.Regexp
	time     string
}

var timeExpressions = []timeExpression{
	{compileAll(`\b(al\s+)?medio\s*d[ií]a\b`, `\bnoon\b`, `\bmediod[ií]a\b`), "12:00"},
	{compileAll(`\ben\s+la\s+ma[ñn]ana\b`, `\bmorning\b`), "10:00"},
	{compileAll(`\b(en|por)\s+la\s+tarde\b`, `\bafternoon\b`), "14:00"},
	{compileAll(`\b(en|por)\s+la\s+noche\b`, `\bevening\b`), "18:00"},
	{compileAll(`\bnight\b`), "20:00"},
}

func formatClock(hour, minutes int) string {
	return fmt.Sprintf("%02d:%02d", hour, minutes)
}

func meridiemTo24(hour int, meridiem string) int {
	switch strings.ToUpper(meridiem) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}
	return hour
}

// resolveWithHints applies a time-of-day hint found elsewhere in the message
// to a bare 1-12 hour. Returns "" when no hint applies.
func resolveWithHints(message string, hour, minutes int) string {
	switch {
	case eveningHintPattern.MatchString(message) && hour >= 1 && hour <= 11:
		return formatClock(hour+12, minutes)
	case afternoonHintPattern.MatchString(message) && hour >= 1 && hour <= 5:
		return formatClock(hour+12, minutes)
	case morningHintPattern.MatchString(message) && hour >= 6 && hour <= 12:
		return formatClock(hour, minutes)
	}
	return ""
}

// ExtractTime scans free text for a start time. Fully-resolved forms win;
// a bare 1-12 hour without meridiem or hint requests clarification rather
// than guessing, since a wrong guess silently corrupts the plan.
func ExtractTime(message string) TimeResult {
	if mealHintPattern.MatchString(message) {
		return TimeResult{Time: "12:00"}
	}

	for _, pattern := range explicitTimePatterns {
		m := pattern.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		hour, _ := strconv.Atoi(m[1])
		minutes := 0
		meridiem := m[len(m)-1]
		if len(m) > 3 && m[2] != "" {
			minutes, _ = strconv.Atoi(m[2])
		}
		return TimeResult{Time: formatClock(meridiemTo24(hour, meridiem), minutes)}
	}

	if m := clock24Pattern.FindStringSubmatch(message); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		if hour <= 23 && minutes <= 59 {
			return TimeResult{Time: formatClock(hour, minutes)}
		}
	}

	if m := aroundPattern.FindStringSubmatch(message); m != nil {
		hour, _ := strconv.Atoi(m[1])
		if m[2] != "" {
			// "11 o 12": take the midpoint of the range
			second, _ := strconv.Atoi(m[2])
			hour = (hour + second) / 2
		}
		if resolved := resolveWithHints(message, hour, 0); resolved != "" {
			return TimeResult{Time: resolved}
		}
		if hour >= 1 && hour <= 12 {
			return TimeResult{Time: NeedsClarification, NeedsClarification: true, Hour: hour}
		}
	}

	for _, pattern := range ambiguousHourPatterns {
		m := pattern.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		hour, _ := strconv.Atoi(m[1])
		minutes := 0
		if m[2] != "" {
			minutes, _ = strconv.Atoi(m[2])
		}
		if resolved := resolveWithHints(message, hour, minutes); resolved != "" {
			return TimeResult{Time: resolved}
		}
		if hour >= 1 && hour <= 12 {
			return TimeResult{
				Time:               NeedsClarification,
				NeedsClarification: true,
				Hour:               hour,
				Minutes:            minutes,
			}
		}
	}

	for _, expr := range timeExpressions {
		for _, pattern := range expr.patterns {
			if pattern.MatchString(message) {
				return TimeResult{Time: expr.time}
			}
		}
	}

	return TimeResult{}
}

// ResolveAmPm finalizes a previously-ambiguous hour from the user's reply
// ("am"/"pm" or mañana/tarde/noche).
func ResolveAmPm(reply string, hour, minutes int) string {
	lower := strings.ToLower(reply)
	switch {
	case strings.Contains(lower, "pm") || strings.Contains(lower, "tarde") || strings.Contains(lower, "noche"):
		if hour != 12 {
			hour += 12
		}
	case strings.Contains(lower, "am") || strings.Contains(lower, "mañana") || strings.Contains(lower, "morning"):
		if hour == 12 {
			hour = 0
		}
	}
	return formatClock(hour, minutes)
}
