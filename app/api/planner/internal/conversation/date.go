package conversation

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	todayPattern      = regexp.MustCompile(`(?i)\b(hoy|today)\b`)
	tonightPattern    = regexp.MustCompile(`(?i)\b(tonight|tonite|this\s+(evening|afternoon|morning|night))\b`)
	estaNochePattern  = regexp.MustCompile(`(?i)\besta\s+(noche|tarde|mañana)\b`)
	tomorrowPattern   = regexp.MustCompile(`(?i)\b(mañana|tomorrow)\b`)
	// "en la mañana" means "in the morning", not "tomorrow".
	morningOfPattern  = regexp.MustCompile(`(?i)\b(la|en)\s+mañana\b`)
	slashDatePattern  = regexp.MustCompile(`(\d{1,2})/(\d{1,2})(?:/(\d{2,4}))?`)
	isoDatePattern    = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
)

type weekdayNames struct {
	names   []string
	weekday time.Weekday
}

var weekdayTable = []weekdayNames{
	{[]string{"sunday", "sun", "domingo", "dom"}, time.Sunday},
	{[]string{"monday", "mon", "lunes", "lun"}, time.Monday},
	{[]string{"tuesday", "tue", "tues", "martes", "mar"}, time.Tuesday},
	{[]string{"wednesday", "wed", "miércoles", "miercoles", "mie"}, time.Wednesday},
	{[]string{"thursday", "thu", "thur", "thurs", "jueves", "jue"}, time.Thursday},
	{[]string{"friday", "fri", "viernes", "vie"}, time.Friday},
	{[]string{"saturday", "sat", "sábado", "sabado", "sab"}, time.Saturday},
}

// LocalISO formats a moment as YYYY-MM-DD in its own location, never shifting
// through UTC, which would lose a day for evening users west of Greenwich.
func LocalISO(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// ExtractDate resolves a free-text date reference to a local YYYY-MM-DD string.
// Returns "" when nothing matches.
func ExtractDate(message string, now time.Time) string {
	if todayPattern.MatchString(message) ||
		tonightPattern.MatchString(message) ||
		estaNochePattern.MatchString(message) {
		return LocalISO(now)
	}

	if tomorrowPattern.MatchString(message) && !morningOfPattern.MatchString(message) {
		return LocalISO(now.AddDate(0, 0, 1))
	}

	if iso := extractNamedWeekday(message, now); iso != "" {
		return iso
	}

	if m := slashDatePattern.FindStringSubmatch(message); m != nil {
		month, _ := strconv.Atoi(m[1])
		day, _ := strconv.Atoi(m[2])
		year := now.Year()
		if m[3] != "" {
			year, _ = strconv.Atoi(m[3])
			if year < 100 {
				year += 2000
			}
		}
		d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
		return LocalISO(d)
	}

	return ""
}

// extractNamedWeekday handles "this Saturday" / "next lunes" style references.
// A named day already past this week rolls to next week; "next" adds another 7.
func extractNamedWeekday(message string, now time.Time) string {
	for _, day := range weekdayTable {
		for _, name := range day.names {
			thisPattern := regexp.MustCompile(`(?i)\b(this|este|esta)\s+` + name + `\b`)
			nextPattern := regexp.MustCompile(`(?i)\b(next|pr[óo]ximo|pr[óo]xima)\s+` + name + `\b`)

			if !thisPattern.MatchString(message) && !nextPattern.MatchString(message) {
				continue
			}

			daysToAdd := int(day.weekday) - int(now.Weekday())
			if daysToAdd <= 0 {
				daysToAdd += 7
			}
			if nextPattern.MatchString(message) {
				daysToAdd += 7
			}
			return LocalISO(now.AddDate(0, 0, daysToAdd))
		}
	}
	return ""
}

// ResolveDateKeyword handles the date question's literal chip answers:
// today, tomorrow and weekend (the upcoming Saturday, a full week ahead when
// today already is Saturday), plus ISO and M/D[/Y] formats. Unlike
// ExtractDate it always produces a date, defaulting to today.
func ResolveDateKeyword(message string, now time.Time) string {
	lower := lowerTrim(message)

	switch lower {
	case "today", "hoy", "chips.today":
		return LocalISO(now)
	case "tomorrow", "mañana", "chips.tomorrow":
		return LocalISO(now.AddDate(0, 0, 1))
	case "weekend", "fin de semana", "chips.weekend":
		daysUntilSaturday := (int(time.Saturday) - int(now.Weekday()) + 7) % 7
		if daysUntilSaturday == 0 {
			daysUntilSaturday = 7
		}
		return LocalISO(now.AddDate(0, 0, daysUntilSaturday))
	}

	if isoDatePattern.MatchString(lower) {
		return lower
	}
	if iso := ExtractDate(message, now); iso != "" {
		return iso
	}
	return LocalISO(now)
}
