package conversation

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// changePatterns match explicit edit requests in both languages:
// "change the time to 8pm", "cambiar la fecha a mañana", "make it 6pm".
var changePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(change|modify|update|set|cambiar|modificar|actualizar)\s+(?:the\s+|la\s+|el\s+)?(\w+)\s+(?:to|a)\s+(.+)`),
	regexp.MustCompile(`(?i)\b(make|hacer)\s+(?:it|the)\s+(\w+)\s+(.+)`),
}

var (
	changeTimePattern       = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(am|pm)?`)
	changeHourOnlyPattern   = regexp.MustCompile(`(?i)(\d{1,2})\s*(am|pm)`)
	changeNearMePattern     = regexp.MustCompile(`(?i)\b(near me|cerca de mi|my location|mi ubicación|mi ubicacion|current location|aquí|aqui|here)\b`)
	changeHoursPattern      = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:hour|hora|hr)`)
	changeMinutesPattern    = regexp.MustCompile(`(?i)(\d+)\s*(?:min|minute|minuto)`)
	changeBareNumberPattern = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*$`)
)

// DetectChangeRequest recognizes a mid-conversation edit of an already
// answered field. On a hit it returns the question the edit belongs to and
// the update carrying the new value; the zero return means no edit intent.
func DetectChangeRequest(message string, ctx *PlanContext, now time.Time) (QuestionKey, Update, bool) {
	for _, pattern := range changePatterns {
		m := pattern.FindStringSubmatch(message)
		if m == nil {
			continue
		}
		fieldHint := strings.ToLower(m[2])
		newValue := strings.TrimSpace(m[3])

		switch {
		case strings.Contains(fieldHint, "time") || strings.Contains(fieldHint, "hora"):
			if update, ok := parseTimeValue(newValue, ctx); ok {
				return QuestionStartTime, update, true
			}
		case strings.Contains(fieldHint, "date") || strings.Contains(fieldHint, "fecha") ||
			strings.Contains(fieldHint, "day") || strings.Contains(fieldHint, "día"):
			if update, ok := parseDateValue(newValue, ctx, now); ok {
				return QuestionDate, update, true
			}
		case strings.Contains(fieldHint, "location") || strings.Contains(fieldHint, "place") ||
			strings.Contains(fieldHint, "ubicación") || strings.Contains(fieldHint, "lugar"):
			return QuestionLocation, parseLocationValue(newValue), true
		case strings.Contains(fieldHint, "budget") || strings.Contains(fieldHint, "price") ||
			strings.Contains(fieldHint, "presupuesto") || strings.Contains(fieldHint, "precio"):
			if update, ok := parseBudgetValue(newValue); ok {
				return QuestionBudget, update, true
			}
		case strings.Contains(fieldHint, "duration") || strings.Contains(fieldHint, "duración") ||
			strings.Contains(fieldHint, "long") || strings.Contains(fieldHint, "hours"):
			return QuestionDuration, parseDurationValue(newValue, ctx), true
		}
	}
	return "", Update{}, false
}

func parseTimeValue(value string, ctx *PlanContext) (Update, bool) {
	var hour, minutes int
	var meridiem string

	if m := changeTimePattern.FindStringSubmatch(value); m != nil {
		hour, _ = strconv.Atoi(m[1])
		minutes, _ = strconv.Atoi(m[2])
		meridiem = m[3]
	} else if m := changeHourOnlyPattern.FindStringSubmatch(value); m != nil {
		hour, _ = strconv.Atoi(m[1])
		meridiem = m[2]
	} else {
		return Update{}, false
	}

	if meridiem != "" {
		hour = meridiemTo24(hour, meridiem)
	}
	ev := ctx.EventCopy()
	ev.StartTime = formatClock(hour, minutes)
	return Update{Event: ev}, true
}

func parseDateValue(value string, ctx *PlanContext, now time.Time) (Update, bool) {
	lower := lowerTrim(value)
	ev := ctx.EventCopy()

	switch {
	case lower == "today" || lower == "hoy":
		ev.DateISO = LocalISO(now)
	case lower == "tomorrow" || lower == "mañana":
		ev.DateISO = LocalISO(now.AddDate(0, 0, 1))
	case isoDatePattern.MatchString(strings.TrimSpace(value)):
		ev.DateISO = strings.TrimSpace(value)
	default:
		return Update{}, false
	}
	return Update{Event: ev}, true
}

func parseLocationValue(value string) Update {
	trimmed := strings.TrimSpace(value)
	if changeNearMePattern.MatchString(trimmed) {
		return Update{Location: LocationUpdate(GeolocationSentinel)}
	}
	return Update{Location: LocationUpdate(trimmed)}
}

func parseBudgetValue(value string) (Update, bool) {
	lower := strings.ToLower(value)

	var tier BudgetTier
	switch {
	case strings.Contains(lower, "$$$$") || strings.Contains(lower, "luxury") || strings.Contains(lower, "lujo"):
		tier = BudgetLuxury
	case strings.Contains(lower, "$$$") || strings.Contains(lower, "upscale") || strings.Contains(lower, "alto"):
		tier = BudgetUpscale
	case strings.Contains(lower, "$$") || strings.Contains(lower, "moderate") || strings.Contains(lower, "moderado"):
		tier = BudgetModerate
	case strings.Contains(lower, "$") || strings.Contains(lower, "economical") || strings.Contains(lower, "económico"):
		tier = BudgetCheap
	default:
		return Update{}, false
	}
	return Update{Budget: &BudgetInfo{Tier: tier}}, true
}

func parseDurationValue(value string, ctx *PlanContext) Update {
	lower := strings.ToLower(value)
	hours := 2.0

	switch {
	case strings.Contains(lower, "half") || strings.Contains(lower, "media"):
		hours = 0.5
	case strings.Contains(lower, "all day") || strings.Contains(lower, "todo el día"):
		hours = 8
	default:
		if m := changeHoursPattern.FindStringSubmatch(value); m != nil {
			hours, _ = strconv.ParseFloat(m[1], 64)
		} else if m := changeMinutesPattern.FindStringSubmatch(value); m != nil {
			minutes, _ := strconv.Atoi(m[1])
			hours = float64(minutes) / 60
		} else if m := changeBareNumberPattern.FindStringSubmatch(value); m != nil {
			hours, _ = strconv.ParseFloat(m[1], 64)
		}
	}

	startTime := "18:00"
	if ctx.StartTimeResolved() {
		startTime = ctx.Event.StartTime
	}
	ev := ctx.EventCopy()
	ev.EndTime = EndTimeAfter(startTime, hours)
	return Update{Event: ev}
}
