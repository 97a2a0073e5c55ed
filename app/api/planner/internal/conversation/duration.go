package conversation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	hoursPattern     = regexp.MustCompile(`(?i)(\d+\.?\d*)\s*(hour|hora|hr)`)
	minutesPattern   = regexp.MustCompile(`(?i)(\d+)\s*(min|minute|minuto)`)
	bareNumberAnswer = regexp.MustCompile(`^\s*(\d+(?:\.\d+)?)\s*$`)
)

// ExtractDuration reads a duration in hours from free text. Natural phrases
// win over numeric captures.
func ExtractDuration(message string) (float64, bool) {
	lower := strings.ToLower(message)

	switch {
	case containsAny(lower, "half an hour", "media hora"):
		return 0.5, true
	case containsAny(lower, "an hour", "una hora") || lower == "1 hour":
		return 1, true
	case containsAny(lower, "all day", "todo el día", "todo el dia"):
		return 8, true
	}

	if m := hoursPattern.FindStringSubmatch(message); m != nil {
		hours, err := strconv.ParseFloat(m[1], 64)
		return hours, err == nil
	}
	if m := minutesPattern.FindStringSubmatch(message); m != nil {
		minutes, err := strconv.Atoi(m[1])
		return float64(minutes) / 60, err == nil
	}
	if m := bareNumberAnswer.FindStringSubmatch(message); m != nil {
		hours, err := strconv.ParseFloat(m[1], 64)
		return hours, err == nil
	}

	return 0, false
}

// EndTimeAfter adds a duration to a 24h HH:MM start, wrapping the hour at 24
// and clamping minutes at 59 rather than rolling into a new day.
func EndTimeAfter(startTime string, durationHours float64) string {
	parts := strings.SplitN(startTime, ":", 2)
	if len(parts) != 2 {
		return ""
	}
	startHour, err1 := strconv.Atoi(parts[0])
	startMin, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return ""
	}

	total := int(math.Round(float64(startHour*60+startMin) + durationHours*60))
	endHour := total / 60 % 24
	endMin := total % 60
	if endMin > 59 {
		endMin = 59
	}
	return formatClock(endHour, endMin)
}
