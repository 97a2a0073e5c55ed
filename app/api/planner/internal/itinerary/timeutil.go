package itinerary

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	meridiemClockPattern = regexp.MustCompile(`(?i)(\d+):(\d+)\s*(AM|PM)`)
	hoursRangePattern    = regexp.MustCompile(`(?i)(\d+:\d+\s*[AP]M)\s*-\s*(\d+:\d+\s*[AP]M)`)
)

// ParseTimeToMinutes reads a clock string as minutes since midnight. Both the
// display form ("6:30 PM") and the 24-hour form ("18:30") are accepted;
// unparseable input maps to 0.
func ParseTimeToMinutes(timeStr string) int {
	if m := meridiemClockPattern.FindStringSubmatch(timeStr); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		period := strings.ToUpper(m[3])
		if period == "PM" && hours != 12 {
			hours += 12
		}
		if period == "AM" && hours == 12 {
			hours = 0
		}
		return hours*60 + minutes
	}

	parts := strings.SplitN(timeStr, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hours, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	minutes, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return 0
	}
	return hours*60 + minutes
}

// FormatMinutesToTime renders minutes since midnight as "H:MM AM/PM".
func FormatMinutesToTime(minutes int) string {
	hours := minutes / 60 % 24
	mins := minutes % 60
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	display := hours
	switch {
	case hours == 0:
		display = 12
	case hours > 12:
		display = hours - 12
	}
	return fmt.Sprintf("%d:%02d %s", display, mins, period)
}

// FormatMinutesToClock renders minutes since midnight as 24-hour "HH:MM",
// wrapping past midnight.
func FormatMinutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60%24, minutes%60)
}

// AddMinutes shifts a 24-hour clock string forward, wrapping past midnight.
func AddMinutes(timeStr string, minutes int) string {
	return FormatMinutesToClock(ParseTimeToMinutes(timeStr) + minutes)
}

type ClosingStatus struct {
	IsClosed          bool
	ClosingSoon       bool
	MinutesUntilClose int
}

const openEnded = 1 << 20

// CheckClosingTime inspects a place's posted hours ("9:00 AM - 10:00 PM")
// against a clock position. Places without usable hours are treated as open.
func CheckClosingTime(place *Place, currentMinutes int) ClosingStatus {
	if place == nil || len(place.Hours) == 0 {
		return ClosingStatus{MinutesUntilClose: openEnded}
	}

	m := hoursRangePattern.FindStringSubmatch(place.Hours[0])
	if m == nil {
		return ClosingStatus{MinutesUntilClose: openEnded}
	}

	closeAt := ParseTimeToMinutes(m[2])
	remaining := closeAt - currentMinutes
	return ClosingStatus{
		IsClosed:          remaining <= 0,
		ClosingSoon:       remaining > 0 && remaining <= 60,
		MinutesUntilClose: remaining,
	}
}

// FilterByClosingTime drops places already closed or within 30 minutes of
// closing at the given start time.
func FilterByClosingTime(places []Place, startMinutes int) []Place {
	kept := make([]Place, 0, len(places))
	for i := range places {
		status := CheckClosingTime(&places[i], startMinutes)
		if !status.IsClosed && status.MinutesUntilClose >= 30 {
			kept = append(kept, places[i])
		}
	}
	return kept
}

// Recalculate rebuilds the timeline after blocks are reordered or skipped.
// Skipped blocks keep their original times and do not advance the cursor.
func Recalculate(blocks []PlanBlock, startTime string) []PlanBlock {
	cursor := ParseTimeToMinutes(startTime)

	out := make([]PlanBlock, len(blocks))
	for i, block := range blocks {
		if block.Skipped {
			out[i] = block
			continue
		}
		block.StartTime = FormatMinutesToTime(cursor)
		cursor += block.DurationMinutes
		block.EndTime = FormatMinutesToTime(cursor)
		out[i] = block
	}
	return out
}

// ShouldRemoveBlock reports whether the block's selected place would close
// before the block finishes.
func ShouldRemoveBlock(block *PlanBlock) bool {
	if block.Selected == "" {
		return false
	}
	var selected *Place
	for i := range block.Options {
		if block.Options[i].ID == block.Selected {
			selected = &block.Options[i]
			break
		}
	}
	if selected == nil {
		return false
	}

	status := CheckClosingTime(selected, ParseTimeToMinutes(block.StartTime))
	return status.IsClosed || status.MinutesUntilClose < block.DurationMinutes
}
