package validate

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/RayDR/YelpOut/app/api/planner/internal/conversation"
)

type Error struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   string `json:"value,omitempty"`
}

type Result struct {
	Valid  bool    `json:"valid"`
	Errors []Error `json:"errors"`
}

var validEventTypes = []string{
	conversation.EventDate, conversation.EventCelebration, conversation.EventFriends,
	conversation.EventGraduation, conversation.EventBusiness, conversation.EventFamily,
}

var validCuisines = []string{
	"mexican", "italian", "asian", "chinese", "japanese", "thai", "indian",
	"american", "french", "mediterranean", "seafood", "vegetarian", "any",
}

var validMoods = []string{"romantic", "quiet", "lively", "upscale", "casual", "any"}

var validBudgetTiers = []conversation.BudgetTier{
	conversation.BudgetCheap, conversation.BudgetModerate,
	conversation.BudgetUpscale, conversation.BudgetLuxury, conversation.BudgetNone,
}

var (
	zipPattern     = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	cityStPattern  = regexp.MustCompile(`^[A-Za-z\s]+,\s*[A-Z]{2}$`)
	addressPattern = regexp.MustCompile(`^\d+\s+[A-Za-z]`)
	isoPattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockPattern   = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// PlanContext runs the full pre-search validation pass and collects every
// violation instead of stopping at the first.
func PlanContext(ctx *conversation.PlanContext) Result {
	var errors []Error

	appendErr := func(e *Error) {
		if e != nil {
			errors = append(errors, *e)
		}
	}

	appendErr(checkEventType(ctx))
	appendErr(checkLocation(ctx))
	appendErr(checkDate(ctx))
	appendErr(checkTime(ctx.StartTime(), "Start time is required"))
	if ctx.Event != nil && ctx.Event.EndTime != "" {
		appendErr(checkTime(ctx.Event.EndTime, ""))
		appendErr(checkTimeRange(ctx.Event.StartTime, ctx.Event.EndTime))
	}
	appendErr(checkParticipants(ctx))
	appendErr(checkCuisine(ctx))
	appendErr(checkMood(ctx))
	appendErr(checkBudget(ctx))

	return Result{Valid: len(errors) == 0, Errors: errors}
}

func checkEventType(ctx *conversation.PlanContext) *Error {
	eventType := ctx.EventType()
	if eventType == "" {
		return nil
	}
	if !lo.Contains(validEventTypes, eventType) {
		return &Error{
			Field:   "event",
			Message: fmt.Sprintf("invalid event type %q, must be one of: %s", eventType, strings.Join(validEventTypes, ", ")),
			Value:   eventType,
		}
	}
	return nil
}

func checkLocation(ctx *conversation.PlanContext) *Error {
	if ctx.Location == nil || ctx.Location.Text == "" {
		return &Error{Field: "location", Message: "location is required"}
	}
	text := ctx.Location.Text
	if text == conversation.GeolocationSentinel ||
		zipPattern.MatchString(text) ||
		cityStPattern.MatchString(text) ||
		addressPattern.MatchString(text) {
		return nil
	}
	return &Error{
		Field:   "location",
		Message: fmt.Sprintf("invalid location format %q, must be \"City, ST\" or ZIP code", text),
		Value:   text,
	}
}

func checkDate(ctx *conversation.PlanContext) *Error {
	if ctx.Event == nil || ctx.Event.DateISO == "" {
		return &Error{Field: "event", Message: "date is required"}
	}
	dateISO := ctx.Event.DateISO
	if !isoPattern.MatchString(dateISO) {
		return &Error{
			Field:   "event",
			Message: fmt.Sprintf("invalid date format %q, must be YYYY-MM-DD", dateISO),
			Value:   dateISO,
		}
	}
	// Reject impossible calendar dates like 2025-02-30.
	if _, err := time.Parse("2006-01-02", dateISO); err != nil {
		return &Error{
			Field:   "event",
			Message: fmt.Sprintf("invalid date %q", dateISO),
			Value:   dateISO,
		}
	}
	return nil
}

func checkTime(clock, missingMsg string) *Error {
	if clock == "" {
		if missingMsg == "" {
			return nil
		}
		return &Error{Field: "event", Message: missingMsg}
	}
	if clock == conversation.NeedsClarification {
		return nil
	}
	if !clockPattern.MatchString(clock) {
		return &Error{
			Field:   "event",
			Message: fmt.Sprintf("invalid time format %q, must be HH:MM (24h)", clock),
			Value:   clock,
		}
	}
	hours, _ := strconv.Atoi(clock[:2])
	minutes, _ := strconv.Atoi(clock[3:])
	if hours > 23 {
		return &Error{
			Field:   "event",
			Message: fmt.Sprintf("invalid hour %d, must be 0-23", hours),
			Value:   clock,
		}
	}
	if minutes > 59 {
		return &Error{
			Field:   "event",
			Message: fmt.Sprintf("invalid minutes %d, must be 0-59", minutes),
			Value:   clock,
		}
	}
	return nil
}

// checkTimeRange allows an end time before the start (overnight plans) but
// never equal to it.
func checkTimeRange(startTime, endTime string) *Error {
	if startTime == "" || endTime == "" || startTime == conversation.NeedsClarification {
		return nil
	}
	if startTime == endTime {
		return &Error{
			Field:   "event",
			Message: "start time and end time cannot be the same",
			Value:   startTime,
		}
	}
	return nil
}

func checkParticipants(ctx *conversation.PlanContext) *Error {
	if ctx.Participants == nil || ctx.Participants.Size < 1 {
		return &Error{Field: "participants", Message: "group size must be at least 1"}
	}
	if ctx.Participants.Size > 100 {
		return &Error{
			Field:   "participants",
			Message: "group size cannot exceed 100",
			Value:   strconv.Itoa(ctx.Participants.Size),
		}
	}
	if ctx.Participants.Kids < 0 {
		return &Error{
			Field:   "participants",
			Message: "number of kids cannot be negative",
			Value:   strconv.Itoa(ctx.Participants.Kids),
		}
	}
	return nil
}

func checkCuisine(ctx *conversation.PlanContext) *Error {
	if ctx.Preferences == nil || len(ctx.Preferences.Cuisine) == 0 {
		return nil
	}
	invalid := lo.Filter(ctx.Preferences.Cuisine, func(c string, _ int) bool {
		return !lo.Contains(validCuisines, c)
	})
	if len(invalid) > 0 {
		return &Error{
			Field:   "preferences",
			Message: fmt.Sprintf("invalid cuisine types: %s", strings.Join(invalid, ", ")),
			Value:   strings.Join(invalid, ","),
		}
	}
	return nil
}

func checkMood(ctx *conversation.PlanContext) *Error {
	if ctx.Preferences == nil || len(ctx.Preferences.Mood) == 0 {
		return nil
	}
	invalid := lo.Filter(ctx.Preferences.Mood, func(m string, _ int) bool {
		return !lo.Contains(validMoods, m)
	})
	if len(invalid) > 0 {
		return &Error{
			Field:   "preferences",
			Message: fmt.Sprintf("invalid mood types: %s", strings.Join(invalid, ", ")),
			Value:   strings.Join(invalid, ","),
		}
	}
	return nil
}

func checkBudget(ctx *conversation.PlanContext) *Error {
	if ctx.Budget == nil || ctx.Budget.Tier == "" {
		return nil
	}
	if !lo.Contains(validBudgetTiers, ctx.Budget.Tier) {
		return &Error{
			Field:   "budget",
			Message: fmt.Sprintf("invalid budget tier %q", ctx.Budget.Tier),
			Value:   string(ctx.Budget.Tier),
		}
	}
	return nil
}

// FormatGroupDisplay renders "4 people (2 kids, pets)" for summaries.
func FormatGroupDisplay(p *conversation.Participants) string {
	if p == nil || p.Size == 0 {
		return "Not specified"
	}

	noun := "people"
	if p.Size == 1 {
		noun = "person"
	}
	display := fmt.Sprintf("%d %s", p.Size, noun)

	var extras []string
	if p.Kids > 0 {
		kidNoun := "kids"
		if p.Kids == 1 {
			kidNoun = "kid"
		}
		extras = append(extras, fmt.Sprintf("%d %s", p.Kids, kidNoun))
	}
	if p.Pets {
		extras = append(extras, "pets")
	}
	if len(extras) > 0 {
		display += " (" + strings.Join(extras, ", ") + ")"
	}
	return display
}
