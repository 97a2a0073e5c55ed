package conversation

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

type QuestionKey string

const (
	QuestionEventType   QuestionKey = "eventType"
	QuestionLocation    QuestionKey = "location"
	QuestionDate        QuestionKey = "date"
	QuestionStartTime   QuestionKey = "startTime"
	QuestionDuration    QuestionKey = "duration"
	QuestionGroupSize   QuestionKey = "groupSize"
	QuestionGroupType   QuestionKey = "groupType"
	QuestionHasPets     QuestionKey = "hasPets"
	QuestionBudget      QuestionKey = "budget"
	QuestionCuisine     QuestionKey = "cuisine"
	QuestionMood        QuestionKey = "mood"
	QuestionClarifyAmPm QuestionKey = "clarifyAmPm"
)

// Question is one static entry of the conversation flow. The ordered table is
// the single source of truth for sequencing; DependsOn makes cross-field
// preconditions explicit instead of leaving them implicit in table order.
type Question struct {
	Key            QuestionKey
	TranslationKey string
	Chips          []string
	ChipsFunc      func(ctx *PlanContext, now time.Time) []string
	ContextField   string
	Required       bool
	DependsOn      []QuestionKey
	ShouldAsk      func(ctx *PlanContext) bool
}

// Event types that never make sense for a single person.
var multiPersonEventTypes = []string{
	"date", "cita", "family", "familia", "anniversary", "aniversario",
	"couple", "pareja", "friends", "amigos", "graduation", "graduación",
	"graduacion", "business", "negocios", "colleagues", "colegas",
}

// Event types whose group is always a couple; the group-size question is
// skipped for them entirely.
var coupleEventTypes = []string{"date", "cita", "anniversary", "aniversario"}

var allTimeChips = []string{
	"chips.now",
	"10:00 AM",
	"12:00 PM",
	"2:00 PM",
	"6:00 PM",
	"8:00 PM",
}

var chipTimePattern = regexp.MustCompile(`(?i)(\d+):(\d+)\s*(AM|PM)`)

var Flow = []Question{
	{
		Key:            QuestionEventType,
		TranslationKey: "questions.eventType",
		Chips: []string{
			"chips.date", "chips.celebration", "chips.friendsOuting",
			"chips.graduation", "chips.businessMeal", "chips.familyTime",
		},
		ContextField: "event",
		Required:     false,
		ShouldAsk:    func(ctx *PlanContext) bool { return ctx.EventType() == "" },
	},
	{
		Key:            QuestionLocation,
		TranslationKey: "questions.location",
		Chips: []string{
			"chips.useLocation", "Dallas, TX", "Plano, TX", "Frisco, TX",
		},
		ContextField: "location",
		Required:     true,
		ShouldAsk: func(ctx *PlanContext) bool {
			return ctx.Location == nil || ctx.Location.Text == ""
		},
	},
	{
		Key:            QuestionDate,
		TranslationKey: "questions.date",
		Chips:          []string{"chips.today", "chips.tomorrow", "chips.chooseDate"},
		ContextField:   "event",
		Required:       true,
		ShouldAsk: func(ctx *PlanContext) bool {
			return ctx.Event == nil || ctx.Event.DateISO == ""
		},
	},
	{
		Key:            QuestionStartTime,
		TranslationKey: "questions.startTime",
		ChipsFunc:      startTimeChips,
		ContextField:   "event",
		Required:       true,
		// The clarification sentinel counts as still unanswered.
		ShouldAsk: func(ctx *PlanContext) bool { return !ctx.StartTimeResolved() },
	},
	{
		Key:            QuestionDuration,
		TranslationKey: "questions.duration",
		Chips:          []string{"chips.hours2", "chips.hours4", "chips.hours6", "chips.allDay"},
		ContextField:   "event",
		Required:       true,
		DependsOn:      []QuestionKey{QuestionStartTime},
		ShouldAsk: func(ctx *PlanContext) bool {
			if !ctx.StartTimeResolved() {
				return false
			}
			return ctx.Event.EndTime == ""
		},
	},
	{
		Key:            QuestionGroupSize,
		TranslationKey: "questions.groupSize",
		ChipsFunc:      groupSizeChips,
		ContextField:   "participants",
		Required:       true,
		ShouldAsk: func(ctx *PlanContext) bool {
			// Date/anniversary outings default to a couple.
			eventType := strings.ToLower(ctx.EventType())
			for _, t := range coupleEventTypes {
				if strings.Contains(eventType, t) {
					return false
				}
			}
			return ctx.Participants == nil || ctx.Participants.Size == 0
		},
	},
	{
		Key:            QuestionGroupType,
		TranslationKey: "questions.groupType",
		Chips: []string{
			"chips.couple2", "chips.familyKids", "chips.friends2",
			"chips.colleagues", "chips.withPet",
		},
		ContextField: "participants",
		Required:     false,
		// Superseded by the combined kids/pets checkboxes in the UI.
		ShouldAsk: func(ctx *PlanContext) bool { return false },
	},
	{
		Key:            QuestionHasPets,
		TranslationKey: "questions.hasPets",
		Chips:          []string{"chips.yes", "chips.no"},
		ContextField:   "participants",
		Required:       false,
		// Superseded by the combined kids/pets checkboxes in the UI.
		ShouldAsk: func(ctx *PlanContext) bool { return false },
	},
	{
		Key:            QuestionBudget,
		TranslationKey: "questions.budget",
		Chips: []string{
			"chips.economical", "chips.moderate", "chips.upscale",
			"chips.luxury", "chips.noPreference",
		},
		ContextField: "budget",
		Required:     false,
		ShouldAsk: func(ctx *PlanContext) bool {
			return ctx.Budget == nil || ctx.Budget.Tier == ""
		},
	},
	{
		Key:            QuestionCuisine,
		TranslationKey: "questions.cuisine",
		Chips: []string{
			"cuisine.mexican", "cuisine.italian", "cuisine.asian",
			"cuisine.american", "cuisine.mediterranean", "chips.noPreference",
		},
		ContextField: "preferences",
		Required:     false,
		ShouldAsk: func(ctx *PlanContext) bool {
			return ctx.Preferences == nil || len(ctx.Preferences.Cuisine) == 0
		},
	},
	{
		Key:            QuestionMood,
		TranslationKey: "questions.mood",
		Chips: []string{
			"mood.calm", "mood.romantic", "mood.fun", "mood.fancy",
			"mood.casual", "chips.noPreference",
		},
		ContextField: "preferences",
		Required:     false,
		ShouldAsk: func(ctx *PlanContext) bool {
			return ctx.Preferences == nil || len(ctx.Preferences.Mood) == 0
		},
	},
}

// NextQuestion returns the first table entry still wanting an answer.
func NextQuestion(ctx *PlanContext) *Question {
	for i := range Flow {
		if Flow[i].ShouldAsk(ctx) {
			return &Flow[i]
		}
	}
	return nil
}

// QuestionByKey looks up a flow entry; nil for unknown keys.
func QuestionByKey(key QuestionKey) *Question {
	for i := range Flow {
		if Flow[i].Key == key {
			return &Flow[i]
		}
	}
	return nil
}

// QuestionChips evaluates a question's chip set against the context.
func QuestionChips(q *Question, ctx *PlanContext, now time.Time) []string {
	if q == nil {
		return nil
	}
	if q.ChipsFunc != nil {
		return q.ChipsFunc(ctx, now)
	}
	return q.Chips
}

// HasAllRequiredInfo reports completion: every required question satisfied and
// no question, optional ones included, left to ask. Optional preferences count
// as resolved only once answered or explicitly opted out.
func HasAllRequiredInfo(ctx *PlanContext) bool {
	for i := range Flow {
		if Flow[i].Required && Flow[i].ShouldAsk(ctx) {
			return false
		}
	}
	for i := range Flow {
		if Flow[i].ShouldAsk(ctx) {
			return false
		}
	}
	return true
}

// startTimeChips drops past options when the chosen date is today, keeping a
// 30-minute buffer and always retaining the "now" chip.
func startTimeChips(ctx *PlanContext, now time.Time) []string {
	if ctx.Event == nil || ctx.Event.DateISO != LocalISO(now) {
		return allTimeChips
	}

	return lo.Filter(allTimeChips, func(chip string, _ int) bool {
		if chip == "chips.now" {
			return true
		}
		m := chipTimePattern.FindStringSubmatch(chip)
		if m == nil {
			return true
		}
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		hour = meridiemTo24(hour, m[3])

		if hour > now.Hour() {
			return true
		}
		return hour == now.Hour() && minute > now.Minute()+30
	})
}

// groupSizeChips hides "just me" for inherently multi-person event types.
func groupSizeChips(ctx *PlanContext, _ time.Time) []string {
	chips := []string{"chips.justMe", "chips.couple", "chips.small", "chips.medium", "chips.large"}

	eventType := strings.ToLower(ctx.EventType())
	for _, t := range multiPersonEventTypes {
		if strings.Contains(eventType, t) {
			return lo.Filter(chips, func(chip string, _ int) bool {
				return chip != "chips.justMe"
			})
		}
	}
	return chips
}

// ValidateTimeForToday rejects start times already in the past when the
// selected date is today.
func ValidateTimeForToday(dateISO, timeStr string, now time.Time) bool {
	if dateISO != LocalISO(now) {
		return true
	}
	parts := strings.SplitN(timeStr, ":", 2)
	if len(parts) != 2 {
		return true
	}
	hour, err1 := strconv.Atoi(parts[0])
	minute, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return true
	}
	return hour*60+minute >= now.Hour()*60+now.Minute()
}
