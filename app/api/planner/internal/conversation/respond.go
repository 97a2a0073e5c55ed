package conversation

import (
	"strings"
	"time"
)

// eventTypeAnswerTable maps a direct answer to the event-type question onto a
// canonical type. The raw message is kept as the type when nothing matches.
var eventTypeAnswerTable = []keywordCategory{
	{EventDate, []string{"date", "cita", "romantic", "romántic", "esposa", "esposo",
		"novia", "novio", "wife", "husband", "girlfriend", "boyfriend"}},
	{EventCelebration, []string{"birthday", "cumpleaños", "anniversary", "aniversario",
		"celebration", "celebración"}},
	{EventFamily, []string{"family", "familia", "kids", "niños"}},
	{EventFriends, []string{"friends", "amigos", "buddy", "buddies"}},
	{EventGraduation, []string{"graduation", "graduación", "graduate", "graduado"}},
	{EventBusiness, []string{"business", "negocios", "colleagues", "colegas", "work", "trabajo"}},
}

// ParseResponse turns the reply to the currently-active question into a
// targeted context update. An event-type change is checked first no matter
// which question is active: it resets participants to the new type's default
// (preserving a known head count) and deliberately touches nothing else.
func ParseResponse(message string, question QuestionKey, ctx *PlanContext, awaiting Awaiting, now time.Time) Update {
	lower := strings.ToLower(message)

	if question != QuestionEventType {
		if match, ok := ExtractEventType(message); ok && match.Type != ctx.EventType() {
			return eventTypeChange(ctx, match.Type)
		}
	}

	switch question {
	case QuestionEventType:
		eventType := message
		for _, entry := range eventTypeAnswerTable {
			if containsAny(lower, entry.keywords...) {
				eventType = entry.category
				break
			}
		}
		ev := ctx.EventCopy()
		ev.Type = eventType
		return Update{Event: ev}

	case QuestionLocation:
		return parseLocationAnswer(message)

	case QuestionDate:
		ev := ctx.EventCopy()
		ev.DateISO = ResolveDateKeyword(message, now)
		return Update{Event: ev}

	case QuestionStartTime:
		return parseStartTimeAnswer(message, ctx, now)

	case QuestionClarifyAmPm:
		if awaiting.Kind != AwaitAmPm {
			return Update{}
		}
		ev := ctx.EventCopy()
		ev.StartTime = ResolveAmPm(message, awaiting.Hour, awaiting.Minutes)
		return Update{Event: ev, Awaiting: &Awaiting{}}

	case QuestionDuration:
		// Without a resolved start time there is nothing to anchor the end
		// time to; leave it unset and let the sequencer re-ask later.
		if !ctx.StartTimeResolved() {
			return Update{}
		}
		hours, ok := ExtractDuration(message)
		if !ok {
			hours = 2
		}
		ev := ctx.EventCopy()
		ev.EndTime = EndTimeAfter(ev.StartTime, hours)
		return Update{Event: ev}

	case QuestionGroupSize:
		result, ok := ExtractGroupSize(message)
		if !ok {
			result = SizeResult{Size: 2}
		}
		p := ctx.ParticipantsCopy()
		p.Size = result.Size
		if result.Range != "" {
			p.SizeRange = result.Range
		}
		return Update{Participants: p}

	case QuestionGroupType:
		return parseGroupTypeAnswer(lower, ctx)

	case QuestionHasPets:
		p := ctx.ParticipantsCopy()
		p.Pets = containsAny(lower, "yes", "sí", "si", "yeah", "sure",
			"dog", "perro", "cat", "gato", "pet", "mascota")
		p.HasPets = p.Pets
		return Update{Participants: p}

	case QuestionBudget:
		tier, ok := ExtractBudget(message)
		if !ok {
			// As a direct answer to the budget question, "budget" alone
			// means the cheap tier; elsewhere it is just the field name.
			if containsAny(lower, "budget", "presupuesto") {
				tier = BudgetCheap
			} else {
				tier = BudgetModerate
			}
		}
		return Update{Budget: &BudgetInfo{Tier: tier}}

	case QuestionCuisine:
		if cuisines := ExtractCuisines(message); len(cuisines) > 0 {
			p := ctx.PreferencesCopy()
			p.Cuisine = cuisines
			return Update{Preferences: p}
		}

	case QuestionMood:
		if moods := ExtractMoods(message); len(moods) > 0 {
			p := ctx.PreferencesCopy()
			p.Mood = moods
			return Update{Preferences: p}
		}
	}

	return Update{}
}

// eventTypeChange applies a mid-conversation type switch: the new type's
// participant defaults replace the old ones, but an already-stated group size
// survives the switch. Everything else in the context is left alone.
func eventTypeChange(ctx *PlanContext, newType string) Update {
	ev := ctx.EventCopy()
	ev.Type = newType

	participants := DefaultParticipants(newType)
	if ctx.Participants != nil && ctx.Participants.Size > 0 && participants.Size == 0 {
		participants.Size = ctx.Participants.Size
	}
	return Update{Event: ev, Participants: participants}
}

func parseLocationAnswer(message string) Update {
	trimmed := strings.TrimSpace(message)
	var text string

	switch {
	case strings.Contains(message, "Use my current location"),
		strings.Contains(message, "Usar mi ubicación actual"),
		strings.Contains(message, "chips.useLocation"):
		text = GeolocationSentinel
	case strings.Contains(trimmed, ","):
		// City chips arrive as "Plano, TX"; accept immediately.
		text = trimmed
	case zipPattern.MatchString(trimmed):
		text = trimmed
	case strings.ContainsAny(trimmed, "0123456789"):
		text = trimmed
	case len(trimmed) >= 2:
		text = strings.TrimSpace(stripLocationPrepositions(trimmed))
	}

	if text == "" {
		return Update{}
	}
	return Update{Location: LocationUpdate(text)}
}

var locationPrepositions = []string{"in ", "en ", "near ", "cerca de ", "around "}

func stripLocationPrepositions(s string) string {
	lower := strings.ToLower(s)
	for _, prefix := range locationPrepositions {
		if strings.HasPrefix(lower, prefix) {
			return s[len(prefix):]
		}
	}
	return s
}

func parseStartTimeAnswer(message string, ctx *PlanContext, now time.Time) Update {
	lower := lowerTrim(message)

	if lower == "now" || lower == "ahora" || strings.Contains(lower, "chips.now") {
		ev := ctx.EventCopy()
		ev.StartTime = formatClock(now.Hour(), now.Minute())
		return Update{Event: ev}
	}

	result := ExtractTime(message)
	if result.Time == "" {
		// Nothing parsed at all: fall back to the evening default.
		result.Time = "18:00"
	}

	ev := ctx.EventCopy()
	ev.StartTime = result.Time
	update := Update{Event: ev}
	if result.NeedsClarification {
		update.Awaiting = &Awaiting{
			Kind:    AwaitAmPm,
			Hour:    result.Hour,
			Minutes: result.Minutes,
		}
	}
	return update
}

func parseGroupTypeAnswer(lower string, ctx *PlanContext) Update {
	p := ctx.ParticipantsCopy()
	p.IsCouple = containsAny(lower, "couple", "pareja", "partner", "date", "cita",
		"esposa", "esposo", "wife", "husband", "novia", "novio", "girlfriend", "boyfriend")
	if containsAny(lower, "family", "familia", "kid", "niño", "niña", "child") {
		p.Kids = 1
		p.HasKids = true
	}
	p.Pets = containsAny(lower, "pet", "mascota", "dog", "perro", "cat", "gato")
	p.HasPets = p.Pets
	return Update{Participants: p}
}
