package conversation

import "time"

// ExtractInitialInfo runs every field extractor over the first utterance to
// fill as much of the context as one message allows. Extraction order is
// fixed (event type, date, time, location, budget, mood, cuisine, duration,
// group size): later extractors would otherwise false-positive on words the
// earlier, more specific ones already consumed.
func ExtractInitialInfo(message string, now time.Time) Update {
	var update Update
	corrected := Normalize(message)

	if match, ok := ExtractEventType(corrected); ok {
		update.Event = &EventInfo{Type: match.Type}
		if defaults := DefaultParticipants(match.Type); defaults != nil &&
			(defaults.Size > 0 || defaults.Kids > 0) {
			update.Participants = defaults
		}
	}

	if dateISO := ExtractDate(corrected, now); dateISO != "" {
		if update.Event == nil {
			update.Event = &EventInfo{}
		}
		update.Event.DateISO = dateISO
	}

	timeResult := ExtractTime(corrected)
	if timeResult.Time != "" {
		if update.Event == nil {
			update.Event = &EventInfo{}
		}
		update.Event.StartTime = timeResult.Time
		if timeResult.NeedsClarification {
			update.Awaiting = &Awaiting{
				Kind:    AwaitAmPm,
				Hour:    timeResult.Hour,
				Minutes: timeResult.Minutes,
			}
		}
	}

	// A geolocation sentinel passes through unresolved; the host patches the
	// context once the device location comes back.
	if location := ExtractLocation(corrected); location != "" {
		update.Location = LocationUpdate(location)
	}

	if tier, ok := ExtractBudget(corrected); ok && tier != BudgetNone {
		update.Budget = &BudgetInfo{Tier: tier}
	}

	if moods := matchCategories(lowerTrim(corrected), moodTable); len(moods) > 0 {
		update.Preferences = &Preferences{Mood: moods}
	}

	if cuisines := matchCategories(lowerTrim(corrected), cuisineTable); len(cuisines) > 0 {
		if update.Preferences == nil {
			update.Preferences = &Preferences{}
		}
		update.Preferences.Cuisine = cuisines
	}

	if hours, ok := ExtractDuration(corrected); ok &&
		update.Event != nil && update.Event.StartTime != "" &&
		update.Event.StartTime != NeedsClarification {
		update.Event.EndTime = EndTimeAfter(update.Event.StartTime, hours)
	}

	if update.Participants == nil || update.Participants.Size == 0 {
		if size, ok := ExtractInitialGroupSize(corrected); ok {
			if update.Participants == nil {
				update.Participants = &Participants{}
			}
			update.Participants.Size = size
		}
	}

	return update
}
