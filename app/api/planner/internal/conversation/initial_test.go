package conversation_test

import (
	"testing"

	"github.com/RayDR/YelpOut/app/api/planner/internal/conversation"
)

func TestExtractInitialInfoRichUtterance(t *testing.T) {
	msg := "Plan a romantic date tomorrow in the evening in Dallas, TX with my girlfriend, moderate budget"
	update := conversation.ExtractInitialInfo(msg, tuesday)

	if update.Event == nil {
		t.Fatal("no event extracted")
	}
	if update.Event.Type != conversation.EventDate {
		t.Errorf("type = %q, want date", update.Event.Type)
	}
	if update.Event.DateISO != "2026-09-02" {
		t.Errorf("date = %q, want 2026-09-02", update.Event.DateISO)
	}
	if update.Event.StartTime != "18:00" {
		t.Errorf("start = %q, want 18:00", update.Event.StartTime)
	}
	if update.Location == nil || update.Location.Text != "Dallas, TX" {
		t.Errorf("location = %+v, want Dallas, TX", update.Location)
	}
	if update.Budget == nil || update.Budget.Tier != conversation.BudgetModerate {
		t.Errorf("budget = %+v, want moderate", update.Budget)
	}
	if update.Participants == nil || update.Participants.Size != 2 || !update.Participants.IsCouple {
		t.Errorf("participants = %+v, want couple of 2", update.Participants)
	}
	if update.Preferences == nil || len(update.Preferences.Mood) == 0 || update.Preferences.Mood[0] != "romantic" {
		t.Errorf("mood = %+v, want romantic", update.Preferences)
	}
}

func TestExtractInitialInfoTypoNormalization(t *testing.T) {
	update := conversation.ExtractInitialInfo("una sita con mi espose manana", tuesday)
	if update.Event == nil || update.Event.Type != conversation.EventDate {
		t.Fatalf("typo-laden message missed the date event: %+v", update.Event)
	}
	if update.Event.DateISO != "2026-09-02" {
		t.Errorf("manana = %q, want 2026-09-02", update.Event.DateISO)
	}
}

func TestExtractInitialInfoAmbiguousTimePropagates(t *testing.T) {
	update := conversation.ExtractInitialInfo("cita el viernes a las 7", tuesday)
	if update.Event == nil || update.Event.StartTime != conversation.NeedsClarification {
		t.Fatalf("start = %+v, want clarification sentinel", update.Event)
	}
	if update.Awaiting == nil || update.Awaiting.Hour != 7 {
		t.Fatalf("awaiting = %+v, want hour 7", update.Awaiting)
	}
	// No end time can be derived from an unresolved start.
	if update.Event.EndTime != "" {
		t.Errorf("end time derived from ambiguous start: %q", update.Event.EndTime)
	}
}

func TestExtractInitialInfoMorningWordResolvesHour(t *testing.T) {
	// "mañana" doubles as tomorrow and as the morning hint, so the bare
	// hour resolves to 07:00 instead of asking for AM/PM.
	update := conversation.ExtractInitialInfo("cita mañana a las 7", tuesday)
	if update.Event == nil || update.Event.StartTime != "07:00" {
		t.Fatalf("start = %+v, want 07:00", update.Event)
	}
	if update.Event.DateISO != "2026-09-02" {
		t.Errorf("date = %q, want 2026-09-02", update.Event.DateISO)
	}
	if update.Awaiting != nil {
		t.Errorf("unexpected clarification request: %+v", update.Awaiting)
	}
}

func TestExtractInitialInfoNearMe(t *testing.T) {
	update := conversation.ExtractInitialInfo("something fun near me", tuesday)
	if update.Location == nil || update.Location.Text != conversation.GeolocationSentinel {
		t.Fatalf("location = %+v, want geolocation sentinel", update.Location)
	}
	if update.Location.RadiusKm != 10 {
		t.Errorf("radius = %v, want 10", update.Location.RadiusKm)
	}
}

func TestExtractInitialInfoEmpty(t *testing.T) {
	update := conversation.ExtractInitialInfo("hmm", tuesday)
	if !update.Empty() {
		t.Fatalf("expected empty update, got %+v", update)
	}
}

func TestExtractGroupSizeWords(t *testing.T) {
	cases := []struct {
		message string
		want    int
	}{
		{"we are six", 6}, {"somos ocho", 8}, {"just me", 1},
		{"a couple", 2}, {"a big group", 8},
	}
	for _, c := range cases {
		got, ok := conversation.ExtractGroupSize(c.message)
		if !ok || got.Size != c.want {
			t.Errorf("ExtractGroupSize(%q) = %+v/%v, want %d", c.message, got, ok, c.want)
		}
	}
}

func TestExtractInitialGroupSize(t *testing.T) {
	if size, ok := conversation.ExtractInitialGroupSize("dinner for 6 people"); !ok || size != 6 {
		t.Errorf("6 people = %d/%v", size, ok)
	}
	if size, ok := conversation.ExtractInitialGroupSize("with my wife"); !ok || size != 2 {
		t.Errorf("companion mention = %d/%v, want 2", size, ok)
	}
	if _, ok := conversation.ExtractInitialGroupSize("dinner downtown"); ok {
		t.Error("false group size hit")
	}
}

func TestNormalizeTypos(t *testing.T) {
	cases := []struct{ in, want string }{
		{"salida oy", "salida hoy"},
		{"tommorow night", "tomorrow night"},
		{"al medio dia", "al mediodía"},
		{"cerca mio", "cerca de mi"},
	}
	for _, c := range cases {
		if got := conversation.Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
