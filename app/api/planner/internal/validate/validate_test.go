package validate_test

import (
	"strings"
	"testing"

	"github.com/RayDR/YelpOut/app/api/planner/internal/conversation"
	"github.com/RayDR/YelpOut/app/api/planner/internal/validate"
)

func validContext() *conversation.PlanContext {
	return &conversation.PlanContext{
		Event: &conversation.EventInfo{
			Type:      conversation.EventDate,
			DateISO:   "2026-09-05",
			StartTime: "18:00",
			EndTime:   "21:00",
		},
		Location:     &conversation.LocationInfo{Text: "Dallas, TX"},
		Participants: &conversation.Participants{Size: 2},
		Budget:       &conversation.BudgetInfo{Tier: conversation.BudgetModerate},
		Preferences:  &conversation.Preferences{Cuisine: []string{"italian"}, Mood: []string{"romantic"}},
	}
}

func hasFieldError(r validate.Result, field, fragment string) bool {
	for _, e := range r.Errors {
		if e.Field == field && strings.Contains(e.Message, fragment) {
			return true
		}
	}
	return false
}

func TestPlanContextValid(t *testing.T) {
	result := validate.PlanContext(validContext())
	if !result.Valid {
		t.Fatalf("valid context rejected: %+v", result.Errors)
	}
}

func TestPlanContextCollectsAllErrors(t *testing.T) {
	result := validate.PlanContext(&conversation.PlanContext{})
	if result.Valid {
		t.Fatal("empty context accepted")
	}
	for _, want := range []struct{ field, fragment string }{
		{"location", "required"},
		{"event", "date is required"},
		{"event", "Start time"},
		{"participants", "at least 1"},
	} {
		if !hasFieldError(result, want.field, want.fragment) {
			t.Errorf("missing %s error %q in %+v", want.field, want.fragment, result.Errors)
		}
	}
}

func TestPlanContextRejectsBadValues(t *testing.T) {
	ctx := validContext()
	ctx.Event.Type = "picnic"
	ctx.Event.DateISO = "2025-02-30"
	ctx.Event.StartTime = "25:00"
	ctx.Location.Text = "???"
	ctx.Participants.Size = 250
	ctx.Budget.Tier = conversation.BudgetTier("$$$$$")
	ctx.Preferences.Cuisine = []string{"martian"}
	ctx.Preferences.Mood = []string{"chaotic"}

	result := validate.PlanContext(ctx)
	if result.Valid {
		t.Fatal("broken context accepted")
	}
	for _, want := range []struct{ field, fragment string }{
		{"event", "invalid event type"},
		{"event", "invalid date"},
		{"event", "invalid hour"},
		{"location", "invalid location format"},
		{"participants", "cannot exceed 100"},
		{"budget", "invalid budget tier"},
		{"preferences", "invalid cuisine"},
		{"preferences", "invalid mood"},
	} {
		if !hasFieldError(result, want.field, want.fragment) {
			t.Errorf("missing %s error %q in %+v", want.field, want.fragment, result.Errors)
		}
	}
}

func TestPlanContextLocationFormats(t *testing.T) {
	for _, text := range []string{
		"Dallas, TX", "75023", "75023-1234",
		"123 Main Street", conversation.GeolocationSentinel,
	} {
		ctx := validContext()
		ctx.Location.Text = text
		if result := validate.PlanContext(ctx); !result.Valid {
			t.Errorf("location %q rejected: %+v", text, result.Errors)
		}
	}
}

func TestPlanContextTimeRange(t *testing.T) {
	ctx := validContext()
	ctx.Event.EndTime = ctx.Event.StartTime
	result := validate.PlanContext(ctx)
	if !hasFieldError(result, "event", "cannot be the same") {
		t.Errorf("equal start/end accepted: %+v", result.Errors)
	}

	// Overnight windows are legitimate.
	ctx = validContext()
	ctx.Event.StartTime = "22:00"
	ctx.Event.EndTime = "01:00"
	if result := validate.PlanContext(ctx); !result.Valid {
		t.Errorf("overnight window rejected: %+v", result.Errors)
	}
}

func TestPlanContextUnclarifiedTimePasses(t *testing.T) {
	// The sentinel is the sequencer's problem, not a format violation.
	ctx := validContext()
	ctx.Event.StartTime = conversation.NeedsClarification
	ctx.Event.EndTime = ""
	if result := validate.PlanContext(ctx); !result.Valid {
		t.Errorf("clarification sentinel rejected: %+v", result.Errors)
	}
}

func TestFormatGroupDisplay(t *testing.T) {
	cases := []struct {
		in   *conversation.Participants
		want string
	}{
		{nil, "Not specified"},
		{&conversation.Participants{Size: 1}, "1 person"},
		{&conversation.Participants{Size: 4, Kids: 2, Pets: true}, "4 people (2 kids, pets)"},
		{&conversation.Participants{Size: 2, Kids: 1}, "2 people (1 kid)"},
	}
	for _, c := range cases {
		if got := validate.FormatGroupDisplay(c.in); got != c.want {
			t.Errorf("FormatGroupDisplay(%+v) = %q, want %q", c.in, got, c.want)
		}
	}
}
