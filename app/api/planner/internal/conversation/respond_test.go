package conversation_test

import (
	"testing"
	"time"

	"github.com/RayDR/YelpOut/app/api/planner/internal/conversation"
)

var noAwait = conversation.Awaiting{}

func TestParseResponseEventType(t *testing.T) {
	ctx := &conversation.PlanContext{}
	got := conversation.ParseResponse("a birthday dinner", conversation.QuestionEventType, ctx, noAwait, tuesday)
	if got.Event == nil || got.Event.Type != conversation.EventCelebration {
		t.Fatalf("update = %+v, want celebration event", got)
	}

	// Unrecognized answers keep the raw text as the type.
	got = conversation.ParseResponse("wine tasting", conversation.QuestionEventType, ctx, noAwait, tuesday)
	if got.Event == nil || got.Event.Type != "wine tasting" {
		t.Fatalf("update = %+v, want raw text type", got)
	}
}

func TestParseResponseLocation(t *testing.T) {
	ctx := &conversation.PlanContext{}
	cases := []struct {
		message string
		want    string
	}{
		{"Use my current location", conversation.GeolocationSentinel},
		{"Plano, TX", "Plano, TX"},
		{"75023", "75023"},
		{"in Austin", "Austin"},
		{"cerca de Monterrey", "Monterrey"},
	}
	for _, c := range cases {
		got := conversation.ParseResponse(c.message, conversation.QuestionLocation, ctx, noAwait, tuesday)
		if got.Location == nil || got.Location.Text != c.want {
			t.Errorf("location answer %q = %+v, want %q", c.message, got.Location, c.want)
		}
	}
}

func TestParseResponseStartTimeNow(t *testing.T) {
	now := time.Date(2026, 9, 1, 10, 7, 0, 0, time.UTC)
	ctx := &conversation.PlanContext{}
	got := conversation.ParseResponse("chips.now", conversation.QuestionStartTime, ctx, noAwait, now)
	if got.Event == nil || got.Event.StartTime != "10:07" {
		t.Fatalf("now answer = %+v, want 10:07", got.Event)
	}
}

func TestParseResponseStartTimeAmbiguous(t *testing.T) {
	ctx := &conversation.PlanContext{}
	got := conversation.ParseResponse("a las 5", conversation.QuestionStartTime, ctx, noAwait, tuesday)
	if got.Event == nil || got.Event.StartTime != conversation.NeedsClarification {
		t.Fatalf("start time = %+v, want clarification sentinel", got.Event)
	}
	if got.Awaiting == nil || got.Awaiting.Kind != conversation.AwaitAmPm || got.Awaiting.Hour != 5 {
		t.Fatalf("awaiting = %+v, want pending am/pm for hour 5", got.Awaiting)
	}
}

func TestParseResponseClarifyAmPm(t *testing.T) {
	ctx := &conversation.PlanContext{
		Event: &conversation.EventInfo{StartTime: conversation.NeedsClarification},
	}
	awaiting := conversation.Awaiting{Kind: conversation.AwaitAmPm, Hour: 5}
	got := conversation.ParseResponse("pm", conversation.QuestionClarifyAmPm, ctx, awaiting, tuesday)
	if got.Event == nil || got.Event.StartTime != "17:00" {
		t.Fatalf("resolved time = %+v, want 17:00", got.Event)
	}
	if got.Awaiting == nil || got.Awaiting.Pending() {
		t.Fatalf("awaiting = %+v, want cleared", got.Awaiting)
	}
}

func TestParseResponseDurationNeedsStartTime(t *testing.T) {
	ctx := &conversation.PlanContext{}
	got := conversation.ParseResponse("3 hours", conversation.QuestionDuration, ctx, noAwait, tuesday)
	if !got.Empty() {
		t.Fatalf("duration without a start time produced %+v, want no-op", got)
	}

	ctx.Event = &conversation.EventInfo{StartTime: "18:00"}
	got = conversation.ParseResponse("3 hours", conversation.QuestionDuration, ctx, noAwait, tuesday)
	if got.Event == nil || got.Event.EndTime != "21:00" {
		t.Fatalf("end time = %+v, want 21:00", got.Event)
	}
}

func TestParseResponseGroupSize(t *testing.T) {
	ctx := &conversation.PlanContext{}
	got := conversation.ParseResponse("four of us", conversation.QuestionGroupSize, ctx, noAwait, tuesday)
	if got.Participants == nil || got.Participants.Size != 4 {
		t.Fatalf("size = %+v, want 4", got.Participants)
	}

	got = conversation.ParseResponse("5-8", conversation.QuestionGroupSize, ctx, noAwait, tuesday)
	if got.Participants == nil || got.Participants.Size != 5 || got.Participants.SizeRange != "5-8" {
		t.Fatalf("range answer = %+v, want size 5 range 5-8", got.Participants)
	}

	// Anything unreadable defaults to a pair.
	got = conversation.ParseResponse("idk", conversation.QuestionGroupSize, ctx, noAwait, tuesday)
	if got.Participants == nil || got.Participants.Size != 2 {
		t.Fatalf("fallback = %+v, want size 2", got.Participants)
	}
}

func TestParseResponseBudget(t *testing.T) {
	ctx := &conversation.PlanContext{}
	got := conversation.ParseResponse("luxury please", conversation.QuestionBudget, ctx, noAwait, tuesday)
	if got.Budget == nil || got.Budget.Tier != conversation.BudgetLuxury {
		t.Fatalf("budget = %+v, want luxury", got.Budget)
	}

	got = conversation.ParseResponse("no preference", conversation.QuestionBudget, ctx, noAwait, tuesday)
	if got.Budget == nil || got.Budget.Tier != conversation.BudgetNone {
		t.Fatalf("budget = %+v, want NA sentinel", got.Budget)
	}
}

func TestParseResponseEventTypeChangePreservesSize(t *testing.T) {
	ctx := &conversation.PlanContext{
		Event:        &conversation.EventInfo{Type: conversation.EventFriends, DateISO: "2026-09-05"},
		Location:     &conversation.LocationInfo{Text: "Dallas, TX"},
		Participants: &conversation.Participants{Size: 5},
	}
	got := conversation.ParseResponse("actually a family outing", conversation.QuestionBudget, ctx, noAwait, tuesday)
	if got.Event == nil || got.Event.Type != conversation.EventFamily {
		t.Fatalf("update = %+v, want switch to family", got.Event)
	}
	if got.Event.DateISO != "2026-09-05" {
		t.Errorf("type switch dropped the date: %+v", got.Event)
	}
	if got.Participants == nil || got.Participants.Size != 5 {
		t.Errorf("type switch lost the head count: %+v", got.Participants)
	}
	if got.Participants.Kids != 1 || !got.Participants.HasKids {
		t.Errorf("family defaults missing: %+v", got.Participants)
	}
	if got.Location != nil {
		t.Errorf("type switch must not touch the location, got %+v", got.Location)
	}
}

func TestApplyUpdate(t *testing.T) {
	ctx := &conversation.PlanContext{
		Event: &conversation.EventInfo{Type: conversation.EventDate},
	}
	update := conversation.Update{
		Budget:   &conversation.BudgetInfo{Tier: conversation.BudgetCheap},
		Awaiting: &conversation.Awaiting{Kind: conversation.AwaitAmPm, Hour: 7},
	}
	awaiting := ctx.Apply(update, conversation.Awaiting{})
	if ctx.Budget == nil || ctx.Budget.Tier != conversation.BudgetCheap {
		t.Fatalf("budget not applied: %+v", ctx.Budget)
	}
	if ctx.Event.Type != conversation.EventDate {
		t.Fatalf("untouched group was overwritten: %+v", ctx.Event)
	}
	if awaiting.Kind != conversation.AwaitAmPm || awaiting.Hour != 7 {
		t.Fatalf("awaiting = %+v, want pending am/pm", awaiting)
	}

	// An update without awaiting leaves the current state alone.
	awaiting = ctx.Apply(conversation.Update{}, awaiting)
	if awaiting.Kind != conversation.AwaitAmPm {
		t.Fatalf("awaiting cleared by unrelated update: %+v", awaiting)
	}
}
