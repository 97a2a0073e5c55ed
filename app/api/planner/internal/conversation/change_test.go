package conversation_test

import (
	"testing"

	"github.com/RayDR/YelpOut/app/api/planner/internal/conversation"
)

func TestDetectChangeRequestTime(t *testing.T) {
	ctx := completeContext()
	key, update, ok := conversation.DetectChangeRequest("change the time to 8pm", ctx, tuesday)
	if !ok || key != conversation.QuestionStartTime {
		t.Fatalf("key=%q ok=%v, want startTime hit", key, ok)
	}
	if update.Event == nil || update.Event.StartTime != "20:00" {
		t.Fatalf("event = %+v, want 20:00", update.Event)
	}
	if update.Event.DateISO != "2026-09-05" {
		t.Errorf("time edit dropped the date: %+v", update.Event)
	}
}

func TestDetectChangeRequestDateSpanish(t *testing.T) {
	ctx := completeContext()
	key, update, ok := conversation.DetectChangeRequest("cambiar la fecha a mañana", ctx, tuesday)
	if !ok || key != conversation.QuestionDate {
		t.Fatalf("key=%q ok=%v, want date hit", key, ok)
	}
	if update.Event == nil || update.Event.DateISO != "2026-09-02" {
		t.Fatalf("event = %+v, want tomorrow", update.Event)
	}
}

func TestDetectChangeRequestLocation(t *testing.T) {
	ctx := completeContext()
	key, update, ok := conversation.DetectChangeRequest("change the location to near me", ctx, tuesday)
	if !ok || key != conversation.QuestionLocation {
		t.Fatalf("key=%q ok=%v, want location hit", key, ok)
	}
	if update.Location == nil || update.Location.Text != conversation.GeolocationSentinel {
		t.Fatalf("location = %+v, want geolocation sentinel", update.Location)
	}
	if update.Location.RadiusKm != 10 {
		t.Errorf("radius = %v, want 10", update.Location.RadiusKm)
	}

	_, update, _ = conversation.DetectChangeRequest("change the place to Fort Worth", ctx, tuesday)
	if update.Location == nil || update.Location.Text != "Fort Worth" || update.Location.RadiusKm != 15 {
		t.Fatalf("location = %+v, want Fort Worth radius 15", update.Location)
	}
}

func TestDetectChangeRequestBudget(t *testing.T) {
	ctx := completeContext()
	key, update, ok := conversation.DetectChangeRequest("update the budget to luxury", ctx, tuesday)
	if !ok || key != conversation.QuestionBudget {
		t.Fatalf("key=%q ok=%v, want budget hit", key, ok)
	}
	if update.Budget == nil || update.Budget.Tier != conversation.BudgetLuxury {
		t.Fatalf("budget = %+v, want luxury", update.Budget)
	}
}

func TestDetectChangeRequestDuration(t *testing.T) {
	ctx := completeContext()
	key, update, ok := conversation.DetectChangeRequest("change the duration to 90 minutes", ctx, tuesday)
	if !ok || key != conversation.QuestionDuration {
		t.Fatalf("key=%q ok=%v, want duration hit", key, ok)
	}
	if update.Event == nil || update.Event.EndTime != "19:30" {
		t.Fatalf("event = %+v, want end 19:30", update.Event)
	}
}

func TestDetectChangeRequestNoIntent(t *testing.T) {
	ctx := completeContext()
	for _, message := range []string{"sounds good", "Plano, TX", "6 pm works for me"} {
		if _, _, ok := conversation.DetectChangeRequest(message, ctx, tuesday); ok {
			t.Errorf("false change detection on %q", message)
		}
	}
}
