package conversation_test

import (
	"testing"
	"time"

	"github.com/RayDR/YelpOut/app/api/planner/internal/conversation"
)

func TestExtractBudget(t *testing.T) {
	cases := []struct {
		message string
		want    conversation.BudgetTier
	}{
		// "budget" names the field, it does not pick a tier on its own.
		{"moderate budget", conversation.BudgetModerate},
		{"something cheap", conversation.BudgetCheap},
		{"barato por favor", conversation.BudgetCheap},
		{"$$", conversation.BudgetModerate},
		{"$$$$", conversation.BudgetLuxury},
		{"willing to spend", conversation.BudgetUpscale},
		{"no preference", conversation.BudgetNone},
	}
	for _, c := range cases {
		got, ok := conversation.ExtractBudget(c.message)
		if !ok || got != c.want {
			t.Errorf("ExtractBudget(%q) = %q/%v, want %q", c.message, got, ok, c.want)
		}
	}

	if _, ok := conversation.ExtractBudget("planning the budget"); ok {
		t.Error("bare 'budget' mention classified as a tier")
	}
}

func TestParseResponseBudgetWordAlone(t *testing.T) {
	ctx := &conversation.PlanContext{}
	now := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	// Answering the budget question with just "budget" means the cheap tier.
	update := conversation.ParseResponse("budget friendly", conversation.QuestionBudget, ctx, conversation.Awaiting{}, now)
	if update.Budget == nil || update.Budget.Tier != conversation.BudgetCheap {
		t.Fatalf("budget = %+v, want cheap", update.Budget)
	}

	update = conversation.ParseResponse("hmm not sure", conversation.QuestionBudget, ctx, conversation.Awaiting{}, now)
	if update.Budget == nil || update.Budget.Tier != conversation.BudgetModerate {
		t.Fatalf("budget = %+v, want moderate default", update.Budget)
	}
}
