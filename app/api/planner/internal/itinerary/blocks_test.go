package itinerary_test

import (
	"testing"

	"github.com/RayDR/YelpOut/app/api/planner/internal/conversation"
	"github.com/RayDR/YelpOut/app/api/planner/internal/itinerary"
)

func windowContext(start, end string) *conversation.PlanContext {
	return &conversation.PlanContext{
		Event: &conversation.EventInfo{Type: conversation.EventFriends, StartTime: start, EndTime: end},
	}
}

func TestDeriveFullDayContiguous(t *testing.T) {
	blocks := itinerary.Derive(windowContext("08:00", "18:00"))
	if len(blocks) != 5 {
		t.Fatalf("10h window produced %d blocks, want 5", len(blocks))
	}

	total := 0
	for i, block := range blocks {
		total += block.DurationMinutes
		if i > 0 && blocks[i-1].EndTime != block.StartTime {
			t.Errorf("gap between block %d and %d: %s vs %s",
				i-1, i, blocks[i-1].EndTime, block.StartTime)
		}
	}
	if total != 600 {
		t.Errorf("durations sum to %d, want 600", total)
	}
	if blocks[0].StartTime != "08:00" || blocks[4].EndTime != "18:00" {
		t.Errorf("window edges %s-%s, want 08:00-18:00", blocks[0].StartTime, blocks[4].EndTime)
	}
	if blocks[0].Type != itinerary.BlockRestaurant || blocks[0].Label != "Breakfast" {
		t.Errorf("first block = %s/%s, want restaurant Breakfast", blocks[0].Type, blocks[0].Label)
	}
}

func TestDeriveTemplateSelection(t *testing.T) {
	cases := []struct {
		start, end string
		blocks     int
	}{
		{"10:00", "16:00", 4}, // half day
		{"18:00", "21:30", 3}, // evening
		{"18:00", "20:00", 2}, // short
	}
	for _, c := range cases {
		got := itinerary.Derive(windowContext(c.start, c.end))
		if len(got) != c.blocks {
			t.Errorf("window %s-%s produced %d blocks, want %d", c.start, c.end, len(got), c.blocks)
		}
	}
}

func TestDeriveShortWindowSingleBlock(t *testing.T) {
	blocks := itinerary.Derive(windowContext("19:00", "20:30"))
	if len(blocks) != 1 {
		t.Fatalf("90min window produced %d blocks, want 1", len(blocks))
	}
	if blocks[0].Type != itinerary.BlockRestaurant {
		t.Errorf("7pm slot = %s, want restaurant", blocks[0].Type)
	}
	if blocks[0].DurationMinutes != 90 {
		t.Errorf("duration = %d, want 90", blocks[0].DurationMinutes)
	}

	// Mid-afternoon is not a meal slot.
	blocks = itinerary.Derive(windowContext("16:00", "17:30"))
	if blocks[0].Type != itinerary.BlockActivity {
		t.Errorf("4pm slot = %s, want activity", blocks[0].Type)
	}
}

func TestDeriveOvernightWindow(t *testing.T) {
	blocks := itinerary.Derive(windowContext("22:00", "01:00"))
	if len(blocks) != 3 {
		t.Fatalf("overnight 3h window produced %d blocks, want 3", len(blocks))
	}
	total := 0
	for _, b := range blocks {
		total += b.DurationMinutes
	}
	if total != 180 {
		t.Errorf("overnight durations sum to %d, want 180", total)
	}
}

func TestDeriveUnresolvedWindow(t *testing.T) {
	if got := itinerary.Derive(&conversation.PlanContext{}); got != nil {
		t.Errorf("empty context produced blocks: %v", got)
	}
	ctx := windowContext(conversation.NeedsClarification, "21:00")
	if got := itinerary.Derive(ctx); got != nil {
		t.Errorf("unclarified start produced blocks: %v", got)
	}
}

func TestDeriveGroupLabels(t *testing.T) {
	ctx := windowContext("08:00", "18:00")
	ctx.Participants = &conversation.Participants{Size: 4, Kids: 2, HasKids: true}
	for _, block := range itinerary.Derive(ctx) {
		if block.Type == itinerary.BlockActivity && block.Label != "Family Activity" {
			t.Errorf("activity label = %q, want Family Activity", block.Label)
		}
	}

	ctx = windowContext("18:00", "22:00")
	ctx.Participants = &conversation.Participants{Size: 2, IsCouple: true}
	for _, block := range itinerary.Derive(ctx) {
		if block.Type == itinerary.BlockRestaurant && block.Label != "Romantic Dinner" {
			t.Errorf("restaurant label = %q, want Romantic Dinner", block.Label)
		}
	}
}
