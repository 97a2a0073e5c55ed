package itinerary

import (
	"fmt"

	"github.com/RayDR/YelpOut/app/api/planner/internal/conversation"
)

type BlockType string

const (
	BlockRestaurant BlockType = "restaurant"
	BlockActivity   BlockType = "activity"
	BlockDessert    BlockType = "dessert"
)

// Place is a normalized venue attached to a block as a pickable option.
type Place struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Rating     float64  `json:"rating"`
	Reviews    int      `json:"reviews"`
	Price      string   `json:"price,omitempty"`
	Categories []string `json:"categories"`
	Address    string   `json:"address"`
	Phone      string   `json:"phone,omitempty"`
	ImageURL   string   `json:"imageUrl,omitempty"`
	URL        string   `json:"url,omitempty"`
	Latitude   float64  `json:"latitude"`
	Longitude  float64  `json:"longitude"`
	DistanceM  float64  `json:"distanceMeters,omitempty"`
	Hours      []string `json:"hours,omitempty"`
	WhyText    string   `json:"whyText,omitempty"`
}

// PlanBlock is one slot of the derived timeline.
type PlanBlock struct {
	ID              string    `json:"id"`
	Type            BlockType `json:"type"`
	Label           string    `json:"label"`
	StartTime       string    `json:"startTime"`
	EndTime         string    `json:"endTime"`
	DurationMinutes int       `json:"durationMinutes"`
	Options         []Place   `json:"options"`
	Selected        string    `json:"selected,omitempty"`
	Skipped         bool      `json:"skipped,omitempty"`
}

// blockSpec positions one block as a fraction of the whole window; boundary
// fractions rather than per-block percentages keep the derived blocks
// contiguous and summing to the window after rounding.
type blockSpec struct {
	typ   BlockType
	label string
	from  float64
	to    float64
}

var (
	// 8+ hours: breakfast through dinner.
	fullDayTemplate = []blockSpec{
		{BlockRestaurant, "Breakfast", 0, 0.125},
		{BlockActivity, "Morning Activity", 0.125, 0.375},
		{BlockRestaurant, "Lunch", 0.375, 0.5625},
		{BlockActivity, "Afternoon Activity", 0.5625, 0.8125},
		{BlockRestaurant, "Dinner", 0.8125, 1},
	}
	// 4-8 hours: activity, meal, activity, dessert.
	halfDayTemplate = []blockSpec{
		{BlockActivity, "Activity", 0, 0.3},
		{BlockRestaurant, "Main Meal", 0.3, 0.65},
		{BlockActivity, "Activity", 0.65, 0.9},
		{BlockDessert, "Dessert/Drinks", 0.9, 1},
	}
	// 3-4 hours: activity, meal, dessert.
	eveningTemplate = []blockSpec{
		{BlockActivity, "Activity", 0, 0.35},
		{BlockRestaurant, "Dinner/Lunch", 0.35, 0.8},
		{BlockDessert, "Dessert/Drinks", 0.8, 1},
	}
	// 2-3 hours: meal, dessert.
	shortTemplate = []blockSpec{
		{BlockRestaurant, "Meal", 0, 0.7},
		{BlockDessert, "Coffee/Dessert", 0.7, 1},
	}
)

// Derive builds the block timeline from the plan's time window and group.
// An unresolved window yields no blocks.
func Derive(ctx *conversation.PlanContext) []PlanBlock {
	if ctx.Event == nil || !ctx.StartTimeResolved() || ctx.Event.EndTime == "" {
		return nil
	}

	start := ParseTimeToMinutes(ctx.Event.StartTime)
	end := ParseTimeToMinutes(ctx.Event.EndTime)
	total := end - start
	if total <= 0 {
		total += 24 * 60
	}

	var blocks []PlanBlock
	switch {
	case total >= 480:
		blocks = applyTemplate(fullDayTemplate, ctx.Event.StartTime, total)
	case total >= 240:
		blocks = applyTemplate(halfDayTemplate, ctx.Event.StartTime, total)
	case total >= 180:
		blocks = applyTemplate(eveningTemplate, ctx.Event.StartTime, total)
	case total >= 120:
		blocks = applyTemplate(shortTemplate, ctx.Event.StartTime, total)
	default:
		typ, label := BlockActivity, "Activity"
		if isMealTime(start) {
			typ, label = BlockRestaurant, "Meal"
		}
		blocks = []PlanBlock{newBlock(typ, label, ctx.Event.StartTime, total)}
	}

	if ctx.Participants != nil && ctx.Participants.Kids > 0 {
		for i := range blocks {
			if blocks[i].Type == BlockActivity {
				blocks[i].Label = "Family Activity"
			}
		}
	}
	if ctx.Participants != nil && ctx.Participants.IsCouple {
		for i := range blocks {
			if blocks[i].Type == BlockRestaurant {
				blocks[i].Label = "Romantic Dinner"
			}
		}
	}

	return blocks
}

func applyTemplate(template []blockSpec, startTime string, total int) []PlanBlock {
	blocks := make([]PlanBlock, 0, len(template))
	for _, spec := range template {
		from := roundFraction(total, spec.from)
		to := roundFraction(total, spec.to)
		blocks = append(blocks,
			newBlock(spec.typ, spec.label, AddMinutes(startTime, from), to-from))
	}
	return blocks
}

func roundFraction(total int, fraction float64) int {
	return int(float64(total)*fraction + 0.5)
}

func newBlock(typ BlockType, label, startTime string, durationMinutes int) PlanBlock {
	return PlanBlock{
		ID:              fmt.Sprintf("%s-%s", typ, startTime),
		Type:            typ,
		Label:           label,
		StartTime:       startTime,
		EndTime:         AddMinutes(startTime, durationMinutes),
		DurationMinutes: durationMinutes,
		Options:         []Place{},
	}
}

// Meal windows: breakfast 7-11, lunch 11-15, dinner 18-22.
func isMealTime(minutes int) bool {
	return (minutes >= 7*60 && minutes <= 15*60) ||
		(minutes >= 18*60 && minutes <= 22*60)
}
