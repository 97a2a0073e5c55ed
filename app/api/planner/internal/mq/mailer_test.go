package mq_test

import (
	"strings"
	"testing"

	"github.com/RayDR/YelpOut/app/api/planner/internal/itinerary"
	"github.com/RayDR/YelpOut/app/api/planner/internal/mq"
)

func itineraryPayload(language string) mq.SendItineraryPayload {
	return mq.SendItineraryPayload{
		Email:        "friend@example.com",
		PlanDate:     "2026-09-05",
		EventType:    "date",
		Location:     "Dallas, TX",
		GroupDisplay: "2 people",
		Language:     language,
		Blocks: []itinerary.PlanBlock{
			{
				ID:        "restaurant-19:00",
				Label:     "Romantic Dinner",
				StartTime: "19:00",
				EndTime:   "21:00",
				Selected:  "biz-1",
				Options: []itinerary.Place{
					{ID: "biz-1", Name: "Perry's Steakhouse", Address: "123 Main St", Rating: 4.6},
				},
			},
			{
				ID:        "dessert-21:00",
				Label:     "Dessert/Drinks",
				StartTime: "21:00",
				EndTime:   "22:00",
				Skipped:   true,
			},
		},
	}
}

func TestBuildItineraryEmail(t *testing.T) {
	subject, body := mq.BuildItineraryEmail(itineraryPayload("en"))

	if subject != "Your YelpOut itinerary" {
		t.Errorf("subject = %q", subject)
	}
	for _, want := range []string{"Romantic Dinner", "Perry's Steakhouse", "123 Main St", "4.6", "2026-09-05", "Dallas, TX", "2 people"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
	if strings.Contains(body, "Dessert/Drinks") {
		t.Error("skipped block leaked into the email")
	}
}

func TestBuildItineraryEmailSpanish(t *testing.T) {
	subject, body := mq.BuildItineraryEmail(itineraryPayload("es"))
	if subject != "Tu itinerario de YelpOut" {
		t.Errorf("subject = %q", subject)
	}
	if !strings.Contains(body, "Cuándo") {
		t.Error("body not localized")
	}
}

func TestBuildItineraryEmailUnknownLanguageFallsBack(t *testing.T) {
	subject, _ := mq.BuildItineraryEmail(itineraryPayload("fr"))
	if subject != "Your YelpOut itinerary" {
		t.Errorf("subject = %q, want english fallback", subject)
	}
}
