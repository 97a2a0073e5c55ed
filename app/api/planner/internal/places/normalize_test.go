package places_test

import (
	"encoding/json"
	"testing"

	"github.com/RayDR/YelpOut/app/api/planner/internal/conversation"
	"github.com/RayDR/YelpOut/app/api/planner/internal/places"
)

const steakhouseJSON = `{
	"id": "biz-1",
	"name": "Perry's Steakhouse",
	"image_url": "https://example.com/p.jpg",
	"url": "https://yelp.com/biz/perrys",
	"review_count": 812,
	"rating": 4.6,
	"price": "$$$",
	"display_phone": "(214) 555-0101",
	"distance": 1234.56,
	"categories": [{"alias": "steak", "title": "Steakhouses"}],
	"coordinates": {"latitude": 32.77, "longitude": -96.79},
	"location": {"display_address": ["123 Main St", "Dallas, TX 75201"]},
	"hours": [{"open": [{"start": "0900", "end": "2200", "day": 1}]}]
}`

func steakhouse(t *testing.T) places.Business {
	t.Helper()
	var b places.Business
	if err := json.Unmarshal([]byte(steakhouseJSON), &b); err != nil {
		t.Fatalf("unmarshal fixture: %v", err)
	}
	return b
}

func TestNormalize(t *testing.T) {
	place := places.Normalize(steakhouse(t), conversation.LangEN)

	if place.ID != "biz-1" || place.Name != "Perry's Steakhouse" {
		t.Fatalf("identity fields wrong: %+v", place)
	}
	if place.Address != "123 Main St, Dallas, TX 75201" {
		t.Errorf("address = %q", place.Address)
	}
	if len(place.Categories) != 1 || place.Categories[0] != "Steakhouses" {
		t.Errorf("categories = %v", place.Categories)
	}
	if place.DistanceM != 1235 {
		t.Errorf("distance = %v, want rounded 1235", place.DistanceM)
	}
	if len(place.Hours) != 1 || place.Hours[0] != "9:00 AM - 10:00 PM" {
		t.Errorf("hours = %v, want [9:00 AM - 10:00 PM]", place.Hours)
	}
	if place.WhyText != "Excellent rating, Very popular, Specialty in Steakhouses" {
		t.Errorf("why text = %q", place.WhyText)
	}
}

func TestNormalizeWhyTextFallback(t *testing.T) {
	b := places.Business{ID: "plain", Name: "Plain Spot", Rating: 3.5, ReviewCount: 12}

	if got := places.Normalize(b, conversation.LangEN).WhyText; got != "Recommended option" {
		t.Errorf("en fallback = %q", got)
	}
	if got := places.Normalize(b, conversation.LangES).WhyText; got != "Opción recomendada" {
		t.Errorf("es fallback = %q", got)
	}
}

func TestNormalizeSpanishWhyText(t *testing.T) {
	place := places.Normalize(steakhouse(t), conversation.LangES)
	if place.WhyText != "Calificación excelente, Muy popular, Especialidad en Steakhouses" {
		t.Errorf("es why text = %q", place.WhyText)
	}
}

func TestNormalizeAll(t *testing.T) {
	businesses := []places.Business{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
		{ID: "c", Name: "C"},
	}
	out := places.NormalizeAll(businesses, conversation.LangEN, []string{"a"}, 1)
	if len(out) != 1 || out[0].ID != "b" {
		t.Fatalf("out = %+v, want just b", out)
	}

	out = places.NormalizeAll(businesses, conversation.LangEN, nil, 10)
	if len(out) != 3 {
		t.Fatalf("limit above input returned %d places", len(out))
	}
}
