package conversation_test

import (
	"testing"

	"github.com/RayDR/YelpOut/app/api/planner/internal/conversation"
)

func TestExtractLocation(t *testing.T) {
	cases := []struct{ message, want string }{
		{"dinner in Dallas, TX", "Dallas, TX"},
		// Lowercase filler between "in" and the city stays out of the capture.
		{"dinner in the evening in Dallas, TX", "Dallas, TX"},
		{"algo en Plano, TX", "Plano, TX"},
		{"somewhere near me tonight", conversation.GeolocationSentinel},
		{"lunch in 75023", "75023"},
		{"drinks in Austin", "Austin"},
		{"see you in the morning", ""},
	}
	for _, c := range cases {
		if got := conversation.ExtractLocation(c.message); got != c.want {
			t.Errorf("ExtractLocation(%q) = %q, want %q", c.message, got, c.want)
		}
	}
}

func TestLocationUpdateRadius(t *testing.T) {
	if loc := conversation.LocationUpdate("Dallas, TX"); loc.RadiusKm != 15 {
		t.Errorf("named city radius = %v, want 15", loc.RadiusKm)
	}
	if loc := conversation.LocationUpdate(conversation.GeolocationSentinel); loc.RadiusKm != 10 {
		t.Errorf("geolocation radius = %v, want 10", loc.RadiusKm)
	}
}
