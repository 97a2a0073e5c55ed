package places

import (
	"math"
	"strings"

	"github.com/RayDR/YelpOut/app/api/planner/internal/conversation"
	"github.com/RayDR/YelpOut/app/api/planner/internal/itinerary"
)

type whyText struct {
	excellentRating string
	veryPopular     string
	specialtyIn     string
	recommended     string
}

var whyTexts = map[conversation.Language]whyText{
	conversation.LangEN: {
		excellentRating: "Excellent rating",
		veryPopular:     "Very popular",
		specialtyIn:     "Specialty in",
		recommended:     "Recommended option",
	},
	conversation.LangES: {
		excellentRating: "Calificación excelente",
		veryPopular:     "Muy popular",
		specialtyIn:     "Especialidad en",
		recommended:     "Opción recomendada",
	},
}

// Normalize converts a Yelp business into the internal place shape, attaching
// a short localized explanation of why it fits.
func Normalize(b Business, lang conversation.Language) itinerary.Place {
	categories := make([]string, 0, len(b.Categories))
	for _, cat := range b.Categories {
		categories = append(categories, cat.Title)
	}

	return itinerary.Place{
		ID:         b.ID,
		Name:       b.Name,
		Rating:     b.Rating,
		Reviews:    b.ReviewCount,
		Price:      b.Price,
		Categories: categories,
		Address:    strings.Join(b.Location.DisplayAddress, ", "),
		Phone:      b.DisplayPhone,
		ImageURL:   b.ImageURL,
		URL:        b.URL,
		Latitude:   b.Coordinates.Latitude,
		Longitude:  b.Coordinates.Longitude,
		DistanceM:  math.Round(b.Distance),
		Hours:      formatHours(b),
		WhyText:    generateWhyText(b, lang),
	}
}

// formatHours flattens Yelp's structured hours ("0900".."2200") into the
// "9:00 AM - 10:00 PM" ranges the closing-time checks read.
func formatHours(b Business) []string {
	if len(b.Hours) == 0 {
		return nil
	}
	var out []string
	for _, window := range b.Hours[0].Open {
		start, ok1 := clockMinutes(window.Start)
		end, ok2 := clockMinutes(window.End)
		if !ok1 || !ok2 {
			continue
		}
		out = append(out, itinerary.FormatMinutesToTime(start)+" - "+itinerary.FormatMinutesToTime(end))
	}
	return out
}

func clockMinutes(hhmm string) (int, bool) {
	if len(hhmm) != 4 {
		return 0, false
	}
	var hours, minutes int
	for _, r := range hhmm {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	hours = int(hhmm[0]-'0')*10 + int(hhmm[1]-'0')
	minutes = int(hhmm[2]-'0')*10 + int(hhmm[3]-'0')
	return hours*60 + minutes, true
}

// NormalizeAll maps a search response, dropping excluded ids and capping at
// limit.
func NormalizeAll(businesses []Business, lang conversation.Language, excludeIDs []string, limit int) []itinerary.Place {
	excluded := make(map[string]struct{}, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = struct{}{}
	}

	out := make([]itinerary.Place, 0, limit)
	for _, b := range businesses {
		if _, skip := excluded[b.ID]; skip {
			continue
		}
		out = append(out, Normalize(b, lang))
		if len(out) == limit {
			break
		}
	}
	return out
}

func generateWhyText(b Business, lang conversation.Language) string {
	t := whyTexts[conversation.LangEN]
	if tt, ok := whyTexts[lang]; ok {
		t = tt
	}

	var reasons []string
	if b.Rating >= 4.5 {
		reasons = append(reasons, t.excellentRating)
	}
	if b.ReviewCount > 500 {
		reasons = append(reasons, t.veryPopular)
	}
	if len(b.Categories) > 0 {
		reasons = append(reasons, t.specialtyIn+" "+b.Categories[0].Title)
	}

	if len(reasons) == 0 {
		return t.recommended
	}
	return strings.Join(reasons, ", ")
}
