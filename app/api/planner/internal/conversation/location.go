package conversation

import (
	"regexp"
	"strings"

	"github.com/samber/lo"

	"github.com/RayDR/YelpOut/app/common/consts/biz"
)

var nearMePatterns = compileAll(
	`\bcerca\s+de\s+(mi|aqu[ií]|casa|mi\s+casa)\b`,
	`\b(en\s+)?mis\s+alrededores\b`,
	`\ben\s+el\s+área\b`,
	`\ben\s+la\s+zona\b`,
	`\bnear\s+(me|here|my\s+location)\b`,
	`\b(in\s+)?my\s+(area|surroundings|vicinity)\b`,
	`\bmi\s+ubicaci[oó]n\b`,
	`\bcurrent\s+location\b`,
	`\baround\s+here\b`,
)

var (
	zipPattern     = regexp.MustCompile(`\b(\d{5})(?:-\d{4})?\b`)
	streetHint     = regexp.MustCompile(`\d+\s+[A-Za-z]+`)
	addressPattern = regexp.MustCompile(`(?i)^([\d\s\w,.-]+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Drive|Dr|Lane|Ln|Way|Court|Ct)?[,\s]*(?:[A-Z]{2})?\s*\d{5}?)`)

	cityStatePatterns = []*regexp.Regexp{
		// The capture stays case-sensitive so filler words between the
		// preposition and the capitalized city ("in the evening in Dallas,
		// TX") are skipped rather than swallowed into the match.
		regexp.MustCompile(`\b(?i:in|en)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,\s*[A-Z]{2})\b`),
		regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*,\s*[A-Z]{2})\b`),
		regexp.MustCompile(`(?i)\b(?:in|en)\s+(San\s+[A-Z][a-z]+|New\s+[A-Z][a-z]+|Los\s+Angeles|Las\s+Vegas|Fort\s+Worth|El\s+Paso)\b`),
	}

	looseCityPattern = regexp.MustCompile(`\b(?:in|en)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\b`)
)

// Words a loose "in X" capture must never treat as a city.
var cityStoplist = []string{"the", "and", "but", "with", "for", "about", "today", "tomorrow", "weekend"}

// ExtractLocation returns the raw matched location string, not yet geocoded,
// or the geolocation sentinel for "near me" phrasings. "" when nothing matches.
func ExtractLocation(message string) string {
	trimmed := strings.TrimSpace(message)

	for _, pattern := range nearMePatterns {
		if pattern.MatchString(message) {
			return GeolocationSentinel
		}
	}

	if m := zipPattern.FindStringSubmatch(trimmed); m != nil {
		return m[1]
	}

	if streetHint.MatchString(trimmed) {
		if m := addressPattern.FindStringSubmatch(trimmed); m != nil {
			return strings.TrimSpace(m[1])
		}
	}

	for _, pattern := range cityStatePatterns {
		if m := pattern.FindStringSubmatch(message); m != nil {
			return m[1]
		}
	}

	if m := looseCityPattern.FindStringSubmatch(message); m != nil && len(m[1]) >= 3 {
		if !lo.Contains(cityStoplist, strings.ToLower(m[1])) {
			return m[1]
		}
	}

	return ""
}

// LocationUpdate wraps a raw location string into a context update, choosing
// the search radius by how the location was given.
func LocationUpdate(text string) *LocationInfo {
	radius := biz.DefaultRadiusKm
	if text == GeolocationSentinel {
		radius = biz.GeoRadiusKm
	}
	return &LocationInfo{Text: text, RadiusKm: radius}
}
