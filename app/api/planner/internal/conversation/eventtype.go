package conversation

import (
	"regexp"
	"strings"
)

// Canonical event types.
const (
	EventDate        = "date"
	EventCelebration = "celebration"
	EventFriends     = "friends"
	EventGraduation  = "graduation"
	EventBusiness    = "business"
	EventFamily      = "family"
)

type TypeMatch struct {
	Type       string
	Confidence float64
}

// typePattern scores one candidate event type by keyword hits.
type typePattern struct {
	eventType  string
	keywords   []*regexp.Regexp
	minMatches int
}

// Exact-word patterns checked first; a hit is high confidence.
var priorityTypePatterns = []typePattern{
	{EventDate, compileAll(`\bcita\b`, `\bdate\b`), 1},
	{EventGraduation, compileAll(`\bgraduation\b`, `\bgraduaci[óo]n\b`, `\bgraduate\b`, `\bgraduado\b`), 1},
	{EventFriends, compileAll(`\bfriends\b`, `\bamigos\b`), 1},
	{EventFamily, compileAll(`\bfamily\b`, `\bfamilia\b`), 1},
}

// Broader context words, scored by fraction of keyword hits.
var secondaryTypePatterns = []typePattern{
	{EventDate, compileAll(`romántic`, `romantic`, `esposa`, `esposo`, `novia`, `novio`, `wife`, `husband`, `girlfriend`, `boyfriend`, `pareja`, `partner`), 1},
	{EventFamily, compileAll(`\bfamilia\b`, `\bfamily\b`, `niños`, `kids`, `children`, `hijos`), 1},
	{EventCelebration, compileAll(`cumpleaños`, `birthday`, `aniversario`, `anniversary`, `celebr`), 1},
	{EventBusiness, compileAll(`negocios`, `business`, `colegas`, `colleagues`, `trabajo`, `work`, `reunión`), 1},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile(`(?i)`+p))
	}
	return out
}

func (p typePattern) score(message string) (int, bool) {
	matches := 0
	for _, kw := range p.keywords {
		if kw.MatchString(message) {
			matches++
		}
	}
	return matches, matches >= p.minMatches
}

// ExtractEventType scans free text for an outing type. Priority patterns win
// with confidence 0.9; secondary patterns score by hit fraction.
func ExtractEventType(message string) (TypeMatch, bool) {
	for _, pattern := range priorityTypePatterns {
		if _, ok := pattern.score(message); ok {
			return TypeMatch{Type: pattern.eventType, Confidence: 0.9}, true
		}
	}
	for _, pattern := range secondaryTypePatterns {
		if matches, ok := pattern.score(message); ok {
			return TypeMatch{
				Type:       pattern.eventType,
				Confidence: float64(matches) / float64(len(pattern.keywords)),
			}, true
		}
	}
	return TypeMatch{}, false
}

// DefaultParticipants returns the group a freshly-chosen event type implies.
func DefaultParticipants(eventType string) *Participants {
	lower := strings.ToLower(eventType)

	switch {
	case containsAny(lower, "date", "cita", "anniversary", "aniversario"):
		return &Participants{Size: 2, IsCouple: true}
	case containsAny(lower, "family", "familia", "kids", "niños"):
		return &Participants{Kids: 1, HasKids: true}
	default:
		return &Participants{}
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
