package conversation

import "regexp"

// typoRule rewrites one common misspelling. Rules run in order over the
// already-corrected string; no two rules may fire on the same span.
type typoRule struct {
	pattern *regexp.Regexp
	repl    string
}

var typoRules = []typoRule{
	// date words
	{regexp.MustCompile(`(?i)\boy\b`), "hoy"},
	{regexp.MustCompile(`(?i)\boi\b`), "hoy"},
	{regexp.MustCompile(`(?i)\bmanana\b`), "mañana"},
	{regexp.MustCompile(`(?i)\bmannana\b`), "mañana"},
	{regexp.MustCompile(`(?i)\bmañna\b`), "mañana"},
	{regexp.MustCompile(`(?i)\btomorow\b`), "tomorrow"},
	{regexp.MustCompile(`(?i)\btommorow\b`), "tomorrow"},

	// time words
	{regexp.MustCompile(`(?i)\bmedio\s*d[ií]a\b`), "mediodía"},
	{regexp.MustCompile(`(?i)\bmedioia\b`), "mediodía"},
	{regexp.MustCompile(`(?i)\bmediodia\b`), "mediodía"},
	{regexp.MustCompile(`(?i)\bmeiodia\b`), "mediodía"},

	// location phrases
	{regexp.MustCompile(`(?i)\bcerca\s+mio\b`), "cerca de mi"},
	{regexp.MustCompile(`(?i)\bcerca\s+mia\b`), "cerca de mi"},
	{regexp.MustCompile(`(?i)\bserca\b`), "cerca"},
	{regexp.MustCompile(`(?i)\bceca\s+de\b`), "cerca de"},

	// event words
	{regexp.MustCompile(`(?i)\bcta\b`), "cita"},
	{regexp.MustCompile(`(?i)\bsita\b`), "cita"},
	{regexp.MustCompile(`(?i)\bfamila\b`), "familia"},
	{regexp.MustCompile(`(?i)\bfmilia\b`), "familia"},
	{regexp.MustCompile(`(?i)\bespose\b`), "esposa"},
	{regexp.MustCompile(`(?i)\bespozo\b`), "esposo"},

	// chat shorthand
	{regexp.MustCompile(`(?i)\bk\b`), "que"},
	{regexp.MustCompile(`(?i)\bu\b`), "you"},
}

// Normalize fixes common bilingual typos before any extraction runs.
// Pure; returns the input unchanged when nothing matches.
func Normalize(text string) string {
	corrected := text
	for _, rule := range typoRules {
		corrected = rule.pattern.ReplaceAllString(corrected, rule.repl)
	}
	return corrected
}
