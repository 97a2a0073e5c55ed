package conversation

import "strings"

var noPreferencePhrases = []string{
	"no preference", "sin preferencia", "any", "doesn't matter",
	"cualquier", "da igual",
}

func hasNoPreference(lower string) bool {
	return containsAny(lower, noPreferencePhrases...)
}

// budgetWord maps a descriptive phrase to a tier; evaluated in order.
type budgetWord struct {
	words []string
	tier  BudgetTier
}

var budgetWords = []budgetWord{
	{[]string{"economical", "económico", "cheap", "barato"}, BudgetCheap},
	{[]string{"no muy caro", "not too expensive", "moderate", "moderado", "reasonable", "affordable", "medium"}, BudgetModerate},
	{[]string{"upscale", "expensive", "fancy", "caro", "nice", "good money", "willing to spend"}, BudgetUpscale},
	{[]string{"luxury", "lujo", "high-end", "premium"}, BudgetLuxury},
}

// ExtractBudget maps text to a price tier. Dollar-sign counts take priority
// over descriptive words; an explicit "no preference" yields the NA sentinel.
func ExtractBudget(message string) (BudgetTier, bool) {
	lower := strings.ToLower(message)

	if hasNoPreference(lower) {
		return BudgetNone, true
	}

	switch {
	case strings.Contains(message, "$$$$"):
		return BudgetLuxury, true
	case strings.Contains(message, "$$$"):
		return BudgetUpscale, true
	case strings.Contains(message, "$$"):
		return BudgetModerate, true
	case strings.Contains(message, "$"):
		return BudgetCheap, true
	}

	for _, bw := range budgetWords {
		if containsAny(lower, bw.words...) {
			return bw.tier, true
		}
	}

	return "", false
}
