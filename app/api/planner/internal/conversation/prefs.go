package conversation

import "strings"

// keywordCategory accumulates every matching category, bilingual keywords per
// entry, evaluated in table order.
type keywordCategory struct {
	category string
	keywords []string
}

var cuisineTable = []keywordCategory{
	{"mexican", []string{"mexican", "mexicana", "mexicano", "tacos", "burrito"}},
	{"italian", []string{"italian", "italiana", "italiano", "pasta", "pizza"}},
	{"chinese", []string{"chinese", "china", "chino"}},
	{"japanese", []string{"japanese", "japan", "japonés", "sushi", "ramen"}},
	{"thai", []string{"thai", "tailandés"}},
	{"indian", []string{"indian", "indio", "curry"}},
	{"american", []string{"american", "americana", "burger", "bbq", "steak"}},
	{"french", []string{"french", "francés", "francesa"}},
	{"mediterranean", []string{"mediterranean", "mediterránea", "greek", "middle eastern"}},
	{"seafood", []string{"seafood", "mariscos", "fish", "pescado"}},
	{"vegetarian", []string{"vegetarian", "vegetariano", "vegan", "vegano"}},
	{"asian", []string{"asian", "asiática"}},
}

var moodTable = []keywordCategory{
	{"quiet", []string{"calm", "tranquil", "quiet", "peaceful", "tranquilo"}},
	{"romantic", []string{"romantic", "romance", "intimate", "romántic"}},
	{"lively", []string{"fun", "lively", "energetic", "party", "divertido", "animado"}},
	{"upscale", []string{"fancy", "elegant", "upscale", "classy", "elegante", "fino"}},
	{"casual", []string{"casual", "relaxed", "laid-back", "informal"}},
	{"family", []string{"family", "familia", "kid-friendly"}},
}

func matchCategories(lower string, table []keywordCategory) []string {
	var matched []string
	for _, entry := range table {
		if containsAny(lower, entry.keywords...) {
			matched = append(matched, entry.category)
		}
	}
	return matched
}

// ExtractCuisines collects every cuisine the text mentions. An explicit
// "no preference" short-circuits to the "any" sentinel.
func ExtractCuisines(message string) []string {
	lower := strings.ToLower(message)
	if hasNoPreference(lower) {
		return []string{AnyPreference}
	}
	return matchCategories(lower, cuisineTable)
}

// ExtractMoods works like ExtractCuisines over the mood table.
func ExtractMoods(message string) []string {
	lower := strings.ToLower(message)
	if hasNoPreference(lower) {
		return []string{AnyPreference}
	}
	return matchCategories(lower, moodTable)
}
