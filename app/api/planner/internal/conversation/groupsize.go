package conversation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	sizeRangePattern  = regexp.MustCompile(`(\d+)\s*-\s*(\d+)`)
	sizeNumberPattern = regexp.MustCompile(`(\d+)`)
	peoplePattern     = regexp.MustCompile(`(?i)(\d+)\s*(people|person|personas?|gente)`)
	plusOnePattern    = regexp.MustCompile(`(?i)(my|mi)\s*(girlfriend|boyfriend|wife|husband|novia|novio|esposa|esposo|pareja|partner)`)
)

type wordNumber struct {
	word string
	n    int
}

// Compound words come before the words they contain ("sixteen" before "six").
var wordNumbers = []wordNumber{
	{"sixteen", 16}, {"seventeen", 17}, {"eighteen", 18}, {"nineteen", 19},
	{"eleven", 11}, {"twelve", 12}, {"thirteen", 13}, {"fourteen", 14}, {"fifteen", 15},
	{"twenty", 20}, {"three", 3}, {"four", 4}, {"five", 5}, {"six", 6},
	{"seven", 7}, {"eight", 8}, {"nine", 9}, {"ten", 10}, {"one", 1}, {"two", 2},
	{"dieciséis", 16}, {"dieciseis", 16}, {"diecisiete", 17}, {"dieciocho", 18},
	{"diecinueve", 19}, {"catorce", 14}, {"quince", 15}, {"veinte", 20},
	{"cuatro", 4}, {"cinco", 5}, {"siete", 7}, {"nueve", 9}, {"trece", 13},
	{"doce", 12}, {"once", 11}, {"seis", 6}, {"ocho", 8}, {"diez", 10},
	{"tres", 3}, {"uno", 1}, {"una", 1}, {"dos", 2},
}

type SizeResult struct {
	Size  int
	Range string
}

// ExtractGroupSize reads a head count: a numeric range keeps the range and
// works with its lower bound, then plain numbers, word numbers, and
// descriptive fallbacks.
func ExtractGroupSize(message string) (SizeResult, bool) {
	lower := strings.ToLower(message)

	if m := sizeRangePattern.FindStringSubmatch(message); m != nil {
		minSize, _ := strconv.Atoi(m[1])
		maxSize, _ := strconv.Atoi(m[2])
		return SizeResult{Size: minSize, Range: fmt.Sprintf("%d-%d", minSize, maxSize)}, true
	}

	if m := sizeNumberPattern.FindStringSubmatch(message); m != nil {
		size, _ := strconv.Atoi(m[1])
		return SizeResult{Size: size}, true
	}

	for _, wn := range wordNumbers {
		if strings.Contains(lower, wn.word) {
			return SizeResult{Size: wn.n}, true
		}
	}

	switch {
	case containsAny(lower, "alone", "solo", "just me"):
		return SizeResult{Size: 1}, true
	case containsAny(lower, "couple", "pareja"):
		return SizeResult{Size: 2}, true
	case containsAny(lower, "few", "small", "pequeño"):
		return SizeResult{Size: 4}, true
	case containsAny(lower, "large", "big", "many", "muchos"):
		return SizeResult{Size: 8}, true
	}

	return SizeResult{}, false
}

// ExtractInitialGroupSize is the narrower scan run over a first utterance:
// only "N people" counts, plus companion mentions implying a pair.
func ExtractInitialGroupSize(message string) (int, bool) {
	if m := peoplePattern.FindStringSubmatch(message); m != nil {
		size, _ := strconv.Atoi(m[1])
		return size, true
	}
	if plusOnePattern.MatchString(message) {
		return 2, true
	}
	return 0, false
}
