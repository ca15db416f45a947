package qa

import (
	"sort"
	"strings"
)

// wordPattern matches maximal alphabetic runs of at least four characters.
const wordPattern = `\b[a-zA-Z]{4,}\b`

// maxKeyTerms bounds how many ranked terms ExtractKeyTerms returns.
const maxKeyTerms = 10

// termStopWords are common function words excluded from key-term ranking.
// This set is distinct from the interrogative stop words applied to questions.
var termStopWords = map[string]struct{}{
	"this": {}, "that": {}, "these": {}, "those": {}, "which": {}, "what": {},
	"when": {}, "where": {}, "who": {}, "why": {}, "how": {}, "with": {},
	"from": {}, "have": {}, "has": {}, "been": {}, "were": {}, "are": {},
	"and": {}, "the": {}, "for": {}, "not": {}, "but": {}, "their": {},
	"will": {}, "would": {}, "should": {}, "could": {}, "about": {},
	"into": {}, "through": {}, "during": {}, "before": {}, "after": {},
	"above": {}, "below": {}, "upon": {}, "under": {}, "while": {},
	"until": {}, "then": {}, "than": {}, "also": {}, "more": {},
	"less": {}, "most": {}, "least": {},
}

// ExtractKeyTerms returns up to ten terms ranked by frequency of occurrence in
// text. Terms are lower-case alphabetic tokens of length >= 4, minus stop
// words. Ties are broken by order of first occurrence, so repeated calls with
// the same input produce the same ranking.
func (e *Engine) ExtractKeyTerms(text string) []string {
	words := e.patterns.Get(wordPattern).FindAllString(strings.ToLower(text), -1)

	counts := make(map[string]int, len(words))
	var order []string
	for _, word := range words {
		if _, stop := termStopWords[word]; stop {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > maxKeyTerms {
		order = order[:maxKeyTerms]
	}
	return order
}
