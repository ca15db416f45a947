package qa

import "strings"

// sentencePattern splits text on runs of sentence terminators.
const sentencePattern = `[.!?]+`

const (
	maxRelevantSentences = 6
	// relevantScanCap stops the scan once this many matches are collected;
	// later qualifying sentences in the document are never considered.
	relevantScanCap        = 8
	minRelevantSentenceLen = 30
	minFallbackSentenceLen = 40
)

// questionStopWords are interrogative words stripped from questions before
// matching. Deliberately smaller than termStopWords: a question like
// "what does correlation mean" should still search for "mean".
var questionStopWords = map[string]struct{}{
	"what": {}, "when": {}, "where": {}, "who": {}, "why": {},
	"how": {}, "does": {}, "could": {}, "would": {}, "should": {},
}

// splitSentences splits text into raw segments on sentence-terminator runs.
// Segments are not trimmed; every consumer trims and length-filters.
func (e *Engine) splitSentences(text string) []string {
	return e.patterns.Get(sentencePattern).Split(text, -1)
}

// questionTerms derives search terms from a question: lower-cased alphabetic
// tokens of length >= 4, deduplicated, minus interrogative stop words.
func (e *Engine) questionTerms(question string) []string {
	tokens := e.patterns.Get(wordPattern).FindAllString(strings.ToLower(question), -1)

	seen := make(map[string]struct{}, len(tokens))
	var terms []string
	for _, tok := range tokens {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		if _, stop := questionStopWords[tok]; stop {
			continue
		}
		terms = append(terms, tok)
	}
	return terms
}

// ExtractRelevantSentences returns up to six sentences from contextText that
// contain at least one question term as a case-insensitive substring. The
// substring test is intentionally not word-bounded ("art" matches inside
// "start"); see DESIGN.md. If nothing matches, it falls back to the first six
// substantial sentences regardless of topical relevance.
func (e *Engine) ExtractRelevantSentences(contextText string, question string) []string {
	parts := e.splitSentences(contextText)
	terms := e.questionTerms(question)

	var relevant []string
	for _, part := range parts {
		sentence := strings.TrimSpace(part)
		if len(sentence) <= minRelevantSentenceLen {
			continue
		}
		lower := strings.ToLower(sentence)
		for _, term := range terms {
			if strings.Contains(lower, term) {
				relevant = append(relevant, sentence)
				break
			}
		}
		if len(relevant) >= relevantScanCap {
			break
		}
	}

	if len(relevant) == 0 {
		for _, part := range parts {
			sentence := strings.TrimSpace(part)
			if len(sentence) <= minFallbackSentenceLen {
				continue
			}
			relevant = append(relevant, sentence)
			if len(relevant) >= maxRelevantSentences {
				break
			}
		}
		return relevant
	}

	if len(relevant) > maxRelevantSentences {
		relevant = relevant[:maxRelevantSentences]
	}
	return relevant
}
