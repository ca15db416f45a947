package qa

import "strings"

// Cue phrases that mark definition-like sentences, in match priority order.
var definitionCues = []string{
	`is defined as`, `refers to`, `means that`, `is called`,
	`known as`, `can be defined`, `is essentially`, `is described as`,
}

// Cue phrases that mark example sentences.
var exampleCues = []string{
	`for example`, `such as`, `for instance`, `including`,
	`like`, `e\.g\.`, `as in`, `case study`,
}

const (
	maxDefinitions   = 3
	maxExamples      = 2
	minDefinitionLen = 20
	minExampleLen    = 30
)

// ExtractDefinitions returns up to three definition-like sentences from
// contextText, in document order.
func (e *Engine) ExtractDefinitions(contextText string) []string {
	return e.extractByCues(contextText, definitionCues, minDefinitionLen, maxDefinitions)
}

// ExtractExamples returns up to two example sentences from contextText, in
// document order.
func (e *Engine) ExtractExamples(contextText string) []string {
	return e.extractByCues(contextText, exampleCues, minExampleLen, maxExamples)
}

// extractByCues collects sentences above minLen that match any cue pattern.
// A sentence qualifies on its first matching cue; collection stops as soon as
// limit is reached. Sentences are not ranked, only order-found.
func (e *Engine) extractByCues(text string, cues []string, minLen int, limit int) []string {
	var matched []string
	for _, part := range e.splitSentences(text) {
		sentence := strings.TrimSpace(part)
		if len(sentence) <= minLen {
			continue
		}
		for _, cue := range cues {
			if e.patterns.Get(cue).MatchString(sentence) {
				matched = append(matched, sentence)
				break
			}
		}
		if len(matched) >= limit {
			break
		}
	}
	return matched
}
