package qa

import (
	"fmt"
	"strings"
)

const (
	// minAnswerWords is the minimum-verbosity guarantee: shorter answers get
	// the additional-insights block appended.
	minAnswerWords = 150

	maxDisplayedTerms   = 5
	maxFallbackTerms    = 3
	maxTopicSentences   = 4
	minTopicSentenceLen = 50
)

const studyRecommendations = `
## 📝 Study Recommendations:

1. **Focus on understanding** the relationships between %s
2. **Review the definitions** and how they apply to different contexts
3. **Practice with examples** to reinforce your understanding
4. **Connect these concepts** to broader topics in your field

## 💭 Further Exploration:

For deeper understanding, consider researching how these concepts relate to real-world applications.`

// ComposeAnswer assembles a structured answer from sentences, definitions,
// examples and key terms extracted from contextText. If no sentence is
// relevant to the question, the no-match composer takes over entirely.
func (e *Engine) ComposeAnswer(contextText string, question string) string {
	keyTerms := e.ExtractKeyTerms(contextText)
	relevant := e.ExtractRelevantSentences(contextText, question)

	if len(relevant) == 0 {
		return e.composeNoMatch(contextText, question, keyTerms)
	}

	// Skip the extra scans when the primary list is already full.
	var definitions, examples []string
	if len(relevant) < 6 {
		definitions = e.ExtractDefinitions(contextText)
	}
	if len(relevant) < 8 {
		examples = e.ExtractExamples(contextText)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# 📚 Comprehensive Analysis: %s\n\n## 🔍 Key Findings from Your Study Material:\n\n", question)

	for i, sentence := range capList(relevant, maxRelevantSentences) {
		fmt.Fprintf(&b, "**%d. %s**\n\n", i+1, sentence)
	}

	if len(definitions) > 0 {
		b.WriteString("\n## 📖 Important Definitions:\n\n")
		for i, definition := range capList(definitions, maxDefinitions) {
			fmt.Fprintf(&b, "**Definition %d:** %s\n\n", i+1, definition)
		}
	}

	if len(examples) > 0 {
		b.WriteString("\n## 💡 Practical Examples:\n\n")
		for i, example := range capList(examples, maxExamples) {
			fmt.Fprintf(&b, "**Example %d:** %s\n\n", i+1, example)
		}
	}

	if len(keyTerms) > 0 {
		b.WriteString("\n## 🎯 Key Related Concepts:\n\n")
		b.WriteString(strings.Join(emphasize(capList(keyTerms, maxDisplayedTerms)), ", "))
		b.WriteString("\n\n")
	}

	focus := "these concepts"
	if len(keyTerms) > 0 {
		focus = strings.Join(capList(keyTerms, 2), ", ")
	}
	fmt.Fprintf(&b, studyRecommendations, focus)

	answer := b.String()
	if len(strings.Fields(answer)) < minAnswerWords {
		answer += e.additionalInsights(contextText)
	}
	return answer
}

// composeNoMatch produces the structurally similar fallback answer used when
// no sentence in the material relates to the question.
func (e *Engine) composeNoMatch(contextText string, question string, keyTerms []string) string {
	focus := "key concepts"
	if len(keyTerms) > 0 {
		focus = strings.Join(capList(keyTerms, maxFallbackTerms), ", ")
	}

	return fmt.Sprintf(`# 📚 Comprehensive Analysis: %[1]s

## 🔍 Overview of Your Study Material:

The content primarily focuses on **%[2]s**. While I couldn't find direct information about "%[1]s", here's what the material covers:

## 📖 Main Topics Discussed:

%[3]s

## 🎯 Suggested Study Approach:

1. **Review foundational concepts** related to the main topics
2. **Look for connections** between different concepts
3. **Examine practical applications** mentioned
4. **Note definitions and terminology** used

## 💡 Potential Related Questions:

- How does %[1]s relate to the main concepts?
- What applications might %[1]s have in this context?

## 📝 Recommendation:

Review sections discussing related concepts for indirect references to "%[1]s".`,
		question, focus, e.formatKeyTopics(contextText))
}

// formatKeyTopics lists the first few substantial sentences of the material as
// a numbered, emphasized block. Not deduplicated against other extractors.
func (e *Engine) formatKeyTopics(contextText string) string {
	var topics []string
	for _, part := range e.splitSentences(contextText) {
		sentence := strings.TrimSpace(part)
		if len(sentence) <= minTopicSentenceLen {
			continue
		}
		topics = append(topics, fmt.Sprintf("%d. **%s**", len(topics)+1, sentence))
		if len(topics) >= maxTopicSentences {
			break
		}
	}
	return strings.Join(topics, "\n")
}

// additionalInsights is appended when the composed answer falls short of the
// minimum word count.
func (e *Engine) additionalInsights(contextText string) string {
	flashcards := "key terms"
	if terms := capList(e.ExtractKeyTerms(contextText), maxFallbackTerms); len(terms) > 0 {
		flashcards = strings.Join(terms, ", ")
	}

	return fmt.Sprintf(`

## 🔍 Additional Insights:

Based on the context, consider these points:

- The material emphasizes practical applications
- Key terminology suggests fundamental concepts
- Content builds on previous knowledge

## 📚 Recommended Next Steps:

1. Create flashcards for: %s
2. Summarize main sections
3. Identify conceptual connections
4. Practice explaining concepts`, flashcards)
}

// formatRemoteAnswer wraps text returned by the remote model in the fixed
// answer template.
func formatRemoteAnswer(generated string, question string) string {
	return fmt.Sprintf(`# 📚 Comprehensive Analysis: %s

## 🔍 Answer from Your Study Material:

%s

## 💡 Study Tips:

• **Review key concepts** mentioned in the answer
• **Create flashcards** for important terms
• **Practice explaining** these concepts in your own words
• **Connect this information** to what you already know

*Generated using IBM Watsonx with Mixtral-8x7B-Instruct model*`, question, generated)
}

func capList(items []string, limit int) []string {
	if len(items) > limit {
		return items[:limit]
	}
	return items
}

func emphasize(terms []string) []string {
	out := make([]string, len(terms))
	for i, term := range terms {
		out[i] = "**" + term + "**"
	}
	return out
}
