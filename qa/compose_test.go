package qa

import (
	"strings"
	"testing"
)

const photosynthesisContext = "Photosynthesis is defined as the process by which plants convert light into energy. " +
	"For example, sunflowers track the sun. " +
	"Chlorophyll absorbs sunlight within the plant leaf structure. " +
	"Plants release oxygen during photosynthesis every single day."

func TestComposeAnswerStructure(t *testing.T) {
	engine := newTestEngine(t)
	question := "What is photosynthesis?"

	answer := engine.ComposeAnswer(photosynthesisContext, question)

	wantSections := []string{
		"# 📚 Comprehensive Analysis: What is photosynthesis?",
		"## 🔍 Key Findings from Your Study Material:",
		"**1. ",
		"## 📖 Important Definitions:",
		"**Definition 1:** Photosynthesis is defined as the process by which plants convert light into energy",
		"## 💡 Practical Examples:",
		"**Example 1:** For example, sunflowers track the sun",
		"## 🎯 Key Related Concepts:",
		"## 📝 Study Recommendations:",
		"## 💭 Further Exploration:",
	}
	for _, section := range wantSections {
		if !strings.Contains(answer, section) {
			t.Errorf("answer missing %q", section)
		}
	}

	// Section order is fixed.
	last := -1
	for _, section := range wantSections {
		idx := strings.Index(answer, section)
		if idx < last {
			t.Errorf("section %q out of order", section)
		}
		last = idx
	}
}

func TestComposeAnswerMinimumVerbosity(t *testing.T) {
	engine := newTestEngine(t)

	answer := engine.ComposeAnswer(photosynthesisContext, "What is photosynthesis?")

	if len(strings.Fields(answer)) < minAnswerWords {
		if !strings.Contains(answer, "## 🔍 Additional Insights:") {
			t.Error("short answer missing the additional insights block")
		}
		if !strings.Contains(answer, "## 📚 Recommended Next Steps:") {
			t.Error("short answer missing the next steps block")
		}
	}
}

func TestComposeAnswerDelegatesToNoMatch(t *testing.T) {
	engine := newTestEngine(t)

	// Every sentence is too short for the relevance scan and the fallback,
	// so no sentences survive and the no-match composer takes over.
	context := "Cells divide. Tissues form. Organs grow. Systems work."
	question := "What is thermodynamics?"

	answer := engine.ComposeAnswer(context, question)

	if !strings.Contains(answer, "## 🔍 Overview of Your Study Material:") {
		t.Error("expected the no-match overview section")
	}
	if !strings.Contains(answer, `While I couldn't find direct information about "What is thermodynamics?"`) {
		t.Error("no-match answer should quote the literal question")
	}
	if !strings.Contains(answer, "## 🎯 Suggested Study Approach:") {
		t.Error("expected the study approach section")
	}
	if strings.Contains(answer, "## 🔍 Key Findings from Your Study Material:") {
		t.Error("no-match answer must not contain the key findings section")
	}
}

func TestComposeNoMatchTopics(t *testing.T) {
	engine := newTestEngine(t)

	context := "The industrial revolution transformed manufacturing across Europe entirely. " +
		"Steam engines powered factories and railways throughout the nineteenth century."
	answer := engine.composeNoMatch(context, "What is quantum computing?", []string{"industrial", "steam"})

	if !strings.Contains(answer, "The content primarily focuses on **industrial, steam**") {
		t.Error("overview should name the key terms")
	}
	if !strings.Contains(answer, "1. **The industrial revolution transformed manufacturing across Europe entirely**") {
		t.Error("main topics should number substantial sentences")
	}
	if !strings.Contains(answer, "2. **Steam engines powered factories and railways throughout the nineteenth century**") {
		t.Error("main topics should include the second substantial sentence")
	}
}

func TestFormatRemoteAnswer(t *testing.T) {
	got := formatRemoteAnswer("Plants convert light into chemical energy.", "What is photosynthesis?")

	if !strings.Contains(got, "# 📚 Comprehensive Analysis: What is photosynthesis?") {
		t.Error("missing title with literal question")
	}
	if !strings.Contains(got, "Plants convert light into chemical energy.") {
		t.Error("missing raw generated text")
	}
	if !strings.Contains(got, "## 💡 Study Tips:") {
		t.Error("missing study tips block")
	}
	if !strings.HasSuffix(got, "*Generated using IBM Watsonx with Mixtral-8x7B-Instruct model*") {
		t.Error("missing attribution footer")
	}
}
