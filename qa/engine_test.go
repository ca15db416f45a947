package qa

import (
	"context"
	"strings"
	"testing"
)

func TestGenerateAnswerInsufficientContext(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name   string
		chunks []string
	}{
		{"no_chunks", nil},
		{"empty_chunks", []string{"", ""}},
		{"short_text", []string{"Short text."}},
		{"whitespace_padding", []string{"   \n\t  a bit of text   "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.GenerateAnswer(context.Background(), tt.chunks, "What is this about?")
			if got != InsufficientContextMessage {
				t.Errorf("GenerateAnswer() = %q, want the insufficient context message", got)
			}
		})
	}
}

func TestGenerateAnswerLocalPathEquivalence(t *testing.T) {
	// With unset credentials the remote client never initializes, so the
	// orchestrator's output must equal the composer's for the same input.
	engine := newTestEngine(t)

	chunks := []string{photosynthesisContext}
	question := "What is photosynthesis?"

	got := engine.GenerateAnswer(context.Background(), chunks, question)
	want := engine.ComposeAnswer(photosynthesisContext, question)

	if got != want {
		t.Errorf("GenerateAnswer() diverged from ComposeAnswer():\ngot:  %q\nwant: %q", got, want)
	}
}

func TestGenerateAnswerUsesFirstThreeChunks(t *testing.T) {
	engine := newTestEngine(t)

	chunks := []string{
		"The water cycle moves moisture between the oceans and the atmosphere continuously.",
		"Evaporation lifts water vapor from the surface into the air above.",
		"Condensation forms clouds when the vapor cools at higher altitudes.",
		"Photosynthesis is defined as the process by which plants convert light into energy.",
	}
	question := "What is photosynthesis?"

	got := engine.GenerateAnswer(context.Background(), chunks, question)
	want := engine.ComposeAnswer(strings.Join(chunks[:3], "\n"), question)

	if got != want {
		t.Errorf("fourth chunk influenced the answer:\ngot:  %q\nwant: %q", got, want)
	}
	if strings.Contains(got, "Photosynthesis is defined as") {
		t.Error("answer leaked content from beyond the third chunk")
	}
}

func TestGenerateAnswerNoMatchPath(t *testing.T) {
	engine := newTestEngine(t)

	chunks := []string{
		"The committee reviewed the annual budget allocations for every department in the organization.",
	}
	got := engine.GenerateAnswer(context.Background(), chunks, "What is photosynthesis?")

	// No sentence relates to the question, but substantial sentences exist:
	// the selector falls back to them, so the primary composer still runs.
	if !strings.Contains(got, "## 🔍 Key Findings from Your Study Material:") {
		t.Errorf("expected the primary composition for fallback sentences, got %q", got)
	}
}

func TestRemoteResultStatuses(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.generateRemoteAnswer(context.Background(), photosynthesisContext, "What is photosynthesis?")
	if result.Status != RemoteUnavailable {
		t.Errorf("generateRemoteAnswer() status = %v, want RemoteUnavailable with unset credentials", result.Status)
	}
	if result.Text != "" {
		t.Errorf("unavailable result carries text %q", result.Text)
	}
}
