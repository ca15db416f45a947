package document

import (
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestChunk(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	text := "The heart pumps blood through the body. " +
		"Arteries carry blood away from the heart. " +
		"Veins return blood to the heart. " +
		"Capillaries connect arteries and veins. " +
		"Blood carries oxygen to every cell."

	tests := []struct {
		name              string
		sentencesPerChunk int
		overlap           int
		wantChunks        int
	}{
		{"two_sentences_no_overlap", 2, 0, 3},
		{"two_sentences_one_overlap", 2, 1, 4},
		{"all_in_one", 10, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunker := NewChunker(tt.sentencesPerChunk, tt.overlap, logger)
			chunks := chunker.Chunk(text)

			if len(chunks) != tt.wantChunks {
				t.Fatalf("Chunk() returned %d chunks, want %d: %v", len(chunks), tt.wantChunks, chunks)
			}
			if !strings.Contains(chunks[0], "The heart pumps blood") {
				t.Errorf("first chunk missing opening sentence: %q", chunks[0])
			}
			if !strings.Contains(chunks[len(chunks)-1], "oxygen to every cell") {
				t.Errorf("last chunk missing closing sentence: %q", chunks[len(chunks)-1])
			}
		})
	}
}

func TestChunkOverlapRepeatsSentences(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	chunker := NewChunker(2, 1, logger)

	chunks := chunker.Chunk("First sentence here. Second sentence here. Third sentence here.")
	if len(chunks) != 2 {
		t.Fatalf("Chunk() returned %d chunks, want 2: %v", len(chunks), chunks)
	}
	if !strings.Contains(chunks[0], "Second sentence") || !strings.Contains(chunks[1], "Second sentence") {
		t.Errorf("overlapping sentence should appear in adjacent chunks: %v", chunks)
	}
}

func TestChunkEmptyText(t *testing.T) {
	logger, _ := zap.NewDevelopment()
	chunker := NewChunker(3, 1, logger)

	if chunks := chunker.Chunk(""); chunks != nil {
		t.Errorf("Chunk(\"\") = %v, want nil", chunks)
	}
	if chunks := chunker.Chunk("   \n\t  "); chunks != nil {
		t.Errorf("Chunk(whitespace) = %v, want nil", chunks)
	}
}

func TestNewChunkerNormalizesParameters(t *testing.T) {
	logger, _ := zap.NewDevelopment()

	chunker := NewChunker(0, 5, logger)
	if chunker.sentencesPerChunk != 1 {
		t.Errorf("sentencesPerChunk = %d, want 1", chunker.sentencesPerChunk)
	}
	if chunker.overlap != 0 {
		t.Errorf("overlap = %d, want 0", chunker.overlap)
	}
}

func TestSplitOnTerminators(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"three_sentences", "One here. Two here! Three here?", 3},
		{"no_terminator", "a fragment without punctuation", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitOnTerminators(tt.text)
			if len(got) != tt.want {
				t.Errorf("splitOnTerminators() = %v, want %d segments", got, tt.want)
			}
		})
	}
}
