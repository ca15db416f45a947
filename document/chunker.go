package document

import (
	"strings"

	"github.com/jdkato/prose/v2"
	"go.uber.org/zap"
)

// Chunker groups document text into sentence-bounded chunks suitable as QA
// context. Sentence segmentation uses prose; if segmentation fails the text
// is split on terminator characters instead.
type Chunker struct {
	sentencesPerChunk int
	overlap           int
	logger            *zap.Logger
}

func NewChunker(sentencesPerChunk int, overlap int, logger *zap.Logger) *Chunker {
	if sentencesPerChunk < 1 {
		sentencesPerChunk = 1
	}
	if overlap < 0 || overlap >= sentencesPerChunk {
		overlap = 0
	}
	return &Chunker{
		sentencesPerChunk: sentencesPerChunk,
		overlap:           overlap,
		logger:            logger,
	}
}

// Chunk splits text into ordered chunks of up to sentencesPerChunk sentences,
// with the configured number of sentences repeated between adjacent chunks.
func (c *Chunker) Chunk(text string) []string {
	sentences := c.segment(text)
	if len(sentences) == 0 {
		return nil
	}

	step := c.sentencesPerChunk - c.overlap

	var chunks []string
	for start := 0; start < len(sentences); start += step {
		end := start + c.sentencesPerChunk
		if end > len(sentences) {
			end = len(sentences)
		}
		chunks = append(chunks, strings.Join(sentences[start:end], " "))
		if end == len(sentences) {
			break
		}
	}
	return chunks
}

// segment returns the trimmed, non-empty sentences of text.
func (c *Chunker) segment(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		c.logger.Warn("Sentence segmentation failed, splitting on terminators", zap.Error(err))
		return splitOnTerminators(text)
	}

	var sentences []string
	for _, sent := range doc.Sentences() {
		s := strings.TrimSpace(sent.Text)
		if s != "" {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) == 0 {
		return splitOnTerminators(text)
	}
	return sentences
}

func splitOnTerminators(text string) []string {
	var sentences []string
	var builder strings.Builder

	flush := func() {
		s := strings.TrimSpace(builder.String())
		if s != "" {
			sentences = append(sentences, s)
		}
		builder.Reset()
	}

	for _, r := range text {
		builder.WriteRune(r)
		if r == '.' || r == '!' || r == '?' {
			flush()
		}
	}
	flush()

	if len(sentences) == 0 {
		return []string{text}
	}
	return sentences
}
