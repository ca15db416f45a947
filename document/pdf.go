package document

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
	"go.uber.org/zap"
)

// Extractor pulls plain text out of uploaded PDFs.
type Extractor struct {
	logger *zap.Logger
}

func NewExtractor(logger *zap.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// ExtractText extracts all text content from a PDF read from r. Pages that
// fail to parse are skipped rather than failing the whole document.
func (ex *Extractor) ExtractText(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}

	var fullText strings.Builder
	totalPages := reader.NumPage()

	ex.logger.Debug("Extracting text from PDF", zap.Int("pages", totalPages))

	for pageNum := 1; pageNum <= totalPages; pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			ex.logger.Warn("Skipping null page", zap.Int("page", pageNum))
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			ex.logger.Warn("Failed to extract text from page",
				zap.Int("page", pageNum),
				zap.Error(err))
			continue
		}

		fullText.WriteString(text)
		fullText.WriteString("\n\n")
	}

	extracted := strings.TrimSpace(fullText.String())

	ex.logger.Info("PDF text extraction completed",
		zap.Int("pages", totalPages),
		zap.Int("characters", len(extracted)))

	return extracted, nil
}
