package handlers

import (
	"bytes"
	"io"
	"net/http"
	"strings"

	"study-qa/document"
	"study-qa/qa"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DocumentHandler answers questions about an uploaded PDF: extract text,
// chunk it, then run the same answer pipeline as /ask. Nothing is persisted;
// the document lives only for the duration of the request.
type DocumentHandler struct {
	engine    *qa.Engine
	extractor *document.Extractor
	chunker   *document.Chunker
	maxBytes  int64
	logger    *zap.Logger
}

func NewDocumentHandler(engine *qa.Engine, extractor *document.Extractor, chunker *document.Chunker, maxBytes int64, logger *zap.Logger) *DocumentHandler {
	return &DocumentHandler{
		engine:    engine,
		extractor: extractor,
		chunker:   chunker,
		maxBytes:  maxBytes,
		logger:    logger,
	}
}

func (h *DocumentHandler) AskDocument(c *gin.Context) {
	if h.maxBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBytes)
	}

	question := strings.TrimSpace(c.PostForm("question"))
	if question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a PDF file upload is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read upload"})
		return
	}
	defer file.Close()

	// The PDF reader needs io.ReaderAt, so buffer the upload in memory.
	// Upload size is already bounded by MaxBytesReader.
	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "upload too large"})
		return
	}

	text, err := h.extractor.ExtractText(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		h.logger.Warn("PDF extraction failed",
			zap.String("filename", fileHeader.Filename),
			zap.Error(err))
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "could not parse PDF"})
		return
	}

	chunks := h.chunker.Chunk(text)
	answer := h.engine.GenerateAnswer(c.Request.Context(), chunks, question)

	c.JSON(http.StatusOK, gin.H{
		"answer": answer,
		"chunks": len(chunks),
	})
}
