package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"

	"study-qa/qa"
	"study-qa/web/format"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru"
	"go.uber.org/zap"
)

// AskRequest is the JSON payload for POST /ask.
type AskRequest struct {
	ContextChunks []string `json:"context_chunks" binding:"required"`
	Question      string   `json:"question" binding:"required"`
}

// AskHandler answers questions over caller-supplied context chunks, caching
// recent answers so repeated questions over the same material skip the
// generation pipeline.
type AskHandler struct {
	engine *qa.Engine
	cache  *lru.Cache
	logger *zap.Logger
}

func NewAskHandler(engine *qa.Engine, cacheSize int, logger *zap.Logger) *AskHandler {
	if cacheSize < 1 {
		cacheSize = 1
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		// Only possible with a non-positive size, which is clamped above.
		logger.Fatal("Failed to create answer cache", zap.Error(err))
	}
	return &AskHandler{
		engine: engine,
		cache:  cache,
		logger: logger,
	}
}

func (h *AskHandler) Ask(c *gin.Context) {
	var req AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "context_chunks and question are required"})
		return
	}

	key := cacheKey(req.ContextChunks, req.Question)
	var answer string
	if cached, ok := h.cache.Get(key); ok {
		answer = cached.(string)
	} else {
		answer = h.engine.GenerateAnswer(c.Request.Context(), req.ContextChunks, req.Question)
		h.cache.Add(key, answer)
	}

	respondWithAnswer(c, answer)
}

// respondWithAnswer returns the markdown answer as JSON, or rendered HTML when
// the client asks for text/html.
func respondWithAnswer(c *gin.Context, answer string) {
	if strings.Contains(c.GetHeader("Accept"), "text/html") {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(format.RenderHTML(answer)))
		return
	}
	c.JSON(http.StatusOK, gin.H{"answer": answer})
}

// cacheKey hashes the question and chunks. Chunk boundaries are delimited so
// ["ab","c"] and ["a","bc"] do not collide.
func cacheKey(chunks []string, question string) string {
	hash := sha256.New()
	hash.Write([]byte(question))
	for _, chunk := range chunks {
		hash.Write([]byte{0})
		hash.Write([]byte(chunk))
	}
	return hex.EncodeToString(hash.Sum(nil))
}
