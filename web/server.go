package web

import (
	"context"
	"net/http"

	"study-qa/config"
	"study-qa/document"
	"study-qa/qa"
	"study-qa/web/handlers"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Server struct {
	router *gin.Engine
	engine *qa.Engine
	logger *zap.Logger
	config *config.Config
}

func NewServer(engine *qa.Engine, logger *zap.Logger, cfg *config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	server := &Server{
		router: router,
		engine: engine,
		logger: logger,
		config: cfg,
	}

	server.setupRoutes()
	return server
}

// requestLogger tags every request with an id and logs its outcome.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Next()
		logger.Info("Request handled",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()))
	}
}

func (s *Server) setupRoutes() {
	askHandler := handlers.NewAskHandler(s.engine, s.config.AnswerCacheSize, s.logger)

	extractor := document.NewExtractor(s.logger)
	chunker := document.NewChunker(s.config.ChunkSentences, s.config.ChunkOverlap, s.logger)
	documentHandler := handlers.NewDocumentHandler(s.engine, extractor, chunker, s.config.MaxUploadBytes, s.logger)

	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.router.POST("/ask", askHandler.Ask)
	s.router.POST("/ask/document", documentHandler.AskDocument)
}

func (s *Server) Start(ctx context.Context, addr string) error {
	s.logger.Info("Starting web server", zap.String("address", addr))

	srv := &http.Server{
		Addr:    addr,
		Handler: s.router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("Web server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()

	s.logger.Info("Shutting down web server")
	return srv.Shutdown(context.Background())
}
