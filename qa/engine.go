package qa

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"study-qa/config"
	"study-qa/llmclient"

	"go.uber.org/zap"
)

const (
	// maxContextChunks bounds how much of the supplied material is used,
	// regardless of how many chunks the caller provides.
	maxContextChunks = 3
	// minContextLength gates answering: shorter joined context gets the fixed
	// insufficient-text message with no generation attempted.
	minContextLength = 50
)

// InsufficientContextMessage is returned verbatim when the joined context is
// too short to answer from.
const InsufficientContextMessage = "I couldn't extract enough text from the PDF to answer your question. Please try with a different PDF or ensure the document contains readable text."

// Engine answers questions from document context. It owns the process-wide
// mutable state the pipeline needs: the pattern cache and the lazily
// initialized remote client. A single Engine is safe for concurrent callers.
type Engine struct {
	cfg      *config.Config
	logger   *zap.Logger
	patterns *PatternCache

	// The remote client is initialized once on first use. If initialization
	// fails it stays unset for the lifetime of the engine and every answer
	// uses local composition.
	clientOnce sync.Once
	client     *llmclient.WatsonxClient
}

func New(cfg *config.Config, logger *zap.Logger) *Engine {
	return &Engine{
		cfg:      cfg,
		logger:   logger,
		patterns: NewPatternCache(),
	}
}

// GenerateAnswer is the sole public entry point for answering. It never
// returns an error: every failure mode maps to a user-visible string.
func (e *Engine) GenerateAnswer(ctx context.Context, contextChunks []string, question string) (answer string) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("Answer generation panicked", zap.Any("panic", r), zap.String("question", question))
			answer = fmt.Sprintf("Error processing your question: %v", r)
		}
	}()

	if len(contextChunks) > maxContextChunks {
		contextChunks = contextChunks[:maxContextChunks]
	}
	contextText := strings.Join(contextChunks, "\n")

	if len(strings.TrimSpace(contextText)) < minContextLength {
		return InsufficientContextMessage
	}

	result := e.generateRemoteAnswer(ctx, contextText, question)
	switch result.Status {
	case RemoteSuccess:
		return result.Text
	case RemoteFatal:
		return fmt.Sprintf("Error processing your question: %v", result.Err)
	default:
		return e.ComposeAnswer(contextText, question)
	}
}

// generateRemoteAnswer invokes the remote model and wraps its output in the
// fixed template. Any failure yields RemoteUnavailable; the adapter never
// propagates an error past this boundary.
func (e *Engine) generateRemoteAnswer(ctx context.Context, contextText string, question string) RemoteResult {
	client := e.remoteClient()
	if client == nil {
		return RemoteResult{Status: RemoteUnavailable}
	}

	generated, err := client.Generate(ctx, contextText, question)
	if err != nil {
		e.logger.Warn("Remote generation failed, composing local answer", zap.Error(err))
		return RemoteResult{Status: RemoteUnavailable, Err: err}
	}
	return RemoteResult{Status: RemoteSuccess, Text: formatRemoteAnswer(generated, question)}
}

// remoteClient lazily initializes the Watsonx client. A failed initialization
// is cached as unset for the remainder of the engine's lifetime rather than
// retried on later calls.
func (e *Engine) remoteClient() *llmclient.WatsonxClient {
	e.clientOnce.Do(func() {
		client, err := llmclient.NewWatsonx(e.cfg, e.logger)
		if err != nil {
			e.logger.Warn("Watsonx client unavailable, answers will use local composition", zap.Error(err))
			return
		}
		e.client = client
	})
	return e.client
}
