package llmclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"study-qa/config"
	apperrors "study-qa/errors"
	"study-qa/prompts"

	"go.uber.org/zap"
)

// Placeholder credentials shipped as config defaults. A deployment that never
// sets real credentials keeps these values and must not attempt remote calls.
const (
	placeholderAPIKey    = "your-api-key-here"
	placeholderProjectID = "your-project-id-here"
)

// Fixed decoding parameters for the generation endpoint. These are part of the
// answer contract, not tunables.
const (
	decodingMethod    = "sample"
	maxNewTokens      = 1024
	minNewTokens      = 50
	temperature       = 0.7
	topP              = 0.9
	topK              = 50
	repetitionPenalty = 1.0
)

// apiVersion pins the Watsonx text generation API date.
const apiVersion = "2024-05-31"

type generationParameters struct {
	DecodingMethod    string  `json:"decoding_method"`
	MaxNewTokens      int     `json:"max_new_tokens"`
	MinNewTokens      int     `json:"min_new_tokens"`
	Temperature       float64 `json:"temperature"`
	TopP              float64 `json:"top_p"`
	TopK              int     `json:"top_k"`
	RepetitionPenalty float64 `json:"repetition_penalty"`
}

type generationRequest struct {
	ModelID    string               `json:"model_id"`
	ProjectID  string               `json:"project_id"`
	Input      string               `json:"input"`
	Parameters generationParameters `json:"parameters"`
}

type generationResponse struct {
	Results []struct {
		GeneratedText string `json:"generated_text"`
	} `json:"results"`
}

type iamTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// WatsonxClient calls the IBM Watsonx text generation service. Access tokens
// are fetched lazily from the IAM endpoint and cached until shortly before
// expiry.
type WatsonxClient struct {
	cfg        *config.Config
	httpClient *http.Client
	logger     *zap.Logger

	mu          sync.Mutex
	accessToken string
	tokenExpiry time.Time
}

// NewWatsonx validates the configured credentials and returns a client.
// Placeholder or empty credentials return ErrRemoteUnavailable so the caller
// can degrade to local answer composition without any network round trip.
func NewWatsonx(cfg *config.Config, logger *zap.Logger) (*WatsonxClient, error) {
	if cfg.WatsonxAPIKey == "" || cfg.WatsonxAPIKey == placeholderAPIKey {
		return nil, apperrors.WrapError(apperrors.ErrRemoteUnavailable, "watsonx api key not configured")
	}
	if cfg.WatsonxProjectID == "" || cfg.WatsonxProjectID == placeholderProjectID {
		return nil, apperrors.WrapError(apperrors.ErrRemoteUnavailable, "watsonx project id not configured")
	}
	if cfg.WatsonxURL == "" {
		return nil, apperrors.WrapError(apperrors.ErrRemoteUnavailable, "watsonx url not configured")
	}
	return &WatsonxClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.LLMRequestTimeout},
		logger:     logger,
	}, nil
}

// Generate produces an answer for the question grounded in contextText.
// A single attempt is made; any failure is returned to the caller, which is
// expected to fall back to local composition rather than retry.
func (c *WatsonxClient) Generate(ctx context.Context, contextText string, question string) (string, error) {
	token, err := c.token(ctx)
	if err != nil {
		return "", apperrors.WrapError(err, "acquire iam token")
	}

	reqBody := generationRequest{
		ModelID:   c.cfg.WatsonxModelID,
		ProjectID: c.cfg.WatsonxProjectID,
		Input:     buildPrompt(contextText, question),
		Parameters: generationParameters{
			DecodingMethod:    decodingMethod,
			MaxNewTokens:      maxNewTokens,
			MinNewTokens:      minNewTokens,
			Temperature:       temperature,
			TopP:              topP,
			TopK:              topK,
			RepetitionPenalty: repetitionPenalty,
		},
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal generation request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/ml/v1/text/generation?version=%s", strings.TrimRight(c.cfg.WatsonxURL, "/"), apiVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return "", fmt.Errorf("create generation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.WrapError(apperrors.ErrLLMCommunication, err.Error())
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read generation response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", apperrors.WrapErrorf(apperrors.ErrLLMCommunication, "generation server status %s: %s", resp.Status, strings.TrimSpace(string(bodyBytes)))
	}

	var gr generationResponse
	if err := json.Unmarshal(bodyBytes, &gr); err != nil {
		return "", fmt.Errorf("decode generation response: %w", err)
	}
	if len(gr.Results) == 0 || strings.TrimSpace(gr.Results[0].GeneratedText) == "" {
		return "", fmt.Errorf("generation response was empty")
	}
	return gr.Results[0].GeneratedText, nil
}

// token returns a cached IAM access token, refreshing it when it is within a
// minute of expiry.
func (c *WatsonxClient) token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.accessToken != "" && time.Now().Before(c.tokenExpiry.Add(-time.Minute)) {
		return c.accessToken, nil
	}

	form := url.Values{}
	form.Set("grant_type", "urn:ibm:params:oauth:grant-type:apikey")
	form.Set("apikey", c.cfg.WatsonxAPIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.IAMTokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.WrapError(apperrors.ErrLLMCommunication, err.Error())
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", apperrors.WrapErrorf(apperrors.ErrLLMCommunication, "iam token status %s: %s", resp.Status, strings.TrimSpace(string(bodyBytes)))
	}

	var tr iamTokenResponse
	if err := json.Unmarshal(bodyBytes, &tr); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("iam token response missing access_token")
	}

	c.accessToken = tr.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
	return c.accessToken, nil
}

// buildPrompt assembles the Mixtral-style role-structured prompt: the fixed
// system instruction, the literal context, then the literal question.
func buildPrompt(contextText string, question string) string {
	var b strings.Builder
	b.WriteString("<|system|>\n")
	b.WriteString(strings.TrimSpace(prompts.QASystem()))
	b.WriteString("\n\nContext from study materials:\n")
	b.WriteString(contextText)
	b.WriteString("\n</s>\n<|user|>\n")
	b.WriteString(question)
	b.WriteString("\n</s>\n<|assistant|>")
	return b.String()
}
