package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/krishisahayak/krishibot-api/internal/domain"
)

// Client defines the interface for generating advisory responses.
type Client interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// GenerationRequest carries the ordered conversation, the persona
// instruction on its own system channel, and the sampling options.
type GenerationRequest struct {
	Contents          []domain.Turn
	SystemInstruction string
	Temperature       float32
	MaxOutputTokens   int
}

// HTTPClient implements Client against the Gemini generateContent API.
type HTTPClient struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPClient builds a client pointing at the generateContent
// endpoint. An empty apiKey is accepted here; it fails as ErrAuthConfig
// on the first call.
func NewHTTPClient(baseURL, apiKey, model string, timeout time.Duration, logger *zap.Logger) *HTTPClient {
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *HTTPClient) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("%w: GOOGLE_AI_API_KEY not set", ErrAuthConfig)
	}

	payload := geminiRequest{
		Contents: make([]geminiContent, 0, len(req.Contents)),
		GenerationConfig: geminiGenerationConfig{
			Temperature:     req.Temperature,
			MaxOutputTokens: req.MaxOutputTokens,
		},
	}
	for _, turn := range req.Contents {
		payload.Contents = append(payload.Contents, geminiContent{
			Role:  turn.Role,
			Parts: []geminiPart{{Text: turn.Text}},
		})
	}
	if req.SystemInstruction != "" {
		payload.SystemInstruction = &geminiContent{
			Parts: []geminiPart{{Text: req.SystemInstruction}},
		}
	}

	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("x-goog-api-key", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		// Transport failures and client-side timeouts are transient.
		return "", fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrNetwork, err)
	}

	if resp.StatusCode >= 400 {
		if c.logger != nil {
			c.logger.Warn("genai error response",
				zap.Int("status", resp.StatusCode),
				zap.ByteString("body", respBody),
			)
		}
		return "", classifyStatus(resp.StatusCode, respBody)
	}

	var gr geminiResponse
	if err := json.Unmarshal(respBody, &gr); err != nil {
		return "", fmt.Errorf("%w: unmarshal response: %v", ErrGeneration, err)
	}
	if gr.Error != nil {
		return "", fmt.Errorf("%w: %s", ErrGeneration, gr.Error.Message)
	}

	text := gr.JoinText()
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrGeneration)
	}
	return text, nil
}

func classifyStatus(status int, body []byte) error {
	var gr geminiResponse
	detail := ""
	if err := json.Unmarshal(body, &gr); err == nil && gr.Error != nil {
		detail = gr.Error.Message
	}

	var kind error
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = ErrAuthConfig
	case http.StatusTooManyRequests:
		kind = ErrQuotaExceeded
	case http.StatusServiceUnavailable:
		// Upstream overload reads as transient connectivity.
		kind = ErrNetwork
	default:
		kind = ErrGeneration
	}
	if detail == "" {
		return fmt.Errorf("%w: status=%d", kind, status)
	}
	return fmt.Errorf("%w: status=%d: %s", kind, status, detail)
}
