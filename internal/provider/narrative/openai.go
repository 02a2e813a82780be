package narrative

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"riskscorer/internal/config"

	"github.com/sashabaranov/go-openai"
	"github.com/zeromicro/go-zero/core/logx"
)

var _ Provider = (*OpenAIClient)(nil)

// OpenAIClient sends one chat completion per prompt. A client built without an
// API key is disabled and fails every call with ErrProviderUnavailable.
type OpenAIClient struct {
	client    *openai.Client
	model     string
	maxTokens int
}

func NewOpenAIClient(c config.NarrativeConf) *OpenAIClient {
	if c.APIKey == "" {
		logx.Info("narrative provider disabled: no api key configured")
		return &OpenAIClient{model: c.Model, maxTokens: c.MaxTokens}
	}

	cfg := openai.DefaultConfig(c.APIKey)
	if c.BaseURL != "" {
		cfg.BaseURL = strings.TrimRight(c.BaseURL, "/")
	}
	cfg.HTTPClient = &http.Client{Timeout: c.Timeout}

	return &OpenAIClient{
		client:    openai.NewClientWithConfig(cfg),
		model:     c.Model,
		maxTokens: c.MaxTokens,
	}
}

func (c *OpenAIClient) Enabled() bool {
	return c.client != nil
}

func (c *OpenAIClient) GenerateInsight(ctx context.Context, prompt string) (string, error) {
	if !c.Enabled() {
		return "", fmt.Errorf("%w: no api key configured", ErrProviderUnavailable)
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		logx.WithContext(ctx).Errorf("narrative completion failed: %v", err)
		return "", fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyCompletion
	}

	return content, nil
}
