// Package enrich adds AI-generated summaries to stored articles. It is
// a downstream, optional step: the notification pipeline never depends
// on it, and a disabled or failing summarizer leaves articles usable
// with their extracted summary.
package enrich

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/threatwatch/threatwatch/pkg/config"
	"github.com/threatwatch/threatwatch/pkg/domain"
)

// Summarizer produces short article summaries through an
// OpenAI-compatible API
type Summarizer struct {
	client *openai.Client
	config config.EnrichConfig
}

const systemPrompt = `You summarize security threat-intelligence articles for non-expert readers.
Write 2-3 sentences covering: what happened, who or what is affected, and what a reader should do.
Start with the subject matter directly. Never open with "The article" or "This piece".
Keep the summary under 400 characters.`

// NewSummarizer creates a new summarizer from enrichment config
func NewSummarizer(cfg config.EnrichConfig) *Summarizer {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}

	return &Summarizer{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
	}
}

// Summarize generates a summary for a single article
func (s *Summarizer) Summarize(ctx context.Context, article *domain.Article) (string, error) {
	body := article.Body
	if len(body) > 8000 {
		body = body[:8000]
	}

	prompt := fmt.Sprintf("Title: %s\nSeverity: %s\nCategory: %s\n\n%s",
		article.Title, article.Severity, article.Category, body)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       s.config.Model,
		Temperature: float32(s.config.Temperature),
		MaxTokens:   s.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("summarize article %d: %w", article.ID, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("summarize article %d: empty response", article.ID)
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", fmt.Errorf("summarize article %d: blank summary", article.ID)
	}
	return summary, nil
}
