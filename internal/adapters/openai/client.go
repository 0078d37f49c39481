package openai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"
)

const DefaultModel = goopenai.GPT4oMini

var ErrNoChoices = errors.New("openai: no choices in response")

// Asker responde preguntas sueltas con un chat completion sin historial.
type Asker struct {
	client *goopenai.Client
	model  string
}

type Option func(*goopenai.ClientConfig)

func WithHTTPClient(h *http.Client) Option {
	return func(cfg *goopenai.ClientConfig) { cfg.HTTPClient = h }
}

// New: baseURL vacío usa la API de OpenAI; sirve cualquier endpoint compatible.
func New(apiKey, baseURL, model string, opts ...Option) *Asker {
	cfg := goopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	for _, o := range opts {
		o(&cfg)
	}
	if model == "" {
		model = DefaultModel
	}
	return &Asker{client: goopenai.NewClientWithConfig(cfg), model: model}
}

func (a *Asker) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: a.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: question},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai chat: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	answer := strings.TrimSpace(resp.Choices[0].Message.Content)
	if answer == "" {
		return "", ErrNoChoices
	}
	return answer, nil
}
