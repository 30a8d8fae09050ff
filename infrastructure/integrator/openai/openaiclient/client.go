package openaiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-analyst-api/internal/config"
)

// Client encapsula o acesso à API de chat completions da OpenAI
type Client interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Model() string
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type ChatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Index        int         `json:"index"`
		Message      ChatMessage `json:"message"`
		FinishReason string      `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

type OpenAIClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	client := &OpenAIClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: time.Duration(cfg.OpenAI.TimeoutSeconds) * time.Second,
		},
	}
	return client
}

func (c *OpenAIClient) Model() string {
	return c.Cfg.OpenAI.Model
}

// Complete envia o par de prompts para o modelo e retorna o conteúdo da
// primeira escolha
func (c *OpenAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.Cfg.OpenAI.APIKey == "" {
		return "", errors.New("chave da API da OpenAI não configurada")
	}

	request := ChatRequest{
		Model: c.Cfg.OpenAI.Model,
		Messages: []ChatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: c.Cfg.OpenAI.Temperature,
	}

	jsonBody, err := json.Marshal(request)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.Cfg.OpenAI.URL, bytes.NewBuffer(jsonBody))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Cfg.OpenAI.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	var response ChatResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("erro ao decodificar JSON: %w", err)
	}

	if response.Error != nil {
		return "", fmt.Errorf("erro da API da OpenAI: %s", response.Error.Message)
	}

	if len(response.Choices) == 0 {
		return "", errors.New("resposta da OpenAI sem escolhas")
	}

	logrus.WithFields(logrus.Fields{
		"model":        c.Cfg.OpenAI.Model,
		"total_tokens": response.Usage.TotalTokens,
	}).Debug("completion: successfully called OpenAI API")

	return response.Choices[0].Message.Content, nil
}
