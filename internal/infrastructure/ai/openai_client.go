package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/usecase/interfaces"
)

const (
	openaiEmbeddingsURL = "https://api.openai.com/v1/embeddings"
	openaiChatURL       = "https://api.openai.com/v1/chat/completions"
	embeddingModel      = "text-embedding-ada-002"
	chatModel           = "gpt-4o"
)

var ErrMissingOpenAIAPIKey = errors.New("missing OPENAI_API_KEY")

// OpenAIClient talks to the OpenAI HTTP API for embeddings and chat
// completions. Constructed once at bootstrap and injected into the search
// use case.

type OpenAIClient struct {
	apiKey        string
	embeddingsURL string
	chatURL       string
	client        *http.Client
}

var _ interfaces.IAIClient = (*OpenAIClient)(nil)

func NewOpenAIClient(apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		log.Printf("[search][ai] missing OPENAI_API_KEY")
		return nil, ErrMissingOpenAIAPIKey
	}
	return &OpenAIClient{
		apiKey:        apiKey,
		embeddingsURL: openaiEmbeddingsURL,
		chatURL:       openaiChatURL,
		client:        &http.Client{},
	}, nil
}

type embeddingsRequest struct {
	Input []string `json:"input"`
	Model string   `json:"model"`
}

type embeddingsResponse struct {
	Data []struct {
		Embedding []float32 `json:"embedding"`
		Index     int       `json:"index"`
	} `json:"data"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// EmbedTexts returns one embedding per input text, in input order.
func (c *OpenAIClient) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, errors.New("no texts provided")
	}

	var resp embeddingsResponse
	if err := c.post(ctx, c.embeddingsURL, embeddingsRequest{Input: texts, Model: embeddingModel}, &resp); err != nil {
		return nil, err
	}
	if len(resp.Data) != len(texts) {
		return nil, fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data))
	}

	// The API documents data in input order, but Index is authoritative.
	out := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(out) {
			return nil, fmt.Errorf("embedding index %d out of range", d.Index)
		}
		out[d.Index] = d.Embedding
	}
	return out, nil
}

// ChatCompletion sends a single user prompt and returns the assistant reply.
func (c *OpenAIClient) ChatCompletion(ctx context.Context, prompt string) (string, error) {
	req := chatRequest{
		Model:    chatModel,
		Messages: []chatMessage{{Role: "user", Content: prompt}},
	}

	var resp chatResponse
	if err := c.post(ctx, c.chatURL, req, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *OpenAIClient) post(ctx context.Context, url string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			log.Printf("[search][ai] request failed status=%d type=%s message=%q", resp.StatusCode, apiErr.Error.Type, apiErr.Error.Message)
			return fmt.Errorf("openai: %s (status %d)", apiErr.Error.Message, resp.StatusCode)
		}
		return fmt.Errorf("openai: unexpected status %d", resp.StatusCode)
	}

	return json.Unmarshal(raw, out)
}
