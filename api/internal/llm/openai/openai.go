package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"scribble-quest/api/internal/prompt"
	"scribble-quest/api/internal/util"
)

// Engine talks to the OpenAI REST API directly: chat completions for judging
// and text, images/generations for rewards.
type Engine struct {
	APIKey     string
	Model      string // vision judge
	TextModel  string // challenge generation
	ImageModel string // reward generation
	httpc      *http.Client
}

func New(key, model, textModel, imageModel string) *Engine {
	return &Engine{
		APIKey:     key,
		Model:      model,
		TextModel:  textModel,
		ImageModel: imageModel,
		httpc:      &http.Client{Timeout: 60 * time.Second},
	}
}

func (e *Engine) Name() string { return "openai" }

func (e *Engine) JudgeDrawing(ctx context.Context, image []byte, mime, object string) (string, error) {
	if e.APIKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	}
	b64 := base64.StdEncoding.EncodeToString(image)
	dataURL := util.MakeDataURL(mime, b64)

	body := map[string]any{
		"model": e.Model,
		"messages": []any{
			map[string]any{
				"role": "user",
				"content": []any{
					map[string]any{"type": "text", "text": prompt.Judge(object)},
					map[string]any{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
				},
			},
		},
		"max_tokens": 300,
		// Low temperature keeps the MATCH/DESCRIPTION/MESSAGE format stable.
		"temperature": 0.3,
	}
	return e.chat(ctx, "judge", body)
}

func (e *Engine) GenerateText(ctx context.Context, promptText string) (string, error) {
	if e.APIKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	}
	body := map[string]any{
		"model": e.TextModel,
		"messages": []any{
			map[string]any{"role": "user", "content": promptText},
		},
	}
	return e.chat(ctx, "text", body)
}

func (e *Engine) chat(ctx context.Context, op string, body map[string]any) (string, error) {
	payload, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(ctx, "POST", "https://api.openai.com/v1/chat/completions", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.APIKey)

	resp, err := e.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai %s %d: %s", op, resp.StatusCode, strings.TrimSpace(string(x)))
	}

	var raw struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", err
	}
	if len(raw.Choices) == 0 {
		return "", fmt.Errorf("openai %s: empty response", op)
	}
	return strings.TrimSpace(raw.Choices[0].Message.Content), nil
}

func (e *Engine) GenerateImage(ctx context.Context, promptText string) (string, error) {
	if e.APIKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY not set")
	}
	body := map[string]any{
		"model":  e.ImageModel,
		"prompt": promptText,
		"size":   "1024x1024",
		"n":      1,
	}
	payload, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(ctx, "POST", "https://api.openai.com/v1/images/generations", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.APIKey)

	resp, err := e.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("openai image %d: %s", resp.StatusCode, strings.TrimSpace(string(x)))
	}

	var raw struct {
		Data []struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", err
	}
	if len(raw.Data) == 0 || raw.Data[0].URL == "" {
		return "", fmt.Errorf("openai image: empty response")
	}
	return raw.Data[0].URL, nil
}
