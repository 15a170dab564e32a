package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"scribble-quest/api/internal/prompt"
)

// Engine judges drawings and writes challenges through the official Gemini
// SDK. It has no image-generation endpoint; rewards stay on OpenAI.
type Engine struct {
	APIKey string
	Model  string
}

func New(apiKey, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(apiKey),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string { return "gemini" }

func (e *Engine) JudgeDrawing(ctx context.Context, image []byte, mime, object string) (string, error) {
	parts := []genai.Part{
		genai.Text(prompt.Judge(object)),
		&genai.Blob{MIMEType: mime, Data: image},
	}
	// Low temperature keeps the MATCH/DESCRIPTION/MESSAGE format stable.
	return e.generate(ctx, 0.3, parts...)
}

func (e *Engine) GenerateText(ctx context.Context, promptText string) (string, error) {
	return e.generate(ctx, 1, genai.Text(promptText))
}

func (e *Engine) generate(ctx context.Context, temperature float32, parts ...genai.Part) (string, error) {
	if e.APIKey == "" {
		return "", errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return "", err
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	if m == nil {
		return "", fmt.Errorf("gemini: model is nil")
	}
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: ptrFloat32(temperature),
	}

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: empty response")
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}
	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", fmt.Errorf("gemini: no text parts in response")
	}
	return out, nil
}

func ptrFloat32(v float32) *float32 { return &v }
