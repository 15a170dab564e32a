// Package llm defines the narrow capability interfaces the game pipeline
// needs from a hosted model provider, so providers can be swapped without
// touching pipeline logic.
package llm

import (
	"context"
	"errors"
)

// TextGenerator produces free text from a prompt (challenge generation).
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// ImageJudge looks at a drawing and returns the model's raw textual verdict
// in the MATCH/DESCRIPTION/MESSAGE convention. Parsing is the caller's job.
type ImageJudge interface {
	JudgeDrawing(ctx context.Context, image []byte, mime, object string) (string, error)
}

// ImageGenerator renders a reward image and returns its URL.
type ImageGenerator interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Provider bundles the capabilities one engine offers.
type Provider interface {
	Name() string
	TextGenerator
	ImageJudge
}

type Engines struct {
	OpenAI Provider
	Gemini Provider
}

func (e *Engines) Get(name string) (Provider, error) {
	switch name {
	case "gpt", "openai":
		return e.OpenAI, nil
	case "gemini":
		return e.Gemini, nil
	default:
		return nil, errors.New("unknown provider; use 'openai' or 'gemini'")
	}
}

// Artist returns the first engine able to generate images, if any.
// Gemini has no image endpoint here, so in practice this is OpenAI when its
// key is configured.
func (e *Engines) Artist() ImageGenerator {
	if g, ok := e.OpenAI.(ImageGenerator); ok && g != nil {
		return g
	}
	return nil
}
