package game

import (
	"context"
	"log"

	"scribble-quest/api/internal/llm"
	"scribble-quest/api/internal/prompt"
)

// Pipeline runs one submission through precheck, judgment and reward
// composition. It holds no per-request state and is safe for concurrent use.
type Pipeline struct {
	Judge  llm.ImageJudge
	Artist llm.ImageGenerator // nil disables reward generation

	// Absolute ink-pixel count; <= 0 means DefaultInkPixelThreshold.
	InkPixelThreshold int
}

// Run always returns a usable Response. Model failures are masked per the
// game's error policy: a failed judge call becomes a soft success, a failed
// reward call only omits the image.
func (p *Pipeline) Run(ctx context.Context, sub Submission) Response {
	img, raw, mime, err := DecodeSubmission(sub.Image)
	if err != nil {
		log.Printf("precheck: %v", err)
		return DecodeErrorResponse()
	}

	analysis := Analyze(img, p.InkPixelThreshold)
	log.Printf("precheck: %dx%d ink=%d density=%.4f", analysis.Width, analysis.Height, analysis.InkPixels, analysis.InkDensity)
	if !analysis.HasContent {
		return NoDrawingResponse()
	}

	object := ExtractObject(sub.Challenge)

	verdict, err := p.Judge.JudgeDrawing(ctx, raw, mime, object)
	if err != nil {
		log.Printf("judge %q: %v", object, err)
		return SoftFallbackResponse()
	}
	judgment := ParseJudgment(verdict)

	var reward Reward
	if judgment.IsMatch && p.Artist != nil {
		url, err := p.Artist.GenerateImage(ctx, prompt.Reward(object, judgment.Description))
		if err != nil {
			// Best-effort: the match result stands without an image.
			log.Printf("reward %q: %v", object, err)
		} else {
			reward = Reward{Succeeded: true, ImageURL: url}
		}
	}

	return Compose(judgment, reward, object)
}
