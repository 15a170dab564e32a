package game

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeJudge struct {
	reply string
	err   error
	calls int
}

func (f *fakeJudge) JudgeDrawing(ctx context.Context, image []byte, mime, object string) (string, error) {
	f.calls++
	return f.reply, f.err
}

type fakeArtist struct {
	url   string
	err   error
	calls int
}

func (f *fakeArtist) GenerateImage(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.url, f.err
}

func TestPipelineBlankCanvasSkipsModels(t *testing.T) {
	judge := &fakeJudge{reply: "MATCH: YES"}
	artist := &fakeArtist{url: "https://img.example/x.png"}
	p := &Pipeline{Judge: judge, Artist: artist}

	resp := p.Run(context.Background(), Submission{
		Image:     canvasDataURL(t, 50, 50, 10),
		Challenge: "Draw a cat!",
	})

	if resp.Title != "No Drawing!" || resp.Points != 0 || resp.Success {
		t.Errorf("blank canvas: got %+v", resp)
	}
	if judge.calls != 0 || artist.calls != 0 {
		t.Errorf("blank canvas must not call any model (judge=%d artist=%d)", judge.calls, artist.calls)
	}
}

func TestPipelineMalformedImage(t *testing.T) {
	judge := &fakeJudge{reply: "MATCH: YES"}
	p := &Pipeline{Judge: judge}

	resp := p.Run(context.Background(), Submission{Image: "data:image/png;base64,AAAA", Challenge: "Draw a cat!"})
	if resp.Title != "Error!" || resp.Points != 0 || resp.Success {
		t.Errorf("malformed image: got %+v", resp)
	}
	if judge.calls != 0 {
		t.Error("malformed image must not reach the judge")
	}
}

func TestPipelineMatchWithReward(t *testing.T) {
	judge := &fakeJudge{reply: "MATCH: YES\nDESCRIPTION: A happy cat\nMESSAGE: Purrfect!"}
	artist := &fakeArtist{url: "https://img.example/cat.png"}
	p := &Pipeline{Judge: judge, Artist: artist}

	resp := p.Run(context.Background(), Submission{
		Image:     canvasDataURL(t, 50, 50, 200),
		Challenge: "Draw a cat!",
	})

	if resp.Title != "Perfect!" || resp.Points != 100 || !resp.Success {
		t.Errorf("match: got %+v", resp)
	}
	if resp.RewardImage != "https://img.example/cat.png" {
		t.Errorf("expected reward image, got %q", resp.RewardImage)
	}
	if !strings.HasSuffix(resp.Message, "Check out your masterpiece!") {
		t.Errorf("expected masterpiece suffix in %q", resp.Message)
	}
	if artist.calls != 1 {
		t.Errorf("expected one artist call, got %d", artist.calls)
	}
}

func TestPipelineRewardFailureDegrades(t *testing.T) {
	judge := &fakeJudge{reply: "MATCH: YES\nDESCRIPTION: A happy cat\nMESSAGE: Purrfect!"}
	artist := &fakeArtist{err: errors.New("quota exhausted")}
	p := &Pipeline{Judge: judge, Artist: artist}

	resp := p.Run(context.Background(), Submission{
		Image:     canvasDataURL(t, 50, 50, 200),
		Challenge: "Draw a cat!",
	})

	if resp.Title != "Perfect!" || resp.Points != 100 || !resp.Success {
		t.Errorf("reward failure altered primary result: %+v", resp)
	}
	if resp.RewardImage != "" {
		t.Errorf("expected no reward image, got %q", resp.RewardImage)
	}
	if strings.Contains(resp.Message, "masterpiece") {
		t.Errorf("failed reward must not add masterpiece text: %q", resp.Message)
	}
}

func TestPipelineNoArtistConfigured(t *testing.T) {
	judge := &fakeJudge{reply: "MATCH: YES\nDESCRIPTION: A cat\nMESSAGE: Nice!"}
	p := &Pipeline{Judge: judge} // Artist nil

	resp := p.Run(context.Background(), Submission{
		Image:     canvasDataURL(t, 50, 50, 200),
		Challenge: "Draw a cat!",
	})
	if resp.Points != 100 || resp.RewardImage != "" {
		t.Errorf("nil artist: got %+v", resp)
	}
}

func TestPipelineMiss(t *testing.T) {
	judge := &fakeJudge{reply: "MATCH: NO\nDESCRIPTION: A triangle\nMESSAGE: Try again!"}
	artist := &fakeArtist{url: "https://img.example/x.png"}
	p := &Pipeline{Judge: judge, Artist: artist}

	resp := p.Run(context.Background(), Submission{
		Image:     canvasDataURL(t, 50, 50, 200),
		Challenge: "Draw a cat!",
	})

	if resp.Title != "Try Again!" || resp.Points != 25 || resp.Success {
		t.Errorf("miss: got %+v", resp)
	}
	if !strings.Contains(resp.Message, "You were asked to draw: cat") {
		t.Errorf("miss message must restate the object: %q", resp.Message)
	}
	if artist.calls != 0 {
		t.Error("no reward generation on a miss")
	}
}

func TestPipelineJudgeFailure(t *testing.T) {
	judge := &fakeJudge{err: errors.New("upstream timeout")}
	artist := &fakeArtist{url: "https://img.example/x.png"}
	p := &Pipeline{Judge: judge, Artist: artist}

	resp := p.Run(context.Background(), Submission{
		Image:     canvasDataURL(t, 50, 50, 200),
		Challenge: "Draw a cat!",
	})

	if resp.Title != "Something Magical!" || resp.Points != 50 || !resp.Success {
		t.Errorf("judge failure: got %+v", resp)
	}
	if artist.calls != 0 {
		t.Error("judge failure must not trigger reward generation")
	}

	// Deterministic regardless of failure cause.
	judge.err = errors.New("auth rejected")
	again := p.Run(context.Background(), Submission{
		Image:     canvasDataURL(t, 50, 50, 200),
		Challenge: "Draw a cat!",
	})
	if again != resp {
		t.Errorf("fallback not deterministic: %+v vs %+v", again, resp)
	}
}
