// Package game implements the drawing-judgment pipeline: local ink precheck,
// challenge parsing, lenient judgment parsing, reward generation and response
// composition. Every value here lives and dies within one request.
package game

// Submission is the body of POST /api/analyze-drawing.
type Submission struct {
	Image     string `json:"image"` // data-URL or bare base64
	Challenge string `json:"challenge"`
	Level     int    `json:"level"`
	SessionID string `json:"session_id"`
}

// Analysis is the local precheck result derived purely from pixel data.
type Analysis struct {
	Width      int
	Height     int
	InkPixels  int
	InkDensity float64
	HasContent bool
}

// Judgment is the parsed model verdict.
type Judgment struct {
	IsMatch       bool
	Description   string
	Encouragement string
}

// Reward is the best-effort outcome of reward-image generation.
type Reward struct {
	Succeeded bool
	ImageURL  string
}

// Response is the sole externally visible result of the judging endpoint.
type Response struct {
	Title       string `json:"title"`
	Message     string `json:"message"`
	Points      int    `json:"points"`
	Success     bool   `json:"success"`
	RewardImage string `json:"reward_image,omitempty"`
}
