package handle

import (
	"encoding/json"
	"net/http"

	"scribble-quest/api/internal/game"
	"scribble-quest/api/internal/llm"
	"scribble-quest/api/internal/notify"
	"scribble-quest/api/internal/store"
)

type Handle struct {
	Pipeline *game.Pipeline
	Text     llm.TextGenerator

	// Optional collaborators; nil disables them.
	Results   *store.ResultsRepo
	Announcer *notify.Announcer

	// Health report fields.
	ModelName        string
	APIKeyConfigured bool
}

func New(p *game.Pipeline, text llm.TextGenerator) *Handle {
	return &Handle{
		Pipeline: p,
		Text:     text,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
