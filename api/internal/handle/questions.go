package handle

import (
	"context"
	"log"
	"net/http"
	"time"

	"scribble-quest/api/internal/game"
	"scribble-quest/api/internal/prompt"
)

type questionsResponse struct {
	Questions []string `json:"questions"`
}

// GenerateQuestions asks the text model for a fresh challenge batch and falls
// back to the fixed list when the call fails or yields nothing usable.
func (h *Handle) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	raw, err := h.Text.GenerateText(ctx, prompt.Questions)
	if err != nil {
		log.Printf("generate questions: %v", err)
		writeJSON(w, http.StatusOK, questionsResponse{Questions: game.FallbackQuestions()})
		return
	}

	questions := game.ParseQuestions(raw)
	if len(questions) == 0 {
		log.Printf("generate questions: no usable lines in model reply")
		questions = game.FallbackQuestions()
	}
	writeJSON(w, http.StatusOK, questionsResponse{Questions: questions})
}
