package handle

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"scribble-quest/api/internal/game"
	"scribble-quest/api/internal/store"
)

// AnalyzeDrawing judges one submission. Aside from an unparseable body, it
// always answers 200 with a best-effort game result; provider failures never
// surface as HTTP errors.
func (h *Handle) AnalyzeDrawing(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "POST only"})
		return
	}

	var sub game.Submission
	dec := json.NewDecoder(io.LimitReader(r.Body, 16<<20)) // canvas payloads get big
	if err := dec.Decode(&sub); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json: " + err.Error()})
		return
	}

	reqID := uuid.NewString()
	log.Printf("[%s] analyze challenge=%q level=%d session=%q", reqID, sub.Challenge, sub.Level, sub.SessionID)

	deadline := 90 * time.Second
	if ts := r.Header.Get("X-Request-Timeout"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			deadline = time.Duration(v) * time.Second
		}
	} else if ts := r.URL.Query().Get("timeoutSec"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			deadline = time.Duration(v) * time.Second
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), deadline)
	defer cancel()

	resp := h.Pipeline.Run(ctx, sub)

	// Fire-and-forget extras; neither may touch the response.
	if h.Results != nil {
		rec := store.GameRecord{
			SessionID:   sub.SessionID,
			Challenge:   sub.Challenge,
			Object:      game.ExtractObject(sub.Challenge),
			Points:      resp.Points,
			Success:     resp.Success,
			RewardImage: resp.RewardImage,
		}
		if rec.SessionID == "" {
			rec.SessionID = reqID
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := h.Results.Insert(ctx, rec); err != nil {
				log.Printf("[%s] results log: %v", reqID, err)
			}
		}()
	}
	if h.Announcer != nil && resp.Success && resp.Points == 100 {
		go h.Announcer.AnnounceMatch(game.ExtractObject(sub.Challenge), resp.RewardImage)
	}

	writeJSON(w, http.StatusOK, resp)
}
