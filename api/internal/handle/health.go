package handle

import "net/http"

type healthResponse struct {
	Status           string `json:"status"`
	Message          string `json:"message"`
	APIKeyConfigured bool   `json:"api_key_configured"`
	ModelName        string `json:"model_name"`
}

func (h *Handle) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:           "healthy",
		Message:          "Scribble Quest backend is running!",
		APIKeyConfigured: h.APIKeyConfigured,
		ModelName:        h.ModelName,
	})
}
