package http

import (
	"context"
	"net/http"

	"refinance-agent/domain"
)

type Suggester interface {
	Suggest(ctx context.Context, authorization string) (domain.Suggestions, error)
}

type SuggestionHandler struct {
	service Suggester
}

func NewSuggestionHandler(service Suggester) *SuggestionHandler {
	return &SuggestionHandler{service: service}
}

func (h *SuggestionHandler) Suggestions(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Suggest(r.Context(), r.Header.Get("Authorization"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
