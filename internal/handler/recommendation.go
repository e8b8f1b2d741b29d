package handler

import (
	"net/http"
	"time"

	"github.com/actuallystonmai/recommendation-engine/internal/domain"
)

// GET /recommendations
func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}

	result := h.service.Recommend(r.Context(), uid)
	items := result.Items
	if items == nil {
		items = []domain.Item{}
	}

	resp := RecommendationResponse{
		Recommendations: items,
		Metadata: domain.RecommendationMeta{
			Source:         result.Source,
			FallbackReason: result.FallbackReason,
			GeneratedAt:    time.Now().UTC().Format(time.RFC3339),
			TotalCount:     len(items),
		},
	}

	writeJSON(w, http.StatusOK, resp)
}
