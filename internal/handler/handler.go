package handler

import (
	"context"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/actuallystonmai/recommendation-engine/internal/domain"
	"github.com/actuallystonmai/recommendation-engine/internal/logging"
)

// Service is what the HTTP layer needs from service.Service.
type Service interface {
	Recommend(ctx context.Context, userID string) *domain.RecommendationResult
	PopularMovies(ctx context.Context) []domain.Item
	SearchMovies(ctx context.Context, query string) []domain.Item
	ListItems(ctx context.Context, userID string, kind domain.ListKind) ([]domain.Item, error)
	AddItem(ctx context.Context, userID string, kind domain.ListKind, item domain.Item) error
	RemoveItem(ctx context.Context, userID string, kind domain.ListKind, itemID int64) error
}

type Handler struct {
	service Service
	log     zerolog.Logger
}

func NewHandler(svc Service) *Handler {
	return &Handler{service: svc, log: logging.Component("handler")}
}

// write JSON response
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writes JSON error response.
func writeError(w http.ResponseWriter, status int, errCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   errCode,
		Message: message,
	})
}

// userID returns the authenticated caller or writes a 401.
func userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := UserIDFromContext(r.Context())
	if id == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", domain.ErrUnauthorized.Error())
		return "", false
	}
	return id, true
}
