package handler

import "github.com/actuallystonmai/recommendation-engine/internal/domain"

type RecommendationResponse struct {
	Recommendations []domain.Item             `json:"recommendations"`
	Metadata        domain.RecommendationMeta `json:"metadata"`
}

type MoviesResponse struct {
	Movies []domain.Item `json:"movies"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type addItemRequest struct {
	Movie map[string]any `json:"movie"`
}

type removeItemRequest struct {
	MovieID int64 `json:"movieId"`
}
