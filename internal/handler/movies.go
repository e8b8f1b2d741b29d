package handler

import (
	"net/http"
	"strings"
)

// GET /movies/popular
func (h *Handler) GetPopularMovies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MoviesResponse{Movies: h.service.PopularMovies(r.Context())})
}

// GET /movies/search?query=
func (h *Handler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Query parameter is required")
		return
	}
	writeJSON(w, http.StatusOK, MoviesResponse{Movies: h.service.SearchMovies(r.Context(), query)})
}
