package handler

import (
	"errors"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/actuallystonmai/recommendation-engine/internal/catalog"
	"github.com/actuallystonmai/recommendation-engine/internal/domain"
)

// GetList serves GET on a user list.
func (h *Handler) GetList(kind domain.ListKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		items, err := h.service.ListItems(r.Context(), uid, kind)
		if err != nil {
			h.listError(w, kind, "fetch", err)
			return
		}
		writeJSON(w, http.StatusOK, MoviesResponse{Movies: items})
	}
}

// AddToList serves POST {"movie": {...}} on a user list.
func (h *Handler) AddToList(kind domain.ListKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var req addItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be JSON")
			return
		}
		item, ok := catalog.Normalize(req.Movie)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Movie data is required")
			return
		}

		if err := h.service.AddItem(r.Context(), uid, kind, item); err != nil {
			h.listError(w, kind, "add", err)
			return
		}
		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}

// RemoveFromList serves DELETE {"movieId": n} on a user list.
func (h *Handler) RemoveFromList(kind domain.ListKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(w, r)
		if !ok {
			return
		}

		var req removeItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be JSON")
			return
		}
		if req.MovieID <= 0 {
			writeError(w, http.StatusBadRequest, "invalid_parameter", "Movie ID is required")
			return
		}

		if err := h.service.RemoveItem(r.Context(), uid, kind, req.MovieID); err != nil {
			h.listError(w, kind, "remove", err)
			return
		}
		writeJSON(w, http.StatusOK, SuccessResponse{Success: true})
	}
}

func (h *Handler) listError(w http.ResponseWriter, kind domain.ListKind, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidItem):
		writeError(w, http.StatusBadRequest, "invalid_parameter", err.Error())
	case errors.Is(err, domain.ErrInvalidListKind):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	default:
		h.log.Error().Err(err).Str("list", string(kind)).Str("op", op).Msg("list operation failed")
		writeError(w, http.StatusInternalServerError, "internal_error", "Failed to "+op+" "+string(kind)+" list")
	}
}
