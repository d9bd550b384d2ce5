package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

type uPlayer interface {
	GetProfile(ctx context.Context, id string) (*entity.Profile, error)
	ListResults(ctx context.Context, playerID string, limit int) ([]*entity.Result, error)
}

type handlers struct {
	logger  *slog.Logger
	uPlayer uPlayer
}

func newHandlers(logger *slog.Logger, uPlayer uPlayer) *handlers {
	return &handlers{
		logger:  logger.With("component", "rest"),
		uPlayer: uPlayer,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// getProfile - the player's preferences and score against the machine.
func (that *handlers) getProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := that.uPlayer.GetProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		that.writeError(w, "getProfile", err)
		return
	}

	that.writeJSON(w, http.StatusOK, profile)
}

// listResults - recent finished games, ?limit=N.
func (that *handlers) listResults(w http.ResponseWriter, r *http.Request) {
	var limit int

	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a number"})
			return
		}

		limit = parsed
	}

	results, err := that.uPlayer.ListResults(r.Context(), chi.URLParam(r, "id"), limit)
	if err != nil {
		that.writeError(w, "listResults", err)
		return
	}

	that.writeJSON(w, http.StatusOK, results)
}

func (that *handlers) writeError(w http.ResponseWriter, method string, err error) {
	if errors.Is(err, apperror.ErrNotFound) {
		that.writeJSON(w, http.StatusNotFound, errorResponse{Error: "player not found"})
		return
	}

	that.logger.Error("request failed", "method", method, "error", err)
	that.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
}

func (that *handlers) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
