package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/rocketscienceinc/startup-journey/internal/apperror"
	"github.com/rocketscienceinc/startup-journey/internal/catalog"
	"github.com/rocketscienceinc/startup-journey/internal/entity"
)

type gameReader interface {
	Catalog() catalog.View
	GetSession(ctx context.Context, id string) (*entity.Game, error)
}

type gameHandler struct {
	logger *slog.Logger
	games  gameReader
}

// getSession writes the snapshot of the session named in the path.
func (that *gameHandler) getSession(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "getSession")

	game, err := that.games.GetSession(r.Context(), r.PathValue("id"))
	if errors.Is(err, apperror.ErrSessionNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}

	if err != nil {
		log.Error("failed to get session", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Internal Server Error"})
		return
	}

	writeJSON(w, http.StatusOK, game)
}

func (that *gameHandler) getCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, that.games.Catalog())
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(body)
}
