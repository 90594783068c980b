package handlers

import (
	"context"
	"net/http"

	"streampick/models"
	"streampick/services/genres"
)

// genreCatalog supplies the unified genre set.
type genreCatalog interface {
	Unified(ctx context.Context) ([]models.UnifiedGenre, error)
}

var _ genreCatalog = (*genres.Service)(nil)

// GenresHandler serves the unified genre list the wizard's genre step
// renders.
type GenresHandler struct {
	Genres genreCatalog
}

func NewGenresHandler(catalog genreCatalog) *GenresHandler {
	return &GenresHandler{Genres: catalog}
}

type genresResponse struct {
	Genres []models.UnifiedGenre `json:"genres"`
}

func (h *GenresHandler) List(w http.ResponseWriter, r *http.Request) {
	unified, err := h.Genres.Unified(r.Context())
	if err != nil {
		writeJSON(w, http.StatusBadGateway, errorEnvelope{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, genresResponse{Genres: unified})
}
