package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/eweracs/go-shortlink/internal/app/service"
	"github.com/eweracs/go-shortlink/internal/models"
	"github.com/eweracs/go-shortlink/internal/storage"
)

const storeTimeout = 3 * time.Second

type GetHandler struct {
	service service.ShortLinkIface
	logger  *zap.Logger
}

func NewGet(s service.ShortLinkIface, l *zap.Logger) *GetHandler {
	return &GetHandler{
		service: s,
		logger:  l,
	}
}

// Health is the liveness probe. It deliberately touches nothing.
func (h *GetHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, models.OKResponse{OK: true})
}

// Resolve handles GET requests for short id resolution.
func (h *GetHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	shortID := chi.URLParam(r, "shortID")
	if shortID == "" {
		writeError(w, http.StatusBadRequest, "shortId is required")
		return
	}

	link, err := h.service.Resolve(ctx, shortID)
	if errors.Is(err, storage.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		h.logger.Error("resolve failed", zap.String("shortID", shortID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "resolve failed")
		return
	}

	writeJSON(w, http.StatusOK, models.ResolveResponse{
		DriveID: link.DriveID,
		Name:    link.Name,
	})
}
