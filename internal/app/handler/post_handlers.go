package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/eweracs/go-shortlink/internal/app/service"
	"github.com/eweracs/go-shortlink/internal/models"
)

type PostHandler struct {
	baseURL string
	service service.ShortLinkIface
	logger  *zap.Logger
}

// NewPost builds the shorten handler. baseURL is the public site base both
// short URL forms are built on.
func NewPost(baseURL string, s service.ShortLinkIface, l *zap.Logger) *PostHandler {
	return &PostHandler{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		service: s,
		logger:  l,
	}
}

// Shorten handles authenticated POST requests creating short links.
func (h *PostHandler) Shorten(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	var req models.ShortenRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		var mr *malformedRequest
		if errors.As(err, &mr) {
			writeError(w, mr.status, mr.msg)
			return
		}

		h.logger.Error("decoding shorten request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	// An explicit driveId wins; otherwise extract one from the share link.
	driveID := req.DriveID
	if driveID == "" {
		driveID, _ = service.ParseDriveID(req.DriveURL)
	}
	if driveID == "" {
		writeError(w, http.StatusBadRequest, "driveId or driveUrl is required")
		return
	}

	link, err := h.service.Create(ctx, driveID, req.Name)
	if err != nil {
		h.logger.Error("shorten failed", zap.String("driveID", driveID), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "shorten failed")
		return
	}

	writeJSON(w, http.StatusOK, models.ShortenResponse{
		ShortID:      link.ShortID,
		DriveID:      link.DriveID,
		Name:         link.Name,
		ShortURL:     h.baseURL + "/download?" + link.ShortID,
		ShortURLLong: h.baseURL + "/download?short=" + link.ShortID,
	})
}
