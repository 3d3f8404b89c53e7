package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/eweracs/go-shortlink/internal/models"
)

// fallbackFileName labels notifications whose body carried no usable name.
const fallbackFileName = "Download File"

// Handler serves POST /notify. A nil verifier disables the challenge step;
// a nil sender reports missing server configuration on every request.
type Handler struct {
	logger   *zap.Logger
	sender   MessageSender
	verifier ChallengeVerifier
	location *time.Location
	now      func() time.Time
}

func NewHandler(logger *zap.Logger, sender MessageSender, verifier ChallengeVerifier) *Handler {
	// Notification timestamps are rendered in the operator's timezone.
	location, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		location = time.UTC
	}

	return &Handler{
		logger:   logger,
		sender:   sender,
		verifier: verifier,
		location: location,
		now:      time.Now,
	}
}

// Notify validates the challenge, then relays a download notification.
// The caller treats this as fire-and-forget; the download must never
// depend on the outcome.
func (h *Handler) Notify(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), outboundTimeout)
	defer cancel()

	if h.sender == nil {
		writeError(w, http.StatusInternalServerError, "missing server configuration")
		return
	}

	var req models.NotifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	if h.verifier != nil {
		if req.TurnstileToken == "" {
			writeError(w, http.StatusBadRequest, "missing turnstile token")
			return
		}

		ok, err := h.verifier.Verify(ctx, req.TurnstileToken, remoteIP(r))
		if err != nil {
			h.logger.Error("challenge verification errored", zap.Error(err))
		}
		if err != nil || !ok {
			writeError(w, http.StatusForbidden, "verification failed")
			return
		}
	}

	fileName := strings.TrimSpace(req.FileName)
	if fileName == "" {
		fileName = fallbackFileName
	}

	message := fmt.Sprintf("📥 %s was downloaded at %s",
		fileName, h.now().In(h.location).Format("15:04"))

	if err := h.sender.SendMessage(ctx, message); err != nil {
		h.logger.Error("telegram delivery failed", zap.Error(err))
		writeError(w, http.StatusBadGateway, "telegram request failed")
		return
	}

	writeJSON(w, http.StatusOK, models.OKResponse{OK: true})
}

// remoteIP extracts the client address for the siteverify call, preferring
// the proxy-injected headers.
func remoteIP(r *http.Request) string {
	if ip := r.Header.Get("CF-Connecting-IP"); ip != "" {
		return ip
	}

	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if i := strings.IndexByte(fwd, ','); i >= 0 {
			return strings.TrimSpace(fwd[:i])
		}
		return strings.TrimSpace(fwd)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	response, err := json.Marshal(v)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg})
}
