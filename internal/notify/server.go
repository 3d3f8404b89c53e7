package notify

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/eweracs/go-shortlink/internal/middleware"
)

// Init builds the relay router. Anything but POST /notify answers 404.
func Init(logger *zap.Logger, h *Handler, cors *middleware.CORSPolicy) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.WithRequestID)
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(middleware.WithCORS(cors))

	r.Post("/notify", h.Notify)

	notFound := func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	}
	r.NotFound(notFound)
	r.MethodNotAllowed(notFound)

	return r
}
