// Package server wires the shorten/resolve API router.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/eweracs/go-shortlink/internal/app/handler"
	"github.com/eweracs/go-shortlink/internal/app/service"
	"github.com/eweracs/go-shortlink/internal/middleware"
)

// Init builds the router. baseURL is the public site base short URLs point
// at; token guards the create endpoint.
func Init(baseURL string, logger *zap.Logger, svc service.ShortLinkIface, token string, cors *middleware.CORSPolicy) *chi.Mux {
	get := handler.NewGet(svc, logger)
	post := handler.NewPost(baseURL, svc, logger)

	r := chi.NewRouter()
	r.Use(middleware.WithRequestID)
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(middleware.WithCORS(cors))

	r.Get("/health", get.Health)
	r.Get("/resolve/{shortID}", get.Resolve)

	r.Get("/resolve/", func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusBadRequest, "shortId is required")
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.WithToken(token))
		r.Post("/shorten", post.Shorten)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, "not found")
	})

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	return r
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}
