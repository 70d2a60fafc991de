package main

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/arvarik/fitness-go/fitness"
)

const maxRequestBody = 64 << 10

// server serves one catalog over HTTP.
type server struct {
	catalog    *fitness.Catalog
	logger     *slog.Logger
	trustProxy bool // take the client address from X-Forwarded-For / X-Real-IP
}

// kindResponse describes one resolved kind.
type kindResponse struct {
	Kind       int    `json:"kind"`
	Name       string `json:"name"`
	Identifier string `json:"identifier"`
	Class      string `json:"class"`
	Writable   bool   `json:"writable"`
}

// typeSetsResponse lists platform identifiers per access direction.
type typeSetsResponse struct {
	Read  []string `json:"read"`
	Write []string `json:"write"`
}

func newServer(catalog *fitness.Catalog, logger *slog.Logger, trustProxy bool) *server {
	return &server{catalog: catalog, logger: logger, trustProxy: trustProxy}
}

// routes builds the router. limiter may be nil to disable rate limiting.
func (s *server) routes(limiter *clientLimiter) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if s.trustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}
		r.Get("/constants", s.handleConstants)
		r.Get("/kinds/{kind}", s.handleKind)
		r.Post("/typesets", s.handleTypeSets)
	})

	return r
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleConstants(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.catalog.Constants())
}

func (s *server) handleKind(w http.ResponseWriter, r *http.Request) {
	param := chi.URLParam(r, "kind")

	kind, err := parseKindParam(param)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	t, err := s.catalog.Resolve(kind)
	if err != nil {
		s.logger.Debug("kind not resolvable", "kind", param, "err", err)
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, kindResponse{
		Kind:       int(kind),
		Name:       kind.String(),
		Identifier: t.Identifier(),
		Class:      t.Class().String(),
		Writable:   t.Writable(),
	})
}

func (s *server) handleTypeSets(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	reqs, err := fitness.ParseRequests(body)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, fitness.ErrUnsupportedAccess) {
			status = http.StatusUnprocessableEntity
		}
		writeError(w, status, err.Error())
		return
	}

	sets, err := fitness.BuildTypeSets(s.catalog, reqs)
	if err != nil {
		s.logger.Warn("type set rejected",
			"platform", s.catalog.Platform().Name(),
			"requests", len(reqs),
			"err", err,
		)
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, typeSetsResponse{
		Read:  fitness.Identifiers(sets.Read),
		Write: fitness.Identifiers(sets.Write),
	})
}

// parseKindParam accepts an ordinal ("6") or a name ("HeartRate").
func parseKindParam(param string) (fitness.PermissionKind, error) {
	if n, err := strconv.Atoi(param); err == nil {
		return fitness.PermissionKind(n), nil
	}
	return fitness.ParsePermissionKind(param)
}

func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
