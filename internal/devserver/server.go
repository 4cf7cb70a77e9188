package devserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/hance08/fintrack/internal/constants"
	"github.com/hance08/fintrack/internal/store"
	"github.com/sirupsen/logrus"
)

// Handler serves the finance tracker REST contract from a local store.
type Handler struct {
	repo store.Repository
	log  logrus.FieldLogger
	now  func() time.Time
}

func NewHandler(repo store.Repository, log logrus.FieldLogger) *Handler {
	return &Handler{repo: repo, log: log, now: time.Now}
}

func NewRouter(h *Handler) *chi.Mux {
	mux := chi.NewRouter()
	mux.Use(middleware.RequestID)
	mux.Use(middleware.Recoverer)
	mux.Use(h.requestLogger)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	references := []struct {
		path string
		kind store.Kind
	}{
		{constants.PathUsers, store.KindUser},
		{constants.PathCategories, store.KindCategory},
		{constants.PathPaymentMethods, store.KindPaymentMethod},
	}
	for _, ref := range references {
		kind := ref.kind
		route(mux, ref.path, func(r chi.Router) {
			r.Get("/", h.listReferences(kind))
			r.Post("/", h.createReference(kind))
			r.Get("/{id}", h.getReference(kind))
			r.Put("/{id}", h.updateReference(kind))
			r.Delete("/{id}", h.deleteReference(kind))
		})
	}
	route(mux, constants.PathTransactions, func(r chi.Router) {
		r.Get("/", h.ListTransactions)
		r.Post("/", h.CreateTransaction)
		r.Get("/{id}", h.GetTransaction)
		r.Put("/{id}", h.UpdateTransaction)
		r.Delete("/{id}", h.DeleteTransaction)
	})

	return mux
}

// route mounts a sub-router under a resource path such as "/users/".
func route(mux *chi.Mux, path string, fn func(r chi.Router)) {
	mux.Route(path[:len(path)-1], fn)
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.log.WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"status":     ww.Status(),
			"duration":   time.Since(start).String(),
			"request_id": middleware.GetReqID(r.Context()),
		}).Info("request")
	})
}

// Run serves handler on addr until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, addr string, handler http.Handler, log logrus.FieldLogger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("devserver listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down devserver")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
