package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/wakala/remittance/internal/remit"
	"github.com/wakala/remittance/internal/repository"
)

// NewRouter creates the Chi router with all API routes mounted.
func NewRouter(
	orderRepo *repository.OrderRepo,
	fileRepo *repository.FileRepo,
	generator *remit.Generator,
	logger zerolog.Logger,
) http.Handler {
	h := &Handlers{
		orderRepo: orderRepo,
		fileRepo:  fileRepo,
		generator: generator,
		validate:  validator.New(),
		logger:    logger,
	}

	r := chi.NewRouter()

	// Middleware.
	r.Use(middleware.RequestID)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		// Payment orders.
		r.Post("/payment-orders", h.CreateOrder)
		r.Get("/payment-orders", h.ListOrders)
		r.Get("/payment-orders/{id}", h.GetOrder)

		// Remittance file generation and attachments.
		r.Post("/payment-orders/{id}/remittance", h.GenerateRemittance)
		r.Get("/payment-orders/{id}/files", h.ListOrderFiles)
		r.Get("/files/{id}", h.DownloadFile)
	})

	return r
}

// requestLogger emits one structured line per request.
func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Str("request_id", middleware.GetReqID(r.Context())).
				Msg("request")
		})
	}
}
