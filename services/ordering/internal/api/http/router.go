package httpapi

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	platformhealth "github.com/shestoi/GoGrocery/platform/health/http"
	platformobservability "github.com/shestoi/GoGrocery/platform/observability"
)

// NewRouter создаёт и настраивает HTTP роутер для Ordering Service
// readiness - функция для проверки готовности сервиса (например, доступность
// gRPC соединений). Если readiness возвращает false, health endpoint
// вернёт 503 Service Unavailable.
// logger используется для observability HTTP middleware (trace_id в логах)
func NewRouter(handler *Handler, readiness func() bool, logger *zap.Logger) chi.Router {
	router := chi.NewRouter()

	// Observability: trace context + span на каждый запрос, logger с trace_id в контексте
	if logger != nil {
		router.Use(platformobservability.HTTPMiddleware("ordering", logger))
	}

	router.Route("/order", func(r chi.Router) {
		r.Post("/grocery", handler.PostGroceryOrder)
		r.Post("/restock", handler.PostRestockOrder)
	})

	router.Get("/health", platformhealth.Handler(readiness))

	return router
}
