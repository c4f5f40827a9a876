package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	bookingHandler "github.com/pranavthakur-code/get-health-help/internal/handler/booking"
	"github.com/pranavthakur-code/get-health-help/internal/handler/chat"
	doctorHandler "github.com/pranavthakur-code/get-health-help/internal/handler/doctor"
	"github.com/pranavthakur-code/get-health-help/internal/handler/stream"
	"github.com/pranavthakur-code/get-health-help/internal/handler/ws"
	middlewarePkg "github.com/pranavthakur-code/get-health-help/internal/middleware"
	"github.com/pranavthakur-code/get-health-help/internal/model/doctor"
	"github.com/pranavthakur-code/get-health-help/internal/service/booking"
	chatService "github.com/pranavthakur-code/get-health-help/internal/service/chat"
	"github.com/pranavthakur-code/get-health-help/pkg/utils"
)

// NewRouter wires HTTP routes to core services. A nil limiter disables
// rate limiting.
func NewRouter(doctors doctor.Store, chatSvc *chatService.Service, bookingSvc *booking.Service, limiter *middlewarePkg.RateLimiter) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]any{
			"status":   "ok",
			"sessions": chatSvc.Len(),
		})
	})

	r.Route("/api", func(api chi.Router) {
		if limiter != nil {
			api.Use(limiter.Handler)
		}

		doctorHandler.New(doctors).RegisterRoutes(api)
		bookingHandler.New(bookingSvc).RegisterRoutes(api)
		chat.New(chatSvc).RegisterRoutes(api)
		stream.New(chatSvc, doctors).RegisterRoutes(api)
		ws.New(chatSvc, doctors).RegisterRoutes(api)
	})

	return r
}
