package checkout

import (
	"net/http"

	mw "stagefront-be/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *Handler, adminSecret string) http.Handler {
	r := chi.NewRouter()
	r.Use(mw.RequestID)
	r.Use(mw.Logging)
	r.Use(mw.RateLimit)
	r.Use(middleware.Recoverer)

	r.Post("/checkout", h.Checkout)
	r.Get("/orders/{orderNumber}", h.GetOrder)

	r.Route("/admin", func(r chi.Router) {
		r.Use(mw.AdminAuth(adminSecret))
		r.Patch("/orders/{orderNumber}/status", h.UpdateStatus)
	})

	return r
}
