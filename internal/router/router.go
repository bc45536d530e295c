package router

import (
	"net/http"

	"github.com/foxuse/showcase/internal/handler"
	"github.com/foxuse/showcase/internal/middleware"
)

// New creates and configures the HTTP router
func New(h *handler.Handler, mw *middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	// Health check (no auth required)
	mux.HandleFunc("GET /health", h.Health)

	// Public read API
	mux.HandleFunc("GET /products", h.ListProducts)
	mux.HandleFunc("GET /products/{id}", h.GetProduct)
	mux.HandleFunc("GET /activities", h.ListActivities)

	// Public subscribe and admin login
	mux.HandleFunc("POST /subscribe", h.Subscribe)
	mux.HandleFunc("POST /admin/login", h.Login)

	// Admin-gated write path
	gate := mw.AdminSession
	mux.Handle("POST /products", gate(http.HandlerFunc(h.CreateProduct)))
	mux.Handle("PUT /products/{id}", gate(http.HandlerFunc(h.UpdateProduct)))
	mux.Handle("DELETE /products/{id}", gate(http.HandlerFunc(h.DeleteProduct)))
	mux.Handle("POST /activities", gate(http.HandlerFunc(h.CreateActivity)))
	mux.Handle("GET /admin/subscribers", gate(http.HandlerFunc(h.ListSubscribers)))
	mux.Handle("POST /admin/notify", gate(http.HandlerFunc(h.Notify)))

	// Apply middleware stack
	var hdl http.Handler = mux

	hdl = mw.CORS(hdl)
	hdl = mw.SecurityHeaders(hdl)
	hdl = mw.Logger(hdl)
	hdl = mw.RequestID(hdl)

	// Panic recovery (outermost)
	hdl = mw.Recover(hdl)

	return hdl
}
