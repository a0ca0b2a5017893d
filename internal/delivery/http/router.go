package http

import (
	"net/http"

	"lifeline-qr-server/internal/delivery/http/handler"
	"lifeline-qr-server/pkg/response"

	"github.com/gorilla/mux"
)

// Router wires one path per entity; the verb selects the operation.
type Router struct {
	router          *mux.Router
	accountHandler  *handler.AccountHandler
	authHandler     *handler.AuthHandler
	qrHandler       *handler.QRHandler
	recordHandler   *handler.RecordHandler
	orderHandler    *handler.OrderHandler
	feedbackHandler *handler.FeedbackHandler
}

func NewRouter(
	accountHandler *handler.AccountHandler,
	authHandler *handler.AuthHandler,
	qrHandler *handler.QRHandler,
	recordHandler *handler.RecordHandler,
	orderHandler *handler.OrderHandler,
	feedbackHandler *handler.FeedbackHandler,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		accountHandler:  accountHandler,
		authHandler:     authHandler,
		qrHandler:       qrHandler,
		recordHandler:   recordHandler,
		orderHandler:    orderHandler,
		feedbackHandler: feedbackHandler,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Accounts
	api.HandleFunc("/users", r.accountHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/users", r.accountHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/users", r.accountHandler.Update).Methods(http.MethodPut)

	// Authentication
	api.HandleFunc("/auth", r.authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth", r.authHandler.ResetPassword).Methods(http.MethodPut)

	// QR mappings
	api.HandleFunc("/qr", r.qrHandler.Lookup).Methods(http.MethodPost)
	api.HandleFunc("/qr", r.qrHandler.GetMapping).Methods(http.MethodGet)

	// Medical records
	api.HandleFunc("/records", r.recordHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/records", r.recordHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/records", r.recordHandler.Delete).Methods(http.MethodDelete)

	// Orders
	api.HandleFunc("/orders", r.orderHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/orders", r.orderHandler.List).Methods(http.MethodGet)

	// Feedback
	api.HandleFunc("/feedback", r.feedbackHandler.Submit).Methods(http.MethodPost)

	// Any verb outside an entity's surface gets the generic JSON error.
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.MethodNotAllowed(w)
	})
	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "Endpoint not found")
	})

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
