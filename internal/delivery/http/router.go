package http

import (
	"net/http"

	"medexus-backend/internal/delivery/http/handler"
	"medexus-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	requestHandler  *handler.RequestHandler
	interestHandler *handler.InterestHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	requestHandler *handler.RequestHandler,
	interestHandler *handler.InterestHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		requestHandler:  requestHandler,
		interestHandler: interestHandler,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/signup", r.authHandler.Signup).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Surgery request routes. Reads are open to every authenticated role,
	// mutations are hospital-only.
	requests := api.PathPrefix("/requests").Subrouter()
	requests.Use(r.authMiddleware.Authenticate)
	requests.HandleFunc("", r.requestHandler.ListRequests).Methods(http.MethodGet)
	requests.HandleFunc("/{id}", r.requestHandler.GetRequest).Methods(http.MethodGet)
	requests.Handle("", middleware.RequireHospital(http.HandlerFunc(r.requestHandler.CreateRequest))).Methods(http.MethodPost)
	requests.Handle("/{id}", middleware.RequireHospital(http.HandlerFunc(r.requestHandler.UpdateRequest))).Methods(http.MethodPut)
	requests.Handle("/{id}", middleware.RequireHospital(http.HandlerFunc(r.requestHandler.DeleteRequest))).Methods(http.MethodDelete)

	// Interest routes (doctor only)
	interests := api.PathPrefix("/interests").Subrouter()
	interests.Use(r.authMiddleware.Authenticate)
	interests.Use(middleware.RequireDoctor)
	interests.HandleFunc("", r.interestHandler.ExpressInterest).Methods(http.MethodPost)
	interests.HandleFunc("/me", r.interestHandler.GetMyInterests).Methods(http.MethodGet)
	interests.HandleFunc("/{requestId}", r.interestHandler.WithdrawInterest).Methods(http.MethodDelete)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
