package http

import (
	"net/http"

	"github.com/3bwahab/asd-healthcare-platform/internal/delivery/http/handler"
	"github.com/3bwahab/asd-healthcare-platform/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	slotHandler     *handler.SlotHandler
	doctorHandler   *handler.DoctorHandler
	parentHandler   *handler.ParentHandler
	auditLogHandler *handler.AuditLogHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	slotHandler *handler.SlotHandler,
	doctorHandler *handler.DoctorHandler,
	parentHandler *handler.ParentHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		slotHandler:     slotHandler,
		doctorHandler:   doctorHandler,
		parentHandler:   parentHandler,
		auditLogHandler: auditLogHandler,
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
	auth.HandleFunc("/register/parent", r.authHandler.RegisterParent).Methods(http.MethodPost)
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Public discovery routes
	api.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/slots/available", r.slotHandler.GetAvailable).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/slots/times", r.slotHandler.GetTimes).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{doctorId}/slots/times/search", r.slotHandler.SearchAvailableTimes).Methods(http.MethodGet)

	// Doctor routes (protected - doctor only)
	doctor := api.PathPrefix("/doctor").Subrouter()
	doctor.Use(r.authMiddleware.Authenticate)
	doctor.Use(middleware.RequireDoctor)
	doctor.HandleFunc("/slots", r.slotHandler.CreateSlots).Methods(http.MethodPost)
	doctor.HandleFunc("/slots/booked", r.slotHandler.GetMyBooked).Methods(http.MethodGet)
	doctor.HandleFunc("/slots/available", r.slotHandler.DeleteAllAvailable).Methods(http.MethodDelete)
	doctor.HandleFunc("/slots/{id}", r.slotHandler.UpdateSlot).Methods(http.MethodPut)
	doctor.HandleFunc("/slots/{id}", r.slotHandler.DeleteSlot).Methods(http.MethodDelete)
	doctor.HandleFunc("/slots/{id}/confirm", r.slotHandler.ConfirmSlot).Methods(http.MethodPatch)
	doctor.HandleFunc("/parents", r.slotHandler.GetMyParents).Methods(http.MethodGet)
	doctor.HandleFunc("/profile", r.doctorHandler.UpdateMyProfile).Methods(http.MethodPut)

	// Parent routes (protected - parent only)
	parent := api.PathPrefix("/parent").Subrouter()
	parent.Use(r.authMiddleware.Authenticate)
	parent.Use(middleware.RequireParent)
	parent.HandleFunc("/doctors/{doctorId}/book", r.slotHandler.BookSlot).Methods(http.MethodPost)
	parent.HandleFunc("/slots/{id}/cancel", r.slotHandler.CancelSlot).Methods(http.MethodPatch)
	parent.HandleFunc("/slots", r.slotHandler.GetMySlots).Methods(http.MethodGet)
	parent.HandleFunc("/doctors", r.slotHandler.GetMyDoctors).Methods(http.MethodGet)
	parent.HandleFunc("/profile", r.parentHandler.GetMyProfile).Methods(http.MethodGet)
	parent.HandleFunc("/profile", r.parentHandler.UpdateMyProfile).Methods(http.MethodPut)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/slots", r.slotHandler.GetAllSlots).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
