package http

import (
	"net/http"

	"medecos/internal/delivery/http/handler"
	"medecos/internal/delivery/http/middleware"
	"medecos/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	doctorHandler        *handler.DoctorHandler
	patientHandler       *handler.PatientHandler
	pharmacistHandler    *handler.PharmacistHandler
	labTesterHandler     *handler.LabTesterHandler
	appointmentHandler   *handler.AppointmentHandler
	prescriptionHandler  *handler.PrescriptionHandler
	labTestHandler       *handler.LabTestHandler
	pharmacyOrderHandler *handler.PharmacyOrderHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	pharmacistHandler *handler.PharmacistHandler,
	labTesterHandler *handler.LabTesterHandler,
	appointmentHandler *handler.AppointmentHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	labTestHandler *handler.LabTestHandler,
	pharmacyOrderHandler *handler.PharmacyOrderHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		doctorHandler:        doctorHandler,
		patientHandler:       patientHandler,
		pharmacistHandler:    pharmacistHandler,
		labTesterHandler:     labTesterHandler,
		appointmentHandler:   appointmentHandler,
		prescriptionHandler:  prescriptionHandler,
		labTestHandler:       labTestHandler,
		pharmacyOrderHandler: pharmacyOrderHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	r.router.HandleFunc("/", r.apiInfo).Methods(http.MethodGet)

	api := r.router.PathPrefix("/api").Subrouter()

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Everything below the authentication gate
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Profile directories
	protected.HandleFunc("/doctors", r.doctorHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.Update).Methods(http.MethodPut)

	protected.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", r.patientHandler.Update).Methods(http.MethodPut)

	protected.HandleFunc("/pharmacists", r.pharmacistHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/pharmacists/{id}", r.pharmacistHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/pharmacists/{id}", r.pharmacistHandler.Update).Methods(http.MethodPut)

	protected.HandleFunc("/lab-testers", r.labTesterHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/lab-testers/{id}", r.labTesterHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/lab-testers/{id}", r.labTesterHandler.Update).Methods(http.MethodPut)

	// Domain records
	protected.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)

	protected.HandleFunc("/prescriptions", r.prescriptionHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/prescriptions", r.prescriptionHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/prescriptions/{id}", r.prescriptionHandler.Update).Methods(http.MethodPut)

	protected.HandleFunc("/lab-tests", r.labTestHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/lab-tests", r.labTestHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/lab-tests/{id}", r.labTestHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/lab-tests/{id}", r.labTestHandler.Update).Methods(http.MethodPut)

	protected.HandleFunc("/pharmacy-orders", r.pharmacyOrderHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/pharmacy-orders", r.pharmacyOrderHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/pharmacy-orders/{id}", r.pharmacyOrderHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/pharmacy-orders/{id}", r.pharmacyOrderHandler.Update).Methods(http.MethodPut)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) apiInfo(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"message": "MedEcos API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"auth":           "/api/auth",
			"doctors":        "/api/doctors",
			"patients":       "/api/patients",
			"pharmacists":    "/api/pharmacists",
			"labTesters":     "/api/lab-testers",
			"appointments":   "/api/appointments",
			"prescriptions":  "/api/prescriptions",
			"labTests":       "/api/lab-tests",
			"pharmacyOrders": "/api/pharmacy-orders",
		},
	})
}
