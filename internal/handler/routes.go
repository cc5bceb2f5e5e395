package handler

import (
	"net/http"

	"hospital-bed-booking/internal/middleware"
	"hospital-bed-booking/internal/models"
	"hospital-bed-booking/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Handlers groups the route handlers registered by RegisterRoutes
type Handlers struct {
	Auth     *AuthHandler
	Hospital *HospitalHandler
	Booking  *BookingHandler
}

// RegisterRoutes defines every route of the application
func RegisterRoutes(r *gin.Engine, h Handlers, issuer *utils.TokenIssuer, metricsHandler http.Handler) {
	// Health check and metrics
	r.GET("/ping", Ping)
	if metricsHandler != nil {
		r.GET("/metrics", gin.WrapH(metricsHandler))
	}

	// Public pages
	r.GET("/", h.Hospital.ListHospitals)
	r.GET("/hospitals", h.Hospital.ListHospitals)
	r.GET("/hospital/:id/beds", h.Hospital.GetBeds)
	r.GET("/api/hospital/:id/availability", h.Hospital.Availability)

	// Auth routes (public)
	r.GET("/register", h.Auth.RegisterForm)
	r.POST("/register", h.Auth.Register)
	r.GET("/login", h.Auth.LoginForm)
	r.POST("/login", h.Auth.Login)
	r.POST("/auth/refresh", h.Auth.Refresh)

	// Authenticated routes
	authed := r.Group("/")
	authed.Use(middleware.AuthMiddleware(issuer))
	{
		authed.GET("/logout", h.Auth.Logout)
		authed.GET("/me", h.Auth.Me)

		authed.GET("/book/:hospitalId", h.Booking.BookForm)
		authed.POST("/book/:hospitalId", h.Booking.Book)
		authed.GET("/booking/success/:id", h.Booking.GetBooking)
		authed.GET("/my_bookings", h.Booking.MyBookings)

		// Ownership is checked by the service
		authed.GET("/hospital/:id/edit", h.Hospital.EditForm)
		authed.POST("/hospital/:id/edit", h.Hospital.EditHospital)

		staff := authed.Group("/hospital")
		staff.Use(middleware.RequireRole(models.RoleHospital, models.RoleAdmin))
		{
			staff.GET("/create", h.Hospital.CreateForm)
			staff.POST("/create", h.Hospital.CreateHospital)
		}
	}
}
