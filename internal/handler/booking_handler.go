package handler

import (
	"net/http"

	"hospital-bed-booking/internal/models"
	"hospital-bed-booking/internal/service"
	"hospital-bed-booking/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type BookingHandler struct {
	bookingService *service.BookingService
	log            *logrus.Logger
}

func NewBookingHandler(bookingService *service.BookingService, log *logrus.Logger) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		log:            log,
	}
}

// BookingRequest is the booking form. DoctorID 0 means no doctor.
type BookingRequest struct {
	Name     string `json:"name" form:"name" binding:"required"`
	Contact  string `json:"contact" form:"contact" binding:"required"`
	BedType  string `json:"bed_type" form:"bed_type" binding:"required,oneof=icu oxygen normal ventilator"`
	DoctorID uint   `json:"doctor_id" form:"doctor_id"`
	Symptoms string `json:"symptoms" form:"symptoms"`
	IDProof  string `json:"id_proof" form:"id_proof"`
}

// BookForm returns the hospital, bed types and doctor choices
func (h *BookingHandler) BookForm(c *gin.Context) {
	hospitalID, ok := parseID(c, "hospitalId")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	form, err := h.bookingService.Form(c.Request.Context(), hospitalID)
	if err != nil {
		respondError(c, h.log, err, "Hospital not found")
		return
	}

	utils.SuccessResponse(c, form)
}

// Book reserves a bed for the logged in user
func (h *BookingHandler) Book(c *gin.Context) {
	hospitalID, ok := parseID(c, "hospitalId")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	var req BookingRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	booking, err := h.bookingService.Book(c.Request.Context(), actorFrom(c), hospitalID, service.BookingInput{
		BedType:  models.BedType(req.BedType),
		Name:     req.Name,
		Contact:  req.Contact,
		Symptoms: req.Symptoms,
		IDProof:  req.IDProof,
		DoctorID: req.DoctorID,
	})
	if err != nil {
		respondError(c, h.log, err, "Hospital not found")
		return
	}

	c.Header("Location", "/booking/success/"+utoa(booking.ID))
	utils.CreatedResponse(c, "Booking Confirmed", booking)
}

// GetBooking shows one booking; patients only see their own
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid booking ID")
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		respondError(c, h.log, err, "Booking not found")
		return
	}

	utils.SuccessResponse(c, booking)
}

// MyBookings lists the logged in user's bookings
func (h *BookingHandler) MyBookings(c *gin.Context) {
	bookings, err := h.bookingService.ListMine(c.Request.Context(), actorFrom(c))
	if err != nil {
		respondError(c, h.log, err, "Not found")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"bookings": bookings,
		"count":    len(bookings),
	})
}
