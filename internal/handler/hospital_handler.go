package handler

import (
	"errors"
	"net/http"

	"hospital-bed-booking/internal/models"
	"hospital-bed-booking/internal/repository"
	"hospital-bed-booking/internal/service"
	"hospital-bed-booking/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type HospitalHandler struct {
	hospitalService *service.HospitalService
	log             *logrus.Logger
}

func NewHospitalHandler(hospitalService *service.HospitalService, log *logrus.Logger) *HospitalHandler {
	return &HospitalHandler{
		hospitalService: hospitalService,
		log:             log,
	}
}

// HospitalRequest is the create/edit form
type HospitalRequest struct {
	Name    string `json:"name" form:"name" binding:"required"`
	Address string `json:"address" form:"address"`
	City    string `json:"city" form:"city"`
	Contact string `json:"contact" form:"contact"`
	models.BedCounts
}

func (r HospitalRequest) input() service.HospitalInput {
	return service.HospitalInput{
		Name:    r.Name,
		Address: r.Address,
		City:    r.City,
		Contact: r.Contact,
		Beds:    r.BedCounts,
	}
}

// ListHospitals lists hospitals, filtered by the optional city query
func (h *HospitalHandler) ListHospitals(c *gin.Context) {
	city := c.Query("city")

	hospitals, err := h.hospitalService.List(c.Request.Context(), city)
	if err != nil {
		h.log.WithError(err).Error("failed to list hospitals")
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to load hospitals, please try again later")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"hospitals": hospitals,
		"count":     len(hospitals),
		"city":      city,
	})
}

// CreateForm describes the hospital form
func (h *HospitalHandler) CreateForm(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"bed_types": bedTypeOptions()})
}

// CreateHospital creates a new hospital (hospital staff or admin)
func (h *HospitalHandler) CreateHospital(c *gin.Context) {
	var req HospitalRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	hospital, err := h.hospitalService.Create(c.Request.Context(), actorFrom(c), req.input())
	if err != nil {
		respondError(c, h.log, err, "Hospital not found")
		return
	}

	utils.CreatedResponse(c, "Hospital created", hospital)
}

// EditForm returns the current values of a hospital the user may edit
func (h *HospitalHandler) EditForm(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	hospital, err := h.hospitalService.GetForEdit(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		respondError(c, h.log, err, "Hospital not found")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"hospital":  hospital,
		"bed_types": bedTypeOptions(),
	})
}

// EditHospital updates details and bed totals
func (h *HospitalHandler) EditHospital(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	var req HospitalRequest
	if err := c.ShouldBind(&req); err != nil {
		respondBindError(c, err)
		return
	}

	hospital, err := h.hospitalService.Edit(c.Request.Context(), actorFrom(c), id, req.input())
	if err != nil {
		respondError(c, h.log, err, "Hospital not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Hospital updated",
		"data":    hospital,
	})
}

// GetBeds shows a hospital with its totals and free beds
func (h *HospitalHandler) GetBeds(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid hospital ID")
		return
	}

	hospital, err := h.hospitalService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.log, err, "Hospital not found")
		return
	}

	beds := make([]gin.H, 0, len(models.BedTypes))
	for _, bt := range models.BedTypes {
		beds = append(beds, gin.H{
			"type":      bt,
			"label":     bt.Label(),
			"total":     hospital.Total(bt),
			"available": hospital.Available(bt),
		})
	}

	utils.SuccessResponse(c, gin.H{
		"hospital": hospital,
		"beds":     beds,
	})
}

// Availability is the plain JSON availability endpoint polled by clients
func (h *HospitalHandler) Availability(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "hospital not found"})
		return
	}

	availability, err := h.hospitalService.Availability(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "hospital not found"})
			return
		}
		h.log.WithError(err).WithField("hospital_id", id).Error("failed to load availability")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load availability"})
		return
	}

	c.JSON(http.StatusOK, availability)
}
