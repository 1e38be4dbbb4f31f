package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/estetica-agenda/internal/httperr"
	"github.com/BruksfildServices01/estetica-agenda/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/estetica-agenda/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateManualAppointment
	updateUC *ucAppointment.UpdateObservation
	deleteUC *ucAppointment.DeleteAppointment
	listUC   *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateManualAppointment,
	updateUC *ucAppointment.UpdateObservation,
	deleteUC *ucAppointment.DeleteAppointment,
	listUC *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName  string  `json:"clientName" binding:"required"`
	Service     string  `json:"service" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Value       float64 `json:"value" binding:"required"`
	Observation string  `json:"observation"`
}

type UpdateAppointmentRequest struct {
	Observation string `json:"observation"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	aps, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "Failed to load appointments", err.Error())
		return
	}
	httpresp.OK(c, aps)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Missing required fields")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateManualInput{
		ClientName:  req.ClientName,
		Service:     req.Service,
		Date:        req.Date,
		Value:       req.Value,
		Observation: req.Observation,
	})
	if err != nil {
		httperr.Internal(c, "Failed to create appointment", err.Error())
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// UPDATE (observação)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	found, err := h.updateUC.Execute(c.Request.Context(), id, req.Observation)
	if err != nil {
		httperr.Internal(c, "Failed to update appointment", err.Error())
		return
	}
	if !found {
		httperr.NotFound(c, "Appointment not found")
		return
	}

	httpresp.Success(c)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	removed, err := h.deleteUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Internal(c, "Failed to delete appointment", err.Error())
		return
	}
	if !removed {
		httperr.NotFound(c, "Appointment not found")
		return
	}

	httpresp.Success(c)
}
