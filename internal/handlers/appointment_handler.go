package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/softbarber/internal/httperr"
	"github.com/BruksfildServices01/softbarber/internal/httpresp"
	"github.com/BruksfildServices01/softbarber/internal/middleware"
	apuc "github.com/BruksfildServices01/softbarber/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create   *apuc.CreateAppointment
	list     *apuc.ListAppointments
	get      *apuc.GetAppointment
	status   *apuc.UpdateStatus
	reminder *apuc.SendReminder
}

func NewAppointmentHandler(
	create *apuc.CreateAppointment,
	list *apuc.ListAppointments,
	get *apuc.GetAppointment,
	status *apuc.UpdateStatus,
	reminder *apuc.SendReminder,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:   create,
		list:     list,
		get:      get,
		status:   status,
		reminder: reminder,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	Client   string `json:"client"`
	ClientID *uint  `json:"clientId"`
	Barber   string `json:"barber"`
	BarberID *uint  `json:"barberId"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Service  string `json:"service"`
	Status   string `json:"status"`
	Notes    string `json:"notes"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	barberID, ok := optionalUint(c, "barberId")
	if !ok {
		return
	}

	items, err := h.list.Execute(c.Request.Context(), apuc.ListAppointmentsInput{
		BarberID:  barberID,
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		Status:    c.Query("status"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Items(c, items)
}

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), apuc.CreateAppointmentInput{
		Identity: middleware.IdentityFrom(c),
		Client:   req.Client,
		ClientID: req.ClientID,
		Barber:   req.Barber,
		BarberID: req.BarberID,
		Date:     req.Date,
		Time:     req.Time,
		Service:  req.Service,
		Status:   req.Status,
		Notes:    req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	ap, err := h.status.Execute(c.Request.Context(), middleware.IdentityFrom(c), id, req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) SendReminder(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	res, err := h.reminder.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, res)
}
