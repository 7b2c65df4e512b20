package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/softbarber/internal/dto"
	"github.com/BruksfildServices01/softbarber/internal/httperr"
	"github.com/BruksfildServices01/softbarber/internal/httpresp"
	"github.com/BruksfildServices01/softbarber/internal/middleware"
	cutuc "github.com/BruksfildServices01/softbarber/internal/usecase/cut"
)

type CutHandler struct {
	create *cutuc.CreateCut
	list   *cutuc.ListCuts
}

func NewCutHandler(
	create *cutuc.CreateCut,
	list *cutuc.ListCuts,
) *CutHandler {
	return &CutHandler{
		create: create,
		list:   list,
	}
}

type CreateCutRequest struct {
	BarberID       *uint   `json:"barberId"`
	ClientID       *uint   `json:"clientId"`
	ClientName     string  `json:"clientName"`
	ClientLastName string  `json:"clientLastName"`
	Amount         float64 `json:"amount"`
	PaymentMethod  string  `json:"paymentMethod"`
	Observations   string  `json:"observations"`
}

func (h *CutHandler) List(c *gin.Context) {
	barberID, ok := optionalUint(c, "barberId")
	if !ok {
		return
	}

	cuts, err := h.list.Execute(c.Request.Context(), cutuc.ListCutsInput{
		Identity:      middleware.IdentityFrom(c),
		BarberID:      barberID,
		StartDate:     c.Query("startDate"),
		EndDate:       c.Query("endDate"),
		PaymentMethod: c.Query("paymentMethod"),
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Items(c, dto.NewCuts(cuts))
}

func (h *CutHandler) Create(c *gin.Context) {
	var req CreateCutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	cut, err := h.create.Execute(c.Request.Context(), cutuc.CreateCutInput{
		Identity:       middleware.IdentityFrom(c),
		BarberID:       req.BarberID,
		ClientID:       req.ClientID,
		ClientName:     req.ClientName,
		ClientLastName: req.ClientLastName,
		Amount:         req.Amount,
		PaymentMethod:  req.PaymentMethod,
		Observations:   req.Observations,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.NewCut(cut))
}
