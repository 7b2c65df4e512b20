package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/softbarber/internal/domain/client"
	"github.com/BruksfildServices01/softbarber/internal/dto"
	"github.com/BruksfildServices01/softbarber/internal/httperr"
	"github.com/BruksfildServices01/softbarber/internal/httpresp"
	"github.com/BruksfildServices01/softbarber/internal/middleware"
	"github.com/BruksfildServices01/softbarber/internal/models"
	clientuc "github.com/BruksfildServices01/softbarber/internal/usecase/client"
)

type ClientHandler struct {
	search  *clientuc.SearchClients
	create  *clientuc.CreateClient
	get     *clientuc.GetClient
	update  *clientuc.UpdateClient
	history *clientuc.ClientHistory
}

func NewClientHandler(
	search *clientuc.SearchClients,
	create *clientuc.CreateClient,
	get *clientuc.GetClient,
	update *clientuc.UpdateClient,
	history *clientuc.ClientHistory,
) *ClientHandler {
	return &ClientHandler{
		search:  search,
		create:  create,
		get:     get,
		update:  update,
		history: history,
	}
}

// --------- Requests ---------

type CreateClientRequest struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type UpdateClientRequest struct {
	Name     *string `json:"name"`
	LastName *string `json:"lastName"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
}

type CreateClientResponse struct {
	models.Client
	PossibleDuplicates int `json:"possibleDuplicates"`
}

// --------- Handlers ---------

func (h *ClientHandler) List(c *gin.Context) {
	page, ok := optionalInt(c, "page")
	if !ok {
		return
	}

	items, err := h.search.Execute(c.Request.Context(), client.SearchFilter{
		Name:     c.Query("name"),
		LastName: c.Query("lastName"),
		Page:     page,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Items(c, items)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	res, err := h.create.Execute(c.Request.Context(), clientuc.CreateClientInput{
		ActorID:  c.MustGet(middleware.ContextUserID).(uint),
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, CreateClientResponse{
		Client:             *res.Client,
		PossibleDuplicates: res.PossibleDuplicates,
	})
}

func (h *ClientHandler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	cl, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, cl)
}

func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	cl, err := h.update.Execute(c.Request.Context(), clientuc.UpdateClientInput{
		ActorID:  c.MustGet(middleware.ContextUserID).(uint),
		ID:       id,
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
		Phone:    req.Phone,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, cl)
}

func (h *ClientHandler) History(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	cuts, err := h.history.Execute(c.Request.Context(), middleware.IdentityFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Items(c, dto.NewCuts(cuts))
}
