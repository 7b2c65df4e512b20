package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/softbarber/internal/dto"
	"github.com/BruksfildServices01/softbarber/internal/httperr"
	"github.com/BruksfildServices01/softbarber/internal/httpresp"
	"github.com/BruksfildServices01/softbarber/internal/media"
	"github.com/BruksfildServices01/softbarber/internal/middleware"
	barberuc "github.com/BruksfildServices01/softbarber/internal/usecase/barber"
)

// ======================================================
// HANDLER
// ======================================================

type BarberHandler struct {
	list   *barberuc.ListBarbers
	create *barberuc.CreateBarber
	update *barberuc.UpdateBarber
	active *barberuc.SetBarberActive
	avatar *barberuc.UploadAvatar
}

func NewBarberHandler(
	list *barberuc.ListBarbers,
	create *barberuc.CreateBarber,
	update *barberuc.UpdateBarber,
	active *barberuc.SetBarberActive,
	avatar *barberuc.UploadAvatar,
) *BarberHandler {
	return &BarberHandler{
		list:   list,
		create: create,
		update: update,
		active: active,
		avatar: avatar,
	}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateBarberRequest struct {
	Name     *string `json:"name"`
	LastName *string `json:"lastName"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// --------- Handlers ---------

// Directory is open to every authenticated user.
func (h *BarberHandler) Directory(c *gin.Context) {
	users, err := h.list.Directory(c.Request.Context())
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Items(c, dto.NewBarbers(users))
}

func (h *BarberHandler) List(c *gin.Context) {
	includeInactive := c.Query("includeInactive") == "true"

	users, err := h.list.Execute(c.Request.Context(), includeInactive)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Items(c, dto.NewUsers(users))
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	u, err := h.create.Execute(c.Request.Context(), barberuc.CreateBarberInput{
		ActorID:  c.MustGet(middleware.ContextUserID).(uint),
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, dto.NewUser(u))
}

func (h *BarberHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	u, err := h.update.Execute(c.Request.Context(), barberuc.UpdateBarberInput{
		ActorID:  c.MustGet(middleware.ContextUserID).(uint),
		ID:       id,
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewUser(u))
}

// Deactivate serves both DELETE /barberos/:id and PUT /bloquear/:id.
func (h *BarberHandler) Deactivate(c *gin.Context) {
	h.setActive(c, false)
}

func (h *BarberHandler) Activate(c *gin.Context) {
	h.setActive(c, true)
}

func (h *BarberHandler) setActive(c *gin.Context, active bool) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	u, err := h.active.Execute(
		c.Request.Context(),
		c.MustGet(middleware.ContextUserID).(uint),
		id,
		active,
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewUser(u))
}

func (h *BarberHandler) UploadAvatar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, media.MaxUploadBytes+1<<20)

	fh, err := c.FormFile("avatar")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Archivo 'avatar' requerido.")
		return
	}
	if fh.Size > media.MaxUploadBytes {
		httperr.Respond(c, media.ErrImageTooLarge)
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	defer f.Close()

	u, err := h.avatar.Execute(
		c.Request.Context(),
		c.MustGet(middleware.ContextUserID).(uint),
		id,
		f,
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, dto.NewUser(u))
}
