package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/softbarber/internal/dto"
	"github.com/BruksfildServices01/softbarber/internal/httperr"
	"github.com/BruksfildServices01/softbarber/internal/httpresp"
	"github.com/BruksfildServices01/softbarber/internal/middleware"
	authuc "github.com/BruksfildServices01/softbarber/internal/usecase/auth"
)

// ======================================================
// HANDLER
// ======================================================

type AuthHandler struct {
	register *authuc.Register
	login    *authuc.Login
	logout   *authuc.Logout
	session  *authuc.GetSession
}

func NewAuthHandler(
	register *authuc.Register,
	login *authuc.Login,
	logout *authuc.Logout,
	session *authuc.GetSession,
) *AuthHandler {
	return &AuthHandler{
		register: register,
		login:    login,
		logout:   logout,
		session:  session,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name"`
	LastName string `json:"lastName"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  dto.UserDTO `json:"user"`
}

type SessionResponse struct {
	User  dto.UserDTO `json:"user"`
	Views []string    `json:"views"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	res, err := h.register.Execute(c.Request.Context(), authuc.RegisterInput{
		Name:     req.Name,
		LastName: req.LastName,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, AuthResponse{
		Token: res.Token,
		User:  dto.NewUser(res.User),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.InvalidRequest(c, err)
		return
	}

	res, err := h.login.Execute(c.Request.Context(), authuc.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, AuthResponse{
		Token: res.Token,
		User:  dto.NewUser(res.User),
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.logout.Execute(c.Request.Context(), middleware.SessionFrom(c)); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.NoContent(c)
}

func (h *AuthHandler) Me(c *gin.Context) {
	sc, err := h.session.Execute(c.Request.Context(), middleware.IdentityFrom(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	views := make([]string, 0, len(sc.Views))
	for _, v := range sc.Views {
		views = append(views, string(v))
	}

	httpresp.OK(c, SessionResponse{
		User:  dto.NewUser(sc.User),
		Views: views,
	})
}
