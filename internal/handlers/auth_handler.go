package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/recipe-nest/internal/dto"
	"github.com/BruksfildServices01/recipe-nest/internal/httperr"
	"github.com/BruksfildServices01/recipe-nest/internal/httpresp"
	ucAuth "github.com/BruksfildServices01/recipe-nest/internal/usecase/auth"
)

type AuthHandler struct {
	signup *ucAuth.Signup
	login  *ucAuth.Login
}

func NewAuthHandler(
	signup *ucAuth.Signup,
	login *ucAuth.Login,
) *AuthHandler {
	return &AuthHandler{
		signup: signup,
		login:  login,
	}
}

// --------- Requests ---------

type SignupRequest struct {
	Name      string  `json:"name" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=6"`
	Role      string  `json:"role" binding:"required"`
	RoleTitle *string `json:"roleTitle"`
	Specialty *string `json:"specialty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return
	}

	u, err := h.signup.Execute(c.Request.Context(), ucAuth.SignupInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
		RoleTitle: req.RoleTitle,
		Specialty: req.Specialty,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, dto.NewUserProfile(u))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, dto.LoginResponseDTO{
		Token: res.Token,
		User:  dto.NewUserProfile(res.User),
	})
}
