package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/altamar/portal/internal/domain"
	"github.com/altamar/portal/internal/service"
)

// AuthHandler serves login and registration.
type AuthHandler struct {
	accounts *service.AccountService
}

// NewAuthHandler builds an AuthHandler.
func NewAuthHandler(accounts *service.AccountService) *AuthHandler {
	return &AuthHandler{accounts: accounts}
}

// Register mounts the auth routes.
func (h *AuthHandler) Register(g *echo.Group) {
	g.POST("/login", h.login)
	g.POST("/admin/login", h.adminLogin)
	g.POST("/register", h.register)
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Domain   string `json:"domain" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type adminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Domain   string `json:"domain" validate:"required"`
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (h *AuthHandler) login(c echo.Context) error {
	var req loginRequest
	if err := Bind(c, &req); err != nil {
		return Error(c, err)
	}

	user, token, err := h.accounts.LoginCustomer(c.Request().Context(), req.Username, req.Domain, req.Password)
	if err != nil {
		return Error(c, err)
	}
	return c.JSON(http.StatusOK, sessionFor(user, token))
}

func (h *AuthHandler) adminLogin(c echo.Context) error {
	var req adminLoginRequest
	if err := Bind(c, &req); err != nil {
		return Error(c, err)
	}

	user, token, err := h.accounts.LoginAdmin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return Error(c, err)
	}
	return c.JSON(http.StatusOK, sessionFor(user, token))
}

func (h *AuthHandler) register(c echo.Context) error {
	var req registerRequest
	if err := Bind(c, &req); err != nil {
		return Error(c, err)
	}

	user, err := h.accounts.RegisterCustomer(c.Request().Context(), service.RegisterCustomerParams{
		ServerName: req.Domain,
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
	})
	if err != nil {
		return Error(c, err)
	}
	return c.JSON(http.StatusCreated, map[string]string{
		"user_id":  user.ID.String(),
		"username": user.Username,
	})
}

func sessionFor(user domain.User, token string) sessionResponse {
	return sessionResponse{
		Token:    token,
		UserID:   user.ID.String(),
		Username: user.Username,
		Role:     user.Role,
	}
}
