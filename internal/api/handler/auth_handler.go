package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/babycare/store-api/internal/core/ports"
)

// AuthHandler handles registration, login, and claims introspection.
type AuthHandler struct {
	service ports.AuthService
}

func NewAuthHandler(service ports.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "User registration details"
// @Success      201   {object}  statusResponse
// @Failure      400   {object}  statusResponse
// @Failure      500   {object}  statusResponse
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Register(c.Request().Context(), req.Name, req.Email, req.Password); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, statusResponse{
		Success: true,
		Message: "User registered successfully",
	})
}

// Login authenticates a user and returns a signed bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  statusResponse
// @Failure      401   {object}  statusResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.service.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
	})
}

// Me returns the claims embedded in the presented bearer token. The Auth
// middleware has already verified the signature and expiry.
//
// @Summary      Inspect the current token's claims
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dataResponse
// @Failure      401  {object}  statusResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	name, _ := c.Get("name").(string)
	email, _ := c.Get("email").(string)
	role, _ := c.Get("role").(string)

	return c.JSON(http.StatusOK, dataResponse{
		Success: true,
		Message: "Authenticated",
		Data:    claimsResponse{Name: name, Email: email, Role: role},
	})
}
