package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"pharmacy/internal/service"
)

// ManagerHandler handles manager registry endpoints.
type ManagerHandler struct {
	managerService service.ManagerService
}

// NewManagerHandler creates a new manager handler.
func NewManagerHandler(managerService service.ManagerService) *ManagerHandler {
	return &ManagerHandler{managerService: managerService}
}

// RegisterManagerRequest represents a manager registration request.
type RegisterManagerRequest struct {
	Name         string `json:"name" validate:"required"`
	PharmacyName string `json:"pharmacy_name" validate:"required"`
}

// LoginRequest represents a manager login request. Only the name is checked.
type LoginRequest struct {
	Name string `json:"name" validate:"required"`
}

// LoginResponse represents a login outcome.
type LoginResponse struct {
	LoggedIn bool `json:"logged_in"`
	ID       uint `json:"id"`
}

// Register godoc
// @Summary Register a manager
// @Tags managers
// @Accept json
// @Produce json
// @Param request body RegisterManagerRequest true "Manager data"
// @Success 201 {object} model.Manager
// @Failure 400 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /managers [post]
func (h *ManagerHandler) Register(c echo.Context) error {
	var req RegisterManagerRequest
	if err := c.Bind(&req); err != nil {
		return httpError(invalidInput("request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return httpError(invalidInput("validation", err))
	}

	manager, err := h.managerService.Register(c.Request().Context(), req.Name, req.PharmacyName)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, manager)
}

// Login godoc
// @Summary Check that a manager name is registered
// @Tags managers
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Manager name"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /managers/login [post]
func (h *ManagerHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return httpError(invalidInput("request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return httpError(invalidInput("validation", err))
	}

	manager, err := h.managerService.Login(c.Request().Context(), req.Name)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, LoginResponse{LoggedIn: true, ID: manager.ID})
}

// List godoc
// @Summary List registered managers
// @Tags managers
// @Produce json
// @Success 200 {array} model.Manager
// @Failure 503 {object} errors.ErrorResponse
// @Router /managers [get]
func (h *ManagerHandler) List(c echo.Context) error {
	managers, err := h.managerService.List(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, managers)
}
