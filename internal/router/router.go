package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"pharmacy/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	managerHandler *handler.ManagerHandler,
	medicineHandler *handler.MedicineHandler,
) {
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	api := e.Group("/api")

	// Manager registry
	api.POST("/managers", managerHandler.Register)
	api.POST("/managers/login", managerHandler.Login)
	api.GET("/managers", managerHandler.List)

	// Inventory
	api.POST("/medicines", medicineHandler.Add)
	api.GET("/medicines", medicineHandler.List)
	api.DELETE("/medicines/:id", medicineHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
