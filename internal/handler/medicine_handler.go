package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"pharmacy/internal/service"
)

// MedicineHandler handles inventory endpoints.
type MedicineHandler struct {
	inventoryService service.InventoryService
}

// NewMedicineHandler creates a new medicine handler.
func NewMedicineHandler(inventoryService service.InventoryService) *MedicineHandler {
	return &MedicineHandler{inventoryService: inventoryService}
}

// AddMedicineRequest represents a request to stock a medicine.
type AddMedicineRequest struct {
	Name     string `json:"name" validate:"required"`
	Quantity *int   `json:"quantity" validate:"required"`
}

// DeleteResponse reports how many rows a delete removed.
type DeleteResponse struct {
	ID      uint  `json:"id"`
	Deleted int64 `json:"deleted"`
}

// Add godoc
// @Summary Add a medicine
// @Tags medicines
// @Accept json
// @Produce json
// @Param request body AddMedicineRequest true "Medicine data"
// @Success 201 {object} model.Medicine
// @Failure 400 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /medicines [post]
func (h *MedicineHandler) Add(c echo.Context) error {
	var req AddMedicineRequest
	if err := c.Bind(&req); err != nil {
		return httpError(invalidInput("request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return httpError(invalidInput("validation", err))
	}

	medicine, err := h.inventoryService.AddMedicine(c.Request().Context(), req.Name, *req.Quantity)
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusCreated, medicine)
}

// List godoc
// @Summary List all medicines
// @Tags medicines
// @Produce json
// @Success 200 {array} model.Medicine
// @Failure 503 {object} errors.ErrorResponse
// @Router /medicines [get]
func (h *MedicineHandler) List(c echo.Context) error {
	medicines, err := h.inventoryService.ListMedicines(c.Request().Context())
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, medicines)
}

// Delete godoc
// @Summary Delete a medicine by SR.No
// @Description Responds 200 even when nothing matched; deleted is 0 in that case.
// @Tags medicines
// @Produce json
// @Param id path int true "Medicine SR.No"
// @Success 200 {object} DeleteResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /medicines/{id} [delete]
func (h *MedicineHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil {
		return httpError(invalidInput("medicine ID", err))
	}

	n, err := h.inventoryService.DeleteMedicine(c.Request().Context(), uint(id))
	if err != nil {
		return httpError(err)
	}

	return c.JSON(http.StatusOK, DeleteResponse{ID: uint(id), Deleted: n})
}
