// Package role holds the operator-facing capability sets. Each operation
// reports its outcome as text and never returns a store error to the caller.
package role

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	apperrors "pharmacy/internal/errors"
	"pharmacy/internal/model"
	"pharmacy/internal/service"
)

// Manager exposes the day-to-day inventory operations.
type Manager struct {
	managers  service.ManagerService
	inventory service.InventoryService
	out       io.Writer
	logger    *log.Logger
}

// NewManager builds the manager capability set over shared services.
func NewManager(managers service.ManagerService, inventory service.InventoryService, out io.Writer, logger *log.Logger) *Manager {
	return &Manager{
		managers:  managers,
		inventory: inventory,
		out:       out,
		logger:    logger,
	}
}

// Register records a new manager.
func (m *Manager) Register(ctx context.Context, name, pharmacyName string) {
	manager, err := m.managers.Register(ctx, name, pharmacyName)
	if err != nil {
		m.fail("Error registering manager", err)
		return
	}
	m.logger.Debug("manager registered", "id", manager.ID, "name", manager.Name)
	m.printf("Manager registered successfully!\n")
}

// Login reports whether a manager with this exact name exists.
func (m *Manager) Login(ctx context.Context, name string) bool {
	_, err := m.managers.Login(ctx, name)
	switch {
	case err == nil:
		m.printf("Welcome, %s!\n", name)
		return true
	case errors.Is(err, apperrors.ErrManagerNotFound):
		m.printf("Invalid manager name. Please try again.\n")
		return false
	default:
		m.fail("Error logging in", err)
		return false
	}
}

// AddMedicine stocks a new medicine dated today.
func (m *Manager) AddMedicine(ctx context.Context, name string, quantity int) {
	medicine, err := m.inventory.AddMedicine(ctx, name, quantity)
	if err != nil {
		m.fail("Error adding medicine", err)
		return
	}
	m.logger.Debug("medicine added", "id", medicine.ID, "name", medicine.Name, "qty", medicine.Quantity)
	m.printf("Medicine added successfully!\n")
}

// ListMedicines prints every medicine in store order.
func (m *Manager) ListMedicines(ctx context.Context) {
	medicines, err := m.inventory.ListMedicines(ctx)
	if err != nil {
		m.fail("Error viewing medicines", err)
		return
	}
	if len(medicines) == 0 {
		m.printf("No medicines available.\n")
		return
	}
	m.printf("Available Medicines:\n")
	for _, med := range medicines {
		m.printf("%s\n", FormatMedicine(med))
	}
}

// DeleteMedicine removes the medicine with the given SR.No. Success is
// reported whether or not a row matched.
func (m *Manager) DeleteMedicine(ctx context.Context, id uint) {
	n, err := m.inventory.DeleteMedicine(ctx, id)
	if err != nil {
		m.fail("Error deleting medicine", err)
		return
	}
	if n == 0 {
		m.logger.Debug("delete matched no medicine", "id", id)
	}
	m.printf("Medicine with SR.No %d deleted successfully!\n", id)
}

// FormatMedicine renders one inventory line.
func FormatMedicine(med model.Medicine) string {
	return fmt.Sprintf("SR.No: %d, Medicine Name: %s, Qty: %d, Added Date: %s, Added By: %s, Price: %s",
		med.ID, med.Name, med.Quantity, med.AddedDate.Format(model.DateLayout), med.AddedBy, med.PriceString())
}

func (m *Manager) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

// fail prints the store failure for the operator and logs it.
func (m *Manager) fail(msg string, err error) {
	cause := err
	var se *apperrors.StoreError
	if errors.As(err, &se) {
		cause = se.Err
	}
	m.logger.Error(msg, "err", err)
	m.printf("%s: %v\n", msg, cause)
}
