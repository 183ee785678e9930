package role

import (
	"context"
	"fmt"

	"pharmacy/internal/model"
)

// Admin has every Manager capability plus the manager registry listing.
// It shares the Manager's services and therefore its store session.
type Admin struct {
	*Manager
}

// NewAdmin extends m with admin capabilities.
func NewAdmin(m *Manager) *Admin {
	return &Admin{Manager: m}
}

// ListManagers prints every registered manager.
func (a *Admin) ListManagers(ctx context.Context) {
	managers, err := a.managers.List(ctx)
	if err != nil {
		a.fail("Error viewing managers", err)
		return
	}
	if len(managers) == 0 {
		a.printf("No managers registered.\n")
		return
	}
	a.printf("Registered Managers:\n")
	for _, mg := range managers {
		a.printf("%s\n", FormatManager(mg))
	}
}

// FormatManager renders one registry line.
func FormatManager(mg model.Manager) string {
	return fmt.Sprintf("SR.No: %d, Manager Name: %s, Pharmacy Name: %s", mg.ID, mg.Name, mg.PharmacyName)
}
