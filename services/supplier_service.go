// services/supplier_service.go
package services

import (
	"strings"

	"github.com/nexuscoliving/finanzas-backend/models"
	"github.com/nexuscoliving/finanzas-backend/utils"
)

// SupplierStore is the persistence surface the supplier service needs
type SupplierStore interface {
	ListSuppliers() ([]models.Supplier, error)
	GetSupplierByName(name string) (*models.Supplier, error)
	CreateSupplier(supplier *models.Supplier) error
}

// SupplierService handles ad hoc supplier creation from the expense form
type SupplierService struct {
	suppliers SupplierStore
}

// NewSupplierService creates a new supplier service
func NewSupplierService(suppliers SupplierStore) *SupplierService {
	return &SupplierService{suppliers: suppliers}
}

// CreateSupplier validates the request and rejects duplicate names before
// inserting. The existence check and the insert are separate store calls;
// two concurrent creates of the same name can both pass the check.
func (s *SupplierService) CreateSupplier(req *models.CreateSupplierRequest) (*models.Supplier, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, utils.NewValidationError(utils.ErrSupplierNameRequired)
	}

	email := strings.TrimSpace(req.Email)
	if email != "" {
		if err := utils.ValidateEmail(email); err != nil {
			return nil, err
		}
	}

	existing, err := s.suppliers.GetSupplierByName(name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.NewValidationError(utils.ErrSupplierDuplicate)
	}

	supplier := &models.Supplier{
		Name:          name,
		ContactPerson: strings.TrimSpace(req.ContactPerson),
		Phone:         strings.TrimSpace(req.Phone),
		Email:         email,
		Address:       strings.TrimSpace(req.Address),
	}
	if err := s.suppliers.CreateSupplier(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// ListSuppliers returns all suppliers for the expense form dropdown
func (s *SupplierService) ListSuppliers() ([]models.Supplier, error) {
	return s.suppliers.ListSuppliers()
}
