package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexuscoliving/finanzas-backend/models"
)

func TestSupplierService_CreateSupplier(t *testing.T) {
	store := &fakeSupplierStore{}
	service := NewSupplierService(store)

	supplier, err := service.CreateSupplier(&models.CreateSupplierRequest{
		Name:  "  Acme  ",
		Email: "ventas@acme.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "Acme", supplier.Name)
	assert.Equal(t, "ventas@acme.com", supplier.Email)
	assert.NotZero(t, supplier.ID)
}

func TestSupplierService_CreateSupplier_RejectsDuplicateName(t *testing.T) {
	store := &fakeSupplierStore{
		suppliers: []models.Supplier{{ID: 1, Name: "Acme"}},
	}
	service := NewSupplierService(store)

	_, err := service.CreateSupplier(&models.CreateSupplierRequest{Name: "Acme"})

	assert.Error(t, err)
	// Nothing was inserted
	assert.Empty(t, store.created)
}

func TestSupplierService_CreateSupplier_RequiresName(t *testing.T) {
	service := NewSupplierService(&fakeSupplierStore{})

	_, err := service.CreateSupplier(&models.CreateSupplierRequest{Name: "   "})
	assert.Error(t, err)
}

func TestSupplierService_CreateSupplier_RejectsMalformedEmail(t *testing.T) {
	service := NewSupplierService(&fakeSupplierStore{})

	_, err := service.CreateSupplier(&models.CreateSupplierRequest{
		Name:  "Acme",
		Email: "not-an-email",
	})
	assert.Error(t, err)
}

func TestSupplierService_CreateSupplier_EmailIsOptional(t *testing.T) {
	service := NewSupplierService(&fakeSupplierStore{})

	supplier, err := service.CreateSupplier(&models.CreateSupplierRequest{Name: "Acme"})

	require.NoError(t, err)
	assert.Empty(t, supplier.Email)
}
