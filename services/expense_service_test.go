package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexuscoliving/finanzas-backend/models"
	"github.com/nexuscoliving/finanzas-backend/utils"
)

func expenseRequestFixture() *models.ExpenseRequest {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return &models.ExpenseRequest{
		Date:          date,
		DueDate:       date.AddDate(0, 0, 15),
		SupplierID:    1,
		CategoryID:    1,
		Amount:        250,
		PaymentMethod: "transferencia",
		Status:        "pendiente",
	}
}

func catalogFixture() *fakeCatalogStore {
	return &fakeCatalogStore{
		suppliers:  []models.Supplier{{ID: 1, Name: "Aguas del Norte"}},
		categories: []models.ExpenseCategory{{ID: 1, Name: "Servicios"}},
		tribes:     []models.Tribe{{ID: 1, Name: "Tribu Centro"}},
		rooms:      []models.Room{{ID: 10, RoomNumber: "101", TribeID: 1}},
	}
}

func newExpenseServiceForTest(store *fakeExpenseStore, docs *fakeDocumentStore) *ExpenseService {
	return NewExpenseService(store, catalogFixture(), docs, &fixedActor{name: "Maria"})
}

func TestExpenseService_CreateExpense_RejectsUnknownStatus(t *testing.T) {
	service := newExpenseServiceForTest(newFakeExpenseStore(), newFakeDocumentStore())

	req := expenseRequestFixture()
	req.Status = "cancelado"

	_, err := service.CreateExpense(req, nil, "")
	assert.Error(t, err)
}

func TestExpenseService_ListExpenses_ResolvesNamesInMemory(t *testing.T) {
	store := newFakeExpenseStore()
	service := newExpenseServiceForTest(store, newFakeDocumentStore())

	req := expenseRequestFixture()
	tribeID, roomID := 1, 10
	req.TribeID = &tribeID
	req.RoomID = &roomID

	_, err := service.CreateExpense(req, nil, "")
	require.NoError(t, err)

	expenses := service.ListExpenses(models.ExpenseFilter{})

	require.Len(t, expenses, 1)
	assert.Equal(t, "Aguas del Norte", expenses[0].SupplierName)
	assert.Equal(t, "Servicios", expenses[0].CategoryName)
	assert.Equal(t, "Tribu Centro", expenses[0].TribeName)
	assert.Equal(t, "101", expenses[0].RoomNumber)
}

func TestExpenseService_ListExpenses_PlaceholderForDanglingForeignKey(t *testing.T) {
	store := newFakeExpenseStore()
	service := newExpenseServiceForTest(store, newFakeDocumentStore())

	req := expenseRequestFixture()
	req.SupplierID = 99 // no such supplier
	req.CategoryID = 99 // no such category

	_, err := service.CreateExpense(req, nil, "")
	require.NoError(t, err)

	expenses := service.ListExpenses(models.ExpenseFilter{})

	// The row survives with placeholders instead of being dropped by a join
	require.Len(t, expenses, 1)
	assert.Equal(t, utils.SupplierNotFound, expenses[0].SupplierName)
	assert.Equal(t, utils.CategoryNotFound, expenses[0].CategoryName)
}

func TestExpenseService_ListExpenses_ReturnsEmptyOnStoreFailure(t *testing.T) {
	store := newFakeExpenseStore()
	store.listErr = errors.New("connection refused")
	service := newExpenseServiceForTest(store, newFakeDocumentStore())

	expenses := service.ListExpenses(models.ExpenseFilter{})

	assert.NotNil(t, expenses)
	assert.Empty(t, expenses)
}

func TestExpenseService_GetExpenseSummary(t *testing.T) {
	store := newFakeExpenseStore()
	service := newExpenseServiceForTest(store, newFakeDocumentStore())

	amounts := []struct {
		amount float64
		method string
		status string
	}{
		{100, "efectivo", "pagado"},
		{50, "transferencia", "pendiente"},
		{25, "tarjeta_credito", "pendiente"},
	}
	for _, a := range amounts {
		req := expenseRequestFixture()
		req.Amount = a.amount
		req.PaymentMethod = a.method
		req.Status = a.status
		_, err := service.CreateExpense(req, nil, "")
		require.NoError(t, err)
	}

	summary := service.GetExpenseSummary(models.ExpenseFilter{})

	assert.Equal(t, float64(175), summary.Total)
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, float64(100), summary.Efectivo)
	assert.Equal(t, float64(50), summary.Transferencia)
	assert.Equal(t, float64(25), summary.TarjetaCredito)
	assert.Equal(t, float64(0), summary.TarjetaDebito)
	assert.Equal(t, float64(100), summary.Pagado)
	assert.Equal(t, float64(75), summary.Pendiente)
}

func TestExpenseService_DeleteExpense_RemovesDocumentsFirst(t *testing.T) {
	store := newFakeExpenseStore()
	docs := newFakeDocumentStore()
	service := newExpenseServiceForTest(store, docs)

	expense, err := service.CreateExpense(expenseRequestFixture(),
		[]models.DocumentFile{documentFileFixture("factura.pdf")}, "")
	require.NoError(t, err)
	require.Len(t, expense.DocumentIDs, 1)

	require.NoError(t, service.DeleteExpense(expense.ID))

	assert.Equal(t, expense.DocumentIDs, docs.removed[utils.ExpenseDocumentsBucket])
	assert.Equal(t, []int{expense.ID}, store.deleted)
}

func TestExpenseService_DeleteExpense_LegacySingleDocumentFallback(t *testing.T) {
	store := newFakeExpenseStore()
	docs := newFakeDocumentStore()
	service := newExpenseServiceForTest(store, docs)

	expense, err := service.CreateExpense(expenseRequestFixture(), nil, "")
	require.NoError(t, err)

	stored := store.expenses[expense.ID]
	stored.DocumentID = "legacy.pdf"

	require.NoError(t, service.DeleteExpense(expense.ID))

	assert.Equal(t, []string{"legacy.pdf"}, docs.removed[utils.ExpenseDocumentsBucket])
}

func TestExpenseService_UpdateExpense_RemovesDocumentsByOriginalIndex(t *testing.T) {
	store := newFakeExpenseStore()
	service := newExpenseServiceForTest(store, newFakeDocumentStore())

	expense, err := service.CreateExpense(expenseRequestFixture(), nil, "")
	require.NoError(t, err)

	stored := store.expenses[expense.ID]
	stored.DocumentURLs = []string{"/u/a.pdf", "/u/b.pdf", "/u/c.pdf"}
	stored.DocumentIDs = []string{"a.pdf", "b.pdf", "c.pdf"}

	updated, err := service.UpdateExpense(expense.ID, expenseRequestFixture(), nil, []int{0, 2}, "maria@nexus.com")

	require.NoError(t, err)
	assert.Equal(t, []string{"b.pdf"}, updated.DocumentIDs)
	assert.Equal(t, "maria@nexus.com", updated.UpdatedBy)
}

func TestExpenseService_UpdateExpense_RemovingLastDocumentStoresNull(t *testing.T) {
	store := newFakeExpenseStore()
	service := newExpenseServiceForTest(store, newFakeDocumentStore())

	expense, err := service.CreateExpense(expenseRequestFixture(), nil, "")
	require.NoError(t, err)

	stored := store.expenses[expense.ID]
	stored.DocumentURLs = []string{"/u/a.pdf"}
	stored.DocumentIDs = []string{"a.pdf"}

	updated, err := service.UpdateExpense(expense.ID, expenseRequestFixture(), nil, []int{0}, "")

	require.NoError(t, err)
	// Cleared arrays go back to NULL, matching rows created documentless
	assert.Nil(t, updated.DocumentURLs)
	assert.Nil(t, updated.DocumentIDs)
	assert.Nil(t, store.expenses[expense.ID].DocumentURLs)
	assert.Nil(t, store.expenses[expense.ID].DocumentIDs)
}
