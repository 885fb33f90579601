// services/expense_service.go
package services

import (
	"database/sql"
	"fmt"
	"log"
	"strconv"

	"github.com/google/uuid"

	"github.com/nexuscoliving/finanzas-backend/models"
	"github.com/nexuscoliving/finanzas-backend/utils"
)

// ExpenseStore is the persistence surface the expense service needs
type ExpenseStore interface {
	CreateExpense(expense *models.Expense) error
	ListExpenses(filter models.ExpenseFilter) ([]models.Expense, error)
	GetExpenseByID(id int) (*models.Expense, error)
	UpdateExpense(expense *models.Expense) error
	DeleteExpense(id int) error
}

// CatalogStore provides the reference data the expense service joins
// against in memory
type CatalogStore interface {
	ListTribes() ([]models.Tribe, error)
	ListRooms() ([]models.Room, error)
	ListExpenseCategories() ([]models.ExpenseCategory, error)
	ListSuppliers() ([]models.Supplier, error)
}

// ExpenseService handles the expense record lifecycle
type ExpenseService struct {
	expenses  ExpenseStore
	catalog   CatalogStore
	documents DocumentStore
	actors    ActorResolver
}

// NewExpenseService creates a new expense service
func NewExpenseService(expenses ExpenseStore, catalog CatalogStore, documents DocumentStore, actors ActorResolver) *ExpenseService {
	return &ExpenseService{
		expenses:  expenses,
		catalog:   catalog,
		documents: documents,
		actors:    actors,
	}
}

// CreateExpense validates the form, uploads attachments best-effort and
// inserts the row
func (s *ExpenseService) CreateExpense(req *models.ExpenseRequest, files []models.DocumentFile, sessionEmail string) (*models.Expense, error) {
	if err := utils.ValidateNonNegative(req.Amount, "amount"); err != nil {
		return nil, err
	}
	if err := utils.ValidateRequired(req.PaymentMethod, "payment_method"); err != nil {
		return nil, err
	}
	if err := utils.ValidateOneOf(req.Status, "status", utils.StatusPendiente, utils.StatusPagado); err != nil {
		return nil, err
	}

	urls, keys := uploadDocuments(s.documents, utils.ExpenseDocumentsBucket, files, batchDocumentKey)

	expense := &models.Expense{
		Date:          req.Date,
		DueDate:       req.DueDate,
		PaymentDate:   req.PaymentDate,
		SupplierID:    req.SupplierID,
		CategoryID:    req.CategoryID,
		TribeID:       req.TribeID,
		RoomID:        req.RoomID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
		InvoiceNumber: req.InvoiceNumber,
		Description:   req.Description,
		BankAccount:   req.BankAccount,
		DocumentURLs:  urls,
		DocumentIDs:   keys,
		CreatedBy:     s.actors.ResolveActorName(sessionEmail),
	}

	if err := s.expenses.CreateExpense(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// ListExpenses returns the filtered expenses with supplier, category, tribe
// and room names resolved in memory. The base rows are fetched first and
// the reference tables as separate bulk queries, so a dangling foreign key
// shows a placeholder instead of dropping the row. A store failure on the
// base query is logged and surfaces as an empty list.
func (s *ExpenseService) ListExpenses(filter models.ExpenseFilter) []models.Expense {
	expenses, err := s.expenses.ListExpenses(filter)
	if err != nil {
		log.Printf("Failed to list expenses: %v", err)
		return []models.Expense{}
	}
	if expenses == nil {
		return []models.Expense{}
	}

	suppliers, categories, tribes, rooms := s.loadCatalogMaps()
	for i := range expenses {
		s.resolveNames(&expenses[i], suppliers, categories, tribes, rooms)
	}
	return expenses
}

// GetExpenseSummary reduces the filtered expenses into per-method and
// per-status totals. Zeroed summary when the underlying read fails.
func (s *ExpenseService) GetExpenseSummary(filter models.ExpenseFilter) models.ExpenseSummary {
	return SummarizeExpenses(s.ListExpenses(filter))
}

// GetExpenseByID retrieves one expense with its names resolved
func (s *ExpenseService) GetExpenseByID(id int) (*models.Expense, error) {
	expense, err := s.expenses.GetExpenseByID(id)
	if err == sql.ErrNoRows {
		return nil, utils.NewNotFoundError("Gasto")
	}
	if err != nil {
		return nil, err
	}

	suppliers, categories, tribes, rooms := s.loadCatalogMaps()
	s.resolveNames(expense, suppliers, categories, tribes, rooms)
	return expense, nil
}

// UpdateExpense mirrors the payment update path: document removal by
// original index, new uploads under expenses/{id}/, updated_by set to the
// raw session email
func (s *ExpenseService) UpdateExpense(id int, req *models.ExpenseRequest, newFiles []models.DocumentFile, documentsToRemove []int, sessionEmail string) (*models.Expense, error) {
	current, err := s.GetExpenseByID(id)
	if err != nil {
		return nil, err
	}
	if err := utils.ValidateOneOf(req.Status, "status", utils.StatusPendiente, utils.StatusPagado); err != nil {
		return nil, err
	}

	urls, keys := documentArraysWithLegacyFallback(
		current.DocumentURLs, current.DocumentIDs, current.DocumentURL, current.DocumentID)
	urls = RemoveByOriginalIndex(urls, documentsToRemove)
	keys = RemoveByOriginalIndex(keys, documentsToRemove)

	newURLs, newKeys := uploadDocuments(s.documents, utils.ExpenseDocumentsBucket, newFiles,
		func(_ int, name string) string {
			return fmt.Sprintf("expenses/%d/%s%s", id, uuid.New().String(), utils.FileExtension(name))
		})
	urls = append(urls, newURLs...)
	keys = append(keys, newKeys...)

	expense := &models.Expense{
		ID:            id,
		Date:          req.Date,
		DueDate:       req.DueDate,
		PaymentDate:   req.PaymentDate,
		SupplierID:    req.SupplierID,
		CategoryID:    req.CategoryID,
		TribeID:       req.TribeID,
		RoomID:        req.RoomID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Status:        req.Status,
		InvoiceNumber: req.InvoiceNumber,
		Description:   req.Description,
		BankAccount:   req.BankAccount,
		DocumentURLs:  urls,
		DocumentIDs:   keys,
		UpdatedBy:     sessionEmail,
	}

	if err := s.expenses.UpdateExpense(expense); err != nil {
		return nil, err
	}
	return s.GetExpenseByID(id)
}

// DeleteExpense removes the attached documents first, falling back to the
// legacy single-document key when the arrays are absent, then deletes the
// row. The two steps are independent store calls, not a transaction; a
// failure in between can orphan either side.
func (s *ExpenseService) DeleteExpense(id int) error {
	expense, err := s.GetExpenseByID(id)
	if err != nil {
		return err
	}

	keys := expense.DocumentIDs
	if len(keys) == 0 && expense.DocumentID != "" {
		keys = []string{expense.DocumentID}
	}
	if len(keys) > 0 {
		if err := s.documents.Remove(utils.ExpenseDocumentsBucket, keys); err != nil {
			log.Printf("Failed to remove documents for expense %d: %v", id, err)
		}
	}

	return s.expenses.DeleteExpense(id)
}

// loadCatalogMaps fetches the reference tables keyed by id. A failed
// catalog read is logged and yields an empty map, which resolves to
// placeholders downstream.
func (s *ExpenseService) loadCatalogMaps() (map[int]models.Supplier, map[int]models.ExpenseCategory, map[int]models.Tribe, map[int]models.Room) {
	supplierMap := make(map[int]models.Supplier)
	if suppliers, err := s.catalog.ListSuppliers(); err != nil {
		log.Printf("Failed to load suppliers: %v", err)
	} else {
		for _, supplier := range suppliers {
			supplierMap[supplier.ID] = supplier
		}
	}

	categoryMap := make(map[int]models.ExpenseCategory)
	if categories, err := s.catalog.ListExpenseCategories(); err != nil {
		log.Printf("Failed to load expense categories: %v", err)
	} else {
		for _, category := range categories {
			categoryMap[category.ID] = category
		}
	}

	tribeMap := make(map[int]models.Tribe)
	if tribes, err := s.catalog.ListTribes(); err != nil {
		log.Printf("Failed to load tribes: %v", err)
	} else {
		for _, tribe := range tribes {
			tribeMap[tribe.ID] = tribe
		}
	}

	roomMap := make(map[int]models.Room)
	if rooms, err := s.catalog.ListRooms(); err != nil {
		log.Printf("Failed to load rooms: %v", err)
	} else {
		for _, room := range rooms {
			roomMap[room.ID] = room
		}
	}

	return supplierMap, categoryMap, tribeMap, roomMap
}

// resolveNames fills the display names on an expense from the catalog maps
func (s *ExpenseService) resolveNames(expense *models.Expense, suppliers map[int]models.Supplier, categories map[int]models.ExpenseCategory, tribes map[int]models.Tribe, rooms map[int]models.Room) {
	if supplier, ok := suppliers[expense.SupplierID]; ok {
		expense.SupplierName = supplier.Name
	} else {
		expense.SupplierName = utils.SupplierNotFound
	}

	if category, ok := categories[expense.CategoryID]; ok {
		expense.CategoryName = category.Name
	} else {
		expense.CategoryName = utils.CategoryNotFound
	}

	if expense.TribeID != nil {
		if tribe, ok := tribes[*expense.TribeID]; ok {
			expense.TribeName = tribe.Name
		} else {
			expense.TribeName = "Tribu " + strconv.Itoa(*expense.TribeID)
		}
	}
	if expense.RoomID != nil {
		if room, ok := rooms[*expense.RoomID]; ok {
			expense.RoomNumber = room.RoomNumber
		} else {
			expense.RoomNumber = strconv.Itoa(*expense.RoomID)
		}
	}
}
