package services

import (
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/nexuscoliving/finanzas-backend/models"
)

// fakePaymentStore is an in-memory PaymentStore
type fakePaymentStore struct {
	payments map[int]*models.Payment
	nextID   int
	listErr  error
	updated  []*models.Payment
	deleted  []int
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{payments: make(map[int]*models.Payment), nextID: 1}
}

func (s *fakePaymentStore) CreatePayment(payment *models.Payment) error {
	payment.ID = s.nextID
	s.nextID++
	copied := *payment
	s.payments[payment.ID] = &copied
	return nil
}

func (s *fakePaymentStore) ListPayments(filter models.PaymentFilter) ([]models.Payment, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var payments []models.Payment
	for _, payment := range s.payments {
		payments = append(payments, *payment)
	}
	return payments, nil
}

func (s *fakePaymentStore) GetPaymentByID(id int) (*models.Payment, error) {
	payment, ok := s.payments[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *payment
	return &copied, nil
}

func (s *fakePaymentStore) UpdatePayment(payment *models.Payment) error {
	copied := *payment
	s.payments[payment.ID] = &copied
	s.updated = append(s.updated, &copied)
	return nil
}

func (s *fakePaymentStore) DeletePayment(id int) error {
	delete(s.payments, id)
	s.deleted = append(s.deleted, id)
	return nil
}

// fakeExpenseStore is an in-memory ExpenseStore
type fakeExpenseStore struct {
	expenses map[int]*models.Expense
	nextID   int
	listErr  error
	deleted  []int
}

func newFakeExpenseStore() *fakeExpenseStore {
	return &fakeExpenseStore{expenses: make(map[int]*models.Expense), nextID: 1}
}

func (s *fakeExpenseStore) CreateExpense(expense *models.Expense) error {
	expense.ID = s.nextID
	s.nextID++
	copied := *expense
	s.expenses[expense.ID] = &copied
	return nil
}

func (s *fakeExpenseStore) ListExpenses(filter models.ExpenseFilter) ([]models.Expense, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var expenses []models.Expense
	for _, expense := range s.expenses {
		expenses = append(expenses, *expense)
	}
	return expenses, nil
}

func (s *fakeExpenseStore) GetExpenseByID(id int) (*models.Expense, error) {
	expense, ok := s.expenses[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := *expense
	return &copied, nil
}

func (s *fakeExpenseStore) UpdateExpense(expense *models.Expense) error {
	copied := *expense
	s.expenses[expense.ID] = &copied
	return nil
}

func (s *fakeExpenseStore) DeleteExpense(id int) error {
	delete(s.expenses, id)
	s.deleted = append(s.deleted, id)
	return nil
}

// fakeDocumentStore records uploads and removals; uploads can be made to
// fail by position in the call sequence
type fakeDocumentStore struct {
	uploads    []string
	removed    map[string][]string
	failCalls  map[int]bool
	callNumber int
}

func newFakeDocumentStore() *fakeDocumentStore {
	return &fakeDocumentStore{
		removed:   make(map[string][]string),
		failCalls: make(map[int]bool),
	}
}

func (s *fakeDocumentStore) Upload(bucket, key string, reader io.Reader, size int64) (string, error) {
	s.callNumber++
	if s.failCalls[s.callNumber] {
		return "", errors.New("upload failed")
	}
	s.uploads = append(s.uploads, key)
	return fmt.Sprintf("/uploads/%s/%s", bucket, key), nil
}

func (s *fakeDocumentStore) Remove(bucket string, keys []string) error {
	s.removed[bucket] = append(s.removed[bucket], keys...)
	return nil
}

// fakeCatalogStore serves fixed reference data
type fakeCatalogStore struct {
	suppliers  []models.Supplier
	categories []models.ExpenseCategory
	tribes     []models.Tribe
	rooms      []models.Room
}

func (s *fakeCatalogStore) ListSuppliers() ([]models.Supplier, error) {
	return s.suppliers, nil
}

func (s *fakeCatalogStore) ListExpenseCategories() ([]models.ExpenseCategory, error) {
	return s.categories, nil
}

func (s *fakeCatalogStore) ListTribes() ([]models.Tribe, error) {
	return s.tribes, nil
}

func (s *fakeCatalogStore) ListRooms() ([]models.Room, error) {
	return s.rooms, nil
}

// fakeSupplierStore is an in-memory SupplierStore
type fakeSupplierStore struct {
	suppliers []models.Supplier
	created   []*models.Supplier
}

func (s *fakeSupplierStore) ListSuppliers() ([]models.Supplier, error) {
	return s.suppliers, nil
}

func (s *fakeSupplierStore) GetSupplierByName(name string) (*models.Supplier, error) {
	for i := range s.suppliers {
		if s.suppliers[i].Name == name {
			return &s.suppliers[i], nil
		}
	}
	return nil, nil
}

func (s *fakeSupplierStore) CreateSupplier(supplier *models.Supplier) error {
	supplier.ID = len(s.suppliers) + 1
	s.suppliers = append(s.suppliers, *supplier)
	s.created = append(s.created, supplier)
	return nil
}

// fakeUserStore is an in-memory UserStore
type fakeUserStore struct {
	users    map[string]*models.UserInfo
	latest   *models.UserInfo
	upserted map[string]string
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		users:    make(map[string]*models.UserInfo),
		upserted: make(map[string]string),
	}
}

func (s *fakeUserStore) GetUserByEmail(email string) (*models.UserInfo, error) {
	return s.users[email], nil
}

func (s *fakeUserStore) UpsertUserInfo(email, username string) error {
	s.upserted[email] = username
	s.users[email] = &models.UserInfo{Email: email, Username: username}
	return nil
}

func (s *fakeUserStore) GetLatestUser() (*models.UserInfo, error) {
	return s.latest, nil
}

// fixedActor resolves every request to the same name
type fixedActor struct {
	name   string
	emails []string
}

func (a *fixedActor) ResolveActorName(sessionEmail string) string {
	a.emails = append(a.emails, sessionEmail)
	return a.name
}
