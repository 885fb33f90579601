// repository/expense_repository.go
package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/nexuscoliving/finanzas-backend/models"
)

// ExpenseRepository handles database operations for expenses
type ExpenseRepository struct {
	db *sql.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *sql.DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

var expenseDateColumns = map[string]string{
	"date":         "date",
	"due_date":     "due_date",
	"payment_date": "payment_date",
}

const expenseSelectColumns = `
	id, date, due_date, payment_date, supplier_id, category_id, tribe_id, room_id,
	amount, payment_method, status, invoice_number, description, bank_account,
	document_urls, document_ids, document_url, document_id,
	created_by, updated_by, created_at, updated_at`

// CreateExpense inserts an expense row and fills the generated fields
func (r *ExpenseRepository) CreateExpense(expense *models.Expense) error {
	query := `
		INSERT INTO expenses
			(date, due_date, payment_date, supplier_id, category_id, tribe_id, room_id,
			 amount, payment_method, status, invoice_number, description, bank_account,
			 document_urls, document_ids, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(query,
		expense.Date, expense.DueDate, expense.PaymentDate, expense.SupplierID,
		expense.CategoryID, expense.TribeID, expense.RoomID, expense.Amount,
		expense.PaymentMethod, expense.Status, nullString(expense.InvoiceNumber),
		nullString(expense.Description), nullString(expense.BankAccount),
		pq.Array(expense.DocumentURLs), pq.Array(expense.DocumentIDs), expense.CreatedBy,
	).Scan(&expense.ID, &expense.CreatedAt, &expense.UpdatedAt)
}

// ListExpenses retrieves base expense rows without relational joins.
// Suppliers, categories, tribes and rooms are joined in memory by the
// service so a dangling foreign key never drops a row.
func (r *ExpenseRepository) ListExpenses(filter models.ExpenseFilter) ([]models.Expense, error) {
	column, ok := expenseDateColumns[filter.FilterField]
	if !ok {
		column = expenseDateColumns["date"]
	}

	query := `SELECT ` + expenseSelectColumns + ` FROM expenses`

	var args []interface{}
	var conditions []string
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions = append(conditions, fmt.Sprintf("%s >= $%d", column, len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("%s <= $%d", column, len(args)))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %v", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %v", err)
		}
		expenses = append(expenses, *expense)
	}
	return expenses, rows.Err()
}

// GetExpenseByID retrieves one base expense row
func (r *ExpenseRepository) GetExpenseByID(id int) (*models.Expense, error) {
	query := `SELECT ` + expenseSelectColumns + ` FROM expenses WHERE id = $1`
	return scanExpense(r.db.QueryRow(query, id))
}

// UpdateExpense updates the scalar fields and document arrays of an expense
func (r *ExpenseRepository) UpdateExpense(expense *models.Expense) error {
	query := `
		UPDATE expenses SET
			date = $1, due_date = $2, payment_date = $3, supplier_id = $4,
			category_id = $5, tribe_id = $6, room_id = $7, amount = $8,
			payment_method = $9, status = $10, invoice_number = $11, description = $12,
			bank_account = $13, document_urls = $14, document_ids = $15,
			updated_by = $16, updated_at = now()
		WHERE id = $17
	`
	_, err := r.db.Exec(query,
		expense.Date, expense.DueDate, expense.PaymentDate, expense.SupplierID,
		expense.CategoryID, expense.TribeID, expense.RoomID, expense.Amount,
		expense.PaymentMethod, expense.Status, nullString(expense.InvoiceNumber),
		nullString(expense.Description), nullString(expense.BankAccount),
		pq.Array(expense.DocumentURLs), pq.Array(expense.DocumentIDs),
		nullString(expense.UpdatedBy), expense.ID,
	)
	return err
}

// DeleteExpense deletes an expense row by ID
func (r *ExpenseRepository) DeleteExpense(id int) error {
	_, err := r.db.Exec("DELETE FROM expenses WHERE id = $1", id)
	return err
}

// scanExpense reads one base expense row from a row scanner
func scanExpense(row interface{ Scan(...interface{}) error }) (*models.Expense, error) {
	var expense models.Expense
	var paymentDate sql.NullTime
	var tribeID, roomID sql.NullInt64
	var invoiceNumber, description, bankAccount, docURL, docID, updatedBy sql.NullString

	err := row.Scan(
		&expense.ID, &expense.Date, &expense.DueDate, &paymentDate,
		&expense.SupplierID, &expense.CategoryID, &tribeID, &roomID,
		&expense.Amount, &expense.PaymentMethod, &expense.Status,
		&invoiceNumber, &description, &bankAccount,
		pq.Array(&expense.DocumentURLs), pq.Array(&expense.DocumentIDs), &docURL, &docID,
		&expense.CreatedBy, &updatedBy, &expense.CreatedAt, &expense.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if paymentDate.Valid {
		expense.PaymentDate = &paymentDate.Time
	}
	if tribeID.Valid {
		id := int(tribeID.Int64)
		expense.TribeID = &id
	}
	if roomID.Valid {
		id := int(roomID.Int64)
		expense.RoomID = &id
	}
	expense.InvoiceNumber = invoiceNumber.String
	expense.Description = description.String
	expense.BankAccount = bankAccount.String
	expense.DocumentURL = docURL.String
	expense.DocumentID = docID.String
	expense.UpdatedBy = updatedBy.String
	return &expense, nil
}
