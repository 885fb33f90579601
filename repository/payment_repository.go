// repository/payment_repository.go
package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/nexuscoliving/finanzas-backend/models"
)

// PaymentRepository handles database operations for payments
type PaymentRepository struct {
	db *sql.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Columns a payment date filter may target. Anything else falls back to
// entry_date rather than being interpolated into the query.
var paymentDateColumns = map[string]string{
	"entry_date":             "p.entry_date",
	"estimated_payment_date": "p.estimated_payment_date",
	"actual_payment_date":    "p.actual_payment_date",
}

const paymentSelectColumns = `
	p.id, p.entry_date, p.estimated_payment_date, p.actual_payment_date,
	p.tribe_id, p.room_id, p.rent_amount, p.services_amount, p.amount,
	p.payment_method, p.comments, p.bank_account,
	p.document_urls, p.document_ids, p.document_url, p.document_id,
	p.created_by, p.updated_by, p.created_at, p.updated_at,
	t.name, r.room_number`

// CreatePayment inserts a payment row and fills the generated fields
func (r *PaymentRepository) CreatePayment(payment *models.Payment) error {
	query := `
		INSERT INTO payments
			(entry_date, estimated_payment_date, actual_payment_date, tribe_id, room_id,
			 rent_amount, services_amount, amount, payment_method, comments, bank_account,
			 document_urls, document_ids, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRow(query,
		payment.EntryDate, payment.EstimatedPaymentDate, payment.ActualPaymentDate,
		payment.TribeID, payment.RoomID, payment.RentAmount, payment.ServicesAmount,
		payment.Amount, payment.PaymentMethod, nullString(payment.Comments),
		nullString(payment.BankAccount), pq.Array(payment.DocumentURLs),
		pq.Array(payment.DocumentIDs), payment.CreatedBy,
	).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)
}

// ListPayments retrieves payments joined with tribe name and room number,
// optionally narrowed to a date range over the requested column
func (r *PaymentRepository) ListPayments(filter models.PaymentFilter) ([]models.Payment, error) {
	column, ok := paymentDateColumns[filter.FilterField]
	if !ok {
		column = paymentDateColumns["entry_date"]
	}

	query := `SELECT ` + paymentSelectColumns + `
		FROM payments p
		JOIN tribes t ON p.tribe_id = t.id
		JOIN rooms r ON p.room_id = r.id`

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
	query += " ORDER BY p.entry_date DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get payments: %v", err)
	}
	defer rows.Close()

	var payments []models.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %v", err)
		}
		payments = append(payments, *payment)
	}
	return payments, rows.Err()
}

// GetPaymentByID retrieves one payment with its tribe/room join
func (r *PaymentRepository) GetPaymentByID(id int) (*models.Payment, error) {
	query := `SELECT ` + paymentSelectColumns + `
		FROM payments p
		JOIN tribes t ON p.tribe_id = t.id
		JOIN rooms r ON p.room_id = r.id
		WHERE p.id = $1`

	row := r.db.QueryRow(query, id)
	payment, err := scanPayment(row)
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// UpdatePayment updates the scalar fields and document arrays of a payment
func (r *PaymentRepository) UpdatePayment(payment *models.Payment) error {
	query := `
		UPDATE payments SET
			entry_date = $1, estimated_payment_date = $2, actual_payment_date = $3,
			tribe_id = $4, room_id = $5, rent_amount = $6, services_amount = $7,
			amount = $8, payment_method = $9, comments = $10, bank_account = $11,
			document_urls = $12, document_ids = $13, updated_by = $14, updated_at = now()
		WHERE id = $15
	`
	_, err := r.db.Exec(query,
		payment.EntryDate, payment.EstimatedPaymentDate, payment.ActualPaymentDate,
		payment.TribeID, payment.RoomID, payment.RentAmount, payment.ServicesAmount,
		payment.Amount, payment.PaymentMethod, nullString(payment.Comments),
		nullString(payment.BankAccount), pq.Array(payment.DocumentURLs),
		pq.Array(payment.DocumentIDs), nullString(payment.UpdatedBy), payment.ID,
	)
	return err
}

// DeletePayment deletes a payment row by ID
func (r *PaymentRepository) DeletePayment(id int) error {
	_, err := r.db.Exec("DELETE FROM payments WHERE id = $1", id)
	return err
}

// scanPayment reads one joined payment row from a row scanner
func scanPayment(row interface{ Scan(...interface{}) error }) (*models.Payment, error) {
	var payment models.Payment
	var actualDate sql.NullTime
	var comments, bankAccount, docURL, docID, updatedBy sql.NullString

	err := row.Scan(
		&payment.ID, &payment.EntryDate, &payment.EstimatedPaymentDate, &actualDate,
		&payment.TribeID, &payment.RoomID, &payment.RentAmount, &payment.ServicesAmount,
		&payment.Amount, &payment.PaymentMethod, &comments, &bankAccount,
		pq.Array(&payment.DocumentURLs), pq.Array(&payment.DocumentIDs), &docURL, &docID,
		&payment.CreatedBy, &updatedBy, &payment.CreatedAt, &payment.UpdatedAt,
		&payment.TribeName, &payment.RoomNumber,
	)
	if err != nil {
		return nil, err
	}

	if actualDate.Valid {
		payment.ActualPaymentDate = &actualDate.Time
	}
	payment.Comments = comments.String
	payment.BankAccount = bankAccount.String
	payment.DocumentURL = docURL.String
	payment.DocumentID = docID.String
	payment.UpdatedBy = updatedBy.String
	return &payment, nil
}

// nullString maps "" to SQL NULL
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
