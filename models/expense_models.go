package models

import (
	"time"
)

// Expense represents money paid to a supplier, optionally tied to a tribe/room
type Expense struct {
	ID            int        `json:"id" db:"id"`
	Date          time.Time  `json:"date" db:"date"`
	DueDate       time.Time  `json:"due_date" db:"due_date"`
	PaymentDate   *time.Time `json:"payment_date,omitempty" db:"payment_date"`
	SupplierID    int        `json:"supplier_id" db:"supplier_id"`
	CategoryID    int        `json:"category_id" db:"category_id"`
	TribeID       *int       `json:"tribe_id,omitempty" db:"tribe_id"`
	RoomID        *int       `json:"room_id,omitempty" db:"room_id"`
	Amount        float64    `json:"amount" db:"amount"`
	PaymentMethod string     `json:"payment_method" db:"payment_method"`
	Status        string     `json:"status" db:"status"`
	InvoiceNumber string     `json:"invoice_number,omitempty" db:"invoice_number"`
	Description   string     `json:"description,omitempty" db:"description"`
	BankAccount   string     `json:"bank_account,omitempty" db:"bank_account"`
	DocumentURLs  []string   `json:"document_urls,omitempty" db:"document_urls"`
	DocumentIDs   []string   `json:"document_ids,omitempty" db:"document_ids"`
	DocumentURL   string     `json:"document_url,omitempty" db:"document_url"`
	DocumentID    string     `json:"document_id,omitempty" db:"document_id"`
	CreatedBy     string     `json:"created_by" db:"created_by"`
	UpdatedBy     string     `json:"updated_by,omitempty" db:"updated_by"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at" db:"updated_at"`

	// Filled by the in-memory join on reads, never written
	SupplierName string `json:"supplier_name,omitempty"`
	CategoryName string `json:"category_name,omitempty"`
	TribeName    string `json:"tribe_name,omitempty"`
	RoomNumber   string `json:"room_number,omitempty"`
}

// ExpenseRequest represents the form body for creating or updating an expense
type ExpenseRequest struct {
	Date          time.Time  `form:"date" time_format:"2006-01-02" binding:"required"`
	DueDate       time.Time  `form:"due_date" time_format:"2006-01-02" binding:"required"`
	PaymentDate   *time.Time `form:"payment_date" time_format:"2006-01-02"`
	SupplierID    int        `form:"supplier_id" binding:"required"`
	CategoryID    int        `form:"category_id" binding:"required"`
	TribeID       *int       `form:"tribe_id"`
	RoomID        *int       `form:"room_id"`
	Amount        float64    `form:"amount" binding:"min=0"`
	PaymentMethod string     `form:"payment_method" binding:"required"`
	Status        string     `form:"status" binding:"required"`
	InvoiceNumber string     `form:"invoice_number"`
	Description   string     `form:"description"`
	BankAccount   string     `form:"bank_account"`
}

// ExpenseFilter narrows expense reads to a date range over one date column
type ExpenseFilter struct {
	StartDate   *time.Time
	EndDate     *time.Time
	FilterField string
}

// ExpenseSummary aggregates expenses by payment method and status
type ExpenseSummary struct {
	Total          float64 `json:"total"`
	Count          int     `json:"count"`
	Efectivo       float64 `json:"efectivo"`
	TarjetaCredito float64 `json:"tarjeta_credito"`
	TarjetaDebito  float64 `json:"tarjeta_debito"`
	Transferencia  float64 `json:"transferencia"`
	Pendiente      float64 `json:"pendiente"`
	Pagado         float64 `json:"pagado"`
}
