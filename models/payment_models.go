package models

import (
	"time"
)

// Payment represents money received from an occupant, split into rent and services
type Payment struct {
	ID                   int        `json:"id" db:"id"`
	EntryDate            time.Time  `json:"entry_date" db:"entry_date"`
	EstimatedPaymentDate time.Time  `json:"estimated_payment_date" db:"estimated_payment_date"`
	ActualPaymentDate    *time.Time `json:"actual_payment_date,omitempty" db:"actual_payment_date"`
	TribeID              int        `json:"tribe_id" db:"tribe_id"`
	RoomID               int        `json:"room_id" db:"room_id"`
	RentAmount           float64    `json:"rent_amount" db:"rent_amount"`
	ServicesAmount       float64    `json:"services_amount" db:"services_amount"`
	Amount               float64    `json:"amount" db:"amount"`
	PaymentMethod        string     `json:"payment_method" db:"payment_method"`
	Comments             string     `json:"comments,omitempty" db:"comments"`
	BankAccount          string     `json:"bank_account,omitempty" db:"bank_account"`
	DocumentURLs         []string   `json:"document_urls,omitempty" db:"document_urls"`
	DocumentIDs          []string   `json:"document_ids,omitempty" db:"document_ids"`
	DocumentURL          string     `json:"document_url,omitempty" db:"document_url"`
	DocumentID           string     `json:"document_id,omitempty" db:"document_id"`
	CreatedBy            string     `json:"created_by" db:"created_by"`
	UpdatedBy            string     `json:"updated_by,omitempty" db:"updated_by"`
	CreatedAt            time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at" db:"updated_at"`

	// Filled by the tribe/room join on reads, never written
	TribeName  string `json:"tribe_name,omitempty"`
	RoomNumber string `json:"room_number,omitempty"`
}

// PaymentRequest represents the form body for creating or updating a payment.
// Amount arrives precomputed as rent + services; the service trusts it.
type PaymentRequest struct {
	EntryDate            time.Time  `form:"entry_date" time_format:"2006-01-02" binding:"required"`
	EstimatedPaymentDate time.Time  `form:"estimated_payment_date" time_format:"2006-01-02" binding:"required"`
	ActualPaymentDate    *time.Time `form:"actual_payment_date" time_format:"2006-01-02"`
	TribeID              int        `form:"tribe_id" binding:"required"`
	RoomID               int        `form:"room_id" binding:"required"`
	RentAmount           float64    `form:"rent_amount" binding:"min=0"`
	ServicesAmount       float64    `form:"services_amount" binding:"min=0"`
	Amount               float64    `form:"amount" binding:"min=0"`
	PaymentMethod        string     `form:"payment_method" binding:"required"`
	Comments             string     `form:"comments"`
	BankAccount          string     `form:"bank_account"`
}

// PaymentFilter narrows payment reads to a date range over one date column
type PaymentFilter struct {
	StartDate   *time.Time
	EndDate     *time.Time
	FilterField string
}

// PaymentSummary aggregates payments by method. Everything that is not
// efectivo buckets into transferencia.
type PaymentSummary struct {
	Total         float64 `json:"total"`
	Count         int     `json:"count"`
	Efectivo      float64 `json:"efectivo"`
	Transferencia float64 `json:"transferencia"`
}
