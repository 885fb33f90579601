// services/payment_service.go
package services

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/nexuscoliving/finanzas-backend/models"
	"github.com/nexuscoliving/finanzas-backend/utils"
)

// PaymentStore is the persistence surface the payment service needs
type PaymentStore interface {
	CreatePayment(payment *models.Payment) error
	ListPayments(filter models.PaymentFilter) ([]models.Payment, error)
	GetPaymentByID(id int) (*models.Payment, error)
	UpdatePayment(payment *models.Payment) error
	DeletePayment(id int) error
}

// ActorResolver resolves the display name recorded in audit fields
type ActorResolver interface {
	ResolveActorName(sessionEmail string) string
}

// PaymentService handles the payment record lifecycle
type PaymentService struct {
	payments  PaymentStore
	documents DocumentStore
	actors    ActorResolver
}

// NewPaymentService creates a new payment service
func NewPaymentService(payments PaymentStore, documents DocumentStore, actors ActorResolver) *PaymentService {
	return &PaymentService{
		payments:  payments,
		documents: documents,
		actors:    actors,
	}
}

// CreatePayment validates the form, uploads attachments best-effort and
// inserts the row. The submitted amount is trusted as rent + services;
// the service does not recompute or cross-check it.
func (s *PaymentService) CreatePayment(req *models.PaymentRequest, files []models.DocumentFile, sessionEmail string) (*models.Payment, error) {
	if err := utils.ValidateNonNegative(req.RentAmount, "rent_amount"); err != nil {
		return nil, err
	}
	if err := utils.ValidateNonNegative(req.ServicesAmount, "services_amount"); err != nil {
		return nil, err
	}
	if err := utils.ValidateRequired(req.PaymentMethod, "payment_method"); err != nil {
		return nil, err
	}

	urls, keys := uploadDocuments(s.documents, utils.PaymentDocumentsBucket, files, batchDocumentKey)

	payment := &models.Payment{
		EntryDate:            req.EntryDate,
		EstimatedPaymentDate: req.EstimatedPaymentDate,
		ActualPaymentDate:    req.ActualPaymentDate,
		TribeID:              req.TribeID,
		RoomID:               req.RoomID,
		RentAmount:           req.RentAmount,
		ServicesAmount:       req.ServicesAmount,
		Amount:               req.Amount,
		PaymentMethod:        req.PaymentMethod,
		Comments:             req.Comments,
		BankAccount:          req.BankAccount,
		DocumentURLs:         urls,
		DocumentIDs:          keys,
		CreatedBy:            s.actors.ResolveActorName(sessionEmail),
	}

	if err := s.payments.CreatePayment(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

// ListPayments returns payments narrowed by the filter. A store failure is
// logged and surfaces as an empty list, never as an error: callers render
// an empty table either way and the UI depends on that.
func (s *PaymentService) ListPayments(filter models.PaymentFilter) []models.Payment {
	payments, err := s.payments.ListPayments(filter)
	if err != nil {
		log.Printf("Failed to list payments: %v", err)
		return []models.Payment{}
	}
	if payments == nil {
		return []models.Payment{}
	}
	return payments
}

// GetPaymentSummary reduces the filtered payments into per-method totals.
// Zeroed summary when the underlying read fails.
func (s *PaymentService) GetPaymentSummary(filter models.PaymentFilter) models.PaymentSummary {
	return SummarizePayments(s.ListPayments(filter))
}

// GetPaymentByID retrieves one payment with its joins
func (s *PaymentService) GetPaymentByID(id int) (*models.Payment, error) {
	payment, err := s.payments.GetPaymentByID(id)
	if err == sql.ErrNoRows {
		return nil, utils.NewNotFoundError("Cobro")
	}
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// UpdatePayment re-reads the stored document arrays, drops the entries the
// client asked to remove (by original index), uploads any new files under
// payments/{id}/ and writes the row back with updated_by set to the raw
// session email.
func (s *PaymentService) UpdatePayment(id int, req *models.PaymentRequest, newFiles []models.DocumentFile, documentsToRemove []int, sessionEmail string) (*models.Payment, error) {
	current, err := s.GetPaymentByID(id)
	if err != nil {
		return nil, err
	}

	urls, keys := documentArraysWithLegacyFallback(
		current.DocumentURLs, current.DocumentIDs, current.DocumentURL, current.DocumentID)
	urls = RemoveByOriginalIndex(urls, documentsToRemove)
	keys = RemoveByOriginalIndex(keys, documentsToRemove)

	newURLs, newKeys := uploadDocuments(s.documents, utils.PaymentDocumentsBucket, newFiles,
		func(_ int, name string) string {
			return fmt.Sprintf("payments/%d/%s%s", id, uuid.New().String(), utils.FileExtension(name))
		})
	urls = append(urls, newURLs...)
	keys = append(keys, newKeys...)

	payment := &models.Payment{
		ID:                   id,
		EntryDate:            req.EntryDate,
		EstimatedPaymentDate: req.EstimatedPaymentDate,
		ActualPaymentDate:    req.ActualPaymentDate,
		TribeID:              req.TribeID,
		RoomID:               req.RoomID,
		RentAmount:           req.RentAmount,
		ServicesAmount:       req.ServicesAmount,
		Amount:               req.Amount,
		PaymentMethod:        req.PaymentMethod,
		Comments:             req.Comments,
		BankAccount:          req.BankAccount,
		DocumentURLs:         urls,
		DocumentIDs:          keys,
		UpdatedBy:            sessionEmail,
	}

	if err := s.payments.UpdatePayment(payment); err != nil {
		return nil, err
	}
	return s.GetPaymentByID(id)
}

// DeletePayment deletes the row only. Attached documents stay in storage:
// the original system never cleaned them up for payments (unlike expenses)
// and that asymmetry is kept until the intended policy is settled.
func (s *PaymentService) DeletePayment(id int) error {
	if _, err := s.GetPaymentByID(id); err != nil {
		return err
	}
	return s.payments.DeletePayment(id)
}

// documentArraysWithLegacyFallback returns the array fields, falling back
// to the single legacy document columns when the arrays are absent
func documentArraysWithLegacyFallback(urls, keys []string, legacyURL, legacyKey string) ([]string, []string) {
	if len(urls) == 0 && legacyURL != "" {
		return []string{legacyURL}, []string{legacyKey}
	}
	return urls, keys
}
