// handlers/payment_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nexuscoliving/finanzas-backend/models"
	"github.com/nexuscoliving/finanzas-backend/services"
	"github.com/nexuscoliving/finanzas-backend/utils"
)

// PaymentHandler handles payment-related HTTP requests
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// ListPayments handles GET /api/payments
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	start, end, field := parseDateRange(c)
	payments := h.paymentService.ListPayments(models.PaymentFilter{
		StartDate:   start,
		EndDate:     end,
		FilterField: field,
	})
	utils.HandleSuccess(c, payments)
}

// GetPaymentSummary handles GET /api/payments/summary
func (h *PaymentHandler) GetPaymentSummary(c *gin.Context) {
	start, end, field := parseDateRange(c)
	summary := h.paymentService.GetPaymentSummary(models.PaymentFilter{
		StartDate:   start,
		EndDate:     end,
		FilterField: field,
	})
	utils.HandleSuccess(c, summary)
}

// GetPayment handles GET /api/payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	payment, err := h.paymentService.GetPaymentByID(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, payment)
}

// CreatePayment handles POST /api/payments (multipart form with optional
// "documents" files)
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req models.PaymentRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	files, closeFiles := collectDocumentFiles(c)
	defer closeFiles()

	payment, err := h.paymentService.CreatePayment(&req, files, sessionEmail(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, payment)
}

// UpdatePayment handles PUT /api/payments/:id (multipart form with optional
// "documents" files and "documents_to_remove" indices)
func (h *PaymentHandler) UpdatePayment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	var req models.PaymentRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	files, closeFiles := collectDocumentFiles(c)
	defer closeFiles()

	payment, err := h.paymentService.UpdatePayment(id, &req, files, parseRemoveIndices(c), sessionEmail(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, payment)
}

// DeletePayment handles DELETE /api/payments/:id
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := h.paymentService.DeletePayment(id); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, true)
}
