// handlers/supplier_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nexuscoliving/finanzas-backend/models"
	"github.com/nexuscoliving/finanzas-backend/services"
	"github.com/nexuscoliving/finanzas-backend/utils"
)

// SupplierHandler handles supplier-related HTTP requests
type SupplierHandler struct {
	supplierService *services.SupplierService
}

// NewSupplierHandler creates a new supplier handler
func NewSupplierHandler(supplierService *services.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// ListSuppliers handles GET /api/suppliers
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.supplierService.ListSuppliers()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, suppliers)
}

// CreateSupplier handles POST /api/suppliers/create
func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	var req models.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrSupplierNameRequired))
		return
	}

	supplier, err := h.supplierService.CreateSupplier(&req)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, supplier)
}
