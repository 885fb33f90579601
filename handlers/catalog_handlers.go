// handlers/catalog_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nexuscoliving/finanzas-backend/repository"
	"github.com/nexuscoliving/finanzas-backend/utils"
)

// CatalogHandler serves the reference data used by form dropdowns
type CatalogHandler struct {
	catalogRepo *repository.CatalogRepository
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogRepo *repository.CatalogRepository) *CatalogHandler {
	return &CatalogHandler{catalogRepo: catalogRepo}
}

// ListTribes handles GET /api/tribes
func (h *CatalogHandler) ListTribes(c *gin.Context) {
	tribes, err := h.catalogRepo.ListTribes()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, tribes)
}

// ListTribeRooms handles GET /api/tribes/:id/rooms, feeding the cascading
// room select on the payment form
func (h *CatalogHandler) ListTribeRooms(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	rooms, err := h.catalogRepo.ListRoomsByTribe(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, rooms)
}

// ListExpenseCategories handles GET /api/expense-categories
func (h *CatalogHandler) ListExpenseCategories(c *gin.Context) {
	categories, err := h.catalogRepo.ListExpenseCategories()
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, categories)
}
