// handlers/expense_handlers.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/nexuscoliving/finanzas-backend/models"
	"github.com/nexuscoliving/finanzas-backend/services"
	"github.com/nexuscoliving/finanzas-backend/utils"
)

// ExpenseHandler handles expense-related HTTP requests
type ExpenseHandler struct {
	expenseService *services.ExpenseService
}

// NewExpenseHandler creates a new expense handler
func NewExpenseHandler(expenseService *services.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// ListExpenses handles GET /api/expenses
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	start, end, field := parseDateRange(c)
	expenses := h.expenseService.ListExpenses(models.ExpenseFilter{
		StartDate:   start,
		EndDate:     end,
		FilterField: field,
	})
	utils.HandleSuccess(c, expenses)
}

// GetExpenseSummary handles GET /api/expenses/summary
func (h *ExpenseHandler) GetExpenseSummary(c *gin.Context) {
	start, end, field := parseDateRange(c)
	summary := h.expenseService.GetExpenseSummary(models.ExpenseFilter{
		StartDate:   start,
		EndDate:     end,
		FilterField: field,
	})
	utils.HandleSuccess(c, summary)
}

// GetExpense handles GET /api/expenses/:id
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	expense, err := h.expenseService.GetExpenseByID(id)
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, expense)
}

// CreateExpense handles POST /api/expenses (multipart form with optional
// "documents" files)
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req models.ExpenseRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	files, closeFiles := collectDocumentFiles(c)
	defer closeFiles()

	expense, err := h.expenseService.CreateExpense(&req, files, sessionEmail(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, expense)
}

// UpdateExpense handles PUT /api/expenses/:id
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	var req models.ExpenseRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	files, closeFiles := collectDocumentFiles(c)
	defer closeFiles()

	expense, err := h.expenseService.UpdateExpense(id, &req, files, parseRemoveIndices(c), sessionEmail(c))
	if err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, expense)
}

// DeleteExpense handles DELETE /api/expenses/:id
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		utils.HandleError(c, utils.NewBadRequestError(utils.ErrInvalidRequest))
		return
	}

	if err := h.expenseService.DeleteExpense(id); err != nil {
		utils.HandleError(c, err)
		return
	}
	utils.HandleSuccess(c, true)
}
