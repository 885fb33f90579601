package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/nexuscoliving/finanzas-backend/handlers"
)

// Handlers bundles the handler dependencies for route registration
type Handlers struct {
	Payments  *handlers.PaymentHandler
	Expenses  *handlers.ExpenseHandler
	Suppliers *handlers.SupplierHandler
	Catalog   *handlers.CatalogHandler
	Auth      *handlers.AuthHandler
	Reports   *handlers.ReportHandler
}

// SetupRoutes configures all API routes for the application
func SetupRoutes(router *gin.Engine, h *Handlers) {
	api := router.Group("/api")
	{
		// Auth endpoints
		api.POST("/auth/login", h.Auth.Login)
		api.POST("/auth/logout", h.Auth.Logout)
		api.GET("/auth/current-user", h.Auth.GetCurrentUser)
		api.GET("/auth/session", h.Auth.GetSession)
		api.POST("/auth/save-user-info", h.Auth.SaveUserInfo)
		api.GET("/check-auth", h.Auth.CheckAuth)

		// Payment endpoints
		api.GET("/payments", h.Payments.ListPayments)
		api.GET("/payments/summary", h.Payments.GetPaymentSummary)
		api.GET("/payments/:id", h.Payments.GetPayment)
		api.POST("/payments", h.Payments.CreatePayment)
		api.PUT("/payments/:id", h.Payments.UpdatePayment)
		api.DELETE("/payments/:id", h.Payments.DeletePayment)

		// Expense endpoints
		api.GET("/expenses", h.Expenses.ListExpenses)
		api.GET("/expenses/summary", h.Expenses.GetExpenseSummary)
		api.GET("/expenses/:id", h.Expenses.GetExpense)
		api.POST("/expenses", h.Expenses.CreateExpense)
		api.PUT("/expenses/:id", h.Expenses.UpdateExpense)
		api.DELETE("/expenses/:id", h.Expenses.DeleteExpense)

		// Supplier endpoints
		api.GET("/suppliers", h.Suppliers.ListSuppliers)
		api.POST("/suppliers/create", h.Suppliers.CreateSupplier)

		// Catalog endpoints
		api.GET("/tribes", h.Catalog.ListTribes)
		api.GET("/tribes/:id/rooms", h.Catalog.ListTribeRooms)
		api.GET("/expense-categories", h.Catalog.ListExpenseCategories)

		// Report export
		api.GET("/reports/export", h.Reports.ExportFinanceReport)
	}
}
