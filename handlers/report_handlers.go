// handlers/report_handlers.go
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexuscoliving/finanzas-backend/models"
	"github.com/nexuscoliving/finanzas-backend/services"
)

// ReportHandler serves Excel exports of the financial data
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ExportFinanceReport handles GET /api/reports/export
func (h *ReportHandler) ExportFinanceReport(c *gin.Context) {
	start, end, field := parseDateRange(c)
	paymentFilter := models.PaymentFilter{StartDate: start, EndDate: end, FilterField: field}
	expenseFilter := models.ExpenseFilter{StartDate: start, EndDate: end}

	excelFile, filename, err := h.reportService.ExportFinanceReport(paymentFilter, expenseFilter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to export report: " + err.Error()})
		return
	}

	// Set headers for file download
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Header("Content-Transfer-Encoding", "binary")

	if err := excelFile.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to write Excel file: " + err.Error()})
		return
	}
}
