// services/report_service.go
package services

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/nexuscoliving/finanzas-backend/models"
	"github.com/nexuscoliving/finanzas-backend/utils"
)

// ReportService exports payments and expenses to an Excel workbook
type ReportService struct {
	paymentService *PaymentService
	expenseService *ExpenseService
}

// NewReportService creates a new report service
func NewReportService(paymentService *PaymentService, expenseService *ExpenseService) *ReportService {
	return &ReportService{
		paymentService: paymentService,
		expenseService: expenseService,
	}
}

// ExportFinanceReport builds a workbook with the filtered payments, the
// filtered expenses and a summary sheet
func (s *ReportService) ExportFinanceReport(paymentFilter models.PaymentFilter, expenseFilter models.ExpenseFilter) (*excelize.File, string, error) {
	payments := s.paymentService.ListPayments(paymentFilter)
	expenses := s.expenseService.ListExpenses(expenseFilter)

	f := excelize.NewFile()

	if err := s.createPaymentsSheet(f, payments); err != nil {
		return nil, "", fmt.Errorf("failed to create payments sheet: %v", err)
	}
	if err := s.createExpensesSheet(f, expenses); err != nil {
		return nil, "", fmt.Errorf("failed to create expenses sheet: %v", err)
	}
	if err := s.createSummarySheet(f, payments, expenses); err != nil {
		return nil, "", fmt.Errorf("failed to create summary sheet: %v", err)
	}

	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("Nexus_Finanzas_%s.xlsx", time.Now().Format("2006-01-02"))
	return f, filename, nil
}

func (s *ReportService) createPaymentsSheet(f *excelize.File, payments []models.Payment) error {
	sheetName := "Cobros"
	f.NewSheet(sheetName)
	sheetIndex, _ := f.GetSheetIndex(sheetName)
	f.SetActiveSheet(sheetIndex)

	headers := []string{"Fecha", "Tribu", "Habitación", "Renta", "Servicios", "Total", "Método", "Fecha de pago", "Registrado por"}
	if err := writeHeaderRow(f, sheetName, headers); err != nil {
		return err
	}

	for i, payment := range payments {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), payment.EntryDate.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), payment.TribeName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), payment.RoomNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), payment.RentAmount)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), payment.ServicesAmount)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), payment.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), payment.PaymentMethod)
		if payment.ActualPaymentDate != nil {
			f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), payment.ActualPaymentDate.Format("2006-01-02"))
		}
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), payment.CreatedBy)
	}

	f.SetColWidth(sheetName, "A", "I", 15)
	return nil
}

func (s *ReportService) createExpensesSheet(f *excelize.File, expenses []models.Expense) error {
	sheetName := "Gastos"
	f.NewSheet(sheetName)

	headers := []string{"Fecha", "Proveedor", "Categoría", "Tribu", "Monto", "Método", "Estado", "Factura", "Registrado por"}
	if err := writeHeaderRow(f, sheetName, headers); err != nil {
		return err
	}

	for i, expense := range expenses {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), expense.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), expense.SupplierName)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), expense.CategoryName)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), expense.TribeName)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), expense.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), expense.PaymentMethod)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), expense.Status)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), expense.InvoiceNumber)
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), expense.CreatedBy)
	}

	f.SetColWidth(sheetName, "A", "I", 15)
	return nil
}

func (s *ReportService) createSummarySheet(f *excelize.File, payments []models.Payment, expenses []models.Expense) error {
	sheetName := "Resumen"
	f.NewSheet(sheetName)

	paymentSummary := SummarizePayments(payments)
	expenseSummary := SummarizeExpenses(expenses)

	rows := []struct {
		Label string
		Value interface{}
	}{
		{"Cobros", ""},
		{"Total", paymentSummary.Total},
		{"Registros", paymentSummary.Count},
		{"Efectivo", paymentSummary.Efectivo},
		{"Transferencia", paymentSummary.Transferencia},
		{"", ""},
		{"Gastos", ""},
		{"Total", expenseSummary.Total},
		{"Registros", expenseSummary.Count},
		{"Efectivo", expenseSummary.Efectivo},
		{"Tarjeta de crédito", expenseSummary.TarjetaCredito},
		{"Tarjeta de débito", expenseSummary.TarjetaDebito},
		{"Transferencia", expenseSummary.Transferencia},
		{"Pendiente", expenseSummary.Pendiente},
		{"Pagado", expenseSummary.Pagado},
		{"% Pagado", utils.Percentage(expenseSummary.Pagado, expenseSummary.Total)},
		{"", ""},
		{"Balance", paymentSummary.Total - expenseSummary.Total},
	}

	sectionStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})

	for i, r := range rows {
		excelRow := i + 1
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", excelRow), r.Label)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", excelRow), r.Value)
		if r.Label == "Cobros" || r.Label == "Gastos" || r.Label == "Balance" {
			f.SetCellStyle(sheetName, fmt.Sprintf("A%d", excelRow), fmt.Sprintf("A%d", excelRow), sectionStyle)
		}
	}

	f.SetColWidth(sheetName, "A", "B", 20)
	return nil
}

func writeHeaderRow(f *excelize.File, sheetName string, headers []string) error {
	for i, header := range headers {
		cell := fmt.Sprintf("%s1", string(rune('A'+i)))
		f.SetCellValue(sheetName, cell, header)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	lastCol := string(rune('A' + len(headers) - 1))
	return f.SetCellStyle(sheetName, "A1", fmt.Sprintf("%s1", lastCol), headerStyle)
}
