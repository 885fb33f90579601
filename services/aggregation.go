// services/aggregation.go
package services

import (
	"github.com/nexuscoliving/finanzas-backend/models"
	"github.com/nexuscoliving/finanzas-backend/utils"
)

// SummarizePayments reduces a list of payments into per-method totals.
// Every method other than efectivo buckets into transferencia, so the
// method sums always partition the total exactly.
func SummarizePayments(payments []models.Payment) models.PaymentSummary {
	var summary models.PaymentSummary
	for _, payment := range payments {
		summary.Total += payment.Amount
		summary.Count++
		if payment.PaymentMethod == utils.MethodEfectivo {
			summary.Efectivo += payment.Amount
		} else {
			summary.Transferencia += payment.Amount
		}
	}
	summary.Total = utils.Round(summary.Total)
	summary.Efectivo = utils.Round(summary.Efectivo)
	summary.Transferencia = utils.Round(summary.Transferencia)
	return summary
}

// SummarizeExpenses reduces a list of expenses into per-method and
// per-status totals. Unrecognized methods bucket into transferencia so
// the partition property holds.
func SummarizeExpenses(expenses []models.Expense) models.ExpenseSummary {
	var summary models.ExpenseSummary
	for _, expense := range expenses {
		summary.Total += expense.Amount
		summary.Count++

		switch expense.PaymentMethod {
		case utils.MethodEfectivo:
			summary.Efectivo += expense.Amount
		case utils.MethodTarjetaCredito:
			summary.TarjetaCredito += expense.Amount
		case utils.MethodTarjetaDebito:
			summary.TarjetaDebito += expense.Amount
		case utils.MethodTransferencia:
			summary.Transferencia += expense.Amount
		default:
			// Unrecognized methods bucket with transfers
			summary.Transferencia += expense.Amount
		}

		if expense.Status == utils.StatusPagado {
			summary.Pagado += expense.Amount
		} else {
			summary.Pendiente += expense.Amount
		}
	}
	summary.Total = utils.Round(summary.Total)
	summary.Efectivo = utils.Round(summary.Efectivo)
	summary.TarjetaCredito = utils.Round(summary.TarjetaCredito)
	summary.TarjetaDebito = utils.Round(summary.TarjetaDebito)
	summary.Transferencia = utils.Round(summary.Transferencia)
	summary.Pendiente = utils.Round(summary.Pendiente)
	summary.Pagado = utils.Round(summary.Pagado)
	return summary
}

// RemoveByOriginalIndex drops the entries at the given zero-based indices,
// interpreting every index against the original slice. Removing [0,2] from
// [A,B,C] retains exactly [B]; a sequential splice would shift indices and
// drop the wrong entry. Returns nil when nothing is retained, so a fully
// cleared document list is stored as SQL NULL like a row created without
// documents.
func RemoveByOriginalIndex(items []string, indices []int) []string {
	if len(indices) == 0 {
		return items
	}
	remove := make(map[int]bool, len(indices))
	for _, index := range indices {
		remove[index] = true
	}
	var retained []string
	for i, item := range items {
		if !remove[i] {
			retained = append(retained, item)
		}
	}
	return retained
}
