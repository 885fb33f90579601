package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nexuscoliving/finanzas-backend/models"
)

func TestSummarizePayments_MethodsPartitionTotal(t *testing.T) {
	payments := []models.Payment{
		{Amount: 1200, PaymentMethod: "efectivo"},
		{Amount: 800.50, PaymentMethod: "transferencia"},
		{Amount: 99.50, PaymentMethod: "tarjeta_credito"},
	}

	summary := SummarizePayments(payments)

	assert.Equal(t, float64(2100), summary.Total)
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, float64(1200), summary.Efectivo)
	// Everything that is not cash buckets into transferencia
	assert.Equal(t, float64(900), summary.Transferencia)
	assert.Equal(t, summary.Total, summary.Efectivo+summary.Transferencia)
}

func TestSummarizePayments_EmptyInput(t *testing.T) {
	summary := SummarizePayments(nil)

	assert.Equal(t, float64(0), summary.Total)
	assert.Equal(t, 0, summary.Count)
	assert.Equal(t, float64(0), summary.Efectivo)
	assert.Equal(t, float64(0), summary.Transferencia)
}

func TestSummarizeExpenses_MethodAndStatusBuckets(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 100, PaymentMethod: "efectivo", Status: "pagado"},
		{Amount: 50, PaymentMethod: "transferencia", Status: "pendiente"},
		{Amount: 25, PaymentMethod: "tarjeta_credito", Status: "pendiente"},
	}

	summary := SummarizeExpenses(expenses)

	assert.Equal(t, float64(175), summary.Total)
	assert.Equal(t, 3, summary.Count)
	assert.Equal(t, float64(100), summary.Efectivo)
	assert.Equal(t, float64(50), summary.Transferencia)
	assert.Equal(t, float64(25), summary.TarjetaCredito)
	assert.Equal(t, float64(0), summary.TarjetaDebito)

	// Method sums partition the total exactly
	assert.Equal(t, summary.Total,
		summary.Efectivo+summary.Transferencia+summary.TarjetaCredito+summary.TarjetaDebito)

	// So do the status sums
	assert.Equal(t, float64(100), summary.Pagado)
	assert.Equal(t, float64(75), summary.Pendiente)
	assert.Equal(t, summary.Total, summary.Pagado+summary.Pendiente)
}

func TestSummarizeExpenses_UnknownMethodBucketsIntoTransferencia(t *testing.T) {
	expenses := []models.Expense{
		{Amount: 40, PaymentMethod: "cheque", Status: "pendiente"},
	}

	summary := SummarizeExpenses(expenses)

	assert.Equal(t, float64(40), summary.Transferencia)
	assert.Equal(t, summary.Total, summary.Transferencia)
}

func TestRemoveByOriginalIndex(t *testing.T) {
	tests := []struct {
		name     string
		items    []string
		indices  []int
		expected []string
	}{
		{
			name:     "multiple indices do not shift",
			items:    []string{"A", "B", "C"},
			indices:  []int{0, 2},
			expected: []string{"B"},
		},
		{
			name:     "single removal",
			items:    []string{"A", "B", "C"},
			indices:  []int{1},
			expected: []string{"A", "C"},
		},
		{
			name:     "no indices keeps everything",
			items:    []string{"A", "B"},
			indices:  nil,
			expected: []string{"A", "B"},
		},
		{
			name:     "out of range indices are ignored",
			items:    []string{"A"},
			indices:  []int{5},
			expected: []string{"A"},
		},
		{
			name:     "remove all yields nil",
			items:    []string{"A", "B"},
			indices:  []int{0, 1},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RemoveByOriginalIndex(tt.items, tt.indices))
		})
	}
}
