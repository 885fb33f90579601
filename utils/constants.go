package utils

const (
	// Payment methods
	MethodEfectivo       = "efectivo"
	MethodTransferencia  = "transferencia"
	MethodTarjetaCredito = "tarjeta_credito"
	MethodTarjetaDebito  = "tarjeta_debito"

	// Expense statuses
	StatusPendiente = "pendiente"
	StatusPagado    = "pagado"

	// Document storage buckets
	PaymentDocumentsBucket = "payment-documents"
	ExpenseDocumentsBucket = "expense-documents"

	// Per-file ceiling for uploaded documents (5MB)
	MaxDocumentSize = 5 * 1024 * 1024

	// Document key generation
	KeyCharset      = "abcdefghijklmnopqrstuvwxyz0123456789"
	KeySuffixLength = 8

	// Actor name recorded when no user can be resolved
	SentinelActor = "Sistema"

	// Placeholders shown when a foreign key does not resolve
	SupplierNotFound = "Proveedor no encontrado"
	CategoryNotFound = "Categoría no encontrada"

	// User-facing error messages
	ErrInvalidRequest       = "Solicitud inválida"
	ErrSupplierNameRequired = "El nombre del proveedor es obligatorio"
	ErrSupplierDuplicate    = "Ya existe un proveedor con ese nombre"
	ErrInvalidEmail         = "El correo electrónico no es válido"
	ErrInvalidCredentials   = "Credenciales inválidas"

	// Precision for monetary calculations
	MoneyPrecision = 100.0
)
