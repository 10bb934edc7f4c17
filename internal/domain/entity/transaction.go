package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus estado del ciclo de vida de una solicitud de compra.
type TransactionStatus string

const (
	TxPendiente  TransactionStatus = "pendiente"
	TxConfirmada TransactionStatus = "confirmada"
	TxCompletada TransactionStatus = "completada"
	TxCancelada  TransactionStatus = "cancelada"
)

// Valid indica si el estado es uno de los valores permitidos.
func (s TransactionStatus) Valid() bool {
	switch s {
	case TxPendiente, TxConfirmada, TxCompletada, TxCancelada:
		return true
	}
	return false
}

// Terminal indica si el estado ya no admite más transiciones.
func (s TransactionStatus) Terminal() bool {
	return s == TxCompletada || s == TxCancelada
}

// Transaction representa una solicitud de compra sobre un Material y su
// negociación. UnitPrice se congela con el precio del material en el momento
// de la creación; TotalPrice se recalcula ante cualquier cambio de Quantity o
// UnitPrice. Una transacción nunca se elimina: es registro de auditoría.
type Transaction struct {
	ID           string
	BuyerID      string
	SellerID     string
	MaterialID   string
	Quantity     int
	UnitPrice    decimal.Decimal
	TotalPrice   decimal.Decimal
	Status       TransactionStatus
	DeliveryDate *time.Time
	BuyerNotes   string
	SellerNotes  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RecalcTotal mantiene el invariante TotalPrice = Quantity × UnitPrice.
// Debe llamarse tras modificar Quantity o UnitPrice.
func (t *Transaction) RecalcTotal() {
	t.TotalPrice = t.UnitPrice.Mul(decimal.NewFromInt(int64(t.Quantity)))
}

// Validate comprueba los campos obligatorios y los rangos de la transacción.
func (t *Transaction) Validate() error {
	if t.BuyerID == "" || t.SellerID == "" || t.MaterialID == "" {
		return FieldError{Field: "transaction", Message: "buyer, seller y material son obligatorios"}
	}
	if t.Quantity < 1 {
		return errQuantityMin
	}
	if t.UnitPrice.IsNegative() {
		return errPriceNegative
	}
	if err := ValidateNotes(t.BuyerNotes); err != nil {
		return err
	}
	if err := ValidateNotes(t.SellerNotes); err != nil {
		return err
	}
	return nil
}
