package marketplace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/obramarket/obramarket-api/internal/domain"
	"github.com/obramarket/obramarket-api/internal/domain/entity"
	"github.com/obramarket/obramarket-api/internal/domain/marketplace"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests de la máquina de estados de transacciones
// ──────────────────────────────────────────────────────────────────────────────

func txConEstado(status entity.TransactionStatus) *entity.Transaction {
	return &entity.Transaction{
		ID:       "tx-1",
		BuyerID:  "buyer-1",
		SellerID: "seller-1",
		Quantity: 3,
		Status:   status,
	}
}

func TestCanAccept_SoloPendiente(t *testing.T) {
	assert.NoError(t, marketplace.CanAccept(txConEstado(entity.TxPendiente)))

	for _, status := range []entity.TransactionStatus{
		entity.TxConfirmada, entity.TxCompletada, entity.TxCancelada,
	} {
		err := marketplace.CanAccept(txConEstado(status))
		assert.ErrorIs(t, err, domain.ErrInvalidState, "accept desde %s debe fallar", status)
	}
}

func TestCanReject_SoloPendiente(t *testing.T) {
	assert.NoError(t, marketplace.CanReject(txConEstado(entity.TxPendiente)))

	for _, status := range []entity.TransactionStatus{
		entity.TxConfirmada, entity.TxCompletada, entity.TxCancelada,
	} {
		assert.ErrorIs(t, marketplace.CanReject(txConEstado(status)), domain.ErrInvalidState,
			"reject desde %s debe fallar", status)
	}
}

func TestCanComplete_ExigeConfirmada(t *testing.T) {
	assert.NoError(t, marketplace.CanComplete(txConEstado(entity.TxConfirmada)))

	// A diferencia del atajo accept, el cierre explícito exige haber pasado
	// por confirmada: pendiente también se rechaza.
	for _, status := range []entity.TransactionStatus{
		entity.TxPendiente, entity.TxCompletada, entity.TxCancelada,
	} {
		assert.ErrorIs(t, marketplace.CanComplete(txConEstado(status)), domain.ErrInvalidState,
			"complete desde %s debe fallar", status)
	}
}

func TestTransactionStatus_Terminal(t *testing.T) {
	assert.False(t, entity.TxPendiente.Terminal())
	assert.False(t, entity.TxConfirmada.Terminal())
	assert.True(t, entity.TxCompletada.Terminal())
	assert.True(t, entity.TxCancelada.Terminal())
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests ApplyLedgerEffect — efecto del estado destino sobre el material
// ──────────────────────────────────────────────────────────────────────────────

func TestApplyLedgerEffect_ConfirmadaReservaSiDisponible(t *testing.T) {
	tx := txConEstado(entity.TxConfirmada)
	m := materialConEstado(entity.MaterialDisponible, 10)

	marketplace.ApplyLedgerEffect(entity.TxConfirmada, tx, m)
	assert.Equal(t, entity.MaterialReservado, m.Status)
}

func TestApplyLedgerEffect_ConfirmadaNoTocaMaterialReservado(t *testing.T) {
	tx := txConEstado(entity.TxConfirmada)
	m := materialConEstado(entity.MaterialReservado, 10)

	marketplace.ApplyLedgerEffect(entity.TxConfirmada, tx, m)
	assert.Equal(t, entity.MaterialReservado, m.Status)
	assert.Equal(t, 10, m.Quantity)
}

func TestApplyLedgerEffect_CompletadaVendeYDescuenta(t *testing.T) {
	tx := txConEstado(entity.TxCompletada)
	tx.Quantity = 4
	m := materialConEstado(entity.MaterialReservado, 10)

	marketplace.ApplyLedgerEffect(entity.TxCompletada, tx, m)
	assert.Equal(t, entity.MaterialVendido, m.Status)
	assert.Equal(t, 6, m.Quantity)
}

func TestApplyLedgerEffect_CanceladaLiberaReservado(t *testing.T) {
	tx := txConEstado(entity.TxCancelada)
	m := materialConEstado(entity.MaterialReservado, 10)

	marketplace.ApplyLedgerEffect(entity.TxCancelada, tx, m)
	assert.Equal(t, entity.MaterialDisponible, m.Status)
}

func TestApplyLedgerEffect_CanceladaLiberaVendido(t *testing.T) {
	// La cancelación genérica también revierte un material ya vendido; la
	// cantidad descontada no se restituye.
	tx := txConEstado(entity.TxCancelada)
	m := materialConEstado(entity.MaterialVendido, 6)

	marketplace.ApplyLedgerEffect(entity.TxCancelada, tx, m)
	assert.Equal(t, entity.MaterialDisponible, m.Status)
	assert.Equal(t, 6, m.Quantity)
}

func TestApplyLedgerEffect_CanceladaNoTocaDisponible(t *testing.T) {
	tx := txConEstado(entity.TxCancelada)
	m := materialConEstado(entity.MaterialDisponible, 10)

	marketplace.ApplyLedgerEffect(entity.TxCancelada, tx, m)
	assert.Equal(t, entity.MaterialDisponible, m.Status)
}

func TestApplyLedgerEffect_PendienteSinEfecto(t *testing.T) {
	tx := txConEstado(entity.TxPendiente)
	m := materialConEstado(entity.MaterialReservado, 10)

	marketplace.ApplyLedgerEffect(entity.TxPendiente, tx, m)
	assert.Equal(t, entity.MaterialReservado, m.Status)
	assert.Equal(t, 10, m.Quantity)
}
