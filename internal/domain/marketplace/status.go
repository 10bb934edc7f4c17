package marketplace

import (
	"github.com/obramarket/obramarket-api/internal/domain"
	"github.com/obramarket/obramarket-api/internal/domain/entity"
)

// Máquina de estados de transacciones:
//
//	pendiente  → confirmada | cancelada
//	confirmada → completada | cancelada
//	completada, cancelada → terminales
//
// Existen dos rutas hacia completada: el atajo del vendedor (accept, que salta
// de pendiente a completada) y el cierre explícito (complete, que exige pasar
// por confirmada). Ambas se conservan como caminos alternativos.

// CanAccept valida el atajo del vendedor: la transacción debe seguir pendiente.
func CanAccept(tx *entity.Transaction) error {
	if tx.Status != entity.TxPendiente {
		return domain.ErrInvalidState
	}
	return nil
}

// CanReject valida el rechazo del vendedor: la transacción debe seguir pendiente.
func CanReject(tx *entity.Transaction) error {
	if tx.Status != entity.TxPendiente {
		return domain.ErrInvalidState
	}
	return nil
}

// CanComplete valida el cierre explícito: exige estado confirmada. Una
// transacción ya completada se reporta igualmente como estado inválido.
func CanComplete(tx *entity.Transaction) error {
	if tx.Status != entity.TxConfirmada {
		return domain.ErrInvalidState
	}
	return nil
}

// ApplyLedgerEffect aplica al material el efecto de libro que corresponde al
// nuevo estado de la transacción (tabla de la actualización genérica):
//
//	confirmada → reservar si el material sigue disponible
//	completada → marcar vendido y descontar la cantidad de la transacción
//	cancelada  → liberar si estaba reservado o vendido
//
// pendiente no produce efecto. Las transiciones condicionales que no aplican
// se omiten en silencio, igual que en el sistema original.
func ApplyLedgerEffect(status entity.TransactionStatus, tx *entity.Transaction, m *entity.Material) {
	switch status {
	case entity.TxConfirmada:
		if m.Status == entity.MaterialDisponible {
			_ = Reserve(m)
		}
	case entity.TxCompletada:
		MarkSold(m, tx.Quantity)
	case entity.TxCancelada:
		if m.Status == entity.MaterialReservado || m.Status == entity.MaterialVendido {
			_ = Release(m)
		}
	}
}
