package marketplace

import (
	"time"

	"github.com/obramarket/obramarket-api/internal/domain"
	"github.com/obramarket/obramarket-api/internal/domain/entity"
)

// Libro de disponibilidad: transiciones de {status, quantity} de un material.
// Los que llaman resuelven la existencia del material (ErrNotFound) antes;
// aquí solo se validan y aplican transiciones sobre la entidad en memoria.

// Reserve aparta un material disponible para una transacción en curso.
func Reserve(m *entity.Material) error {
	if m.Status != entity.MaterialDisponible {
		return domain.ErrInvalidState
	}
	m.Status = entity.MaterialReservado
	m.UpdatedAt = time.Now()
	return nil
}

// MarkSold marca el material como vendido y descuenta la cantidad vendida,
// con piso en 0. No exige estado previo: cualquier venta terminal fuerza la
// transición, igual que hacía el sistema original.
func MarkSold(m *entity.Material, soldQty int) {
	m.Status = entity.MaterialVendido
	m.Quantity -= soldQty
	if m.Quantity < 0 {
		m.Quantity = 0
	}
	m.UpdatedAt = time.Now()
}

// Release devuelve a disponible un material reservado o vendido. Solo se usa
// al cancelar o rechazar una transacción; no toca la cantidad.
func Release(m *entity.Material) error {
	if m.Status != entity.MaterialReservado && m.Status != entity.MaterialVendido {
		return domain.ErrInvalidState
	}
	m.Status = entity.MaterialDisponible
	m.UpdatedAt = time.Now()
	return nil
}

// Mutable indica si el material admite ediciones, borrado o cambio manual de
// estado: un material vendido queda inmutable para su dueño.
func Mutable(m *entity.Material) bool {
	return m.Status != entity.MaterialVendido
}
