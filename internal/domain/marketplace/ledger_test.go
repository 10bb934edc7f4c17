package marketplace_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obramarket/obramarket-api/internal/domain"
	"github.com/obramarket/obramarket-api/internal/domain/entity"
	"github.com/obramarket/obramarket-api/internal/domain/marketplace"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del libro de disponibilidad: Reserve / MarkSold / Release / Mutable
// ──────────────────────────────────────────────────────────────────────────────

func materialConEstado(status entity.MaterialStatus, qty int) *entity.Material {
	return &entity.Material{
		ID:       "mat-1",
		Title:    "Vallas metálicas de obra",
		Quantity: qty,
		Price:    decimal.NewFromInt(25),
		SellerID: "seller-1",
		Status:   status,
	}
}

func TestReserve_MaterialDisponible_QuedaReservado(t *testing.T) {
	m := materialConEstado(entity.MaterialDisponible, 10)

	require.NoError(t, marketplace.Reserve(m))
	assert.Equal(t, entity.MaterialReservado, m.Status)
	assert.Equal(t, 10, m.Quantity, "reservar no debe tocar la cantidad")
}

func TestReserve_MaterialReservado_EstadoInvalido(t *testing.T) {
	m := materialConEstado(entity.MaterialReservado, 10)

	err := marketplace.Reserve(m)
	assert.ErrorIs(t, err, domain.ErrInvalidState)
	assert.Equal(t, entity.MaterialReservado, m.Status, "un reserve fallido no debe mutar el material")
}

func TestReserve_MaterialVendido_EstadoInvalido(t *testing.T) {
	m := materialConEstado(entity.MaterialVendido, 0)
	assert.ErrorIs(t, marketplace.Reserve(m), domain.ErrInvalidState)
}

func TestMarkSold_DescuentaCantidad(t *testing.T) {
	m := materialConEstado(entity.MaterialDisponible, 10)

	marketplace.MarkSold(m, 4)
	assert.Equal(t, entity.MaterialVendido, m.Status)
	assert.Equal(t, 6, m.Quantity)
}

func TestMarkSold_CantidadNuncaNegativa(t *testing.T) {
	m := materialConEstado(entity.MaterialReservado, 3)

	// Vender más de lo publicado deja la cantidad en 0, nunca negativa.
	marketplace.MarkSold(m, 8)
	assert.Equal(t, entity.MaterialVendido, m.Status)
	assert.Equal(t, 0, m.Quantity)
}

func TestMarkSold_NoExigeEstadoPrevio(t *testing.T) {
	// El cierre de una venta fuerza la transición desde cualquier estado.
	for _, status := range []entity.MaterialStatus{
		entity.MaterialDisponible, entity.MaterialReservado, entity.MaterialVendido,
	} {
		m := materialConEstado(status, 5)
		marketplace.MarkSold(m, 5)
		assert.Equal(t, entity.MaterialVendido, m.Status, "desde %s", status)
	}
}

func TestRelease_ReservadoVuelveADisponible(t *testing.T) {
	m := materialConEstado(entity.MaterialReservado, 10)

	require.NoError(t, marketplace.Release(m))
	assert.Equal(t, entity.MaterialDisponible, m.Status)
	assert.Equal(t, 10, m.Quantity, "liberar no debe tocar la cantidad")
}

func TestRelease_VendidoVuelveADisponible(t *testing.T) {
	m := materialConEstado(entity.MaterialVendido, 2)
	require.NoError(t, marketplace.Release(m))
	assert.Equal(t, entity.MaterialDisponible, m.Status)
}

func TestRelease_DisponibleEstadoInvalido(t *testing.T) {
	m := materialConEstado(entity.MaterialDisponible, 10)
	assert.ErrorIs(t, marketplace.Release(m), domain.ErrInvalidState)
}

func TestMutable_SoloVendidoEsInmutable(t *testing.T) {
	assert.True(t, marketplace.Mutable(materialConEstado(entity.MaterialDisponible, 1)))
	assert.True(t, marketplace.Mutable(materialConEstado(entity.MaterialReservado, 1)))
	assert.False(t, marketplace.Mutable(materialConEstado(entity.MaterialVendido, 0)))
}
