package repository

import (
	"github.com/shopspring/decimal"

	"github.com/obramarket/obramarket-api/internal/domain/entity"
)

// MaterialFilter filtros del listado público de materiales.
// Search se compara sin tildes (ver pkg/normalize).
type MaterialFilter struct {
	Category  entity.Category
	Status    entity.MaterialStatus
	Condition entity.Condition
	SellerID  string
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
	Featured  *bool
	Search    string
}

// MaterialRepository define el puerto de persistencia para Material (DIP).
type MaterialRepository interface {
	Create(material *entity.Material) error
	GetByID(id string) (*entity.Material, error)
	// GetByIDForUpdate bloquea la fila del material (SELECT ... FOR UPDATE).
	// Solo tiene sentido dentro de una transacción (TxRunner).
	GetByIDForUpdate(id string) (*entity.Material, error)
	Update(material *entity.Material) error
	List(filter MaterialFilter, limit, offset int) ([]*entity.Material, int, error)
	ListBySeller(sellerID string) ([]*entity.Material, error)
	Delete(id string) error
}
