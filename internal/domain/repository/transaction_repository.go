package repository

import (
	"github.com/shopspring/decimal"

	"github.com/obramarket/obramarket-api/internal/domain/entity"
)

// TransactionFilter filtros del listado de transacciones del usuario.
// Role limita a "buyer" o "seller"; vacío devuelve ambos lados.
type TransactionFilter struct {
	UserID string
	Role   string
	Status entity.TransactionStatus
}

// StatusCount agregado por estado para las estadísticas del usuario.
type StatusCount struct {
	Status      entity.TransactionStatus
	Count       int
	TotalAmount decimal.Decimal
}

// TransactionRepository define el puerto de persistencia para Transaction (DIP).
// No hay Delete: las transacciones son registro de auditoría inmutable una vez
// terminales.
type TransactionRepository interface {
	Create(tx *entity.Transaction) error
	GetByID(id string) (*entity.Transaction, error)
	Update(tx *entity.Transaction) error
	List(filter TransactionFilter, limit, offset int) ([]*entity.Transaction, int, error)
	// StatsByUser agrupa por estado las transacciones donde el usuario actúa
	// en el rol dado ("buyer" o "seller").
	StatsByUser(userID, role string) ([]StatusCount, error)
}
