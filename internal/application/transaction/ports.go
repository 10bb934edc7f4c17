package transaction

import (
	"context"

	"github.com/obramarket/obramarket-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. La mutación Transaction + Material de cada
// operación de la máquina de estados es atómica gracias a esto: o se
// confirman ambos documentos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		materialRepo repository.MaterialRepository,
		txRepo repository.TransactionRepository,
	) error) error
}
