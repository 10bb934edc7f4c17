package transaction

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/obramarket/obramarket-api/internal/application/dto"
	"github.com/obramarket/obramarket-api/internal/domain"
	"github.com/obramarket/obramarket-api/internal/domain/entity"
	"github.com/obramarket/obramarket-api/internal/domain/marketplace"
	"github.com/obramarket/obramarket-api/internal/domain/repository"
)

// UseCase orquesta la máquina de estados de transacciones y sus efectos sobre
// el libro de disponibilidad. Toda operación que muta Transaction + Material
// corre dentro de TxRunner con la fila del material bloqueada
// (SELECT ... FOR UPDATE), de modo que dos compras simultáneas del mismo
// material se serializan en vez de pasar ambas el chequeo de disponibilidad.
type UseCase struct {
	txRunner TxRunner
	txRepo   repository.TransactionRepository
}

// NewUseCase construye el caso de uso. txRepo se usa solo para lecturas fuera
// de transacción (listados, estadísticas).
func NewUseCase(txRunner TxRunner, txRepo repository.TransactionRepository) *UseCase {
	return &UseCase{txRunner: txRunner, txRepo: txRepo}
}

// Create registra una solicitud de compra. Precondiciones: el material existe
// y está disponible, la cantidad pedida no supera la publicada y el comprador
// no es el vendedor. El precio unitario se congela con el del material en este
// instante. Si se pide la cantidad completa, el material queda reservado.
func (uc *UseCase) Create(ctx context.Context, buyerID string, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	if in.Quantity < 1 {
		return nil, domain.ErrInvalidInput
	}
	if err := entity.ValidateNotes(in.Notes); err != nil {
		return nil, err
	}

	var created *entity.Transaction
	err := uc.txRunner.Run(ctx, func(materialRepo repository.MaterialRepository, txRepo repository.TransactionRepository) error {
		material, err := materialRepo.GetByIDForUpdate(in.MaterialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}
		if material.Status != entity.MaterialDisponible {
			return domain.ErrInvalidState
		}
		if in.Quantity > material.Quantity {
			return domain.ErrInsufficientQuantity
		}
		if material.SellerID == buyerID {
			return domain.ErrOwnMaterial
		}

		now := time.Now()
		tx := &entity.Transaction{
			ID:         uuid.New().String(),
			BuyerID:    buyerID,
			SellerID:   material.SellerID,
			MaterialID: material.ID,
			Quantity:   in.Quantity,
			UnitPrice:  material.Price,
			Status:     entity.TxPendiente,
			BuyerNotes: in.Notes,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		tx.RecalcTotal()
		if err := tx.Validate(); err != nil {
			return err
		}
		if err := txRepo.Create(tx); err != nil {
			return err
		}

		// Pedir la cantidad completa reserva el material; una compra parcial
		// lo deja disponible para otros compradores.
		if in.Quantity == material.Quantity {
			if err := marketplace.Reserve(material); err != nil {
				return err
			}
			if err := materialRepo.Update(material); err != nil {
				return err
			}
		}
		created = tx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToTransactionResponse(created), nil
}

// UpdateStatus aplica la actualización genérica de estado: cualquier parte de
// la transacción (o un admin) puede fijar uno de los cuatro estados; el efecto
// sobre el material depende solo del estado destino. Las notas se guardan del
// lado del actor.
func (uc *UseCase) UpdateStatus(ctx context.Context, actorID, actorRole, txID string, in dto.UpdateTransactionStatusRequest) (*dto.TransactionResponse, error) {
	status := entity.TransactionStatus(in.Status)
	if !status.Valid() {
		return nil, domain.ErrInvalidInput
	}
	if err := entity.ValidateNotes(in.Notes); err != nil {
		return nil, err
	}

	var updated *entity.Transaction
	err := uc.txRunner.Run(ctx, func(materialRepo repository.MaterialRepository, txRepo repository.TransactionRepository) error {
		tx, err := txRepo.GetByID(txID)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.ErrNotFound
		}
		if !marketplace.IsParty(actorID, actorRole, tx) {
			return domain.ErrForbidden
		}

		tx.Status = status
		if in.Notes != "" {
			switch actorID {
			case tx.BuyerID:
				tx.BuyerNotes = in.Notes
			case tx.SellerID:
				tx.SellerNotes = in.Notes
			}
		}
		tx.UpdatedAt = time.Now()
		if err := txRepo.Update(tx); err != nil {
			return err
		}

		material, err := materialRepo.GetByIDForUpdate(tx.MaterialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}
		marketplace.ApplyLedgerEffect(status, tx, material)
		if err := materialRepo.Update(material); err != nil {
			return err
		}
		updated = tx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToTransactionResponse(updated), nil
}

// Accept es el atajo del vendedor: pasa la transacción de pendiente
// directamente a completada (sin pasar por confirmada) y marca el material
// como vendido descontando la cantidad.
func (uc *UseCase) Accept(ctx context.Context, actorID, txID string) (*dto.TransactionResponse, error) {
	var updated *entity.Transaction
	err := uc.txRunner.Run(ctx, func(materialRepo repository.MaterialRepository, txRepo repository.TransactionRepository) error {
		tx, err := txRepo.GetByID(txID)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.ErrNotFound
		}
		if tx.SellerID != actorID {
			return domain.ErrForbidden
		}
		if err := marketplace.CanAccept(tx); err != nil {
			return err
		}

		material, err := materialRepo.GetByIDForUpdate(tx.MaterialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}
		if material.Quantity < tx.Quantity {
			return domain.ErrInsufficientQuantity
		}

		tx.Status = entity.TxCompletada
		tx.UpdatedAt = time.Now()
		if err := txRepo.Update(tx); err != nil {
			return err
		}
		marketplace.MarkSold(material, tx.Quantity)
		if err := materialRepo.Update(material); err != nil {
			return err
		}
		updated = tx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToTransactionResponse(updated), nil
}

// Reject cancela una transacción pendiente (solo el vendedor). Si el material
// quedó reservado por esta solicitud, vuelve a estar disponible.
func (uc *UseCase) Reject(ctx context.Context, actorID, txID string) (*dto.TransactionResponse, error) {
	var updated *entity.Transaction
	err := uc.txRunner.Run(ctx, func(materialRepo repository.MaterialRepository, txRepo repository.TransactionRepository) error {
		tx, err := txRepo.GetByID(txID)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.ErrNotFound
		}
		if tx.SellerID != actorID {
			return domain.ErrForbidden
		}
		if err := marketplace.CanReject(tx); err != nil {
			return err
		}

		tx.Status = entity.TxCancelada
		tx.UpdatedAt = time.Now()
		if err := txRepo.Update(tx); err != nil {
			return err
		}

		material, err := materialRepo.GetByIDForUpdate(tx.MaterialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}
		if material.Status == entity.MaterialReservado {
			if err := marketplace.Release(material); err != nil {
				return err
			}
			if err := materialRepo.Update(material); err != nil {
				return err
			}
		}
		updated = tx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToTransactionResponse(updated), nil
}

// Complete cierra explícitamente una transacción confirmada (solo el
// vendedor) y marca el material como vendido. Una transacción pendiente o ya
// terminal se rechaza: esta ruta exige haber pasado por confirmada, a
// diferencia del atajo Accept.
func (uc *UseCase) Complete(ctx context.Context, actorID, txID string) (*dto.TransactionResponse, error) {
	var updated *entity.Transaction
	err := uc.txRunner.Run(ctx, func(materialRepo repository.MaterialRepository, txRepo repository.TransactionRepository) error {
		tx, err := txRepo.GetByID(txID)
		if err != nil {
			return err
		}
		if tx == nil {
			return domain.ErrNotFound
		}
		if tx.SellerID != actorID {
			return domain.ErrForbidden
		}
		if err := marketplace.CanComplete(tx); err != nil {
			return err
		}

		material, err := materialRepo.GetByIDForUpdate(tx.MaterialID)
		if err != nil {
			return err
		}
		if material == nil {
			return domain.ErrNotFound
		}

		tx.Status = entity.TxCompletada
		tx.UpdatedAt = time.Now()
		if err := txRepo.Update(tx); err != nil {
			return err
		}
		marketplace.MarkSold(material, tx.Quantity)
		if err := materialRepo.Update(material); err != nil {
			return err
		}
		updated = tx
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToTransactionResponse(updated), nil
}

// GetByID devuelve una transacción si el actor es comprador, vendedor o admin.
func (uc *UseCase) GetByID(actorID, actorRole, id string) (*dto.TransactionResponse, error) {
	tx, err := uc.txRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	if !marketplace.IsParty(actorID, actorRole, tx) {
		return nil, domain.ErrForbidden
	}
	return dto.ToTransactionResponse(tx), nil
}

// List lista las transacciones del usuario (como comprador, vendedor o ambos).
func (uc *UseCase) List(filter repository.TransactionFilter, limit, offset int) (*dto.TransactionListResponse, error) {
	list, total, err := uc.txRepo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *dto.ToTransactionResponse(t))
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// Stats devuelve los agregados por estado del usuario, como comprador y como
// vendedor.
func (uc *UseCase) Stats(userID string) (*dto.TransactionStatsResponse, error) {
	purchases, err := uc.txRepo.StatsByUser(userID, "buyer")
	if err != nil {
		return nil, err
	}
	sales, err := uc.txRepo.StatsByUser(userID, "seller")
	if err != nil {
		return nil, err
	}
	return &dto.TransactionStatsResponse{
		Purchases: dto.ToStatusCounts(purchases),
		Sales:     dto.ToStatusCounts(sales),
	}, nil
}
