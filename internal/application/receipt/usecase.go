package receipt

import (
	"context"

	"github.com/obramarket/obramarket-api/internal/domain"
	"github.com/obramarket/obramarket-api/internal/domain/entity"
	"github.com/obramarket/obramarket-api/internal/domain/marketplace"
	"github.com/obramarket/obramarket-api/internal/domain/repository"
)

// PDFGenerator genera el comprobante en PDF de una transacción completada.
type PDFGenerator interface {
	GenerateReceipt(ctx context.Context, tx *entity.Transaction, material *entity.Material, buyer, seller *entity.User) ([]byte, error)
}

// UseCase genera comprobantes de compra para transacciones completadas.
type UseCase struct {
	txRepo       repository.TransactionRepository
	materialRepo repository.MaterialRepository
	userRepo     repository.UserRepository
	generator    PDFGenerator
}

// NewUseCase construye el caso de uso.
func NewUseCase(
	txRepo repository.TransactionRepository,
	materialRepo repository.MaterialRepository,
	userRepo repository.UserRepository,
	generator PDFGenerator,
) *UseCase {
	return &UseCase{txRepo: txRepo, materialRepo: materialRepo, userRepo: userRepo, generator: generator}
}

// Generate devuelve los bytes del PDF. Solo las partes (o un admin) pueden
// pedirlo y solo para transacciones completadas.
func (uc *UseCase) Generate(ctx context.Context, actorID, actorRole, txID string) ([]byte, error) {
	tx, err := uc.txRepo.GetByID(txID)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, domain.ErrNotFound
	}
	if !marketplace.IsParty(actorID, actorRole, tx) {
		return nil, domain.ErrForbidden
	}
	if tx.Status != entity.TxCompletada {
		return nil, domain.ErrInvalidState
	}

	material, err := uc.materialRepo.GetByID(tx.MaterialID)
	if err != nil {
		return nil, err
	}
	buyer, err := uc.userRepo.GetByID(tx.BuyerID)
	if err != nil {
		return nil, err
	}
	seller, err := uc.userRepo.GetByID(tx.SellerID)
	if err != nil {
		return nil, err
	}
	if material == nil || buyer == nil || seller == nil {
		return nil, domain.ErrNotFound
	}
	return uc.generator.GenerateReceipt(ctx, tx, material, buyer, seller)
}
