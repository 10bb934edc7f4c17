package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/obramarket/obramarket-api/internal/domain/entity"
	"github.com/obramarket/obramarket-api/internal/domain/repository"
)

// CreateTransactionRequest entrada de la solicitud de compra.
type CreateTransactionRequest struct {
	MaterialID string `json:"materialId" validate:"required,uuid"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
	Notes      string `json:"notes" validate:"omitempty,max=500"`
}

// UpdateTransactionStatusRequest entrada del PATCH de estado. Las notas se
// guardan como notas de comprador o de vendedor según quién sea el actor.
type UpdateTransactionStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pendiente confirmada completada cancelada"`
	Notes  string `json:"notes" validate:"omitempty,max=500"`
}

// TransactionResponse salida de una transacción.
type TransactionResponse struct {
	ID           string          `json:"id"`
	BuyerID      string          `json:"buyerId"`
	SellerID     string          `json:"sellerId"`
	MaterialID   string          `json:"materialId"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	Status       string          `json:"status"`
	DeliveryDate *time.Time      `json:"deliveryDate,omitempty"`
	BuyerNotes   string          `json:"buyerNotes,omitempty"`
	SellerNotes  string          `json:"sellerNotes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// TransactionListResponse lista paginada de transacciones.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// StatusCountResponse agregado por estado (conteo y monto).
type StatusCountResponse struct {
	Status      string          `json:"status"`
	Count       int             `json:"count"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// TransactionStatsResponse estadísticas del usuario como comprador y vendedor.
type TransactionStatsResponse struct {
	Purchases []StatusCountResponse `json:"purchases"`
	Sales     []StatusCountResponse `json:"sales"`
}

// ToTransactionResponse convierte la entidad al DTO de salida.
func ToTransactionResponse(t *entity.Transaction) *TransactionResponse {
	if t == nil {
		return nil
	}
	return &TransactionResponse{
		ID:           t.ID,
		BuyerID:      t.BuyerID,
		SellerID:     t.SellerID,
		MaterialID:   t.MaterialID,
		Quantity:     t.Quantity,
		UnitPrice:    t.UnitPrice,
		TotalPrice:   t.TotalPrice,
		Status:       string(t.Status),
		DeliveryDate: t.DeliveryDate,
		BuyerNotes:   t.BuyerNotes,
		SellerNotes:  t.SellerNotes,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// ToStatusCounts convierte los agregados del repositorio al DTO de salida.
func ToStatusCounts(in []repository.StatusCount) []StatusCountResponse {
	out := make([]StatusCountResponse, 0, len(in))
	for _, c := range in {
		out = append(out, StatusCountResponse{
			Status:      string(c.Status),
			Count:       c.Count,
			TotalAmount: c.TotalAmount,
		})
	}
	return out
}
