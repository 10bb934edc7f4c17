package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/obramarket/obramarket-api/internal/domain/entity"
)

// CreateMaterialRequest entrada para publicar un material. El vendedor es
// siempre el usuario autenticado, nunca viene en el cuerpo.
type CreateMaterialRequest struct {
	Title       string          `json:"title" validate:"required,min=3,max=100"`
	Description string          `json:"description" validate:"required,min=10,max=1000"`
	Category    string          `json:"category" validate:"required"`
	Quantity    int             `json:"quantity" validate:"required,min=1"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Condition   string          `json:"condition" validate:"required"`
	Location    string          `json:"location" validate:"required"`
	ProjectName string          `json:"projectName"`
	Images      []string        `json:"images"`
	Featured    bool            `json:"featured"`
}

// UpdateMaterialRequest entrada para editar un material (campos opcionales).
// Status no se edita por aquí: tiene su propio endpoint.
type UpdateMaterialRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Quantity    *int             `json:"quantity"`
	Unit        *string          `json:"unit"`
	Price       *decimal.Decimal `json:"price"`
	Condition   *string          `json:"condition"`
	Location    *string          `json:"location"`
	ProjectName *string          `json:"projectName"`
	Images      []string         `json:"images"`
	Featured    *bool            `json:"featured"`
}

// UpdateMaterialStatusRequest entrada del PATCH de estado.
type UpdateMaterialStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=disponible reservado vendido"`
}

// MaterialResponse salida de un material.
type MaterialResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	Unit        string          `json:"unit"`
	Price       decimal.Decimal `json:"price"`
	Condition   string          `json:"condition"`
	Location    string          `json:"location"`
	ProjectName string          `json:"projectName"`
	Images      []string        `json:"images"`
	SellerID    string          `json:"sellerId"`
	Status      string          `json:"status"`
	Featured    bool            `json:"featured"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// MaterialListResponse lista paginada de materiales.
type MaterialListResponse struct {
	Items []MaterialResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}

// ToMaterialResponse convierte la entidad al DTO de salida.
func ToMaterialResponse(m *entity.Material) *MaterialResponse {
	if m == nil {
		return nil
	}
	return &MaterialResponse{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Category:    string(m.Category),
		Quantity:    m.Quantity,
		Unit:        string(m.Unit),
		Price:       m.Price,
		Condition:   string(m.Condition),
		Location:    m.Location,
		ProjectName: m.ProjectName,
		Images:      m.Images,
		SellerID:    m.SellerID,
		Status:      string(m.Status),
		Featured:    m.Featured,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
