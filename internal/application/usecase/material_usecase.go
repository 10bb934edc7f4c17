package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/obramarket/obramarket-api/internal/application/dto"
	"github.com/obramarket/obramarket-api/internal/domain"
	"github.com/obramarket/obramarket-api/internal/domain/entity"
	"github.com/obramarket/obramarket-api/internal/domain/marketplace"
	"github.com/obramarket/obramarket-api/internal/domain/repository"
)

// MaterialUseCase casos de uso CRUD para materiales. El estado solo cambia
// por acción explícita del dueño (UpdateStatus) o vía la máquina de estados
// de transacciones; un material vendido queda inmutable.
type MaterialUseCase struct {
	repo repository.MaterialRepository
}

// NewMaterialUseCase construye el caso de uso.
func NewMaterialUseCase(repo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

// Create publica un material nuevo con el vendedor autenticado como dueño.
func (uc *MaterialUseCase) Create(sellerID string, in dto.CreateMaterialRequest) (*dto.MaterialResponse, error) {
	unit := entity.Unit(in.Unit)
	if in.Unit == "" {
		unit = entity.UnitUnidades
	}
	now := time.Now()
	material := &entity.Material{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Category:    entity.Category(in.Category),
		Quantity:    in.Quantity,
		Unit:        unit,
		Price:       in.Price,
		Condition:   entity.Condition(in.Condition),
		Location:    in.Location,
		ProjectName: in.ProjectName,
		Images:      in.Images,
		SellerID:    sellerID,
		Status:      entity.MaterialDisponible,
		Featured:    in.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := material.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Create(material); err != nil {
		return nil, err
	}
	return dto.ToMaterialResponse(material), nil
}

// GetByID obtiene un material por ID.
func (uc *MaterialUseCase) GetByID(id string) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	return dto.ToMaterialResponse(material), nil
}

// List lista materiales con filtros y paginación.
func (uc *MaterialUseCase) List(filter repository.MaterialFilter, limit, offset int) (*dto.MaterialListResponse, error) {
	list, total, err := uc.repo.List(filter, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *dto.ToMaterialResponse(m))
	}
	return &dto.MaterialListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset, Total: total},
	}, nil
}

// ListBySeller lista todos los materiales de un vendedor, sin paginar.
func (uc *MaterialUseCase) ListBySeller(sellerID string) ([]dto.MaterialResponse, error) {
	list, err := uc.repo.ListBySeller(sellerID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.MaterialResponse, 0, len(list))
	for _, m := range list {
		items = append(items, *dto.ToMaterialResponse(m))
	}
	return items, nil
}

// Update edita un material. Solo dueño o admin; un material vendido no se
// edita.
func (uc *MaterialUseCase) Update(actorID, actorRole, id string, in dto.UpdateMaterialRequest) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	if !marketplace.CanAct(actorID, actorRole, material.SellerID) {
		return nil, domain.ErrForbidden
	}
	if !marketplace.Mutable(material) {
		return nil, domain.ErrInvalidState
	}
	if in.Title != nil {
		material.Title = *in.Title
	}
	if in.Description != nil {
		material.Description = *in.Description
	}
	if in.Category != nil {
		material.Category = entity.Category(*in.Category)
	}
	if in.Quantity != nil {
		material.Quantity = *in.Quantity
	}
	if in.Unit != nil {
		material.Unit = entity.Unit(*in.Unit)
	}
	if in.Price != nil {
		material.Price = *in.Price
	}
	if in.Condition != nil {
		material.Condition = entity.Condition(*in.Condition)
	}
	if in.Location != nil {
		material.Location = *in.Location
	}
	if in.ProjectName != nil {
		material.ProjectName = *in.ProjectName
	}
	if in.Images != nil {
		material.Images = in.Images
	}
	if in.Featured != nil {
		material.Featured = *in.Featured
	}
	if err := material.Validate(); err != nil {
		return nil, err
	}
	material.UpdatedAt = time.Now()
	if err := uc.repo.Update(material); err != nil {
		return nil, err
	}
	return dto.ToMaterialResponse(material), nil
}

// UpdateStatus cambia el estado por acción explícita del dueño (o admin).
// Un material ya vendido no admite cambios.
func (uc *MaterialUseCase) UpdateStatus(actorID, actorRole, id string, status entity.MaterialStatus) (*dto.MaterialResponse, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidInput
	}
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	if !marketplace.CanAct(actorID, actorRole, material.SellerID) {
		return nil, domain.ErrForbidden
	}
	if !marketplace.Mutable(material) {
		return nil, domain.ErrInvalidState
	}
	material.Status = status
	material.UpdatedAt = time.Now()
	if err := uc.repo.Update(material); err != nil {
		return nil, err
	}
	return dto.ToMaterialResponse(material), nil
}

// Delete elimina un material mientras no esté vendido. Solo dueño o admin.
func (uc *MaterialUseCase) Delete(actorID, actorRole, id string) error {
	material, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if material == nil {
		return domain.ErrNotFound
	}
	if !marketplace.CanAct(actorID, actorRole, material.SellerID) {
		return domain.ErrForbidden
	}
	if !marketplace.Mutable(material) {
		return domain.ErrInvalidState
	}
	return uc.repo.Delete(id)
}
