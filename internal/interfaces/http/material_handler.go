package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/obramarket/obramarket-api/internal/application/dto"
	"github.com/obramarket/obramarket-api/internal/application/usecase"
	"github.com/obramarket/obramarket-api/internal/domain/entity"
	"github.com/obramarket/obramarket-api/internal/domain/repository"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// MaterialHandler maneja el CRUD de materiales y su cambio manual de estado.
type MaterialHandler struct {
	uc *usecase.MaterialUseCase
}

// NewMaterialHandler construye el handler de materiales.
func NewMaterialHandler(uc *usecase.MaterialUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// Create godoc
// @Summary      Publicar material
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateMaterialRequest  true  "material"
// @Success      201   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/materials [post]
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar materiales con filtros
// @Tags         materials
// @Produce      json
// @Param        category   query  string  false  "categoría"
// @Param        status     query  string  false  "disponible (default) | reservado | vendido"
// @Param        seller     query  string  false  "ID del vendedor"
// @Param        condition  query  string  false  "condición"
// @Param        minPrice   query  number  false  "precio mínimo"
// @Param        maxPrice   query  number  false  "precio máximo"
// @Param        featured   query  bool    false  "solo destacados"
// @Param        search     query  string  false  "búsqueda por título (sin tildes)"
// @Param        limit      query  int     false  "máx 100, default 20"
// @Param        offset     query  int     false  "default 0"
// @Success      200  {object}  dto.MaterialListResponse
// @Router       /api/materials [get]
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	filter, err := parseMaterialFilter(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	limit, offset := parsePage(c)
	out, err := h.uc.List(filter, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener material por ID
// @Tags         materials
// @Produce      json
// @Param        id  path  string  true  "ID del material"
// @Success      200  {object}  dto.MaterialResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [get]
func (h *MaterialHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListBySeller godoc
// @Summary      Listar materiales de un vendedor
// @Tags         materials
// @Produce      json
// @Param        sellerId  path  string  true  "ID del vendedor"
// @Success      200  {array}  dto.MaterialResponse
// @Router       /api/materials/seller/{sellerId} [get]
func (h *MaterialHandler) ListBySeller(c *fiber.Ctx) error {
	out, err := h.uc.ListBySeller(c.Params("sellerId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar material
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del material"
// @Param        body  body  dto.UpdateMaterialRequest  true  "campos a editar"
// @Success      200   {object}  dto.MaterialResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [put]
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateMaterialRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(GetUserID(c), GetRole(c), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Cambiar estado del material
// @Tags         materials
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                           true  "ID del material"
// @Param        body  body  dto.UpdateMaterialStatusRequest  true  "nuevo estado"
// @Success      200   {object}  dto.MaterialResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/materials/{id}/status [patch]
func (h *MaterialHandler) UpdateStatus(c *fiber.Ctx) error {
	var in dto.UpdateMaterialStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.UpdateStatus(GetUserID(c), GetRole(c), c.Params("id"), entity.MaterialStatus(in.Status))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar material
// @Tags         materials
// @Security     Bearer
// @Param        id  path  string  true  "ID del material"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/materials/{id} [delete]
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), GetRole(c), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseMaterialFilter(c *fiber.Ctx) (repository.MaterialFilter, error) {
	// El catálogo público muestra solo lo disponible salvo filtro explícito;
	// el inventario completo de un vendedor se consulta por /seller/:sellerId.
	filter := repository.MaterialFilter{
		Category:  entity.Category(c.Query("category")),
		Status:    entity.MaterialStatus(c.Query("status", string(entity.MaterialDisponible))),
		Condition: entity.Condition(c.Query("condition")),
		SellerID:  c.Query("seller"),
		Search:    c.Query("search"),
	}
	if raw := c.Query("minPrice"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "minPrice inválido")
		}
		filter.MinPrice = &d
	}
	if raw := c.Query("maxPrice"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "maxPrice inválido")
		}
		filter.MaxPrice = &d
	}
	if raw := c.Query("featured"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, fiber.NewError(fiber.StatusBadRequest, "featured inválido")
		}
		filter.Featured = &b
	}
	return filter, nil
}

func parsePage(c *fiber.Ctx) (limit, offset int) {
	limit = c.QueryInt("limit", defaultPageLimit)
	if limit < 1 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	offset = c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
