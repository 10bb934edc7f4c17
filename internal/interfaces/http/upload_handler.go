package http

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/obramarket/obramarket-api/internal/application/dto"
	"github.com/obramarket/obramarket-api/internal/infrastructure/storage"
)

// 5 MB por imagen, alineado con el límite del plan gratuito de Cloudinary.
const maxUploadBytes = 5 << 20

// UploadHandler sube imágenes de materiales a Cloudinary.
type UploadHandler struct {
	storage *storage.CloudinaryService
}

// NewUploadHandler construye el handler de subida de imágenes.
func NewUploadHandler(s *storage.CloudinaryService) *UploadHandler {
	return &UploadHandler{storage: s}
}

// Upload godoc
// @Summary      Subir imagen de material
// @Tags         upload
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "imagen (jpeg/png/webp, máx 5MB)"
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/upload [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	if !h.storage.Configured() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "STORAGE_UNAVAILABLE", Message: "almacenamiento de imágenes no configurado"})
	}
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo image requerido"})
	}
	if fileHeader.Size > maxUploadBytes {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "la imagen supera los 5MB"})
	}
	if ct := fileHeader.Header.Get(fiber.HeaderContentType); !strings.HasPrefix(ct, "image/") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "solo se aceptan imágenes"})
	}

	f, err := fileHeader.Open()
	if err != nil {
		return respondError(c, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return respondError(c, err)
	}

	result, err := h.storage.Upload(c.Context(), fileHeader.Filename, data)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{Code: "UPLOAD_FAILED", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"url":      result.URL,
		"publicId": result.PublicID,
	})
}
