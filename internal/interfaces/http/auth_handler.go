package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/obramarket/obramarket-api/internal/application/auth"
	"github.com/obramarket/obramarket-api/internal/application/dto"
)

// AuthHandler maneja signup, login y verificación de tokens.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Signup godoc
// @Summary      Registrar usuario
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SignupRequest  true  "email, password, name"
// @Success      201   {object}  dto.AuthResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in dto.SignupRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if errs := validateSignup(in); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "error de validación", Errors: errs})
	}
	out, err := h.uc.Signup(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.AuthResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Verify godoc
// @Summary      Verificar token vigente
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/auth/verify [get]
func (h *AuthHandler) Verify(c *fiber.Ctx) error {
	out, err := h.uc.Verify(GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"user": out})
}

func validateSignup(in dto.SignupRequest) []dto.FieldErrorResponse {
	var errs []dto.FieldErrorResponse
	if !strings.Contains(in.Email, "@") {
		errs = append(errs, dto.FieldErrorResponse{Field: "email", Message: "email inválido"})
	}
	if len(in.Password) < 6 {
		errs = append(errs, dto.FieldErrorResponse{Field: "password", Message: "password debe tener al menos 6 caracteres"})
	} else if !strings.ContainsAny(in.Password, "0123456789") {
		errs = append(errs, dto.FieldErrorResponse{Field: "password", Message: "password debe contener al menos un número"})
	}
	if len(strings.TrimSpace(in.Name)) < 2 {
		errs = append(errs, dto.FieldErrorResponse{Field: "name", Message: "name debe tener al menos 2 caracteres"})
	}
	return errs
}
