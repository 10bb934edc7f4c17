package entity

import "fmt"

// FieldError error de validación con el campo que lo produjo.
// Los handlers lo traducen al arreglo `errors` del cuerpo de error HTTP.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errores de validación reutilizados por Validate de Material y Transaction.
var (
	errTitleLength      = FieldError{Field: "title", Message: "el título debe tener entre 3 y 100 caracteres"}
	errDescLength       = FieldError{Field: "description", Message: "la descripción debe tener entre 10 y 1000 caracteres"}
	errInvalidEnum      = FieldError{Field: "category", Message: "categoría, unidad o condición inválida"}
	errQuantityMin      = FieldError{Field: "quantity", Message: "la cantidad debe ser al menos 1"}
	errPriceNegative    = FieldError{Field: "price", Message: "el precio no puede ser negativo"}
	errLocationRequired = FieldError{Field: "location", Message: "la ubicación es obligatoria"}
	errSellerRequired   = FieldError{Field: "seller", Message: "el vendedor es obligatorio"}
	errNotesLength      = FieldError{Field: "notes", Message: "las notas no pueden superar 500 caracteres"}
)

func validateTitle(s string) error {
	if n := len([]rune(s)); n < 3 || n > 100 {
		return errTitleLength
	}
	return nil
}

func validateDescription(s string) error {
	if n := len([]rune(s)); n < 10 || n > 1000 {
		return errDescLength
	}
	return nil
}

// ValidateNotes limita las notas de comprador/vendedor a 500 caracteres.
func ValidateNotes(s string) error {
	if len([]rune(s)) > 500 {
		return errNotesLength
	}
	return nil
}
