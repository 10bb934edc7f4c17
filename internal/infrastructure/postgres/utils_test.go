package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation_CodigoExacto(t *testing.T) {
	err := &pgconn.PgError{Code: uniqueViolationCode, ConstraintName: "users_email_key"}
	assert.True(t, isUniqueViolation(err))
}

func TestIsUniqueViolation_ErrorEnvuelto(t *testing.T) {
	// Los repositorios envuelven los errores con fmt.Errorf("...: %w", err);
	// la detección debe atravesar el wrapping.
	err := fmt.Errorf("insert user: %w", &pgconn.PgError{Code: uniqueViolationCode})
	assert.True(t, isUniqueViolation(err))
}

func TestIsUniqueViolation_OtrosErrores(t *testing.T) {
	assert.False(t, isUniqueViolation(errors.New("connection refused")))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: "42703"})) // columna inexistente
}
