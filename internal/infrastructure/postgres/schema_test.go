package postgres

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ──────────────────────────────────────────────────────────────────────────────
// Consistencia repositorio ↔ esquema: cada columna que los repositorios
// referencian por nombre debe existir en migrations/schema.sql. Una columna
// listada aquí pero ausente del DDL rompe todos los INSERT/SELECT/UPDATE de la
// tabla en tiempo de ejecución (SQLSTATE 42703).
// ──────────────────────────────────────────────────────────────────────────────

func loadSchema(t *testing.T) string {
	t.Helper()
	raw, err := os.ReadFile("../../../migrations/schema.sql")
	require.NoError(t, err, "debe existir migrations/schema.sql")
	return string(raw)
}

// tableDDL extrae el bloque CREATE TABLE de una tabla del esquema.
func tableDDL(t *testing.T, schema, table string) string {
	t.Helper()
	marker := "CREATE TABLE IF NOT EXISTS " + table
	start := strings.Index(schema, marker)
	require.NotEqual(t, -1, start, "el esquema debe definir la tabla %s", table)
	end := strings.Index(schema[start:], ");")
	require.NotEqual(t, -1, end)
	return schema[start : start+end]
}

func assertColumnsInDDL(t *testing.T, ddl, columns, table string) {
	t.Helper()
	for _, col := range strings.Split(columns, ", ") {
		assert.Contains(t, ddl, col,
			"la columna %q usada por el repositorio no existe en la tabla %s", col, table)
	}
}

func TestSchema_ColumnasDeTransactions(t *testing.T) {
	ddl := tableDDL(t, loadSchema(t), "transactions")
	assertColumnsInDDL(t, ddl, transactionColumns, "transactions")
}

func TestSchema_ColumnasDeMaterials(t *testing.T) {
	ddl := tableDDL(t, loadSchema(t), "materials")
	assertColumnsInDDL(t, ddl, materialColumns, "materials")
}

func TestSchema_ColumnasDeUsers(t *testing.T) {
	ddl := tableDDL(t, loadSchema(t), "users")
	assertColumnsInDDL(t, ddl, userColumns, "users")
}
