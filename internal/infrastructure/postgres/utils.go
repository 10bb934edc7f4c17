package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de violación de índice único en PostgreSQL.
const uniqueViolationCode = "23505"

// isUniqueViolation detecta si el error viene de un índice único. El
// repositorio de usuarios lo traduce a ErrEmailAlreadyExists: el único índice
// único del esquema aparte de las PK es users.email.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
