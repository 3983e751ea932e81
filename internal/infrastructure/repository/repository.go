package repository

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// consulta abstrae *sql.DB y *sql.Tx para compartir lecturas y escrituras
// entre los repositorios y las transacciones del gestor de reservaciones.
type consulta interface {
	QueryRow(query string, args ...interface{}) *sql.Row
	Query(query string, args ...interface{}) (*sql.Rows, error)
	Exec(query string, args ...interface{}) (sql.Result, error)
}

// Códigos de error de Postgres que los repositorios traducen a la taxonomía
// del dominio.
const (
	codigoUniqueViolation     = "23505"
	codigoForeignKeyViolation = "23503"
)

func esViolacionUnicidad(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == codigoUniqueViolation
}

func esViolacionReferencia(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == codigoForeignKeyViolation
}
