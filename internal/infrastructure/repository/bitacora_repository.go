package repository

import (
	"database/sql"
	"fmt"

	"github.com/RenHec/HRS/internal/domain"
)

type bitacoraRepository struct {
	db *sql.DB
}

// NewBitacoraRepository crea una nueva instancia del repositorio de bitácora.
func NewBitacoraRepository(db *sql.DB) domain.BitacoraRepository {
	return &bitacoraRepository{db: db}
}

const columnasBitacora = `id, start, "end", days, active, reservation_detail_id,
	movement_id, user_id, type_service_id`

func escanearBitacora(row *sql.Row) (*domain.BitacoraReservacion, error) {
	b := &domain.BitacoraReservacion{}
	err := row.Scan(&b.ID, &b.Inicio, &b.Fin, &b.Dias, &b.Activa, &b.DetalleID,
		&b.MovimientoID, &b.UsuarioID, &b.TipoServicioID)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bitacoraRepository) GetByID(id int) (*domain.BitacoraReservacion, error) {
	b, err := escanearBitacora(r.db.QueryRow(
		`SELECT `+columnasBitacora+` FROM binnacles_reservations WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error al obtener bitácora %d: %w", id, err)
	}
	return b, nil
}

func (r *bitacoraRepository) GetPorDetalle(detalleID int) ([]domain.BitacoraReservacion, error) {
	query := `
		SELECT ` + columnasBitacora + `
		FROM binnacles_reservations
		WHERE reservation_detail_id = $1
		ORDER BY id DESC`

	rows, err := r.db.Query(query, detalleID)
	if err != nil {
		return nil, fmt.Errorf("error al consultar bitácora del detalle %d: %w", detalleID, err)
	}
	defer rows.Close()

	var entradas []domain.BitacoraReservacion
	for rows.Next() {
		var b domain.BitacoraReservacion
		err := rows.Scan(&b.ID, &b.Inicio, &b.Fin, &b.Dias, &b.Activa, &b.DetalleID,
			&b.MovimientoID, &b.UsuarioID, &b.TipoServicioID)
		if err != nil {
			return nil, fmt.Errorf("error al escanear bitácora: %w", err)
		}
		entradas = append(entradas, b)
	}

	return entradas, rows.Err()
}

// Actualizar corrige las fechas de una entrada de bitácora. El historial es de
// solo anexado: nunca se elimina una entrada.
func (r *bitacoraRepository) Actualizar(b *domain.BitacoraReservacion) error {
	actual, err := escanearBitacora(r.db.QueryRow(
		`SELECT `+columnasBitacora+` FROM binnacles_reservations WHERE id = $1`, b.ID))
	if err == sql.ErrNoRows {
		return domain.ErrNoEncontrado
	}
	if err != nil {
		return fmt.Errorf("error al obtener bitácora %d: %w", b.ID, err)
	}

	if actual.Inicio.Equal(b.Inicio) && actual.Fin.Equal(b.Fin) {
		return domain.ErrSinCambios
	}

	_, err = r.db.Exec(`UPDATE binnacles_reservations SET start = $1, "end" = $2 WHERE id = $3`,
		b.Inicio, b.Fin, b.ID)
	if err != nil {
		return fmt.Errorf("error al actualizar bitácora %d: %w", b.ID, err)
	}

	return nil
}
