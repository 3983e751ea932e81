package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/RenHec/HRS/internal/domain"
	"github.com/lib/pq"
)

type habitacionRepository struct {
	db *sql.DB
}

// NewHabitacionRepository crea una nueva instancia del repositorio de
// habitaciones.
func NewHabitacionRepository(db *sql.DB) domain.HabitacionRepository {
	return &habitacionRepository{db: db}
}

// GetByID obtiene una habitación activa por id.
func (r *habitacionRepository) GetByID(id int) (*domain.Habitacion, error) {
	return getHabitacion(r.db, id, false)
}

// getHabitacion comparte la lectura de habitación con las transacciones del
// gestor de reservaciones. Con bloquear=true toma el candado de fila para
// serializar los incrementos del contador de cupos.
func getHabitacion(q consulta, id int, bloquear bool) (*domain.Habitacion, error) {
	query := `
		SELECT id, number, name, amount_people, amount_bed, description,
			type_bed_id, type_room_id, type_service_id, price, coin_id, resta
		FROM rooms
		WHERE id = $1 AND deleted_at IS NULL`
	if bloquear {
		query += ` FOR UPDATE`
	}

	h := &domain.Habitacion{}
	err := q.QueryRow(query, id).Scan(
		&h.ID,
		&h.Numero,
		&h.Nombre,
		&h.CantidadPersonas,
		&h.CantidadCamas,
		&h.Descripcion,
		&h.TipoCamaID,
		&h.TipoHabitacionID,
		&h.TipoServicioID,
		&h.Precio,
		&h.MonedaID,
		&h.Resta,
	)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error al obtener habitación %d: %w", id, err)
	}
	return h, nil
}

// BuscarDisponibles ejecuta la búsqueda de disponibilidad. La exclusión es por
// contención de extremos: un NOT EXISTS por cada extremo de la ventana en modo
// fecha, o uno solo a granularidad de minutos cuando hay hora. Los detalles en
// cancelación o anulación no excluyen.
func (r *habitacionRepository) BuscarDisponibles(filtro domain.FiltroDisponibilidad) ([]domain.HabitacionDisponible, error) {
	var condiciones []string
	var args []interface{}

	condiciones = append(condiciones, "h.deleted_at IS NULL")

	bloqueantes := fmt.Sprintf("%d, %d, %d",
		domain.StatusPendiente, domain.StatusEnProceso, domain.StatusConfirmado)

	noTraslape := func(param string) string {
		return fmt.Sprintf(`NOT EXISTS (
			SELECT 1 FROM reservations_details rd
			WHERE rd.room_id = h.id
			AND rd.status_id IN (%s)
			AND %s::date BETWEEN rd.arrival_date::date AND rd.departure_date::date
		)`, bloqueantes, param)
	}

	if filtro.Inicio != nil && filtro.Fin != nil && filtro.Hora == nil {
		args = append(args, *filtro.Inicio)
		condiciones = append(condiciones, noTraslape(fmt.Sprintf("$%d", len(args))))
		args = append(args, *filtro.Fin)
		condiciones = append(condiciones, noTraslape(fmt.Sprintf("$%d", len(args))))
	}

	if filtro.Inicio != nil && filtro.Hora != nil {
		inicio := fmt.Sprintf("%s %s", filtro.Inicio.Format("2006-01-02"), *filtro.Hora)
		args = append(args, inicio)
		condiciones = append(condiciones, fmt.Sprintf(`NOT EXISTS (
			SELECT 1 FROM reservations_details rd
			WHERE rd.room_id = h.id
			AND rd.status_id IN (%s)
			AND $%d::timestamp BETWEEN date_trunc('minute', rd.arrival_date) AND date_trunc('minute', rd.departure_date)
		)`, bloqueantes, len(args)))
	}

	if filtro.TipoServicioID != nil {
		args = append(args, *filtro.TipoServicioID)
		condiciones = append(condiciones, fmt.Sprintf("h.type_service_id = $%d", len(args)))
	}

	query := fmt.Sprintf(`
		SELECT
			h.id,
			h.number || ' ' || ts.name || ' - ' || h.name AS nombre,
			h.amount_people,
			tr.name AS tipo_habitacion,
			h.amount_bed || ' ' || tb.name AS tipo_cama,
			h.description,
			h.type_service_id,
			h.resta
		FROM rooms h
		INNER JOIN type_beds tb ON h.type_bed_id = tb.id
		INNER JOIN type_rooms tr ON h.type_room_id = tr.id
		INNER JOIN type_services ts ON h.type_service_id = ts.id
		WHERE %s
		ORDER BY h.id`, strings.Join(condiciones, " AND "))

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error al buscar habitaciones disponibles: %w", err)
	}
	defer rows.Close()

	var habitaciones []domain.HabitacionDisponible
	for rows.Next() {
		var h domain.HabitacionDisponible
		err := rows.Scan(&h.ID, &h.Nombre, &h.CantidadPersonas, &h.TipoHabitacion,
			&h.TipoCama, &h.Descripcion, &h.TipoServicioID, &h.Espacio)
		if err != nil {
			return nil, fmt.Errorf("error al escanear habitación disponible: %w", err)
		}
		habitaciones = append(habitaciones, h)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if err := r.adjuntarFotos(habitaciones); err != nil {
		return nil, err
	}

	return habitaciones, nil
}

// adjuntarFotos agrega a cada habitación su primera foto por posición.
func (r *habitacionRepository) adjuntarFotos(habitaciones []domain.HabitacionDisponible) error {
	if len(habitaciones) == 0 {
		return nil
	}

	ids := make([]int64, 0, len(habitaciones))
	for _, h := range habitaciones {
		ids = append(ids, int64(h.ID))
	}

	query := `
		SELECT DISTINCT ON (room_id) room_id, picture
		FROM pictures_rooms
		WHERE room_id = ANY($1)
		ORDER BY room_id, position ASC`

	rows, err := r.db.Query(query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("error al consultar fotos: %w", err)
	}
	defer rows.Close()

	fotos := make(map[int]string)
	for rows.Next() {
		var id int
		var foto string
		if err := rows.Scan(&id, &foto); err != nil {
			return fmt.Errorf("error al escanear foto: %w", err)
		}
		fotos[id] = foto
	}
	if err = rows.Err(); err != nil {
		return err
	}

	for i := range habitaciones {
		if foto, ok := fotos[habitaciones[i].ID]; ok {
			f := foto
			habitaciones[i].Foto = &f
		}
	}

	return nil
}

// PuedeReservar es la consulta puntual de una sola habitación. A diferencia de
// la búsqueda general, excluye cuando la fecha de salida de alguna reservación
// en conflicto cae dentro de la ventana; los dos caminos se mantienen
// separados a propósito.
func (r *habitacionRepository) PuedeReservar(habitacionID int, inicio, fin time.Time) (bool, error) {
	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM rooms h
		WHERE h.id = $1
		AND h.deleted_at IS NULL
		AND NOT EXISTS (
			SELECT 1
			FROM reservations r
			INNER JOIN reservations_details rd ON rd.reservation_id = r.id
			WHERE rd.room_id = h.id
			AND r.status_id IN (%d, %d, %d)
			AND rd.departure_date::date BETWEEN $2::date AND $3::date
		)`,
		domain.StatusPendiente, domain.StatusEnProceso, domain.StatusConfirmado)

	var cuenta int
	if err := r.db.QueryRow(query, habitacionID, inicio, fin).Scan(&cuenta); err != nil {
		return false, fmt.Errorf("error al verificar disponibilidad de la habitación %d: %w", habitacionID, err)
	}

	return cuenta > 0, nil
}

// GetPrecios devuelve las opciones de precio de las habitaciones dadas, con la
// etiqueta "tipo de cargo - símbolo precio" ya armada.
func (r *habitacionRepository) GetPrecios(habitacionIDs []int) ([]domain.PrecioHabitacion, error) {
	if len(habitacionIDs) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(habitacionIDs))
	for _, id := range habitacionIDs {
		ids = append(ids, int64(id))
	}

	query := `
		SELECT rp.room_id, tc.name, c.symbol, rp.price, c.id
		FROM rooms_prices rp
		INNER JOIN coins c ON rp.coin_id = c.id
		INNER JOIN type_charge tc ON rp.type_charge_id = tc.id
		WHERE rp.room_id = ANY($1)
		ORDER BY rp.room_id, tc.name`

	rows, err := r.db.Query(query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("error al consultar precios: %w", err)
	}
	defer rows.Close()

	var precios []domain.PrecioHabitacion
	for rows.Next() {
		var p domain.PrecioHabitacion
		var tipoCargo, simbolo string
		if err := rows.Scan(&p.HabitacionID, &tipoCargo, &simbolo, &p.Precio, &p.MonedaID); err != nil {
			return nil, fmt.Errorf("error al escanear precio: %w", err)
		}
		p.Nombre = fmt.Sprintf("%s - %s %.2f", tipoCargo, simbolo, p.Precio)
		precios = append(precios, p)
	}

	return precios, rows.Err()
}

// GetMasajes devuelve los masajes ofrecidos en las habitaciones dadas, con su
// etiqueta de precio y tiempo.
func (r *habitacionRepository) GetMasajes(habitacionIDs []int) ([]domain.MasajeHabitacion, error) {
	if len(habitacionIDs) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(habitacionIDs))
	for _, id := range habitacionIDs {
		ids = append(ids, int64(id))
	}

	query := `
		SELECT rm.room_id, tm.name, c.symbol, tm.price, tm.time, c.id
		FROM rooms_massages rm
		INNER JOIN type_massages tm ON rm.type_massage_id = tm.id
		INNER JOIN coins c ON tm.coin_id = c.id
		WHERE rm.room_id = ANY($1)
		ORDER BY rm.room_id, tm.name`

	rows, err := r.db.Query(query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("error al consultar masajes: %w", err)
	}
	defer rows.Close()

	var masajes []domain.MasajeHabitacion
	for rows.Next() {
		var m domain.MasajeHabitacion
		var nombre, simbolo string
		if err := rows.Scan(&m.HabitacionID, &nombre, &simbolo, &m.Precio, &m.Minutos, &m.MonedaID); err != nil {
			return nil, fmt.Errorf("error al escanear masaje: %w", err)
		}
		m.Nombre = fmt.Sprintf("%s | Precio: %s %.2f | Tiempo: %d min.", nombre, simbolo, m.Precio, m.Minutos)
		masajes = append(masajes, m)
	}

	return masajes, rows.Err()
}

// GetOfertas devuelve las promociones activas de una habitación.
func (r *habitacionRepository) GetOfertas(habitacionID int) ([]domain.OfertaHabitacion, error) {
	query := `
		SELECT o.id, o.accommodation, o.price, o.observation, o.start_date,
			o.end_date, o.active, o.room_id, o.coin_id
		FROM oferts_rooms o
		WHERE o.room_id = $1 AND o.active = true
		ORDER BY o.id`

	rows, err := r.db.Query(query, habitacionID)
	if err != nil {
		return nil, fmt.Errorf("error al consultar ofertas: %w", err)
	}
	defer rows.Close()

	var ofertas []domain.OfertaHabitacion
	for rows.Next() {
		var o domain.OfertaHabitacion
		err := rows.Scan(&o.ID, &o.Alojamiento, &o.Precio, &o.Observacion,
			&o.FechaInicio, &o.FechaFin, &o.Activa, &o.HabitacionID, &o.MonedaID)
		if err != nil {
			return nil, fmt.Errorf("error al escanear oferta: %w", err)
		}
		ofertas = append(ofertas, o)
	}

	return ofertas, rows.Err()
}
