package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/RenHec/HRS/internal/domain"
	"github.com/google/uuid"
)

type reservacionRepository struct {
	db *sql.DB
}

// NewReservacionRepository crea una nueva instancia del repositorio de
// reservaciones.
func NewReservacionRepository(db *sql.DB) domain.ReservacionRepository {
	return &reservacionRepository{db: db}
}

// Crear ejecuta la orden de reserva completa en una sola transacción: código
// correlativo anual, resolución del cliente por nit, encabezado, líneas,
// incrementos de cupo, bitácora y totales. Cualquier falla revierte todo.
func (r *reservacionRepository) Crear(orden *domain.OrdenReservacion) (*domain.Reservacion, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("error al iniciar transacción: %w", err)
	}
	defer tx.Rollback()

	reservacion, err := crearReservacionTx(tx, orden)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		if esViolacionUnicidad(err) {
			return nil, domain.ErrConflicto
		}
		return nil, &domain.ErrorTransaccion{Operacion: "crear reservación", Causa: err}
	}

	return reservacion, nil
}

func crearReservacionTx(tx *sql.Tx, orden *domain.OrdenReservacion) (*domain.Reservacion, error) {
	// Correlativo anual: cargo de la transacción para que dos reservas
	// simultáneas no lean la misma cuenta sin que la restricción de unicidad
	// del código detecte la colisión.
	var cuenta int
	err := tx.QueryRow(`
		SELECT COUNT(*) FROM reservations
		WHERE date_part('year', created_at) = date_part('year', CURRENT_DATE)`).Scan(&cuenta)
	if err != nil {
		return nil, fmt.Errorf("error al contar reservaciones del año: %w", err)
	}
	codigo := domain.FormatearCodigo(cuenta + 1)

	municipio, err := getMunicipio(tx, orden.MunicipioID)
	if err != nil {
		return nil, err
	}

	cliente, err := resolverCliente(tx, &domain.Cliente{
		Nit:            orden.Nit,
		Nombre:         orden.Nombre,
		Email:          orden.Email,
		Negocio:        orden.Negocio,
		Ubicacion:      orden.Ubicacion,
		DepartamentoID: municipio.DepartamentoID,
		MunicipioID:    municipio.ID,
	})
	if err != nil {
		return nil, err
	}

	// La ubicación del encabezado concatena el nombre jerárquico del
	// municipio con la ubicación propia del cliente.
	ubicacion := municipio.NombreCompleto()
	if cliente.Ubicacion != nil && *cliente.Ubicacion != "" {
		ubicacion += ", " + *cliente.Ubicacion
	}

	var responsable *string
	if orden.Evento {
		responsable = orden.Responsable
	}

	reservacion := &domain.Reservacion{
		Codigo:      codigo,
		Nit:         cliente.Nit,
		Nombre:      cliente.Nombre,
		Ubicacion:   &ubicacion,
		Evento:      orden.Evento,
		Responsable: responsable,
		Reserva:     true,
		ClienteID:   cliente.ID,
		UsuarioID:   orden.UsuarioID,
		MonedaID:    orden.MonedaID,
		StatusID:    domain.StatusPendiente,
	}

	query := `
		INSERT INTO reservations (code, nit, name, ubication, event, responsable, reserva,
			total, total_reservation, total_product, client_id, user_id, coin_id, status_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, 0, 0, $8, $9, $10, $11)
		RETURNING id, created_at`

	err = tx.QueryRow(query, reservacion.Codigo, reservacion.Nit, reservacion.Nombre,
		reservacion.Ubicacion, reservacion.Evento, reservacion.Responsable, reservacion.Reserva,
		reservacion.ClienteID, reservacion.UsuarioID, reservacion.MonedaID, reservacion.StatusID).
		Scan(&reservacion.ID, &reservacion.CreadaEn)
	if esViolacionUnicidad(err) {
		return nil, domain.ErrConflicto
	}
	if err != nil {
		return nil, &domain.ErrorTransaccion{Operacion: "crear reservación", Causa: err}
	}

	// Las líneas se procesan en el orden de la solicitud; ese orden es
	// observable en la bitácora.
	for i := range orden.Lineas {
		linea := &orden.Lineas[i]

		clienteLinea := cliente
		if orden.Evento {
			// Invitado de evento: comparte el nit del encabezado con contacto
			// propio por línea; la resolución por nit es idempotente.
			clienteLinea, err = resolverCliente(tx, &domain.Cliente{
				Nit:            orden.Nit,
				Nombre:         orden.Nombre,
				Email:          linea.EmailHuesped,
				Negocio:        false,
				DepartamentoID: 1,
				MunicipioID:    1,
			})
			if err != nil {
				return nil, err
			}
		}

		habitacion, err := getHabitacion(tx, linea.HabitacionID, orden.Cantidad != nil)
		if err != nil {
			return nil, err
		}

		detalle := domain.DetalleReservacion{
			FechaLlegada:       linea.FechaLlegada,
			FechaSalida:        linea.FechaSalida,
			Alojamiento:        linea.Alojamiento,
			Cupo:               linea.Cupo,
			CodigoAutorizacion: uuid.NewString(),
			Precio:             linea.Precio,
			Sub:                linea.Sub,
			Oferta:             false,
			Huesped:            clienteLinea.Nombre,
			Descripcion:        linea.Descripcion,
			ReservacionID:      reservacion.ID,
			HabitacionID:       habitacion.ID,
			MonedaID:           reservacion.MonedaID,
			ClienteID:          clienteLinea.ID,
			TipoServicioID:     habitacion.TipoServicioID,
			StatusID:           domain.StatusPendiente,
		}

		detalleQuery := `
			INSERT INTO reservations_details (arrival_date, departure_date, accommodation,
				quote, authorization_code, price, sub, ofert, guest, description,
				reservation_id, room_id, coin_id, client_id, type_service_id, status_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
			RETURNING id`

		err = tx.QueryRow(detalleQuery, detalle.FechaLlegada, detalle.FechaSalida,
			detalle.Alojamiento, detalle.Cupo, detalle.CodigoAutorizacion, detalle.Precio,
			detalle.Sub, detalle.Oferta, detalle.Huesped, detalle.Descripcion,
			detalle.ReservacionID, detalle.HabitacionID, detalle.MonedaID, detalle.ClienteID,
			detalle.TipoServicioID, detalle.StatusID).Scan(&detalle.ID)
		if err != nil {
			return nil, &domain.ErrorTransaccion{Operacion: "crear detalle de reservación", Causa: err}
		}

		// El contador de cupos solo se toca cuando la solicitud trae cantidad
		// explícita; el incremento es en sitio para no perder actualizaciones
		// concurrentes.
		if incremento := domain.IncrementoCupo(orden.Cantidad); incremento > 0 {
			_, err = tx.Exec(`UPDATE rooms SET resta = resta + $1 WHERE id = $2`,
				incremento, habitacion.ID)
			if err != nil {
				return nil, &domain.ErrorTransaccion{Operacion: "incrementar cupo de habitación", Causa: err}
			}
		}

		programada := domain.EntradaProgramada(&detalle, orden.UsuarioID)
		if err = insertarBitacoraTx(tx, &programada); err != nil {
			return nil, err
		}

		reservacion.TotalReservacion += detalle.Sub
		reservacion.Detalles = append(reservacion.Detalles, detalle)
	}

	if reservacion.TotalReservacion > 0 {
		reservacion.Total = reservacion.TotalReservacion
		_, err = tx.Exec(`UPDATE reservations SET total = $1, total_reservation = $1 WHERE id = $2`,
			reservacion.Total, reservacion.ID)
		if err != nil {
			return nil, &domain.ErrorTransaccion{Operacion: "actualizar totales", Causa: err}
		}
	}

	return reservacion, nil
}

// Cancelar transiciona la reservación y todos sus detalles a cancelación;
// desactiva la bitácora vigente de cada detalle y anexa la entrada de
// cancelación. El candado de fila del encabezado serializa la cancelación
// frente a otras escrituras de la misma reservación.
func (r *reservacionRepository) Cancelar(id, usuarioID int) (*domain.Reservacion, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("error al iniciar transacción: %w", err)
	}
	defer tx.Rollback()

	reservacion, err := escanearReservacion(tx.QueryRow(
		`SELECT `+columnasReservacion+` FROM reservations WHERE id = $1 FOR UPDATE`, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error al obtener reservación %d: %w", id, err)
	}

	_, err = tx.Exec(`UPDATE reservations SET status_id = $1 WHERE id = $2`,
		domain.StatusCancelacion, id)
	if err != nil {
		return nil, &domain.ErrorTransaccion{Operacion: "cancelar reservación", Causa: err}
	}
	reservacion.StatusID = domain.StatusCancelacion

	detalles, err := getDetalles(tx, id)
	if err != nil {
		return nil, err
	}

	entradas := domain.CancelarDetalles(detalles, time.Now(), usuarioID)
	for i := range detalles {
		_, err = tx.Exec(`UPDATE reservations_details SET status_id = $1 WHERE id = $2`,
			detalles[i].StatusID, detalles[i].ID)
		if err != nil {
			return nil, &domain.ErrorTransaccion{Operacion: "cancelar detalle", Causa: err}
		}

		// La historia no se muta: las entradas previas se desactivan y la
		// cancelación queda como entrada nueva.
		_, err = tx.Exec(`UPDATE binnacles_reservations SET active = false WHERE reservation_detail_id = $1`,
			detalles[i].ID)
		if err != nil {
			return nil, &domain.ErrorTransaccion{Operacion: "desactivar bitácora", Causa: err}
		}

		if err = insertarBitacoraTx(tx, &entradas[i]); err != nil {
			return nil, err
		}
	}
	reservacion.Detalles = detalles

	if err = tx.Commit(); err != nil {
		return nil, &domain.ErrorTransaccion{Operacion: "cancelar reservación", Causa: err}
	}

	return reservacion, nil
}

const columnasReservacion = `id, code, nit, name, ubication, event, responsable, reserva,
	total, total_reservation, total_product, client_id, user_id, coin_id, status_id, created_at`

func escanearReservacion(row *sql.Row) (*domain.Reservacion, error) {
	r := &domain.Reservacion{}
	var ubicacion, responsable sql.NullString
	err := row.Scan(&r.ID, &r.Codigo, &r.Nit, &r.Nombre, &ubicacion, &r.Evento, &responsable,
		&r.Reserva, &r.Total, &r.TotalReservacion, &r.TotalProducto,
		&r.ClienteID, &r.UsuarioID, &r.MonedaID, &r.StatusID, &r.CreadaEn)
	if err != nil {
		return nil, err
	}
	if ubicacion.Valid {
		r.Ubicacion = &ubicacion.String
	}
	if responsable.Valid {
		r.Responsable = &responsable.String
	}
	return r, nil
}

func getDetalles(q consulta, reservacionID int) ([]domain.DetalleReservacion, error) {
	query := `
		SELECT id, arrival_date, departure_date, accommodation, quote, authorization_code,
			price, sub, ofert, guest, description, reservation_id, room_id, coin_id,
			client_id, type_service_id, status_id
		FROM reservations_details
		WHERE reservation_id = $1
		ORDER BY id`

	rows, err := q.Query(query, reservacionID)
	if err != nil {
		return nil, fmt.Errorf("error al consultar detalles: %w", err)
	}
	defer rows.Close()

	var detalles []domain.DetalleReservacion
	for rows.Next() {
		var d domain.DetalleReservacion
		err := rows.Scan(&d.ID, &d.FechaLlegada, &d.FechaSalida, &d.Alojamiento, &d.Cupo,
			&d.CodigoAutorizacion, &d.Precio, &d.Sub, &d.Oferta, &d.Huesped, &d.Descripcion,
			&d.ReservacionID, &d.HabitacionID, &d.MonedaID, &d.ClienteID, &d.TipoServicioID,
			&d.StatusID)
		if err != nil {
			return nil, fmt.Errorf("error al escanear detalle: %w", err)
		}
		detalles = append(detalles, d)
	}

	return detalles, rows.Err()
}

// GetByID obtiene una reservación con sus detalles.
func (r *reservacionRepository) GetByID(id int) (*domain.Reservacion, error) {
	reservacion, err := escanearReservacion(r.db.QueryRow(
		`SELECT `+columnasReservacion+` FROM reservations WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error al obtener reservación %d: %w", id, err)
	}

	reservacion.Detalles, err = getDetalles(r.db, id)
	if err != nil {
		return nil, err
	}

	return reservacion, nil
}

// GetDetalles devuelve las líneas de una reservación formateadas para mostrar.
func (r *reservacionRepository) GetDetalles(id int) ([]domain.DetalleMostrado, error) {
	query := `
		SELECT rd.id,
			res.code || ' - ' || cl.name AS nombre,
			rd.description, rd.accommodation, rd.quote, rd.guest,
			rd.price, rd.sub, res.total, c.symbol
		FROM reservations_details rd
		INNER JOIN reservations res ON rd.reservation_id = res.id
		INNER JOIN clients cl ON res.client_id = cl.id
		INNER JOIN coins c ON rd.coin_id = c.id
		WHERE rd.reservation_id = $1
		ORDER BY rd.id`

	rows, err := r.db.Query(query, id)
	if err != nil {
		return nil, fmt.Errorf("error al consultar detalles de reservación: %w", err)
	}
	defer rows.Close()

	var detalles []domain.DetalleMostrado
	for rows.Next() {
		var d domain.DetalleMostrado
		err := rows.Scan(&d.ID, &d.Nombre, &d.Descripcion, &d.Alojamiento, &d.Cupo,
			&d.Huesped, &d.Precio, &d.Sub, &d.Total, &d.Simbolo)
		if err != nil {
			return nil, fmt.Errorf("error al escanear detalle mostrado: %w", err)
		}
		detalles = append(detalles, d)
	}

	return detalles, rows.Err()
}

// Listar devuelve las reservaciones activas: excluye anuladas y solo incluye
// reservas de habitación.
func (r *reservacionRepository) Listar() ([]domain.ReservacionResumen, error) {
	query := `
		SELECT res.id, res.code, res.name, cl.name, res.total, res.status_id, s.name
		FROM reservations res
		INNER JOIN clients cl ON res.client_id = cl.id
		INNER JOIN status s ON res.status_id = s.id
		WHERE res.status_id != $1 AND res.reserva = true
		ORDER BY res.created_at DESC`

	rows, err := r.db.Query(query, domain.StatusAnulado)
	if err != nil {
		return nil, fmt.Errorf("error al listar reservaciones: %w", err)
	}
	defer rows.Close()

	var resumenes []domain.ReservacionResumen
	for rows.Next() {
		var res domain.ReservacionResumen
		err := rows.Scan(&res.ID, &res.Codigo, &res.Nombre, &res.Cliente, &res.Total,
			&res.StatusID, &res.Status)
		if err != nil {
			return nil, fmt.Errorf("error al escanear resumen: %w", err)
		}
		resumenes = append(resumenes, res)
	}

	return resumenes, rows.Err()
}

// ListarPorStatus devuelve las opciones de selección "código | cliente" de las
// reservaciones con el status dado.
func (r *reservacionRepository) ListarPorStatus(statusID int) ([]domain.OpcionReservacion, error) {
	query := `
		SELECT res.id, res.code || ' | ' || cl.name, res.total, c.symbol
		FROM reservations res
		INNER JOIN clients cl ON res.client_id = cl.id
		INNER JOIN coins c ON res.coin_id = c.id
		WHERE res.status_id = $1 AND res.reserva = true
		ORDER BY res.code`

	rows, err := r.db.Query(query, statusID)
	if err != nil {
		return nil, fmt.Errorf("error al listar reservaciones por status: %w", err)
	}
	defer rows.Close()

	var opciones []domain.OpcionReservacion
	for rows.Next() {
		var o domain.OpcionReservacion
		if err := rows.Scan(&o.ID, &o.Nombre, &o.Total, &o.Simbolo); err != nil {
			return nil, fmt.Errorf("error al escanear opción: %w", err)
		}
		opciones = append(opciones, o)
	}

	return opciones, rows.Err()
}

// Calendario devuelve las ventanas de reservación con el status dado.
func (r *reservacionRepository) Calendario(statusID int) ([]domain.EventoCalendario, error) {
	query := `
		SELECT DISTINCT res.id, res.code || ' - ' || cl.name,
			rd.arrival_date, rd.departure_date,
			to_char(rd.arrival_date, 'HH24:MI')
		FROM reservations res
		INNER JOIN clients cl ON res.client_id = cl.id
		INNER JOIN reservations_details rd ON rd.reservation_id = res.id
		WHERE res.status_id = $1 AND res.reserva = true
		ORDER BY rd.arrival_date`

	rows, err := r.db.Query(query, statusID)
	if err != nil {
		return nil, fmt.Errorf("error al consultar calendario: %w", err)
	}
	defer rows.Close()

	var eventos []domain.EventoCalendario
	for rows.Next() {
		var e domain.EventoCalendario
		err := rows.Scan(&e.ID, &e.Nombre, &e.FechaLlegada, &e.FechaSalida, &e.Tiempo)
		if err != nil {
			return nil, fmt.Errorf("error al escanear evento de calendario: %w", err)
		}
		eventos = append(eventos, e)
	}

	return eventos, rows.Err()
}

// Actualizar modifica solo los campos descriptivos del encabezado. Los totales
// no se tocan por este camino: únicamente el gestor transaccional los escribe.
func (r *reservacionRepository) Actualizar(res *domain.Reservacion) error {
	actual, err := escanearReservacion(r.db.QueryRow(
		`SELECT `+columnasReservacion+` FROM reservations WHERE id = $1`, res.ID))
	if err == sql.ErrNoRows {
		return domain.ErrNoEncontrado
	}
	if err != nil {
		return fmt.Errorf("error al obtener reservación %d: %w", res.ID, err)
	}

	if actual.Nit == res.Nit &&
		actual.Nombre == res.Nombre &&
		igualOpcional(actual.Ubicacion, res.Ubicacion) &&
		igualOpcional(actual.Responsable, res.Responsable) {
		return domain.ErrSinCambios
	}

	query := `
		UPDATE reservations
		SET nit = $1, name = $2, ubication = $3, responsable = $4
		WHERE id = $5`

	_, err = r.db.Exec(query, res.Nit, res.Nombre, res.Ubicacion, res.Responsable, res.ID)
	if err != nil {
		return fmt.Errorf("error al actualizar reservación %d: %w", res.ID, err)
	}

	return nil
}

func insertarBitacoraTx(tx *sql.Tx, b *domain.BitacoraReservacion) error {
	query := `
		INSERT INTO binnacles_reservations (start, "end", days, active,
			reservation_detail_id, movement_id, user_id, type_service_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := tx.Exec(query, b.Inicio, b.Fin, b.Dias, b.Activa,
		b.DetalleID, b.MovimientoID, b.UsuarioID, b.TipoServicioID)
	if err != nil {
		return &domain.ErrorTransaccion{Operacion: "registrar bitácora", Causa: err}
	}

	return nil
}
