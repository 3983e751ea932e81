package domain

import "time"

// DiasBitacoraProgramada es el marcador de duración que lleva toda entrada de
// bitácora al programar una línea; la cancelación registra cero.
const DiasBitacoraProgramada = 60

// BitacoraReservacion es una entrada del historial de ocupación de una línea
// de reservación. El historial es de solo anexado: la cancelación desactiva
// las entradas previas y agrega una nueva en lugar de mutarlas.
type BitacoraReservacion struct {
	ID             int       `json:"id"`
	Inicio         time.Time `json:"inicio"`
	Fin            time.Time `json:"fin"`
	Dias           int       `json:"dias"`
	Activa         bool      `json:"activa"`
	DetalleID      int       `json:"detalleId"`
	MovimientoID   int       `json:"movimientoId"`
	UsuarioID      int       `json:"usuarioId"`
	TipoServicioID int       `json:"tipoServicioId"`
}

// EntradaProgramada construye la entrada de bitácora que registra la
// programación de una línea: cubre la ventana del detalle y lleva el marcador
// de duración fijo.
func EntradaProgramada(d *DetalleReservacion, usuarioID int) BitacoraReservacion {
	return BitacoraReservacion{
		Inicio:         d.FechaLlegada,
		Fin:            d.FechaSalida,
		Dias:           DiasBitacoraProgramada,
		Activa:         true,
		DetalleID:      d.ID,
		MovimientoID:   MovimientoProgramada,
		UsuarioID:      usuarioID,
		TipoServicioID: d.TipoServicioID,
	}
}

// EntradaCancelacion construye la entrada que compensa la cancelación de una
// línea: ventana puntual en el instante de la cancelación y cero días.
func EntradaCancelacion(d *DetalleReservacion, ahora time.Time, usuarioID int) BitacoraReservacion {
	return BitacoraReservacion{
		Inicio:         ahora,
		Fin:            ahora,
		Dias:           0,
		Activa:         true,
		DetalleID:      d.ID,
		MovimientoID:   MovimientoCancelada,
		UsuarioID:      usuarioID,
		TipoServicioID: d.TipoServicioID,
	}
}

// CancelarDetalles aplica la transición de cancelación a cada línea y produce
// exactamente una entrada de compensación por detalle, en el mismo orden. Las
// entradas previas del detalle se desactivan; la historia nunca se muta.
func CancelarDetalles(detalles []DetalleReservacion, ahora time.Time, usuarioID int) []BitacoraReservacion {
	entradas := make([]BitacoraReservacion, 0, len(detalles))
	for i := range detalles {
		detalles[i].StatusID = StatusCancelacion
		entradas = append(entradas, EntradaCancelacion(&detalles[i], ahora, usuarioID))
	}
	return entradas
}

// BitacoraRepository expone las lecturas y la corrección de fechas del
// historial. Las escrituras de programación y cancelación ocurren dentro de
// las transacciones del gestor de reservaciones.
type BitacoraRepository interface {
	// GetByID obtiene una entrada de bitácora.
	GetByID(id int) (*BitacoraReservacion, error)
	// GetPorDetalle devuelve el historial completo de una línea, de la más
	// reciente a la más antigua.
	GetPorDetalle(detalleID int) ([]BitacoraReservacion, error)
	// Actualizar corrige las fechas de una entrada; ErrSinCambios si nada
	// cambió. Las entradas nunca se eliminan.
	Actualizar(b *BitacoraReservacion) error
}
