package domain

import "time"

// TipoReservacion distingue las clases de reservación: una reserva estándar de
// habitaciones o un evento con invitados por línea.
type TipoReservacion string

const (
	ReservacionEstandar TipoReservacion = "estandar"
	ReservacionEvento   TipoReservacion = "evento"
)

// Reservacion es el encabezado de una reserva: cubre una o más líneas de
// habitación/servicio. Nunca se elimina físicamente; la cancelación es una
// transición de status.
type Reservacion struct {
	ID               int                  `json:"id"`
	Codigo           string               `json:"codigo"`
	Nit              string               `json:"nit"`
	Nombre           string               `json:"nombre"`
	Ubicacion        *string              `json:"ubicacion,omitempty"`
	Evento           bool                 `json:"evento"`
	Responsable      *string              `json:"responsable,omitempty"`
	Reserva          bool                 `json:"reserva"`
	Total            float64              `json:"total"`
	TotalReservacion float64              `json:"totalReservacion"`
	TotalProducto    float64              `json:"totalProducto"`
	ClienteID        int                  `json:"clienteId"`
	UsuarioID        int                  `json:"usuarioId"`
	MonedaID         int                  `json:"monedaId"`
	StatusID         int                  `json:"statusId"`
	CreadaEn         time.Time            `json:"creadaEn"`
	Detalles         []DetalleReservacion `json:"detalles,omitempty"`
}

// Tipo devuelve la variante de la reservación según su bandera de evento.
func (r *Reservacion) Tipo() TipoReservacion {
	if r.Evento {
		return ReservacionEvento
	}
	return ReservacionEstandar
}

// DetalleReservacion es una línea de habitación/servicio dentro de una
// reservación, con sus propias fechas, precio y status.
type DetalleReservacion struct {
	ID                 int       `json:"id"`
	FechaLlegada       time.Time `json:"fechaLlegada"`
	FechaSalida        time.Time `json:"fechaSalida"`
	Alojamiento        int       `json:"alojamiento"`
	Cupo               int       `json:"cupo"`
	CodigoAutorizacion string    `json:"codigoAutorizacion"`
	Precio             float64   `json:"precio"`
	Sub                float64   `json:"sub"`
	Oferta             bool      `json:"oferta"`
	Huesped            string    `json:"huesped"`
	Descripcion        string    `json:"descripcion"`
	ReservacionID      int       `json:"reservacionId"`
	HabitacionID       int       `json:"habitacionId"`
	MonedaID           int       `json:"monedaId"`
	ClienteID          int       `json:"clienteId"`
	TipoServicioID     int       `json:"tipoServicioId"`
	StatusID           int       `json:"statusId"`
}

// LineaOrden es una línea ya validada y calculada de una orden de reserva. El
// gestor transaccional la persiste tal cual; EmailHuesped solo aplica a
// reservaciones de evento.
type LineaOrden struct {
	HabitacionID int
	FechaLlegada time.Time
	FechaSalida  time.Time
	Alojamiento  int
	Cupo         int
	Precio       float64
	Sub          float64
	Descripcion  string
	EmailHuesped *string
}

// OrdenReservacion es la orden de reserva completa que ejecuta el gestor
// transaccional como una sola unidad atómica. El código de la reservación y la
// resolución del cliente ocurren dentro de esa transacción.
type OrdenReservacion struct {
	Nit         string
	Nombre      string
	Email       *string
	Negocio     bool
	Ubicacion   *string
	MunicipioID int
	Evento      bool
	Responsable *string
	Cantidad    *int
	MonedaID    int
	UsuarioID   int
	Lineas      []LineaOrden
}

// ReservacionResumen es la fila del listado principal de reservaciones.
type ReservacionResumen struct {
	ID       int     `json:"id"`
	Codigo   string  `json:"codigo"`
	Nombre   string  `json:"nombre"`
	Cliente  string  `json:"cliente"`
	Total    float64 `json:"total"`
	StatusID int     `json:"statusId"`
	Status   string  `json:"status"`
}

// OpcionReservacion es la fila de los listados de selección (pendientes y
// confirmadas): etiqueta "código | cliente" más el total con símbolo.
type OpcionReservacion struct {
	ID      int     `json:"id"`
	Nombre  string  `json:"nombre"`
	Total   float64 `json:"total"`
	Simbolo string  `json:"simbolo"`
}

// DetalleMostrado es la fila formateada de las líneas de una reservación.
type DetalleMostrado struct {
	ID          int     `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	Alojamiento int     `json:"alojamiento"`
	Cupo        int     `json:"cupo"`
	Huesped     string  `json:"huesped"`
	Precio      float64 `json:"precio"`
	Sub         float64 `json:"sub"`
	Total       float64 `json:"total"`
	Simbolo     string  `json:"simbolo"`
}

// EventoCalendario es la fila del calendario de reservaciones.
type EventoCalendario struct {
	ID           int       `json:"id"`
	Nombre       string    `json:"nombre"`
	FechaLlegada time.Time `json:"fechaLlegada"`
	FechaSalida  time.Time `json:"fechaSalida"`
	Tiempo       string    `json:"tiempo"`
}

// ReservacionRepository define las operaciones del gestor de reservaciones.
// Crear y Cancelar son transaccionales: o se aplican completas o no dejan
// ningún escrito parcial.
type ReservacionRepository interface {
	// Crear ejecuta la orden completa: genera el código anual, resuelve o crea
	// el cliente por nit, inserta encabezado y líneas, incrementa el cupo de
	// cada habitación cuando hay cantidad explícita, registra la bitácora y
	// escribe los totales acumulados.
	Crear(orden *OrdenReservacion) (*Reservacion, error)
	// GetByID obtiene una reservación con sus detalles.
	GetByID(id int) (*Reservacion, error)
	// GetDetalles devuelve las líneas formateadas de una reservación.
	GetDetalles(id int) ([]DetalleMostrado, error)
	// Listar devuelve las reservaciones activas (excluye anuladas).
	Listar() ([]ReservacionResumen, error)
	// ListarPorStatus devuelve las opciones de selección con el status dado.
	ListarPorStatus(statusID int) ([]OpcionReservacion, error)
	// Calendario devuelve las ventanas de reservación con el status dado.
	Calendario(statusID int) ([]EventoCalendario, error)
	// Actualizar modifica solo los campos descriptivos del encabezado;
	// ErrSinCambios si ningún campo cambió de valor.
	Actualizar(r *Reservacion) error
	// Cancelar transiciona la reservación y todos sus detalles a cancelación,
	// desactiva su bitácora y agrega la entrada de cancelación por detalle.
	Cancelar(id, usuarioID int) (*Reservacion, error)
}
