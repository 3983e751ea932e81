package domain

import "time"

// Habitacion es una unidad reservable del hotel. Resta es el contador de cupos
// comprometidos contra la capacidad (amount_people).
type Habitacion struct {
	ID               int     `json:"id"`
	Numero           string  `json:"numero"`
	Nombre           string  `json:"nombre"`
	CantidadPersonas int     `json:"cantidadPersonas"`
	CantidadCamas    int     `json:"cantidadCamas"`
	Descripcion      string  `json:"descripcion"`
	TipoCamaID       int     `json:"tipoCamaId"`
	TipoHabitacionID int     `json:"tipoHabitacionId"`
	TipoServicioID   int     `json:"tipoServicioId"`
	Precio           float64 `json:"precio"`
	MonedaID         int     `json:"monedaId"`
	Resta            int     `json:"resta"`
}

// HabitacionDisponible es el modelo de lectura que devuelve la búsqueda de
// disponibilidad: la habitación elegible con sus etiquetas ya armadas y su
// primera foto si existe.
type HabitacionDisponible struct {
	ID               int     `json:"id"`
	Nombre           string  `json:"nombre"`
	CantidadPersonas int     `json:"cantidadPersonas"`
	TipoHabitacion   string  `json:"tipoHabitacion"`
	TipoCama         string  `json:"tipoCama"`
	Descripcion      string  `json:"descripcion"`
	TipoServicioID   int     `json:"tipoServicioId"`
	Espacio          int     `json:"espacio"`
	Foto             *string `json:"foto"`
	Esconder         bool    `json:"esconder"`
}

// PrecioHabitacion es una opción de precio por tipo de cargo para una habitación.
type PrecioHabitacion struct {
	HabitacionID int     `json:"habitacionId"`
	Nombre       string  `json:"nombre"`
	Precio       float64 `json:"precio"`
	MonedaID     int     `json:"monedaId"`
}

// MasajeHabitacion es un servicio adicional (masaje) ofrecido en una habitación.
type MasajeHabitacion struct {
	HabitacionID int     `json:"habitacionId"`
	Nombre       string  `json:"nombre"`
	Precio       float64 `json:"precio"`
	Minutos      int     `json:"minutos"`
	MonedaID     int     `json:"monedaId"`
}

// OfertaHabitacion es una promoción vigente sobre una habitación. Solo lectura
// para el motor de reservas.
type OfertaHabitacion struct {
	ID           int       `json:"id"`
	Alojamiento  int       `json:"alojamiento"`
	Precio       float64   `json:"precio"`
	Observacion  string    `json:"observacion"`
	FechaInicio  time.Time `json:"fechaInicio"`
	FechaFin     time.Time `json:"fechaFin"`
	Activa       bool      `json:"activa"`
	HabitacionID int       `json:"habitacionId"`
	MonedaID     int       `json:"monedaId"`
}

// IncrementoCupo devuelve cuánto sube el contador de cupos de la habitación:
// la cantidad explícita de la orden, o nada cuando la orden no la trae.
func IncrementoCupo(cantidad *int) int {
	if cantidad == nil {
		return 0
	}
	return *cantidad
}

// FiltroDisponibilidad son los parámetros de la búsqueda de habitaciones
// libres. Inicio/Fin se comparan por fecha salvo que Hora esté presente, en
// cuyo caso la comparación baja a granularidad de minutos. Cantidad se recibe
// y se conserva en el filtro, pero la búsqueda no lo aplica: el filtro de
// capacidad está desactivado.
type FiltroDisponibilidad struct {
	Inicio         *time.Time
	Fin            *time.Time
	Hora           *string
	TipoServicioID *int
	Cantidad       *int
}

// HabitacionRepository define el acceso al inventario de habitaciones.
type HabitacionRepository interface {
	// GetByID obtiene una habitación activa; ErrNoEncontrado si no existe o
	// está eliminada.
	GetByID(id int) (*Habitacion, error)
	// BuscarDisponibles devuelve las habitaciones sin reservación traslapada
	// según la regla de contención de extremos, con su primera foto adjunta.
	BuscarDisponibles(filtro FiltroDisponibilidad) ([]HabitacionDisponible, error)
	// PuedeReservar es la consulta puntual de una sola habitación; usa la regla
	// de exclusión por fecha de salida, distinta de la búsqueda general.
	PuedeReservar(habitacionID int, inicio, fin time.Time) (bool, error)
	// GetPrecios devuelve las opciones de precio de las habitaciones dadas.
	GetPrecios(habitacionIDs []int) ([]PrecioHabitacion, error)
	// GetMasajes devuelve los masajes ofrecidos en las habitaciones dadas.
	GetMasajes(habitacionIDs []int) ([]MasajeHabitacion, error)
	// GetOfertas devuelve las promociones activas de una habitación.
	GetOfertas(habitacionID int) ([]OfertaHabitacion, error)
}
