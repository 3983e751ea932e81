package application

import (
	"fmt"
	"time"

	"github.com/RenHec/HRS/internal/domain"
)

// ResultadoDisponibilidad agrupa la respuesta de la búsqueda de habitaciones:
// las habitaciones elegibles junto con sus opciones de precio y masajes.
type ResultadoDisponibilidad struct {
	Habitaciones []domain.HabitacionDisponible `json:"habitaciones"`
	Precios      []domain.PrecioHabitacion     `json:"precios"`
	Masajes      []domain.MasajeHabitacion     `json:"masajes"`
}

// RespuestaPuedeReservar es el resultado de la consulta puntual de una sola
// habitación.
type RespuestaPuedeReservar struct {
	Disponible bool   `json:"disponible"`
	Mensaje    string `json:"mensaje"`
}

// Promocion es una oferta activa formateada para mostrar.
type Promocion struct {
	ID           int     `json:"id"`
	Nombre       string  `json:"nombre"`
	Alojamiento  int     `json:"alojamiento"`
	Precio       float64 `json:"precio"`
	HabitacionID int     `json:"habitacionId"`
}

type DisponibilidadService struct {
	habitacionRepo domain.HabitacionRepository
	catalogoRepo   domain.CatalogoRepository
}

// NewDisponibilidadService crea una nueva instancia del servicio de
// disponibilidad.
func NewDisponibilidadService(habitacionRepo domain.HabitacionRepository, catalogoRepo domain.CatalogoRepository) *DisponibilidadService {
	return &DisponibilidadService{
		habitacionRepo: habitacionRepo,
		catalogoRepo:   catalogoRepo,
	}
}

// BuscarHabitaciones busca las habitaciones libres en la ventana solicitada y
// adjunta las opciones de precio y masajes de cada una.
func (s *DisponibilidadService) BuscarHabitaciones(filtro domain.FiltroDisponibilidad) (*ResultadoDisponibilidad, error) {
	var mensajes []string
	if filtro.Inicio == nil {
		mensajes = append(mensajes, "la fecha de inicio es requerida")
	}
	if filtro.Hora == nil {
		if filtro.Fin == nil {
			mensajes = append(mensajes, "la fecha de fin es requerida")
		} else if filtro.Inicio != nil && filtro.Fin.Before(*filtro.Inicio) {
			mensajes = append(mensajes, "la fecha de fin no puede ser anterior a la de inicio")
		}
	} else if _, err := time.Parse("15:04", *filtro.Hora); err != nil {
		mensajes = append(mensajes, "la hora debe tener el formato HH:MM")
	}
	if len(mensajes) > 0 {
		return nil, domain.NuevaValidacion(mensajes...)
	}

	habitaciones, err := s.habitacionRepo.BuscarDisponibles(filtro)
	if err != nil {
		return nil, err
	}

	resultado := &ResultadoDisponibilidad{Habitaciones: habitaciones}
	if len(habitaciones) == 0 {
		return resultado, nil
	}

	ids := make([]int, 0, len(habitaciones))
	for _, h := range habitaciones {
		ids = append(ids, h.ID)
	}

	resultado.Precios, err = s.habitacionRepo.GetPrecios(ids)
	if err != nil {
		return nil, err
	}

	resultado.Masajes, err = s.habitacionRepo.GetMasajes(ids)
	if err != nil {
		return nil, err
	}

	return resultado, nil
}

// PuedeReservar consulta si una habitación puntual está libre en la ventana.
// Mantiene la regla de exclusión por fecha de salida, distinta de la búsqueda
// general.
func (s *DisponibilidadService) PuedeReservar(habitacionID int, inicio, fin time.Time) (*RespuestaPuedeReservar, error) {
	if fin.Before(inicio) {
		return nil, domain.NuevaValidacion("la fecha de fin no puede ser anterior a la de inicio")
	}

	if _, err := s.habitacionRepo.GetByID(habitacionID); err != nil {
		return nil, err
	}

	disponible, err := s.habitacionRepo.PuedeReservar(habitacionID, inicio, fin)
	if err != nil {
		return nil, err
	}

	respuesta := &RespuestaPuedeReservar{Disponible: disponible}
	if disponible {
		respuesta.Mensaje = "Si puede reservar."
	} else {
		respuesta.Mensaje = "No, no puede reservar"
	}

	return respuesta, nil
}

// Promociones devuelve las ofertas activas de una habitación con su etiqueta
// formateada.
func (s *DisponibilidadService) Promociones(habitacionID int) ([]Promocion, error) {
	ofertas, err := s.habitacionRepo.GetOfertas(habitacionID)
	if err != nil {
		return nil, err
	}

	simbolos := make(map[int]string)
	promociones := make([]Promocion, 0, len(ofertas))
	for _, o := range ofertas {
		simbolo, ok := simbolos[o.MonedaID]
		if !ok {
			moneda, err := s.catalogoRepo.GetMonedaByID(o.MonedaID)
			if err != nil {
				return nil, err
			}
			simbolo = moneda.Simbolo
			simbolos[o.MonedaID] = simbolo
		}

		promociones = append(promociones, Promocion{
			ID:           o.ID,
			Nombre:       fmt.Sprintf("%d noches por: %s %.2f", o.Alojamiento, simbolo, o.Precio),
			Alojamiento:  o.Alojamiento,
			Precio:       o.Precio,
			HabitacionID: o.HabitacionID,
		})
	}

	return promociones, nil
}

// Precios devuelve las opciones de precio de una habitación.
func (s *DisponibilidadService) Precios(habitacionID int) ([]domain.PrecioHabitacion, error) {
	if _, err := s.habitacionRepo.GetByID(habitacionID); err != nil {
		return nil, err
	}
	return s.habitacionRepo.GetPrecios([]int{habitacionID})
}
