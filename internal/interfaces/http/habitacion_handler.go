package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/RenHec/HRS/internal/application"
	"github.com/RenHec/HRS/internal/domain"
)

type HabitacionHandler struct {
	service *application.DisponibilidadService
}

// NewHabitacionHandler crea una nueva instancia del handler de habitaciones
func NewHabitacionHandler(service *application.DisponibilidadService) *HabitacionHandler {
	return &HabitacionHandler{
		service: service,
	}
}

// BuscarDisponiblesRequest representa la petición de búsqueda de habitaciones
// libres. Hora presente baja la comparación a granularidad de minutos.
type BuscarDisponiblesRequest struct {
	FechaInicio    string  `json:"fechaInicio" validate:"required"` // YYYY-MM-DD
	FechaFin       *string `json:"fechaFin,omitempty"`              // YYYY-MM-DD
	Hora           *string `json:"hora,omitempty"`                  // HH:MM
	TipoServicioID *int    `json:"tipoServicioId,omitempty" validate:"omitempty,gt=0"`
	Cantidad       *int    `json:"cantidad,omitempty" validate:"omitempty,gt=0"`
}

// PuedeReservarRequest representa la consulta puntual de una sola habitación
type PuedeReservarRequest struct {
	HabitacionID int    `json:"habitacionId" validate:"required,gt=0"`
	FechaInicio  string `json:"fechaInicio" validate:"required"` // YYYY-MM-DD
	FechaFin     string `json:"fechaFin" validate:"required"`    // YYYY-MM-DD
}

// BuscarDisponibles busca las habitaciones libres en la ventana solicitada
func (h *HabitacionHandler) BuscarDisponibles(c *fiber.Ctx) error {
	var req BuscarDisponiblesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	if mensajes := validarRequest(&req); mensajes != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":    "Datos inválidos",
			"mensajes": mensajes,
		})
	}

	inicio, err := time.Parse("2006-01-02", req.FechaInicio)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de fechaInicio inválido. Use YYYY-MM-DD",
		})
	}

	filtro := domain.FiltroDisponibilidad{
		Inicio:         &inicio,
		Hora:           req.Hora,
		TipoServicioID: req.TipoServicioID,
		Cantidad:       req.Cantidad,
	}

	if req.FechaFin != nil {
		fin, err := time.Parse("2006-01-02", *req.FechaFin)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Formato de fechaFin inválido. Use YYYY-MM-DD",
			})
		}
		filtro.Fin = &fin
	}

	resultado, err := h.service.BuscarHabitaciones(filtro)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(resultado)
}

// PuedeReservar consulta si una habitación puntual está libre en la ventana
func (h *HabitacionHandler) PuedeReservar(c *fiber.Ctx) error {
	var req PuedeReservarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de solicitud inválido",
		})
	}

	if mensajes := validarRequest(&req); mensajes != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":    "Datos inválidos",
			"mensajes": mensajes,
		})
	}

	inicio, err := time.Parse("2006-01-02", req.FechaInicio)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de fechaInicio inválido. Use YYYY-MM-DD",
		})
	}

	fin, err := time.Parse("2006-01-02", req.FechaFin)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de fechaFin inválido. Use YYYY-MM-DD",
		})
	}

	respuesta, err := h.service.PuedeReservar(req.HabitacionID, inicio, fin)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(respuesta)
}

// Promociones devuelve las ofertas activas de una habitación
func (h *HabitacionHandler) Promociones(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID de habitación inválido",
		})
	}

	promociones, err := h.service.Promociones(id)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"promociones": promociones})
}

// Precios devuelve las opciones de precio de una habitación
func (h *HabitacionHandler) Precios(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID de habitación inválido",
		})
	}

	precios, err := h.service.Precios(id)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"precios": precios})
}
