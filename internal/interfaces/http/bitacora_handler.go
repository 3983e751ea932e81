package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/RenHec/HRS/internal/application"
	"github.com/RenHec/HRS/internal/domain"
)

type BitacoraHandler struct {
	service *application.BitacoraService
}

// NewBitacoraHandler crea una nueva instancia del handler de bitácora
func NewBitacoraHandler(service *application.BitacoraService) *BitacoraHandler {
	return &BitacoraHandler{
		service: service,
	}
}

// CorregirFechasRequest representa la corrección de fechas de una entrada
type CorregirFechasRequest struct {
	Inicio string `json:"inicio" validate:"required"` // YYYY-MM-DD HH:MM
	Fin    string `json:"fin" validate:"required"`    // YYYY-MM-DD HH:MM
}

// GetPorDetalle devuelve el historial de ocupación de una línea de reservación
func (h *BitacoraHandler) GetPorDetalle(c *fiber.Ctx) error {
	detalleID, err := c.ParamsInt("id")
	if err != nil || detalleID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID de detalle inválido",
		})
	}

	entradas, err := h.service.GetPorDetalle(detalleID)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"bitacora": entradas})
}

// CorregirFechas ajusta las fechas de una entrada de bitácora
func (h *BitacoraHandler) CorregirFechas(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID de bitácora inválido",
		})
	}

	var req CorregirFechasRequest
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

	inicio, err := time.Parse("2006-01-02 15:04", req.Inicio)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de inicio inválido. Use YYYY-MM-DD HH:MM",
		})
	}

	fin, err := time.Parse("2006-01-02 15:04", req.Fin)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Formato de fin inválido. Use YYYY-MM-DD HH:MM",
		})
	}

	err = h.service.CorregirFechas(&domain.BitacoraReservacion{
		ID:     id,
		Inicio: inicio,
		Fin:    fin,
	})
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"mensaje": "Bitácora actualizada"})
}
