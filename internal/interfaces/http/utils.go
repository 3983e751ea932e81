package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/RenHec/HRS/internal/domain"
)

var validate = validator.New()

// responderError traduce la taxonomía de errores del dominio a códigos HTTP.
// Los errores no clasificados se reportan como 500 sin exponer el detalle
// interno.
func responderError(c *fiber.Ctx, err error) error {
	var validacion *domain.ErrorValidacion
	if errors.As(err, &validacion) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":    "Datos inválidos",
			"mensajes": validacion.Mensajes,
		})
	}

	if errors.Is(err, domain.ErrNoEncontrado) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Registro no encontrado",
		})
	}

	if errors.Is(err, domain.ErrConflicto) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "El registro entra en conflicto con otro existente",
		})
	}

	if errors.Is(err, domain.ErrSinCambios) {
		return c.Status(fiber.StatusLocked).JSON(fiber.Map{
			"error": "No se realizó ningún cambio",
		})
	}

	var transaccion *domain.ErrorTransaccion
	if errors.As(err, &transaccion) {
		return c.Status(fiber.StatusLocked).JSON(fiber.Map{
			"error": "La operación no pudo completarse, ningún cambio fue aplicado",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Error interno del servidor",
	})
}

// validarRequest corre las validaciones de struct y devuelve los mensajes por
// campo.
func validarRequest(req interface{}) []string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return []string{"solicitud inválida"}
	}

	mensajes := make([]string, 0, len(errs))
	for _, e := range errs {
		mensajes = append(mensajes, "el campo '"+e.Field()+"' no cumple la regla '"+e.Tag()+"'")
	}
	return mensajes
}
