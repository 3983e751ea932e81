package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/RenHec/HRS/internal/application"
	"github.com/RenHec/HRS/internal/domain"
)

type ClienteHandler struct {
	service *application.ClienteService
}

// NewClienteHandler crea una nueva instancia del handler de clientes
func NewClienteHandler(service *application.ClienteService) *ClienteHandler {
	return &ClienteHandler{
		service: service,
	}
}

// ClienteRequest representa los datos de un cliente para crear o actualizar
type ClienteRequest struct {
	Nit         string  `json:"nit"`
	Nombre      string  `json:"nombre" validate:"required"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Negocio     bool    `json:"negocio"`
	Ubicacion   *string `json:"ubicacion,omitempty"`
	MunicipioID int     `json:"municipioId" validate:"required,gt=0"`
}

// GetAll lista todos los clientes
func (h *ClienteHandler) GetAll(c *fiber.Ctx) error {
	clientes, err := h.service.GetAll()
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"clientes": clientes})
}

// BuscarPorNit busca un cliente por nit para precargar sus datos
func (h *ClienteHandler) BuscarPorNit(c *fiber.Ctx) error {
	nit := c.Query("nit")
	if nit == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "El nit es requerido",
		})
	}

	cliente, err := h.service.BuscarPorNit(nit)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(cliente)
}

// Resolver devuelve el cliente con el nit dado, creándolo si no existe
func (h *ClienteHandler) Resolver(c *fiber.Ctx) error {
	var req ClienteRequest
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

	cliente, err := h.service.Resolver(&domain.Cliente{
		Nit:         req.Nit,
		Nombre:      req.Nombre,
		Email:       req.Email,
		Negocio:     req.Negocio,
		Ubicacion:   req.Ubicacion,
		MunicipioID: req.MunicipioID,
	})
	if err != nil {
		return responderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// Actualizar modifica los datos de un cliente
func (h *ClienteHandler) Actualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID de cliente inválido",
		})
	}

	var req ClienteRequest
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

	err = h.service.Update(&domain.Cliente{
		ID:          id,
		Nit:         req.Nit,
		Nombre:      req.Nombre,
		Email:       req.Email,
		Negocio:     req.Negocio,
		Ubicacion:   req.Ubicacion,
		MunicipioID: req.MunicipioID,
	})
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"mensaje": "Cliente actualizado"})
}

// Eliminar borra un cliente sin reservaciones asociadas
func (h *ClienteHandler) Eliminar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID de cliente inválido",
		})
	}

	if err := h.service.Delete(id); err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"mensaje": "Cliente eliminado"})
}
