package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/RenHec/HRS/internal/application"
)

type CatalogoHandler struct {
	service *application.CatalogoService
}

// NewCatalogoHandler crea una nueva instancia del handler de catálogos
func NewCatalogoHandler(service *application.CatalogoService) *CatalogoHandler {
	return &CatalogoHandler{
		service: service,
	}
}

func (h *CatalogoHandler) GetStatus(c *fiber.Ctx) error {
	status, err := h.service.GetStatus()
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"status": status})
}

func (h *CatalogoHandler) GetMovimientos(c *fiber.Ctx) error {
	movimientos, err := h.service.GetMovimientos()
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"movimientos": movimientos})
}

func (h *CatalogoHandler) GetMonedas(c *fiber.Ctx) error {
	monedas, err := h.service.GetMonedas()
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"monedas": monedas})
}

func (h *CatalogoHandler) GetMunicipios(c *fiber.Ctx) error {
	municipios, err := h.service.GetMunicipios()
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"municipios": municipios})
}
