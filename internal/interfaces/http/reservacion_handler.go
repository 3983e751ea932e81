package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/RenHec/HRS/internal/application"
	"github.com/RenHec/HRS/internal/domain"
)

type ReservacionHandler struct {
	service *application.ReservacionService
}

// NewReservacionHandler crea una nueva instancia del handler de reservaciones
func NewReservacionHandler(service *application.ReservacionService) *ReservacionHandler {
	return &ReservacionHandler{
		service: service,
	}
}

// LineaReservacionRequest representa una línea de la solicitud de reserva.
// FechaFin aplica a reservas por fecha; Minutos a reservas por tiempo.
type LineaReservacionRequest struct {
	HabitacionID int     `json:"habitacionId" validate:"required,gt=0"`
	FechaInicio  string  `json:"fechaInicio" validate:"required"` // YYYY-MM-DD o YYYY-MM-DD HH:MM
	FechaFin     *string `json:"fechaFin,omitempty"`              // YYYY-MM-DD
	Minutos      *int    `json:"minutos,omitempty" validate:"omitempty,gt=0"`
	Precio       float64 `json:"precio" validate:"required,gt=0"`
	Cupo         int     `json:"cupo" validate:"omitempty,gte=0"`
	Descripcion  string  `json:"descripcion"`
	EmailHuesped *string `json:"emailHuesped,omitempty" validate:"omitempty,email"`
}

// CrearReservacionRequest representa la petición para crear una reservación.
// Cantidad presente marca una reserva por tiempo.
type CrearReservacionRequest struct {
	Nit         string                    `json:"nit"`
	Nombre      string                    `json:"nombre" validate:"required"`
	Email       *string                   `json:"email,omitempty" validate:"omitempty,email"`
	Negocio     bool                      `json:"negocio"`
	Ubicacion   *string                   `json:"ubicacion,omitempty"`
	MunicipioID int                       `json:"municipioId" validate:"required,gt=0"`
	Evento      bool                      `json:"evento"`
	Responsable *string                   `json:"responsable,omitempty"`
	Cantidad    *int                      `json:"cantidad,omitempty" validate:"omitempty,gt=0"`
	MonedaID    int                       `json:"monedaId" validate:"required,gt=0"`
	UsuarioID   int                       `json:"usuarioId" validate:"required,gt=0"`
	Lineas      []LineaReservacionRequest `json:"lineas" validate:"required,min=1,dive"`
}

// ActualizarReservacionRequest representa la petición de actualización de los
// campos descriptivos del encabezado.
type ActualizarReservacionRequest struct {
	Nit         string  `json:"nit" validate:"required"`
	Nombre      string  `json:"nombre" validate:"required"`
	Ubicacion   *string `json:"ubicacion,omitempty"`
	Responsable *string `json:"responsable,omitempty"`
}

// CancelarReservacionRequest representa la petición de cancelación.
type CancelarReservacionRequest struct {
	UsuarioID int `json:"usuarioId" validate:"required,gt=0"`
}

// Crear crea una nueva reservación
func (h *ReservacionHandler) Crear(c *fiber.Ctx) error {
	var req CrearReservacionRequest
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

	solicitud := application.SolicitudReservacion{
		Nit:         req.Nit,
		Nombre:      req.Nombre,
		Email:       req.Email,
		Negocio:     req.Negocio,
		Ubicacion:   req.Ubicacion,
		MunicipioID: req.MunicipioID,
		Evento:      req.Evento,
		Responsable: req.Responsable,
		Cantidad:    req.Cantidad,
		MonedaID:    req.MonedaID,
		UsuarioID:   req.UsuarioID,
	}

	conHora := req.Cantidad != nil
	for i, lr := range req.Lineas {
		linea := application.LineaSolicitud{
			HabitacionID: lr.HabitacionID,
			Minutos:      lr.Minutos,
			Precio:       lr.Precio,
			Cupo:         lr.Cupo,
			Descripcion:  lr.Descripcion,
			EmailHuesped: lr.EmailHuesped,
		}

		formato := "2006-01-02"
		if conHora {
			formato = "2006-01-02 15:04"
		}
		inicio, err := time.Parse(formato, lr.FechaInicio)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Formato de fechaInicio inválido en la línea " + strconv.Itoa(i+1),
			})
		}
		linea.FechaInicio = inicio

		if lr.FechaFin != nil {
			fin, err := time.Parse("2006-01-02", *lr.FechaFin)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "Formato de fechaFin inválido en la línea " + strconv.Itoa(i+1),
				})
			}
			linea.FechaFin = &fin
		}

		solicitud.Lineas = append(solicitud.Lineas, linea)
	}

	reservacion, err := h.service.Crear(&solicitud)
	if err != nil {
		return responderError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(reservacion)
}

// Listar devuelve las reservaciones activas
func (h *ReservacionHandler) Listar(c *fiber.Ctx) error {
	resumenes, err := h.service.Listar()
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"reservaciones": resumenes})
}

// Pendientes devuelve las reservaciones pendientes como opciones de selección
func (h *ReservacionHandler) Pendientes(c *fiber.Ctx) error {
	opciones, err := h.service.Pendientes()
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"reservaciones": opciones})
}

// Confirmadas devuelve las reservaciones confirmadas como opciones de selección
func (h *ReservacionHandler) Confirmadas(c *fiber.Ctx) error {
	opciones, err := h.service.Confirmadas()
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"reservaciones": opciones})
}

// GetByID obtiene una reservación con sus detalles
func (h *ReservacionHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID de reservación inválido",
		})
	}

	reservacion, err := h.service.GetByID(id)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(reservacion)
}

// Detalles devuelve las líneas formateadas de una reservación
func (h *ReservacionHandler) Detalles(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID de reservación inválido",
		})
	}

	detalles, err := h.service.GetDetalles(id)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"detalles": detalles})
}

// Calendario devuelve las ventanas de reservación con el status solicitado
func (h *ReservacionHandler) Calendario(c *fiber.Ctx) error {
	statusID := c.QueryInt("status", domain.StatusConfirmado)

	eventos, err := h.service.Calendario(statusID)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"eventos": eventos})
}

// Actualizar modifica los campos descriptivos del encabezado
func (h *ReservacionHandler) Actualizar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID de reservación inválido",
		})
	}

	var req ActualizarReservacionRequest
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

	err = h.service.Actualizar(&domain.Reservacion{
		ID:          id,
		Nit:         req.Nit,
		Nombre:      req.Nombre,
		Ubicacion:   req.Ubicacion,
		Responsable: req.Responsable,
	})
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(fiber.Map{"mensaje": "Reservación actualizada"})
}

// Cancelar transiciona la reservación completa a cancelación
func (h *ReservacionHandler) Cancelar(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "ID de reservación inválido",
		})
	}

	var req CancelarReservacionRequest
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

	reservacion, err := h.service.Cancelar(id, req.UsuarioID)
	if err != nil {
		return responderError(c, err)
	}

	return c.JSON(reservacion)
}
