package application

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/RenHec/HRS/internal/domain"
	"github.com/RenHec/HRS/internal/email"
)

// LineaSolicitud es una línea de la solicitud de reservación. FechaFin aplica
// a reservas por fecha; Minutos a reservas por tiempo. EmailHuesped solo se
// usa en eventos.
type LineaSolicitud struct {
	HabitacionID int        `json:"habitacionId"`
	FechaInicio  time.Time  `json:"fechaInicio"`
	FechaFin     *time.Time `json:"fechaFin,omitempty"`
	Minutos      *int       `json:"minutos,omitempty"`
	Precio       float64    `json:"precio"`
	Cupo         int        `json:"cupo"`
	Descripcion  string     `json:"descripcion"`
	EmailHuesped *string    `json:"emailHuesped,omitempty"`
}

// SolicitudReservacion es la solicitud completa de reserva. Cantidad presente
// marca una reserva por tiempo: cada línea requiere minutos y la salida se
// calcula como llegada más minutos por cantidad. Sin cantidad la reserva es
// por fecha y cada línea requiere fecha de fin.
type SolicitudReservacion struct {
	Nit         string           `json:"nit"`
	Nombre      string           `json:"nombre"`
	Email       *string          `json:"email,omitempty"`
	Negocio     bool             `json:"negocio"`
	Ubicacion   *string          `json:"ubicacion,omitempty"`
	MunicipioID int              `json:"municipioId"`
	Evento      bool             `json:"evento"`
	Responsable *string          `json:"responsable,omitempty"`
	Cantidad    *int             `json:"cantidad,omitempty"`
	MonedaID    int              `json:"monedaId"`
	UsuarioID   int              `json:"usuarioId"`
	Lineas      []LineaSolicitud `json:"lineas"`
}

type ReservacionService struct {
	reservacionRepo domain.ReservacionRepository
	clienteRepo     domain.ClienteRepository
	emailClient     *email.Client
	validator       *Validator
	log             *logrus.Logger
}

// NewReservacionService crea una nueva instancia del servicio de reservaciones.
func NewReservacionService(
	reservacionRepo domain.ReservacionRepository,
	clienteRepo domain.ClienteRepository,
	emailClient *email.Client,
	log *logrus.Logger,
) *ReservacionService {
	return &ReservacionService{
		reservacionRepo: reservacionRepo,
		clienteRepo:     clienteRepo,
		emailClient:     emailClient,
		validator:       &Validator{},
		log:             log,
	}
}

// armarOrden valida la solicitud completa y la convierte en la orden calculada
// que ejecuta el gestor transaccional. Toda la validación ocurre aquí, antes
// de abrir cualquier transacción.
func (s *ReservacionService) armarOrden(sol *SolicitudReservacion) (*domain.OrdenReservacion, error) {
	var mensajes []string

	nit := strings.TrimSpace(sol.Nit)
	if nit == "" {
		nit = domain.NitConsumidorFinal
	}
	if err := s.validator.ValidateNit(nit); err != nil {
		mensajes = append(mensajes, err.Error())
	}
	if err := s.validator.ValidateName(sol.Nombre, "nombre"); err != nil {
		mensajes = append(mensajes, err.Error())
	}
	if sol.Email != nil && *sol.Email != "" {
		if err := s.validator.ValidateEmail(*sol.Email); err != nil {
			mensajes = append(mensajes, err.Error())
		}
	}
	if sol.MunicipioID <= 0 {
		mensajes = append(mensajes, "el municipio es requerido")
	}
	if sol.MonedaID <= 0 {
		mensajes = append(mensajes, "la moneda es requerida")
	}
	if sol.UsuarioID <= 0 {
		mensajes = append(mensajes, "el usuario es requerido")
	}
	if sol.Evento && (sol.Responsable == nil || strings.TrimSpace(*sol.Responsable) == "") {
		mensajes = append(mensajes, "el responsable es requerido para reservaciones de evento")
	}
	if len(sol.Lineas) == 0 {
		mensajes = append(mensajes, "la reservación debe tener al menos una línea")
	}

	conHora := sol.Cantidad != nil
	multiplicador := 1
	if conHora {
		if *sol.Cantidad <= 0 {
			mensajes = append(mensajes, "la cantidad debe ser mayor a cero")
		} else {
			multiplicador = *sol.Cantidad
		}
	}

	lineas := make([]domain.LineaOrden, 0, len(sol.Lineas))
	var ventana *[2]time.Time
	for i, ls := range sol.Lineas {
		posicion := i + 1

		if ls.HabitacionID <= 0 {
			mensajes = append(mensajes, fmt.Sprintf("línea %d: la habitación es requerida", posicion))
		}
		if ls.Precio <= 0 {
			mensajes = append(mensajes, fmt.Sprintf("línea %d: el precio debe ser mayor a cero", posicion))
		}
		if sol.Evento && ls.EmailHuesped != nil && *ls.EmailHuesped != "" {
			if err := s.validator.ValidateEmail(*ls.EmailHuesped); err != nil {
				mensajes = append(mensajes, fmt.Sprintf("línea %d: %s", posicion, err.Error()))
			}
		}

		linea := domain.LineaOrden{
			HabitacionID: ls.HabitacionID,
			FechaLlegada: ls.FechaInicio,
			Precio:       ls.Precio,
			Cupo:         ls.Cupo,
			Descripcion:  ls.Descripcion,
			EmailHuesped: ls.EmailHuesped,
		}
		if linea.Cupo <= 0 {
			// Sin cupo explícito la línea hereda la cantidad de la solicitud;
			// en reservas por fecha queda en cero.
			linea.Cupo = domain.IncrementoCupo(sol.Cantidad)
		}

		if conHora {
			if ls.Minutos == nil || *ls.Minutos <= 0 {
				mensajes = append(mensajes, fmt.Sprintf("línea %d: los minutos son requeridos en reservas por tiempo", posicion))
				continue
			}
			// La salida se deriva del tiempo contratado: minutos por cantidad
			// a partir de la llegada.
			linea.FechaSalida = ls.FechaInicio.Add(time.Duration(*ls.Minutos*multiplicador) * time.Minute)
			linea.Alojamiento = 0
		} else {
			if ls.FechaFin == nil {
				mensajes = append(mensajes, fmt.Sprintf("línea %d: la fecha de fin es requerida", posicion))
				continue
			}
			if ls.FechaFin.Before(ls.FechaInicio) {
				mensajes = append(mensajes, fmt.Sprintf("línea %d: la fecha de fin no puede ser anterior a la de inicio", posicion))
				continue
			}
			// La estadía es una sola por reservación: toda línea por fecha usa
			// la misma ventana de llegada y salida.
			if ventana == nil {
				ventana = &[2]time.Time{ls.FechaInicio, *ls.FechaFin}
			} else if !ventana[0].Equal(ls.FechaInicio) || !ventana[1].Equal(*ls.FechaFin) {
				mensajes = append(mensajes, fmt.Sprintf("línea %d: todas las líneas deben compartir la misma ventana de fechas", posicion))
				continue
			}
			linea.FechaSalida = *ls.FechaFin
			linea.Alojamiento = domain.CalcularAlojamiento(linea.FechaLlegada, linea.FechaSalida, false)
		}

		linea.Sub = domain.CalcularSub(linea.Alojamiento, multiplicador, linea.Precio)
		lineas = append(lineas, linea)
	}

	if len(mensajes) > 0 {
		return nil, domain.NuevaValidacion(mensajes...)
	}

	return &domain.OrdenReservacion{
		Nit:         nit,
		Nombre:      strings.TrimSpace(sol.Nombre),
		Email:       sol.Email,
		Negocio:     sol.Negocio,
		Ubicacion:   sol.Ubicacion,
		MunicipioID: sol.MunicipioID,
		Evento:      sol.Evento,
		Responsable: sol.Responsable,
		Cantidad:    sol.Cantidad,
		MonedaID:    sol.MonedaID,
		UsuarioID:   sol.UsuarioID,
		Lineas:      lineas,
	}, nil
}

// Crear valida la solicitud, ejecuta la orden de reserva como una sola
// transacción y notifica al cliente por correo. El correo nunca hace fallar la
// reservación ya confirmada.
func (s *ReservacionService) Crear(sol *SolicitudReservacion) (*domain.Reservacion, error) {
	orden, err := s.armarOrden(sol)
	if err != nil {
		return nil, err
	}

	reservacion, err := s.reservacionRepo.Crear(orden)
	if err != nil {
		return nil, err
	}

	if s.emailClient != nil && sol.Email != nil && *sol.Email != "" {
		destino := *sol.Email
		go func() {
			if err := s.enviarEmailConfirmacion(destino, reservacion); err != nil {
				s.log.WithFields(logrus.Fields{
					"reservacion": reservacion.Codigo,
					"destino":     destino,
				}).WithError(err).Warn("no se pudo enviar el email de confirmación")
			}
		}()
	}

	return reservacion, nil
}

// Cancelar ejecuta la cancelación completa de la reservación y avisa al
// cliente por correo si tiene uno registrado.
func (s *ReservacionService) Cancelar(id, usuarioID int) (*domain.Reservacion, error) {
	if id <= 0 {
		return nil, domain.NuevaValidacion("la reservación es requerida")
	}
	if usuarioID <= 0 {
		return nil, domain.NuevaValidacion("el usuario es requerido")
	}

	reservacion, err := s.reservacionRepo.Cancelar(id, usuarioID)
	if err != nil {
		return nil, err
	}

	if s.emailClient != nil {
		go func() {
			cliente, err := s.clienteRepo.GetByID(reservacion.ClienteID)
			if err != nil || cliente.Email == nil || *cliente.Email == "" {
				return
			}
			if err := s.enviarEmailCancelacion(*cliente.Email, reservacion); err != nil {
				s.log.WithFields(logrus.Fields{
					"reservacion": reservacion.Codigo,
				}).WithError(err).Warn("no se pudo enviar el aviso de cancelación")
			}
		}()
	}

	return reservacion, nil
}

// Actualizar modifica los campos descriptivos del encabezado de una
// reservación.
func (s *ReservacionService) Actualizar(res *domain.Reservacion) error {
	var mensajes []string
	if res.ID <= 0 {
		mensajes = append(mensajes, "la reservación es requerida")
	}
	if err := s.validator.ValidateNit(res.Nit); err != nil {
		mensajes = append(mensajes, err.Error())
	}
	if err := s.validator.ValidateName(res.Nombre, "nombre"); err != nil {
		mensajes = append(mensajes, err.Error())
	}
	if len(mensajes) > 0 {
		return domain.NuevaValidacion(mensajes...)
	}

	return s.reservacionRepo.Actualizar(res)
}

func (s *ReservacionService) GetByID(id int) (*domain.Reservacion, error) {
	return s.reservacionRepo.GetByID(id)
}

func (s *ReservacionService) GetDetalles(id int) ([]domain.DetalleMostrado, error) {
	if _, err := s.reservacionRepo.GetByID(id); err != nil {
		return nil, err
	}
	return s.reservacionRepo.GetDetalles(id)
}

func (s *ReservacionService) Listar() ([]domain.ReservacionResumen, error) {
	return s.reservacionRepo.Listar()
}

// Pendientes devuelve las reservaciones pendientes como opciones de selección.
func (s *ReservacionService) Pendientes() ([]domain.OpcionReservacion, error) {
	return s.reservacionRepo.ListarPorStatus(domain.StatusPendiente)
}

// Confirmadas devuelve las reservaciones confirmadas como opciones de
// selección.
func (s *ReservacionService) Confirmadas() ([]domain.OpcionReservacion, error) {
	return s.reservacionRepo.ListarPorStatus(domain.StatusConfirmado)
}

func (s *ReservacionService) Calendario(statusID int) ([]domain.EventoCalendario, error) {
	return s.reservacionRepo.Calendario(statusID)
}

// enviarEmailConfirmacion envía el email de confirmación de la reservación.
func (s *ReservacionService) enviarEmailConfirmacion(destino string, reservacion *domain.Reservacion) error {
	subject := fmt.Sprintf("Confirmación de Reservación %s", reservacion.Codigo)

	var detalles strings.Builder
	for _, d := range reservacion.Detalles {
		detalles.WriteString(fmt.Sprintf(`
					<p><strong>%s:</strong> del %s al %s — %.2f</p>`,
			d.Huesped,
			d.FechaLlegada.Format("02/01/2006"),
			d.FechaSalida.Format("02/01/2006"),
			d.Sub,
		))
	}

	htmlBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<body>
			<div>
				<h2>Su reservación ha sido registrada</h2>
				<div>
					<p><strong>Código de Reservación:</strong> %s</p>
					<p><strong>Nombre:</strong> %s</p>
					<p><strong>Fecha de Registro:</strong> %s</p>
				</div>
				<div>
					<h3>Detalle</h3>%s
					<p><strong>Total:</strong> %.2f</p>
				</div>
				<p>Gracias por su preferencia. Esperamos verle pronto.</p>
				<p>Este es un correo automático, por favor no responder.</p>
			</div>
		</body>
		</html>
	`,
		reservacion.Codigo,
		reservacion.Nombre,
		reservacion.CreadaEn.Format("02/01/2006 15:04"),
		detalles.String(),
		reservacion.Total,
	)

	if err := s.emailClient.SendEmail(destino, subject, htmlBody); err != nil {
		return fmt.Errorf("error al enviar email: %w", err)
	}

	return nil
}

// enviarEmailCancelacion envía el aviso de cancelación de la reservación.
func (s *ReservacionService) enviarEmailCancelacion(destino string, reservacion *domain.Reservacion) error {
	subject := fmt.Sprintf("Cancelación de Reservación %s", reservacion.Codigo)

	htmlBody := fmt.Sprintf(`
		<!DOCTYPE html>
		<html>
		<body>
			<div>
				<h2>Su reservación ha sido cancelada</h2>
				<div>
					<p><strong>Código de Reservación:</strong> %s</p>
					<p><strong>Nombre:</strong> %s</p>
				</div>
				<p>Si no solicitó esta cancelación, por favor comuníquese con nosotros.</p>
				<p>Este es un correo automático, por favor no responder.</p>
			</div>
		</body>
		</html>
	`,
		reservacion.Codigo,
		reservacion.Nombre,
	)

	if err := s.emailClient.SendEmail(destino, subject, htmlBody); err != nil {
		return fmt.Errorf("error al enviar email: %w", err)
	}

	return nil
}
