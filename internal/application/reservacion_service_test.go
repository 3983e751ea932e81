package application

import (
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/RenHec/HRS/internal/domain"
)

type fakeReservacionRepo struct {
	ordenes       []*domain.OrdenReservacion
	cancelaciones [][2]int
	actualizarErr error
}

func (f *fakeReservacionRepo) Crear(orden *domain.OrdenReservacion) (*domain.Reservacion, error) {
	f.ordenes = append(f.ordenes, orden)

	reservacion := &domain.Reservacion{
		ID:        1,
		Codigo:    domain.FormatearCodigo(1),
		Nit:       orden.Nit,
		Nombre:    orden.Nombre,
		Evento:    orden.Evento,
		Reserva:   true,
		ClienteID: 1,
		UsuarioID: orden.UsuarioID,
		MonedaID:  orden.MonedaID,
		StatusID:  domain.StatusPendiente,
	}
	for _, l := range orden.Lineas {
		reservacion.TotalReservacion += l.Sub
	}
	if reservacion.TotalReservacion > 0 {
		reservacion.Total = reservacion.TotalReservacion
	}
	return reservacion, nil
}

func (f *fakeReservacionRepo) GetByID(id int) (*domain.Reservacion, error) {
	return &domain.Reservacion{ID: id, ClienteID: 1, StatusID: domain.StatusPendiente}, nil
}

func (f *fakeReservacionRepo) GetDetalles(id int) ([]domain.DetalleMostrado, error) {
	return nil, nil
}

func (f *fakeReservacionRepo) Listar() ([]domain.ReservacionResumen, error) { return nil, nil }

func (f *fakeReservacionRepo) ListarPorStatus(statusID int) ([]domain.OpcionReservacion, error) {
	return nil, nil
}

func (f *fakeReservacionRepo) Calendario(statusID int) ([]domain.EventoCalendario, error) {
	return nil, nil
}

func (f *fakeReservacionRepo) Actualizar(r *domain.Reservacion) error { return f.actualizarErr }

func (f *fakeReservacionRepo) Cancelar(id, usuarioID int) (*domain.Reservacion, error) {
	f.cancelaciones = append(f.cancelaciones, [2]int{id, usuarioID})
	return &domain.Reservacion{ID: id, ClienteID: 1, StatusID: domain.StatusCancelacion}, nil
}

type fakeClienteRepo struct {
	clientes map[string]*domain.Cliente
}

func (f *fakeClienteRepo) GetAll() ([]domain.Cliente, error) { return nil, nil }

func (f *fakeClienteRepo) GetByID(id int) (*domain.Cliente, error) {
	for _, c := range f.clientes {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrNoEncontrado
}

func (f *fakeClienteRepo) FindByNit(nit string) (*domain.Cliente, error) {
	return f.clientes[nit], nil
}

func (f *fakeClienteRepo) FindOrCreate(cliente *domain.Cliente) (*domain.Cliente, error) {
	if existente, ok := f.clientes[cliente.Nit]; ok {
		return existente, nil
	}
	if f.clientes == nil {
		f.clientes = make(map[string]*domain.Cliente)
	}
	cliente.ID = len(f.clientes) + 1
	f.clientes[cliente.Nit] = cliente
	return cliente, nil
}

func (f *fakeClienteRepo) Update(cliente *domain.Cliente) error { return nil }

func (f *fakeClienteRepo) Delete(id int) error { return nil }

func nuevoServicioPrueba(repo *fakeReservacionRepo) *ReservacionService {
	log := logrus.New()
	return NewReservacionService(repo, &fakeClienteRepo{}, nil, log)
}

func fecha(anio int, mes time.Month, dia int) time.Time {
	return time.Date(anio, mes, dia, 0, 0, 0, 0, time.UTC)
}

func TestCrearCalculaLineasPorFecha(t *testing.T) {
	repo := &fakeReservacionRepo{}
	s := nuevoServicioPrueba(repo)

	llegada := fecha(2024, time.July, 1)
	salida := fecha(2024, time.July, 4)

	reservacion, err := s.Crear(&SolicitudReservacion{
		Nit:         "1234567",
		Nombre:      "Carlos Pérez",
		MunicipioID: 1,
		MonedaID:    1,
		UsuarioID:   1,
		Lineas: []LineaSolicitud{
			{HabitacionID: 101, FechaInicio: llegada, FechaFin: &salida, Precio: 100},
			{HabitacionID: 102, FechaInicio: llegada, FechaFin: &salida, Precio: 150},
		},
	})
	if err != nil {
		t.Fatalf("Crear error: %v", err)
	}

	if len(repo.ordenes) != 1 {
		t.Fatalf("se esperaba 1 orden, hay %d", len(repo.ordenes))
	}
	orden := repo.ordenes[0]

	if orden.Cantidad != nil {
		t.Errorf("la reserva por fecha no lleva cantidad, got %d", *orden.Cantidad)
	}

	esperados := []struct {
		alojamiento int
		sub         float64
	}{
		{3, 300},
		{3, 450},
	}
	for i, e := range esperados {
		if orden.Lineas[i].Alojamiento != e.alojamiento {
			t.Errorf("línea %d: alojamiento esperado %d, got %d", i, e.alojamiento, orden.Lineas[i].Alojamiento)
		}
		if orden.Lineas[i].Sub != e.sub {
			t.Errorf("línea %d: sub esperado %.2f, got %.2f", i, e.sub, orden.Lineas[i].Sub)
		}
		if orden.Lineas[i].Cupo != 0 {
			t.Errorf("línea %d: cupo esperado 0 sin cantidad, got %d", i, orden.Lineas[i].Cupo)
		}
	}

	if reservacion.Total != 750 {
		t.Errorf("total esperado 750, got %.2f", reservacion.Total)
	}
}

func TestCrearPorTiempo(t *testing.T) {
	repo := &fakeReservacionRepo{}
	s := nuevoServicioPrueba(repo)

	llegada := time.Date(2024, time.July, 1, 14, 30, 0, 0, time.UTC)
	minutos := 30
	cantidad := 2

	_, err := s.Crear(&SolicitudReservacion{
		Nit:         "1234567",
		Nombre:      "Carlos Pérez",
		MunicipioID: 1,
		MonedaID:    1,
		UsuarioID:   1,
		Cantidad:    &cantidad,
		Lineas: []LineaSolicitud{
			{HabitacionID: 101, FechaInicio: llegada, Minutos: &minutos, Precio: 50},
		},
	})
	if err != nil {
		t.Fatalf("Crear error: %v", err)
	}

	linea := repo.ordenes[0].Lineas[0]
	salidaEsperada := llegada.Add(60 * time.Minute)
	if !linea.FechaSalida.Equal(salidaEsperada) {
		t.Errorf("salida esperada %v, got %v", salidaEsperada, linea.FechaSalida)
	}
	if linea.Alojamiento != 0 {
		t.Errorf("alojamiento esperado 0 en reserva por tiempo, got %d", linea.Alojamiento)
	}
	if linea.Sub != 100 {
		t.Errorf("sub esperado 100 (cantidad por precio), got %.2f", linea.Sub)
	}
	if linea.Cupo != cantidad {
		t.Errorf("cupo esperado %d (hereda la cantidad), got %d", cantidad, linea.Cupo)
	}
}

func TestCrearRechazaVentanasDivergentes(t *testing.T) {
	repo := &fakeReservacionRepo{}
	s := nuevoServicioPrueba(repo)

	llegada := fecha(2024, time.July, 1)
	salida := fecha(2024, time.July, 4)
	otraSalida := fecha(2024, time.July, 6)

	_, err := s.Crear(&SolicitudReservacion{
		Nit:         "1234567",
		Nombre:      "Carlos Pérez",
		MunicipioID: 1,
		MonedaID:    1,
		UsuarioID:   1,
		Lineas: []LineaSolicitud{
			{HabitacionID: 101, FechaInicio: llegada, FechaFin: &salida, Precio: 100},
			{HabitacionID: 102, FechaInicio: llegada, FechaFin: &otraSalida, Precio: 150},
		},
	})

	var validacion *domain.ErrorValidacion
	if !errors.As(err, &validacion) {
		t.Fatalf("se esperaba error de validación, got %v", err)
	}
	if len(repo.ordenes) != 0 {
		t.Errorf("el repositorio no debe ser llamado, recibió %d órdenes", len(repo.ordenes))
	}
}

func TestCrearValidaAntesDeEjecutar(t *testing.T) {
	repo := &fakeReservacionRepo{}
	s := nuevoServicioPrueba(repo)

	llegada := fecha(2024, time.July, 1)
	salida := fecha(2024, time.July, 4)

	casos := []struct {
		nombre    string
		solicitud SolicitudReservacion
	}{
		{
			nombre: "sin nombre ni lineas",
			solicitud: SolicitudReservacion{
				Nit: "1234567", MunicipioID: 1, MonedaID: 1, UsuarioID: 1,
			},
		},
		{
			nombre: "precio en cero",
			solicitud: SolicitudReservacion{
				Nit: "1234567", Nombre: "Carlos Pérez", MunicipioID: 1, MonedaID: 1, UsuarioID: 1,
				Lineas: []LineaSolicitud{
					{HabitacionID: 101, FechaInicio: llegada, FechaFin: &salida},
				},
			},
		},
		{
			nombre: "fecha de fin anterior",
			solicitud: SolicitudReservacion{
				Nit: "1234567", Nombre: "Carlos Pérez", MunicipioID: 1, MonedaID: 1, UsuarioID: 1,
				Lineas: []LineaSolicitud{
					{HabitacionID: 101, FechaInicio: salida, FechaFin: &llegada, Precio: 100},
				},
			},
		},
		{
			nombre: "evento sin responsable",
			solicitud: SolicitudReservacion{
				Nit: "1234567", Nombre: "Carlos Pérez", MunicipioID: 1, MonedaID: 1, UsuarioID: 1,
				Evento: true,
				Lineas: []LineaSolicitud{
					{HabitacionID: 101, FechaInicio: llegada, FechaFin: &salida, Precio: 100},
				},
			},
		},
		{
			nombre: "reserva por tiempo sin minutos",
			solicitud: func() SolicitudReservacion {
				cantidad := 2
				return SolicitudReservacion{
					Nit: "1234567", Nombre: "Carlos Pérez", MunicipioID: 1, MonedaID: 1, UsuarioID: 1,
					Cantidad: &cantidad,
					Lineas: []LineaSolicitud{
						{HabitacionID: 101, FechaInicio: llegada, Precio: 100},
					},
				}
			}(),
		},
	}

	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			_, err := s.Crear(&tc.solicitud)
			var validacion *domain.ErrorValidacion
			if !errors.As(err, &validacion) {
				t.Fatalf("se esperaba error de validación, got %v", err)
			}
			if len(validacion.Mensajes) == 0 {
				t.Error("el error de validación no trae mensajes")
			}
		})
	}

	if len(repo.ordenes) != 0 {
		t.Errorf("el repositorio no debe ser llamado con solicitudes inválidas, recibió %d órdenes", len(repo.ordenes))
	}
}

func TestCrearNitVacioUsaConsumidorFinal(t *testing.T) {
	repo := &fakeReservacionRepo{}
	s := nuevoServicioPrueba(repo)

	llegada := fecha(2024, time.July, 1)
	salida := fecha(2024, time.July, 2)

	_, err := s.Crear(&SolicitudReservacion{
		Nit:         "  ",
		Nombre:      "Carlos Pérez",
		MunicipioID: 1,
		MonedaID:    1,
		UsuarioID:   1,
		Lineas: []LineaSolicitud{
			{HabitacionID: 101, FechaInicio: llegada, FechaFin: &salida, Precio: 100},
		},
	})
	if err != nil {
		t.Fatalf("Crear error: %v", err)
	}

	if repo.ordenes[0].Nit != domain.NitConsumidorFinal {
		t.Errorf("nit esperado %q, got %q", domain.NitConsumidorFinal, repo.ordenes[0].Nit)
	}
}

func TestCrearMismoDiaSinNoches(t *testing.T) {
	repo := &fakeReservacionRepo{}
	s := nuevoServicioPrueba(repo)

	dia := fecha(2024, time.July, 1)

	_, err := s.Crear(&SolicitudReservacion{
		Nit:         "1234567",
		Nombre:      "Carlos Pérez",
		MunicipioID: 1,
		MonedaID:    1,
		UsuarioID:   1,
		Lineas: []LineaSolicitud{
			{HabitacionID: 101, FechaInicio: dia, FechaFin: &dia, Precio: 100},
		},
	})
	if err != nil {
		t.Fatalf("Crear error: %v", err)
	}

	linea := repo.ordenes[0].Lineas[0]
	if linea.Alojamiento != 0 {
		t.Errorf("alojamiento esperado 0 para el mismo día, got %d", linea.Alojamiento)
	}
	// Sin noches el subtotal cae en cantidad por precio, con cantidad implícita 1.
	if linea.Sub != 100 {
		t.Errorf("sub esperado 100, got %.2f", linea.Sub)
	}
}

func TestActualizarSinCambios(t *testing.T) {
	repo := &fakeReservacionRepo{actualizarErr: domain.ErrSinCambios}
	s := nuevoServicioPrueba(repo)

	err := s.Actualizar(&domain.Reservacion{ID: 1, Nit: "1234567", Nombre: "Carlos Pérez"})
	if !errors.Is(err, domain.ErrSinCambios) {
		t.Fatalf("se esperaba ErrSinCambios, got %v", err)
	}
}

func TestCancelarValidaEntrada(t *testing.T) {
	repo := &fakeReservacionRepo{}
	s := nuevoServicioPrueba(repo)

	if _, err := s.Cancelar(0, 1); err == nil {
		t.Error("se esperaba error con id cero")
	}
	if _, err := s.Cancelar(1, 0); err == nil {
		t.Error("se esperaba error con usuario cero")
	}
	if len(repo.cancelaciones) != 0 {
		t.Errorf("el repositorio no debe ser llamado, recibió %d cancelaciones", len(repo.cancelaciones))
	}

	if _, err := s.Cancelar(7, 3); err != nil {
		t.Fatalf("Cancelar error: %v", err)
	}
	if len(repo.cancelaciones) != 1 || repo.cancelaciones[0] != [2]int{7, 3} {
		t.Errorf("cancelación esperada (7, 3), got %v", repo.cancelaciones)
	}
}
