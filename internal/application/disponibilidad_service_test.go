package application

import (
	"errors"
	"testing"
	"time"

	"github.com/RenHec/HRS/internal/domain"
)

type fakeHabitacionRepo struct {
	disponibles []domain.HabitacionDisponible
	ofertas     []domain.OfertaHabitacion
	disponible  bool

	preciosIDs []int
	masajesIDs []int
}

func (f *fakeHabitacionRepo) GetByID(id int) (*domain.Habitacion, error) {
	return &domain.Habitacion{ID: id}, nil
}

func (f *fakeHabitacionRepo) BuscarDisponibles(filtro domain.FiltroDisponibilidad) ([]domain.HabitacionDisponible, error) {
	return f.disponibles, nil
}

func (f *fakeHabitacionRepo) PuedeReservar(habitacionID int, inicio, fin time.Time) (bool, error) {
	return f.disponible, nil
}

func (f *fakeHabitacionRepo) GetPrecios(habitacionIDs []int) ([]domain.PrecioHabitacion, error) {
	f.preciosIDs = habitacionIDs
	return []domain.PrecioHabitacion{{HabitacionID: habitacionIDs[0], Nombre: "Noche - Q 150.00", Precio: 150}}, nil
}

func (f *fakeHabitacionRepo) GetMasajes(habitacionIDs []int) ([]domain.MasajeHabitacion, error) {
	f.masajesIDs = habitacionIDs
	return nil, nil
}

func (f *fakeHabitacionRepo) GetOfertas(habitacionID int) ([]domain.OfertaHabitacion, error) {
	return f.ofertas, nil
}

type fakeCatalogoRepo struct{}

func (f *fakeCatalogoRepo) GetStatus() ([]domain.Status, error)        { return nil, nil }
func (f *fakeCatalogoRepo) GetStatusByID(id int) (*domain.Status, error) {
	return &domain.Status{ID: id}, nil
}
func (f *fakeCatalogoRepo) GetMovimientos() ([]domain.Movimiento, error) { return nil, nil }
func (f *fakeCatalogoRepo) GetMonedas() ([]domain.Moneda, error)         { return nil, nil }
func (f *fakeCatalogoRepo) GetMonedaByID(id int) (*domain.Moneda, error) {
	return &domain.Moneda{ID: id, Nombre: "Quetzal", Simbolo: "Q"}, nil
}
func (f *fakeCatalogoRepo) GetMunicipios() ([]domain.Municipio, error) { return nil, nil }
func (f *fakeCatalogoRepo) GetMunicipioByID(id int) (*domain.Municipio, error) {
	return &domain.Municipio{ID: id, Nombre: "Flores", DepartamentoID: 1, Departamento: "Petén"}, nil
}

func TestBuscarHabitacionesRequiereVentana(t *testing.T) {
	s := NewDisponibilidadService(&fakeHabitacionRepo{}, &fakeCatalogoRepo{})

	inicio := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	hora := "25:99"

	casos := []struct {
		nombre string
		filtro domain.FiltroDisponibilidad
	}{
		{"sin fechas", domain.FiltroDisponibilidad{}},
		{"sin fin en modo fecha", domain.FiltroDisponibilidad{Inicio: &inicio}},
		{"hora inválida", domain.FiltroDisponibilidad{Inicio: &inicio, Hora: &hora}},
	}

	for _, tc := range casos {
		t.Run(tc.nombre, func(t *testing.T) {
			_, err := s.BuscarHabitaciones(tc.filtro)
			var validacion *domain.ErrorValidacion
			if !errors.As(err, &validacion) {
				t.Fatalf("se esperaba error de validación, got %v", err)
			}
		})
	}
}

func TestBuscarHabitacionesAdjuntaPreciosYMasajes(t *testing.T) {
	repo := &fakeHabitacionRepo{
		disponibles: []domain.HabitacionDisponible{{ID: 4}, {ID: 9}},
	}
	s := NewDisponibilidadService(repo, &fakeCatalogoRepo{})

	inicio := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)

	resultado, err := s.BuscarHabitaciones(domain.FiltroDisponibilidad{Inicio: &inicio, Fin: &fin})
	if err != nil {
		t.Fatalf("BuscarHabitaciones error: %v", err)
	}

	if len(resultado.Habitaciones) != 2 {
		t.Fatalf("se esperaban 2 habitaciones, hay %d", len(resultado.Habitaciones))
	}

	esperados := []int{4, 9}
	for i, id := range esperados {
		if repo.preciosIDs[i] != id || repo.masajesIDs[i] != id {
			t.Errorf("ids esperados %v; precios %v, masajes %v", esperados, repo.preciosIDs, repo.masajesIDs)
			break
		}
	}

	if len(resultado.Precios) != 1 {
		t.Errorf("se esperaba 1 opción de precio, hay %d", len(resultado.Precios))
	}
}

func TestBuscarHabitacionesSinResultados(t *testing.T) {
	repo := &fakeHabitacionRepo{}
	s := NewDisponibilidadService(repo, &fakeCatalogoRepo{})

	inicio := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)

	resultado, err := s.BuscarHabitaciones(domain.FiltroDisponibilidad{Inicio: &inicio, Fin: &fin})
	if err != nil {
		t.Fatalf("BuscarHabitaciones error: %v", err)
	}

	if len(resultado.Habitaciones) != 0 {
		t.Errorf("se esperaban 0 habitaciones, hay %d", len(resultado.Habitaciones))
	}
	if repo.preciosIDs != nil || repo.masajesIDs != nil {
		t.Error("sin habitaciones no deben consultarse precios ni masajes")
	}
}

func TestPuedeReservarMensajes(t *testing.T) {
	inicio := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
	fin := time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)

	casos := []struct {
		disponible bool
		mensaje    string
	}{
		{true, "Si puede reservar."},
		{false, "No, no puede reservar"},
	}

	for _, tc := range casos {
		s := NewDisponibilidadService(&fakeHabitacionRepo{disponible: tc.disponible}, &fakeCatalogoRepo{})
		respuesta, err := s.PuedeReservar(1, inicio, fin)
		if err != nil {
			t.Fatalf("PuedeReservar error: %v", err)
		}
		if respuesta.Disponible != tc.disponible {
			t.Errorf("disponible esperado %v, got %v", tc.disponible, respuesta.Disponible)
		}
		if respuesta.Mensaje != tc.mensaje {
			t.Errorf("mensaje esperado %q, got %q", tc.mensaje, respuesta.Mensaje)
		}
	}

	s := NewDisponibilidadService(&fakeHabitacionRepo{}, &fakeCatalogoRepo{})
	if _, err := s.PuedeReservar(1, fin, inicio); err == nil {
		t.Error("se esperaba error con la ventana invertida")
	}
}

func TestPromocionesEtiqueta(t *testing.T) {
	repo := &fakeHabitacionRepo{
		ofertas: []domain.OfertaHabitacion{
			{ID: 1, Alojamiento: 3, Precio: 250, HabitacionID: 5, MonedaID: 1},
		},
	}
	s := NewDisponibilidadService(repo, &fakeCatalogoRepo{})

	promociones, err := s.Promociones(5)
	if err != nil {
		t.Fatalf("Promociones error: %v", err)
	}

	if len(promociones) != 1 {
		t.Fatalf("se esperaba 1 promoción, hay %d", len(promociones))
	}
	if promociones[0].Nombre != "3 noches por: Q 250.00" {
		t.Errorf("etiqueta inesperada: %q", promociones[0].Nombre)
	}
}
