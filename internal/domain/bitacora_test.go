package domain

import (
	"testing"
	"time"
)

func TestEntradaProgramada(t *testing.T) {
	llegada := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	salida := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	detalle := DetalleReservacion{
		ID:             7,
		FechaLlegada:   llegada,
		FechaSalida:    salida,
		TipoServicioID: 2,
	}

	entrada := EntradaProgramada(&detalle, 4)

	if !entrada.Inicio.Equal(llegada) || !entrada.Fin.Equal(salida) {
		t.Errorf("ventana = [%v, %v], se esperaba la del detalle", entrada.Inicio, entrada.Fin)
	}
	if entrada.Dias != DiasBitacoraProgramada {
		t.Errorf("dias = %d, se esperaba %d", entrada.Dias, DiasBitacoraProgramada)
	}
	if !entrada.Activa {
		t.Error("la entrada programada debe nacer activa")
	}
	if entrada.MovimientoID != MovimientoProgramada {
		t.Errorf("movimiento = %d, se esperaba %d", entrada.MovimientoID, MovimientoProgramada)
	}
	if entrada.DetalleID != 7 || entrada.UsuarioID != 4 || entrada.TipoServicioID != 2 {
		t.Errorf("referencias = (%d, %d, %d), se esperaba (7, 4, 2)",
			entrada.DetalleID, entrada.UsuarioID, entrada.TipoServicioID)
	}
}

func TestEntradaCancelacion(t *testing.T) {
	ahora := time.Date(2026, 4, 1, 15, 30, 0, 0, time.UTC)
	detalle := DetalleReservacion{ID: 9, TipoServicioID: 1}

	entrada := EntradaCancelacion(&detalle, ahora, 3)

	if !entrada.Inicio.Equal(ahora) || !entrada.Fin.Equal(ahora) {
		t.Errorf("ventana = [%v, %v], se esperaba el instante de cancelación", entrada.Inicio, entrada.Fin)
	}
	if entrada.Dias != 0 {
		t.Errorf("dias = %d, se esperaba 0", entrada.Dias)
	}
	if entrada.MovimientoID != MovimientoCancelada {
		t.Errorf("movimiento = %d, se esperaba %d", entrada.MovimientoID, MovimientoCancelada)
	}
	if !entrada.Activa {
		t.Error("la entrada de cancelación debe quedar activa")
	}
	if entrada.DetalleID != 9 || entrada.UsuarioID != 3 {
		t.Errorf("referencias = (%d, %d), se esperaba (9, 3)", entrada.DetalleID, entrada.UsuarioID)
	}
}

func TestCancelarDetalles(t *testing.T) {
	ahora := time.Date(2026, 4, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		nombre   string
		detalles []DetalleReservacion
	}{
		{"sin detalles", nil},
		{"un detalle", []DetalleReservacion{{ID: 1, StatusID: StatusPendiente, TipoServicioID: 1}}},
		{"varios detalles con status mixtos", []DetalleReservacion{
			{ID: 1, StatusID: StatusPendiente, TipoServicioID: 1},
			{ID: 2, StatusID: StatusConfirmado, TipoServicioID: 2},
			{ID: 3, StatusID: StatusEnProceso, TipoServicioID: 1},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.nombre, func(t *testing.T) {
			entradas := CancelarDetalles(tt.detalles, ahora, 5)

			if len(entradas) != len(tt.detalles) {
				t.Fatalf("entradas = %d, se esperaba una por detalle (%d)", len(entradas), len(tt.detalles))
			}
			for i := range tt.detalles {
				if tt.detalles[i].StatusID != StatusCancelacion {
					t.Errorf("detalle %d: status = %d, se esperaba %d",
						tt.detalles[i].ID, tt.detalles[i].StatusID, StatusCancelacion)
				}
				if entradas[i].DetalleID != tt.detalles[i].ID {
					t.Errorf("entrada %d: detalle = %d, se esperaba %d",
						i, entradas[i].DetalleID, tt.detalles[i].ID)
				}
				if entradas[i].MovimientoID != MovimientoCancelada || entradas[i].Dias != 0 {
					t.Errorf("entrada %d: movimiento = %d, dias = %d, se esperaba cancelación con 0 días",
						i, entradas[i].MovimientoID, entradas[i].Dias)
				}
			}
		})
	}
}
