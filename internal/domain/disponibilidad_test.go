package domain

import (
	"testing"
	"time"
)

func fecha(anio int, mes time.Month, dia int) time.Time {
	return time.Date(anio, mes, dia, 0, 0, 0, 0, time.UTC)
}

func TestDetalleBloqueaVentana_ContencionDeExtremos(t *testing.T) {
	// Detalle vigente del 10 al 15 de junio.
	detalle := &DetalleReservacion{
		FechaLlegada: fecha(2024, time.June, 10),
		FechaSalida:  fecha(2024, time.June, 15),
		StatusID:     StatusConfirmado,
	}

	cases := []struct {
		nombre  string
		inicio  time.Time
		fin     time.Time
		bloquea bool
	}{
		{"inicio cae dentro del detalle", fecha(2024, time.June, 12), fecha(2024, time.June, 20), true},
		{"fin cae dentro del detalle", fecha(2024, time.June, 5), fecha(2024, time.June, 11), true},
		{"ventana idéntica", fecha(2024, time.June, 10), fecha(2024, time.June, 15), true},
		{"extremos inclusivos en la salida", fecha(2024, time.June, 15), fecha(2024, time.June, 18), true},
		{"ventana posterior sin contacto", fecha(2024, time.June, 20), fecha(2024, time.June, 25), false},
		{"ventana anterior sin contacto", fecha(2024, time.June, 1), fecha(2024, time.June, 9), false},
		// La ventana contiene por completo al detalle pero ningún extremo cae
		// dentro de él: la regla de contención de extremos no la detecta.
		{"ventana que contiene al detalle", fecha(2024, time.June, 5), fecha(2024, time.June, 20), false},
	}

	for _, tc := range cases {
		if got := DetalleBloqueaVentana(detalle, tc.inicio, tc.fin, false); got != tc.bloquea {
			t.Errorf("%s: DetalleBloqueaVentana = %v, se esperaba %v", tc.nombre, got, tc.bloquea)
		}
	}
}

func TestDetalleBloqueaVentana_StatusCancelado(t *testing.T) {
	detalle := &DetalleReservacion{
		FechaLlegada: fecha(2024, time.June, 10),
		FechaSalida:  fecha(2024, time.June, 15),
		StatusID:     StatusCancelacion,
	}

	if DetalleBloqueaVentana(detalle, fecha(2024, time.June, 12), fecha(2024, time.June, 20), false) {
		t.Error("un detalle cancelado no debe bloquear la ventana")
	}
}

func TestDetalleBloqueaVentana_ModoHora(t *testing.T) {
	detalle := &DetalleReservacion{
		FechaLlegada: time.Date(2024, time.June, 10, 14, 0, 0, 0, time.UTC),
		FechaSalida:  time.Date(2024, time.June, 10, 15, 30, 0, 0, time.UTC),
		StatusID:     StatusPendiente,
	}

	dentro := time.Date(2024, time.June, 10, 14, 45, 0, 0, time.UTC)
	fuera := time.Date(2024, time.June, 10, 15, 31, 0, 0, time.UTC)

	if !DetalleBloqueaVentana(detalle, dentro, dentro.Add(time.Hour), true) {
		t.Error("el inicio a las 14:45 cae dentro del detalle y debe bloquear")
	}
	if DetalleBloqueaVentana(detalle, fuera, fuera.Add(time.Hour), true) {
		t.Error("el inicio a las 15:31 queda fuera del detalle y no debe bloquear")
	}
}

func TestDetalleBloqueaSalida(t *testing.T) {
	detalle := &DetalleReservacion{
		FechaLlegada: fecha(2024, time.June, 10),
		FechaSalida:  fecha(2024, time.June, 15),
		StatusID:     StatusEnProceso,
	}

	// La consulta puntual solo mira la fecha de salida del conflicto.
	if !DetalleBloqueaSalida(detalle, fecha(2024, time.June, 14), fecha(2024, time.June, 20)) {
		t.Error("la salida del 15 cae en la ventana y debe bloquear")
	}
	if DetalleBloqueaSalida(detalle, fecha(2024, time.June, 10), fecha(2024, time.June, 14)) {
		t.Error("la salida del 15 queda fuera de la ventana y no debe bloquear")
	}
}

func TestCalcularAlojamiento(t *testing.T) {
	cases := []struct {
		llegada time.Time
		salida  time.Time
		conHora bool
		noches  int
	}{
		{fecha(2024, time.July, 1), fecha(2024, time.July, 4), false, 3},
		{fecha(2024, time.July, 1), fecha(2024, time.July, 2), false, 1},
		{fecha(2024, time.July, 1), fecha(2024, time.July, 1), false, 0},
		{fecha(2024, time.July, 1), fecha(2024, time.July, 4), true, 0},
	}

	for _, tc := range cases {
		if got := CalcularAlojamiento(tc.llegada, tc.salida, tc.conHora); got != tc.noches {
			t.Errorf("CalcularAlojamiento(%v, %v, %v) = %d, se esperaba %d",
				tc.llegada.Format("2006-01-02"), tc.salida.Format("2006-01-02"), tc.conHora, got, tc.noches)
		}
	}
}

func TestCalcularSub(t *testing.T) {
	cases := []struct {
		alojamiento   int
		multiplicador int
		precio        float64
		sub           float64
	}{
		{3, 1, 100, 300},  // tres noches
		{0, 2, 150, 300},  // servicio por tiempo, cantidad dos
		{0, 1, 75.5, 75.5},
		{5, 4, 100, 500},  // con alojamiento la cantidad no multiplica
	}

	for _, tc := range cases {
		if got := CalcularSub(tc.alojamiento, tc.multiplicador, tc.precio); got != tc.sub {
			t.Errorf("CalcularSub(%d, %d, %.2f) = %.2f, se esperaba %.2f",
				tc.alojamiento, tc.multiplicador, tc.precio, got, tc.sub)
		}
	}
}

func TestFormatearCodigo(t *testing.T) {
	cases := []struct {
		correlativo int
		codigo      string
	}{
		{1, "R-0001"},
		{5, "R-0005"},
		{42, "R-0042"},
		{9999, "R-9999"},
	}

	for _, tc := range cases {
		if got := FormatearCodigo(tc.correlativo); got != tc.codigo {
			t.Errorf("FormatearCodigo(%d) = %q, se esperaba %q", tc.correlativo, got, tc.codigo)
		}
	}

	// El correlativo es secuencial dentro del año: el quinto código va después
	// del cuarto y no se repite.
	if FormatearCodigo(4) == FormatearCodigo(5) {
		t.Error("códigos consecutivos no deben coincidir")
	}
}

func TestStatusBloqueante(t *testing.T) {
	bloqueantes := []int{StatusPendiente, StatusEnProceso, StatusConfirmado}
	for _, s := range bloqueantes {
		if !StatusBloqueante(s) {
			t.Errorf("el status %d debe bloquear disponibilidad", s)
		}
	}
	if StatusBloqueante(StatusCancelacion) || StatusBloqueante(StatusAnulado) {
		t.Error("cancelación y anulación no deben bloquear disponibilidad")
	}
}
