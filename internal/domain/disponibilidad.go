package domain

import (
	"fmt"
	"time"
)

// StatusBloqueante indica si un detalle con el status dado ocupa la habitación
// frente a nuevas reservaciones. Solo la cancelación y la anulación liberan.
func StatusBloqueante(statusID int) bool {
	switch statusID {
	case StatusPendiente, StatusEnProceso, StatusConfirmado:
		return true
	}
	return false
}

// truncarDia recorta un instante a su fecha.
func truncarDia(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// truncarMinuto recorta un instante a granularidad de minutos.
func truncarMinuto(t time.Time) time.Time {
	return t.Truncate(time.Minute)
}

// FechaContenida indica si t cae dentro de [inicio, fin], ambos extremos
// inclusivos, comparado por fecha.
func FechaContenida(t, inicio, fin time.Time) bool {
	t, inicio, fin = truncarDia(t), truncarDia(inicio), truncarDia(fin)
	return !t.Before(inicio) && !t.After(fin)
}

// MinutoContenido indica si t cae dentro de [inicio, fin] a granularidad de
// minutos, ambos extremos inclusivos.
func MinutoContenido(t, inicio, fin time.Time) bool {
	t, inicio, fin = truncarMinuto(t), truncarMinuto(inicio), truncarMinuto(fin)
	return !t.Before(inicio) && !t.After(fin)
}

// DetalleBloqueaVentana aplica la regla de exclusión por contención de
// extremos: la habitación queda excluida si el inicio o el fin de la ventana
// solicitada cae dentro del rango del detalle. Una ventana que contiene por
// completo al detalle sin compartir contención de extremos NO lo detecta; esa
// conducta se conserva a propósito (ver DESIGN.md).
func DetalleBloqueaVentana(d *DetalleReservacion, inicio, fin time.Time, conHora bool) bool {
	if !StatusBloqueante(d.StatusID) {
		return false
	}
	if conHora {
		return MinutoContenido(inicio, d.FechaLlegada, d.FechaSalida)
	}
	return FechaContenida(inicio, d.FechaLlegada, d.FechaSalida) ||
		FechaContenida(fin, d.FechaLlegada, d.FechaSalida)
}

// DetalleBloqueaSalida es la regla distinta de la consulta puntual de una sola
// habitación: excluye cuando la fecha de salida del detalle en conflicto cae
// dentro de la ventana solicitada. Se mantiene como camino separado de la
// búsqueda general.
func DetalleBloqueaSalida(d *DetalleReservacion, inicio, fin time.Time) bool {
	if !StatusBloqueante(d.StatusID) {
		return false
	}
	return FechaContenida(d.FechaSalida, inicio, fin)
}

// CalcularAlojamiento devuelve las noches enteras entre llegada y salida para
// reservas por fecha; las reservas por minutos no acumulan noches.
func CalcularAlojamiento(llegada, salida time.Time, conHora bool) int {
	if conHora {
		return 0
	}
	return int(truncarDia(salida).Sub(truncarDia(llegada)).Hours() / 24)
}

// CalcularSub devuelve el subtotal de una línea: noches por precio cuando la
// reserva es por alojamiento, cantidad por precio cuando es por tiempo.
func CalcularSub(alojamiento, multiplicador int, precio float64) float64 {
	if alojamiento == 0 {
		return float64(multiplicador) * precio
	}
	return float64(alojamiento) * precio
}

// FormatearCodigo produce el código correlativo de reservación con ancho fijo.
func FormatearCodigo(correlativo int) string {
	return fmt.Sprintf("R-%04d", correlativo)
}
