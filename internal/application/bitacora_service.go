package application

import "github.com/RenHec/HRS/internal/domain"

type BitacoraService struct {
	repo domain.BitacoraRepository
}

// NewBitacoraService crea una nueva instancia del servicio de bitácora.
func NewBitacoraService(repo domain.BitacoraRepository) *BitacoraService {
	return &BitacoraService{repo: repo}
}

// GetPorDetalle devuelve el historial de ocupación de una línea de
// reservación.
func (s *BitacoraService) GetPorDetalle(detalleID int) ([]domain.BitacoraReservacion, error) {
	if detalleID <= 0 {
		return nil, domain.NuevaValidacion("el detalle es requerido")
	}
	return s.repo.GetPorDetalle(detalleID)
}

// CorregirFechas ajusta las fechas de una entrada de bitácora. Las entradas
// nunca se eliminan.
func (s *BitacoraService) CorregirFechas(b *domain.BitacoraReservacion) error {
	if b.ID <= 0 {
		return domain.NuevaValidacion("la entrada de bitácora es requerida")
	}
	if b.Fin.Before(b.Inicio) {
		return domain.NuevaValidacion("la fecha de fin no puede ser anterior a la de inicio")
	}
	return s.repo.Actualizar(b)
}
