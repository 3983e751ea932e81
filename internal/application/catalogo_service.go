package application

import "github.com/RenHec/HRS/internal/domain"

type CatalogoService struct {
	repo domain.CatalogoRepository
}

// NewCatalogoService crea una nueva instancia del servicio de catálogos.
func NewCatalogoService(repo domain.CatalogoRepository) *CatalogoService {
	return &CatalogoService{repo: repo}
}

func (s *CatalogoService) GetStatus() ([]domain.Status, error) {
	return s.repo.GetStatus()
}

func (s *CatalogoService) GetMovimientos() ([]domain.Movimiento, error) {
	return s.repo.GetMovimientos()
}

func (s *CatalogoService) GetMonedas() ([]domain.Moneda, error) {
	return s.repo.GetMonedas()
}

func (s *CatalogoService) GetMunicipios() ([]domain.Municipio, error) {
	return s.repo.GetMunicipios()
}
