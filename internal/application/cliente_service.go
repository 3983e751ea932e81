package application

import (
	"strings"

	"github.com/RenHec/HRS/internal/domain"
)

type ClienteService struct {
	repo      domain.ClienteRepository
	validator *Validator
}

// NewClienteService crea una nueva instancia del servicio de clientes.
func NewClienteService(repo domain.ClienteRepository) *ClienteService {
	return &ClienteService{
		repo:      repo,
		validator: &Validator{},
	}
}

func (s *ClienteService) GetAll() ([]domain.Cliente, error) {
	return s.repo.GetAll()
}

func (s *ClienteService) GetByID(id int) (*domain.Cliente, error) {
	return s.repo.GetByID(id)
}

// BuscarPorNit busca un cliente por nit; ErrNoEncontrado si no existe. Se usa
// para precargar los datos del cliente al iniciar una reserva.
func (s *ClienteService) BuscarPorNit(nit string) (*domain.Cliente, error) {
	if err := s.validator.ValidateNit(nit); err != nil {
		return nil, domain.NuevaValidacion(err.Error())
	}

	cliente, err := s.repo.FindByNit(strings.TrimSpace(nit))
	if err != nil {
		return nil, err
	}
	if cliente == nil {
		return nil, domain.ErrNoEncontrado
	}

	return cliente, nil
}

// Resolver devuelve el cliente con el nit dado, creándolo con el perfil
// recibido si no existe. Es idempotente: dos llamadas concurrentes con el
// mismo nit resuelven al mismo cliente.
func (s *ClienteService) Resolver(cliente *domain.Cliente) (*domain.Cliente, error) {
	if err := s.validar(cliente); err != nil {
		return nil, err
	}
	return s.repo.FindOrCreate(cliente)
}

func (s *ClienteService) Update(cliente *domain.Cliente) error {
	if cliente.ID <= 0 {
		return domain.NuevaValidacion("el cliente es requerido")
	}
	if err := s.validar(cliente); err != nil {
		return err
	}
	return s.repo.Update(cliente)
}

func (s *ClienteService) Delete(id int) error {
	if id <= 0 {
		return domain.NuevaValidacion("el cliente es requerido")
	}
	return s.repo.Delete(id)
}

func (s *ClienteService) validar(cliente *domain.Cliente) error {
	var mensajes []string

	cliente.Nit = strings.TrimSpace(cliente.Nit)
	if cliente.Nit == "" {
		cliente.Nit = domain.NitConsumidorFinal
	}
	if err := s.validator.ValidateNit(cliente.Nit); err != nil {
		mensajes = append(mensajes, err.Error())
	}
	if err := s.validator.ValidateName(cliente.Nombre, "nombre"); err != nil {
		mensajes = append(mensajes, err.Error())
	}
	if cliente.Email != nil && *cliente.Email != "" {
		if err := s.validator.ValidateEmail(*cliente.Email); err != nil {
			mensajes = append(mensajes, err.Error())
		}
	}
	if cliente.MunicipioID <= 0 {
		mensajes = append(mensajes, "el municipio es requerido")
	}

	if len(mensajes) > 0 {
		return domain.NuevaValidacion(mensajes...)
	}

	return nil
}
