package domain

import "time"

// NitConsumidorFinal es el nit genérico para clientes sin identificador fiscal.
const NitConsumidorFinal = "CF"

// Cliente es la identidad fiscal y de contacto de quien reserva. El nit es
// único por cliente.
type Cliente struct {
	ID             int       `json:"id"`
	Nit            string    `json:"nit"`
	Nombre         string    `json:"nombre"`
	Email          *string   `json:"email,omitempty"`
	Negocio        bool      `json:"negocio"`
	Ubicacion      *string   `json:"ubicacion,omitempty"`
	DepartamentoID int       `json:"departamentoId"`
	MunicipioID    int       `json:"municipioId"`
	CreadoEn       time.Time `json:"creadoEn"`
}

// ClienteRepository define las operaciones con clientes. FindOrCreate es
// idempotente por nit: resuelve la carrera de inserciones concurrentes con la
// restricción de unicidad de la base y un único reintento.
type ClienteRepository interface {
	// GetAll lista todos los clientes registrados.
	GetAll() ([]Cliente, error)
	// GetByID obtiene un cliente por id.
	GetByID(id int) (*Cliente, error)
	// FindByNit busca un cliente por nit; (nil, nil) si no existe.
	FindByNit(nit string) (*Cliente, error)
	// FindOrCreate devuelve el cliente con el nit dado, creándolo con el perfil
	// recibido si no existe.
	FindOrCreate(cliente *Cliente) (*Cliente, error)
	// Update actualiza los datos del cliente; ErrSinCambios si nada cambió.
	Update(cliente *Cliente) error
	// Delete elimina el cliente; ErrConflicto si está referenciado.
	Delete(id int) error
}
