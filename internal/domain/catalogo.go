package domain

// Identificadores fijos del catálogo de status. La tabla status se siembra con
// estos registros y el resto del sistema los referencia por id.
const (
	StatusPendiente   = 1
	StatusEnProceso   = 2
	StatusConfirmado  = 3
	StatusCancelacion = 4
	StatusAnulado     = 5
)

// Identificadores fijos del catálogo de movimientos de bitácora.
const (
	MovimientoProgramada = 1
	MovimientoCancelada  = 2
)

// Status es un estado del ciclo de vida de reservaciones y detalles.
type Status struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// Movimiento clasifica una entrada de bitácora (programada, cancelada).
type Movimiento struct {
	ID     int    `json:"id"`
	Nombre string `json:"nombre"`
}

// Moneda representa una divisa con su símbolo para formatear precios.
type Moneda struct {
	ID      int    `json:"id"`
	Nombre  string `json:"nombre"`
	Simbolo string `json:"simbolo"`
}

// Municipio con el departamento padre ya resuelto.
type Municipio struct {
	ID             int    `json:"id"`
	Nombre         string `json:"nombre"`
	DepartamentoID int    `json:"departamentoId"`
	Departamento   string `json:"departamento"`
}

// NombreCompleto devuelve el nombre jerárquico "Departamento, Municipio".
func (m *Municipio) NombreCompleto() string {
	return m.Departamento + ", " + m.Nombre
}

// CatalogoRepository expone las lecturas de datos de referencia. Las búsquedas
// por id devuelven ErrNoEncontrado cuando el registro no existe.
type CatalogoRepository interface {
	GetStatus() ([]Status, error)
	GetStatusByID(id int) (*Status, error)
	GetMovimientos() ([]Movimiento, error)
	GetMonedas() ([]Moneda, error)
	GetMonedaByID(id int) (*Moneda, error)
	GetMunicipios() ([]Municipio, error)
	GetMunicipioByID(id int) (*Municipio, error)
}
