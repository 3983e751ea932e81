package repository

import (
	"database/sql"
	"fmt"

	"github.com/RenHec/HRS/internal/domain"
)

type clienteRepository struct {
	db *sql.DB
}

// NewClienteRepository crea una nueva instancia del repositorio de clientes.
func NewClienteRepository(db *sql.DB) domain.ClienteRepository {
	return &clienteRepository{db: db}
}

const columnasCliente = `id, nit, name, email, business, ubication, departament_id, municipality_id, created_at`

func escanearCliente(row *sql.Row) (*domain.Cliente, error) {
	c := &domain.Cliente{}
	var email, ubicacion sql.NullString
	err := row.Scan(&c.ID, &c.Nit, &c.Nombre, &email, &c.Negocio, &ubicacion,
		&c.DepartamentoID, &c.MunicipioID, &c.CreadoEn)
	if err != nil {
		return nil, err
	}
	if email.Valid {
		c.Email = &email.String
	}
	if ubicacion.Valid {
		c.Ubicacion = &ubicacion.String
	}
	return c, nil
}

// GetAll lista todos los clientes registrados.
func (r *clienteRepository) GetAll() ([]domain.Cliente, error) {
	rows, err := r.db.Query(`SELECT ` + columnasCliente + ` FROM clients ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("error al consultar clientes: %w", err)
	}
	defer rows.Close()

	var clientes []domain.Cliente
	for rows.Next() {
		c := domain.Cliente{}
		var email, ubicacion sql.NullString
		err := rows.Scan(&c.ID, &c.Nit, &c.Nombre, &email, &c.Negocio, &ubicacion,
			&c.DepartamentoID, &c.MunicipioID, &c.CreadoEn)
		if err != nil {
			return nil, fmt.Errorf("error al escanear cliente: %w", err)
		}
		if email.Valid {
			c.Email = &email.String
		}
		if ubicacion.Valid {
			c.Ubicacion = &ubicacion.String
		}
		clientes = append(clientes, c)
	}

	return clientes, rows.Err()
}

// GetByID obtiene un cliente por id.
func (r *clienteRepository) GetByID(id int) (*domain.Cliente, error) {
	c, err := escanearCliente(r.db.QueryRow(`SELECT `+columnasCliente+` FROM clients WHERE id = $1`, id))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error al obtener cliente %d: %w", id, err)
	}
	return c, nil
}

// FindByNit busca un cliente por nit; (nil, nil) si no existe.
func (r *clienteRepository) FindByNit(nit string) (*domain.Cliente, error) {
	return buscarClientePorNit(r.db, nit)
}

// FindOrCreate devuelve el cliente con el nit dado, creándolo si no existe.
func (r *clienteRepository) FindOrCreate(cliente *domain.Cliente) (*domain.Cliente, error) {
	return resolverCliente(r.db, cliente)
}

// Update actualiza los datos del cliente; ErrSinCambios si nada cambió.
func (r *clienteRepository) Update(cliente *domain.Cliente) error {
	actual, err := r.GetByID(cliente.ID)
	if err != nil {
		return err
	}

	if actual.Nit == cliente.Nit &&
		actual.Nombre == cliente.Nombre &&
		igualOpcional(actual.Email, cliente.Email) &&
		actual.Negocio == cliente.Negocio &&
		igualOpcional(actual.Ubicacion, cliente.Ubicacion) &&
		actual.MunicipioID == cliente.MunicipioID {
		return domain.ErrSinCambios
	}

	query := `
		UPDATE clients
		SET nit = $1, name = $2, email = $3, business = $4, ubication = $5,
			departament_id = $6, municipality_id = $7
		WHERE id = $8`

	_, err = r.db.Exec(query, cliente.Nit, cliente.Nombre, cliente.Email, cliente.Negocio,
		cliente.Ubicacion, cliente.DepartamentoID, cliente.MunicipioID, cliente.ID)
	if esViolacionUnicidad(err) {
		return domain.ErrConflicto
	}
	if err != nil {
		return fmt.Errorf("error al actualizar cliente %d: %w", cliente.ID, err)
	}

	return nil
}

// Delete elimina el cliente; ErrConflicto si otras tablas lo referencian.
func (r *clienteRepository) Delete(id int) error {
	result, err := r.db.Exec(`DELETE FROM clients WHERE id = $1`, id)
	if esViolacionReferencia(err) {
		return domain.ErrConflicto
	}
	if err != nil {
		return fmt.Errorf("error al eliminar cliente %d: %w", id, err)
	}

	filas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error al verificar filas afectadas: %w", err)
	}
	if filas == 0 {
		return domain.ErrNoEncontrado
	}

	return nil
}

func igualOpcional(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func buscarClientePorNit(q consulta, nit string) (*domain.Cliente, error) {
	c, err := escanearCliente(q.QueryRow(`SELECT `+columnasCliente+` FROM clients WHERE nit = $1`, nit))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error al buscar cliente por nit: %w", err)
	}
	return c, nil
}

// insertarCliente inserta con ON CONFLICT DO NOTHING sobre la restricción de
// unicidad del nit; cuando otro proceso ya insertó el nit devuelve sql.ErrNoRows.
func insertarCliente(q consulta, cliente *domain.Cliente) (*domain.Cliente, error) {
	query := `
		INSERT INTO clients (nit, name, email, business, ubication, departament_id, municipality_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (nit) DO NOTHING
		RETURNING ` + columnasCliente

	return escanearCliente(q.QueryRow(query, cliente.Nit, cliente.Nombre, cliente.Email,
		cliente.Negocio, cliente.Ubicacion, cliente.DepartamentoID, cliente.MunicipioID))
}

// resolverCliente implementa el find-or-create por nit, de modo que dos
// resoluciones concurrentes con el mismo nit terminan en el mismo registro.
func resolverCliente(q consulta, cliente *domain.Cliente) (*domain.Cliente, error) {
	return resolverConReintento(
		func() (*domain.Cliente, error) { return buscarClientePorNit(q, cliente.Nit) },
		func() (*domain.Cliente, error) { return insertarCliente(q, cliente) },
	)
}

// resolverConReintento busca, inserta si no hay registro y, cuando la
// inserción pierde la carrera contra otro proceso, relee por nit una sola vez.
func resolverConReintento(buscar, insertar func() (*domain.Cliente, error)) (*domain.Cliente, error) {
	existente, err := buscar()
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return existente, nil
	}

	creado, err := insertar()
	if err == nil {
		return creado, nil
	}
	if err != sql.ErrNoRows && !esViolacionUnicidad(err) {
		return nil, fmt.Errorf("error al crear cliente: %w", err)
	}

	// Otro proceso ganó la carrera de inserción: releer por nit.
	existente, err = buscar()
	if err != nil {
		return nil, err
	}
	if existente == nil {
		return nil, domain.ErrConflicto
	}
	return existente, nil
}
