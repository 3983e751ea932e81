package repository

import (
	"database/sql"
	"fmt"

	"github.com/RenHec/HRS/internal/domain"
)

type catalogoRepository struct {
	db *sql.DB
}

// NewCatalogoRepository crea una nueva instancia del repositorio de catálogos.
func NewCatalogoRepository(db *sql.DB) domain.CatalogoRepository {
	return &catalogoRepository{db: db}
}

// GetStatus devuelve el catálogo completo de status.
func (r *catalogoRepository) GetStatus() ([]domain.Status, error) {
	rows, err := r.db.Query(`SELECT id, name FROM status ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error al consultar status: %w", err)
	}
	defer rows.Close()

	var status []domain.Status
	for rows.Next() {
		var s domain.Status
		if err := rows.Scan(&s.ID, &s.Nombre); err != nil {
			return nil, fmt.Errorf("error al escanear status: %w", err)
		}
		status = append(status, s)
	}

	return status, rows.Err()
}

// GetStatusByID obtiene un status por id.
func (r *catalogoRepository) GetStatusByID(id int) (*domain.Status, error) {
	s := &domain.Status{}
	err := r.db.QueryRow(`SELECT id, name FROM status WHERE id = $1`, id).Scan(&s.ID, &s.Nombre)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error al obtener status %d: %w", id, err)
	}
	return s, nil
}

// GetMovimientos devuelve el catálogo de movimientos de bitácora.
func (r *catalogoRepository) GetMovimientos() ([]domain.Movimiento, error) {
	rows, err := r.db.Query(`SELECT id, name FROM movements ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error al consultar movimientos: %w", err)
	}
	defer rows.Close()

	var movimientos []domain.Movimiento
	for rows.Next() {
		var m domain.Movimiento
		if err := rows.Scan(&m.ID, &m.Nombre); err != nil {
			return nil, fmt.Errorf("error al escanear movimiento: %w", err)
		}
		movimientos = append(movimientos, m)
	}

	return movimientos, rows.Err()
}

// GetMonedas devuelve el catálogo de monedas.
func (r *catalogoRepository) GetMonedas() ([]domain.Moneda, error) {
	rows, err := r.db.Query(`SELECT id, name, symbol FROM coins ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error al consultar monedas: %w", err)
	}
	defer rows.Close()

	var monedas []domain.Moneda
	for rows.Next() {
		var m domain.Moneda
		if err := rows.Scan(&m.ID, &m.Nombre, &m.Simbolo); err != nil {
			return nil, fmt.Errorf("error al escanear moneda: %w", err)
		}
		monedas = append(monedas, m)
	}

	return monedas, rows.Err()
}

// GetMonedaByID obtiene una moneda por id.
func (r *catalogoRepository) GetMonedaByID(id int) (*domain.Moneda, error) {
	m := &domain.Moneda{}
	err := r.db.QueryRow(`SELECT id, name, symbol FROM coins WHERE id = $1`, id).
		Scan(&m.ID, &m.Nombre, &m.Simbolo)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error al obtener moneda %d: %w", id, err)
	}
	return m, nil
}

// GetMunicipios devuelve los municipios con su departamento padre.
func (r *catalogoRepository) GetMunicipios() ([]domain.Municipio, error) {
	query := `
		SELECT m.id, m.name, d.id, d.name
		FROM municipalities m
		INNER JOIN departaments d ON d.id = m.departament_id
		ORDER BY d.name, m.name`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error al consultar municipios: %w", err)
	}
	defer rows.Close()

	var municipios []domain.Municipio
	for rows.Next() {
		var m domain.Municipio
		if err := rows.Scan(&m.ID, &m.Nombre, &m.DepartamentoID, &m.Departamento); err != nil {
			return nil, fmt.Errorf("error al escanear municipio: %w", err)
		}
		municipios = append(municipios, m)
	}

	return municipios, rows.Err()
}

// GetMunicipioByID obtiene un municipio con su departamento.
func (r *catalogoRepository) GetMunicipioByID(id int) (*domain.Municipio, error) {
	return getMunicipio(r.db, id)
}

// getMunicipio comparte la búsqueda de municipio con las transacciones del
// gestor de reservaciones.
func getMunicipio(q consulta, id int) (*domain.Municipio, error) {
	query := `
		SELECT m.id, m.name, d.id, d.name
		FROM municipalities m
		INNER JOIN departaments d ON d.id = m.departament_id
		WHERE m.id = $1`

	m := &domain.Municipio{}
	err := q.QueryRow(query, id).Scan(&m.ID, &m.Nombre, &m.DepartamentoID, &m.Departamento)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("error al obtener municipio %d: %w", id, err)
	}
	return m, nil
}
