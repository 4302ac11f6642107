package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/invorya/asistencia-api/internal/domain/entity"
	"github.com/invorya/asistencia-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.ProfessionRepository = (*ProfessionRepo)(nil)

// ProfessionRepo implementación del puerto ProfessionRepository sobre PostgreSQL.
type ProfessionRepo struct {
	q Querier
}

// NewProfessionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProfessionRepository(q Querier) *ProfessionRepo {
	return &ProfessionRepo{q: q}
}

// Create persiste una carrera y rellena el ID autoincremental.
func (r *ProfessionRepo) Create(p *entity.Profession) error {
	query := `INSERT INTO professions (profession_name) VALUES ($1) RETURNING id`
	err := r.q.QueryRow(context.Background(), query, p.Name).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert profession: %w", err)
	}
	return nil
}

// GetByID obtiene una carrera por ID.
func (r *ProfessionRepo) GetByID(id int) (*entity.Profession, error) {
	query := `SELECT id, profession_name FROM professions WHERE id = $1`
	var p entity.Profession
	err := r.q.QueryRow(context.Background(), query, id).Scan(&p.ID, &p.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profession: %w", err)
	}
	return &p, nil
}

// List lista carreras con paginación.
func (r *ProfessionRepo) List(limit, offset int) ([]*entity.Profession, error) {
	query := `SELECT id, profession_name FROM professions ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list professions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Profession
	for rows.Next() {
		var p entity.Profession
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan profession: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
