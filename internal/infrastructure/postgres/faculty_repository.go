package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/invorya/asistencia-api/internal/domain/entity"
	"github.com/invorya/asistencia-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.FacultyRepository = (*FacultyRepo)(nil)

// FacultyRepo implementación del puerto FacultyRepository sobre PostgreSQL.
type FacultyRepo struct {
	q Querier
}

// NewFacultyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewFacultyRepository(q Querier) *FacultyRepo {
	return &FacultyRepo{q: q}
}

// Create persiste una facultad y rellena el ID autoincremental.
func (r *FacultyRepo) Create(f *entity.Faculty) error {
	query := `
		INSERT INTO faculty (faculty_name, faculty_dean)
		VALUES ($1, $2)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query, f.Name, f.Dean).Scan(&f.ID)
	if err != nil {
		return fmt.Errorf("insert faculty: %w", err)
	}
	return nil
}

// GetByID obtiene una facultad por ID.
func (r *FacultyRepo) GetByID(id int) (*entity.Faculty, error) {
	query := `SELECT id, faculty_name, faculty_dean FROM faculty WHERE id = $1`
	var f entity.Faculty
	err := r.q.QueryRow(context.Background(), query, id).Scan(&f.ID, &f.Name, &f.Dean)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get faculty: %w", err)
	}
	return &f, nil
}

// List lista facultades con paginación.
func (r *FacultyRepo) List(limit, offset int) ([]*entity.Faculty, error) {
	query := `SELECT id, faculty_name, faculty_dean FROM faculty ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list faculties: %w", err)
	}
	defer rows.Close()
	var list []*entity.Faculty
	for rows.Next() {
		var f entity.Faculty
		if err := rows.Scan(&f.ID, &f.Name, &f.Dean); err != nil {
			return nil, fmt.Errorf("scan faculty: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
