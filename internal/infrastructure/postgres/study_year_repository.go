package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/invorya/asistencia-api/internal/domain/entity"
	"github.com/invorya/asistencia-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.StudyYearRepository = (*StudyYearRepo)(nil)

// StudyYearRepo implementación del puerto StudyYearRepository sobre PostgreSQL.
type StudyYearRepo struct {
	q Querier
}

// NewStudyYearRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStudyYearRepository(q Querier) *StudyYearRepo {
	return &StudyYearRepo{q: q}
}

// Create persiste un año lectivo y rellena el ID autoincremental.
func (r *StudyYearRepo) Create(y *entity.StudyYear) error {
	query := `INSERT INTO study_year (year) VALUES ($1) RETURNING id`
	err := r.q.QueryRow(context.Background(), query, y.Year).Scan(&y.ID)
	if err != nil {
		return fmt.Errorf("insert study year: %w", err)
	}
	return nil
}

// GetByID obtiene un año lectivo por ID.
func (r *StudyYearRepo) GetByID(id int) (*entity.StudyYear, error) {
	query := `SELECT id, year FROM study_year WHERE id = $1`
	var y entity.StudyYear
	err := r.q.QueryRow(context.Background(), query, id).Scan(&y.ID, &y.Year)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get study year: %w", err)
	}
	return &y, nil
}

// List lista años lectivos con paginación.
func (r *StudyYearRepo) List(limit, offset int) ([]*entity.StudyYear, error) {
	query := `SELECT id, year FROM study_year ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list study years: %w", err)
	}
	defer rows.Close()
	var list []*entity.StudyYear
	for rows.Next() {
		var y entity.StudyYear
		if err := rows.Scan(&y.ID, &y.Year); err != nil {
			return nil, fmt.Errorf("scan study year: %w", err)
		}
		list = append(list, &y)
	}
	return list, rows.Err()
}
