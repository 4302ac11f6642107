package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/invorya/asistencia-api/internal/domain"
	"github.com/invorya/asistencia-api/internal/domain/entity"
	"github.com/invorya/asistencia-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.GroupRepository = (*GroupRepo)(nil)

// GroupRepo implementación del puerto GroupRepository sobre PostgreSQL.
type GroupRepo struct {
	q Querier
}

// NewGroupRepository construye el adaptador. Pasar pool o tx (Querier).
func NewGroupRepository(q Querier) *GroupRepo {
	return &GroupRepo{q: q}
}

// Create persiste un grupo y rellena el ID autoincremental. Las FK a change
// y study_year las valida el store; una violación sube como ErrReference.
func (r *GroupRepo) Create(g *entity.Group) error {
	query := `
		INSERT INTO groups (group_name, group_year, group_change_id, study_year_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		g.Name, g.Year, g.ChangeID, g.StudyYearID,
	).Scan(&g.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReference
		}
		return fmt.Errorf("insert group: %w", err)
	}
	return nil
}

// GetByID obtiene un grupo por ID.
func (r *GroupRepo) GetByID(id int) (*entity.Group, error) {
	query := `SELECT id, group_name, group_year, group_change_id, study_year_id FROM groups WHERE id = $1`
	var g entity.Group
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&g.ID, &g.Name, &g.Year, &g.ChangeID, &g.StudyYearID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get group: %w", err)
	}
	return &g, nil
}

// List lista grupos con paginación.
func (r *GroupRepo) List(limit, offset int) ([]*entity.Group, error) {
	query := `SELECT id, group_name, group_year, group_change_id, study_year_id FROM groups ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list groups: %w", err)
	}
	defer rows.Close()
	var list []*entity.Group
	for rows.Next() {
		var g entity.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.Year, &g.ChangeID, &g.StudyYearID); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		list = append(list, &g)
	}
	return list, rows.Err()
}
