package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/invorya/asistencia-api/internal/domain"
	"github.com/invorya/asistencia-api/internal/domain/entity"
	"github.com/invorya/asistencia-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var _ repository.ChangeRepository = (*ChangeRepo)(nil)

// ChangeRepo implementación del puerto ChangeRepository sobre PostgreSQL.
// Las columnas start_time/end_time son TIME (hora del día); se mapean vía
// pgtype.Time porque solo los microsegundos desde medianoche son significativos.
type ChangeRepo struct {
	q Querier
}

// NewChangeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewChangeRepository(q Querier) *ChangeRepo {
	return &ChangeRepo{q: q}
}

// Create persiste un turno y rellena el ID autoincremental.
func (r *ChangeRepo) Create(c *entity.Change) error {
	query := `
		INSERT INTO change (change_name, start_time, end_time, change_year)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		c.Name, clockToPg(c.StartTime), clockToPg(c.EndTime), c.YearID,
	).Scan(&c.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReference
		}
		return fmt.Errorf("insert change: %w", err)
	}
	return nil
}

// GetByID obtiene un turno por ID.
func (r *ChangeRepo) GetByID(id int) (*entity.Change, error) {
	query := `SELECT id, change_name, start_time, end_time, change_year FROM change WHERE id = $1`
	var c entity.Change
	var start, end pgtype.Time
	err := r.q.QueryRow(context.Background(), query, id).Scan(&c.ID, &c.Name, &start, &end, &c.YearID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get change: %w", err)
	}
	c.StartTime = pgToClock(start)
	c.EndTime = pgToClock(end)
	return &c, nil
}

// List lista turnos con paginación.
func (r *ChangeRepo) List(limit, offset int) ([]*entity.Change, error) {
	query := `SELECT id, change_name, start_time, end_time, change_year FROM change ORDER BY id LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list changes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Change
	for rows.Next() {
		var c entity.Change
		var start, end pgtype.Time
		if err := rows.Scan(&c.ID, &c.Name, &start, &end, &c.YearID); err != nil {
			return nil, fmt.Errorf("scan change: %w", err)
		}
		c.StartTime = pgToClock(start)
		c.EndTime = pgToClock(end)
		list = append(list, &c)
	}
	return list, rows.Err()
}

// clockToPg convierte la hora del día a pgtype.Time (microsegundos desde medianoche).
func clockToPg(t *time.Time) pgtype.Time {
	if t == nil {
		return pgtype.Time{}
	}
	usec := int64(t.Hour())*int64(time.Hour/time.Microsecond) +
		int64(t.Minute())*int64(time.Minute/time.Microsecond) +
		int64(t.Second())*int64(time.Second/time.Microsecond)
	return pgtype.Time{Microseconds: usec, Valid: true}
}

// pgToClock convierte pgtype.Time a time.Time sobre la fecha cero.
func pgToClock(pt pgtype.Time) *time.Time {
	if !pt.Valid {
		return nil
	}
	t := time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(pt.Microseconds) * time.Microsecond)
	return &t
}
