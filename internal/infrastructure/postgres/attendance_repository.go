package postgres

import (
	"context"
	"fmt"

	"github.com/invorya/asistencia-api/internal/domain"
	"github.com/invorya/asistencia-api/internal/domain/entity"
	"github.com/invorya/asistencia-api/internal/domain/repository"
)

var _ repository.AttendanceRepository = (*AttendanceRepo)(nil)

// AttendanceRepo implementación del puerto AttendanceRepository sobre PostgreSQL.
// Solo INSERT y SELECT: la tabla general_attendance es append-only.
type AttendanceRepo struct {
	q Querier
}

// NewAttendanceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAttendanceRepository(q Querier) *AttendanceRepo {
	return &AttendanceRepo{q: q}
}

// Create inserta un registro de asistencia.
func (r *AttendanceRepo) Create(rec *entity.AttendanceRecord) error {
	query := `
		INSERT INTO general_attendance (id, attended_student_id, attended_student_name, attended_time, attended_change, students_qr_code)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		rec.ID, rec.StudentID, rec.StudentName, rec.Time, rec.ChangeID, rec.QRCode,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrReference
		}
		return fmt.Errorf("insert attendance: %w", err)
	}
	return nil
}

// ListByStudent lista registros de un estudiante por matrícula, más recientes primero.
func (r *AttendanceRepo) ListByStudent(studentID string, limit, offset int) ([]*entity.AttendanceRecord, error) {
	query := `
		SELECT id, attended_student_id, attended_student_name, attended_time, attended_change, students_qr_code
		FROM general_attendance WHERE attended_student_id = $1
		ORDER BY attended_time DESC LIMIT $2 OFFSET $3`
	return r.list(query, studentID, limit, offset)
}

// ListByChange lista registros de un turno, más recientes primero.
func (r *AttendanceRepo) ListByChange(changeID int, limit, offset int) ([]*entity.AttendanceRecord, error) {
	query := `
		SELECT id, attended_student_id, attended_student_name, attended_time, attended_change, students_qr_code
		FROM general_attendance WHERE attended_change = $1
		ORDER BY attended_time DESC LIMIT $2 OFFSET $3`
	return r.list(query, changeID, limit, offset)
}

func (r *AttendanceRepo) list(query string, key any, limit, offset int) ([]*entity.AttendanceRecord, error) {
	rows, err := r.q.Query(context.Background(), query, key, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list attendance: %w", err)
	}
	defer rows.Close()
	var list []*entity.AttendanceRecord
	for rows.Next() {
		var rec entity.AttendanceRecord
		if err := rows.Scan(&rec.ID, &rec.StudentID, &rec.StudentName, &rec.Time, &rec.ChangeID, &rec.QRCode); err != nil {
			return nil, fmt.Errorf("scan attendance: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}
