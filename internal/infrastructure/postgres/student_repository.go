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

var _ repository.StudentRepository = (*StudentRepo)(nil)

// StudentRepo implementación del puerto StudentRepository sobre PostgreSQL (usable con pool o tx).
type StudentRepo struct {
	q Querier
}

// NewStudentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStudentRepository(q Querier) *StudentRepo {
	return &StudentRepo{q: q}
}

const studentColumns = `id, fullname, student_id, gender, student_image, course, qr_code, created_time, student_profession_id, student_group_id`

// Create persiste un estudiante.
func (r *StudentRepo) Create(s *entity.Student) error {
	query := `
		INSERT INTO students (` + studentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.Fullname, s.StudentID, s.Gender, s.Image, s.Course,
		s.QRCode, s.CreatedTime, s.ProfessionID, s.GroupID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrReference
		}
		return fmt.Errorf("insert student: %w", err)
	}
	return nil
}

// GetByID obtiene un estudiante por su UUID.
func (r *StudentRepo) GetByID(id string) (*entity.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`
	return r.scanStudent(r.q.QueryRow(context.Background(), query, id), "get student by id")
}

// GetByStudentID obtiene un estudiante por matrícula.
func (r *StudentRepo) GetByStudentID(studentID string) (*entity.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE student_id = $1 LIMIT 1`
	return r.scanStudent(r.q.QueryRow(context.Background(), query, studentID), "get student by student_id")
}

// GetByQRCode resuelve el dueño de un código QR escaneado.
func (r *StudentRepo) GetByQRCode(qrCode string) (*entity.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE qr_code = $1 LIMIT 1`
	return r.scanStudent(r.q.QueryRow(context.Background(), query, qrCode), "get student by qr_code")
}

// List lista estudiantes con paginación.
func (r *StudentRepo) List(limit, offset int) ([]*entity.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY created_time DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	defer rows.Close()
	var list []*entity.Student
	for rows.Next() {
		var s entity.Student
		if err := rows.Scan(&s.ID, &s.Fullname, &s.StudentID, &s.Gender, &s.Image, &s.Course,
			&s.QRCode, &s.CreatedTime, &s.ProfessionID, &s.GroupID); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

func (r *StudentRepo) scanStudent(row pgx.Row, op string) (*entity.Student, error) {
	var s entity.Student
	err := row.Scan(&s.ID, &s.Fullname, &s.StudentID, &s.Gender, &s.Image, &s.Course,
		&s.QRCode, &s.CreatedTime, &s.ProfessionID, &s.GroupID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &s, nil
}
