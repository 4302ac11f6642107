package repository

import "github.com/invorya/asistencia-api/internal/domain/entity"

// StudentRepository puerto de persistencia para Student.
type StudentRepository interface {
	Create(s *entity.Student) error
	GetByID(id string) (*entity.Student, error)
	GetByStudentID(studentID string) (*entity.Student, error)
	// GetByQRCode resuelve el estudiante dueño de un código QR escaneado.
	GetByQRCode(qrCode string) (*entity.Student, error)
	List(limit, offset int) ([]*entity.Student, error)
}
