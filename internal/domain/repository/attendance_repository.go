package repository

import "github.com/invorya/asistencia-api/internal/domain/entity"

// AttendanceRepository puerto de persistencia para registros de asistencia.
// Solo inserción y lectura: los registros son inmutables.
type AttendanceRepository interface {
	Create(r *entity.AttendanceRecord) error
	ListByStudent(studentID string, limit, offset int) ([]*entity.AttendanceRecord, error)
	ListByChange(changeID int, limit, offset int) ([]*entity.AttendanceRecord, error)
}
