package attendance

import (
	"context"

	"github.com/invorya/asistencia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que el check-in (resolver QR +
// insertar registro) sea atómico: o queda todo visible o nada.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		studentRepo repository.StudentRepository,
		attendanceRepo repository.AttendanceRepository,
	) error) error
}
