package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/invorya/asistencia-api/internal/application/dto"
	"github.com/invorya/asistencia-api/internal/domain"
	"github.com/invorya/asistencia-api/internal/domain/entity"
	"github.com/invorya/asistencia-api/internal/domain/repository"
)

// CheckInUseCase registra asistencia a partir de un QR escaneado.
// Los registros son append-only: no hay update ni delete.
type CheckInUseCase struct {
	tx             TxRunner
	attendanceRepo repository.AttendanceRepository
}

// NewCheckInUseCase construye el caso de uso.
func NewCheckInUseCase(tx TxRunner, attendanceRepo repository.AttendanceRepository) *CheckInUseCase {
	return &CheckInUseCase{tx: tx, attendanceRepo: attendanceRepo}
}

// CheckIn resuelve el estudiante por su QR e inserta el registro dentro de
// una sola transacción. QR desconocido devuelve domain.ErrNotFound; si la
// tx falla no queda estado parcial visible.
func (uc *CheckInUseCase) CheckIn(ctx context.Context, in dto.CheckInRequest) (*dto.AttendanceResponse, error) {
	if in.QRCode == "" {
		return nil, domain.ErrValidation
	}
	var record *entity.AttendanceRecord
	err := uc.tx.Run(ctx, func(
		studentRepo repository.StudentRepository,
		attendanceRepo repository.AttendanceRepository,
	) error {
		student, err := studentRepo.GetByQRCode(in.QRCode)
		if err != nil {
			return err
		}
		if student == nil {
			return domain.ErrNotFound
		}
		record = &entity.AttendanceRecord{
			ID:          uuid.New().String(),
			StudentID:   student.StudentID,
			StudentName: student.Fullname,
			Time:        time.Now().UTC(),
			ChangeID:    in.ChangeID,
			QRCode:      in.QRCode,
		}
		return attendanceRepo.Create(record)
	})
	if err != nil {
		return nil, err
	}
	return toAttendanceResponse(record), nil
}

// ListByStudent lista la asistencia de un estudiante (por matrícula).
func (uc *CheckInUseCase) ListByStudent(studentID string, limit, offset int) ([]dto.AttendanceResponse, error) {
	list, err := uc.attendanceRepo.ListByStudent(studentID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toAttendanceResponses(list), nil
}

// ListByChange lista la asistencia de un turno.
func (uc *CheckInUseCase) ListByChange(changeID, limit, offset int) ([]dto.AttendanceResponse, error) {
	list, err := uc.attendanceRepo.ListByChange(changeID, limit, offset)
	if err != nil {
		return nil, err
	}
	return toAttendanceResponses(list), nil
}

func toAttendanceResponse(r *entity.AttendanceRecord) *dto.AttendanceResponse {
	return &dto.AttendanceResponse{
		ID:                  r.ID,
		AttendedStudentID:   r.StudentID,
		AttendedStudentName: r.StudentName,
		AttendedTime:        r.Time,
		AttendedChange:      r.ChangeID,
	}
}

func toAttendanceResponses(list []*entity.AttendanceRecord) []dto.AttendanceResponse {
	items := make([]dto.AttendanceResponse, 0, len(list))
	for _, r := range list {
		items = append(items, *toAttendanceResponse(r))
	}
	return items
}
