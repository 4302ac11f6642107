package attendance_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/asistencia-api/internal/application/attendance"
	"github.com/invorya/asistencia-api/internal/application/dto"
	"github.com/invorya/asistencia-api/internal/domain"
	"github.com/invorya/asistencia-api/internal/domain/entity"
	"github.com/invorya/asistencia-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeStudentRepo struct {
	byQR map[string]*entity.Student
}

func (f *fakeStudentRepo) Create(s *entity.Student) error { return nil }
func (f *fakeStudentRepo) GetByID(string) (*entity.Student, error) {
	return nil, nil
}
func (f *fakeStudentRepo) GetByStudentID(string) (*entity.Student, error) {
	return nil, nil
}
func (f *fakeStudentRepo) GetByQRCode(qr string) (*entity.Student, error) {
	return f.byQR[qr], nil
}
func (f *fakeStudentRepo) List(int, int) ([]*entity.Student, error) {
	return nil, nil
}

type fakeAttendanceRepo struct {
	records []*entity.AttendanceRecord
}

func (f *fakeAttendanceRepo) Create(r *entity.AttendanceRecord) error {
	cp := *r
	f.records = append(f.records, &cp)
	return nil
}

func (f *fakeAttendanceRepo) ListByStudent(studentID string, limit, offset int) ([]*entity.AttendanceRecord, error) {
	var out []*entity.AttendanceRecord
	for _, r := range f.records {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) ListByChange(changeID, limit, offset int) ([]*entity.AttendanceRecord, error) {
	var out []*entity.AttendanceRecord
	for _, r := range f.records {
		if r.ChangeID != nil && *r.ChangeID == changeID {
			out = append(out, r)
		}
	}
	return out, nil
}

// fakeTxRunner ejecuta el callback directo sobre los fakes. Si el callback
// falla, descarta lo insertado para simular el rollback de una tx real.
type fakeTxRunner struct {
	students   *fakeStudentRepo
	attendance *fakeAttendanceRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(
	studentRepo repository.StudentRepository,
	attendanceRepo repository.AttendanceRepository,
) error) error {
	before := len(f.attendance.records)
	if err := fn(f.students, f.attendance); err != nil {
		f.attendance.records = f.attendance.records[:before]
		return err
	}
	return nil
}

func newFixture() (*attendance.CheckInUseCase, *fakeStudentRepo, *fakeAttendanceRepo) {
	students := &fakeStudentRepo{byQR: map[string]*entity.Student{}}
	records := &fakeAttendanceRepo{}
	tx := &fakeTxRunner{students: students, attendance: records}
	return attendance.NewCheckInUseCase(tx, records), students, records
}

// ──────────────────────────────────────────────────────────────────────────────
// CheckIn
// ──────────────────────────────────────────────────────────────────────────────

func TestCheckIn_QRConocido(t *testing.T) {
	uc, students, records := newFixture()
	students.byQR["qr-abc"] = &entity.Student{
		ID:        "uuid-1",
		Fullname:  "Ivanov",
		StudentID: "MAT-001",
		QRCode:    "qr-abc",
	}

	changeID := 3
	out, err := uc.CheckIn(context.Background(), dto.CheckInRequest{QRCode: "qr-abc", ChangeID: &changeID})
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "MAT-001", out.AttendedStudentID, "se registra la matrícula visible")
	assert.Equal(t, "Ivanov", out.AttendedStudentName)
	require.NotNil(t, out.AttendedChange)
	assert.Equal(t, 3, *out.AttendedChange)
	assert.WithinDuration(t, time.Now().UTC(), out.AttendedTime, 5*time.Second)

	require.Len(t, records.records, 1)
}

func TestCheckIn_QRDesconocidoEsNotFound(t *testing.T) {
	uc, _, records := newFixture()

	_, err := uc.CheckIn(context.Background(), dto.CheckInRequest{QRCode: "qr-nadie"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, records.records, "un QR desconocido no deja registro")
}

func TestCheckIn_QRVacioEsValidacion(t *testing.T) {
	uc, _, _ := newFixture()
	_, err := uc.CheckIn(context.Background(), dto.CheckInRequest{QRCode: ""})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCheckIn_SinTurnoTambienRegistra(t *testing.T) {
	uc, students, _ := newFixture()
	students.byQR["qr-abc"] = &entity.Student{
		ID:        "uuid-1",
		Fullname:  "Ivanov",
		StudentID: "MAT-001",
		QRCode:    "qr-abc",
	}

	out, err := uc.CheckIn(context.Background(), dto.CheckInRequest{QRCode: "qr-abc"})
	require.NoError(t, err)
	assert.Nil(t, out.AttendedChange, "el turno es opcional en el check-in")
}

// ──────────────────────────────────────────────────────────────────────────────
// Listados
// ──────────────────────────────────────────────────────────────────────────────

func TestListByStudent(t *testing.T) {
	uc, students, _ := newFixture()
	students.byQR["qr-a"] = &entity.Student{ID: "u1", Fullname: "Ivanov", StudentID: "MAT-001", QRCode: "qr-a"}
	students.byQR["qr-b"] = &entity.Student{ID: "u2", Fullname: "Petrov", StudentID: "MAT-002", QRCode: "qr-b"}

	_, err := uc.CheckIn(context.Background(), dto.CheckInRequest{QRCode: "qr-a"})
	require.NoError(t, err)
	_, err = uc.CheckIn(context.Background(), dto.CheckInRequest{QRCode: "qr-a"})
	require.NoError(t, err)
	_, err = uc.CheckIn(context.Background(), dto.CheckInRequest{QRCode: "qr-b"})
	require.NoError(t, err)

	list, err := uc.ListByStudent("MAT-001", 20, 0)
	require.NoError(t, err)
	assert.Len(t, list, 2)
	for _, r := range list {
		assert.Equal(t, "MAT-001", r.AttendedStudentID)
	}
}

func TestListByChange(t *testing.T) {
	uc, students, _ := newFixture()
	students.byQR["qr-a"] = &entity.Student{ID: "u1", Fullname: "Ivanov", StudentID: "MAT-001", QRCode: "qr-a"}

	turno := 7
	_, err := uc.CheckIn(context.Background(), dto.CheckInRequest{QRCode: "qr-a", ChangeID: &turno})
	require.NoError(t, err)
	_, err = uc.CheckIn(context.Background(), dto.CheckInRequest{QRCode: "qr-a"}) // sin turno
	require.NoError(t, err)

	list, err := uc.ListByChange(7, 20, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
