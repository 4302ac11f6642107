package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/invorya/asistencia-api/internal/application/dto"
	"github.com/invorya/asistencia-api/internal/domain"
	"github.com/invorya/asistencia-api/internal/domain/entity"
	"github.com/invorya/asistencia-api/internal/domain/repository"
)

// CredentialPDFGenerator puerto para generar la credencial imprimible del
// estudiante (hoja con QR). Implementado en infrastructure/pdf.
type CredentialPDFGenerator interface {
	GenerateCredentialPDF(ctx context.Context, student *entity.Student, group *entity.Group, profession *entity.Profession) ([]byte, error)
}

// StudentUseCase casos de uso para estudiantes.
type StudentUseCase struct {
	repo           repository.StudentRepository
	groupRepo      repository.GroupRepository
	professionRepo repository.ProfessionRepository
	pdf            CredentialPDFGenerator
}

// NewStudentUseCase construye el caso de uso.
func NewStudentUseCase(
	repo repository.StudentRepository,
	groupRepo repository.GroupRepository,
	professionRepo repository.ProfessionRepository,
	pdf CredentialPDFGenerator,
) *StudentUseCase {
	return &StudentUseCase{repo: repo, groupRepo: groupRepo, professionRepo: professionRepo, pdf: pdf}
}

// Create registra un estudiante. El código QR se genera en el servidor y es
// la llave del check-in; nunca lo aporta el cliente.
func (uc *StudentUseCase) Create(in dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	fullname, ok := dto.ValidFullname(in.Fullname)
	if !ok {
		return nil, domain.ErrValidation
	}
	if in.StudentID == "" || in.Gender == "" {
		return nil, domain.ErrValidation
	}
	s := &entity.Student{
		ID:           uuid.New().String(),
		Fullname:     fullname,
		StudentID:    in.StudentID,
		Gender:       in.Gender,
		Image:        in.StudentImage,
		Course:       in.Course,
		QRCode:       uuid.New().String(),
		CreatedTime:  time.Now().UTC(),
		ProfessionID: in.ProfessionID,
		GroupID:      in.GroupID,
	}
	if err := uc.repo.Create(s); err != nil {
		return nil, err
	}
	return toStudentResponse(s), nil
}

// GetByID obtiene un estudiante por su UUID.
func (uc *StudentUseCase) GetByID(id string) (*dto.StudentResponse, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return toStudentResponse(s), nil
}

// GetByStudentID obtiene un estudiante por su matrícula.
func (uc *StudentUseCase) GetByStudentID(studentID string) (*dto.StudentResponse, error) {
	s, err := uc.repo.GetByStudentID(studentID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	return toStudentResponse(s), nil
}

// List lista estudiantes con paginación.
func (uc *StudentUseCase) List(limit, offset int) ([]dto.StudentResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StudentResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toStudentResponse(s))
	}
	return items, nil
}

// CredentialPDF genera la credencial imprimible del estudiante (con su QR).
// Devuelve (nil, nil) si el estudiante no existe.
func (uc *StudentUseCase) CredentialPDF(ctx context.Context, id string) ([]byte, error) {
	s, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, nil
	}
	var group *entity.Group
	if s.GroupID != nil {
		group, err = uc.groupRepo.GetByID(*s.GroupID)
		if err != nil {
			return nil, err
		}
	}
	var profession *entity.Profession
	if s.ProfessionID != nil {
		profession, err = uc.professionRepo.GetByID(*s.ProfessionID)
		if err != nil {
			return nil, err
		}
	}
	return uc.pdf.GenerateCredentialPDF(ctx, s, group, profession)
}

func toStudentResponse(s *entity.Student) *dto.StudentResponse {
	return &dto.StudentResponse{
		ID:           s.ID,
		Fullname:     s.Fullname,
		StudentID:    s.StudentID,
		Gender:       s.Gender,
		StudentImage: s.Image,
		Course:       s.Course,
		QRCode:       s.QRCode,
		CreatedTime:  s.CreatedTime,
		ProfessionID: s.ProfessionID,
		GroupID:      s.GroupID,
	}
}
