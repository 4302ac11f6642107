package usecase

import (
	"time"

	"github.com/invorya/asistencia-api/internal/application/dto"
	"github.com/invorya/asistencia-api/internal/domain"
	"github.com/invorya/asistencia-api/internal/domain/entity"
	"github.com/invorya/asistencia-api/internal/domain/repository"
)

// Casos de uso CRUD de las dimensiones académicas. Crear y leer: estas tablas
// no tienen ciclo de vida propio más allá del alta administrativa.

// ── Faculty ───────────────────────────────────────────────────────────────────

// FacultyUseCase casos de uso para facultades.
type FacultyUseCase struct {
	repo repository.FacultyRepository
}

// NewFacultyUseCase construye el caso de uso.
func NewFacultyUseCase(repo repository.FacultyRepository) *FacultyUseCase {
	return &FacultyUseCase{repo: repo}
}

// Create crea una facultad.
func (uc *FacultyUseCase) Create(in dto.CreateFacultyRequest) (*dto.FacultyResponse, error) {
	if in.FacultyName == "" || in.FacultyDean == "" {
		return nil, domain.ErrValidation
	}
	f := &entity.Faculty{Name: in.FacultyName, Dean: in.FacultyDean}
	if err := uc.repo.Create(f); err != nil {
		return nil, err
	}
	return toFacultyResponse(f), nil
}

// GetByID obtiene una facultad por ID.
func (uc *FacultyUseCase) GetByID(id int) (*dto.FacultyResponse, error) {
	f, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, nil
	}
	return toFacultyResponse(f), nil
}

// List lista facultades con paginación.
func (uc *FacultyUseCase) List(limit, offset int) ([]dto.FacultyResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.FacultyResponse, 0, len(list))
	for _, f := range list {
		items = append(items, *toFacultyResponse(f))
	}
	return items, nil
}

func toFacultyResponse(f *entity.Faculty) *dto.FacultyResponse {
	return &dto.FacultyResponse{ID: f.ID, FacultyName: f.Name, FacultyDean: f.Dean}
}

// ── StudyYear ─────────────────────────────────────────────────────────────────

// StudyYearUseCase casos de uso para años lectivos.
type StudyYearUseCase struct {
	repo repository.StudyYearRepository
}

// NewStudyYearUseCase construye el caso de uso.
func NewStudyYearUseCase(repo repository.StudyYearRepository) *StudyYearUseCase {
	return &StudyYearUseCase{repo: repo}
}

// Create crea un año lectivo.
func (uc *StudyYearUseCase) Create(in dto.CreateStudyYearRequest) (*dto.StudyYearResponse, error) {
	if in.Year == "" {
		return nil, domain.ErrValidation
	}
	y := &entity.StudyYear{Year: in.Year}
	if err := uc.repo.Create(y); err != nil {
		return nil, err
	}
	return &dto.StudyYearResponse{ID: y.ID, Year: y.Year}, nil
}

// GetByID obtiene un año lectivo por ID.
func (uc *StudyYearUseCase) GetByID(id int) (*dto.StudyYearResponse, error) {
	y, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if y == nil {
		return nil, nil
	}
	return &dto.StudyYearResponse{ID: y.ID, Year: y.Year}, nil
}

// List lista años lectivos con paginación.
func (uc *StudyYearUseCase) List(limit, offset int) ([]dto.StudyYearResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.StudyYearResponse, 0, len(list))
	for _, y := range list {
		items = append(items, dto.StudyYearResponse{ID: y.ID, Year: y.Year})
	}
	return items, nil
}

// ── Change ────────────────────────────────────────────────────────────────────

// ChangeUseCase casos de uso para turnos.
type ChangeUseCase struct {
	repo repository.ChangeRepository
}

// NewChangeUseCase construye el caso de uso.
func NewChangeUseCase(repo repository.ChangeRepository) *ChangeUseCase {
	return &ChangeUseCase{repo: repo}
}

// clockLayout formato de hora del día para los turnos.
const clockLayout = "15:04"

// Create crea un turno. Las horas llegan como "HH:MM" y pueden faltar.
func (uc *ChangeUseCase) Create(in dto.CreateChangeRequest) (*dto.ChangeResponse, error) {
	if in.ChangeName == "" {
		return nil, domain.ErrValidation
	}
	c := &entity.Change{Name: in.ChangeName, YearID: in.ChangeYear}
	if in.StartTime != "" {
		t, err := time.Parse(clockLayout, in.StartTime)
		if err != nil {
			return nil, domain.ErrValidation
		}
		c.StartTime = &t
	}
	if in.EndTime != "" {
		t, err := time.Parse(clockLayout, in.EndTime)
		if err != nil {
			return nil, domain.ErrValidation
		}
		c.EndTime = &t
	}
	if err := uc.repo.Create(c); err != nil {
		return nil, err
	}
	return toChangeResponse(c), nil
}

// GetByID obtiene un turno por ID.
func (uc *ChangeUseCase) GetByID(id int) (*dto.ChangeResponse, error) {
	c, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toChangeResponse(c), nil
}

// List lista turnos con paginación.
func (uc *ChangeUseCase) List(limit, offset int) ([]dto.ChangeResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ChangeResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toChangeResponse(c))
	}
	return items, nil
}

func toChangeResponse(c *entity.Change) *dto.ChangeResponse {
	out := &dto.ChangeResponse{ID: c.ID, ChangeName: c.Name, ChangeYear: c.YearID}
	if c.StartTime != nil {
		out.StartTime = c.StartTime.Format(clockLayout)
	}
	if c.EndTime != nil {
		out.EndTime = c.EndTime.Format(clockLayout)
	}
	return out
}

// ── Profession ────────────────────────────────────────────────────────────────

// ProfessionUseCase casos de uso para carreras.
type ProfessionUseCase struct {
	repo repository.ProfessionRepository
}

// NewProfessionUseCase construye el caso de uso.
func NewProfessionUseCase(repo repository.ProfessionRepository) *ProfessionUseCase {
	return &ProfessionUseCase{repo: repo}
}

// Create crea una carrera.
func (uc *ProfessionUseCase) Create(in dto.CreateProfessionRequest) (*dto.ProfessionResponse, error) {
	if in.ProfessionName == "" {
		return nil, domain.ErrValidation
	}
	p := &entity.Profession{Name: in.ProfessionName}
	if err := uc.repo.Create(p); err != nil {
		return nil, err
	}
	return &dto.ProfessionResponse{ID: p.ID, ProfessionName: p.Name}, nil
}

// GetByID obtiene una carrera por ID.
func (uc *ProfessionUseCase) GetByID(id int) (*dto.ProfessionResponse, error) {
	p, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	return &dto.ProfessionResponse{ID: p.ID, ProfessionName: p.Name}, nil
}

// List lista carreras con paginación.
func (uc *ProfessionUseCase) List(limit, offset int) ([]dto.ProfessionResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProfessionResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.ProfessionResponse{ID: p.ID, ProfessionName: p.Name})
	}
	return items, nil
}

// ── Group ─────────────────────────────────────────────────────────────────────

// GroupUseCase casos de uso para grupos.
type GroupUseCase struct {
	repo repository.GroupRepository
}

// NewGroupUseCase construye el caso de uso.
func NewGroupUseCase(repo repository.GroupRepository) *GroupUseCase {
	return &GroupUseCase{repo: repo}
}

// Create crea un grupo. study_year_id es obligatorio; las FK inválidas las
// rechaza el store y suben como domain.ErrReference.
func (uc *GroupUseCase) Create(in dto.CreateGroupRequest) (*dto.GroupResponse, error) {
	if in.GroupName == "" || in.GroupYear == "" || in.StudyYearID == 0 {
		return nil, domain.ErrValidation
	}
	g := &entity.Group{
		Name:        in.GroupName,
		Year:        in.GroupYear,
		ChangeID:    in.GroupChangeID,
		StudyYearID: in.StudyYearID,
	}
	if err := uc.repo.Create(g); err != nil {
		return nil, err
	}
	return toGroupResponse(g), nil
}

// GetByID obtiene un grupo por ID.
func (uc *GroupUseCase) GetByID(id int) (*dto.GroupResponse, error) {
	g, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, nil
	}
	return toGroupResponse(g), nil
}

// List lista grupos con paginación.
func (uc *GroupUseCase) List(limit, offset int) ([]dto.GroupResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GroupResponse, 0, len(list))
	for _, g := range list {
		items = append(items, *toGroupResponse(g))
	}
	return items, nil
}

func toGroupResponse(g *entity.Group) *dto.GroupResponse {
	return &dto.GroupResponse{
		ID:            g.ID,
		GroupName:     g.Name,
		GroupYear:     g.Year,
		GroupChangeID: g.ChangeID,
		StudyYearID:   g.StudyYearID,
	}
}
