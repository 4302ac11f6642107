package repository

import "github.com/invorya/asistencia-api/internal/domain/entity"

// Puertos de persistencia para las tablas de dimensión académica.
// Create rellena el ID autoincremental generado por el store; los getters
// devuelven (nil, nil) cuando el registro no existe.

// FacultyRepository puerto de persistencia para Faculty.
type FacultyRepository interface {
	Create(f *entity.Faculty) error
	GetByID(id int) (*entity.Faculty, error)
	List(limit, offset int) ([]*entity.Faculty, error)
}

// StudyYearRepository puerto de persistencia para StudyYear.
type StudyYearRepository interface {
	Create(y *entity.StudyYear) error
	GetByID(id int) (*entity.StudyYear, error)
	List(limit, offset int) ([]*entity.StudyYear, error)
}

// ChangeRepository puerto de persistencia para Change (turno).
type ChangeRepository interface {
	Create(c *entity.Change) error
	GetByID(id int) (*entity.Change, error)
	List(limit, offset int) ([]*entity.Change, error)
}

// ProfessionRepository puerto de persistencia para Profession.
type ProfessionRepository interface {
	Create(p *entity.Profession) error
	GetByID(id int) (*entity.Profession, error)
	List(limit, offset int) ([]*entity.Profession, error)
}

// GroupRepository puerto de persistencia para Group.
type GroupRepository interface {
	Create(g *entity.Group) error
	GetByID(id int) (*entity.Group, error)
	List(limit, offset int) ([]*entity.Group, error)
}
