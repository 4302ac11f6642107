package entity

import "time"

// Entidades de dimensión académica. Jerarquía superficial:
// Group → Change → StudyYear; Student → Group, Profession.
// Se crean por operaciones administrativas y después son de solo lectura.

// Faculty facultad de la institución.
type Faculty struct {
	ID   int
	Name string
	Dean string
}

// StudyYear año lectivo.
type StudyYear struct {
	ID   int
	Year string
}

// Change turno (mañana/tarde/noche) con su franja horaria.
type Change struct {
	ID        int
	Name      string
	StartTime *time.Time // solo la hora del día es significativa
	EndTime   *time.Time
	YearID    *int // fk → study_year.id
}

// Profession carrera o especialidad.
type Profession struct {
	ID   int
	Name string
}

// Group grupo de estudiantes dentro de un turno y año lectivo.
type Group struct {
	ID          int
	Name        string
	Year        string
	ChangeID    *int // fk → change.id
	StudyYearID int  // fk → study_year.id, not null
}
