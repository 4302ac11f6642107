package dto

// DTOs de las entidades de dimensión académica. Los horarios de Change viajan
// como "HH:MM" (solo la hora del día es significativa).

// CreateFacultyRequest entrada para crear una facultad.
type CreateFacultyRequest struct {
	FacultyName string `json:"faculty_name"`
	FacultyDean string `json:"faculty_dean"`
}

// FacultyResponse salida de una facultad.
type FacultyResponse struct {
	ID          int    `json:"id"`
	FacultyName string `json:"faculty_name"`
	FacultyDean string `json:"faculty_dean"`
}

// CreateStudyYearRequest entrada para crear un año lectivo.
type CreateStudyYearRequest struct {
	Year string `json:"year"`
}

// StudyYearResponse salida de un año lectivo.
type StudyYearResponse struct {
	ID   int    `json:"id"`
	Year string `json:"year"`
}

// CreateChangeRequest entrada para crear un turno.
type CreateChangeRequest struct {
	ChangeName string `json:"change_name"`
	StartTime  string `json:"start_time"` // "HH:MM", opcional
	EndTime    string `json:"end_time"`   // "HH:MM", opcional
	ChangeYear *int   `json:"change_year"`
}

// ChangeResponse salida de un turno.
type ChangeResponse struct {
	ID         int    `json:"id"`
	ChangeName string `json:"change_name"`
	StartTime  string `json:"start_time,omitempty"`
	EndTime    string `json:"end_time,omitempty"`
	ChangeYear *int   `json:"change_year,omitempty"`
}

// CreateProfessionRequest entrada para crear una carrera.
type CreateProfessionRequest struct {
	ProfessionName string `json:"profession_name"`
}

// ProfessionResponse salida de una carrera.
type ProfessionResponse struct {
	ID             int    `json:"id"`
	ProfessionName string `json:"profession_name"`
}

// CreateGroupRequest entrada para crear un grupo.
type CreateGroupRequest struct {
	GroupName     string `json:"group_name"`
	GroupYear     string `json:"group_year"`
	GroupChangeID *int   `json:"group_change_id"`
	StudyYearID   int    `json:"study_year_id"`
}

// GroupResponse salida de un grupo.
type GroupResponse struct {
	ID            int    `json:"id"`
	GroupName     string `json:"group_name"`
	GroupYear     string `json:"group_year"`
	GroupChangeID *int   `json:"group_change_id,omitempty"`
	StudyYearID   int    `json:"study_year_id"`
}
