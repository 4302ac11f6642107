package entity

import "time"

// Student estudiante registrado. QRCode es el token impreso en su credencial
// y es la llave de facto del check-in de asistencia.
type Student struct {
	ID           string // UUID
	Fullname     string
	StudentID    string // matrícula visible
	Gender       string
	Image        string // ruta o URL de la foto
	Course       int
	QRCode       string
	CreatedTime  time.Time
	ProfessionID *int // fk → professions.id
	GroupID      *int // fk → groups.id
}
