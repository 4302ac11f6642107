package entity

import "time"

// AttendanceRecord registro de asistencia. Append-only: se crea en el momento
// del escaneo y es inmutable después.
type AttendanceRecord struct {
	ID          string // UUID
	StudentID   string // matrícula del estudiante (students.student_id)
	StudentName string
	Time        time.Time
	ChangeID    *int // fk → change.id
	QRCode      string
}
