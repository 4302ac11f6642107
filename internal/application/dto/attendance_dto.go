package dto

import "time"

// CheckInRequest entrada del check-in por QR escaneado.
type CheckInRequest struct {
	QRCode   string `json:"qr_code"`
	ChangeID *int   `json:"change_id"`
}

// AttendanceResponse salida de un registro de asistencia.
type AttendanceResponse struct {
	ID                  string    `json:"id"`
	AttendedStudentID   string    `json:"attended_student_id"`
	AttendedStudentName string    `json:"attended_student_name"`
	AttendedTime        time.Time `json:"attended_time"`
	AttendedChange      *int      `json:"attended_change,omitempty"`
}
