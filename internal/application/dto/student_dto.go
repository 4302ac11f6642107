package dto

import "time"

// CreateStudentRequest entrada para registrar un estudiante.
// El código QR no viaja en la entrada: se genera en el servidor.
type CreateStudentRequest struct {
	Fullname     string `json:"fullname"`
	StudentID    string `json:"student_id"`
	Gender       string `json:"gender"`
	StudentImage string `json:"student_image"`
	Course       int    `json:"course"`
	ProfessionID *int   `json:"student_profession_id"`
	GroupID      *int   `json:"student_group_id"`
}

// StudentResponse salida de un estudiante.
type StudentResponse struct {
	ID           string    `json:"id"`
	Fullname     string    `json:"fullname"`
	StudentID    string    `json:"student_id"`
	Gender       string    `json:"gender"`
	StudentImage string    `json:"student_image"`
	Course       int       `json:"course"`
	QRCode       string    `json:"qr_code"`
	CreatedTime  time.Time `json:"created_time"`
	ProfessionID *int      `json:"student_profession_id,omitempty"`
	GroupID      *int      `json:"student_group_id,omitempty"`
}
