package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/invorya/asistencia-api/internal/application/attendance"
	"github.com/invorya/asistencia-api/internal/application/auth"
	"github.com/invorya/asistencia-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	FacultyUC    *usecase.FacultyUseCase
	StudyYearUC  *usecase.StudyYearUseCase
	ChangeUC     *usecase.ChangeUseCase
	ProfessionUC *usecase.ProfessionUseCase
	GroupUC      *usecase.GroupUseCase
	StudentUC    *usecase.StudentUseCase
	AttendanceUC *attendance.CheckInUseCase
}

// Router registra las rutas de la API. Rutas públicas: login y alta de
// usuario; el resto exige Bearer Token con usuario activo.
func Router(app *fiber.App, deps RouterDeps) {
	// Login (público, form-encoded)
	login := app.Group("/login")
	authHandler := NewAuthHandler(deps.AuthUC)
	login.Post("/token", authHandler.Login)

	userHandler := NewUserHandler(deps.UserUC)
	// Alta de usuario (público, como en el diseño original)
	app.Post("/user/", userHandler.Create)

	// Rutas protegidas (requieren Bearer Token; el usuario se relee de la DB)
	protected := app.Group("/", AuthMiddleware(deps.AuthUC))

	user := protected.Group("/user")
	user.Get("/:id", userHandler.GetByID)
	user.Patch("/:id", userHandler.Update)
	user.Delete("/:id", userHandler.Delete)
	user.Patch("/:id/admin_privilege", userHandler.GrantAdmin)
	user.Delete("/:id/admin_privilege", userHandler.RevokeAdmin)

	faculty := protected.Group("/faculty")
	facultyHandler := NewFacultyHandler(deps.FacultyUC)
	faculty.Post("/", facultyHandler.Create)
	faculty.Get("/", facultyHandler.List)
	faculty.Get("/:id", facultyHandler.GetByID)

	studyYear := protected.Group("/study_year")
	studyYearHandler := NewStudyYearHandler(deps.StudyYearUC)
	studyYear.Post("/", studyYearHandler.Create)
	studyYear.Get("/", studyYearHandler.List)
	studyYear.Get("/:id", studyYearHandler.GetByID)

	change := protected.Group("/change")
	changeHandler := NewChangeHandler(deps.ChangeUC)
	change.Post("/", changeHandler.Create)
	change.Get("/", changeHandler.List)
	change.Get("/:id", changeHandler.GetByID)

	profession := protected.Group("/profession")
	professionHandler := NewProfessionHandler(deps.ProfessionUC)
	profession.Post("/", professionHandler.Create)
	profession.Get("/", professionHandler.List)
	profession.Get("/:id", professionHandler.GetByID)

	group := protected.Group("/group")
	groupHandler := NewGroupHandler(deps.GroupUC)
	group.Post("/", groupHandler.Create)
	group.Get("/", groupHandler.List)
	group.Get("/:id", groupHandler.GetByID)

	student := protected.Group("/student")
	studentHandler := NewStudentHandler(deps.StudentUC)
	student.Post("/", studentHandler.Create)
	student.Get("/", studentHandler.List)
	student.Get("/matricula/:student_id", studentHandler.GetByStudentID)
	student.Get("/:id", studentHandler.GetByID)
	student.Get("/:id/credential", studentHandler.Credential)

	att := protected.Group("/attendance")
	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC)
	att.Post("/check_in", attendanceHandler.CheckIn)
	att.Get("/", attendanceHandler.ListByStudent)
	att.Get("/change/:change_id", attendanceHandler.ListByChange)
}
