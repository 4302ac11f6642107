package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/invorya/asistencia-api/internal/application/attendance"
	"github.com/invorya/asistencia-api/internal/application/auth"
	"github.com/invorya/asistencia-api/internal/application/usecase"
	infrapdf "github.com/invorya/asistencia-api/internal/infrastructure/pdf"
	"github.com/invorya/asistencia-api/internal/infrastructure/postgres"
	httpRouter "github.com/invorya/asistencia-api/internal/interfaces/http"
	"github.com/invorya/asistencia-api/pkg/config"
	"github.com/invorya/asistencia-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	facultyRepo := postgres.NewFacultyRepository(pool)
	studyYearRepo := postgres.NewStudyYearRepository(pool)
	changeRepo := postgres.NewChangeRepository(pool)
	professionRepo := postgres.NewProfessionRepository(pool)
	groupRepo := postgres.NewGroupRepository(pool)
	studentRepo := postgres.NewStudentRepository(pool)
	attendanceRepo := postgres.NewAttendanceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, cfg.JWT)
	userUC := usecase.NewUserUseCase(userRepo)
	facultyUC := usecase.NewFacultyUseCase(facultyRepo)
	studyYearUC := usecase.NewStudyYearUseCase(studyYearRepo)
	changeUC := usecase.NewChangeUseCase(changeRepo)
	professionUC := usecase.NewProfessionUseCase(professionRepo)
	groupUC := usecase.NewGroupUseCase(groupRepo)

	// PDF: credencial imprimible del estudiante con su QR de asistencia
	credentialPDF := infrapdf.NewMarotoCredentialGenerator()
	studentUC := usecase.NewStudentUseCase(studentRepo, groupRepo, professionRepo, credentialPDF)

	attendanceUC := attendance.NewCheckInUseCase(txRunner, attendanceRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Attendance System API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		FacultyUC:    facultyUC,
		StudyYearUC:  studyYearUC,
		ChangeUC:     changeUC,
		ProfessionUC: professionUC,
		GroupUC:      groupUC,
		StudentUC:    studentUC,
		AttendanceUC: attendanceUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
