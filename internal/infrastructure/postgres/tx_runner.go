package postgres

import (
	"context"
	"fmt"

	"github.com/invorya/asistencia-api/internal/application/attendance"
	"github.com/invorya/asistencia-api/internal/domain/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Ensure TxRunner implements attendance.TxRunner.
var _ attendance.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace
// Commit o Rollback. La tx usa context.Background() en los statements de los
// repos: si el caller se desconecta, la operación en vuelo termina o se
// revierte completa, nunca queda a medias.
func (r *TxRunner) Run(ctx context.Context, fn func(
	studentRepo repository.StudentRepository,
	attendanceRepo repository.AttendanceRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	studentRepo := NewStudentRepository(tx)
	attendanceRepo := NewAttendanceRepository(tx)

	if err := fn(studentRepo, attendanceRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
