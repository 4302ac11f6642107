package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/invorya/asistencia-api/internal/domain"
	"github.com/invorya/asistencia-api/internal/domain/entity"
	"github.com/invorya/asistencia-api/internal/domain/repository"
	"github.com/jackc/pgx/v5"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL (usable con pool o tx).
// La columna roles es text[]; se convierte al RoleSet de dominio al leer.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios. Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario.
func (r *UserRepo) Create(user *entity.User) error {
	query := `
		INSERT INTO users (id, fullname, hashed_password, is_active, roles)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		user.ID, user.Fullname, user.HashedPassword, user.IsActive, user.Roles.Labels(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	query := `
		SELECT id, fullname, hashed_password, is_active, roles
		FROM users WHERE id = $1`
	return r.scanUser(r.q.QueryRow(context.Background(), query, id), "get user by id")
}

// GetByFullname obtiene un usuario por fullname (identificador de login).
func (r *UserRepo) GetByFullname(fullname string) (*entity.User, error) {
	query := `
		SELECT id, fullname, hashed_password, is_active, roles
		FROM users WHERE fullname = $1 LIMIT 1`
	return r.scanUser(r.q.QueryRow(context.Background(), query, fullname), "get user by fullname")
}

// UpdateFullname aplica el cambio solo sobre un usuario activo.
// Devuelve el ID afectado o "" si no había fila que cumpliera la precondición.
func (r *UserRepo) UpdateFullname(id, fullname string) (string, error) {
	query := `
		UPDATE users SET fullname = $2
		WHERE id = $1 AND is_active = TRUE
		RETURNING id`
	var updatedID string
	err := r.q.QueryRow(context.Background(), query, id, fullname).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("update user fullname: %w", err)
	}
	return updatedID, nil
}

// UpdateRoles reemplaza el conjunto de roles de un usuario activo.
func (r *UserRepo) UpdateRoles(id string, roles entity.RoleSet) (string, error) {
	query := `
		UPDATE users SET roles = $2
		WHERE id = $1 AND is_active = TRUE
		RETURNING id`
	var updatedID string
	err := r.q.QueryRow(context.Background(), query, id, roles.Labels()).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("update user roles: %w", err)
	}
	return updatedID, nil
}

// SoftDelete marca is_active=false. El predicado is_active=TRUE hace la
// operación idempotente hacia not-found: un segundo borrado devuelve "".
func (r *UserRepo) SoftDelete(id string) (string, error) {
	query := `
		UPDATE users SET is_active = FALSE
		WHERE id = $1 AND is_active = TRUE
		RETURNING id`
	var deletedID string
	err := r.q.QueryRow(context.Background(), query, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("soft delete user: %w", err)
	}
	return deletedID, nil
}

func (r *UserRepo) scanUser(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	var labels []string
	err := row.Scan(&u.ID, &u.Fullname, &u.HashedPassword, &u.IsActive, &labels)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.Roles = entity.ParseRoles(labels)
	return &u, nil
}
