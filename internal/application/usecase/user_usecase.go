package usecase

import (
	"github.com/google/uuid"
	"github.com/invorya/asistencia-api/internal/application/dto"
	"github.com/invorya/asistencia-api/internal/domain"
	"github.com/invorya/asistencia-api/internal/domain/entity"
	"github.com/invorya/asistencia-api/internal/domain/policy"
	"github.com/invorya/asistencia-api/internal/domain/repository"
	"github.com/invorya/asistencia-api/pkg/password"
)

// UserUseCase operaciones sobre cuentas de usuario. Toda mutación pasa antes
// por policy.CanModify con el usuario actor resuelto del token.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create registra una cuenta: valida el fullname, hashea el password y
// persiste con roles por defecto {admin}. Ese default viene del diseño
// original del sistema y se conserva tal cual; ver DESIGN.md.
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.ShowUser, error) {
	fullname, ok := dto.ValidFullname(in.Fullname)
	if !ok {
		return nil, domain.ErrValidation
	}
	if in.Password == "" {
		return nil, domain.ErrValidation
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:             uuid.New().String(),
		Fullname:       fullname,
		HashedPassword: hash,
		IsActive:       true,
		Roles:          entity.RoleSet(0).With(entity.RoleAdmin),
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toShowUser(user), nil
}

// GetByID obtiene un usuario por ID.
func (uc *UserUseCase) GetByID(id string) (*dto.ShowUser, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toShowUser(user), nil
}

// Update aplica una actualización parcial sobre target si la política lo
// permite. Devuelve nil (sin error) si el target no existe o está inactivo:
// el handler lo traduce a 404, nunca se no-opea en silencio.
func (uc *UserUseCase) Update(actor *entity.User, targetID string, in dto.UpdateUserRequest) (*dto.UpdatedUserResponse, error) {
	if in.Fullname == nil {
		return nil, domain.ErrValidation
	}
	fullname, ok := dto.ValidFullname(*in.Fullname)
	if !ok {
		return nil, domain.ErrValidation
	}
	target, err := uc.repo.GetByID(targetID)
	if err != nil {
		return nil, err
	}
	if target == nil || !target.IsActive {
		return nil, nil
	}
	if err := policy.CanModify(actor, target, false); err != nil {
		return nil, err
	}
	updatedID, err := uc.repo.UpdateFullname(targetID, fullname)
	if err != nil {
		return nil, err
	}
	if updatedID == "" {
		return nil, nil
	}
	return &dto.UpdatedUserResponse{UpdatedUserID: updatedID}, nil
}

// Delete desactiva (soft delete) la cuenta target si la política lo permite.
// Borrar una cuenta ya inactiva devuelve nil: not-found, no éxito.
func (uc *UserUseCase) Delete(actor *entity.User, targetID string) (*dto.DeleteUserResponse, error) {
	target, err := uc.repo.GetByID(targetID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, nil
	}
	if err := policy.CanModify(actor, target, true); err != nil {
		return nil, err
	}
	deletedID, err := uc.repo.SoftDelete(targetID)
	if err != nil {
		return nil, err
	}
	if deletedID == "" {
		return nil, nil
	}
	return &dto.DeleteUserResponse{DeletedUserID: deletedID}, nil
}

// GrantAdmin añade el rol admin a target. Solo el superadmin puede otorgar
// privilegios; otorgar sobre quien ya es admin es un conflicto.
func (uc *UserUseCase) GrantAdmin(actor *entity.User, targetID string) (*dto.UpdatedUserResponse, error) {
	if !actor.IsSuperadmin() {
		return nil, domain.ErrForbidden
	}
	target, err := uc.repo.GetByID(targetID)
	if err != nil {
		return nil, err
	}
	if target == nil || !target.IsActive {
		return nil, nil
	}
	if target.IsAdmin() {
		return nil, domain.ErrDuplicate
	}
	updatedID, err := uc.repo.UpdateRoles(targetID, target.Roles.With(entity.RoleAdmin))
	if err != nil {
		return nil, err
	}
	if updatedID == "" {
		return nil, nil
	}
	return &dto.UpdatedUserResponse{UpdatedUserID: updatedID}, nil
}

// RevokeAdmin quita el rol admin a target. El tier superadmin nunca se
// degrada por esta vía.
func (uc *UserUseCase) RevokeAdmin(actor *entity.User, targetID string) (*dto.UpdatedUserResponse, error) {
	if !actor.IsSuperadmin() {
		return nil, domain.ErrForbidden
	}
	target, err := uc.repo.GetByID(targetID)
	if err != nil {
		return nil, err
	}
	if target == nil || !target.IsActive {
		return nil, nil
	}
	if target.IsSuperadmin() {
		return nil, domain.ErrSuperadminImmutable
	}
	if !target.IsAdmin() {
		return nil, domain.ErrDuplicate
	}
	roles := target.Roles.Without(entity.RoleAdmin)
	if roles.IsEmpty() {
		// El conjunto de roles nunca queda vacío para una cuenta autenticable.
		roles = roles.With(entity.RoleClient)
	}
	updatedID, err := uc.repo.UpdateRoles(targetID, roles)
	if err != nil {
		return nil, err
	}
	if updatedID == "" {
		return nil, nil
	}
	return &dto.UpdatedUserResponse{UpdatedUserID: updatedID}, nil
}

func toShowUser(u *entity.User) *dto.ShowUser {
	if u == nil {
		return nil
	}
	return &dto.ShowUser{
		UserID:   u.ID,
		Fullname: u.Fullname,
		IsActive: u.IsActive,
		Roles:    u.Roles.Labels(),
	}
}
