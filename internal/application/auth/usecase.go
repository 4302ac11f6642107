package auth

import (
	"github.com/invorya/asistencia-api/internal/application/dto"
	"github.com/invorya/asistencia-api/internal/domain"
	"github.com/invorya/asistencia-api/internal/domain/entity"
	"github.com/invorya/asistencia-api/internal/domain/repository"
	"github.com/invorya/asistencia-api/pkg/config"
	"github.com/invorya/asistencia-api/pkg/jwt"
	"github.com/invorya/asistencia-api/pkg/password"
)

// AuthUseCase flujo de autenticación: verificación de credenciales, emisión
// de token y resolución del usuario actual. Sin estado por petición.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg config.JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Authenticate busca el usuario activo por fullname y verifica el password.
// Usuario inexistente, inactivo o password incorrecto devuelven el mismo
// (nil, nil): el caller no puede distinguir las causas.
func (uc *AuthUseCase) Authenticate(fullname, plain string) (*entity.User, error) {
	user, err := uc.userRepo.GetByFullname(fullname)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, nil
	}
	if !password.Verify(plain, user.HashedPassword) {
		return nil, nil
	}
	return user, nil
}

// Login verifica credenciales y emite un token cuyo sujeto es el ID estable
// del usuario. Cualquier no-match devuelve ErrUnauthorized sin detalle.
func (uc *AuthUseCase) Login(fullname, plain string) (*dto.TokenResponse, error) {
	user, err := uc.Authenticate(fullname, plain)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg, user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// CurrentUser decodifica el token y relee el registro vivo del usuario.
// Nunca se usa una copia cacheada: cambios de rol o desactivación aplican
// en la siguiente petición. Toda falla es ErrUnauthorized.
func (uc *AuthUseCase) CurrentUser(token string) (*entity.User, error) {
	claims, err := jwt.Parse(uc.jwtCfg, token)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(claims.Subject)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	return user, nil
}
