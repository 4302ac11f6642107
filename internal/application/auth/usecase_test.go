package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/asistencia-api/internal/application/auth"
	"github.com/invorya/asistencia-api/internal/domain/entity"
	"github.com/invorya/asistencia-api/pkg/config"
	"github.com/invorya/asistencia-api/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de usuarios
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByFullname(fullname string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Fullname == fullname && u.IsActive {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdateFullname(id, fullname string) (string, error) {
	u, ok := f.users[id]
	if !ok || !u.IsActive {
		return "", nil
	}
	u.Fullname = fullname
	return id, nil
}

func (f *fakeUserRepo) UpdateRoles(id string, roles entity.RoleSet) (string, error) {
	u, ok := f.users[id]
	if !ok || !u.IsActive {
		return "", nil
	}
	u.Roles = roles
	return id, nil
}

func (f *fakeUserRepo) SoftDelete(id string) (string, error) {
	u, ok := f.users[id]
	if !ok || !u.IsActive {
		return "", nil
	}
	u.IsActive = false
	return id, nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func testJWTCfg() config.JWTConfig {
	return config.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		Algorithm:  "HS256",
		ExpMinutes: 60,
		Issuer:     "attendance-system-test",
	}
}

func seedUser(t *testing.T, repo *fakeUserRepo, id, fullname, plain string, active bool) *entity.User {
	t.Helper()
	hash, err := password.Hash(plain)
	require.NoError(t, err)
	u := &entity.User{
		ID:             id,
		Fullname:       fullname,
		HashedPassword: hash,
		IsActive:       active,
		Roles:          entity.RoleSet(0).With(entity.RoleAdmin),
	}
	require.NoError(t, repo.Create(u))
	return u
}

// ──────────────────────────────────────────────────────────────────────────────
// Authenticate
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthenticate_CredencialesCorrectas(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "u1", "Ivanov", "secreto", true)
	uc := auth.NewAuthUseCase(repo, testJWTCfg())

	user, err := uc.Authenticate("Ivanov", "secreto")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)
}

// Las tres causas de no-match devuelven exactamente lo mismo: (nil, nil).
// El caller no debe poder distinguir usuario inexistente, inactivo o
// password incorrecto.
func TestAuthenticate_NoMatchUniforme(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "u1", "Ivanov", "secreto", true)
	seedUser(t, repo, "u2", "Petrov", "secreto", false) // inactivo
	uc := auth.NewAuthUseCase(repo, testJWTCfg())

	for _, tc := range []struct {
		name, fullname, pass string
	}{
		{"usuario inexistente", "Nadie", "secreto"},
		{"usuario inactivo", "Petrov", "secreto"},
		{"password incorrecto", "Ivanov", "incorrecto"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			user, err := uc.Authenticate(tc.fullname, tc.pass)
			assert.NoError(t, err)
			assert.Nil(t, user)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / CurrentUser
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_EmiteTokenBearer(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "u1", "Ivanov", "secreto", true)
	uc := auth.NewAuthUseCase(repo, testJWTCfg())

	tok, err := uc.Login("Ivanov", "secreto")
	require.NoError(t, err)
	require.NotNil(t, tok)
	assert.NotEmpty(t, tok.AccessToken)
	assert.Equal(t, "bearer", tok.TokenType)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "u1", "Ivanov", "secreto", true)
	uc := auth.NewAuthUseCase(repo, testJWTCfg())

	_, err := uc.Login("Ivanov", "incorrecto")
	assert.Error(t, err)
}

func TestCurrentUser_ResuelveDesdeToken(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "u1", "Ivanov", "secreto", true)
	uc := auth.NewAuthUseCase(repo, testJWTCfg())

	tok, err := uc.Login("Ivanov", "secreto")
	require.NoError(t, err)

	user, err := uc.CurrentUser(tok.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "Ivanov", user.Fullname)
}

// El estado vivo manda: un token válido deja de servir en cuanto la cuenta
// se desactiva, sin esperar a que expire.
func TestCurrentUser_CuentaDesactivadaInvalidaElToken(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "u1", "Ivanov", "secreto", true)
	uc := auth.NewAuthUseCase(repo, testJWTCfg())

	tok, err := uc.Login("Ivanov", "secreto")
	require.NoError(t, err)

	_, err = repo.SoftDelete("u1")
	require.NoError(t, err)

	_, err = uc.CurrentUser(tok.AccessToken)
	assert.Error(t, err, "un token de cuenta desactivada no debe autenticar")
}

// Igual con cambios de rol: CurrentUser relee el registro, nunca usa una
// copia embebida en el token.
func TestCurrentUser_RolesSeReleenDeLaBase(t *testing.T) {
	repo := newFakeUserRepo()
	seedUser(t, repo, "u1", "Ivanov", "secreto", true)
	uc := auth.NewAuthUseCase(repo, testJWTCfg())

	tok, err := uc.Login("Ivanov", "secreto")
	require.NoError(t, err)

	_, err = repo.UpdateRoles("u1", entity.RoleSet(0).With(entity.RoleClient))
	require.NoError(t, err)

	user, err := uc.CurrentUser(tok.AccessToken)
	require.NoError(t, err)
	assert.False(t, user.IsAdmin(), "la revocación debe verse en la petición siguiente")
}

func TestCurrentUser_TokenInvalido(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo(), testJWTCfg())
	_, err := uc.CurrentUser("token.invalido.aqui")
	assert.Error(t, err)
}
