package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/asistencia-api/internal/application/auth"
	"github.com/invorya/asistencia-api/internal/application/usecase"
	"github.com/invorya/asistencia-api/internal/domain/entity"
	apphttp "github.com/invorya/asistencia-api/internal/interfaces/http"
	"github.com/invorya/asistencia-api/pkg/config"
	"github.com/invorya/asistencia-api/pkg/password"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de usuarios
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]*entity.User
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
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func testJWTCfg() config.JWTConfig {
	return config.JWTConfig{
		Secret:     "test-secret-key-for-unit-tests",
		Algorithm:  "HS256",
		ExpMinutes: 60,
		Issuer:     "attendance-system-test",
	}
}

// buildTestApp levanta la app completa sobre el repo fake. Los casos de uso
// académicos y de asistencia se registran pero no se ejercitan aquí.
func buildTestApp(repo *fakeUserRepo) *fiber.App {
	app := fiber.New()
	authUC := auth.NewAuthUseCase(repo, testJWTCfg())
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC:       authUC,
		UserUC:       usecase.NewUserUseCase(repo),
		FacultyUC:    usecase.NewFacultyUseCase(nil),
		StudyYearUC:  usecase.NewStudyYearUseCase(nil),
		ChangeUC:     usecase.NewChangeUseCase(nil),
		ProfessionUC: usecase.NewProfessionUseCase(nil),
		GroupUC:      usecase.NewGroupUseCase(nil),
		StudentUC:    usecase.NewStudentUseCase(nil, nil, nil, nil),
		AttendanceUC: nil,
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// seedSuperadmin inserta directo en el repo una cuenta superadmin: no hay
// endpoint público que otorgue ese tier.
func seedSuperadmin(t *testing.T, repo *fakeUserRepo, fullname, pass string) string {
	t.Helper()
	hash, err := password.Hash(pass)
	require.NoError(t, err)
	id := uuid.New().String()
	require.NoError(t, repo.Create(&entity.User{
		ID:             id,
		Fullname:       fullname,
		HashedPassword: hash,
		IsActive:       true,
		Roles:          entity.RoleSet(0).With(entity.RoleAdmin).With(entity.RoleSuperadmin),
	}))
	return id
}

// registerUser da de alta un usuario vía el endpoint público y devuelve su user_id.
func registerUser(t *testing.T, app *fiber.App, fullname, pass string) string {
	t.Helper()
	body := `{"fullname":"` + fullname + `","password":"` + pass + `"}`
	req := httptest.NewRequest(http.MethodPost, "/user/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := doRequest(t, app, req)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode, "el alta pública debe responder 201")

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	id, _ := out["user_id"].(string)
	require.NotEmpty(t, id)
	return id
}

// loginUser hace login form-encoded y devuelve el access_token.
func loginUser(t *testing.T, app *fiber.App, fullname, pass string) string {
	t.Helper()
	form := url.Values{"username": {fullname}, "password": {pass}}
	req := httptest.NewRequest(http.MethodPost, "/login/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := doRequest(t, app, req)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "el login debe responder 200")

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, "bearer", out["token_type"])
	require.NotEmpty(t, out["access_token"])
	return out["access_token"]
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo: alta → login → consulta autenticada
// ──────────────────────────────────────────────────────────────────────────────

func TestFlujo_AltaLoginConsulta(t *testing.T) {
	app := buildTestApp(newFakeUserRepo())

	id := registerUser(t, app, "Ivanov", "secreto")
	token := loginUser(t, app, "Ivanov", "secreto")

	req := httptest.NewRequest(http.MethodGet, "/user/"+id, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := doRequest(t, app, req)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, id, body["user_id"])
	assert.Equal(t, "Ivanov", body["fullname"])
	assert.Equal(t, true, body["is_active"])
	assert.NotContains(t, body, "password", "la respuesta nunca incluye el password")
	assert.NotContains(t, body, "hashed_password")
}

// ──────────────────────────────────────────────────────────────────────────────
// Middleware de auth
// ──────────────────────────────────────────────────────────────────────────────

func TestAuth_SinHeaderRetorna401(t *testing.T) {
	app := buildTestApp(newFakeUserRepo())

	req := httptest.NewRequest(http.MethodGet, "/user/cualquiera", nil)
	resp := doRequest(t, app, req)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_TokenInvalidoRetorna401(t *testing.T) {
	app := buildTestApp(newFakeUserRepo())

	req := httptest.NewRequest(http.MethodGet, "/user/cualquiera", nil)
	req.Header.Set("Authorization", "Bearer token.invalido.aqui")
	resp := doRequest(t, app, req)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuth_SchemeNoEsBearerRetorna401(t *testing.T) {
	app := buildTestApp(newFakeUserRepo())

	req := httptest.NewRequest(http.MethodGet, "/user/cualquiera", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	resp := doRequest(t, app, req)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// Un token emitido deja de servir cuando la cuenta se desactiva: el middleware
// relee el usuario de la base en cada petición.
func TestAuth_TokenDeCuentaDesactivadaRetorna401(t *testing.T) {
	repo := newFakeUserRepo()
	app := buildTestApp(repo)

	id := registerUser(t, app, "Ivanov", "secreto")
	token := loginUser(t, app, "Ivanov", "secreto")

	_, err := repo.SoftDelete(id)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/user/"+id, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := doRequest(t, app, req)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login: respuesta 401 uniforme
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_401UniformeParaTodaCausa(t *testing.T) {
	app := buildTestApp(newFakeUserRepo())
	registerUser(t, app, "Ivanov", "secreto")

	readBody := func(fullname, pass string) (int, string) {
		form := url.Values{"username": {fullname}, "password": {pass}}
		req := httptest.NewRequest(http.MethodPost, "/login/token", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		resp := doRequest(t, app, req)
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		return resp.StatusCode, string(b)
	}

	codeInexistente, bodyInexistente := readBody("Nadie", "secreto")
	codePassword, bodyPassword := readBody("Ivanov", "incorrecto")

	assert.Equal(t, http.StatusUnauthorized, codeInexistente)
	assert.Equal(t, http.StatusUnauthorized, codePassword)
	assert.Equal(t, bodyInexistente, bodyPassword,
		"usuario inexistente y password incorrecto deben ser indistinguibles")
}

// ──────────────────────────────────────────────────────────────────────────────
// Mutaciones de usuario sobre la app completa
// ──────────────────────────────────────────────────────────────────────────────

func TestUserDelete_SoftDeleteYSegundoBorrado404(t *testing.T) {
	repo := newFakeUserRepo()
	app := buildTestApp(repo)

	// El alta pública da rol admin; borrar a un admin exige superadmin.
	seedSuperadmin(t, repo, "Jefe", "secreto")
	targetID := registerUser(t, app, "Ivanov", "otro")
	token := loginUser(t, app, "Jefe", "secreto")

	del := func() int {
		req := httptest.NewRequest(http.MethodDelete, "/user/"+targetID, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp := doRequest(t, app, req)
		defer resp.Body.Close()
		return resp.StatusCode
	}

	assert.Equal(t, http.StatusOK, del(), "el primer borrado debe responder 200")
	assert.Equal(t, http.StatusNotFound, del(), "el segundo borrado es not-found, no éxito")
}

func TestUserUpdate_FullnameInvalidoRetorna422(t *testing.T) {
	app := buildTestApp(newFakeUserRepo())

	id := registerUser(t, app, "Ivanov", "secreto")
	token := loginUser(t, app, "Ivanov", "secreto")

	body := `{"fullname":"nombre con espacios"}`
	req := httptest.NewRequest(http.MethodPatch, "/user/"+id, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	resp := doRequest(t, app, req)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}
