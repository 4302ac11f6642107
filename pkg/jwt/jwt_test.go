package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/asistencia-api/pkg/config"
	pkgjwt "github.com/invorya/asistencia-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
)

func testCfg() config.JWTConfig {
	return config.JWTConfig{
		Secret:     testSecret,
		Algorithm:  "HS256",
		ExpMinutes: 60,
		Issuer:     "attendance-system-test",
	}
}

func TestJWT_GenerateAndParse(t *testing.T) {
	cfg := testCfg()

	tok, err := pkgjwt.Generate(cfg, testUserID)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(cfg, tok)
	require.NoError(t, err)

	assert.Equal(t, testUserID, claims.Subject, "el sujeto debe ser el UUID del usuario")
	assert.Equal(t, cfg.Issuer, claims.Issuer)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	// Token con expiración -1 minuto (ya expirado)
	cfg := testCfg()
	cfg.ExpMinutes = -1

	tok, err := pkgjwt.Generate(cfg, testUserID)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(cfg, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	cfg := testCfg()
	tok, err := pkgjwt.Generate(cfg, testUserID)
	require.NoError(t, err)

	otro := cfg
	otro.Secret = "otro-secret-completamente-distinto"
	_, err = pkgjwt.Parse(otro, tok)
	assert.Error(t, err, "secret incorrecto debe invalidar el token")
}

func TestJWT_TokenMalformado_RetornaError(t *testing.T) {
	_, err := pkgjwt.Parse(testCfg(), "token.invalido.aqui")
	assert.Error(t, err)
}

// El error de Parse es opaco: malformado, firma incorrecta y expirado
// producen el mismo mensaje para que la superficie HTTP no filtre la causa.
func TestJWT_ErrorOpacoUniforme(t *testing.T) {
	cfg := testCfg()

	expirado := cfg
	expirado.ExpMinutes = -1
	tokExpirado, err := pkgjwt.Generate(expirado, testUserID)
	require.NoError(t, err)

	_, errMalformado := pkgjwt.Parse(cfg, "no-es-un-jwt")
	_, errExpirado := pkgjwt.Parse(cfg, tokExpirado)

	require.Error(t, errMalformado)
	require.Error(t, errExpirado)
	assert.Equal(t, errMalformado.Error(), errExpirado.Error(),
		"todas las fallas de Parse deben producir el mismo error opaco")
}

func TestJWT_AlgoritmoHS512(t *testing.T) {
	cfg := testCfg()
	cfg.Algorithm = "HS512"

	tok, err := pkgjwt.Generate(cfg, testUserID)
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(cfg, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.Subject)
}

func TestJWT_AlgoritmoNoSoportado_RetornaError(t *testing.T) {
	cfg := testCfg()
	cfg.Algorithm = "RS256"

	_, err := pkgjwt.Generate(cfg, testUserID)
	assert.Error(t, err, "solo se soportan algoritmos HMAC")
}

func TestJWT_SecretVacio_RetornaError(t *testing.T) {
	cfg := testCfg()
	cfg.Secret = ""

	_, err := pkgjwt.Generate(cfg, testUserID)
	assert.Error(t, err)

	_, err = pkgjwt.Parse(cfg, "lo-que-sea")
	assert.Error(t, err)
}
