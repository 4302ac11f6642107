package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/asistencia-api/pkg/password"
)

func TestPassword_HashYVerify(t *testing.T) {
	hash, err := password.Hash("secreto123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, password.Verify("secreto123", hash), "el password correcto debe verificar")
	assert.False(t, password.Verify("secreto124", hash), "un password incorrecto no debe verificar")
}

func TestPassword_HashNuncaEsElPlano(t *testing.T) {
	hash, err := password.Hash("secreto123")
	require.NoError(t, err)
	assert.NotContains(t, hash, "secreto123")
	assert.True(t, strings.HasPrefix(hash, "$2"), "debe ser un hash bcrypt")
}

// Cada hash lleva su propio salt: dos hashes del mismo password difieren
// pero ambos verifican.
func TestPassword_SaltPorHash(t *testing.T) {
	h1, err := password.Hash("mismo-password")
	require.NoError(t, err)
	h2, err := password.Hash("mismo-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, password.Verify("mismo-password", h1))
	assert.True(t, password.Verify("mismo-password", h2))
}

func TestPassword_VerifyContraHashBasura(t *testing.T) {
	assert.False(t, password.Verify("cualquiera", "no-es-un-hash-bcrypt"))
	assert.False(t, password.Verify("cualquiera", ""))
}
