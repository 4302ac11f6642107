package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invorya/asistencia-api/internal/application/dto"
)

func TestValidFullname_Acepta(t *testing.T) {
	for _, name := range []string{
		"Ivanov",
		"ivanov",
		"Иванов",
		"петров",
		"Perez-Gomez",
		"-",
	} {
		_, ok := dto.ValidFullname(name)
		assert.True(t, ok, "debe aceptar %q", name)
	}
}

func TestValidFullname_Rechaza(t *testing.T) {
	for _, name := range []string{
		"",
		"Juan Perez", // espacios
		"user123",    // dígitos
		"o'connor",   // apóstrofe
		"nombre!",
		"名前", // fuera de los alfabetos permitidos
	} {
		_, ok := dto.ValidFullname(name)
		assert.False(t, ok, "debe rechazar %q", name)
	}
}

// Los clientes móviles a veces envían diacríticos descompuestos (NFD);
// la validación normaliza a NFC antes de comparar y devuelve la forma normalizada.
func TestValidFullname_NormalizaNFC(t *testing.T) {
	// "й" como base U+0438 + combinante U+0306 (forma NFD)
	nfd := "Иванов-й"
	nfc := "Иванов-й"

	got, ok := dto.ValidFullname(nfd)
	assert.True(t, ok, "la forma descompuesta debe validar tras normalizar")
	assert.Equal(t, nfc, got, "debe devolverse la forma NFC")
}

func TestPageRequest_Defaults(t *testing.T) {
	p := dto.PageRequest{}
	p.DefaultPage()
	assert.Equal(t, 20, p.Limit, "límite por defecto")
	assert.Equal(t, 0, p.Offset)

	p = dto.PageRequest{Limit: 1000, Offset: -5}
	p.DefaultPage()
	assert.Equal(t, 100, p.Limit, "el límite se capa en 100")
	assert.Equal(t, 0, p.Offset, "offset negativo se normaliza a 0")
}
