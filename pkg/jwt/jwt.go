package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/invorya/asistencia-api/pkg/config"
)

// Claims incluye los claims estándar JWT. El sujeto (sub) es el UUID del usuario;
// el estado vivo (roles, is_active) nunca viaja en el token: se relee de la DB
// en cada petición para que cambios de rol o desactivación apliquen de inmediato.
type Claims struct {
	jwt.RegisteredClaims
}

// Generate genera un token de acceso firmado cuyo sujeto es el ID estable del usuario.
// El algoritmo HMAC se toma de la configuración (HS256 por defecto).
func Generate(cfg config.JWTConfig, subject string) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	method, err := signingMethod(cfg.Algorithm)
	if err != nil {
		return "", err
	}
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(cfg.ExpMinutes) * time.Minute)),
		},
	}
	token := jwt.NewWithClaims(method, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// Parse valida firma y expiración y devuelve los claims.
// Retorna un único error opaco para token malformado, firma incorrecta o expirado:
// el caller no debe poder distinguir la causa desde la superficie de respuesta.
func Parse(cfg config.JWTConfig, tokenString string) (*Claims, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("jwt: token inválido")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("jwt: token inválido")
	}
	return claims, nil
}

func signingMethod(alg string) (jwt.SigningMethod, error) {
	switch alg {
	case "", "HS256":
		return jwt.SigningMethodHS256, nil
	case "HS384":
		return jwt.SigningMethodHS384, nil
	case "HS512":
		return jwt.SigningMethodHS512, nil
	default:
		return nil, fmt.Errorf("jwt: algoritmo no soportado: %s", alg)
	}
}
