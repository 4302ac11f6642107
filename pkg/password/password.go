package password

import "golang.org/x/crypto/bcrypt"

// Costo bcrypt para hashing de passwords. 12 rondas resisten fuerza bruta
// a ritmo de login interactivo sin penalizar demasiado el registro.
const cost = 12

// Hash genera el hash bcrypt (con salt propio) de un password en texto plano.
func Hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Verify compara un password en texto plano contra su hash bcrypt.
// La comparación la hace la propia librería en tiempo constante.
func Verify(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
