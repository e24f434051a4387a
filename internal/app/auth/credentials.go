package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword gera um hash bcrypt salgado da senha em texto claro.
// Chamadas repetidas com a mesma senha produzem hashes diferentes.
func HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// VerifyPassword compara a senha em texto claro com o hash armazenado.
// Hash malformado conta como não-correspondência, nunca como pânico.
func VerifyPassword(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
