package auth

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// HashPassword возвращает детерминированный SHA3-256 дайджест пароля в hex-виде.
// Соль не используется: одинаковые пароли дают одинаковые дайджесты.
func HashPassword(password string) string {
	sum := sha3.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// CheckPassword сравнивает пароль с сохранённым дайджестом.
func CheckPassword(password, digest string) bool {
	return HashPassword(password) == digest
}
