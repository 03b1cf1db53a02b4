package auth

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{
			name:     "valid password",
			password: "password123",
		},
		{
			name:     "empty password",
			password: "",
		},
		{
			name:     "long password",
			password: strings.Repeat("a", 100),
		},
		{
			name:     "special characters",
			password: "p@ssw0rd!#$%",
		},
		{
			name:     "unicode password",
			password: "пароль123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash := HashPassword(tt.password)

			// Дайджест SHA3-256 в hex — всегда 64 символа
			if len(hash) != 64 {
				t.Errorf("HashPassword() returned hash of length %d, want 64", len(hash))
			}
			if hash == tt.password {
				t.Error("HashPassword() returned password as hash")
			}
			if strings.ToLower(hash) != hash {
				t.Errorf("HashPassword() hash is not lowercase hex: %s", hash)
			}
		})
	}
}

func TestHashPasswordDeterministic(t *testing.T) {
	password := "test123"

	hash1 := HashPassword(password)
	hash2 := HashPassword(password)

	// Соли нет: одинаковые пароли обязаны давать одинаковые дайджесты
	if hash1 != hash2 {
		t.Errorf("HashPassword() produced different hashes for same password: %s != %s", hash1, hash2)
	}

	if HashPassword("other") == hash1 {
		t.Error("HashPassword() produced identical hashes for different passwords")
	}
}

func TestCheckPassword(t *testing.T) {
	correctPassword := "correct123"
	hash := HashPassword(correctPassword)

	tests := []struct {
		name     string
		password string
		digest   string
		want     bool
	}{
		{
			name:     "correct password",
			password: correctPassword,
			digest:   hash,
			want:     true,
		},
		{
			name:     "wrong password",
			password: "wrong123",
			digest:   hash,
			want:     false,
		},
		{
			name:     "empty password",
			password: "",
			digest:   hash,
			want:     false,
		},
		{
			name:     "similar password",
			password: "correct124",
			digest:   hash,
			want:     false,
		},
		{
			name:     "case sensitive",
			password: "Correct123",
			digest:   hash,
			want:     false,
		},
		{
			name:     "invalid digest",
			password: correctPassword,
			digest:   "invalid-digest",
			want:     false,
		},
		{
			name:     "empty digest",
			password: correctPassword,
			digest:   "",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckPassword(tt.password, tt.digest)
			if got != tt.want {
				t.Errorf("CheckPassword() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckPasswordUnicode(t *testing.T) {
	unicodePassword := "пароль_密码_🔐"
	hash := HashPassword(unicodePassword)
	if !CheckPassword(unicodePassword, hash) {
		t.Error("CheckPassword() failed for unicode password")
	}
}

func BenchmarkHashPassword(b *testing.B) {
	password := "benchmark123"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = HashPassword(password)
	}
}
