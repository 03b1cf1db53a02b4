package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// UserKind определяет тип пользователя маркетплейса.
type UserKind string

const (
	KindBuyer  UserKind = "Buyer"
	KindSeller UserKind = "Seller"
)

// User представляет пользователя системы (покупателя или продавца).
// Вместо наследования используется тег Kind: общие поля в одной структуре,
// различия в поведении — через switch по типу.
type User struct {
	ID           int64
	Kind         UserKind
	Login        string
	Email        string
	RegisterDate string
	PasswordHash string
	Balance      decimal.Decimal

	// Reviews заполняется только для покупателей.
	Reviews *ReviewLedger
}

// NewBuyer создаёт покупателя с нулевым балансом и пустой книгой отзывов.
// PasswordHash принимается уже в виде дайджеста.
func NewBuyer(id int64, login, email, registerDate, passwordHash string) *User {
	return &User{
		ID:           id,
		Kind:         KindBuyer,
		Login:        login,
		Email:        email,
		RegisterDate: registerDate,
		PasswordHash: passwordHash,
		Balance:      decimal.Zero,
		Reviews:      NewReviewLedger(),
	}
}

// NewSeller создаёт продавца с нулевым балансом.
func NewSeller(id int64, login, email, registerDate, passwordHash string) *User {
	return &User{
		ID:           id,
		Kind:         KindSeller,
		Login:        login,
		Email:        email,
		RegisterDate: registerDate,
		PasswordHash: passwordHash,
		Balance:      decimal.Zero,
	}
}

// IsBuyer сообщает, является ли пользователь покупателем.
func (u *User) IsBuyer() bool {
	return u.Kind == KindBuyer
}

// IsSeller сообщает, является ли пользователь продавцом.
func (u *User) IsSeller() bool {
	return u.Kind == KindSeller
}

// Info возвращает текстовое описание пользователя для вывода в меню.
func (u *User) Info() string {
	return fmt.Sprintf("ID: %d, Login: %s, Email: %s, Registered: %s", u.ID, u.Login, u.Email, u.RegisterDate)
}
