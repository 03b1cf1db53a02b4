package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Product представляет товар в каталоге.
// Seller — невладеющая ссылка на существующего продавца из хранилища пользователей.
type Product struct {
	Name        string
	Price       decimal.Decimal
	Description string
	Seller      *User
}

func (p *Product) String() string {
	return fmt.Sprintf("%s - %s (%s)", p.Name, p.Description, p.Price.String())
}
