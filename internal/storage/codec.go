package storage

import (
	"strconv"
	"strings"

	"github.com/agamariel/gomarket/internal/models"
	"github.com/shopspring/decimal"
)

// Кодек snapshot-файлов: одна запись — одна строка, поля через запятую,
// без экранирования (известное ограничение формата).
//
// Пользователь: <Buyer|Seller>,<id>,<login>,<email>,<registerDate>,<digest>
// Товар:        <name>,<price>,<description>,<sellerLogin>
//
// Баланс в запись пользователя не входит: после перезапуска балансы
// обнуляются (поведение исходного формата сохранено).

// encodeUser сериализует пользователя в строку snapshot-файла.
func encodeUser(u *models.User) string {
	return strings.Join([]string{
		string(u.Kind),
		strconv.FormatInt(u.ID, 10),
		u.Login,
		u.Email,
		u.RegisterDate,
		u.PasswordHash,
	}, ",")
}

// parseUser разбирает строку snapshot-файла. Дайджест пароля принимается
// как есть, без повторного хеширования. Короткие строки, неизвестные теги
// типа и нечисловые id отбрасываются (ok == false).
func parseUser(line string) (*models.User, bool) {
	parts := strings.Split(line, ",")
	if len(parts) < 6 {
		return nil, false
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, false
	}

	switch models.UserKind(parts[0]) {
	case models.KindBuyer:
		return models.NewBuyer(id, parts[2], parts[3], parts[4], parts[5]), true
	case models.KindSeller:
		return models.NewSeller(id, parts[2], parts[3], parts[4], parts[5]), true
	}

	return nil, false
}

// productRecord — разобранная строка каталога до разрешения ссылки на продавца.
type productRecord struct {
	name        string
	price       decimal.Decimal
	description string
	sellerLogin string
}

// encodeProduct сериализует товар в строку snapshot-файла.
func encodeProduct(p *models.Product) string {
	return strings.Join([]string{
		p.Name,
		p.Price.String(),
		p.Description,
		p.Seller.Login,
	}, ",")
}

// parseProduct разбирает строку каталога. Ссылку на продавца разрешает
// хранилище товаров при загрузке.
func parseProduct(line string) (productRecord, bool) {
	parts := strings.Split(line, ",")
	if len(parts) < 4 {
		return productRecord{}, false
	}

	price, err := decimal.NewFromString(parts[1])
	if err != nil {
		return productRecord{}, false
	}

	return productRecord{
		name:        parts[0],
		price:       price,
		description: parts[2],
		sellerLogin: parts[3],
	}, true
}
