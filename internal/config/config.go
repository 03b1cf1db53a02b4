package config

import (
	"flag"
	"os"
)

// Config содержит конфигурацию приложения.
type Config struct {
	UsersFile    string
	ProductsFile string
	SellerCode   string
}

// Load загружает конфигурацию из флагов командной строки и переменных окружения.
// Приоритет: переменные окружения > флаги > значения по умолчанию.
func Load() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.UsersFile, "u", "users.txt", "путь к snapshot-файлу пользователей")
	flag.StringVar(&cfg.ProductsFile, "p", "products.txt", "путь к snapshot-файлу каталога")
	flag.StringVar(&cfg.SellerCode, "c", "admin", "код авторизации для регистрации продавца")
	flag.Parse()

	if envUsers := os.Getenv("USERS_FILE"); envUsers != "" {
		cfg.UsersFile = envUsers
	}
	if envProducts := os.Getenv("PRODUCTS_FILE"); envProducts != "" {
		cfg.ProductsFile = envProducts
	}
	if envCode := os.Getenv("SELLER_CODE"); envCode != "" {
		cfg.SellerCode = envCode
	}

	return cfg
}
