package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/agamariel/gomarket/internal/models"
	"go.uber.org/zap"
)

// UserResolver разрешает логин продавца при загрузке каталога.
type UserResolver interface {
	GetByLogin(login string) (*models.User, error)
}

// FileProductStorage реализует хранилище каталога поверх текстового
// snapshot-файла. Товары держатся в памяти в порядке добавления.
type FileProductStorage struct {
	mu       sync.RWMutex
	path     string
	products []*models.Product
	logger   *zap.Logger
}

// OpenFileProductStorage открывает snapshot-файл каталога и загружает товары.
// Товары, чей продавец не разрешается в существующего пользователя типа
// Seller, отбрасываются: это фильтр целостности, а не ошибка.
func OpenFileProductStorage(path string, sellers UserResolver, logger *zap.Logger) (*FileProductStorage, error) {
	s := &FileProductStorage{
		path:   path,
		logger: logger,
	}
	if err := s.load(sellers); err != nil {
		return nil, fmt.Errorf("failed to load products file: %w", err)
	}
	return s, nil
}

func (s *FileProductStorage) load(sellers UserResolver) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rec, ok := parseProduct(line)
		if !ok {
			s.logger.Debug("skipping malformed product record", zap.String("line", line))
			continue
		}
		seller, err := sellers.GetByLogin(rec.sellerLogin)
		if err != nil || !seller.IsSeller() {
			s.logger.Debug("dropping product with unresolved seller",
				zap.String("product", rec.name),
				zap.String("seller_login", rec.sellerLogin))
			continue
		}
		s.products = append(s.products, &models.Product{
			Name:        rec.name,
			Price:       rec.price,
			Description: rec.description,
			Seller:      seller,
		})
	}

	s.logger.Info("products loaded", zap.Int("count", len(s.products)), zap.String("path", s.path))
	return nil
}

// Add добавляет товар и перезаписывает snapshot-файл.
func (s *FileProductStorage) Add(ctx context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = append(s.products, product)
	return s.saveLocked()
}

// List возвращает товары в порядке добавления.
func (s *FileProductStorage) List() []*models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Save полностью перезаписывает snapshot-файл текущим каталогом.
func (s *FileProductStorage) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *FileProductStorage) saveLocked() error {
	var b strings.Builder
	for _, product := range s.products {
		b.WriteString(encodeProduct(product))
		b.WriteByte('\n')
	}

	if err := os.WriteFile(s.path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write products file: %w", err)
	}
	return nil
}
