package storage

import (
	"context"

	"github.com/agamariel/gomarket/internal/models"
)

// MockProductStorage - мок хранилища каталога для тестирования
type MockProductStorage struct {
	AddFunc  func(ctx context.Context, product *models.Product) error
	ListFunc func() []*models.Product
	SaveFunc func(ctx context.Context) error
}

func (m *MockProductStorage) Add(ctx context.Context, product *models.Product) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, product)
	}
	return nil
}

func (m *MockProductStorage) List() []*models.Product {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return nil
}

func (m *MockProductStorage) Save(ctx context.Context) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx)
	}
	return nil
}
