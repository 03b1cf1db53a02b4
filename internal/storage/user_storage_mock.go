package storage

import (
	"context"

	"github.com/agamariel/gomarket/internal/models"
)

// MockUserStorage - мок для тестирования (экспортируемый для использования в других пакетах)
type MockUserStorage struct {
	AddFunc        func(ctx context.Context, user *models.User) error
	GetByLoginFunc func(login string) (*models.User, error)
	ListFunc       func() []*models.User
	NextIDFunc     func() int64
	SaveFunc       func(ctx context.Context) error
}

func (m *MockUserStorage) Add(ctx context.Context, user *models.User) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, user)
	}
	return nil
}

func (m *MockUserStorage) GetByLogin(login string) (*models.User, error) {
	if m.GetByLoginFunc != nil {
		return m.GetByLoginFunc(login)
	}
	return nil, ErrUserNotFound
}

func (m *MockUserStorage) List() []*models.User {
	if m.ListFunc != nil {
		return m.ListFunc()
	}
	return nil
}

func (m *MockUserStorage) NextID() int64 {
	if m.NextIDFunc != nil {
		return m.NextIDFunc()
	}
	return 1
}

func (m *MockUserStorage) Save(ctx context.Context) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx)
	}
	return nil
}
