package services

import (
	"context"

	"github.com/agamariel/gomarket/internal/models"
)

// UserStorage определяет интерфейс для работы с хранилищем пользователей.
type UserStorage interface {
	Add(ctx context.Context, user *models.User) error
	GetByLogin(login string) (*models.User, error)
	List() []*models.User
	NextID() int64
	Save(ctx context.Context) error
}

// ProductStorage определяет интерфейс для работы с каталогом товаров.
type ProductStorage interface {
	Add(ctx context.Context, product *models.Product) error
	List() []*models.Product
	Save(ctx context.Context) error
}
