package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/agamariel/gomarket/internal/auth"
	"github.com/agamariel/gomarket/internal/models"
	"github.com/agamariel/gomarket/internal/storage"
	"go.uber.org/zap"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyCredentials   = errors.New("login and password are required")
	ErrUnknownUserKind    = errors.New("unknown user kind")
)

// RegisterDraft содержит данные для регистрации нового пользователя.
// Дату регистрации и проверку кода авторизации продавца выполняет
// вызывающая сторона.
type RegisterDraft struct {
	Kind         models.UserKind
	Login        string
	Email        string
	Password     string
	RegisterDate string
}

// UserService определяет интерфейс для работы с пользователями.
type UserService interface {
	Register(ctx context.Context, draft RegisterDraft) (*models.User, error)
	Authenticate(ctx context.Context, login, password string) (*models.User, error)
	FindByLogin(ctx context.Context, login string) (*models.User, error)
}

// UserServiceImpl реализует UserService.
type UserServiceImpl struct {
	userStorage UserStorage
	logger      *zap.Logger
}

// NewUserService создаёт новый экземпляр UserService.
func NewUserService(userStorage UserStorage, logger *zap.Logger) *UserServiceImpl {
	return &UserServiceImpl{
		userStorage: userStorage,
		logger:      logger,
	}
}

// Register регистрирует нового пользователя: выдаёт следующий id, хеширует
// пароль и сохраняет запись со сбросом snapshot-файла на диск.
func (s *UserServiceImpl) Register(ctx context.Context, draft RegisterDraft) (*models.User, error) {
	if draft.Login == "" || draft.Password == "" {
		return nil, ErrEmptyCredentials
	}

	digest := auth.HashPassword(draft.Password)
	id := s.userStorage.NextID()

	var user *models.User
	switch draft.Kind {
	case models.KindBuyer:
		user = models.NewBuyer(id, draft.Login, draft.Email, draft.RegisterDate, digest)
	case models.KindSeller:
		user = models.NewSeller(id, draft.Login, draft.Email, draft.RegisterDate, digest)
	default:
		return nil, ErrUnknownUserKind
	}

	if err := s.userStorage.Add(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered",
		zap.Int64("id", user.ID),
		zap.String("login", user.Login),
		zap.String("kind", string(user.Kind)))

	return user, nil
}

// Authenticate проверяет логин и пароль пользователя.
func (s *UserServiceImpl) Authenticate(ctx context.Context, login, password string) (*models.User, error) {
	if login == "" || password == "" {
		return nil, ErrEmptyCredentials
	}

	user, err := s.userStorage.GetByLogin(login)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// FindByLogin ищет пользователя по логину.
func (s *UserServiceImpl) FindByLogin(ctx context.Context, login string) (*models.User, error) {
	user, err := s.userStorage.GetByLogin(login)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
