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

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// FileUserStorage реализует хранилище пользователей поверх текстового
// snapshot-файла: полный набор записей держится в памяти, каждая мутация
// полностью перезаписывает файл.
type FileUserStorage struct {
	mu     sync.RWMutex
	path   string
	users  []*models.User
	nextID int64
	logger *zap.Logger
}

// OpenFileUserStorage открывает snapshot-файл и загружает пользователей.
// Отсутствующий файл трактуется как пустой набор. Счётчик id вычисляется
// один раз как max(id)+1 по загруженным записям.
func OpenFileUserStorage(path string, logger *zap.Logger) (*FileUserStorage, error) {
	s := &FileUserStorage{
		path:   path,
		nextID: 1,
		logger: logger,
	}
	if err := s.load(); err != nil {
		return nil, fmt.Errorf("failed to load users file: %w", err)
	}
	return s, nil
}

// load читает файл построчно. Разбор толерантный: испорченные строки
// пропускаются, оставшиеся корректные записи загружаются.
func (s *FileUserStorage) load() error {
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
		user, ok := parseUser(line)
		if !ok {
			s.logger.Debug("skipping malformed user record", zap.String("line", line))
			continue
		}
		s.users = append(s.users, user)
		if user.ID >= s.nextID {
			s.nextID = user.ID + 1
		}
	}

	s.logger.Info("users loaded", zap.Int("count", len(s.users)), zap.String("path", s.path))
	return nil
}

// Add добавляет пользователя и перезаписывает snapshot-файл.
func (s *FileUserStorage) Add(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, user)
	return s.saveLocked()
}

// GetByLogin ищет пользователя по логину. Поиск линейный, возвращается
// первое совпадение: уникальность логинов не контролируется.
func (s *FileUserStorage) GetByLogin(login string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, user := range s.users {
		if user.Login == login {
			return user, nil
		}
	}
	return nil, ErrUserNotFound
}

// List возвращает всех пользователей в порядке добавления.
func (s *FileUserStorage) List() []*models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.User, len(s.users))
	copy(out, s.users)
	return out
}

// NextID выдаёт следующий свободный идентификатор.
func (s *FileUserStorage) NextID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	return id
}

// Save полностью перезаписывает snapshot-файл текущим набором пользователей.
func (s *FileUserStorage) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

func (s *FileUserStorage) saveLocked() error {
	var b strings.Builder
	for _, user := range s.users {
		b.WriteString(encodeUser(user))
		b.WriteByte('\n')
	}

	if err := os.WriteFile(s.path, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("failed to write users file: %w", err)
	}
	return nil
}
