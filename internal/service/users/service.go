package users

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Service in-process сервис пользователей и сессионного доступа.
// Хранит учетные записи и историю бронирований каждого пользователя.
// Движок не владеет этим списком: ядро лишь просит добавить id после
// успешного резервирования и читает список для отображения истории.
type Service struct {
	mu     sync.Mutex
	users  []*domain.User
	nextID int

	logger Logger
}

// NewService создает пустой сервис пользователей
func NewService(logger Logger) *Service {
	return &Service{
		users:  make([]*domain.User, 0, 16),
		nextID: 1,
		logger: logger,
	}
}

// Register регистрирует пользователя с указанной ролью.
// Имя должно быть непустым и уникальным; пароль хэшируется bcrypt.
func (s *Service) Register(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		s.logger.Warn("Register: empty username")
		return nil, ErrInvalidUsername
	}
	if !domain.IsValidRole(role) {
		s.logger.Warn("Register: invalid role %q for user=%s", role, username)
		return nil, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Register: failed to hash password for user=%s: %v", username, err)
		return nil, fmt.Errorf("%w: Register - hash password: %v", ErrInternal, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.findLocked(username) != nil {
		s.logger.Warn("Register: username %s already taken", username)
		return nil, ErrUserExists
	}

	user := &domain.User{
		ID:           s.nextID,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		BookingIDs:   make([]int, 0, 4),
	}
	s.nextID++
	s.users = append(s.users, user)

	s.logger.Info("Register: user %s registered with id=%d, role=%s", username, user.ID, role)
	return cloneUser(user), nil
}

// Login проверяет пару логин/пароль и возвращает пользователя
func (s *Service) Login(ctx context.Context, username, password string) (*domain.User, error) {
	s.mu.Lock()
	user := s.findLocked(username)
	s.mu.Unlock()

	if user == nil {
		s.logger.Warn("Login: user %s not found", username)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		s.logger.Warn("Login: wrong password for user=%s", username)
		return nil, ErrInvalidCredentials
	}

	s.logger.Info("Login: user %s logged in", username)
	return cloneUser(user), nil
}

// FindByUsername возвращает пользователя по имени
func (s *Service) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findLocked(username)
	if user == nil {
		return nil, ErrUserNotFound
	}
	return cloneUser(user), nil
}

// AppendBookingID добавляет id бронирования в историю пользователя
func (s *Service) AppendBookingID(ctx context.Context, username string, bookingID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findLocked(username)
	if user == nil {
		s.logger.Warn("AppendBookingID: user %s not found", username)
		return ErrUserNotFound
	}

	user.BookingIDs = append(user.BookingIDs, bookingID)
	return nil
}

// BookingIDs возвращает историю бронирований пользователя в порядке создания
func (s *Service) BookingIDs(ctx context.Context, username string) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := s.findLocked(username)
	if user == nil {
		return nil, ErrUserNotFound
	}

	out := make([]int, len(user.BookingIDs))
	copy(out, user.BookingIDs)
	return out, nil
}

// EnsureDefaultAdmin создает администратора admin/admin, если его нет
func (s *Service) EnsureDefaultAdmin(ctx context.Context) error {
	if _, err := s.FindByUsername(ctx, "admin"); err == nil {
		return nil
	}

	if _, err := s.Register(ctx, "admin", "admin", domain.RoleAdmin); err != nil {
		return fmt.Errorf("%w: EnsureDefaultAdmin: %v", ErrInternal, err)
	}

	s.logger.Info("EnsureDefaultAdmin: default admin account created")
	return nil
}

// findLocked линейный поиск по имени. Вызывается под мьютексом.
func (s *Service) findLocked(username string) *domain.User {
	for _, u := range s.users {
		if u.Username == username {
			return u
		}
	}
	return nil
}

func cloneUser(u *domain.User) *domain.User {
	cp := *u
	cp.BookingIDs = make([]int, len(u.BookingIDs))
	copy(cp.BookingIDs, u.BookingIDs)
	return &cp
}
