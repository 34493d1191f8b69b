package services

import (
	"context"
	"errors"

	"github.com/magabrotheeeer/mooring-directory/internal/lib/jwt"
	"github.com/magabrotheeeer/mooring-directory/internal/lib/password"
	"github.com/magabrotheeeer/mooring-directory/internal/models"
	"github.com/magabrotheeeer/mooring-directory/internal/storage"
)

// Ошибки аутентификации.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService отвечает за регистрацию, авторизацию и валидацию JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля,
// дефолтной ролью "user" и бесплатным статусом подписки.
func (s *AuthService) Register(ctx context.Context, req models.DummyRegister) (string, error) {
	if _, err := s.users.GetUserByEmail(ctx, req.Email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		return "", err
	}

	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return "", err
	}
	user := models.User{
		Email:              req.Email,
		Name:               req.Name,
		PasswordHash:       hashed,
		Role:               models.RoleUser,
		SubscriptionStatus: models.SubscriptionFree,
	}
	return s.users.RegisterUser(ctx, user)
}

// Login проверяет пароль пользователя и генерирует JWT.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (token, role string, err error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", "", ErrInvalidCredentials
		}
		return "", "", err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", "", ErrInvalidCredentials
	}
	token, err = s.jwtMaker.GenerateToken(user.Email, user.Role, user.UID)
	if err != nil {
		return "", "", err
	}
	return token, user.Role, nil
}

// ValidateToken проверяет JWT и возвращает данные пользователя из токена.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*jwt.CustomClaims, error) {
	return s.jwtMaker.ParseToken(token)
}

// Me возвращает свежую запись пользователя по его UID.
func (s *AuthService) Me(ctx context.Context, userUID string) (*models.UserInfo, error) {
	user, err := s.users.GetUserByUID(ctx, userUID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	info := user.Info()
	return &info, nil
}
