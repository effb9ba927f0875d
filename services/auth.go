package services

import (
	"errors"

	"github.com/eoinharts/travel-client-app/dto"
	"github.com/eoinharts/travel-client-app/models"
	"github.com/eoinharts/travel-client-app/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ErrInvalidCredentials — единый ответ и на неизвестный username, и на
// неверный пароль, чтобы нельзя было перебором узнать занятые имена
var ErrInvalidCredentials = errors.New("Invalid username or password")

// AuthService — сервис для авторизации пользователей
type AuthService struct {
	DB *gorm.DB
}

// AuthenticateUser — проверяет данные пользователя и генерирует JWT токен
func (service *AuthService) AuthenticateUser(loginDTO dto.LoginDTO) (string, *models.User, error) {
	var user models.User

	// Ищем пользователя по username
	if err := service.DB.Where("username = ?", loginDTO.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	// Проверяем пароль
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(loginDTO.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	// Генерация JWT токена с помощью утилиты
	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}
