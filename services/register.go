package services

import (
	"errors"
	"regexp"

	"github.com/eoinharts/travel-client-app/dto"
	"github.com/eoinharts/travel-client-app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Ошибки валидации при регистрации; текст уходит клиенту как есть
var (
	ErrMissingFields = errors.New("Missing required fields")
	ErrShortPassword = errors.New("Password must be at least 8 characters")
	ErrInvalidEmail  = errors.New("Invalid email address")
)

// Базовая проверка формата email: локальная часть, @, домен, TLD от 2 символов
var emailPattern = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+\w{2,}$`)

// IsValidationError сообщает, относится ли ошибка к валидации входных данных
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingFields) ||
		errors.Is(err, ErrShortPassword) ||
		errors.Is(err, ErrInvalidEmail)
}

// RegistService — сервис для регистрации пользователей
type RegistService struct {
	DB *gorm.DB
}

// RegisterUser регистрирует нового пользователя
func (service *RegistService) RegisterUser(userDTO dto.RegisterUserDTO) (*models.User, error) {
	if userDTO.Username == "" || userDTO.Password == "" || userDTO.Email == "" {
		return nil, ErrMissingFields
	}
	if len(userDTO.Password) < 8 {
		return nil, ErrShortPassword
	}
	if !emailPattern.MatchString(userDTO.Email) {
		return nil, ErrInvalidEmail
	}

	// Хэшируем пароль перед сохранением
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(userDTO.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// Создаем нового пользователя с хэшированным паролем
	newUser := models.User{
		Username: userDTO.Username,
		Password: string(hashedPassword), // Храним хэш пароля
		Email:    userDTO.Email,
		Address:  userDTO.Address,
	}

	// Сохраняем нового пользователя в базу данных.
	// Занятый username всплывет отсюда нарушением уникальности.
	if err := service.DB.Create(&newUser).Error; err != nil {
		return nil, err
	}
	return &newUser, nil
}
