package utils

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenTTL — срок действия токена
const TokenTTL = 2 * time.Hour

// jwtSecret возвращает секретный ключ из окружения (загружается через .env)
func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateJWT — генерирует JWT токен для пользователя
func GenerateJWT(userID uint) (string, error) {
	expirationTime := time.Now().Add(TokenTTL)

	// Создаем claims токена
	claims := &jwt.RegisteredClaims{
		Subject:   strconv.Itoa(int(userID)), // Преобразуем userID в строку
		ExpiresAt: jwt.NewNumericDate(expirationTime),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// Подписываем токен секретным ключом
	return token.SignedString(jwtSecret())
}

// ValidateToken — проверяет подпись и срок действия токена, возвращает ID пользователя
func ValidateToken(tokenString string) (uint, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil {
		// Сюда попадает и истекший токен — jwt проверяет exp сам
		return 0, err
	}
	if !token.Valid {
		return 0, errors.New("invalid token")
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, errors.New("invalid token subject")
	}

	return uint(userID), nil
}
