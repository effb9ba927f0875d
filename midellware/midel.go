package middleware

import (
	"net/http"
	"strings"

	"github.com/eoinharts/travel-client-app/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware — middleware для проверки JWT токена
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Получаем токен из заголовков
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "No token provided."})
			c.Abort()
			return
		}

		// Токен в заголовке должен быть в формате: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Token error."})
			c.Abort()
			return
		}

		// Проверяем токен с помощью утилиты
		userID, err := utils.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token."})
			c.Abort()
			return
		}

		// Кладем ID пользователя в контекст запроса.
		// Пользователя в базе повторно не проверяем: валидный токен
		// принимается до истечения срока действия.
		c.Set("userID", userID)
		c.Next()
	}
}
