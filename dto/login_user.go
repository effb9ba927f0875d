package dto

// LoginDTO — структура для данных авторизации
type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
