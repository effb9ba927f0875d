package dto

// RegisterUserDTO — это структура для данных, которые нужно передать при регистрации
type RegisterUserDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Address  string `json:"address"`
}
