package models

// User представляет сущность пользователя
type User struct {
	ID       uint   `json:"id" gorm:"primary_key"`
	Username string `json:"username" gorm:"unique;not null"`
	Password string `json:"-" gorm:"not null"` // Храним только хэш, в JSON не отдаем
	Email    string `json:"email"`
	Address  string `json:"address"`
}
