package models

import "time"

// TravelLog представляет запись о прошедшем путешествии
type TravelLog struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	UserID      uint      `json:"user_id" gorm:"not null;index"` // Внешний ключ для связи с User
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	PostDate    time.Time `json:"post_date" gorm:"autoCreateTime"` // Время создания записи, не обновляется
	Tags        []string  `json:"tags" gorm:"-"`                   // Заполняется из travel_log_tags
	User        User      `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TravelLogTag представляет тег записи о путешествии
type TravelLogTag struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	TravelLogID uint      `json:"travel_log_id" gorm:"not null;index"`
	Tag         string    `json:"tag" gorm:"not null"`
	TravelLog   TravelLog `json:"-" gorm:"foreignKey:TravelLogID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
