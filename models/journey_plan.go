package models

// JourneyPlan представляет план будущего путешествия
type JourneyPlan struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	UserID      uint     `json:"user_id" gorm:"not null;index"` // Внешний ключ для связи с User
	Name        string   `json:"journey_plan_name" gorm:"column:journey_plan_name;not null"`
	Description string   `json:"description"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Locations   []string `json:"journey_plan_locations" gorm:"-"` // Заполняется из journey_plan_locations
	Activities  []string `json:"activities" gorm:"-"`             // Заполняется из journey_plan_activities
	User        User     `json:"-" gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// JourneyPlanLocation представляет локацию в плане путешествия
type JourneyPlanLocation struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	JourneyPlanID uint        `json:"journey_plan_id" gorm:"not null;index"`
	Location      string      `json:"location" gorm:"not null"`
	JourneyPlan   JourneyPlan `json:"-" gorm:"foreignKey:JourneyPlanID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// JourneyPlanActivity представляет активность в плане путешествия
type JourneyPlanActivity struct {
	ID            uint        `json:"id" gorm:"primaryKey"`
	JourneyPlanID uint        `json:"journey_plan_id" gorm:"not null;index"`
	Activity      string      `json:"activity" gorm:"not null"`
	JourneyPlan   JourneyPlan `json:"-" gorm:"foreignKey:JourneyPlanID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
