package dto

// TravelLogDTO используется при создании и обновлении записи о путешествии.
// Набор тегов при обновлении полностью заменяет прежний.
type TravelLogDTO struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Tags        []string `json:"tags"`
}
