package dto

// JourneyPlanDTO используется при создании и обновлении плана путешествия.
// Списки локаций и активностей при обновлении полностью заменяют прежние.
type JourneyPlanDTO struct {
	Name        string   `json:"journey_plan_name" binding:"required"`
	Locations   []string `json:"journey_plan_locations"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Activities  []string `json:"activities"`
	Description string   `json:"description"`
}
