package services

import (
	"github.com/eoinharts/travel-client-app/dto"
	"github.com/eoinharts/travel-client-app/models"

	"gorm.io/gorm"
)

// JourneyPlanService — сервис для работы с планами путешествий
type JourneyPlanService struct {
	DB *gorm.DB
}

func NewJourneyPlanService(db *gorm.DB) *JourneyPlanService {
	return &JourneyPlanService{DB: db}
}

// CreateJourneyPlan создает план вместе с локациями и активностями
// в одной транзакции и возвращает ID нового плана
func (s *JourneyPlanService) CreateJourneyPlan(userID uint, input dto.JourneyPlanDTO) (uint, error) {
	var planID uint

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		plan := models.JourneyPlan{
			UserID:      userID,
			Name:        input.Name,
			Description: input.Description,
			StartDate:   input.StartDate,
			EndDate:     input.EndDate,
		}
		if err := tx.Create(&plan).Error; err != nil {
			return err
		}

		for _, location := range input.Locations {
			if err := tx.Create(&models.JourneyPlanLocation{JourneyPlanID: plan.ID, Location: location}).Error; err != nil {
				return err
			}
		}
		for _, activity := range input.Activities {
			if err := tx.Create(&models.JourneyPlanActivity{JourneyPlanID: plan.ID, Activity: activity}).Error; err != nil {
				return err
			}
		}

		planID = plan.ID
		return nil
	})
	if err != nil {
		return 0, err
	}

	return planID, nil
}

// GetJourneyPlansByUserID возвращает все планы пользователя
// вместе с локациями и активностями
func (s *JourneyPlanService) GetJourneyPlansByUserID(userID uint) ([]models.JourneyPlan, error) {
	var plans []models.JourneyPlan

	if err := s.DB.Where("user_id = ?", userID).Find(&plans).Error; err != nil {
		return nil, err
	}

	for i := range plans {
		if err := s.loadChildren(s.DB, &plans[i]); err != nil {
			return nil, err
		}
	}

	return plans, nil
}

// UpdateJourneyPlan обновляет план и полностью заменяет оба набора
// дочерних записей. Чужой или несуществующий план откатывает транзакцию.
func (s *JourneyPlanService) UpdateJourneyPlan(userID, planID uint, input dto.JourneyPlanDTO) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.JourneyPlan{}).
			Where("id = ? AND user_id = ?", planID, userID).
			Updates(map[string]interface{}{
				"journey_plan_name": input.Name,
				"start_date":        input.StartDate,
				"end_date":          input.EndDate,
				"description":       input.Description,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		// Полная замена локаций
		if err := tx.Where("journey_plan_id = ?", planID).Delete(&models.JourneyPlanLocation{}).Error; err != nil {
			return err
		}
		for _, location := range input.Locations {
			if err := tx.Create(&models.JourneyPlanLocation{JourneyPlanID: planID, Location: location}).Error; err != nil {
				return err
			}
		}

		// Полная замена активностей
		if err := tx.Where("journey_plan_id = ?", planID).Delete(&models.JourneyPlanActivity{}).Error; err != nil {
			return err
		}
		for _, activity := range input.Activities {
			if err := tx.Create(&models.JourneyPlanActivity{JourneyPlanID: planID, Activity: activity}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// DeleteJourneyPlan удаляет план пользователя по ID.
// Локации и активности удаляются каскадом на стороне базы.
func (s *JourneyPlanService) DeleteJourneyPlan(userID, planID uint) error {
	res := s.DB.Where("id = ? AND user_id = ?", planID, userID).Delete(&models.JourneyPlan{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// loadChildren заполняет Locations и Activities плана из дочерних таблиц
func (s *JourneyPlanService) loadChildren(db *gorm.DB, plan *models.JourneyPlan) error {
	locations := []string{}
	if err := db.Model(&models.JourneyPlanLocation{}).
		Where("journey_plan_id = ?", plan.ID).
		Pluck("location", &locations).Error; err != nil {
		return err
	}
	plan.Locations = locations

	activities := []string{}
	if err := db.Model(&models.JourneyPlanActivity{}).
		Where("journey_plan_id = ?", plan.ID).
		Pluck("activity", &activities).Error; err != nil {
		return err
	}
	plan.Activities = activities
	return nil
}
