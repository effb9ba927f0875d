package services

import (
	"errors"

	"github.com/eoinharts/travel-client-app/dto"
	"github.com/eoinharts/travel-client-app/models"

	"gorm.io/gorm"
)

// ErrNotFound возвращается, когда запись не существует или принадлежит
// другому пользователю — наружу эти случаи не различаются
var ErrNotFound = errors.New("Not found or not yours")

// TravelLogService — сервис для работы с записями о путешествиях
type TravelLogService struct {
	DB *gorm.DB
}

func NewTravelLogService(db *gorm.DB) *TravelLogService {
	return &TravelLogService{DB: db}
}

// CreateTravelLog создает запись вместе с тегами в одной транзакции
// и возвращает её уже перечитанной из базы (с post_date и тегами)
func (s *TravelLogService) CreateTravelLog(userID uint, input dto.TravelLogDTO) (*models.TravelLog, error) {
	var created models.TravelLog

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		travelLog := models.TravelLog{
			UserID:      userID,
			Title:       input.Title,
			Description: input.Description,
			StartDate:   input.StartDate,
			EndDate:     input.EndDate,
		}
		if err := tx.Create(&travelLog).Error; err != nil {
			return err
		}

		// Вставляем теги по одному, все ссылаются на новую запись
		for _, tag := range input.Tags {
			if err := tx.Create(&models.TravelLogTag{TravelLogID: travelLog.ID, Tag: tag}).Error; err != nil {
				return err
			}
		}

		// Перечитываем свежесозданную запись в той же транзакции
		if err := tx.First(&created, travelLog.ID).Error; err != nil {
			return err
		}
		return s.loadTags(tx, &created)
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// GetTravelLogsByUserID возвращает все записи пользователя вместе с тегами
func (s *TravelLogService) GetTravelLogsByUserID(userID uint) ([]models.TravelLog, error) {
	var travelLogs []models.TravelLog

	if err := s.DB.Where("user_id = ?", userID).Find(&travelLogs).Error; err != nil {
		return nil, err
	}

	for i := range travelLogs {
		if err := s.loadTags(s.DB, &travelLogs[i]); err != nil {
			return nil, err
		}
	}

	return travelLogs, nil
}

// UpdateTravelLog обновляет запись и полностью заменяет набор её тегов.
// Если запись не существует или чужая — вся транзакция откатывается.
func (s *TravelLogService) UpdateTravelLog(userID, travelLogID uint, input dto.TravelLogDTO) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		// post_date при обновлении не трогаем
		res := tx.Model(&models.TravelLog{}).
			Where("id = ? AND user_id = ?", travelLogID, userID).
			Updates(map[string]interface{}{
				"title":       input.Title,
				"description": input.Description,
				"start_date":  input.StartDate,
				"end_date":    input.EndDate,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		// Полная замена тегов: сначала удаляем все старые, потом вставляем новые
		if err := tx.Where("travel_log_id = ?", travelLogID).Delete(&models.TravelLogTag{}).Error; err != nil {
			return err
		}
		for _, tag := range input.Tags {
			if err := tx.Create(&models.TravelLogTag{TravelLogID: travelLogID, Tag: tag}).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// DeleteTravelLog удаляет запись пользователя по ID.
// Теги удаляются каскадом на стороне базы.
func (s *TravelLogService) DeleteTravelLog(userID, travelLogID uint) error {
	res := s.DB.Where("id = ? AND user_id = ?", travelLogID, userID).Delete(&models.TravelLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// loadTags заполняет Tags записи из таблицы travel_log_tags
func (s *TravelLogService) loadTags(db *gorm.DB, travelLog *models.TravelLog) error {
	tags := []string{}
	if err := db.Model(&models.TravelLogTag{}).
		Where("travel_log_id = ?", travelLog.ID).
		Pluck("tag", &tags).Error; err != nil {
		return err
	}
	travelLog.Tags = tags
	return nil
}
