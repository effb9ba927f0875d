package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/eoinharts/travel-client-app/dto"
	"github.com/eoinharts/travel-client-app/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// TravelLogController — контроллер для обработки запросов на записи о путешествиях
type TravelLogController struct {
	Service *services.TravelLogService
}

// CreateTravelLog godoc
// @Summary      Добавить запись о путешествии
// @Description  Создает запись вместе с тегами и возвращает её целиком
// @Tags         travellogs
// @Accept       json
// @Produce      json
// @Security BearerAuth
// @Param        input  body      dto.TravelLogDTO  true  "Данные записи"
// @Success      201    {object}  models.TravelLog
// @Failure      400    {object}  MessageResponse
// @Failure      401    {object}  MessageResponse
// @Failure      500    {object}  MessageResponse
// @Router       /travellogs [post]
func (c *TravelLogController) CreateTravelLog(ctx *gin.Context) {
	var input dto.TravelLogDTO

	// Проверяем и парсим тело запроса
	if err := ctx.ShouldBindBodyWith(&input, binding.JSON); err != nil {
		ctx.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		return
	}

	userID := ctx.GetUint("userID") // userID кладет в контекст middleware

	travelLog, err := c.Service.CreateTravelLog(userID, input)
	if err != nil {
		log.Println("[TravelLog] create error:", err)
		ctx.JSON(http.StatusInternalServerError, MessageResponse{Message: "Database error"})
		return
	}

	ctx.JSON(http.StatusCreated, travelLog)
}

// GetTravelLogs godoc
// @Summary      Получить записи о путешествиях
// @Description  Возвращает все записи пользователя вместе с тегами
// @Tags         travellogs
// @Produce      json
// @Security BearerAuth
// @Success      200  {array}   models.TravelLog
// @Failure      401  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /travellogs [get]
func (c *TravelLogController) GetTravelLogs(ctx *gin.Context) {
	userID := ctx.GetUint("userID")

	travelLogs, err := c.Service.GetTravelLogsByUserID(userID)
	if err != nil {
		log.Println("[TravelLog] list error:", err)
		ctx.JSON(http.StatusInternalServerError, MessageResponse{Message: "Database error"})
		return
	}

	ctx.JSON(http.StatusOK, travelLogs)
}

// UpdateTravelLog godoc
// @Summary      Обновить запись о путешествии
// @Description  Обновляет запись и полностью заменяет набор её тегов
// @Tags         travellogs
// @Accept       json
// @Produce      json
// @Security BearerAuth
// @Param        id     path      int               true  "ID записи"
// @Param        input  body      dto.TravelLogDTO  true  "Данные записи"
// @Success      200    {object}  MessageResponse
// @Failure      400    {object}  MessageResponse
// @Failure      401    {object}  MessageResponse
// @Failure      404    {object}  MessageResponse
// @Failure      500    {object}  MessageResponse
// @Router       /travellogs/{id} [put]
func (c *TravelLogController) UpdateTravelLog(ctx *gin.Context) {
	var input dto.TravelLogDTO

	if err := ctx.ShouldBindBodyWith(&input, binding.JSON); err != nil {
		ctx.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		return
	}

	userID := ctx.GetUint("userID")
	travelLogID := parseUint(ctx.Param("id"))

	if err := c.Service.UpdateTravelLog(userID, travelLogID, input); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, MessageResponse{Message: "Not found or not yours"})
			return
		}
		log.Println("[TravelLog] update error:", err)
		ctx.JSON(http.StatusInternalServerError, MessageResponse{Message: "Database error"})
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "Travel log updated"})
}

// DeleteTravelLog godoc
// @Summary      Удалить запись о путешествии
// @Description  Удаляет запись пользователя по ID, теги удаляются каскадом
// @Tags         travellogs
// @Produce      json
// @Security BearerAuth
// @Param        id   path      int  true  "ID записи"
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /travellogs/{id} [delete]
func (c *TravelLogController) DeleteTravelLog(ctx *gin.Context) {
	userID := ctx.GetUint("userID")
	travelLogID := parseUint(ctx.Param("id"))

	if err := c.Service.DeleteTravelLog(userID, travelLogID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, MessageResponse{Message: "Not found or not yours"})
			return
		}
		log.Println("[TravelLog] delete error:", err)
		ctx.JSON(http.StatusInternalServerError, MessageResponse{Message: "Database error"})
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "Travel log deleted"})
}

func parseUint(value string) uint {
	// Преобразование строки в uint с обработкой ошибок
	var parsed uint
	_, err := fmt.Sscanf(value, "%d", &parsed)
	if err != nil {
		return 0
	}
	return parsed
}
