package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/eoinharts/travel-client-app/dto"
	"github.com/eoinharts/travel-client-app/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// CreatedResponse — структура для ответа при создании плана
type CreatedResponse struct {
	Message string `json:"message"`
	ID      uint   `json:"id"`
}

// JourneyPlanController — контроллер для обработки запросов на планы путешествий
type JourneyPlanController struct {
	Service *services.JourneyPlanService
}

// CreateJourneyPlan godoc
// @Summary      Добавить план путешествия
// @Description  Создает план вместе с локациями и активностями
// @Tags         journeyplans
// @Accept       json
// @Produce      json
// @Security BearerAuth
// @Param        input  body      dto.JourneyPlanDTO  true  "Данные плана"
// @Success      201    {object}  CreatedResponse
// @Failure      400    {object}  MessageResponse
// @Failure      401    {object}  MessageResponse
// @Failure      500    {object}  MessageResponse
// @Router       /journeyplans [post]
func (c *JourneyPlanController) CreateJourneyPlan(ctx *gin.Context) {
	var input dto.JourneyPlanDTO

	// Проверяем и парсим тело запроса
	if err := ctx.ShouldBindBodyWith(&input, binding.JSON); err != nil {
		ctx.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		return
	}

	userID := ctx.GetUint("userID") // userID кладет в контекст middleware

	planID, err := c.Service.CreateJourneyPlan(userID, input)
	if err != nil {
		log.Println("[JourneyPlan] create error:", err)
		ctx.JSON(http.StatusInternalServerError, MessageResponse{Message: "Database error"})
		return
	}

	ctx.JSON(http.StatusCreated, CreatedResponse{Message: "Journey plan created", ID: planID})
}

// GetJourneyPlans godoc
// @Summary      Получить планы путешествий
// @Description  Возвращает все планы пользователя вместе с локациями и активностями
// @Tags         journeyplans
// @Produce      json
// @Security BearerAuth
// @Success      200  {array}   models.JourneyPlan
// @Failure      401  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /journeyplans [get]
func (c *JourneyPlanController) GetJourneyPlans(ctx *gin.Context) {
	userID := ctx.GetUint("userID")

	plans, err := c.Service.GetJourneyPlansByUserID(userID)
	if err != nil {
		log.Println("[JourneyPlan] list error:", err)
		ctx.JSON(http.StatusInternalServerError, MessageResponse{Message: "Database error"})
		return
	}

	ctx.JSON(http.StatusOK, plans)
}

// UpdateJourneyPlan godoc
// @Summary      Обновить план путешествия
// @Description  Обновляет план и полностью заменяет его локации и активности
// @Tags         journeyplans
// @Accept       json
// @Produce      json
// @Security BearerAuth
// @Param        id     path      int                 true  "ID плана"
// @Param        input  body      dto.JourneyPlanDTO  true  "Данные плана"
// @Success      200    {object}  MessageResponse
// @Failure      400    {object}  MessageResponse
// @Failure      401    {object}  MessageResponse
// @Failure      404    {object}  MessageResponse
// @Failure      500    {object}  MessageResponse
// @Router       /journeyplans/{id} [put]
func (c *JourneyPlanController) UpdateJourneyPlan(ctx *gin.Context) {
	var input dto.JourneyPlanDTO

	if err := ctx.ShouldBindBodyWith(&input, binding.JSON); err != nil {
		ctx.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
		return
	}

	userID := ctx.GetUint("userID")
	planID := parseUint(ctx.Param("id"))

	if err := c.Service.UpdateJourneyPlan(userID, planID, input); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, MessageResponse{Message: "Not found or not yours"})
			return
		}
		log.Println("[JourneyPlan] update error:", err)
		ctx.JSON(http.StatusInternalServerError, MessageResponse{Message: "Database error"})
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "Journey plan updated"})
}

// DeleteJourneyPlan godoc
// @Summary      Удалить план путешествия
// @Description  Удаляет план пользователя по ID, локации и активности удаляются каскадом
// @Tags         journeyplans
// @Produce      json
// @Security BearerAuth
// @Param        id   path      int  true  "ID плана"
// @Success      200  {object}  MessageResponse
// @Failure      401  {object}  MessageResponse
// @Failure      404  {object}  MessageResponse
// @Failure      500  {object}  MessageResponse
// @Router       /journeyplans/{id} [delete]
func (c *JourneyPlanController) DeleteJourneyPlan(ctx *gin.Context) {
	userID := ctx.GetUint("userID")
	planID := parseUint(ctx.Param("id"))

	if err := c.Service.DeleteJourneyPlan(userID, planID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, MessageResponse{Message: "Journey plan not found or not yours"})
			return
		}
		log.Println("[JourneyPlan] delete error:", err)
		ctx.JSON(http.StatusInternalServerError, MessageResponse{Message: "Database error"})
		return
	}

	ctx.JSON(http.StatusOK, MessageResponse{Message: "Journey plan deleted"})
}
