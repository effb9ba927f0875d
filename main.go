package main

import (
	"os"

	"github.com/eoinharts/travel-client-app/controllers"
	"github.com/eoinharts/travel-client-app/database"
	docs "github.com/eoinharts/travel-client-app/docs"
	middleware "github.com/eoinharts/travel-client-app/midellware"
	"github.com/eoinharts/travel-client-app/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Travel Journal API
// @version 1.0
// @description Личный дневник путешествий: записи о прошедших поездках и планы будущих

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Инициализация подключения к базе данных
	database.InitDB()

	// Инициализация сервисов
	registService := &services.RegistService{
		DB: database.GetDB(),
	}
	authService := &services.AuthService{
		DB: database.GetDB(),
	}
	travelLogService := services.NewTravelLogService(database.GetDB())
	journeyPlanService := services.NewJourneyPlanService(database.GetDB())

	// Инициализация контроллеров
	regisController := &controllers.RegistController{
		Service_regist: registService,
		Service_auth:   authService,
	}

	travelLogController := &controllers.TravelLogController{
		Service: travelLogService,
	}

	journeyPlanController := &controllers.JourneyPlanController{
		Service: journeyPlanService,
	}

	// Настройка маршрутов и Swagger документации
	r := gin.Default()
	r.Use(cors.Default())
	docs.SwaggerInfo.BasePath = "/"

	// Открытые маршруты
	users := r.Group("/users")
	{
		users.POST("/register", regisController.RegisterUser)
		users.POST("/login", regisController.LoginUser)
	}

	// Защищённые маршруты
	travellogs := r.Group("/travellogs")
	travellogs.Use(middleware.AuthMiddleware())
	{
		travellogs.POST("", travelLogController.CreateTravelLog)
		travellogs.GET("", travelLogController.GetTravelLogs)
		travellogs.PUT("/:id", travelLogController.UpdateTravelLog)
		travellogs.DELETE("/:id", travelLogController.DeleteTravelLog)
	}

	journeyplans := r.Group("/journeyplans")
	journeyplans.Use(middleware.AuthMiddleware())
	{
		journeyplans.POST("", journeyPlanController.CreateJourneyPlan)
		journeyplans.GET("", journeyPlanController.GetJourneyPlans)
		journeyplans.PUT("/:id", journeyPlanController.UpdateJourneyPlan)
		journeyplans.DELETE("/:id", journeyPlanController.DeleteJourneyPlan)
	}

	// Маршрут для Swagger документации
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))

	// Запуск сервера
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
