package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/eoinharts/travel-client-app/dto"
	"github.com/eoinharts/travel-client-app/models"
	"github.com/eoinharts/travel-client-app/services"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// MessageResponse — структура для ответа с сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterResponse — структура для ответа при успешной регистрации
type RegisterResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"userId"`
}

// LoginResponse — структура для ответа при успешном входе
type LoginResponse struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
	Token   string      `json:"token"`
}

// RegistController — контроллер для обработки запросов на регистрацию и вход
type RegistController struct {
	Service_regist *services.RegistService
	Service_auth   *services.AuthService
}

// RegisterUser godoc
// @Summary Register new user
// @Description Register a new user by providing username, password, email and address
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.RegisterUserDTO true "User data"
// @Success 201 {object} RegisterResponse "Successfully created user"
// @Failure 400 {object} MessageResponse "Invalid input"
// @Failure 500 {object} MessageResponse "Database error"
// @Router /users/register [post]
func (controller *RegistController) RegisterUser(c *gin.Context) {
	var userDTO dto.RegisterUserDTO
	if err := c.ShouldBindBodyWith(&userDTO, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "Missing required fields"})
		return
	}

	user, err := controller.Service_regist.RegisterUser(userDTO)
	if err != nil {
		if services.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, MessageResponse{Message: err.Error()})
			return
		}
		// Сюда же попадает занятый username — наружу уходит общий ответ
		log.Println("[Register] DB error:", err)
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Database error"})
		return
	}

	log.Println("[Register] user created with id:", user.ID)
	c.JSON(http.StatusCreated, RegisterResponse{Message: "User registered successfully", UserID: user.ID})
}

// LoginUser godoc
// @Summary Login user and return JWT token
// @Description Login a user by providing username and password, and return a JWT token
// @Tags users
// @Accept json
// @Produce json
// @Param login body dto.LoginDTO true "User login data"
// @Success 200 {object} LoginResponse "User and JWT token"
// @Failure 400 {object} MessageResponse "Missing credentials"
// @Failure 401 {object} MessageResponse "Unauthorized - invalid credentials"
// @Router /users/login [post]
func (controller *RegistController) LoginUser(c *gin.Context) {
	var loginDTO dto.LoginDTO
	if err := c.ShouldBindBodyWith(&loginDTO, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "Missing credentials"})
		return
	}
	if loginDTO.Username == "" || loginDTO.Password == "" {
		c.JSON(http.StatusBadRequest, MessageResponse{Message: "Missing credentials"})
		return
	}

	token, user, err := controller.Service_auth.AuthenticateUser(loginDTO)
	if err != nil {
		// Неизвестный username и неверный пароль отвечают одинаково
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, MessageResponse{Message: err.Error()})
			return
		}
		log.Println("[Login] DB error:", err)
		c.JSON(http.StatusInternalServerError, MessageResponse{Message: "Database error"})
		return
	}

	log.Println("[Login] success, issuing token")
	c.JSON(http.StatusOK, LoginResponse{Message: "Login successful", User: *user, Token: token})
}
