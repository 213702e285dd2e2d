package controllers

import (
	"errors"
	"net/http"

	"store-admin/models"
	"store-admin/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register creates a new user account. Registration never logs the user in.
func (ctrl *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	if err := ctrl.auth.Register(req.Email, req.Password); err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: vErr.Message})
		case errors.Is(err, services.ErrUserExists):
			c.JSON(http.StatusConflict, models.ErrorResponse{Success: false, Message: "User already exists"})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Registration failed"})
		}
		return
	}

	c.JSON(http.StatusCreated, models.Response{Success: true, Message: "Registration successful"})
}

func (ctrl *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: "Invalid request"})
		return
	}

	state, err := ctrl.auth.Login(c.GetString("session_id"), req.Email, req.Password)
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Success: false, Message: vErr.Message})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Success: false, Message: "Invalid credentials"})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Success: false, Message: "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Login successful",
		Data: gin.H{
			"token": state.Token,
			"user":  state.User,
		},
	})
}

func (ctrl *AuthController) Logout(c *gin.Context) {
	state := ctrl.auth.Logout(c.GetString("session_id"))
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Logged out", Data: state})
}

// GetSession returns the current auth state for store hydration on the
// client.
func (ctrl *AuthController) GetSession(c *gin.Context) {
	state := ctrl.auth.Session(c.GetString("session_id"))
	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Session retrieved", Data: state})
}
