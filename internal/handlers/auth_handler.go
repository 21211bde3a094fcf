package handlers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/bnyashwanth/event-ticketing-system/internal/helpers"
	"github.com/bnyashwanth/event-ticketing-system/internal/models"
	"github.com/bnyashwanth/event-ticketing-system/internal/services"
)

func Signup(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody struct {
			Name     string `json:"name" binding:"required"`
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse("invalid request body", err.Error()))
			return
		}

		user := &models.User{
			Name:     reqBody.Name,
			Email:    reqBody.Email,
			Password: reqBody.Password,
		}

		createdUser, err := us.Signup(c.Request.Context(), user)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(createdUser, "Account created successfully"))
	}
}

func Login(us *services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ValidationErrorResponse("invalid request body", err.Error()))
			return
		}

		user, token, err := us.Login(c.Request.Context(), reqBody.Email, reqBody.Password)
		if err != nil {
			respondError(c, err)
			return
		}

		isProduction := os.Getenv("GIN_MODE") == "release"
		c.SetCookie(
			"access_token",
			token,
			int(helpers.TokenTTL.Seconds()),
			"/",
			"", // let Gin pick current domain
			isProduction,
			true,
		)

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{
			"user":  user,
			"token": token,
		}, "Logged in successfully"))
	}
}
