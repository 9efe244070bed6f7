package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"trucki/internal/middleware"
	"trucki/internal/models"
	"trucki/internal/repository"
)

// AuthController handles login only. There is no self-serve signup: every
// login identity is provisioned by an onboarding flow.
type AuthController struct {
	users repository.UserStore
}

func NewAuthController(users repository.UserStore) *AuthController {
	return &AuthController{users: users}
}

func (ct *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.Failure[models.LoginResponse](http.StatusBadRequest, "Invalid request body: "+err.Error()))
		return
	}

	user, err := ct.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, models.Failure[models.LoginResponse](http.StatusUnauthorized, "Invalid email or password"))
			return
		}
		logrus.WithError(err).Error("user lookup failed")
		c.JSON(http.StatusInternalServerError, models.Failure[models.LoginResponse](http.StatusInternalServerError, "An error occurred during login"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, models.Failure[models.LoginResponse](http.StatusUnauthorized, "Invalid email or password"))
		return
	}

	token, err := middleware.GenerateToken(user.ID, user.Role)
	if err != nil {
		logrus.WithError(err).Error("token generation failed")
		c.JSON(http.StatusInternalServerError, models.Failure[models.LoginResponse](http.StatusInternalServerError, "An error occurred during login"))
		return
	}

	resp := models.Success(http.StatusOK, "Login successful", models.LoginResponse{
		Token: token,
		User:  models.ToUserResponse(*user),
	})
	c.JSON(resp.StatusCode, resp)
}
