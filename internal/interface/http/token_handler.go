package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/application"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/domain/repository"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/pkg/helpers"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/pkg/validation"
)

type TokenHandler struct {
	JWT    *helpers.JWTManager
	Users  *application.UserService
	Logger *logrus.Logger
}

func NewTokenHandler(jwt *helpers.JWTManager, users *application.UserService, logger *logrus.Logger) *TokenHandler {
	return &TokenHandler{JWT: jwt, Users: users, Logger: logger}
}

// Issue signs the submitted claims into a bearer token. Claims must
// carry the email of a registered user; the rest of the claims object is
// signed verbatim.
func (h *TokenHandler) Issue(c *gin.Context) {
	var claims map[string]interface{}
	if err := c.ShouldBindJSON(&claims); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "details": validation.ToDetails(err)})
		return
	}

	email, _ := claims["email"].(string)
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
		return
	}
	if _, err := h.Users.Get(c.Request.Context(), email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		h.Logger.WithError(err).Error("token issuance user lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to issue token."})
		return
	}

	token, err := h.JWT.Issue(claims)
	if err != nil {
		h.Logger.WithError(err).Error("token signing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to issue token."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}
