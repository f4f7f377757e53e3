package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/application"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/domain/entity"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/domain/repository"
)

type TeachApplicationHandler struct {
	Svc    *application.TeachApplicationService
	Logger *logrus.Logger
}

func NewTeachApplicationHandler(svc *application.TeachApplicationService, logger *logrus.Logger) *TeachApplicationHandler {
	return &TeachApplicationHandler{Svc: svc, Logger: logger}
}

func (h *TeachApplicationHandler) List(c *gin.Context) {
	apps, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("application listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch applications."})
		return
	}
	c.JSON(http.StatusOK, apps)
}

func (h *TeachApplicationHandler) Submit(c *gin.Context) {
	var app entity.TeachApplication
	if err := c.ShouldBindJSON(&app); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}
	res, err := h.Svc.Submit(c.Request.Context(), &app)
	if err != nil {
		h.Logger.WithError(err).Error("application submission failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit application."})
		return
	}
	c.JSON(http.StatusCreated, res)
}

// Approve accepts the application and promotes the applicant. Both
// sub-results go back to the caller so a partial failure is visible.
func (h *TeachApplicationHandler) Approve(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}
	res, err := h.Svc.Approve(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Application not found."})
			return
		}
		h.Logger.WithError(err).Error("application approval failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to approve application."})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"applicationUpdate": res.ApplicationUpdate,
		"userUpdate":        res.UserUpdate,
		"message":           "Application approved, and role updated to teacher in both databases.",
	})
}

func (h *TeachApplicationHandler) Reject(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}
	res, err := h.Svc.Reject(c.Request.Context(), id)
	if err != nil {
		h.Logger.WithError(err).Error("application rejection failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to reject application."})
		return
	}
	c.JSON(http.StatusOK, res)
}
