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

type ClassHandler struct {
	Svc    *application.ClassService
	Logger *logrus.Logger
}

func NewClassHandler(svc *application.ClassService, logger *logrus.Logger) *ClassHandler {
	return &ClassHandler{Svc: svc, Logger: logger}
}

type updateClassStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *ClassHandler) List(c *gin.Context) {
	filter := repository.ClassFilter{
		Status:       c.Query("status"),
		TeacherEmail: c.Query("teacherEmail"),
	}
	classes, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		h.Logger.WithError(err).Error("class listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch classes."})
		return
	}
	c.JSON(http.StatusOK, classes)
}

func (h *ClassHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}
	cl, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Class not found."})
			return
		}
		h.Logger.WithError(err).Error("class fetch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch class details."})
		return
	}
	c.JSON(http.StatusOK, cl)
}

func (h *ClassHandler) Create(c *gin.Context) {
	var cl entity.Class
	if err := c.ShouldBindJSON(&cl); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}
	res, err := h.Svc.Create(c.Request.Context(), &cl)
	if err != nil {
		h.Logger.WithError(err).Error("class creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add class."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":    "Class added successfully!",
		"insertedId": res.InsertedID,
	})
}

// UpdateStatus patches only the status field. A zero-modified write is
// indistinguishable from a missing record and both answer 404.
func (h *ClassHandler) UpdateStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}
	var req updateClassStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}
	res, err := h.Svc.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		h.Logger.WithError(err).Error("class status update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update class status."})
		return
	}
	if res.ModifiedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Class not found or already updated."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Class status updated successfully!"})
}

// Replace applies the full field set and maps zero-modified to 404.
func (h *ClassHandler) Replace(c *gin.Context) {
	id, fields, ok := h.bindReplace(c)
	if !ok {
		return
	}
	res, err := h.Svc.Replace(c.Request.Context(), id, fields)
	if err != nil {
		h.Logger.WithError(err).Error("class update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update class."})
		return
	}
	if res.ModifiedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Class not found or already updated."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Class updated successfully!"})
}

// ReplaceFields applies the field set minus the identifier and returns
// the raw write result without a not-found mapping.
func (h *ClassHandler) ReplaceFields(c *gin.Context) {
	id, fields, ok := h.bindReplace(c)
	if !ok {
		return
	}
	res, err := h.Svc.Replace(c.Request.Context(), id, fields)
	if err != nil {
		h.Logger.WithError(err).Error("class update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update class"})
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ClassHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}
	res, err := h.Svc.Delete(c.Request.Context(), id)
	if err != nil {
		h.Logger.WithError(err).Error("class delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete class."})
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Class not found."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Class deleted successfully!"})
}

func (h *ClassHandler) bindReplace(c *gin.Context) (primitive.ObjectID, map[string]interface{}, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return primitive.NilObjectID, nil, false
	}
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return primitive.NilObjectID, nil, false
	}
	return id, fields, true
}
