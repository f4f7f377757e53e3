package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/application"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/domain/entity"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/interface/middleware"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

type createUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
	Role     string `json:"role" binding:"omitempty,oneof=user teacher admin"`
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("user listing failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch users."})
		return
	}
	c.JSON(http.StatusOK, users)
}

// CheckAdmin answers "is this email an admin" for the caller's own
// email only; probing anyone else's admin status is forbidden.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	email := c.Param("email")
	if email != middleware.AuthedEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return
	}
	admin, err := h.Svc.IsAdmin(c.Request.Context(), email)
	if err != nil {
		h.Logger.WithError(err).Error("admin check failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to check admin status."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload", "details": validation.ToDetails(err)})
		return
	}

	u := &entity.User{Email: req.Email, Name: req.Name, PhotoURL: req.PhotoURL, Role: req.Role}
	res, created, err := h.Svc.Create(c.Request.Context(), u)
	if err != nil {
		h.Logger.WithError(err).Error("user creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user."})
		return
	}
	if !created {
		c.JSON(http.StatusOK, gin.H{"message": "User already exists", "insertedId": nil})
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (h *UserHandler) MakeAdmin(c *gin.Context) {
	h.setRole(c, entity.RoleAdmin)
}

func (h *UserHandler) MakeTeacher(c *gin.Context) {
	h.setRole(c, entity.RoleTeacher)
}

func (h *UserHandler) setRole(c *gin.Context, role string) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}
	res, err := h.Svc.SetRole(c.Request.Context(), id, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update user role."})
		return
	}
	c.JSON(http.StatusOK, res)
}

// Role answers role queries for any email; unregistered emails default
// to "user" rather than erroring.
func (h *UserHandler) Role(c *gin.Context) {
	role, err := h.Svc.RoleOf(c.Request.Context(), c.Query("email"))
	if err != nil {
		h.Logger.WithError(err).Error("role query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch role."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role})
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid id"})
		return
	}
	res, err := h.Svc.Delete(c.Request.Context(), id)
	if err != nil {
		h.Logger.WithError(err).Error("user delete failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete user."})
		return
	}
	if res.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found."})
		return
	}
	c.JSON(http.StatusOK, res)
}
