package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/container"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/domain/repository"
	handlers "github.com/RizbiAhmmad/E-Learning-Website-Server/internal/interface/http"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/interface/middleware"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/pkg/helpers"
)

// UserModule wires the identity and role routes.
// Public: POST /users (rate limited), GET /users/role
// Authenticated: GET /users, GET /users/admin/:email
// Authenticated + admin: PATCH /users/admin/:id, DELETE /users/:id
// PATCH /users/teacher/:id is deliberately unguarded; see DESIGN.md.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
	Users   repository.UserRepository
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager, users repository.UserRepository) *UserModule {
	return &UserModule{Handler: h, JWT: jwt, Users: users}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	registerLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath())
	auth := middleware.Auth(m.JWT)
	admin := middleware.AuthAdmin(m.JWT, m.Users)

	rg.POST("/users", registerLimiter, m.Handler.Create)
	rg.GET("/users/role", m.Handler.Role)
	rg.GET("/users", auth, m.Handler.List)
	rg.GET("/users/admin/:email", auth, m.Handler.CheckAdmin)
	rg.PATCH("/users/admin/:id", append(admin, m.Handler.MakeAdmin)...)
	rg.PATCH("/users/teacher/:id", m.Handler.MakeTeacher)
	rg.DELETE("/users/:id", append(admin, m.Handler.Delete)...)
}
