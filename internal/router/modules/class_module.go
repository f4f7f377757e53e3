package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/RizbiAhmmad/E-Learning-Website-Server/internal/interface/http"
)

// ClassModule wires class record CRUD. The singular /class/:id replace
// keeps the identifier-excluding update shape clients already use.
type ClassModule struct {
	Handler *handlers.ClassHandler
}

func NewClassModule(h *handlers.ClassHandler) *ClassModule {
	return &ClassModule{Handler: h}
}

func (m *ClassModule) Register(rg *gin.RouterGroup) {
	rg.GET("/classes", m.Handler.List)
	rg.POST("/classes", m.Handler.Create)
	rg.GET("/classes/:id", m.Handler.Get)
	rg.PATCH("/classes/:id", m.Handler.UpdateStatus)
	rg.PUT("/classes/:id", m.Handler.Replace)
	rg.DELETE("/classes/:id", m.Handler.Delete)
	rg.PUT("/class/:id", m.Handler.ReplaceFields)
}
