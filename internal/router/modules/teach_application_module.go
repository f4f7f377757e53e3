package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/RizbiAhmmad/E-Learning-Website-Server/internal/interface/http"
)

// TeachApplicationModule wires the instructor application workflow.
// All routes are public, matching the observed surface.
type TeachApplicationModule struct {
	Handler *handlers.TeachApplicationHandler
}

func NewTeachApplicationModule(h *handlers.TeachApplicationHandler) *TeachApplicationModule {
	return &TeachApplicationModule{Handler: h}
}

func (m *TeachApplicationModule) Register(rg *gin.RouterGroup) {
	rg.GET("/teach-applications", m.Handler.List)
	rg.POST("/teach-application", m.Handler.Submit)
	rg.PATCH("/teach-applications/approve/:id", m.Handler.Approve)
	rg.PATCH("/teach-applications/reject/:id", m.Handler.Reject)
}
