package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/container"
	handlers "github.com/RizbiAhmmad/E-Learning-Website-Server/internal/interface/http"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/interface/middleware"
)

// TokenModule exposes token issuance.
// Public: POST /jwt (rate limited per IP; issuance is the cheapest way
// to hammer the signer).
type TokenModule struct {
	Handler *handlers.TokenHandler
}

func NewTokenModule(h *handlers.TokenHandler) *TokenModule {
	return &TokenModule{Handler: h}
}

func (m *TokenModule) Register(rg *gin.RouterGroup) {
	issueLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIP())
	rg.POST("/jwt", issueLimiter, m.Handler.Issue)
}
