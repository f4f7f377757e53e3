package router

import "github.com/gin-gonic/gin"

// Module is implemented by each feature area so the registry can mount
// its routes onto a shared group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
