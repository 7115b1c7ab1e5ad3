package v1

import (
	"github.com/gin-gonic/gin"
)

// CatalogRouteHandler is the set of handlers every catalog entity exposes.
type CatalogRouteHandler interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
	SetDeletionMark(c *gin.Context)
}

// RegisterCatalogRoutes registers the standard CRUD routes for a catalog
// entity under the given path prefix.
func RegisterCatalogRoutes(group *gin.RouterGroup, path string, handler CatalogRouteHandler) {
	entity := group.Group(path)
	{
		entity.GET("", handler.List)
		entity.GET("/:id", handler.Get)
		entity.POST("", handler.Create)
		entity.PUT("/:id", handler.Update)
		entity.DELETE("/:id", handler.Delete)
		entity.POST("/:id/deletion-mark", handler.SetDeletionMark)
	}
}
