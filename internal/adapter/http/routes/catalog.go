package routes

import (
	"lotes_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathCatalog = "/catalog"

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	catalog := rg.Group(PathCatalog)
	{
		catalog.GET("/roles", catalogHandler.Roles)
		catalog.GET("/projects", catalogHandler.Projects)
		catalog.GET("/projects/:project_id/stages", catalogHandler.Stages)
		catalog.GET("/projects/:project_id/lots", catalogHandler.Lots)
		catalog.GET("/stages/:stage_id/blocks", catalogHandler.Blocks)
		catalog.GET("/leads", catalogHandler.Leads)
	}
}
