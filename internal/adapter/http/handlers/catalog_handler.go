package handlers

import (
	"net/http"

	request "lotes_backoffice/internal/adapter/http/dto/request"
	"lotes_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the cascading filters (project > stage > block > lot) and leads.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) Roles(c *gin.Context) {
	roles, err := h.usecase.Roles(c.Request.Context())
	if err != nil {
		writeError(c, mapCommonError(err))
		return
	}
	c.JSON(http.StatusOK, roles)
}

func (h *CatalogHandler) Projects(c *gin.Context) {
	projects, err := h.usecase.Projects(c.Request.Context())
	if err != nil {
		writeError(c, mapCommonError(err))
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *CatalogHandler) Stages(c *gin.Context) {
	stages, err := h.usecase.Stages(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		writeError(c, mapCommonError(err))
		return
	}
	c.JSON(http.StatusOK, stages)
}

func (h *CatalogHandler) Blocks(c *gin.Context) {
	blocks, err := h.usecase.Blocks(c.Request.Context(), c.Param("stage_id"))
	if err != nil {
		writeError(c, mapCommonError(err))
		return
	}
	c.JSON(http.StatusOK, blocks)
}

func (h *CatalogHandler) Lots(c *gin.Context) {
	lots, err := h.usecase.Lots(c.Request.Context(), c.Param("project_id"), c.Query("block_id"))
	if err != nil {
		writeError(c, mapCommonError(err))
		return
	}
	c.JSON(http.StatusOK, lots)
}

func (h *CatalogHandler) Leads(c *gin.Context) {
	var q request.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, errInvalidRequest)
		return
	}
	page, err := h.usecase.Leads(c.Request.Context(), q.ToParams())
	if err != nil {
		writeError(c, mapCommonError(err))
		return
	}
	c.JSON(http.StatusOK, page)
}
