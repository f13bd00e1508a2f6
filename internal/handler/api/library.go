package api

import (
	"net/http"

	reqdto "pass-config-engine/internal/handler/dto/request"
	resdto "pass-config-engine/internal/handler/dto/response"
	"pass-config-engine/internal/handler/httperr"
	"pass-config-engine/internal/usecase/commands"
	"pass-config-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LibraryHandler struct {
	cmds commands.LibraryCommands
	q    queries.LibraryQueries
}

func NewLibraryHandler(cmds commands.LibraryCommands, q queries.LibraryQueries) *LibraryHandler {
	return &LibraryHandler{cmds: cmds, q: q}
}

// @Summary List configurations
// @Description Search, filter and page the saved configuration library
// @Tags configurations
// @Produce json
// @Param q query string false "Free text over name and description"
// @Param pricing_mode query string false "FIXED, VARIABLE or FREE"
// @Param delivery_method query string false "DIRECT, URLS or BOTH"
// @Param assigned query bool false "Only assigned (true) or unassigned (false)"
// @Param order_by query string false "name, created_at or price, optionally followed by desc"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} resdto.ConfigurationPageResponse
// @Failure 400 {object} map[string]string
// @Router /configurations [get]
func (h *LibraryHandler) List(c *gin.Context) {
	var q reqdto.ListConfigurationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := q.Filter()
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	sort, err := queries.ParseLibrarySort(q.OrderBy)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	page, err := h.q.List(c.Request.Context(), filter, sort, q.Page, q.PageSize)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfigurationPage(page))
}

// @Summary Get configuration
// @Tags configurations
// @Produce json
// @Param id path string true "Configuration ID"
// @Success 200 {object} resdto.ConfigurationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /configurations/{id} [get]
func (h *LibraryHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	cfg, err := h.q.Get(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfiguration(cfg))
}

// @Summary Update configuration metadata
// @Description Rename or re-describe a configuration; its snapshot never changes
// @Tags configurations
// @Accept json
// @Produce json
// @Param id path string true "Configuration ID"
// @Param request body reqdto.UpdateConfigurationRequest true "Metadata"
// @Success 200 {object} resdto.ConfigurationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /configurations/{id} [patch]
func (h *LibraryHandler) UpdateMetadata(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateConfigurationRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	cfg, err := h.cmds.UpdateMetadata(c.Request.Context(), id, req.Name, req.Description)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfiguration(cfg))
}

// @Summary Delete configuration
// @Description Delete a configuration and any artifacts nothing else references
// @Tags configurations
// @Param id path string true "Configuration ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /configurations/{id} [delete]
func (h *LibraryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Bulk delete configurations
// @Description Delete every listed configuration or none of them
// @Tags configurations
// @Accept json
// @Produce json
// @Param request body reqdto.BulkDeleteRequest true "Configuration IDs"
// @Success 200 {object} resdto.BulkDeleteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /configurations/bulk-delete [post]
func (h *LibraryHandler) BulkDelete(c *gin.Context) {
	var req reqdto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	n, err := h.cmds.BulkDelete(c.Request.Context(), req.IDs)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BulkDeleteResponse{Deleted: n})
}

// @Summary Assign configuration
// @Description Bind a configuration to a seller; a seller holds at most one
// @Tags configurations
// @Accept json
// @Produce json
// @Param id path string true "Configuration ID"
// @Param request body reqdto.AssignRequest true "Seller"
// @Success 200 {object} resdto.ConfigurationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /configurations/{id}/assign [post]
func (h *LibraryHandler) Assign(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.AssignRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	cfg, err := h.cmds.Assign(c.Request.Context(), id, req.SellerID)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfiguration(cfg))
}

// @Summary Clone configuration
// @Description Open a new draft session pre-filled from a saved configuration
// @Tags configurations
// @Produce json
// @Param id path string true "Configuration ID"
// @Success 201 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /configurations/{id}/clone [post]
func (h *LibraryHandler) Clone(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	d, err := h.cmds.Clone(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Header("Location", "/api/drafts/"+d.SessionID())
	c.JSON(http.StatusCreated, resdto.FromDraft(d))
}
