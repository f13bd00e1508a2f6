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

type TempURLHandler struct {
	cmds commands.TempURLCommands
	q    queries.TempURLQueries
}

func NewTempURLHandler(cmds commands.TempURLCommands, q queries.TempURLQueries) *TempURLHandler {
	return &TempURLHandler{cmds: cmds, q: q}
}

// @Summary List session URLs
// @Description List the temporary URL registry of a session
// @Tags urls
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {array} resdto.URLResponse
// @Failure 503 {object} map[string]string
// @Router /drafts/{sessionId}/urls [get]
func (h *TempURLHandler) List(c *gin.Context) {
	urls, err := h.q.List(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"urls": resdto.FromURLs(urls)})
}

// @Summary Add session URL
// @Description Add a temporary URL to the registry. Only valid for URL delivery modes.
// @Tags urls
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.CreateURLRequest true "URL"
// @Success 201 {object} resdto.URLResponse
// @Failure 400 {object} map[string]string
// @Router /drafts/{sessionId}/urls [post]
func (h *TempURLHandler) Create(c *gin.Context) {
	var req reqdto.CreateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	u, err := h.cmds.Create(c.Request.Context(), c.Param("sessionId"), req.ToCommand())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromURL(u))
}

// @Summary Update session URL
// @Description Partially update a temporary URL; null clears url or description
// @Tags urls
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param id path string true "URL ID"
// @Param request body reqdto.UpdateURLRequest true "URL patch"
// @Success 200 {object} resdto.URLResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drafts/{sessionId}/urls/{id} [patch]
func (h *TempURLHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateURLRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	u, err := h.cmds.Update(c.Request.Context(), c.Param("sessionId"), id, req.ToCommand())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromURL(u))
}

// @Summary Delete session URL
// @Tags urls
// @Param sessionId path string true "Session ID"
// @Param id path string true "URL ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /drafts/{sessionId}/urls/{id} [delete]
func (h *TempURLHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), c.Param("sessionId"), id); err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
