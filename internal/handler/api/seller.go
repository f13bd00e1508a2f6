package api

import (
	"net/http"

	resdto "pass-config-engine/internal/handler/dto/response"
	"pass-config-engine/internal/handler/httperr"
	"pass-config-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SellerHandler struct {
	q queries.SellerQueries
}

func NewSellerHandler(q queries.SellerQueries) *SellerHandler {
	return &SellerHandler{q: q}
}

// @Summary Unassigned sellers
// @Description List sellers that hold no saved configuration
// @Tags sellers
// @Produce json
// @Success 200 {array} resdto.SellerResponse
// @Failure 503 {object} map[string]string
// @Router /sellers/unassigned [get]
func (h *SellerHandler) Unassigned(c *gin.Context) {
	sellers, err := h.q.Unassigned(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sellers": resdto.FromSellers(sellers)})
}
