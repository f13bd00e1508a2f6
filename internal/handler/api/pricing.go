package api

import (
	"net/http"

	reqdto "pass-config-engine/internal/handler/dto/request"
	resdto "pass-config-engine/internal/handler/dto/response"
	"pass-config-engine/internal/handler/httperr"
	"pass-config-engine/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary Price preview
// @Description Price every guest/day combination within the draft's limits
// @Tags pricing
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} resdto.PricePreviewResponse
// @Failure 400 {object} map[string]string
// @Router /drafts/{sessionId}/pricing/preview [get]
func (h *PricingHandler) Preview(c *gin.Context) {
	p, err := h.q.Preview(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPricePreview(p))
}

// @Summary Quote
// @Description Price an issuance against a saved configuration
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Quote request"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	q, err := h.q.Quote(c.Request.Context(), req.ToQuery())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(q))
}
