package api

import (
	"net/http"

	reqdto "pass-config-engine/internal/handler/dto/request"
	resdto "pass-config-engine/internal/handler/dto/response"
	"pass-config-engine/internal/handler/httperr"
	"pass-config-engine/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type DraftHandler struct {
	cmds      commands.DraftCommands
	promotion commands.PromotionCommands
}

func NewDraftHandler(cmds commands.DraftCommands, promotion commands.PromotionCommands) *DraftHandler {
	return &DraftHandler{cmds: cmds, promotion: promotion}
}

// @Summary Begin draft session
// @Description Open a new configuration session with an empty draft
// @Tags drafts
// @Produce json
// @Success 201 {object} resdto.DraftResponse
// @Failure 503 {object} map[string]string
// @Router /drafts [post]
func (h *DraftHandler) Begin(c *gin.Context) {
	d, err := h.cmds.Begin(c.Request.Context())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Header("Location", "/api/drafts/"+d.SessionID())
	c.JSON(http.StatusCreated, resdto.FromDraft(d))
}

// @Summary Load draft
// @Description Load the session's draft, reconciling the local and remote copies
// @Tags drafts
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Router /drafts/{sessionId} [get]
func (h *DraftHandler) Load(c *gin.Context) {
	d, err := h.cmds.Load(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraft(d))
}

// @Summary Clear draft
// @Description Discard all progress and restart the session from defaults
// @Tags drafts
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /drafts/{sessionId} [delete]
func (h *DraftHandler) Clear(c *gin.Context) {
	d, err := h.cmds.Clear(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraft(d))
}

// @Summary Recheck draft
// @Description Re-read externally registered artifacts and retry a pending remote write
// @Tags drafts
// @Produce json
// @Param sessionId path string true "Session ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Router /drafts/{sessionId}/recheck [post]
func (h *DraftHandler) Recheck(c *gin.Context) {
	d, err := h.cmds.Recheck(c.Request.Context(), c.Param("sessionId"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraft(d))
}

// @Summary Configure limits
// @Description Set guest and day limits (dimension 1)
// @Tags drafts
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.LimitsRequest true "Limits"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Router /drafts/{sessionId}/limits [put]
func (h *DraftHandler) ConfigureLimits(c *gin.Context) {
	var req reqdto.LimitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	d, err := h.cmds.ConfigureLimits(c.Request.Context(), c.Param("sessionId"), req.ToDomain())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraft(d))
}

// @Summary Set pricing
// @Description Set the pricing mode and amounts (dimension 2)
// @Tags drafts
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.PricingRequest true "Pricing"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Router /drafts/{sessionId}/pricing [put]
func (h *DraftHandler) SetPricing(c *gin.Context) {
	var req reqdto.PricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := req.ToDomain()
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	d, err := h.cmds.SetPricing(c.Request.Context(), c.Param("sessionId"), params)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraft(d))
}

// @Summary Set delivery method
// @Description Choose DIRECT, URLS or BOTH (dimension 3). Switching to DIRECT clears the URL registry.
// @Tags drafts
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.DeliveryRequest true "Delivery method"
// @Success 200 {object} resdto.DeliveryChangeResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /drafts/{sessionId}/delivery [put]
func (h *DraftHandler) SetDeliveryMethod(c *gin.Context) {
	var req reqdto.DeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	method, err := req.ToDomain()
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	res, err := h.cmds.SetDeliveryMethod(c.Request.Context(), c.Param("sessionId"), method)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDeliveryResult(res))
}

// @Summary Choose landing page
// @Description Choose the default or a custom landing page for URL delivery
// @Tags drafts
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.LandingPageRequest true "Landing page choice"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Router /drafts/{sessionId}/delivery/landing-page [put]
func (h *DraftHandler) ChooseLandingPage(c *gin.Context) {
	var req reqdto.LandingPageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	choice, err := req.ToDomain()
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	d, err := h.cmds.ChooseLandingPage(c.Request.Context(), c.Param("sessionId"), choice)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraft(d))
}

// @Summary Choose welcome email template
// @Description Use the default template or a custom one from the editor (dimension 4)
// @Tags drafts
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.WelcomeEmailRequest true "Welcome email"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Router /drafts/{sessionId}/welcome-email [put]
func (h *DraftHandler) ChooseWelcomeTemplate(c *gin.Context) {
	var req reqdto.WelcomeEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	d, err := h.cmds.ChooseWelcomeTemplate(c.Request.Context(), c.Param("sessionId"), *req.UseCustomTemplate)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraft(d))
}

// @Summary Configure rebuy email
// @Description Enable or disable the rebuy email and choose its template (dimension 5)
// @Tags drafts
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.RebuyEmailRequest true "Rebuy email"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Router /drafts/{sessionId}/rebuy-email [put]
func (h *DraftHandler) ConfigureRebuy(c *gin.Context) {
	var req reqdto.RebuyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	d, err := h.cmds.ConfigureRebuy(c.Request.Context(), c.Param("sessionId"), req.ToCommand())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraft(d))
}

// @Summary Set future QR
// @Description Allow or forbid QR codes for future dates (dimension 6)
// @Tags drafts
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.FutureQRRequest true "Future QR"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} map[string]string
// @Router /drafts/{sessionId}/future-qr [put]
func (h *DraftHandler) SetFutureQR(c *gin.Context) {
	var req reqdto.FutureQRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	d, err := h.cmds.SetFutureQR(c.Request.Context(), c.Param("sessionId"), *req.Allowed)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraft(d))
}

// @Summary Register artifact
// @Description Store a template produced by the external editor and merge it into the draft
// @Tags drafts
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.RegisterArtifactRequest true "Artifact"
// @Success 201 {object} resdto.RegisterArtifactResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /drafts/{sessionId}/artifacts [post]
func (h *DraftHandler) RegisterArtifact(c *gin.Context) {
	var req reqdto.RegisterArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cmd, err := req.ToCommand()
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	res, err := h.cmds.RegisterArtifact(c.Request.Context(), c.Param("sessionId"), cmd)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRegisterArtifactResult(res))
}

// @Summary Promote draft
// @Description Save a completed draft as a library configuration and start a fresh session
// @Tags drafts
// @Accept json
// @Produce json
// @Param sessionId path string true "Session ID"
// @Param request body reqdto.PromoteRequest true "Configuration metadata"
// @Success 201 {object} resdto.PromotionResponse
// @Failure 400 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /drafts/{sessionId}/promote [post]
func (h *DraftHandler) Promote(c *gin.Context) {
	var req reqdto.PromoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.promotion.Promote(c.Request.Context(), c.Param("sessionId"), req.ToCommand())
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	c.Header("Location", "/api/configurations/"+res.Configuration.ID().String())
	c.JSON(http.StatusCreated, resdto.FromPromotionResult(res))
}
