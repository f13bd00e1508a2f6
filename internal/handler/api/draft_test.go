//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/domain/pricing"
	"pass-config-engine/internal/handler/api"
	reqdto "pass-config-engine/internal/handler/dto/request"
	resdto "pass-config-engine/internal/handler/dto/response"
	"pass-config-engine/internal/handler/middleware"
	"pass-config-engine/internal/pkg/errs"
	"pass-config-engine/internal/usecase/commands"
	"pass-config-engine/tests/common/builder"
	"pass-config-engine/tests/common/httptest"
	"pass-config-engine/tests/common/testutil"
	commandsmock "pass-config-engine/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DraftHandlerTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockCtrl      *gomock.Controller
	mockCommands  *commandsmock.MockDraftCommands
	mockPromotion *commandsmock.MockPromotionCommands
	handler       *api.DraftHandler
	sessionID     string
}

func (s *DraftHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockDraftCommands(s.mockCtrl)
	s.mockPromotion = commandsmock.NewMockPromotionCommands(s.mockCtrl)
	s.handler = api.NewDraftHandler(s.mockCommands, s.mockPromotion)
	s.sessionID = "6f1c2f1e-7c55-4c57-9f55-2f4f0c1f6a10"

	s.router.POST("/drafts", s.handler.Begin)
	s.router.GET("/drafts/:sessionId", s.handler.Load)
	s.router.PUT("/drafts/:sessionId/limits", s.handler.ConfigureLimits)
	s.router.PUT("/drafts/:sessionId/pricing", s.handler.SetPricing)
	s.router.PUT("/drafts/:sessionId/delivery", s.handler.SetDeliveryMethod)
	s.router.PUT("/drafts/:sessionId/welcome-email", s.handler.ChooseWelcomeTemplate)
	s.router.POST("/drafts/:sessionId/artifacts", s.handler.RegisterArtifact)
	s.router.POST("/drafts/:sessionId/promote", s.handler.Promote)
}

func (s *DraftHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDraftHandlerSuite(t *testing.T) {
	suite.Run(t, new(DraftHandlerTestSuite))
}

func (s *DraftHandlerTestSuite) url(suffix string) string {
	return "/drafts/" + s.sessionID + suffix
}

// ================================================================================
// TestBegin
// ================================================================================

func (s *DraftHandlerTestSuite) TestBegin() {
	d := builder.NewDraftBuilder().WithSessionID(s.sessionID).MustBuild()

	s.Run("success: 201 with location of the new session", func() {
		s.mockCommands.EXPECT().Begin(gomock.Any()).Return(d, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/drafts", nil)

		var body resdto.DraftResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(s.sessionID, body.SessionID)
		s.Equal(10, body.Dimensions.Limits.Guests.RangeMax)
		s.False(body.Complete)
		httptest.AssertLocation(s.T(), rec, "/api/drafts/"+s.sessionID)
	})

	s.Run("error: storage outage maps to 503", func() {
		s.mockCommands.EXPECT().Begin(gomock.Any()).
			Return(nil, errs.Persistence(errors.New("connection refused"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/drafts", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "temporarily unavailable")
	})
}

// ================================================================================
// TestLoad
// ================================================================================

func (s *DraftHandlerTestSuite) TestLoad() {
	d := builder.NewDraftBuilder().WithSessionID(s.sessionID).Complete().MustBuild()
	s.mockCommands.EXPECT().Load(gomock.Any(), s.sessionID).Return(d, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.url(""), nil)

	var body resdto.DraftResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.True(body.Complete)
	s.Equal([]string{"limits", "pricing", "delivery", "welcome_email", "rebuy_email", "future_qr"}, body.Completed)
	s.Equal("FIXED", body.Dimensions.Pricing.Mode)
	s.Equal("20", body.Dimensions.Pricing.Price)
}

// ================================================================================
// TestConfigureLimits
// ================================================================================

func (s *DraftHandlerTestSuite) TestConfigureLimits() {
	reqBody := reqdto.LimitsRequest{
		Guests: reqdto.LimitSettingRequest{DefaultValue: 4, RangeMax: 10},
		Days:   reqdto.LimitSettingRequest{DefaultValue: 1, RangeMax: 7},
	}
	d := builder.NewDraftBuilder().WithSessionID(s.sessionID).MustBuild()

	s.Run("success: limits reach the command unchanged", func() {
		s.mockCommands.EXPECT().ConfigureLimits(gomock.Any(), s.sessionID, builder.GoldPlanLimits()).
			Return(d, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.url("/limits"), reqBody)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on binding failures without calling the command", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "guests missing", mutate: testutil.Field("guests", nil)},
			{name: "days default zero", mutate: testutil.Field("days.default_value", 0)},
			{name: "guests range zero", mutate: testutil.Field("guests.range_max", 0)},
			{name: "days range missing", mutate: testutil.Field("days.range_max", nil)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.url("/limits"), requestMap)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: malformed JSON", func() {
		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPut, s.url("/limits"), `{"guests": {"default_value": 4,`)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: domain rule violations carry their message", func() {
		s.mockCommands.EXPECT().ConfigureLimits(gomock.Any(), s.sessionID, gomock.Any()).
			Return(nil, errs.Validation(draft.ErrGuestsRangeTooLarge)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.url("/limits"), reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, draft.ErrGuestsRangeTooLarge.Error())
	})
}

// ================================================================================
// TestSetPricing
// ================================================================================

func (s *DraftHandlerTestSuite) TestSetPricing() {
	d := builder.NewDraftBuilder().WithSessionID(s.sessionID).MustBuild()

	s.Run("success: amounts accepted as numbers or strings", func() {
		body := map[string]any{
			"mode":                "VARIABLE",
			"base_price":          "10",
			"per_guest_increment": 5,
			"per_day_increment":   "2.5",
			"commission_percent":  10,
			"tax_enabled":         true,
			"tax_percent":         "21",
		}
		s.mockCommands.EXPECT().SetPricing(gomock.Any(), s.sessionID, gomock.Any()).
			DoAndReturn(func(_ any, _ string, p pricing.Params) (*draft.Draft, error) {
				s.Equal(pricing.ModeVariable, p.Mode)
				s.True(p.BasePrice.Equal(decimal.NewFromInt(10)))
				s.True(p.PerGuestIncrement.Equal(decimal.NewFromInt(5)))
				s.True(p.PerDayIncrement.Equal(decimal.RequireFromString("2.5")))
				s.True(p.CommissionPercent.Equal(decimal.NewFromInt(10)))
				s.True(p.TaxPercent.Equal(decimal.NewFromInt(21)))
				s.True(p.Price.IsZero())
				return d, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.url("/pricing"), body)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: unknown mode is rejected before the command", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.url("/pricing"), map[string]any{"mode": "AUCTION"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, pricing.ErrUnknownMode.Error())
	})

	s.Run("error: malformed amount", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.url("/pricing"), map[string]any{"mode": "FIXED", "price": "twenty"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestSetDeliveryMethod
// ================================================================================

func (s *DraftHandlerTestSuite) TestSetDeliveryMethod() {
	d := builder.NewDraftBuilder().WithSessionID(s.sessionID).MustBuild()

	s.Run("success: reports registry clearing", func() {
		s.mockCommands.EXPECT().SetDeliveryMethod(gomock.Any(), s.sessionID, draft.DeliveryDirect).
			Return(&commands.DeliveryResult{Draft: d, RegistryCleared: true, URLsRemoved: 3}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.url("/delivery"), reqdto.DeliveryRequest{Method: "direct"})

		var body resdto.DeliveryChangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.RegistryCleared)
		s.EqualValues(3, body.URLsRemoved)
		s.Equal(s.sessionID, body.Draft.SessionID)
	})

	s.Run("error: unknown method", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.url("/delivery"), reqdto.DeliveryRequest{Method: "PIGEON"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, draft.ErrUnknownDeliveryMethod.Error())
	})
}

// ================================================================================
// TestChooseWelcomeTemplate
// ================================================================================

func (s *DraftHandlerTestSuite) TestChooseWelcomeTemplate() {
	d := builder.NewDraftBuilder().WithSessionID(s.sessionID).MustBuild()

	s.Run("success: explicit false selects the default template", func() {
		s.mockCommands.EXPECT().ChooseWelcomeTemplate(gomock.Any(), s.sessionID, false).Return(d, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.url("/welcome-email"), map[string]any{"use_custom_template": false})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: choice is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, s.url("/welcome-email"), map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestRegisterArtifact
// ================================================================================

func (s *DraftHandlerTestSuite) TestRegisterArtifact() {
	d := builder.NewDraftBuilder().WithSessionID(s.sessionID).MustBuild()
	ref := builder.CustomRef("welcome")

	s.Run("success: 201 with the merged ref", func() {
		s.mockCommands.EXPECT().RegisterArtifact(gomock.Any(), s.sessionID, gomock.Any()).
			DoAndReturn(func(_ any, _ string, req commands.RegisterArtifactRequest) (*commands.RegisterArtifactResult, error) {
				s.Equal("welcome", string(req.Kind))
				s.Equal("<p>hi</p>", req.Content)
				s.Nil(req.ID)
				return &commands.RegisterArtifactResult{Draft: d, Artifact: ref}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/artifacts"),
			reqdto.RegisterArtifactRequest{Kind: "WELCOME", Content: "<p>hi</p>"})

		var body resdto.RegisterArtifactResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(ref.ID.String(), body.Artifact.ID)
		s.Equal("custom", body.Artifact.Origin)
	})

	s.Run("error: unknown kind", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/artifacts"),
			reqdto.RegisterArtifactRequest{Kind: "footer", Content: "x"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "unknown template kind")
	})

	s.Run("error: duplicate artifact id is a conflict", func() {
		s.mockCommands.EXPECT().RegisterArtifact(gomock.Any(), s.sessionID, gomock.Any()).
			Return(nil, errs.Conflict(errors.New("artifact already exists"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/artifacts"),
			reqdto.RegisterArtifactRequest{Kind: "rebuy", Content: "x"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "artifact already exists")
	})
}

// ================================================================================
// TestPromote
// ================================================================================

func (s *DraftHandlerTestSuite) TestPromote() {
	reqBody := reqdto.PromoteRequest{Name: "Gold Plan"}

	s.Run("success: 201 with the saved configuration", func() {
		cfg := builder.NewSavedConfigBuilder().WithURL("Front desk", "https://example.com/front").MustBuild()
		s.mockPromotion.EXPECT().Promote(gomock.Any(), s.sessionID, commands.PromoteRequest{Name: "Gold Plan"}).
			Return(&commands.PromotionResult{Configuration: cfg, NewSessionID: "next", ArtifactsFreed: 2, URLsReleased: 1}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/promote"), reqBody)

		var body resdto.PromotionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("21.60", body.Configuration.Price.Breakdown.Final)
		s.Equal("next", body.NewSessionID)
		s.Equal(map[string]string{"Front desk": "https://example.com/front"}, body.Configuration.URLMap)
		httptest.AssertLocation(s.T(), rec, "/api/configurations/"+cfg.ID().String())
	})

	s.Run("error: incomplete draft lists missing dimensions", func() {
		incomplete := &commands.IncompleteError{Missing: []draft.Dimension{draft.DimWelcomeEmail, draft.DimFutureQR}}
		s.mockPromotion.EXPECT().Promote(gomock.Any(), s.sessionID, gomock.Any()).
			Return(nil, errs.Validation(incomplete)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/promote"), reqBody)

		s.Equal([]string{"welcome_email", "future_qr"}, httptest.AssertIncomplete(s.T(), rec))
	})

	s.Run("error: name is required", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/promote"), map[string]any{"description": "x"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: transaction failure maps to 503", func() {
		s.mockPromotion.EXPECT().Promote(gomock.Any(), s.sessionID, gomock.Any()).
			Return(nil, errs.Persistence(errors.New("commit failed"))).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, s.url("/promote"), reqBody)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "")
	})
}
