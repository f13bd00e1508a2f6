//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"pass-config-engine/internal/domain/pricing"
	"pass-config-engine/internal/handler/api"
	reqdto "pass-config-engine/internal/handler/dto/request"
	resdto "pass-config-engine/internal/handler/dto/response"
	"pass-config-engine/internal/handler/middleware"
	"pass-config-engine/internal/pkg/errs"
	"pass-config-engine/internal/usecase/queries"
	"pass-config-engine/tests/common/builder"
	"pass-config-engine/tests/common/httptest"
	queriesmock "pass-config-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PricingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockPricing *queriesmock.MockPricingQueries
	mockSellers *queriesmock.MockSellerQueries
}

func (s *PricingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockPricing = queriesmock.NewMockPricingQueries(s.mockCtrl)
	s.mockSellers = queriesmock.NewMockSellerQueries(s.mockCtrl)

	ph := api.NewPricingHandler(s.mockPricing)
	sh := api.NewSellerHandler(s.mockSellers)
	s.router.GET("/drafts/:sessionId/pricing/preview", ph.Preview)
	s.router.POST("/pricing/quote", ph.Quote)
	s.router.GET("/sellers/unassigned", sh.Unassigned)
}

func (s *PricingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPricingHandlerSuite(t *testing.T) {
	suite.Run(t, new(PricingHandlerTestSuite))
}

func (s *PricingHandlerTestSuite) TestPreview() {
	params := builder.GoldPlanPricing()
	matrix, err := pricing.PreviewMatrix(pricing.NewDefaultCalculator(), params, 2, 3)
	s.Require().NoError(err)

	s.Run("success: every cell is rounded for display", func() {
		s.mockPricing.EXPECT().Preview(gomock.Any(), "session-1").Return(&queries.PricePreview{
			SessionID:     "session-1",
			Params:        params,
			Matrix:        matrix,
			DefaultGuests: 1,
			DefaultDays:   1,
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/drafts/session-1/pricing/preview", nil)

		var body resdto.PricePreviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Rows, 2)
		s.Require().Len(body.Rows[0], 3)
		s.Equal("21.60", body.Rows[1][2].Price)
		s.Equal("FIXED", body.Pricing.Mode)
	})

	s.Run("error: pricing not configured", func() {
		s.mockPricing.EXPECT().Preview(gomock.Any(), "session-1").
			Return(nil, errs.Validation(pricing.ErrModeNotSet)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/drafts/session-1/pricing/preview", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, pricing.ErrModeNotSet.Error())
	})
}

func (s *PricingHandlerTestSuite) TestQuote() {
	configID := uuid.New()
	breakdown, err := pricing.NewDefaultCalculator().Calculate(builder.GoldPlanPricing(), 3, 2)
	s.Require().NoError(err)

	s.Run("success", func() {
		s.mockPricing.EXPECT().Quote(gomock.Any(), queries.QuoteRequest{ConfigurationID: configID, Guests: 3, Days: 2}).
			Return(&queries.Quote{ConfigurationID: configID, Guests: 3, Days: 2, Breakdown: breakdown}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/pricing/quote",
			reqdto.QuoteRequest{ConfigurationID: configID, Guests: 3, Days: 2})

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(configID.String(), body.ConfigurationID)
		s.Equal("21.60", body.Breakdown.Final)
	})

	s.Run("error: quantities above the configured range", func() {
		s.mockPricing.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, errs.Validation(queries.ErrQuantityOutOfRange)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/pricing/quote",
			reqdto.QuoteRequest{ConfigurationID: configID, Guests: 11, Days: 1})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "exceed the configuration limits")
	})

	s.Run("error: zero guests rejected at binding", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/pricing/quote",
			map[string]any{"configuration_id": configID.String(), "guests": 0, "days": 1})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *PricingHandlerTestSuite) TestUnassignedSellers() {
	seller := &queries.SellerView{
		ID:        uuid.New(),
		Name:      "North Gate",
		Email:     "north@example.com",
		CreatedAt: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
	}
	s.mockSellers.EXPECT().Unassigned(gomock.Any()).Return([]*queries.SellerView{seller}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/sellers/unassigned", nil)

	var body struct {
		Sellers []resdto.SellerResponse `json:"sellers"`
	}
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body.Sellers, 1)
	s.Equal("North Gate", body.Sellers[0].Name)
}
