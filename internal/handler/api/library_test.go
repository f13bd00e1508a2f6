//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"pass-config-engine/internal/domain/draft"
	"pass-config-engine/internal/domain/pricing"
	"pass-config-engine/internal/handler/api"
	reqdto "pass-config-engine/internal/handler/dto/request"
	resdto "pass-config-engine/internal/handler/dto/response"
	"pass-config-engine/internal/handler/middleware"
	"pass-config-engine/internal/pkg/errs"
	"pass-config-engine/internal/usecase/commands"
	"pass-config-engine/internal/usecase/queries"
	"pass-config-engine/tests/common/builder"
	"pass-config-engine/tests/common/httptest"
	commandsmock "pass-config-engine/tests/mock/commands"
	queriesmock "pass-config-engine/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LibraryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLibraryCommands
	mockQueries  *queriesmock.MockLibraryQueries
	handler      *api.LibraryHandler
}

func (s *LibraryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLibraryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLibraryQueries(s.mockCtrl)
	s.handler = api.NewLibraryHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/configurations", s.handler.List)
	s.router.POST("/configurations/bulk-delete", s.handler.BulkDelete)
	s.router.GET("/configurations/:id", s.handler.Get)
	s.router.PUT("/configurations/:id", s.handler.UpdateMetadata)
	s.router.DELETE("/configurations/:id", s.handler.Delete)
	s.router.POST("/configurations/:id/assign", s.handler.Assign)
	s.router.POST("/configurations/:id/clone", s.handler.Clone)
}

func (s *LibraryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLibraryHandlerSuite(t *testing.T) {
	suite.Run(t, new(LibraryHandlerTestSuite))
}

// ================================================================================
// TestList
// ================================================================================

func (s *LibraryHandlerTestSuite) TestList() {
	s.Run("success: filters and ordering reach the query", func() {
		item := &queries.ConfigurationListItem{
			ID:             uuid.New(),
			Name:           "Gold Plan",
			PricingMode:    pricing.ModeFixed,
			DeliveryMethod: draft.DeliveryURLs,
			FinalPrice:     decimal.RequireFromString("21.6"),
			CreatedAt:      time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		}
		s.mockQueries.EXPECT().
			List(gomock.Any(), gomock.Any(), queries.LibrarySort{Field: queries.SortByPrice, Desc: true}, 2, 5).
			DoAndReturn(func(_ any, f queries.LibraryFilter, _ queries.LibrarySort, page, size int) (*queries.Page[*queries.ConfigurationListItem], error) {
				s.Equal("gold", f.SearchText)
				s.Require().NotNil(f.PricingMode)
				s.Equal(pricing.ModeFixed, *f.PricingMode)
				s.Require().NotNil(f.Assigned)
				s.False(*f.Assigned)
				return &queries.Page[*queries.ConfigurationListItem]{Items: []*queries.ConfigurationListItem{item}, Page: page, PageSize: size, Total: 6}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/configurations?q=gold&pricing_mode=FIXED&assigned=false&order_by=price%20desc&page=2&page_size=5", nil)

		var body resdto.ConfigurationPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal("21.60", body.Items[0].FinalPrice)
		s.EqualValues(6, body.Total)
		s.False(body.HasNext)
	})

	s.Run("error: 400 on bad query values without calling the query", func() {
		cases := []struct {
			name  string
			query string
			msg   string
		}{
			{name: "unknown sort field", query: "order_by=seller", msg: "order_by supports"},
			{name: "unknown pricing mode", query: "pricing_mode=auction", msg: pricing.ErrUnknownMode.Error()},
			{name: "unknown delivery method", query: "delivery_method=fax", msg: draft.ErrUnknownDeliveryMethod.Error()},
			{name: "negative page", query: "page=-1", msg: "Invalid query"},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/configurations?"+tc.query, nil)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})

	s.Run("success: zero paging means unset", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), queries.LibraryFilter{}, queries.DefaultLibrarySort, 0, 0).
			Return(&queries.Page[*queries.ConfigurationListItem]{Page: 1, PageSize: queries.DefaultPageSize}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/configurations?page=0&page_size=0", nil)

		var body resdto.ConfigurationPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(queries.DefaultPageSize, body.PageSize)
		s.Empty(body.Items)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *LibraryHandlerTestSuite) TestGet() {
	cfg := builder.NewSavedConfigBuilder().MustBuild()

	s.Run("success", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), cfg.ID()).Return(cfg, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/configurations/"+cfg.ID().String(), nil)

		var body resdto.ConfigurationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Gold Plan", body.Name)
		s.Equal("FIXED", body.PricingMode)
		s.Equal(4, body.Price.Guests)
		s.Equal(1, body.Price.Days)
		s.Nil(body.AssignedSellerID)
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/configurations/not-a-uuid", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: unknown id", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().Get(gomock.Any(), id).
			Return(nil, errs.NotFound(queries.ErrConfigurationNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/configurations/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "configuration not found")
	})
}

// ================================================================================
// TestUpdateMetadata
// ================================================================================

func (s *LibraryHandlerTestSuite) TestUpdateMetadata() {
	cfg := builder.NewSavedConfigBuilder().WithName("Platinum").MustBuild()

	s.Run("success", func() {
		s.mockCommands.EXPECT().UpdateMetadata(gomock.Any(), cfg.ID(), "Platinum", "weekend").Return(cfg, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/configurations/"+cfg.ID().String(),
			reqdto.UpdateConfigurationRequest{Name: "Platinum", Description: "weekend"})

		var body resdto.ConfigurationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Platinum", body.Name)
	})

	s.Run("error: empty name", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/configurations/"+cfg.ID().String(),
			reqdto.UpdateConfigurationRequest{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *LibraryHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/configurations/"+id.String(), nil)
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: already gone", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).
			Return(errs.NotFound(queries.ErrConfigurationNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/configurations/"+id.String(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "")
	})
}

// ================================================================================
// TestBulkDelete
// ================================================================================

func (s *LibraryHandlerTestSuite) TestBulkDelete() {
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	s.Run("success: reports the number removed", func() {
		s.mockCommands.EXPECT().BulkDelete(gomock.Any(), ids).Return(2, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/configurations/bulk-delete",
			reqdto.BulkDeleteRequest{IDs: ids})

		var body resdto.BulkDeleteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.Deleted)
	})

	s.Run("error: empty id list", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/configurations/bulk-delete",
			map[string]any{"ids": []string{}})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestAssign
// ================================================================================

func (s *LibraryHandlerTestSuite) TestAssign() {
	cfg := builder.NewSavedConfigBuilder().MustBuild()
	sellerID := uuid.New()
	path := "/configurations/" + cfg.ID().String() + "/assign"

	s.Run("success", func() {
		s.mockCommands.EXPECT().Assign(gomock.Any(), cfg.ID(), sellerID).Return(cfg, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqdto.AssignRequest{SellerID: sellerID})
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: seller already holds a configuration", func() {
		s.mockCommands.EXPECT().Assign(gomock.Any(), cfg.ID(), sellerID).
			Return(nil, errs.Conflict(commands.ErrSellerAlreadyAssigned)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqdto.AssignRequest{SellerID: sellerID})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, commands.ErrSellerAlreadyAssigned.Error())
	})

	s.Run("error: unknown seller", func() {
		s.mockCommands.EXPECT().Assign(gomock.Any(), cfg.ID(), sellerID).
			Return(nil, errs.NotFound(commands.ErrSellerNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqdto.AssignRequest{SellerID: sellerID})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "seller not found")
	})

	s.Run("error: seller id missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, map[string]any{})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

// ================================================================================
// TestClone
// ================================================================================

func (s *LibraryHandlerTestSuite) TestClone() {
	id := uuid.New()
	d := builder.NewDraftBuilder().Complete().MustBuild()

	s.mockCommands.EXPECT().Clone(gomock.Any(), id).Return(d, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/configurations/"+id.String()+"/clone", nil)

	var body resdto.DraftResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
	s.True(body.Complete)
	httptest.AssertLocation(s.T(), rec, "/api/drafts/"+d.SessionID())
}
