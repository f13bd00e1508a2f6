//go:build unit

package queries

import (
	"context"
	"io"
	"log/slog"
	"math"
	"testing"

	"pass-config-engine/internal/domain/pricing"
	"pass-config-engine/internal/domain/savedconfig"
	"pass-config-engine/internal/infra"
	"pass-config-engine/internal/pkg/errs"
	"pass-config-engine/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSavedConfigReadStore struct {
	mock.Mock
}

func (m *MockSavedConfigReadStore) FindByID(ctx context.Context, id uuid.UUID) (*savedconfig.SavedConfiguration, error) {
	args := m.Called(ctx, id)
	cfg, _ := args.Get(0).(*savedconfig.SavedConfiguration)
	return cfg, args.Error(1)
}

func (m *MockSavedConfigReadStore) List(ctx context.Context, filter LibraryFilter, sort LibrarySort, limit, offset int32) ([]*ConfigurationListItem, int64, error) {
	args := m.Called(ctx, filter, sort, limit, offset)
	items, _ := args.Get(0).([]*ConfigurationListItem)
	return items, args.Get(1).(int64), args.Error(2)
}

func goldPlanConfig(t *testing.T) *savedconfig.SavedConfiguration {
	t.Helper()
	d := builder.NewDraftBuilder().Complete().MustBuild()
	cfg, err := savedconfig.FromDraft(d, "Gold Plan", "", nil, pricing.NewDefaultCalculator(), d.UpdatedAt())
	require.NoError(t, err)
	return cfg
}

func TestLibraryList(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		sort       LibrarySort
		wantLimit  int32
		wantOffset int32
		wantSort   LibrarySort
	}{
		{name: "defaults", wantLimit: 20, wantOffset: 0, wantSort: DefaultLibrarySort},
		{name: "third page", page: 3, pageSize: 10, wantLimit: 10, wantOffset: 20, wantSort: DefaultLibrarySort},
		{name: "page size capped", page: 1, pageSize: 500, wantLimit: 100, wantOffset: 0, wantSort: DefaultLibrarySort},
		{
			name:      "explicit sort kept",
			page:      1,
			sort:      LibrarySort{Field: SortByPrice},
			wantLimit: 20,
			wantSort:  LibrarySort{Field: SortByPrice},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockSavedConfigReadStore)
			filter := LibraryFilter{SearchText: "gold"}
			items := []*ConfigurationListItem{{ID: uuid.New(), Name: "Gold Plan"}}
			store.On("List", mock.Anything, filter, tt.wantSort, tt.wantLimit, tt.wantOffset).Return(items, int64(45), nil)

			q := NewLibraryQueries(store, PageLimits{Default: 20, Max: 100})
			page, err := q.List(context.Background(), LibraryFilter{SearchText: "  gold "}, tt.sort, tt.page, tt.pageSize)

			require.NoError(t, err)
			assert.Equal(t, items, page.Items)
			assert.EqualValues(t, 45, page.Total)
			assert.Equal(t, int(tt.wantLimit), page.PageSize)
			store.AssertExpectations(t)
		})
	}
}

func TestLibraryListRejectsOffsetOverflow(t *testing.T) {
	store := new(MockSavedConfigReadStore)
	q := NewLibraryQueries(store, PageLimits{Default: 20, Max: 100})

	_, err := q.List(context.Background(), LibraryFilter{}, LibrarySort{}, 30000000, 100)
	assert.True(t, errs.Is(err, ErrPageOutOfRange), "got %v", err)
	assert.True(t, errs.Is(err, errs.ErrValidation))
	store.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)

	t.Run("last addressable page still lists", func(t *testing.T) {
		page := math.MaxInt32/100 + 1
		store.On("List", mock.Anything, LibraryFilter{}, DefaultLibrarySort, int32(100), int32((page-1)*100)).
			Return([]*ConfigurationListItem{}, int64(0), nil)

		_, err := q.List(context.Background(), LibraryFilter{}, LibrarySort{}, page, 100)
		require.NoError(t, err)
		store.AssertExpectations(t)
	})
}

func TestPageHasNext(t *testing.T) {
	assert.True(t, Page[int]{Page: 1, PageSize: 20, Total: 21}.HasNext())
	assert.False(t, Page[int]{Page: 2, PageSize: 20, Total: 40}.HasNext())
	assert.False(t, Page[int]{Page: 1, PageSize: 20, Total: 0}.HasNext())
}

func TestLibraryGet(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := goldPlanConfig(t)

	tests := []struct {
		name     string
		retCfg   *savedconfig.SavedConfiguration
		retErr   error
		wantErr  error
		wantName string
	}{
		{name: "found", retCfg: cfg, wantName: "Gold Plan"},
		{
			name:    "not found",
			retErr:  infra.WrapRepoErr(logger, infra.KindNotFound, "configuration not found", nil),
			wantErr: ErrConfigurationNotFound,
		},
		{
			name:    "database failure",
			retErr:  infra.WrapRepoErr(logger, infra.KindDBFailure, "query failed", assert.AnError),
			wantErr: errs.ErrPersistence,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockSavedConfigReadStore)
			store.On("FindByID", mock.Anything, cfg.ID()).Return(tt.retCfg, tt.retErr)

			got, err := NewLibraryQueries(store, PageLimits{}).Get(context.Background(), cfg.ID())

			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, got.Name())
		})
	}
}

func TestParseLibrarySort(t *testing.T) {
	tests := []struct {
		in      string
		want    LibrarySort
		wantErr bool
	}{
		{in: "", want: DefaultLibrarySort},
		{in: "name", want: LibrarySort{Field: SortByName}},
		{in: "price desc", want: LibrarySort{Field: SortByPrice, Desc: true}},
		{in: "created_at asc", want: LibrarySort{Field: SortByCreatedAt}},
		{in: "assigned_seller_id", wantErr: true},
		{in: "name sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLibrarySort(tt.in)
			if tt.wantErr {
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
