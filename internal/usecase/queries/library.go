package queries

import (
	"context"
	"math"
	"strings"

	"pass-config-engine/internal/domain/savedconfig"
	"pass-config-engine/internal/infra"
	"pass-config-engine/internal/pkg/errs"

	"github.com/google/uuid"
	"go.einride.tech/aip/ordering"
)

var (
	ErrConfigurationNotFound = errs.New("configuration not found")
	ErrInvalidOrderBy        = errs.New("order_by supports one of name, created_at, price")
	ErrPageOutOfRange        = errs.New("page is past the end of any listing")
)

//go:generate mockgen -source=library.go -destination=../../../tests/mock/queries/library.go -package=queriesmock

type LibraryQueries interface {
	List(ctx context.Context, filter LibraryFilter, sort LibrarySort, page, pageSize int) (*Page[*ConfigurationListItem], error)
	Get(ctx context.Context, id uuid.UUID) (*savedconfig.SavedConfiguration, error)
}

type SavedConfigReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*savedconfig.SavedConfiguration, error)
	List(ctx context.Context, filter LibraryFilter, sort LibrarySort, limit, offset int32) ([]*ConfigurationListItem, int64, error)
}

type libraryQueriesImpl struct {
	readStore SavedConfigReadStore
	limits    PageLimits
}

func NewLibraryQueries(readStore SavedConfigReadStore, limits PageLimits) LibraryQueries {
	return &libraryQueriesImpl{readStore: readStore, limits: limits}
}

func (q *libraryQueriesImpl) List(ctx context.Context, filter LibraryFilter, sort LibrarySort, page, pageSize int) (*Page[*ConfigurationListItem], error) {
	page, pageSize = q.limits.normalize(page, pageSize)
	if sort.Field == "" {
		sort = DefaultLibrarySort
	}
	filter.SearchText = strings.TrimSpace(filter.SearchText)

	if page-1 > math.MaxInt32/pageSize {
		return nil, errs.Validation(ErrPageOutOfRange)
	}
	offset := (page - 1) * pageSize
	items, total, err := q.readStore.List(ctx, filter, sort, int32(pageSize), int32(offset))
	if err != nil {
		return nil, err
	}
	return &Page[*ConfigurationListItem]{Items: items, Page: page, PageSize: pageSize, Total: total}, nil
}

func (q *libraryQueriesImpl) Get(ctx context.Context, id uuid.UUID) (*savedconfig.SavedConfiguration, error) {
	return findConfiguration(ctx, q.readStore, id)
}

func findConfiguration(ctx context.Context, store SavedConfigReadStore, id uuid.UUID) (*savedconfig.SavedConfiguration, error) {
	cfg, err := store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.NotFound(ErrConfigurationNotFound)
		}
		return nil, err
	}
	return cfg, nil
}

// ParseLibrarySort reads an AIP-132 order_by such as "price desc". Only the
// first field is honoured.
func ParseLibrarySort(orderBy string) (LibrarySort, error) {
	if strings.TrimSpace(orderBy) == "" {
		return DefaultLibrarySort, nil
	}

	var ob ordering.OrderBy
	if err := ob.UnmarshalString(orderBy); err != nil {
		return LibrarySort{}, errs.Validation(errs.Wrap(ErrInvalidOrderBy, err.Error()))
	}
	if err := ob.ValidateForPaths(string(SortByName), string(SortByCreatedAt), string(SortByPrice)); err != nil {
		return LibrarySort{}, errs.Validation(ErrInvalidOrderBy)
	}
	if len(ob.Fields) == 0 {
		return DefaultLibrarySort, nil
	}
	f := ob.Fields[0]
	return LibrarySort{Field: SortField(f.Path), Desc: f.Desc}, nil
}
