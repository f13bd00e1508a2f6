package queries

import "context"

//go:generate mockgen -source=seller.go -destination=../../../tests/mock/queries/seller.go -package=queriesmock

type SellerQueries interface {
	// Unassigned lists sellers that hold no saved configuration.
	Unassigned(ctx context.Context) ([]*SellerView, error)
}

type SellerReadStore interface {
	ListUnassigned(ctx context.Context) ([]*SellerView, error)
}

type sellerQueriesImpl struct {
	readStore SellerReadStore
}

func NewSellerQueries(readStore SellerReadStore) SellerQueries {
	return &sellerQueriesImpl{readStore: readStore}
}

func (q *sellerQueriesImpl) Unassigned(ctx context.Context) ([]*SellerView, error) {
	sellers, err := q.readStore.ListUnassigned(ctx)
	if err != nil {
		return nil, err
	}
	if sellers == nil {
		sellers = []*SellerView{}
	}
	return sellers, nil
}
