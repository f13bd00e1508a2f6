package queries

import (
	"context"

	"pass-config-engine/internal/domain/tempurl"
	"pass-config-engine/internal/usecase/shared"
)

//go:generate mockgen -source=tempurl.go -destination=../../../tests/mock/queries/tempurl.go -package=queriesmock

type TempURLQueries interface {
	List(ctx context.Context, sessionID string) ([]*tempurl.URL, error)
}

type tempURLQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewTempURLQueries(uow shared.UnitOfWork) TempURLQueries {
	return &tempURLQueriesImpl{uow: uow}
}

func (q *tempURLQueriesImpl) List(ctx context.Context, sessionID string) ([]*tempurl.URL, error) {
	var urls []*tempurl.URL
	err := q.uow.WithDB(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		urls, err = tx.URLs().ListBySession(ctx, tx.DB(), sessionID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return urls, nil
}
