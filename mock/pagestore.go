package mock

import (
	"context"

	"github.com/fwojciec/sitereport"
)

var _ sitereport.PageStore = (*PageStore)(nil)

// PageStore is a mock implementation of sitereport.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, page *sitereport.PageRecord) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, page *sitereport.PageRecord) error {
	return s.SaveFn(ctx, page)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}
