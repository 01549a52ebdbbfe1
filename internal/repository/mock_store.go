package repository

import (
	"context"

	"go.uber.org/mock/gomock"
)

// MockStore is a Store for tests. ExecTx runs fn against the embedded
// MockQuerier, so expectations for transactional queries are set the same
// way as for plain ones.
type MockStore struct {
	*MockQuerier

	// Transactions counts ExecTx calls.
	Transactions int
}

func NewMockStore(ctrl *gomock.Controller) *MockStore {
	return &MockStore{MockQuerier: NewMockQuerier(ctrl)}
}

func (m *MockStore) ExecTx(ctx context.Context, fn func(Querier) error) error {
	m.Transactions++
	return fn(m.MockQuerier)
}

var _ Store = (*MockStore)(nil)
