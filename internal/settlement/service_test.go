package settlement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/ledger"
	"github.com/tallyhq/tally/internal/user"
)

type fakeStore struct {
	shares      []ledger.ShareRecord
	settlements []ledger.SettlementRecord
	created     []*CreateSettlementRequest
}

func (f *fakeStore) Create(ctx context.Context, req *CreateSettlementRequest) (*Settlement, error) {
	f.created = append(f.created, req)
	return &Settlement{
		ID:        int64(len(f.created)),
		GroupID:   req.GroupID,
		PayerID:   req.PayerID,
		PayeeID:   req.PayeeID,
		Amount:    req.Amount,
		CreatedAt: time.Now(),
	}, nil
}

func (f *fakeStore) ListByGroupID(ctx context.Context, groupID int64) ([]*Settlement, error) {
	return nil, nil
}

func (f *fakeStore) ListRecordsByGroupID(ctx context.Context, groupID int64) ([]ledger.SettlementRecord, error) {
	return f.settlements, nil
}

func (f *fakeStore) ListShareRecordsByGroupID(ctx context.Context, groupID int64) ([]ledger.ShareRecord, error) {
	return f.shares, nil
}

type fakeUsers map[int64]*user.User

func (f fakeUsers) GetByID(ctx context.Context, id int64) (*user.User, error) {
	u, ok := f[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func groupMembers() fakeUsers {
	return fakeUsers{
		1: {ID: 1, GroupID: 42, Username: "alice", Name: "alice"},
		2: {ID: 2, GroupID: 42, Username: "bob", Name: "bob"},
		3: {ID: 3, GroupID: 77, Username: "zed", Name: "zed"},
	}
}

func TestRecordRejectsInvalidRequests(t *testing.T) {
	store := &fakeStore{}
	svc := NewService(store, store, groupMembers())

	_, err := svc.Record(context.Background(), &CreateSettlementRequest{
		GroupID: 42, PayerID: 1, PayeeID: 1, Amount: 5,
	})
	assert.ErrorIs(t, err, ErrCannotSettleSelf)

	_, err = svc.Record(context.Background(), &CreateSettlementRequest{
		GroupID: 42, PayerID: 2, PayeeID: 1, Amount: 0,
	})
	assert.ErrorIs(t, err, ErrNonPositiveAmount)

	_, err = svc.Record(context.Background(), &CreateSettlementRequest{
		GroupID: 42, PayerID: 2, PayeeID: 3, Amount: 5,
	})
	assert.ErrorIs(t, err, user.ErrNotInGroup)

	assert.Empty(t, store.created)
}

func TestRecordRejectsWhenNothingOwed(t *testing.T) {
	// Alice owes Bob, not the other way around; a payment from Bob to Alice
	// has no debt to reduce.
	store := &fakeStore{
		shares: []ledger.ShareRecord{
			{DebtorID: 1, PayerID: 2, Amount: 10},
		},
	}
	svc := NewService(store, store, groupMembers())

	_, err := svc.Record(context.Background(), &CreateSettlementRequest{
		GroupID: 42, PayerID: 2, PayeeID: 1, Amount: 5,
	})
	assert.ErrorIs(t, err, ErrNothingOwed)
	assert.Empty(t, store.created)
}

func TestRecordRejectsOverpayment(t *testing.T) {
	// Bob owes 20 minus the 12.50 already settled: 7.50 outstanding.
	store := &fakeStore{
		shares: []ledger.ShareRecord{
			{DebtorID: 2, PayerID: 1, Amount: 20},
		},
		settlements: []ledger.SettlementRecord{
			{PayerID: 2, PayeeID: 1, Amount: 12.5},
		},
	}
	svc := NewService(store, store, groupMembers())

	_, err := svc.Record(context.Background(), &CreateSettlementRequest{
		GroupID: 42, PayerID: 2, PayeeID: 1, Amount: 7.51,
	})
	assert.ErrorIs(t, err, ErrExceedsDebt)
	assert.Empty(t, store.created)
}

func TestRecordAcceptsExactOutstandingAmount(t *testing.T) {
	// Mutual debts net to 7.50 from Bob to Alice; paying exactly that clears
	// the pair.
	store := &fakeStore{
		shares: []ledger.ShareRecord{
			{DebtorID: 2, PayerID: 1, Amount: 10},
			{DebtorID: 1, PayerID: 2, Amount: 2.5},
		},
	}
	svc := NewService(store, store, groupMembers())

	got, err := svc.Record(context.Background(), &CreateSettlementRequest{
		GroupID: 42, PayerID: 2, PayeeID: 1, Amount: 7.5,
	})
	require.NoError(t, err)
	require.Len(t, store.created, 1)
	assert.Equal(t, 7.5, got.Amount)
	assert.Equal(t, "bob", got.PayerName)
	assert.Equal(t, "alice", got.PayeeName)
}
