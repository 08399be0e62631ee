package balance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallyhq/tally/internal/ledger"
)

type fakeStore struct {
	shares      []ledger.ShareRecord
	settlements []ledger.SettlementRecord
	names       map[int64]string
}

func (f *fakeStore) ListShareRecordsByGroupID(ctx context.Context, groupID int64) ([]ledger.ShareRecord, error) {
	return f.shares, nil
}

func (f *fakeStore) ListRecordsByGroupID(ctx context.Context, groupID int64) ([]ledger.SettlementRecord, error) {
	return f.settlements, nil
}

func (f *fakeStore) NamesByID(ctx context.Context, groupID int64) (map[int64]string, error) {
	return f.names, nil
}

func newService(store *fakeStore) *Service {
	return NewService(store, store, store)
}

func TestGroupBalances(t *testing.T) {
	// Alice paid 30 split three ways; Bob paid 15 split with Alice.
	store := &fakeStore{
		shares: []ledger.ShareRecord{
			{DebtorID: 1, PayerID: 1, Amount: 10},
			{DebtorID: 2, PayerID: 1, Amount: 10},
			{DebtorID: 3, PayerID: 1, Amount: 10},
			{DebtorID: 1, PayerID: 2, Amount: 7.5},
			{DebtorID: 2, PayerID: 2, Amount: 7.5},
		},
		names: map[int64]string{1: "alice", 2: "bob", 3: "carol"},
	}

	got, err := newService(store).GroupBalances(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), got.GroupID)
	require.Len(t, got.Edges, 2)

	// Bob's 10 to Alice nets against Alice's 7.50 to Bob.
	assert.Equal(t, &EdgeResponse{
		DebtorID: 2, DebtorName: "bob",
		CreditorID: 1, CreditorName: "alice",
		Amount: 2.5,
	}, got.Edges[0])
	assert.Equal(t, &EdgeResponse{
		DebtorID: 3, DebtorName: "carol",
		CreditorID: 1, CreditorName: "alice",
		Amount: 10,
	}, got.Edges[1])

	assert.Contains(t, got.Summary, "Bob owes:")
	assert.Contains(t, got.Summary, "Carol owes:")
	assert.NotEmpty(t, got.Detailed)
}

func TestGroupBalancesSettledUp(t *testing.T) {
	store := &fakeStore{
		shares: []ledger.ShareRecord{
			{DebtorID: 2, PayerID: 1, Amount: 10},
		},
		settlements: []ledger.SettlementRecord{
			{PayerID: 2, PayeeID: 1, Amount: 10},
		},
		names: map[int64]string{1: "alice", 2: "bob"},
	}

	got, err := newService(store).GroupBalances(context.Background(), 42)
	require.NoError(t, err)

	assert.Empty(t, got.Edges)
	assert.Equal(t, ledger.NoOutstandingBalances, got.Summary)
	assert.Equal(t, ledger.NoOutstandingBalances, got.Detailed)
}

func TestGroupBalancesSettlementReducesDebt(t *testing.T) {
	store := &fakeStore{
		shares: []ledger.ShareRecord{
			{DebtorID: 2, PayerID: 1, Amount: 20},
		},
		settlements: []ledger.SettlementRecord{
			{PayerID: 2, PayeeID: 1, Amount: 12.5},
		},
		names: map[int64]string{1: "alice", 2: "bob"},
	}

	got, err := newService(store).GroupBalances(context.Background(), 42)
	require.NoError(t, err)

	require.Len(t, got.Edges, 1)
	assert.Equal(t, 7.5, got.Edges[0].Amount)
}

func TestSettleOptions(t *testing.T) {
	store := &fakeStore{
		shares: []ledger.ShareRecord{
			{DebtorID: 2, PayerID: 1, Amount: 10},
			{DebtorID: 2, PayerID: 3, Amount: 4},
			{DebtorID: 1, PayerID: 3, Amount: 6},
		},
		names: map[int64]string{1: "alice", 2: "bob", 3: "carol"},
	}

	svc := newService(store)

	got, err := svc.SettleOptions(context.Background(), 42, 2)
	require.NoError(t, err)
	require.Len(t, got.Options, 2)
	assert.Equal(t, &SettleOption{CreditorID: 1, CreditorName: "alice", Amount: 10}, got.Options[0])
	assert.Equal(t, &SettleOption{CreditorID: 3, CreditorName: "carol", Amount: 4}, got.Options[1])

	// A user who owes nothing gets an empty, non-nil list.
	got, err = svc.SettleOptions(context.Background(), 42, 3)
	require.NoError(t, err)
	assert.NotNil(t, got.Options)
	assert.Empty(t, got.Options)
}
