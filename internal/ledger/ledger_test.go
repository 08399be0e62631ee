package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	alice int64 = 1
	bob   int64 = 2
	carol int64 = 3
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name   string
		shares []ShareRecord
		want   DebtMap
	}{
		{
			name: "payer self-share contributes nothing",
			shares: []ShareRecord{
				{DebtorID: alice, PayerID: alice, Amount: 10},
				{DebtorID: bob, PayerID: alice, Amount: 10},
				{DebtorID: carol, PayerID: alice, Amount: 10},
			},
			want: DebtMap{
				{DebtorID: bob, CreditorID: alice}:   10,
				{DebtorID: carol, CreditorID: alice}: 10,
			},
		},
		{
			name: "repeated shares accumulate",
			shares: []ShareRecord{
				{DebtorID: bob, PayerID: alice, Amount: 5},
				{DebtorID: bob, PayerID: alice, Amount: 7.5},
			},
			want: DebtMap{
				{DebtorID: bob, CreditorID: alice}: 12.5,
			},
		},
		{
			name: "pure personal expense yields empty map",
			shares: []ShareRecord{
				{DebtorID: alice, PayerID: alice, Amount: 42},
			},
			want: DebtMap{},
		},
		{
			name:   "no shares",
			shares: nil,
			want:   DebtMap{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(tt.shares))
		})
	}
}

func TestApplySettlements(t *testing.T) {
	t.Run("subtracts in payer to payee direction", func(t *testing.T) {
		debts := DebtMap{{DebtorID: alice, CreditorID: bob}: 10}
		got := ApplySettlements(debts, []SettlementRecord{
			{PayerID: alice, PayeeID: bob, Amount: 4},
		})
		assert.InDelta(t, 6, got.Get(alice, bob), 1e-9)
	})

	t.Run("decreases by exactly the settlement amount", func(t *testing.T) {
		debts := DebtMap{{DebtorID: alice, CreditorID: bob}: 20.37}
		before := debts.Get(alice, bob)
		ApplySettlements(debts, []SettlementRecord{{PayerID: alice, PayeeID: bob, Amount: 5.12}})
		assert.InDelta(t, 5.12, before-debts.Get(alice, bob), 1e-9)
	})

	t.Run("subtracts onto a zero baseline", func(t *testing.T) {
		debts := make(DebtMap)
		ApplySettlements(debts, []SettlementRecord{{PayerID: alice, PayeeID: bob, Amount: 3}})
		assert.InDelta(t, -3, debts.Get(alice, bob), 1e-9)
	})

	t.Run("does not touch the reverse direction", func(t *testing.T) {
		debts := DebtMap{
			{DebtorID: alice, CreditorID: bob}: 10,
			{DebtorID: bob, CreditorID: alice}: 8,
		}
		ApplySettlements(debts, []SettlementRecord{{PayerID: alice, PayeeID: bob, Amount: 10}})
		assert.InDelta(t, 8, debts.Get(bob, alice), 1e-9)
	})
}

func TestClean(t *testing.T) {
	dirty := DebtMap{
		{DebtorID: alice, CreditorID: bob}:   10.004999,
		{DebtorID: bob, CreditorID: carol}:   0.004,
		{DebtorID: carol, CreditorID: alice}: -3,
		{DebtorID: carol, CreditorID: bob}:   0,
	}

	cleaned := Clean(dirty)

	assert.Equal(t, DebtMap{
		{DebtorID: alice, CreditorID: bob}: 10.0,
	}, cleaned)
	// Input is left alone.
	assert.InDelta(t, -3, dirty.Get(carol, alice), 1e-9)
}

func TestResolve(t *testing.T) {
	t.Run("mutual debts collapse to single edge", func(t *testing.T) {
		cleaned := DebtMap{
			{DebtorID: alice, CreditorID: bob}: 20,
			{DebtorID: bob, CreditorID: alice}: 5,
		}
		edges := Resolve(cleaned)
		require.Len(t, edges, 1)
		assert.Equal(t, Edge{DebtorID: alice, CreditorID: bob, Amount: 15}, edges[0])
	})

	t.Run("equal mutual debts cancel fully", func(t *testing.T) {
		cleaned := DebtMap{
			{DebtorID: alice, CreditorID: bob}: 12.5,
			{DebtorID: bob, CreditorID: alice}: 12.5,
		}
		assert.Empty(t, Resolve(cleaned))
	})

	t.Run("one-way debt passes through", func(t *testing.T) {
		cleaned := DebtMap{{DebtorID: carol, CreditorID: alice}: 7.25}
		edges := Resolve(cleaned)
		require.Len(t, edges, 1)
		assert.Equal(t, Edge{DebtorID: carol, CreditorID: alice, Amount: 7.25}, edges[0])
	})

	t.Run("at most one edge per unordered pair", func(t *testing.T) {
		cleaned := DebtMap{
			{DebtorID: alice, CreditorID: bob}:   20,
			{DebtorID: bob, CreditorID: alice}:   5,
			{DebtorID: bob, CreditorID: carol}:   3,
			{DebtorID: carol, CreditorID: bob}:   9,
			{DebtorID: alice, CreditorID: carol}: 1,
		}
		edges := Resolve(cleaned)

		seen := make(map[Pair]bool)
		for _, e := range edges {
			key := canonicalPair(Pair{DebtorID: e.DebtorID, CreditorID: e.CreditorID})
			assert.False(t, seen[key], "pair %v emitted twice", key)
			seen[key] = true
			assert.Greater(t, e.Amount, 0.0)
		}
		assert.Len(t, edges, 3)
	})

	t.Run("idempotent and non-mutating", func(t *testing.T) {
		cleaned := DebtMap{
			{DebtorID: alice, CreditorID: bob}: 20,
			{DebtorID: bob, CreditorID: alice}: 5,
			{DebtorID: carol, CreditorID: bob}: 4,
		}
		first := Resolve(cleaned)
		second := Resolve(cleaned)
		assert.Equal(t, first, second)
		assert.InDelta(t, 20, cleaned.Get(alice, bob), 1e-9)
		assert.InDelta(t, 5, cleaned.Get(bob, alice), 1e-9)
	})

	t.Run("total magnitude does not exceed uncollapsed view", func(t *testing.T) {
		cleaned := DebtMap{
			{DebtorID: alice, CreditorID: bob}:   18,
			{DebtorID: bob, CreditorID: alice}:   6,
			{DebtorID: carol, CreditorID: alice}: 2,
		}
		var before float64
		for _, amount := range cleaned {
			before += amount
		}
		var after float64
		for _, e := range Resolve(cleaned) {
			after += e.Amount
		}
		assert.Less(t, after, before)
	})
}

func TestFullPipelineScenarios(t *testing.T) {
	t.Run("equal split of 30 paid by alice for three", func(t *testing.T) {
		shares := []ShareRecord{
			{DebtorID: alice, PayerID: alice, Amount: 10},
			{DebtorID: bob, PayerID: alice, Amount: 10},
			{DebtorID: carol, PayerID: alice, Amount: 10},
		}
		cleaned := Clean(Aggregate(shares))
		assert.Equal(t, DebtMap{
			{DebtorID: bob, CreditorID: alice}:   10.00,
			{DebtorID: carol, CreditorID: alice}: 10.00,
		}, cleaned)
	})

	t.Run("settlement clears debt down to no balances", func(t *testing.T) {
		debts := DebtMap{{DebtorID: alice, CreditorID: bob}: 10}
		debts = ApplySettlements(debts, []SettlementRecord{
			{PayerID: alice, PayeeID: bob, Amount: 10},
		})
		cleaned := Clean(debts)
		assert.Empty(t, cleaned)

		edges := Resolve(cleaned)
		assert.Empty(t, edges)
		assert.Equal(t, NoOutstandingBalances, FormatNet(edges, nil))
	})
}

func TestFormatNet(t *testing.T) {
	names := map[int64]string{alice: "alice", bob: "bob", carol: "carol"}

	t.Run("blocks grouped by debtor with blank separator", func(t *testing.T) {
		edges := []Edge{
			{DebtorID: alice, CreditorID: bob, Amount: 15},
			{DebtorID: alice, CreditorID: carol, Amount: 2.5},
			{DebtorID: bob, CreditorID: carol, Amount: 1},
		}
		want := "Alice owes:\n" +
			"  • Bob – $15.00\n" +
			"  • Carol – $2.50\n" +
			"\n" +
			"Bob owes:\n" +
			"  • Carol – $1.00"
		assert.Equal(t, want, FormatNet(edges, names))
	})

	t.Run("unknown user falls back to id", func(t *testing.T) {
		edges := []Edge{{DebtorID: 99, CreditorID: alice, Amount: 1}}
		assert.Equal(t, "99 owes:\n  • Alice – $1.00", FormatNet(edges, names))
	})

	t.Run("empty list yields fixed sentence", func(t *testing.T) {
		assert.Equal(t, NoOutstandingBalances, FormatNet(nil, names))
	})
}

func TestFormatDetailed(t *testing.T) {
	names := map[int64]string{alice: "ALICE", bob: "bob"}
	cleaned := DebtMap{
		{DebtorID: alice, CreditorID: bob}: 20,
		{DebtorID: bob, CreditorID: alice}: 5,
	}
	want := "Alice owes:\n" +
		"  • Bob – $20.00\n" +
		"Bob owes:\n" +
		"  • Alice – $5.00"
	assert.Equal(t, want, FormatDetailed(cleaned, names))

	assert.Equal(t, NoOutstandingBalances, FormatDetailed(DebtMap{}, names))
}
