// Package ledger implements the group debt ledger and balance-netting engine.
//
// The engine is pure: every function computes from an already-materialized
// snapshot of share and settlement records for one group and holds no state of
// its own. The pipeline is
//
//	Aggregate → ApplySettlements → Clean → Resolve → FormatNet
//
// Aggregate and ApplySettlements work on raw float sums and may carry
// sub-cent residue; Clean is the single point where amounts are rounded to
// two decimals, so consumers must only read post-Clean values.
package ledger

import "math"

// Pair identifies a directed debt: Debtor owes Creditor.
type Pair struct {
	DebtorID   int64
	CreditorID int64
}

// DebtMap is a sparse debt matrix keyed by (debtor, creditor) pairs.
// Missing entries read as zero; there is no nested-map auto-vivification.
type DebtMap map[Pair]float64

// Get returns the amount debtor owes creditor, or zero if no entry exists.
func (d DebtMap) Get(debtorID, creditorID int64) float64 {
	return d[Pair{DebtorID: debtorID, CreditorID: creditorID}]
}

// Add accumulates amount onto the debtor→creditor entry.
func (d DebtMap) Add(debtorID, creditorID int64, amount float64) {
	d[Pair{DebtorID: debtorID, CreditorID: creditorID}] += amount
}

// ShareRecord is one expense share joined to its expense's payer.
type ShareRecord struct {
	DebtorID int64
	PayerID  int64
	Amount   float64
}

// SettlementRecord is a recorded out-of-band payment from payer to payee.
type SettlementRecord struct {
	PayerID int64
	PayeeID int64
	Amount  float64
}

// Edge is a single directed net obligation between two users.
type Edge struct {
	DebtorID   int64   `json:"debtor_id"`
	CreditorID int64   `json:"creditor_id"`
	Amount     float64 `json:"amount"`
}

// Aggregate folds share records into a raw pairwise debt map. Shares whose
// debtor is the expense's payer are self-shares (personal expenses) and
// contribute no interpersonal debt. Amounts are raw float sums; rounding is
// deferred to Clean.
func Aggregate(shares []ShareRecord) DebtMap {
	debts := make(DebtMap)
	for _, s := range shares {
		if s.DebtorID == s.PayerID {
			continue
		}
		debts.Add(s.DebtorID, s.PayerID, s.Amount)
	}
	return debts
}

// ApplySettlements subtracts each settlement from the payer→payee entry of
// debts and returns the same map. Subtracting onto a missing entry leaves a
// negative amount; that is intentional — it marks an overpaid directional
// debt, which Clean later drops. A settlement never reverse-credits the
// opposite direction or any unrelated pair.
func ApplySettlements(debts DebtMap, settlements []SettlementRecord) DebtMap {
	for _, s := range settlements {
		debts.Add(s.PayerID, s.PayeeID, -s.Amount)
	}
	return debts
}

// Clean returns a new map with every amount rounded to two decimals, keeping
// only entries whose rounded value is positive. This is the single point
// where float accumulation residue is reconciled.
func Clean(debts DebtMap) DebtMap {
	cleaned := make(DebtMap, len(debts))
	for pair, amount := range debts {
		if rounded := round2(amount); rounded > 0 {
			cleaned[pair] = rounded
		}
	}
	return cleaned
}

// round2 rounds to two decimal places.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
