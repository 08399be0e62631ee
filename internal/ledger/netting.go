package ledger

import "sort"

// Resolve collapses each reciprocal pair of cleaned debts into at most one
// directed edge. For an unordered pair {A, B} with amounts amt (A→B) and rev
// (B→A), the larger side survives with the rounded difference; exact ties
// cancel with no edge. Each unordered pair is processed exactly once using a
// canonical (lower id first) key, so it does not matter which direction is
// encountered first. The input map is not mutated, and pairs are visited in
// sorted canonical order so the output is deterministic — callers should
// still treat edge order as an implementation detail.
func Resolve(cleaned DebtMap) []Edge {
	canonical := make(map[Pair]struct{}, len(cleaned))
	for pair := range cleaned {
		canonical[canonicalPair(pair)] = struct{}{}
	}

	pairs := make([]Pair, 0, len(canonical))
	for pair := range canonical {
		pairs = append(pairs, pair)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].DebtorID != pairs[j].DebtorID {
			return pairs[i].DebtorID < pairs[j].DebtorID
		}
		return pairs[i].CreditorID < pairs[j].CreditorID
	})

	var edges []Edge
	for _, pair := range pairs {
		a, b := pair.DebtorID, pair.CreditorID
		amt := cleaned.Get(a, b)
		rev := cleaned.Get(b, a)

		if amt == 0 && rev == 0 {
			continue
		}

		if amt >= rev {
			if net := round2(amt - rev); net > 0 {
				edges = append(edges, Edge{DebtorID: a, CreditorID: b, Amount: net})
			}
		} else {
			if net := round2(rev - amt); net > 0 {
				edges = append(edges, Edge{DebtorID: b, CreditorID: a, Amount: net})
			}
		}
	}
	return edges
}

// canonicalPair orders the two ids so both directions of a pair share one key.
func canonicalPair(p Pair) Pair {
	if p.DebtorID > p.CreditorID {
		return Pair{DebtorID: p.CreditorID, CreditorID: p.DebtorID}
	}
	return p
}
