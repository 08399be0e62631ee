package balance

import "github.com/tallyhq/tally/internal/ledger"

// EdgeResponse is one net debt edge with display names attached
type EdgeResponse struct {
	DebtorID     int64   `json:"debtor_id"`
	DebtorName   string  `json:"debtor_name"`
	CreditorID   int64   `json:"creditor_id"`
	CreditorName string  `json:"creditor_name"`
	Amount       float64 `json:"amount"`
}

// GroupBalancesResponse is the full balance view for a group: the netted
// edges, a human-readable summary, and the cleaned per-direction breakdown.
type GroupBalancesResponse struct {
	GroupID  int64           `json:"group_id"`
	Edges    []*EdgeResponse `json:"edges"`
	Summary  string          `json:"summary"`
	Detailed string          `json:"detailed,omitempty"`
}

// SettleOption is one suggested payment for the acting user
type SettleOption struct {
	CreditorID   int64   `json:"creditor_id"`
	CreditorName string  `json:"creditor_name"`
	Amount       float64 `json:"amount"`
}

// SettleOptionsResponse lists who the acting user still owes
type SettleOptionsResponse struct {
	GroupID int64           `json:"group_id"`
	UserID  int64           `json:"user_id"`
	Options []*SettleOption `json:"options"`
}

func toEdgeResponses(edges []ledger.Edge, namesByID map[int64]string) []*EdgeResponse {
	out := make([]*EdgeResponse, len(edges))
	for i, edge := range edges {
		out[i] = &EdgeResponse{
			DebtorID:     edge.DebtorID,
			DebtorName:   namesByID[edge.DebtorID],
			CreditorID:   edge.CreditorID,
			CreditorName: namesByID[edge.CreditorID],
			Amount:       edge.Amount,
		}
	}
	return out
}
