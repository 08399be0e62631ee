// Package balance is the read side of the ledger: it pulls raw shares and
// settlements for a group, runs them through the netting pipeline, and
// shapes the result for presentation.
package balance

import (
	"context"

	"github.com/tallyhq/tally/internal/ledger"
)

// ShareSource provides the raw expense shares for a group. The expense
// repository satisfies it.
type ShareSource interface {
	ListShareRecordsByGroupID(ctx context.Context, groupID int64) ([]ledger.ShareRecord, error)
}

// SettlementSource provides the recorded settlements for a group. The
// settlement repository satisfies it.
type SettlementSource interface {
	ListRecordsByGroupID(ctx context.Context, groupID int64) ([]ledger.SettlementRecord, error)
}

// NameSource maps user ids to display names within a group. The user
// repository satisfies it.
type NameSource interface {
	NamesByID(ctx context.Context, groupID int64) (map[int64]string, error)
}

// Service computes group balances on demand. It holds no state of its own;
// every call recomputes from the stored shares and settlements.
type Service struct {
	shares      ShareSource
	settlements SettlementSource
	names       NameSource
}

// NewService creates a new balance service
func NewService(shares ShareSource, settlements SettlementSource, names NameSource) *Service {
	return &Service{
		shares:      shares,
		settlements: settlements,
		names:       names,
	}
}

// GroupBalances returns the group's netted debt edges plus formatted
// summaries.
func (s *Service) GroupBalances(ctx context.Context, groupID int64) (*GroupBalancesResponse, error) {
	cleaned, namesByID, err := s.cleanedDebts(ctx, groupID)
	if err != nil {
		return nil, err
	}

	edges := ledger.Resolve(cleaned)

	return &GroupBalancesResponse{
		GroupID:  groupID,
		Edges:    toEdgeResponses(edges, namesByID),
		Summary:  ledger.FormatNet(edges, namesByID),
		Detailed: ledger.FormatDetailed(cleaned, namesByID),
	}, nil
}

// SettleOptions returns the payments the given user could make right now:
// one option per creditor they still owe after netting.
func (s *Service) SettleOptions(ctx context.Context, groupID, userID int64) (*SettleOptionsResponse, error) {
	cleaned, namesByID, err := s.cleanedDebts(ctx, groupID)
	if err != nil {
		return nil, err
	}

	options := []*SettleOption{}
	for _, edge := range ledger.Resolve(cleaned) {
		if edge.DebtorID != userID {
			continue
		}
		options = append(options, &SettleOption{
			CreditorID:   edge.CreditorID,
			CreditorName: namesByID[edge.CreditorID],
			Amount:       edge.Amount,
		})
	}

	return &SettleOptionsResponse{
		GroupID: groupID,
		UserID:  userID,
		Options: options,
	}, nil
}

func (s *Service) cleanedDebts(ctx context.Context, groupID int64) (ledger.DebtMap, map[int64]string, error) {
	shareRecords, err := s.shares.ListShareRecordsByGroupID(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	settlementRecords, err := s.settlements.ListRecordsByGroupID(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}
	namesByID, err := s.names.NamesByID(ctx, groupID)
	if err != nil {
		return nil, nil, err
	}

	debts := ledger.Aggregate(shareRecords)
	debts = ledger.ApplySettlements(debts, settlementRecords)
	return ledger.Clean(debts), namesByID, nil
}
