package settlement

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tallyhq/tally/internal/ledger"
	"github.com/tallyhq/tally/internal/user"
)

// Common errors
var (
	ErrCannotSettleSelf  = errors.New("cannot settle with yourself")
	ErrNonPositiveAmount = errors.New("settlement amount must be positive")
	ErrNothingOwed       = errors.New("no outstanding debt toward this user")
	ErrExceedsDebt       = errors.New("settlement exceeds the outstanding debt")
)

// ShareSource provides the raw expense shares the ledger aggregates. The
// expense repository satisfies it.
type ShareSource interface {
	ListShareRecordsByGroupID(ctx context.Context, groupID int64) ([]ledger.ShareRecord, error)
}

// Store persists settlements. The settlement repository satisfies it.
type Store interface {
	Create(ctx context.Context, req *CreateSettlementRequest) (*Settlement, error)
	ListByGroupID(ctx context.Context, groupID int64) ([]*Settlement, error)
	ListRecordsByGroupID(ctx context.Context, groupID int64) ([]ledger.SettlementRecord, error)
}

// UserDirectory looks up group members. The user service satisfies it.
type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

// Service handles settlement business logic. The ledger engine itself will
// happily apply any settlement, including one that flips a debt negative;
// this service is where overpayment is rejected, before the record exists.
type Service struct {
	repo   Store
	shares ShareSource
	users  UserDirectory
}

// NewService creates a new settlement service
func NewService(repo Store, shares ShareSource, users UserDirectory) *Service {
	return &Service{
		repo:   repo,
		shares: shares,
		users:  users,
	}
}

// Record validates and persists a settlement. The amount must be positive and
// no greater than what the payer currently nets toward the payee after all
// prior expenses and settlements.
func (s *Service) Record(ctx context.Context, req *CreateSettlementRequest) (*Settlement, error) {
	if req.PayerID == req.PayeeID {
		return nil, ErrCannotSettleSelf
	}
	if req.Amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	payer, err := s.memberOf(ctx, req.GroupID, req.PayerID)
	if err != nil {
		return nil, err
	}
	payee, err := s.memberOf(ctx, req.GroupID, req.PayeeID)
	if err != nil {
		return nil, err
	}

	owed, err := s.netOwed(ctx, req.GroupID, req.PayerID, req.PayeeID)
	if err != nil {
		return nil, err
	}
	if owed <= 0 {
		return nil, ErrNothingOwed
	}
	if req.Amount > owed {
		return nil, fmt.Errorf("%w: owed %.2f", ErrExceedsDebt, owed)
	}

	settlement, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	settlement.PayerName = payer.Name
	settlement.PayeeName = payee.Name

	slog.Info("settlement recorded",
		"settlement_id", settlement.ID,
		"group_id", settlement.GroupID,
		"payer_id", settlement.PayerID,
		"payee_id", settlement.PayeeID,
		"amount", settlement.Amount,
	)

	return settlement, nil
}

// ListByGroup retrieves all settlements in a group
func (s *Service) ListByGroup(ctx context.Context, groupID int64) ([]*Settlement, error) {
	return s.repo.ListByGroupID(ctx, groupID)
}

// netOwed runs the full ledger pipeline for the group and returns the net
// amount the payer currently owes the payee, zero if nothing or the debt
// runs the other way.
func (s *Service) netOwed(ctx context.Context, groupID, payerID, payeeID int64) (float64, error) {
	shareRecords, err := s.shares.ListShareRecordsByGroupID(ctx, groupID)
	if err != nil {
		return 0, err
	}
	settlementRecords, err := s.repo.ListRecordsByGroupID(ctx, groupID)
	if err != nil {
		return 0, err
	}

	debts := ledger.Aggregate(shareRecords)
	debts = ledger.ApplySettlements(debts, settlementRecords)
	edges := ledger.Resolve(ledger.Clean(debts))

	for _, edge := range edges {
		if edge.DebtorID == payerID && edge.CreditorID == payeeID {
			return edge.Amount, nil
		}
	}
	return 0, nil
}

func (s *Service) memberOf(ctx context.Context, groupID, userID int64) (*user.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u.GroupID != groupID {
		return nil, user.ErrNotInGroup
	}
	return u, nil
}
