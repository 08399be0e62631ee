package expense

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tallyhq/tally/internal/expense/split"
	"github.com/tallyhq/tally/internal/user"
)

// Common errors
var ErrExpenseNotFound = errors.New("expense not found")

// Service handles expense business logic: resolving participant references,
// computing shares through a split strategy, and persisting the result
// atomically.
type Service struct {
	repo    *Repository
	users   *user.Service
	factory *split.Factory
}

// NewService creates a new expense service
func NewService(repo *Repository, users *user.Service) *Service {
	return &Service{
		repo:    repo,
		users:   users,
		factory: split.NewFactory(),
	}
}

// Create records a new expense, splits it among the resolved participants,
// and persists the expense with all its shares in one transaction.
func (s *Service) Create(ctx context.Context, req *CreateExpenseRequest) (*ExpenseWithShares, error) {
	payer, err := s.users.GetByID(ctx, req.PayerID)
	if err != nil {
		return nil, err
	}
	if payer.GroupID != req.GroupID {
		return nil, user.ErrNotInGroup
	}

	resolved, inputs, err := s.resolveParticipants(ctx, req.GroupID, req.PayerID, req.Participants)
	if err != nil {
		return nil, err
	}

	strategy, err := s.factory.CreateFromString(req.SplitType)
	if err != nil {
		return nil, err
	}

	outputs, err := strategy.Calculate(req.Amount, req.PayerID, inputs)
	if err != nil {
		return nil, err
	}

	expense, shares, err := s.repo.CreateWithShares(ctx, req, outputs)
	if err != nil {
		return nil, fmt.Errorf("failed to record expense: %w", err)
	}
	expense.PayerName = payer.Name
	decorateShares(shares, resolved)

	message := buildNarrative(strategy.Type(), req.PayerID, payer.Name, expense.Description, expense.Amount, narrativeLines(outputs, resolved))

	slog.Info("expense recorded",
		"expense_id", expense.ID,
		"group_id", expense.GroupID,
		"payer_id", expense.PayerID,
		"amount", expense.Amount,
		"split_type", expense.SplitType,
		"shares", len(shares),
	)

	return &ExpenseWithShares{Expense: expense, Shares: shares, Message: message}, nil
}

// GetWithShares retrieves an expense along with its shares
func (s *Service) GetWithShares(ctx context.Context, id int64) (*ExpenseWithShares, error) {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}

	shares, err := s.repo.GetSharesByExpenseID(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ExpenseWithShares{Expense: expense, Shares: shares}, nil
}

// ListByGroup retrieves a page of a group's expenses plus the total count
func (s *Service) ListByGroup(ctx context.Context, groupID int64, limit, offset int) ([]*Expense, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByGroupID(ctx, groupID, limit, offset)
}

// Update applies a corrective edit to an expense's description, amount, or
// category. Shares are intentionally untouched: a corrective amount edit can
// leave shares out of sync until the caller re-splits.
func (s *Service) Update(ctx context.Context, id int64, req *UpdateExpenseRequest) (*Expense, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrExpenseNotFound
	}

	expense, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}

	slog.Info("expense updated", "expense_id", expense.ID, "group_id", expense.GroupID)
	return expense, nil
}

// Resplit recomputes an expense's shares from a new participant list and
// split type, replacing the old shares atomically.
func (s *Service) Resplit(ctx context.Context, id int64, req *ResplitExpenseRequest) (*ExpenseWithShares, error) {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, ErrExpenseNotFound
	}

	resolved, inputs, err := s.resolveParticipants(ctx, expense.GroupID, expense.PayerID, req.Participants)
	if err != nil {
		return nil, err
	}

	strategy, err := s.factory.CreateFromString(req.SplitType)
	if err != nil {
		return nil, err
	}

	outputs, err := strategy.Calculate(expense.Amount, expense.PayerID, inputs)
	if err != nil {
		return nil, err
	}

	shares, err := s.repo.ReplaceShares(ctx, id, string(strategy.Type()), outputs)
	if err != nil {
		return nil, fmt.Errorf("failed to replace shares: %w", err)
	}
	expense.SplitType = string(strategy.Type())
	decorateShares(shares, resolved)

	message := buildNarrative(strategy.Type(), expense.PayerID, expense.PayerName, expense.Description, expense.Amount, narrativeLines(outputs, resolved))

	slog.Info("expense re-split", "expense_id", expense.ID, "split_type", expense.SplitType, "shares", len(shares))
	return &ExpenseWithShares{Expense: expense, Shares: shares, Message: message}, nil
}

// Delete removes an expense and its shares
func (s *Service) Delete(ctx context.Context, id int64) error {
	expense, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if expense == nil {
		return ErrExpenseNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	slog.Info("expense deleted", "expense_id", id, "group_id", expense.GroupID)
	return nil
}

// resolveParticipants turns participant references (ids or handles, with
// "me" aliasing the payer) into group members. Duplicate references are
// rejected regardless of how they were spelled.
func (s *Service) resolveParticipants(ctx context.Context, groupID, payerID int64, refs []*ParticipantRef) (map[int64]*user.User, []split.Input, error) {
	if len(refs) == 0 {
		return nil, nil, split.ErrNoParticipants
	}

	resolved := make(map[int64]*user.User, len(refs))
	inputs := make([]split.Input, 0, len(refs))
	for _, ref := range refs {
		u, err := s.users.Resolve(ctx, groupID, ref.UserID, ref.Username, payerID)
		if err != nil {
			return nil, nil, err
		}
		if _, ok := resolved[u.ID]; ok {
			return nil, nil, fmt.Errorf("%w: %s", split.ErrDuplicateParticipant, u.Username)
		}
		resolved[u.ID] = u
		inputs = append(inputs, split.Input{UserID: u.ID, Amount: ref.Amount})
	}

	return resolved, inputs, nil
}

func narrativeLines(outputs []split.Output, resolved map[int64]*user.User) []shareLine {
	lines := make([]shareLine, len(outputs))
	for i, output := range outputs {
		name := ""
		if u, ok := resolved[output.UserID]; ok {
			name = u.Name
		}
		lines[i] = shareLine{UserID: output.UserID, Name: name, Amount: output.Amount}
	}
	return lines
}

func decorateShares(shares []*Share, resolved map[int64]*user.User) {
	for _, share := range shares {
		if u, ok := resolved[share.UserID]; ok {
			share.UserName = u.Name
		}
	}
}
