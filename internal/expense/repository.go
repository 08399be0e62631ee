package expense

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tallyhq/tally/internal/expense/split"
	"github.com/tallyhq/tally/internal/ledger"
)

// Repository handles expense and share data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new expense repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// CreateWithShares inserts an expense and all its shares in one transaction,
// so a failed share insert leaves nothing behind (all-or-nothing per expense).
func (r *Repository) CreateWithShares(ctx context.Context, req *CreateExpenseRequest, outputs []split.Output) (*Expense, []*Share, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	expense := &Expense{}
	err = tx.QueryRowContext(ctx, `
		INSERT INTO expenses (group_id, payer_id, description, amount, category, split_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, group_id, payer_id, description, amount, category, split_type, created_at
	`,
		req.GroupID,
		req.PayerID,
		req.Description,
		req.Amount,
		req.Category,
		req.SplitType,
	).Scan(
		&expense.ID,
		&expense.GroupID,
		&expense.PayerID,
		&expense.Description,
		&expense.Amount,
		&expense.Category,
		&expense.SplitType,
		&expense.CreatedAt,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create expense: %w", err)
	}

	shares, err := insertShares(ctx, tx, expense.ID, outputs)
	if err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return expense, shares, nil
}

// ReplaceShares deletes an expense's shares and writes a fresh set, updating
// the recorded split type, all in one transaction. Used by explicit re-split.
func (r *Repository) ReplaceShares(ctx context.Context, expenseID int64, splitType string, outputs []split.Output) ([]*Share, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM expense_shares WHERE expense_id = $1`, expenseID); err != nil {
		return nil, fmt.Errorf("failed to delete old shares: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `UPDATE expenses SET split_type = $2 WHERE id = $1`, expenseID, splitType); err != nil {
		return nil, fmt.Errorf("failed to update split type: %w", err)
	}

	shares, err := insertShares(ctx, tx, expenseID, outputs)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return shares, nil
}

func insertShares(ctx context.Context, tx *sql.Tx, expenseID int64, outputs []split.Output) ([]*Share, error) {
	shares := make([]*Share, len(outputs))
	for i, output := range outputs {
		share := &Share{}
		err := tx.QueryRowContext(ctx, `
			INSERT INTO expense_shares (expense_id, user_id, share_amount)
			VALUES ($1, $2, $3)
			RETURNING id, expense_id, user_id, share_amount
		`, expenseID, output.UserID, output.Amount).Scan(
			&share.ID,
			&share.ExpenseID,
			&share.UserID,
			&share.Amount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create share: %w", err)
		}
		shares[i] = share
	}
	return shares, nil
}

// GetByID retrieves an expense by its ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*Expense, error) {
	query := `
		SELECT e.id, e.group_id, e.payer_id, e.description, e.amount, e.category, e.split_type, e.created_at, u.name
		FROM expenses e
		JOIN users u ON e.payer_id = u.id
		WHERE e.id = $1
	`

	expense := &Expense{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&expense.ID,
		&expense.GroupID,
		&expense.PayerID,
		&expense.Description,
		&expense.Amount,
		&expense.Category,
		&expense.SplitType,
		&expense.CreatedAt,
		&expense.PayerName,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return expense, nil
}

// GetSharesByExpenseID retrieves all shares for an expense
func (r *Repository) GetSharesByExpenseID(ctx context.Context, expenseID int64) ([]*Share, error) {
	query := `
		SELECT s.id, s.expense_id, s.user_id, s.share_amount, u.name
		FROM expense_shares s
		JOIN users u ON s.user_id = u.id
		WHERE s.expense_id = $1
		ORDER BY s.id
	`

	rows, err := r.db.QueryContext(ctx, query, expenseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get shares: %w", err)
	}
	defer rows.Close()

	var shares []*Share
	for rows.Next() {
		share := &Share{}
		if err := rows.Scan(
			&share.ID,
			&share.ExpenseID,
			&share.UserID,
			&share.Amount,
			&share.UserName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan share: %w", err)
		}
		shares = append(shares, share)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate shares: %w", err)
	}

	return shares, nil
}

// ListByGroupID retrieves a page of expenses for a group plus the total count
func (r *Repository) ListByGroupID(ctx context.Context, groupID int64, limit, offset int) ([]*Expense, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM expenses WHERE group_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, groupID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count expenses: %w", err)
	}

	query := `
		SELECT e.id, e.group_id, e.payer_id, e.description, e.amount, e.category, e.split_type, e.created_at, u.name
		FROM expenses e
		JOIN users u ON e.payer_id = u.id
		WHERE e.group_id = $1
		ORDER BY e.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, groupID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*Expense
	for rows.Next() {
		expense := &Expense{}
		if err := rows.Scan(
			&expense.ID,
			&expense.GroupID,
			&expense.PayerID,
			&expense.Description,
			&expense.Amount,
			&expense.Category,
			&expense.SplitType,
			&expense.CreatedAt,
			&expense.PayerName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, total, nil
}

// Update applies a corrective edit to an expense. Shares are left untouched.
func (r *Repository) Update(ctx context.Context, id int64, req *UpdateExpenseRequest) (*Expense, error) {
	query := `
		UPDATE expenses
		SET description = COALESCE($2, description),
		    amount = COALESCE($3, amount),
		    category = COALESCE($4, category)
		WHERE id = $1
		RETURNING id, group_id, payer_id, description, amount, category, split_type, created_at
	`

	expense := &Expense{}
	err := r.db.QueryRowContext(ctx, query, id, req.Description, req.Amount, req.Category).Scan(
		&expense.ID,
		&expense.GroupID,
		&expense.PayerID,
		&expense.Description,
		&expense.Amount,
		&expense.Category,
		&expense.SplitType,
		&expense.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	return expense, nil
}

// Delete removes an expense and its shares in one transaction
func (r *Repository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM expense_shares WHERE expense_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete shares: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrExpenseNotFound
	}

	return tx.Commit()
}

// ListShareRecordsByGroupID returns every share in the group joined to its
// expense's payer, in the shape the ledger engine aggregates.
func (r *Repository) ListShareRecordsByGroupID(ctx context.Context, groupID int64) ([]ledger.ShareRecord, error) {
	query := `
		SELECT s.user_id, e.payer_id, s.share_amount
		FROM expense_shares s
		JOIN expenses e ON s.expense_id = e.id
		WHERE e.group_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list share records: %w", err)
	}
	defer rows.Close()

	var records []ledger.ShareRecord
	for rows.Next() {
		var record ledger.ShareRecord
		if err := rows.Scan(&record.DebtorID, &record.PayerID, &record.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan share record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate share records: %w", err)
	}

	return records, nil
}
