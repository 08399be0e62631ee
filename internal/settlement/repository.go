package settlement

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tallyhq/tally/internal/ledger"
)

// Repository handles settlement data persistence
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new settlement repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new settlement record
func (r *Repository) Create(ctx context.Context, req *CreateSettlementRequest) (*Settlement, error) {
	query := `
		INSERT INTO settlements (group_id, payer_id, payee_id, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING id, group_id, payer_id, payee_id, amount, created_at
	`

	settlement := &Settlement{}
	err := r.db.QueryRowContext(ctx, query, req.GroupID, req.PayerID, req.PayeeID, req.Amount).Scan(
		&settlement.ID,
		&settlement.GroupID,
		&settlement.PayerID,
		&settlement.PayeeID,
		&settlement.Amount,
		&settlement.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create settlement: %w", err)
	}

	return settlement, nil
}

// ListByGroupID retrieves all settlements in a group, newest first
func (r *Repository) ListByGroupID(ctx context.Context, groupID int64) ([]*Settlement, error) {
	query := `
		SELECT s.id, s.group_id, s.payer_id, s.payee_id, s.amount, s.created_at, payer.name, payee.name
		FROM settlements s
		JOIN users payer ON s.payer_id = payer.id
		JOIN users payee ON s.payee_id = payee.id
		WHERE s.group_id = $1
		ORDER BY s.created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlements: %w", err)
	}
	defer rows.Close()

	var settlements []*Settlement
	for rows.Next() {
		settlement := &Settlement{}
		if err := rows.Scan(
			&settlement.ID,
			&settlement.GroupID,
			&settlement.PayerID,
			&settlement.PayeeID,
			&settlement.Amount,
			&settlement.CreatedAt,
			&settlement.PayerName,
			&settlement.PayeeName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan settlement: %w", err)
		}
		settlements = append(settlements, settlement)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlements: %w", err)
	}

	return settlements, nil
}

// ListRecordsByGroupID returns the group's settlements in the shape the
// ledger engine applies against aggregated debt.
func (r *Repository) ListRecordsByGroupID(ctx context.Context, groupID int64) ([]ledger.SettlementRecord, error) {
	query := `
		SELECT payer_id, payee_id, amount
		FROM settlements
		WHERE group_id = $1
	`

	rows, err := r.db.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlement records: %w", err)
	}
	defer rows.Close()

	var records []ledger.SettlementRecord
	for rows.Next() {
		var record ledger.SettlementRecord
		if err := rows.Scan(&record.PayerID, &record.PayeeID, &record.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan settlement record: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate settlement records: %w", err)
	}

	return records, nil
}
