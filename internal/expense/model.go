package expense

import "time"

// Expense represents one payment made by a group member on behalf of several.
// Amount is positive with 2-decimal precision. Corrective edits may change
// amount, description, or category, but never touch already-recorded shares
// unless the expense is explicitly re-split.
type Expense struct {
	ID          int64     `json:"id"`
	GroupID     int64     `json:"group_id"`
	PayerID     int64     `json:"payer_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Category    *string   `json:"category,omitempty"`
	SplitType   string    `json:"split_type"` // EQUAL, CUSTOM
	CreatedAt   time.Time `json:"created_at"`

	// Populated via JOIN
	PayerName string `json:"payer_name,omitempty"`
}

// Share is one participant's portion of an expense, owed to the payer. A
// share whose user is the payer is a self-share and never becomes debt.
type Share struct {
	ID        int64   `json:"id"`
	ExpenseID int64   `json:"expense_id"`
	UserID    int64   `json:"user_id"`
	Amount    float64 `json:"amount"`

	// Populated via JOIN
	UserName string `json:"user_name,omitempty"`
}

// ExpenseWithShares combines an expense, its persisted shares, and the
// narrative message describing the split.
type ExpenseWithShares struct {
	Expense *Expense
	Shares  []*Share
	Message string
}
