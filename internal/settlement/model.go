package settlement

import "time"

// Settlement is an immutable record of money handed from one group member to
// another outside any expense. It reduces the payer's standing debt toward
// the payee; correcting a mistake means recording a reverse settlement, not
// editing this one.
type Settlement struct {
	ID        int64     `json:"id"`
	GroupID   int64     `json:"group_id"`
	PayerID   int64     `json:"payer_id"`
	PayeeID   int64     `json:"payee_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`

	// Populated via JOIN
	PayerName string `json:"payer_name,omitempty"`
	PayeeName string `json:"payee_name,omitempty"`
}
