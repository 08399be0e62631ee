package group

import "time"

// Group is a shared context under which expenses and balances are tracked.
// Currency is the group's single unit of account; no conversion is performed.
type Group struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}
