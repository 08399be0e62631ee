package user

import "time"

// User is a member of a group. Usernames are unique within a group, not
// globally; the same person in two groups is two User rows.
type User struct {
	ID        int64     `json:"id"`
	GroupID   int64     `json:"group_id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
