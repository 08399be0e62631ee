package user

// CreateUserRequest represents the request to register a user in a group
type CreateUserRequest struct {
	GroupID  int64  `json:"group_id" validate:"required"`
	Username string `json:"username" validate:"required,min=1,max=64"`
	Name     string `json:"name" validate:"required,min=1,max=255"`
}

// UserResponse represents the response for a user
type UserResponse struct {
	ID        int64  `json:"id"`
	GroupID   int64  `json:"group_id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

// ToResponse converts a User model to a UserResponse DTO
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		GroupID:   u.GroupID,
		Username:  u.Username,
		Name:      u.Name,
		CreatedAt: u.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
