package group

// CreateGroupRequest represents the request to register a group
type CreateGroupRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Currency string `json:"currency" validate:"required,len=3"`
}

// GroupResponse represents the response for a group
type GroupResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Currency  string `json:"currency"`
	CreatedAt string `json:"created_at"`
}

// ToResponse converts a Group model to a GroupResponse DTO
func (g *Group) ToResponse() *GroupResponse {
	return &GroupResponse{
		ID:        g.ID,
		Name:      g.Name,
		Currency:  g.Currency,
		CreatedAt: g.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
