package expense

// ParticipantRef identifies a split participant by id or by handle. Exactly
// one of UserID/Username should be set; the handle "me" aliases the payer.
// Amount is required for CUSTOM splits.
type ParticipantRef struct {
	UserID   int64    `json:"user_id,omitempty"`
	Username string   `json:"username,omitempty"`
	Amount   *float64 `json:"amount,omitempty"`
}

// CreateExpenseRequest represents the request to create an expense
type CreateExpenseRequest struct {
	GroupID      int64             `json:"group_id" validate:"required"`
	PayerID      int64             `json:"payer_id" validate:"required"`
	Description  string            `json:"description" validate:"required,min=1,max=255"`
	Amount       float64           `json:"amount" validate:"required,gt=0"`
	Category     *string           `json:"category,omitempty"`
	SplitType    string            `json:"split_type" validate:"required,oneof=EQUAL CUSTOM"`
	Participants []*ParticipantRef `json:"participants" validate:"required,min=1"`
}

// UpdateExpenseRequest represents a corrective edit. It never touches shares.
type UpdateExpenseRequest struct {
	Description *string  `json:"description,omitempty" validate:"omitempty,min=1,max=255"`
	Amount      *float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Category    *string  `json:"category,omitempty"`
}

// ResplitExpenseRequest replaces an expense's shares with a fresh split.
type ResplitExpenseRequest struct {
	SplitType    string            `json:"split_type" validate:"required,oneof=EQUAL CUSTOM"`
	Participants []*ParticipantRef `json:"participants" validate:"required,min=1"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID          int64            `json:"id"`
	GroupID     int64            `json:"group_id"`
	PayerID     int64            `json:"payer_id"`
	PayerName   string           `json:"payer_name,omitempty"`
	Description string           `json:"description"`
	Amount      float64          `json:"amount"`
	Category    *string          `json:"category,omitempty"`
	SplitType   string           `json:"split_type"`
	CreatedAt   string           `json:"created_at"`
	Message     string           `json:"message,omitempty"`
	Shares      []*ShareResponse `json:"shares,omitempty"`
}

// ShareResponse represents the response for a share
type ShareResponse struct {
	ID        int64   `json:"id"`
	ExpenseID int64   `json:"expense_id"`
	UserID    int64   `json:"user_id"`
	UserName  string  `json:"user_name,omitempty"`
	Amount    float64 `json:"amount"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func (e *Expense) ToResponse() *ExpenseResponse {
	return &ExpenseResponse{
		ID:          e.ID,
		GroupID:     e.GroupID,
		PayerID:     e.PayerID,
		PayerName:   e.PayerName,
		Description: e.Description,
		Amount:      e.Amount,
		Category:    e.Category,
		SplitType:   e.SplitType,
		CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// ToResponse converts a Share model to a ShareResponse DTO
func (s *Share) ToResponse() *ShareResponse {
	return &ShareResponse{
		ID:        s.ID,
		ExpenseID: s.ExpenseID,
		UserID:    s.UserID,
		UserName:  s.UserName,
		Amount:    s.Amount,
	}
}
