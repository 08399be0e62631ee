package settlement

// CreateSettlementRequest represents the request to record a settlement
type CreateSettlementRequest struct {
	GroupID int64   `json:"group_id" validate:"required"`
	PayerID int64   `json:"payer_id" validate:"required"`
	PayeeID int64   `json:"payee_id" validate:"required"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
}

// SettlementResponse represents the response for a settlement
type SettlementResponse struct {
	ID        int64   `json:"id"`
	GroupID   int64   `json:"group_id"`
	PayerID   int64   `json:"payer_id"`
	PayerName string  `json:"payer_name,omitempty"`
	PayeeID   int64   `json:"payee_id"`
	PayeeName string  `json:"payee_name,omitempty"`
	Amount    float64 `json:"amount"`
	CreatedAt string  `json:"created_at"`
}

// ToResponse converts a Settlement model to a SettlementResponse DTO
func (s *Settlement) ToResponse() *SettlementResponse {
	return &SettlementResponse{
		ID:        s.ID,
		GroupID:   s.GroupID,
		PayerID:   s.PayerID,
		PayerName: s.PayerName,
		PayeeID:   s.PayeeID,
		PayeeName: s.PayeeName,
		Amount:    s.Amount,
		CreatedAt: s.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}
}
