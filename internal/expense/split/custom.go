package split

import "math"

// =============================================================================
// CUSTOM SPLIT STRATEGY
// Each participant owes an explicit amount (must sum to the total)
// =============================================================================

// CustomStrategy implements the Strategy interface for custom amount splits.
type CustomStrategy struct{}

// Type returns the split type identifier.
func (s *CustomStrategy) Type() Type {
	return TypeCustom
}

// Validate checks if the inputs are valid for a custom split: every
// participant carries a positive amount, no participant appears twice, and
// the amounts sum to the total within a one-cent tolerance.
func (s *CustomStrategy) Validate(totalAmount float64, participants []Input) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	if totalAmount <= 0 {
		return ErrNonPositiveAmount
	}

	seen := make(map[int64]bool, len(participants))
	var sum float64
	for _, p := range participants {
		if seen[p.UserID] {
			return ErrDuplicateParticipant
		}
		seen[p.UserID] = true

		if p.Amount == nil {
			return ErrMissingCustomAmount
		}
		if *p.Amount <= 0 {
			return ErrNonPositiveShare
		}
		sum += *p.Amount
	}

	if math.Abs(sum-totalAmount) > 0.01 {
		return ErrCustomAmountsMismatch
	}
	return nil
}

// Calculate emits one share per (participant, amount) pair. The payer-only
// case degenerates to a personal expense of the full amount.
func (s *CustomStrategy) Calculate(totalAmount float64, payerID int64, participants []Input) ([]Output, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	if IsPersonal(payerID, participants) {
		return []Output{{UserID: payerID, Amount: roundToTwoDecimals(totalAmount)}}, nil
	}

	outputs := make([]Output, len(participants))
	for i, p := range participants {
		outputs[i] = Output{UserID: p.UserID, Amount: roundToTwoDecimals(*p.Amount)}
	}
	return outputs, nil
}
