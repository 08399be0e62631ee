package split

// =============================================================================
// EQUAL SPLIT STRATEGY
// Divides the expense evenly among all listed participants
// =============================================================================

// EqualStrategy implements the Strategy interface for equal splits.
type EqualStrategy struct{}

// Type returns the split type identifier.
func (s *EqualStrategy) Type() Type {
	return TypeEqual
}

// Validate checks if the inputs are valid for an equal split.
func (s *EqualStrategy) Validate(totalAmount float64, participants []Input) error {
	if len(participants) == 0 {
		return ErrNoParticipants
	}
	if totalAmount <= 0 {
		return ErrNonPositiveAmount
	}
	return nil
}

// Calculate divides the total amount evenly among all participants, payer
// included when listed. A payer-only split is a pure personal expense and
// yields a single self-share of the full amount.
//
// Policy: the per-head share is rounded to two decimals and the rounding
// remainder is NOT redistributed. The discrepancy is bounded by one cent per
// participant and is reconciled nowhere.
func (s *EqualStrategy) Calculate(totalAmount float64, payerID int64, participants []Input) ([]Output, error) {
	if err := s.Validate(totalAmount, participants); err != nil {
		return nil, err
	}

	if IsPersonal(payerID, participants) {
		return []Output{{UserID: payerID, Amount: roundToTwoDecimals(totalAmount)}}, nil
	}

	sharePerPerson := roundToTwoDecimals(totalAmount / float64(len(participants)))

	outputs := make([]Output, len(participants))
	for i, p := range participants {
		outputs[i] = Output{UserID: p.UserID, Amount: sharePerPerson}
	}
	return outputs, nil
}
