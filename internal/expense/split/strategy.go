package split

import (
	"errors"
	"fmt"
	"math"
)

// Type identifies the split strategy for an expense. There are exactly two
// variants: EQUAL divides the amount evenly, CUSTOM uses explicit
// per-participant amounts.
type Type string

const (
	TypeEqual  Type = "EQUAL"
	TypeCustom Type = "CUSTOM"
)

// Input is one participant entering a split. Amount is required for CUSTOM
// splits and ignored for EQUAL splits.
type Input struct {
	UserID int64    `json:"user_id"`
	Amount *float64 `json:"amount,omitempty"`
}

// Output is the calculated share for a single participant.
type Output struct {
	UserID int64   `json:"user_id"`
	Amount float64 `json:"amount"`
}

// Strategy is the interface implemented by the two split variants.
type Strategy interface {
	// Calculate computes one share per participant. The payer gets a share
	// too when listed; self-shares are dropped later during debt
	// aggregation, not here.
	Calculate(totalAmount float64, payerID int64, participants []Input) ([]Output, error)

	// Type returns the type identifier for this strategy.
	Type() Type

	// Validate checks if the inputs are valid for this strategy.
	Validate(totalAmount float64, participants []Input) error
}

// Factory creates split strategies based on the requested type.
type Factory struct{}

// NewFactory creates a new factory instance.
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns the strategy for the given type. The switch is exhaustive
// over the two variants.
func (f *Factory) Create(splitType Type) (Strategy, error) {
	switch splitType {
	case TypeEqual:
		return &EqualStrategy{}, nil
	case TypeCustom:
		return &CustomStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownType, splitType)
	}
}

// CreateFromString creates a strategy from a string type (useful for API requests).
func (f *Factory) CreateFromString(splitType string) (Strategy, error) {
	return f.Create(Type(splitType))
}

// Validation errors. Any of them aborts the expense write before a single
// share is persisted.
var (
	ErrUnknownType           = errors.New("unknown split type")
	ErrNoParticipants        = errors.New("at least one participant is required")
	ErrNonPositiveAmount     = errors.New("amount must be positive")
	ErrMissingCustomAmount   = errors.New("custom amount required for all participants")
	ErrNonPositiveShare      = errors.New("custom amounts must be positive")
	ErrCustomAmountsMismatch = errors.New("custom amounts must sum to the total amount")
	ErrDuplicateParticipant  = errors.New("duplicate participant in split")
)

// IsPersonal reports whether the split is a pure personal expense: the payer
// is the sole participant.
func IsPersonal(payerID int64, participants []Input) bool {
	return len(participants) == 1 && participants[0].UserID == payerID
}

// roundToTwoDecimals rounds a float to 2 decimal places.
func roundToTwoDecimals(value float64) float64 {
	return math.Round(value*100) / 100
}
