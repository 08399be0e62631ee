package expense

import (
	"fmt"
	"strings"

	"github.com/tallyhq/tally/internal/expense/split"
)

// shareLine pairs a resolved participant with their computed share, in the
// order the participants were listed.
type shareLine struct {
	UserID int64
	Name   string
	Amount float64
}

// buildNarrative renders the human-readable confirmation for a recorded
// split. Three shapes exist per split type: a personal expense (payer is the
// sole participant), payer among the participants, and payer outside the
// participant list (reimbursement).
func buildNarrative(splitType split.Type, payerID int64, payerName, description string, amount float64, lines []shareLine) string {
	if len(lines) == 1 && lines[0].UserID == payerID {
		return fmt.Sprintf("🧾 Got it! A personal expense of $%.2f has been added for %s.", amount, lines[0].Name)
	}

	switch splitType {
	case split.TypeCustom:
		return customNarrative(payerID, payerName, description, amount, lines)
	default:
		return equalNarrative(payerID, payerName, description, amount, lines)
	}
}

func equalNarrative(payerID int64, payerName, description string, amount float64, lines []shareLine) string {
	names := joinNames(lines)
	shareAmount := lines[0].Amount

	var owed strings.Builder
	for _, line := range lines {
		if line.UserID == payerID {
			continue
		}
		fmt.Fprintf(&owed, "         • %s - $%.2f\n", line.Name, line.Amount)
	}

	if containsPayer(payerID, lines) {
		return fmt.Sprintf(
			"🤝 %s paid $%.2f for %s.\n🪙 Split between %s. Only those who didn’t pay owe their fair share:\n%s",
			payerName, amount, description, names, owed.String(),
		)
	}

	text := fmt.Sprintf("🤝 %s paid $%.2f for %s.\n", payerName, amount, description)
	if len(lines) == 1 {
		text += fmt.Sprintf("💸 %s owe %s $%.2f.", names, payerName, shareAmount)
	} else {
		text += fmt.Sprintf("🪙 Split between %s — here’s what each of you owes %s for the good times:\n", names, payerName)
		text += owed.String()
	}
	return text
}

func customNarrative(payerID int64, payerName, description string, amount float64, lines []shareLine) string {
	splitText := make([]string, len(lines))
	for i, line := range lines {
		splitText[i] = fmt.Sprintf("    • %s - $%.2f", line.Name, line.Amount)
	}
	body := strings.Join(splitText, "\n")

	if containsPayer(payerID, lines) {
		return fmt.Sprintf(
			"🤝 %s paid $%.2f for %s.\n🪙 Time to split the love — here’s who owes what:\n%s",
			payerName, amount, description, body,
		)
	}
	return fmt.Sprintf(
		"💳 %s went full hero mode and paid $%.2f for %s.\n🙌 Now it’s your turn - cough it up, team:\n%s",
		payerName, amount, description, body,
	)
}

// joinNames renders participant names the way people list them: "A and B"
// for a pair, comma-separated otherwise.
func joinNames(lines []shareLine) string {
	names := make([]string, len(lines))
	for i, line := range lines {
		names[i] = line.Name
	}
	if len(names) == 2 {
		return strings.Join(names, " and ")
	}
	return strings.Join(names, ", ")
}

func containsPayer(payerID int64, lines []shareLine) bool {
	for _, line := range lines {
		if line.UserID == payerID {
			return true
		}
	}
	return false
}
