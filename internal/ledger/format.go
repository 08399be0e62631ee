package ledger

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// NoOutstandingBalances is returned by FormatNet when there is nothing owed.
const NoOutstandingBalances = "✅ No outstanding balances."

// FormatNet renders net balance edges as per-debtor blocks:
//
//	Alice owes:
//	  • Bob – $15.00
//
// Blocks follow the debtors' first appearance in edges and are separated by a
// blank line. An empty edge list yields NoOutstandingBalances.
func FormatNet(edges []Edge, namesByID map[int64]string) string {
	if len(edges) == 0 {
		return NoOutstandingBalances
	}

	var debtors []int64
	byDebtor := make(map[int64][]Edge)
	for _, e := range edges {
		if _, seen := byDebtor[e.DebtorID]; !seen {
			debtors = append(debtors, e.DebtorID)
		}
		byDebtor[e.DebtorID] = append(byDebtor[e.DebtorID], e)
	}

	var lines []string
	for i, debtorID := range debtors {
		lines = append(lines, fmt.Sprintf("%s owes:", displayName(debtorID, namesByID)))
		for _, e := range byDebtor[debtorID] {
			lines = append(lines, fmt.Sprintf("  • %s – $%.2f", displayName(e.CreditorID, namesByID), e.Amount))
		}
		if i < len(debtors)-1 {
			lines = append(lines, "")
		}
	}
	return strings.Join(lines, "\n")
}

// FormatDetailed renders a cleaned debt map before pair-collapsing, one block
// per debtor in ascending id order. Useful for the detailed balances view
// where both directions of a mutual debt are shown.
func FormatDetailed(cleaned DebtMap, namesByID map[int64]string) string {
	if len(cleaned) == 0 {
		return NoOutstandingBalances
	}

	byDebtor := make(map[int64][]Pair)
	for pair := range cleaned {
		byDebtor[pair.DebtorID] = append(byDebtor[pair.DebtorID], pair)
	}

	debtors := make([]int64, 0, len(byDebtor))
	for debtorID := range byDebtor {
		debtors = append(debtors, debtorID)
	}
	sort.Slice(debtors, func(i, j int) bool { return debtors[i] < debtors[j] })

	var lines []string
	for _, debtorID := range debtors {
		pairs := byDebtor[debtorID]
		sort.Slice(pairs, func(i, j int) bool { return pairs[i].CreditorID < pairs[j].CreditorID })

		lines = append(lines, fmt.Sprintf("%s owes:", displayName(debtorID, namesByID)))
		for _, pair := range pairs {
			lines = append(lines, fmt.Sprintf("  • %s – $%.2f", displayName(pair.CreditorID, namesByID), cleaned[pair]))
		}
	}
	return strings.Join(lines, "\n")
}

// displayName capitalizes the user's name, falling back to the raw id.
func displayName(userID int64, namesByID map[int64]string) string {
	if name, ok := namesByID[userID]; ok && name != "" {
		return capitalize(name)
	}
	return strconv.FormatInt(userID, 10)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
