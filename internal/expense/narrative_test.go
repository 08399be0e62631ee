package expense

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tallyhq/tally/internal/expense/split"
)

func TestBuildNarrativePersonal(t *testing.T) {
	got := buildNarrative(split.TypeEqual, 1, "Alice", "coffee", 4.5, []shareLine{
		{UserID: 1, Name: "Alice", Amount: 4.5},
	})
	assert.Equal(t, "🧾 Got it! A personal expense of $4.50 has been added for Alice.", got)

	// A sole participant who is the payer is personal regardless of split type.
	got = buildNarrative(split.TypeCustom, 1, "Alice", "coffee", 4.5, []shareLine{
		{UserID: 1, Name: "Alice", Amount: 4.5},
	})
	assert.Equal(t, "🧾 Got it! A personal expense of $4.50 has been added for Alice.", got)
}

func TestBuildNarrativeEqualPayerIncluded(t *testing.T) {
	got := buildNarrative(split.TypeEqual, 1, "Alice", "dinner", 30, []shareLine{
		{UserID: 1, Name: "Alice", Amount: 10},
		{UserID: 2, Name: "Bob", Amount: 10},
		{UserID: 3, Name: "Carol", Amount: 10},
	})

	want := "🤝 Alice paid $30.00 for dinner.\n" +
		"🪙 Split between Alice, Bob, Carol. Only those who didn’t pay owe their fair share:\n" +
		"         • Bob - $10.00\n" +
		"         • Carol - $10.00\n"
	assert.Equal(t, want, got)
}

func TestBuildNarrativeEqualPayerExcluded(t *testing.T) {
	// Single non-payer participant gets the short direct-debt sentence.
	got := buildNarrative(split.TypeEqual, 1, "Alice", "cab", 12, []shareLine{
		{UserID: 2, Name: "Bob", Amount: 12},
	})
	assert.Equal(t, "🤝 Alice paid $12.00 for cab.\n💸 Bob owe Alice $12.00.", got)

	// Two participants are joined with "and".
	got = buildNarrative(split.TypeEqual, 1, "Alice", "brunch", 20, []shareLine{
		{UserID: 2, Name: "Bob", Amount: 10},
		{UserID: 3, Name: "Carol", Amount: 10},
	})
	want := "🤝 Alice paid $20.00 for brunch.\n" +
		"🪙 Split between Bob and Carol — here’s what each of you owes Alice for the good times:\n" +
		"         • Bob - $10.00\n" +
		"         • Carol - $10.00\n"
	assert.Equal(t, want, got)
}

func TestBuildNarrativeCustom(t *testing.T) {
	got := buildNarrative(split.TypeCustom, 1, "Alice", "groceries", 25, []shareLine{
		{UserID: 1, Name: "Alice", Amount: 10},
		{UserID: 2, Name: "Bob", Amount: 15},
	})
	want := "🤝 Alice paid $25.00 for groceries.\n" +
		"🪙 Time to split the love — here’s who owes what:\n" +
		"    • Alice - $10.00\n" +
		"    • Bob - $15.00"
	assert.Equal(t, want, got)

	got = buildNarrative(split.TypeCustom, 1, "Alice", "festival tickets", 90, []shareLine{
		{UserID: 2, Name: "Bob", Amount: 40},
		{UserID: 3, Name: "Carol", Amount: 50},
	})
	want = "💳 Alice went full hero mode and paid $90.00 for festival tickets.\n" +
		"🙌 Now it’s your turn - cough it up, team:\n" +
		"    • Bob - $40.00\n" +
		"    • Carol - $50.00"
	assert.Equal(t, want, got)
}
