package analysis

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clshinji/mf-data-viewer/internal/core"
)

func tx(day int, amount int64, major, minor string) core.Transaction {
	return core.Transaction{
		Date:      core.NewDate(2024, 1, day),
		Amount:    amount,
		Major:     major,
		Minor:     minor,
		Accounted: true,
	}
}

func sampleRows() []core.Transaction {
	return []core.Transaction{
		tx(5, 1000, "Salary", "Monthly"),
		tx(10, -300, "Food", "Grocery"),
		tx(12, -200, "Food", "Dining"),
		tx(15, -150, "Hobby", "Books"),
		tx(20, 0, "Noise", "Zero"),
	}
}

func TestSplitIncomeExpense(t *testing.T) {
	income, expense := SplitIncomeExpense(sampleRows())

	require.Len(t, income, 1)
	require.Len(t, expense, 3)
	assert.EqualValues(t, 1000, income[0].Amount)
	for _, e := range expense {
		assert.Positive(t, e.Amount, "expense amounts are flipped to positive magnitudes")
	}
}

func TestSplitDoesNotMutateInput(t *testing.T) {
	rows := sampleRows()
	SplitIncomeExpense(rows)
	assert.EqualValues(t, -300, rows[1].Amount, "sign flip is a view convenience, not a ledger mutation")
}

func TestTotalsBalanceIdentity(t *testing.T) {
	income, expense := SplitIncomeExpense(sampleRows())
	totals := Totals(income, expense)

	assert.EqualValues(t, 1000, totals.Income)
	assert.EqualValues(t, 650, totals.Expense)
	assert.Equal(t, totals.Income-totals.Expense, totals.Balance)
}

func TestCategoryBreakdownConservation(t *testing.T) {
	_, expense := SplitIncomeExpense(sampleRows())
	breakdown := CategoryBreakdown(expense)

	require.Len(t, breakdown, 2)
	assert.Equal(t, "Food", breakdown[0].Name, "sorted descending by sum")
	assert.EqualValues(t, 500, breakdown[0].Amount)

	var sum int64
	for _, c := range breakdown {
		sum += c.Amount
	}
	assert.Equal(t, Totals(nil, expense).Expense, sum, "no leakage or double count across categories")
}

func TestCategoryBreakdownTieBreakIsFirstEncountered(t *testing.T) {
	rows := []core.Transaction{
		tx(1, 100, "B", "x"),
		tx(2, 100, "A", "y"),
		tx(3, 100, "C", "z"),
	}
	breakdown := CategoryBreakdown(rows)
	require.Len(t, breakdown, 3)
	assert.Equal(t, []string{"B", "A", "C"}, []string{breakdown[0].Name, breakdown[1].Name, breakdown[2].Name})
}

func TestDrilldown(t *testing.T) {
	_, expense := SplitIncomeExpense(sampleRows())

	t.Run("all majors matches totals", func(t *testing.T) {
		all := Drilldown(expense, nil)
		var sum int64
		for _, c := range all {
			sum += c.Amount
		}
		assert.Equal(t, Totals(nil, expense).Expense, sum)
	})

	t.Run("subset never exceeds the total", func(t *testing.T) {
		food := Drilldown(expense, []string{"Food"})
		require.Len(t, food, 2)
		assert.Equal(t, core.CategoryAmount{Name: "Grocery", Amount: 300}, food[0])
		assert.Equal(t, core.CategoryAmount{Name: "Dining", Amount: 200}, food[1])

		var sum int64
		for _, c := range food {
			sum += c.Amount
		}
		assert.LessOrEqual(t, sum, Totals(nil, expense).Expense)
	})
}

func TestAggregationsAreOrderIndependent(t *testing.T) {
	rows := sampleRows()
	shuffled := make([]core.Transaction, len(rows))
	copy(shuffled, rows)
	rand.New(rand.NewSource(42)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	i1, e1 := SplitIncomeExpense(rows)
	i2, e2 := SplitIncomeExpense(shuffled)
	assert.Equal(t, Totals(i1, e1), Totals(i2, e2))

	sums := func(cs []core.CategoryAmount) map[string]int64 {
		m := make(map[string]int64)
		for _, c := range cs {
			m[c.Name] = c.Amount
		}
		return m
	}
	assert.Equal(t, sums(CategoryBreakdown(e1)), sums(CategoryBreakdown(e2)))
	assert.Equal(t, sums(Drilldown(e1, nil)), sums(Drilldown(e2, nil)))
}
