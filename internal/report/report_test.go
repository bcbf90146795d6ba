package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmoreira/contas/internal/report"
	"github.com/rmoreira/contas/internal/transaction"
)

func TestSummarize(t *testing.T) {
	txs := []*transaction.Transaction{
		{Type: transaction.TypeIncome, Amount: 500000, Date: "2024-03-01"},
		{Type: transaction.TypeExpense, Amount: 100000, Date: "2024-03-05", PaymentMethod: transaction.PaymentDebit},
		{Type: transaction.TypeExpense, Amount: 50000, Date: "2024-03-10", PaymentMethod: transaction.PaymentCredit},
	}

	got := report.Summarize(txs)

	assert.Equal(t, transaction.Cents(500000), got.Income)
	assert.Equal(t, transaction.Cents(150000), got.Expense)
	assert.Equal(t, transaction.Cents(350000), got.Balance)
	assert.Equal(t, transaction.Cents(50000), got.CreditExpense)
}

func TestSummarize_Empty(t *testing.T) {
	got := report.Summarize(nil)

	assert.Zero(t, got.Income)
	assert.Zero(t, got.Expense)
	assert.Zero(t, got.Balance)
	assert.Zero(t, got.CreditExpense)
}

func TestByCategory(t *testing.T) {
	txs := []*transaction.Transaction{
		{Type: transaction.TypeExpense, Category: "alimentacao", Amount: 3000},
		{Type: transaction.TypeExpense, Category: "alimentacao", Amount: 2000},
		{Type: transaction.TypeExpense, Category: "lazer", Amount: 1500},
		{Type: transaction.TypeIncome, Category: "salario", Amount: 500000},
	}

	expense := report.ByCategory(txs, transaction.TypeExpense)
	require.Len(t, expense, 2)
	assert.Equal(t, transaction.Cents(5000), expense["alimentacao"])
	assert.Equal(t, transaction.Cents(1500), expense["lazer"])

	// Categories without matching transactions have no entry at all.
	_, ok := expense["moradia"]
	assert.False(t, ok)

	income := report.ByCategory(txs, transaction.TypeIncome)
	require.Len(t, income, 1)
	assert.Equal(t, transaction.Cents(500000), income["salario"])
}

func TestByMonth(t *testing.T) {
	txs := []*transaction.Transaction{
		{Type: transaction.TypeIncome, Amount: 500000, Date: "2024-02-01"},
		{Type: transaction.TypeExpense, Amount: 100000, Date: "2024-02-15"},
		{Type: transaction.TypeExpense, Amount: 40000, Date: "2024-03-02"},
	}

	buckets := report.ByMonth(txs)
	require.Len(t, buckets, 2)

	assert.Equal(t, transaction.Cents(500000), buckets["2024-02"].Income)
	assert.Equal(t, transaction.Cents(100000), buckets["2024-02"].Expense)
	assert.Zero(t, buckets["2024-03"].Income)
	assert.Equal(t, transaction.Cents(40000), buckets["2024-03"].Expense)

	assert.Equal(t, []string{"2024-02", "2024-03"}, report.Months(buckets))
}

func TestCreditCardBill(t *testing.T) {
	txs := []*transaction.Transaction{
		{Type: transaction.TypeExpense, Amount: 10000, Date: "2024-04-05", PaymentMethod: transaction.PaymentCredit},
		{Type: transaction.TypeExpense, Amount: 7000, Date: "2024-04-20", PaymentMethod: transaction.PaymentCredit},
		{Type: transaction.TypeExpense, Amount: 9999, Date: "2024-04-10", PaymentMethod: transaction.PaymentDebit},
		{Type: transaction.TypeExpense, Amount: 5000, Date: "2024-05-05", PaymentMethod: transaction.PaymentCredit},
	}

	assert.Equal(t, transaction.Cents(17000), report.CreditCardBill(txs, "2024-04"))
	assert.Equal(t, transaction.Cents(5000), report.CreditCardBill(txs, "2024-05"))
	assert.Zero(t, report.CreditCardBill(txs, "2024-06"))
}

func TestFutureInstallments(t *testing.T) {
	txs := []*transaction.Transaction{
		{Type: transaction.TypeExpense, Amount: 4000, Date: "2024-04-15", PaymentMethod: transaction.PaymentCredit},
		{Type: transaction.TypeExpense, Amount: 4000, Date: "2024-05-15", PaymentMethod: transaction.PaymentCredit},
		{Type: transaction.TypeExpense, Amount: 4000, Date: "2024-06-15", PaymentMethod: transaction.PaymentCredit},
		{Type: transaction.TypeExpense, Amount: 8000, Date: "2024-06-01", PaymentMethod: transaction.PaymentDebit},
	}

	assert.Equal(t, transaction.Cents(8000), report.FutureInstallments(txs, "2024-05"))
	assert.Equal(t, transaction.Cents(12000), report.FutureInstallments(txs, "2024-04"))
	assert.Zero(t, report.FutureInstallments(txs, "2024-07"))
}

func TestInstallmentSchedule(t *testing.T) {
	txs := []*transaction.Transaction{
		{ID: "1", Type: transaction.TypeExpense, Amount: 4000, Date: "2024-04-15", PaymentMethod: transaction.PaymentCredit},
		{ID: "2", Type: transaction.TypeExpense, Amount: 4000, Date: "2024-05-15", PaymentMethod: transaction.PaymentCredit},
		{ID: "3", Type: transaction.TypeExpense, Amount: 2500, Date: "2024-05-20", PaymentMethod: transaction.PaymentCredit},
		{ID: "4", Type: transaction.TypeExpense, Amount: 9999, Date: "2024-05-10", PaymentMethod: transaction.PaymentDebit},
	}

	schedule := report.InstallmentSchedule(txs, "2024-05")
	require.Len(t, schedule, 1)

	may := schedule["2024-05"]
	require.NotNil(t, may)
	assert.Equal(t, transaction.Cents(6500), may.Total)
	require.Len(t, may.Items, 2)
	assert.Equal(t, "2", may.Items[0].ID)
	assert.Equal(t, "3", may.Items[1].ID)
}

func TestBalanceIdentity(t *testing.T) {
	// Income 5000.00 against expense 1500.00 leaves 3500.00.
	txs := []*transaction.Transaction{
		{Type: transaction.TypeIncome, Amount: 500000, Date: "2024-01-05"},
		{Type: transaction.TypeExpense, Amount: 150000, Date: "2024-01-10"},
	}

	got := report.Summarize(txs)
	assert.Equal(t, transaction.Cents(500000), got.Income)
	assert.Equal(t, transaction.Cents(150000), got.Expense)
	assert.Equal(t, transaction.Cents(350000), got.Balance)
	assert.Zero(t, got.CreditExpense)
	assert.Equal(t, got.Income-got.Expense, got.Balance)
}
