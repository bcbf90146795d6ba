// Package report computes summary figures over transaction sequences. All
// functions are pure: they never read the clock or touch storage, and they
// are total over any input including the empty sequence.
package report

import (
	"sort"

	"github.com/rmoreira/contas/internal/transaction"
)

// Totals summarizes a transaction sequence. CreditExpense is the portion
// of Expense paid by credit card.
type Totals struct {
	Income        transaction.Cents
	Expense       transaction.Cents
	Balance       transaction.Cents
	CreditExpense transaction.Cents
}

// MonthTotals accumulates income and expense for one month bucket.
type MonthTotals struct {
	Income  transaction.Cents
	Expense transaction.Cents
}

// MonthSchedule is one month of a credit-card payment schedule.
type MonthSchedule struct {
	Total transaction.Cents
	Items []*transaction.Transaction
}

// Summarize computes income, expense, balance and the credit-card share of
// the expense total.
func Summarize(txs []*transaction.Transaction) Totals {
	var t Totals

	for _, tx := range txs {
		switch tx.Type {
		case transaction.TypeIncome:
			t.Income += tx.Amount
		case transaction.TypeExpense:
			t.Expense += tx.Amount

			if tx.PaymentMethod == transaction.PaymentCredit {
				t.CreditExpense += tx.Amount
			}
		}
	}

	t.Balance = t.Income - t.Expense

	return t
}

// ByCategory sums amounts per category, restricted to transactions of the
// given type. Categories without matching transactions have no entry.
func ByCategory(txs []*transaction.Transaction, typ transaction.Type) map[string]transaction.Cents {
	sums := make(map[string]transaction.Cents)

	for _, tx := range txs {
		if tx.Type == typ {
			sums[tx.Category] += tx.Amount
		}
	}

	return sums
}

// ByMonth buckets transactions by the date's YYYY-MM prefix, summing
// income and expense separately per bucket.
func ByMonth(txs []*transaction.Transaction) map[string]MonthTotals {
	buckets := make(map[string]MonthTotals)

	for _, tx := range txs {
		month := tx.Date.Month()
		b := buckets[month]

		switch tx.Type {
		case transaction.TypeIncome:
			b.Income += tx.Amount
		case transaction.TypeExpense:
			b.Expense += tx.Amount
		}

		buckets[month] = b
	}

	return buckets
}

// CreditCardBill sums the credit-card charges falling in the given
// YYYY-MM month.
func CreditCardBill(txs []*transaction.Transaction, month string) transaction.Cents {
	var total transaction.Cents

	for _, tx := range txs {
		if tx.PaymentMethod == transaction.PaymentCredit && tx.Date.Month() == month {
			total += tx.Amount
		}
	}

	return total
}

// FutureInstallments sums credit-card charges dated in or after fromMonth
// (YYYY-MM). The caller chooses the cutoff, typically one calendar month
// after today.
func FutureInstallments(txs []*transaction.Transaction, fromMonth string) transaction.Cents {
	var total transaction.Cents

	for _, tx := range txs {
		if tx.PaymentMethod == transaction.PaymentCredit && string(tx.Date) >= fromMonth {
			total += tx.Amount
		}
	}

	return total
}

// InstallmentSchedule groups credit-card charges from fromMonth onward by
// month, keeping a running total and the contributing transactions per
// bucket in ledger order.
func InstallmentSchedule(txs []*transaction.Transaction, fromMonth string) map[string]*MonthSchedule {
	schedule := make(map[string]*MonthSchedule)

	for _, tx := range txs {
		if tx.PaymentMethod != transaction.PaymentCredit || string(tx.Date) < fromMonth {
			continue
		}

		month := tx.Date.Month()

		bucket, ok := schedule[month]
		if !ok {
			bucket = &MonthSchedule{}
			schedule[month] = bucket
		}

		bucket.Total += tx.Amount
		bucket.Items = append(bucket.Items, tx)
	}

	return schedule
}

// Months returns the bucket keys of a by-month mapping in chronological
// order. YYYY-MM strings sort chronologically as plain strings.
func Months[V any](buckets map[string]V) []string {
	months := make([]string, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}

	sort.Strings(months)

	return months
}
