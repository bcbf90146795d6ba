package transaction

import (
	"time"
)

// Type represents the type of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// PaymentMethod represents how an expense was paid. Income transactions
// carry no payment method.
type PaymentMethod string

const (
	PaymentDebit  PaymentMethod = "debit"
	PaymentCredit PaymentMethod = "credit"
	PaymentCash   PaymentMethod = "cash"
	PaymentPix    PaymentMethod = "pix"
)

// Transaction represents a single ledger entry. Records are immutable once
// created; the only mutation the ledger supports is deletion by ID.
type Transaction struct {
	ID          string    `json:"id"`
	Type        Type      `json:"type"`
	Category    string    `json:"category"`
	Amount      Cents     `json:"amount"`
	Date        Date      `json:"date"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`

	PaymentMethod PaymentMethod `json:"paymentMethod,omitempty"`

	// Installments is 1 for plain transactions. For a credit purchase split
	// into N parts, each part carries Installments == N, a 1-based
	// CurrentInstallment and the pre-split OriginalAmount.
	Installments       int   `json:"installments"`
	CurrentInstallment int   `json:"currentInstallment,omitempty"`
	OriginalAmount     Cents `json:"originalAmount,omitempty"`
}

// IsInstallment reports whether the transaction is part of a credit-card
// installment series.
func (t *Transaction) IsInstallment() bool {
	return t.Installments > 1
}

// InstallmentPart returns the 1-based index, the series size and the
// original purchase amount. ok is false for plain transactions.
func (t *Transaction) InstallmentPart() (index, count int, original Cents, ok bool) {
	if !t.IsInstallment() {
		return 0, 0, 0, false
	}

	return t.CurrentInstallment, t.Installments, t.OriginalAmount, true
}
