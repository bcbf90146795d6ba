package transaction

import (
	"context"
	"fmt"
	"strings"
)

// MaxInstallments caps how many parts a credit purchase may be split into.
// The cap prevents a mistyped count from fanning out into an unbounded
// series of records.
const MaxInstallments = 60

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=transaction
type Repository interface {
	// Load returns a snapshot of the full ledger, newest first.
	Load(ctx context.Context) ([]*Transaction, error)

	// Add assigns IDs and creation timestamps, prepends the transactions to
	// the ledger and persists it. A series is persisted atomically.
	Add(ctx context.Context, txs []*Transaction) error

	// Remove deletes the transaction with the given ID and persists the
	// ledger. Removing an unknown ID is a no-op.
	Remove(ctx context.Context, id string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateParams describes a user-submitted purchase. Installments of zero
// is treated as one; PaymentMethod is ignored for income.
type CreateParams struct {
	Type          Type
	Category      string
	Amount        Cents
	Date          Date
	Description   string
	PaymentMethod PaymentMethod
	Installments  int
}

func (p CreateParams) validate() error {
	if !p.Type.Valid() {
		return ErrInvalidType
	}

	if p.Amount <= 0 {
		return ErrInvalidAmount
	}

	if _, err := ParseDate(string(p.Date)); err != nil {
		return err
	}

	n := p.Installments
	if n < 0 || n > MaxInstallments {
		return fmt.Errorf("%w: %d", ErrInvalidInstallmentCount, n)
	}

	return nil
}

// Add validates the purchase, expands credit installment purchases into a
// dated series and persists the resulting records. Validation happens
// before any ledger mutation, so an invalid purchase never leaves a
// partial series behind. The created transactions are returned in
// installment order.
func (s *Service) Add(ctx context.Context, p CreateParams) ([]*Transaction, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	txs := expand(p)
	if err := s.repo.Add(ctx, txs); err != nil {
		return nil, fmt.Errorf("adding transactions: %w", err)
	}

	return txs, nil
}

// expand builds the transaction records for a purchase. A credit purchase
// with N >= 2 installments becomes N records dated one calendar month
// apart; anything else becomes a single record.
func expand(p CreateParams) []*Transaction {
	p.Description = strings.TrimSpace(p.Description)

	if p.Type == TypeIncome {
		p.PaymentMethod = ""
	}

	n := p.Installments
	if p.Type == TypeIncome || p.PaymentMethod != PaymentCredit || n <= 1 {
		return []*Transaction{{
			Type:          p.Type,
			Category:      p.Category,
			Amount:        p.Amount,
			Date:          p.Date,
			Description:   p.Description,
			PaymentMethod: p.PaymentMethod,
			Installments:  1,
		}}
	}

	// Integer split; the first installment absorbs the remainder so the
	// series sums exactly to the purchase amount.
	part := p.Amount / Cents(n)
	first := part + p.Amount - part*Cents(n)

	txs := make([]*Transaction, n)

	for i := 0; i < n; i++ {
		amount := part
		if i == 0 {
			amount = first
		}

		txs[i] = &Transaction{
			Type:               p.Type,
			Category:           p.Category,
			Amount:             amount,
			Date:               p.Date.AddMonths(i),
			Description:        p.Description,
			PaymentMethod:      PaymentCredit,
			Installments:       n,
			CurrentInstallment: i + 1,
			OriginalAmount:     p.Amount,
		}
	}

	return txs
}

// List returns the transactions matching the filter, newest first.
func (s *Service) List(ctx context.Context, f Filter) ([]*Transaction, error) {
	txs, err := s.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	return Apply(txs, f), nil
}

// Delete removes a transaction by ID. Deleting an unknown ID is not an
// error.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Remove(ctx, id)
}
