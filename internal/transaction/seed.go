package transaction

import (
	"context"
	"time"
)

// SeedDemo fills an empty ledger with a month of sample activity so a
// fresh install has something to show. today is passed in explicitly; the
// sample dates are offsets from it. A non-empty ledger is left untouched.
func (s *Service) SeedDemo(ctx context.Context, today time.Time) error {
	existing, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		return nil
	}

	samples := []struct {
		params CreateParams
		days   int
	}{
		{CreateParams{Type: TypeIncome, Category: "salario", Amount: 500000, Description: "Salário mensal"}, -30},
		{CreateParams{Type: TypeExpense, Category: "moradia", Amount: 150000, Description: "Aluguel", PaymentMethod: PaymentDebit}, -28},
		{CreateParams{Type: TypeExpense, Category: "alimentacao", Amount: 45000, Description: "Supermercado", PaymentMethod: PaymentDebit}, -25},
		{CreateParams{Type: TypeExpense, Category: "transporte", Amount: 20000, Description: "Combustível", PaymentMethod: PaymentCredit}, -20},
		{CreateParams{Type: TypeIncome, Category: "freelance", Amount: 80000, Description: "Projeto web"}, -15},
		{CreateParams{Type: TypeExpense, Category: "lazer", Amount: 15000, Description: "Cinema e jantar", PaymentMethod: PaymentPix}, -10},
		{CreateParams{Type: TypeExpense, Category: "saude", Amount: 10000, Description: "Farmácia", PaymentMethod: PaymentCash}, -5},
		{CreateParams{Type: TypeExpense, Category: "educacao", Amount: 20000, Description: "Curso online", PaymentMethod: PaymentCredit}, -2},
	}

	for _, sample := range samples {
		p := sample.params
		p.Date = NewDate(today.AddDate(0, 0, sample.days))

		if _, err := s.Add(ctx, p); err != nil {
			return err
		}
	}

	return nil
}
