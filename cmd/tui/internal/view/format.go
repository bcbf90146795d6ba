package view

import (
	"context"
	"strings"
	"time"

	"github.com/rmoreira/contas/internal/transaction"
)

const dbTimeout = 5 * time.Second

// FormatAmount renders cents as a pt-BR currency string, e.g. "R$ 1.234,56".
func FormatAmount(c transaction.Cents) string {
	s := c.String() // "1234.56"

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")

	var sb strings.Builder

	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			sb.WriteByte('.')
		}

		sb.WriteRune(r)
	}

	out := "R$ " + sb.String() + "," + fracPart
	if neg {
		out = "-" + out
	}

	return out
}

// SignedAmount prefixes the amount with + for income and - for expense.
func SignedAmount(tx *transaction.Transaction) string {
	if tx.Type == transaction.TypeIncome {
		return "+ " + FormatAmount(tx.Amount)
	}

	return "- " + FormatAmount(tx.Amount)
}

// FormatDate renders an ISO date in pt-BR order (dd/mm/yyyy).
func FormatDate(d transaction.Date) string {
	parts := strings.Split(string(d), "-")
	if len(parts) != 3 {
		return string(d)
	}

	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// DbCtx returns a context with a standard timeout for storage operations.
func DbCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), dbTimeout)
}
