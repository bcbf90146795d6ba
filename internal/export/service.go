// Package export renders filtered ledger listings as CSV reports in the
// same shape the original spreadsheet tooling expects: semicolon
// delimiters, every field quoted, decimal comma, pt-BR dates and a UTF-8
// byte-order mark so spreadsheet apps pick the right charset.
package export

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rmoreira/contas/internal/category"
	"github.com/rmoreira/contas/internal/transaction"
)

const header = "Data;Tipo;Categoria;Descrição;Valor"

type Service struct {
	transactions *transaction.Service
}

func NewService(txService *transaction.Service) *Service {
	return &Service{transactions: txService}
}

// Filename names a report exported on the given day.
func Filename(day time.Time) string {
	return fmt.Sprintf("relatorio_financeiro_%s.csv", day.Format(time.DateOnly))
}

// Export writes the transactions matching the filter to w as CSV and
// returns how many rows were written. Zero rows still produces a valid
// file with just the header; whether that is worth saving is the caller's
// call.
func (s *Service) Export(ctx context.Context, filter transaction.Filter, w io.Writer) (int, error) {
	txs, err := s.transactions.List(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("listing transactions: %w", err)
	}

	var sb strings.Builder

	sb.WriteString("\ufeff")
	writeRow(&sb, strings.Split(header, ";"))

	for _, tx := range txs {
		writeRow(&sb, []string{
			formatDate(tx.Date),
			typeLabel(tx.Type),
			category.Lookup(tx.Type, tx.Category).Label,
			tx.Description,
			strings.ReplaceAll(tx.Amount.String(), ".", ","),
		})
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return 0, fmt.Errorf("writing csv: %w", err)
	}

	return len(txs), nil
}

// writeRow quotes every field, doubling embedded quotes.
func writeRow(sb *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			sb.WriteByte(';')
		}

		sb.WriteByte('"')
		sb.WriteString(strings.ReplaceAll(f, `"`, `""`))
		sb.WriteByte('"')
	}

	sb.WriteByte('\n')
}

// formatDate renders an ISO date as dd/mm/yyyy.
func formatDate(d transaction.Date) string {
	parts := strings.Split(string(d), "-")
	if len(parts) != 3 {
		return string(d)
	}

	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

func typeLabel(t transaction.Type) string {
	if t == transaction.TypeIncome {
		return "Receita"
	}

	return "Despesa"
}
