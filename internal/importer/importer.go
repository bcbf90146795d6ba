// Package importer parses exported CSV reports back into purchase
// requests, so a ledger can be rebuilt from its own reports.
package importer

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rmoreira/contas/internal/category"
	"github.com/rmoreira/contas/internal/encoding"
	"github.com/rmoreira/contas/internal/transaction"
)

const (
	colDate     = "Data"
	colType     = "Tipo"
	colCategory = "Categoria"
	colDesc     = "Descrição"
	colAmount   = "Valor"
)

// Suggester resolves a category from a purchase description when the CSV
// carries a label the registry does not know.
type Suggester interface {
	Suggest(ctx context.Context, description string) (string, error)
}

type Service struct {
	suggester Suggester
}

func NewService(suggester Suggester) *Service {
	return &Service{suggester: suggester}
}

// Parse reads a report CSV and returns one purchase request per data row.
// Rows that do not parse as data (footers, blank lines) are skipped.
// Imported rows are always plain transactions: the report format has no
// payment-method or installment columns.
func (s *Service) Parse(ctx context.Context, r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, err := encoding.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("normalizing encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	idx := map[string]int{}
	headerFound := false

	var params []transaction.CreateParams

	for _, row := range rows {
		if !headerFound {
			for i, col := range row {
				switch strings.TrimSpace(col) {
				case colDate, colType, colCategory, colDesc, colAmount:
					idx[strings.TrimSpace(col)] = i
				}
			}

			// Date and amount are the minimum to call it a header.
			if _, ok := idx[colDate]; ok {
				if _, ok := idx[colAmount]; ok {
					headerFound = true
				}
			}

			continue
		}

		p, ok := s.parseRow(ctx, row, idx)
		if !ok {
			continue
		}

		params = append(params, p)
	}

	if !headerFound {
		return nil, fmt.Errorf("no report header found")
	}

	return params, nil
}

func (s *Service) parseRow(ctx context.Context, row []string, idx map[string]int) (transaction.CreateParams, bool) {
	field := func(name string) string {
		i, ok := idx[name]
		if !ok || i >= len(row) {
			return ""
		}

		return strings.TrimSpace(row[i])
	}

	date, err := time.Parse("02/01/2006", field(colDate))
	if err != nil {
		// Not a data row.
		return transaction.CreateParams{}, false
	}

	typ := transaction.TypeExpense
	if field(colType) == "Receita" {
		typ = transaction.TypeIncome
	}

	amount, err := transaction.ParseCents(field(colAmount))
	if err != nil {
		return transaction.CreateParams{}, false
	}

	desc := field(colDesc)

	return transaction.CreateParams{
		Type:         typ,
		Category:     s.resolveCategory(ctx, typ, field(colCategory), desc),
		Amount:       amount,
		Date:         transaction.NewDate(date),
		Description:  desc,
		Installments: 1,
	}, true
}

// resolveCategory maps the CSV's display label back to a registry key,
// falling back to learned suggestions and finally to the catch-all.
func (s *Service) resolveCategory(ctx context.Context, typ transaction.Type, label, desc string) string {
	if key, ok := category.KeyForLabel(typ, label); ok {
		return key
	}

	if s.suggester != nil {
		if key, err := s.suggester.Suggest(ctx, desc); err == nil && key != "" {
			return key
		}
	}

	return category.Fallback(typ)
}
