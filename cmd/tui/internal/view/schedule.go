package view

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rmoreira/contas/internal/report"
	"github.com/rmoreira/contas/internal/transaction"
)

type ScheduleModel struct {
	CommonModel
	txService *transaction.Service

	txs     []*transaction.Transaction
	loading bool
	err     error
}

type loadScheduleMsg struct {
	txs []*transaction.Transaction
	err error
}

func NewScheduleModel(txSvc *transaction.Service) ScheduleModel {
	return ScheduleModel{txService: txSvc, loading: true}
}

func (m ScheduleModel) Init() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.txService.List(ctx, transaction.Filter{})

		return loadScheduleMsg{txs: txs, err: err}
	}
}

func (m ScheduleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadScheduleMsg:
		m.loading = false
		m.txs = msg.txs
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.Init()
		}
	}

	return m, nil
}

func (m ScheduleModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Carregando parcelas...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Erro: %v", m.err))
	}

	now := time.Now()
	currentMonth := now.Format("2006-01")
	nextMonth := now.AddDate(0, 1, 0).Format("2006-01")

	bill := report.CreditCardBill(m.txs, currentMonth)
	future := report.FutureInstallments(m.txs, nextMonth)

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyle.Render(fmt.Sprintf("Fatura do Cartão (%s)\n", currentMonth)+expenseStyle.Render(FormatAmount(bill))),
		cardStyle.Render("Parcelas Futuras\n"+expenseStyle.Render(FormatAmount(future))),
	)

	sections := []string{
		lipgloss.NewStyle().Bold(true).Render("Cartão de Crédito"),
		cards,
		m.renderSchedule(nextMonth),
		"[r] atualizar | [esc] voltar",
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n\n"))
}

func (m ScheduleModel) renderSchedule(fromMonth string) string {
	schedule := report.InstallmentSchedule(m.txs, fromMonth)
	if len(schedule) == 0 {
		return "Próximas Faturas\n  Nenhuma parcela futura."
	}

	var sb strings.Builder

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Próximas Faturas"))

	for _, month := range report.Months(schedule) {
		entry := schedule[month]

		sb.WriteString(fmt.Sprintf("\n  %s  %s (%d parcelas)",
			month, FormatAmount(entry.Total), len(entry.Items)))

		for _, tx := range entry.Items {
			part := "—"
			if index, count, _, ok := tx.InstallmentPart(); ok {
				part = fmt.Sprintf("%d/%d", index, count)
			}

			sb.WriteString(fmt.Sprintf("\n      %-24s %5s %12s",
				tx.Description, part, FormatAmount(tx.Amount)))
		}
	}

	return sb.String()
}
