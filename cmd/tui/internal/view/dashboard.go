package view

import (
	"fmt"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rmoreira/contas/internal/category"
	"github.com/rmoreira/contas/internal/report"
	"github.com/rmoreira/contas/internal/transaction"
)

const barWidth = 30

var (
	incomeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	expenseStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
	cardStyle    = lipgloss.NewStyle().
			Padding(0, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
)

type DashboardModel struct {
	CommonModel
	txService *transaction.Service

	txs     []*transaction.Transaction
	loading bool
	err     error
}

type loadDashboardMsg struct {
	txs []*transaction.Transaction
	err error
}

func NewDashboardModel(txSvc *transaction.Service) DashboardModel {
	return DashboardModel{txService: txSvc, loading: true}
}

func (m DashboardModel) Init() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.txService.List(ctx, transaction.Filter{})

		return loadDashboardMsg{txs: txs, err: err}
	}
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDashboardMsg:
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

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Carregando painel...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Erro: %v", m.err))
	}

	totals := report.Summarize(m.txs)

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyle.Render("Receitas\n"+incomeStyle.Render(FormatAmount(totals.Income))),
		cardStyle.Render("Despesas\n"+expenseStyle.Render(FormatAmount(totals.Expense))),
		cardStyle.Render("Saldo\n"+FormatAmount(totals.Balance)),
		cardStyle.Render("Cartão\n"+expenseStyle.Render(FormatAmount(totals.CreditExpense))),
	)

	sections := []string{
		lipgloss.NewStyle().Bold(true).Render("Painel"),
		cards,
		renderCategoryBars("Despesas por Categoria", m.txs, transaction.TypeExpense),
		renderCategoryBars("Receitas por Categoria", m.txs, transaction.TypeIncome),
		renderMonthlyTable(m.txs),
		"[r] atualizar | [esc] voltar",
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(sections, "\n\n"))
}

// renderCategoryBars draws a horizontal percentage bar per category,
// largest share first.
func renderCategoryBars(title string, txs []*transaction.Transaction, typ transaction.Type) string {
	sums := report.ByCategory(txs, typ)
	if len(sums) == 0 {
		return title + "\n  Nenhum dado disponível."
	}

	var total transaction.Cents
	for _, v := range sums {
		total += v
	}

	var sb strings.Builder

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render(title))

	keys := make([]string, 0, len(sums))
	for key := range sums {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool { return sums[keys[i]] > sums[keys[j]] })

	for _, key := range keys {
		value := sums[key]
		info := category.Lookup(typ, key)
		share := float64(value) / float64(total)
		filled := int(share * barWidth)

		bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

		sb.WriteString(fmt.Sprintf("\n  %s %-14s %s %s (%.1f%%)",
			info.Icon, info.Label, bar, FormatAmount(value), share*100))
	}

	return sb.String()
}

func renderMonthlyTable(txs []*transaction.Transaction) string {
	buckets := report.ByMonth(txs)
	if len(buckets) == 0 {
		return "Evolução Mensal\n  Nenhum dado disponível."
	}

	var sb strings.Builder

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Evolução Mensal"))
	sb.WriteString(fmt.Sprintf("\n  %-9s %16s %16s %16s", "Mês", "Receitas", "Despesas", "Saldo"))

	for _, month := range report.Months(buckets) {
		b := buckets[month]
		sb.WriteString(fmt.Sprintf("\n  %-9s %16s %16s %16s",
			month,
			FormatAmount(b.Income),
			FormatAmount(b.Expense),
			FormatAmount(b.Income-b.Expense)))
	}

	return sb.String()
}
