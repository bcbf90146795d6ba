package view

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rmoreira/contas/internal/category"
	"github.com/rmoreira/contas/internal/transaction"
)

type ListModel struct {
	CommonModel
	txService *transaction.Service

	table table.Model
	txs   []*transaction.Transaction

	// Month filter cycling: all, this month, last month.
	monthFilterIdx int

	loading bool
	err     error
	status  string
}

type loadListMsg struct {
	txs []*transaction.Transaction
	err error
}

type deleteDoneMsg struct {
	err error
}

func NewListModel(txSvc *transaction.Service) ListModel {
	columns := []table.Column{
		{Title: "Data", Width: 12},
		{Title: "Categoria", Width: 20},
		{Title: "Descrição", Width: 30},
		{Title: "Parcela", Width: 8},
		{Title: "Valor", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ListModel{
		txService: txSvc,
		table:     t,
		loading:   true,
	}
}

func (m ListModel) Init() tea.Cmd {
	return m.loadTxsCmd()
}

func (m ListModel) filter() transaction.Filter {
	now := time.Now()

	switch m.monthFilterIdx {
	case 1:
		return transaction.Filter{Month: now.Format("2006-01")}
	case 2:
		return transaction.Filter{Month: now.AddDate(0, -1, 0).Format("2006-01")}
	}

	return transaction.Filter{}
}

func (m ListModel) loadTxsCmd() tea.Cmd {
	filter := m.filter()

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.txService.List(ctx, filter)

		return loadListMsg{txs: txs, err: err}
	}
}

func (m *ListModel) refreshTable() {
	rows := make([]table.Row, len(m.txs))

	for i, tx := range m.txs {
		info := category.Lookup(tx.Type, tx.Category)

		part := "—"
		if idx, count, _, ok := tx.InstallmentPart(); ok {
			part = fmt.Sprintf("%d/%d", idx, count)
		}

		rows[i] = table.Row{
			FormatDate(tx.Date),
			info.Icon + " " + info.Label,
			tx.Description,
			part,
			SignedAmount(tx),
		}
	}

	m.table.SetRows(rows)
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadListMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.txs = msg.txs
		m.refreshTable()

		return m, nil

	case deleteDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Erro ao excluir: %v", msg.err)
			return m, nil
		}

		m.status = "Lançamento excluído."

		return m, m.loadTxsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadTxsCmd()
		case "m":
			m.monthFilterIdx = (m.monthFilterIdx + 1) % 3
			return m, m.loadTxsCmd()
		case "d":
			return m, m.deleteSelectedCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m ListModel) deleteSelectedCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.txs) {
		return nil
	}

	id := m.txs[idx].ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return deleteDoneMsg{err: m.txService.Delete(ctx, id)}
	}
}

func (m ListModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Carregando lançamentos...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Erro: %v", m.err))
	}

	monthLabels := []string{"Todos", "Este mês", "Mês passado"}

	header := fmt.Sprintf("Filtro: [m] Mês: %s | [d] excluir | [r] atualizar | [esc] voltar",
		monthLabels[m.monthFilterIdx])

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.status != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, m.status)
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}
