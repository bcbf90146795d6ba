package view

import (
	"fmt"
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/rmoreira/contas/internal/category"
	"github.com/rmoreira/contas/internal/transaction"
)

type AddModel struct {
	CommonModel
	txService *transaction.Service

	form   *huh.Form
	status string

	// Form bindings
	formType         string
	formCategory     string
	formAmount       string
	formDate         string
	formDescription  string
	formPayment      string
	formInstallments string
}

type addSavedMsg struct {
	created int
	err     error
}

func NewAddModel(txSvc *transaction.Service) AddModel {
	m := AddModel{
		txService:        txSvc,
		formType:         string(transaction.TypeExpense),
		formDate:         time.Now().Format(time.DateOnly),
		formInstallments: "1",
	}

	m.form = m.buildForm()

	return m
}

func (m *AddModel) buildForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("type").
				Title("Tipo").
				Options(
					huh.NewOption("Despesa", string(transaction.TypeExpense)),
					huh.NewOption("Receita", string(transaction.TypeIncome)),
				).
				Value(&m.formType),

			huh.NewSelect[string]().
				Key("category").
				Title("Categoria").
				OptionsFunc(func() []huh.Option[string] {
					typ := transaction.Type(m.formType)

					var opts []huh.Option[string]
					for _, key := range category.Keys(typ) {
						info := category.Lookup(typ, key)
						opts = append(opts, huh.NewOption(info.Icon+" "+info.Label, key))
					}

					return opts
				}, &m.formType).
				Value(&m.formCategory),

			huh.NewInput().
				Key("amount").
				Title("Valor").
				Placeholder("0,00").
				Validate(func(s string) error {
					c, err := transaction.ParseCents(s)
					if err != nil || c <= 0 {
						return fmt.Errorf("informe um valor positivo")
					}
					return nil
				}).
				Value(&m.formAmount),

			huh.NewInput().
				Key("date").
				Title("Data (AAAA-MM-DD)").
				Validate(func(s string) error {
					if _, err := transaction.ParseDate(s); err != nil {
						return fmt.Errorf("data inválida")
					}
					return nil
				}).
				Value(&m.formDate),

			huh.NewInput().
				Key("description").
				Title("Descrição").
				Value(&m.formDescription),

			huh.NewSelect[string]().
				Key("payment").
				Title("Pagamento").
				OptionsFunc(func() []huh.Option[string] {
					if m.formType == string(transaction.TypeIncome) {
						return []huh.Option[string]{huh.NewOption("—", "")}
					}

					var opts []huh.Option[string]
					for _, pm := range category.PaymentMethods() {
						info := category.PaymentMethod(pm)
						opts = append(opts, huh.NewOption(info.Icon+" "+info.Label, string(pm)))
					}

					return opts
				}, &m.formType).
				Value(&m.formPayment),

			huh.NewInput().
				Key("installments").
				Title("Parcelas").
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n < 1 || n > transaction.MaxInstallments {
						return fmt.Errorf("entre 1 e %d", transaction.MaxInstallments)
					}
					return nil
				}).
				Value(&m.formInstallments),
		),
	).WithWidth(50).WithShowHelp(true)
}

func (m AddModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

		return m, nil

	case addSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Erro: %v", msg.err)
			return m, nil
		}

		m.status = fmt.Sprintf("Lançamento adicionado (%d registro(s)).", msg.created)

		return m, Back

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m AddModel) saveCmd() tea.Cmd {
	installments, _ := strconv.Atoi(m.formInstallments)
	amount, _ := transaction.ParseCents(m.formAmount)

	params := transaction.CreateParams{
		Type:          transaction.Type(m.formType),
		Category:      m.formCategory,
		Amount:        amount,
		Date:          transaction.Date(m.formDate),
		Description:   m.formDescription,
		PaymentMethod: transaction.PaymentMethod(m.formPayment),
		Installments:  installments,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.txService.Add(ctx, params)

		return addSavedMsg{created: len(txs), err: err}
	}
}

func (m AddModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Render("Novo Lançamento")

	content := title + "\n\n" + m.form.View()
	if m.status != "" {
		content += "\n" + m.status
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}
