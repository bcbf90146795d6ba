package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/rmoreira/contas/cmd/tui/internal/view"
	"github.com/rmoreira/contas/internal/config"
	"github.com/rmoreira/contas/internal/database"
	"github.com/rmoreira/contas/internal/export"
	"github.com/rmoreira/contas/internal/transaction"
	txStore "github.com/rmoreira/contas/internal/transaction/store"
)

type model struct {
	txService     *transaction.Service
	exportService *export.Service

	currentView View

	addView       view.AddModel
	listView      view.ListModel
	dashboardView view.DashboardModel
	scheduleView  view.ScheduleModel
	exportView    view.ExportModel
}

type View int

const (
	ViewMenu      View = 0
	ViewAdd       View = 1
	ViewList      View = 2
	ViewDashboard View = 3
	ViewSchedule  View = 4
	ViewExport    View = 5
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.Open(cfg.Storage.Path)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	txSvc := transaction.NewService(txStore.New(db))
	expSvc := export.NewService(txSvc)

	return model{
		txService:     txSvc,
		exportService: expSvc,
		currentView:   ViewMenu,
		addView:       view.NewAddModel(txSvc),
		listView:      view.NewListModel(txSvc),
		dashboardView: view.NewDashboardModel(txSvc),
		scheduleView:  view.NewScheduleModel(txSvc),
		exportView:    view.NewExportModel(expSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewAdd
				m.addView = view.NewAddModel(m.txService)

				return m, m.addView.Init()
			case "2":
				m.currentView = ViewList
				m.listView = view.NewListModel(m.txService)

				return m, m.listView.Init()
			case "3":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.txService)

				return m, m.dashboardView.Init()
			case "4":
				m.currentView = ViewSchedule
				m.scheduleView = view.NewScheduleModel(m.txService)

				return m, m.scheduleView.Init()
			case "5":
				m.currentView = ViewExport
				m.exportView = view.NewExportModel(m.exportService)

				return m, m.exportView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewAdd:
		var newModel tea.Model
		newModel, cmd = m.addView.Update(msg)
		m.addView = newModel.(view.AddModel)
	case ViewList:
		var newModel tea.Model
		newModel, cmd = m.listView.Update(msg)
		m.listView = newModel.(view.ListModel)
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewSchedule:
		var newModel tea.Model
		newModel, cmd = m.scheduleView.Update(msg)
		m.scheduleView = newModel.(view.ScheduleModel)
	case ViewExport:
		var newModel tea.Model
		newModel, cmd = m.exportView.Update(msg)
		m.exportView = newModel.(view.ExportModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Controle Financeiro\n\n" +
				"1. Nova Transação\n" +
				"2. Listar Transações\n" +
				"3. Painel\n" +
				"4. Cartão de Crédito\n" +
				"5. Exportar CSV\n\n" +
				"q. Sair",
		)
	case ViewAdd:
		return m.addView.View()
	case ViewList:
		return m.listView.View()
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewSchedule:
		return m.scheduleView.View()
	case ViewExport:
		return m.exportView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
