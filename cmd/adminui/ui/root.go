package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateLogin state = iota
	stateDashboard
)

type RootModel struct {
	State     state
	Login     LoginModel
	Dashboard DashboardModel
	Quitting  bool
	width     int
	height    int
}

func NewRootModel(host string, port int) RootModel {
	return RootModel{
		State: stateLogin,
		Login: NewLoginModel(host, port),
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.State == stateDashboard {
			m.Dashboard.Table.SetHeight(msg.Height - 10)
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.Quitting = true
			return m, tea.Quit
		}

	case loginSuccessMsg:
		m.State = stateDashboard
		m.Dashboard = NewDashboardModel(msg.Client, m.width, m.height)
		return m, m.Dashboard.Init()
	}

	switch m.State {
	case stateLogin:
		if err, ok := msg.(errMsg); ok {
			m.Login.Err = err
		}
		newLogin, cmd := m.Login.Update(msg)
		m.Login = newLogin
		cmds = append(cmds, cmd)

	case stateDashboard:
		newDash, cmd := m.Dashboard.Update(msg)
		m.Dashboard = newDash
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m RootModel) View() string {
	if m.Quitting {
		return "Bye!\n"
	}
	switch m.State {
	case stateLogin:
		return m.Login.View()
	case stateDashboard:
		return m.Dashboard.View()
	}
	return "Unknown state"
}
