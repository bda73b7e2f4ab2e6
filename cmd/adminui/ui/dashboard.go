package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type DashboardModel struct {
	Client *Client
	Table  table.Model
	Stats  Stats
	Users  []UserRow
	Status string
	Err    error
}

type dashboardDataMsg struct {
	Stats Stats
	Users []UserRow
}

type userDeletedMsg struct {
	Username string
}

func NewDashboardModel(c *Client, width, height int) DashboardModel {
	columns := []table.Column{
		{Title: "ID", Width: 8},
		{Title: "Username", Width: 30},
		{Title: "Registered", Width: 24},
	}

	h := height - 10
	if h < 5 {
		h = 5
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(h),
	)

	sStyle := table.DefaultStyles()
	sStyle.Header = sStyle.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	sStyle.Selected = sStyle.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(sStyle)

	return DashboardModel{Client: c, Table: t}
}

func (m DashboardModel) Init() tea.Cmd {
	return m.refreshCmd
}

func (m DashboardModel) refreshCmd() tea.Msg {
	stats, err := m.Client.Stats()
	if err != nil {
		return errMsg(err)
	}
	users, err := m.Client.Users()
	if err != nil {
		return errMsg(err)
	}
	return dashboardDataMsg{Stats: stats, Users: users}
}

func (m DashboardModel) deleteSelectedCmd() tea.Cmd {
	selected := m.Table.SelectedRow()
	if len(selected) == 0 {
		return nil
	}
	id, err := strconv.ParseUint(selected[0], 10, 32)
	if err != nil {
		return nil
	}
	username := selected[1]
	client := m.Client
	return func() tea.Msg {
		if err := client.DeleteUser(uint(id)); err != nil {
			return errMsg(err)
		}
		return userDeletedMsg{Username: username}
	}
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.Status = "refreshing..."
			return m, m.refreshCmd
		case "d":
			return m, m.deleteSelectedCmd()
		case "q":
			return m, tea.Quit
		}

	case dashboardDataMsg:
		m.Err = nil
		m.Status = ""
		m.Stats = msg.Stats
		m.Users = msg.Users
		rows := []table.Row{}
		for _, u := range msg.Users {
			rows = append(rows, table.Row{
				strconv.FormatUint(uint64(u.ID), 10),
				u.Username,
				u.CreatedAt.Format("2006-01-02 15:04"),
			})
		}
		m.Table.SetRows(rows)

	case userDeletedMsg:
		m.Status = fmt.Sprintf("deleted %s", msg.Username)
		return m, m.refreshCmd

	case errMsg:
		m.Err = msg
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m DashboardModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("IELTS Sim - Admin Dashboard") + "\n\n")
	b.WriteString(fmt.Sprintf("Users: %d   Tests: %d   Average band: %.1f\n\n",
		m.Stats.TotalUsers, m.Stats.TotalTests, m.Stats.AverageBandScore))
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("'r' refresh, 'd' delete selected user, 'q' quit, up/down to navigate"))

	if m.Status != "" {
		b.WriteString("\n" + statusMessageStyle(m.Status))
	}
	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
