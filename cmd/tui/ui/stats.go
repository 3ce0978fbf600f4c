package ui

import (
	"fmt"
	"strings"

	"github.com/Varun5711/taskhub/cmd/tui/client"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type statsSuccessMsg struct {
	stats *client.Stats
}

type statsErrorMsg struct {
	err error
}

type StatsModel struct {
	stats   *client.Stats
	loading bool
	err     error
	client  *client.Client
	loaded  bool
}

func NewStatsModel() *StatsModel {
	return &StatsModel{}
}

func (m *StatsModel) SetClient(c *client.Client) {
	m.client = c
}

func (m *StatsModel) Init() tea.Cmd {
	return nil
}

func fetchStatsCmd(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		stats, err := c.GetStats()
		if err != nil {
			return statsErrorMsg{err: err}
		}
		return statsSuccessMsg{stats: stats}
	}
}

func (m *StatsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case statsSuccessMsg:
		m.loading = false
		m.stats = msg.stats
		m.err = nil
		m.loaded = true
		return m, nil

	case statsErrorMsg:
		m.loading = false
		m.err = msg.err
		m.loaded = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			if !m.loading {
				m.loading = true
				m.err = nil
				return m, fetchStatsCmd(m.client)
			}
		}
	}

	if !m.loaded && !m.loading && m.client != nil {
		m.loading = true
		return m, fetchStatsCmd(m.client)
	}

	return m, nil
}

func statRow(label string, value uint64) string {
	return lipgloss.JoinHorizontal(lipgloss.Left,
		LabelStyle.Render(label),
		ValueStyle.Render(fmt.Sprintf("%d", value)),
	)
}

func (m *StatsModel) View() string {
	var b strings.Builder

	icon := lipgloss.NewStyle().Foreground(Success).Render("📊")
	header := icon + " " + TitleStyle.Render("ACTIVITY STATS") + " " + icon
	b.WriteString(lipgloss.NewStyle().
		Width(80).
		Align(lipgloss.Center).
		MarginTop(2).
		MarginBottom(2).
		Render(header))
	b.WriteString("\n\n")

	if m.loading {
		loading := lipgloss.NewStyle().
			Foreground(Accent).
			Render("⏳ Loading stats...")
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).MarginTop(2).Render(loading))
		b.WriteString("\n")
	} else if m.err != nil {
		errMsg := ErrorStyle.Render("❌ " + m.err.Error())
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).MarginTop(2).Render(errMsg))
		b.WriteString("\n")
	} else if m.stats != nil {
		rows := lipgloss.JoinVertical(lipgloss.Left,
			statRow("Tasks created:", m.stats.Created),
			statRow("Tasks updated:", m.stats.Updated),
			statRow("Tasks deleted:", m.stats.Deleted),
			"",
			statRow("Last 24 hours:", m.stats.Last24Hours),
			statRow("Last 7 days:", m.stats.Last7Days),
		)

		statsBox := BoxStyle.Width(50).Render(rows)
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(statsBox))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := InfoStyle.Render("r refresh  •  q back")
	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(help))

	return BoxStyle.Width(76).Render(b.String())
}
