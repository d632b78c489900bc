package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/balkashynov/logbook/internal/models"
	"github.com/balkashynov/logbook/internal/workout"
)

// chartEntries is how many sets the history chart shows
const chartEntries = 10

// dashboardView is the screen the dashboard currently shows
type dashboardView int

const (
	viewRoster dashboardView = iota
	viewHistory
)

// DashboardModel shows the summary counters and one row per roster exercise.
// Enter opens the weight history of the selected exercise.
type DashboardModel struct {
	width  int
	height int

	summary  models.DashboardSummary
	stats    []models.ExerciseStats
	selected int
	view     dashboardView

	// set when the user asked to quick-log the selected exercise
	logExercise string
}

// NewDashboardModel snapshots the store; the dashboard is read-only
func NewDashboardModel(store *workout.Store) DashboardModel {
	return DashboardModel{
		summary: store.Summary(),
		stats:   store.AllStats(),
	}
}

// Init initializes the model
func (m DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q", "esc":
			if m.view == viewHistory {
				m.view = viewRoster
				return m, nil
			}
			return m, tea.Quit

		case "up", "k":
			if m.view == viewRoster && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.view == viewRoster && m.selected < len(m.stats)-1 {
				m.selected++
			}

		case "enter":
			if len(m.stats) > 0 {
				m.view = viewHistory
			}

		case "l":
			if len(m.stats) > 0 {
				m.logExercise = m.stats[m.selected].ExerciseID
				return m, tea.Quit
			}
		}
	}

	return m, nil
}

// View renders the TUI
func (m DashboardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var body string
	if m.view == viewHistory {
		body = m.renderHistory()
	} else {
		body = m.renderRoster()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		"",
		m.renderSummary(),
		"",
		body,
		"",
		m.renderHelpBar(),
	)
}

func (m DashboardModel) renderSummary() string {
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(0, 2).
		Align(lipgloss.Center)
	valueStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	card := func(value int, label string) string {
		return cardStyle.Render(valueStyle.Render(fmt.Sprintf("%d", value)) + "\n" + labelStyle.Render(label))
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		card(m.summary.ThisWeek, "this week"),
		" ",
		card(m.summary.TotalSessions, "sessions"),
		" ",
		card(m.summary.Improving, "improving"),
		" ",
		card(m.summary.PersonalBests, "at best"),
	)
}

func (m DashboardModel) renderRoster() string {
	var b strings.Builder

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))
	b.WriteString(headerStyle.Render("🏋️ Exercises"))
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("  %-6s %-20s %9s %9s %8s  %s", "ID", "EXERCISE", "LAST", "BEST", "SESSIONS", "TREND")))
	b.WriteString("\n")

	rowStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	emptyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	selectedStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))

	for i, s := range m.stats {
		last, best := "-", "-"
		if s.LastWeight != nil {
			last = formatKg(*s.LastWeight)
			best = formatKg(s.BestWeight)
		}

		name := workout.ExerciseName(s.ExerciseID)
		if len(name) > 20 {
			name = name[:17] + "..."
		}

		cursor := "  "
		if i == m.selected {
			cursor = "▶ "
		}
		row := fmt.Sprintf("%s%-6s %-20s %9s %9s %8d  ", cursor, s.ExerciseID, name, last, best, s.TotalSessions)

		style := rowStyle
		switch {
		case i == m.selected:
			style = selectedStyle
		case s.TotalSessions == 0:
			style = emptyStyle
		}
		b.WriteString(style.Render(row))
		b.WriteString(trendStyle(s.Trend).Render(trendLabel(s.Trend)))
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1).
		Render(b.String())
}

func (m DashboardModel) renderHistory() string {
	stats := m.stats[m.selected]

	var b strings.Builder
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))
	b.WriteString(headerStyle.Render(fmt.Sprintf("📈 %s %s", stats.ExerciseID, workout.ExerciseName(stats.ExerciseID))))
	b.WriteString("\n")
	if ex, ok := workout.Exercise(stats.ExerciseID); ok && ex.MachineSettings != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render(ex.MachineSettings))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(stats.RecentEntries) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Italic(true).Render("Nothing logged yet"))
	} else {
		barWidth := m.width - 40
		if barWidth > 50 {
			barWidth = 50
		}
		if barWidth < 10 {
			barWidth = 10
		}
		for _, line := range historyChart(stats.RecentEntries, stats.BestWeight, barWidth) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1).
		Render(b.String())
}

// historyChart draws one bar per entry, oldest at the top. entries come
// newest first; bars are scaled so that best fills maxWidth.
func historyChart(entries []models.WorkoutEntry, best float64, maxWidth int) []string {
	if len(entries) > chartEntries {
		entries = entries[:chartEntries]
	}

	barStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
	newestStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))

	lines := make([]string, 0, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		style := barStyle
		if i == 0 {
			style = newestStyle
		}
		bar := strings.Repeat("█", barLength(e.WeightKg, best, maxWidth))
		lines = append(lines, fmt.Sprintf("%s %s %s",
			e.Date.Format("02/01"),
			style.Render(fmt.Sprintf("%-*s", maxWidth, bar)),
			formatKg(e.WeightKg)))
	}
	return lines
}

// barLength scales weight against best. Any logged weight shows at least one cell.
func barLength(weight, best float64, maxWidth int) int {
	if best <= 0 || weight <= 0 {
		return 0
	}
	n := int(weight / best * float64(maxWidth))
	if n < 1 {
		n = 1
	}
	if n > maxWidth {
		n = maxWidth
	}
	return n
}

func (m DashboardModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)

	helpText := "↑/↓ navigate · enter history · l quick-log · esc/q quit"
	if m.view == viewHistory {
		helpText = "l quick-log · esc/q back"
	}
	return helpStyle.Render(helpText)
}

func formatKg(weight float64) string {
	return humanize.FtoaWithDigits(weight, 2) + " kg"
}

func trendLabel(trend models.Trend) string {
	switch trend {
	case models.TrendUp:
		return "▲ up"
	case models.TrendDown:
		return "▼ down"
	case models.TrendSteady:
		return "● steady"
	default:
		return "✦ new"
	}
}

func trendStyle(trend models.Trend) lipgloss.Style {
	style := lipgloss.NewStyle()
	switch trend {
	case models.TrendUp:
		return style.Foreground(lipgloss.Color(ColorSuccess))
	case models.TrendDown:
		return style.Foreground(lipgloss.Color(ColorWarning))
	case models.TrendSteady:
		return style.Foreground(lipgloss.Color(ColorSecondaryText))
	default:
		return style.Foreground(lipgloss.Color(ColorAccentMain))
	}
}
