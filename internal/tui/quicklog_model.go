package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/logbook/internal/models"
	"github.com/balkashynov/logbook/internal/parser"
	"github.com/balkashynov/logbook/internal/workout"
)

// Step represents the current field of the quick-log form
type Step int

const (
	StepExercise Step = iota
	StepWeight
	StepTime
	StepNotes
)

// QuickLogModel is the form for logging one set
type QuickLogModel struct {
	store  *workout.Store
	inputs []textinput.Model
	step   Step
	width  int

	exerciseID string
	last       *models.WorkoutEntry

	// State
	err           error
	completed     bool
	cancelled     bool
	validationErr string
	created       models.WorkoutEntry
}

// NewQuickLogModel creates the form. With an exercise id the exercise step
// is skipped and weight and time are prefilled from its last set.
func NewQuickLogModel(store *workout.Store, exerciseID string) QuickLogModel {
	inputs := make([]textinput.Model, 4)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[StepExercise].Placeholder = "Exercise id, e.g. A3 (required)"
	inputs[StepExercise].CharLimit = 8

	inputs[StepWeight].Placeholder = "Weight in kg, e.g. 82.5"
	inputs[StepWeight].CharLimit = 10

	inputs[StepTime].Placeholder = fmt.Sprintf("Time: 120, 90s, 2m or 1:30 (default %ds)", workout.DefaultTimeSeconds)
	inputs[StepTime].CharLimit = 10

	inputs[StepNotes].Placeholder = "Notes (Enter to save)"
	inputs[StepNotes].CharLimit = 200

	m := QuickLogModel{
		store:  store,
		inputs: inputs,
		step:   StepExercise,
	}

	if exerciseID != "" {
		m.selectExercise(exerciseID)
		m.step = StepWeight
	}
	m.inputs[m.step].Focus()

	return m
}

// selectExercise sets the exercise and prefills weight and time from its last set
func (m *QuickLogModel) selectExercise(id string) {
	m.exerciseID = id
	m.inputs[StepExercise].SetValue(id)
	m.last = nil

	if last, ok := m.store.LastEntry(id); ok {
		m.last = &last
		m.inputs[StepWeight].SetValue(formatNumber(last.WeightKg))
		m.inputs[StepTime].SetValue(fmt.Sprintf("%d", last.TimeSeconds))
	} else {
		m.inputs[StepWeight].SetValue("")
		m.inputs[StepTime].SetValue(fmt.Sprintf("%d", workout.DefaultTimeSeconds))
	}
}

// Init initializes the model
func (m QuickLogModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m QuickLogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			return m.handleEnter()

		case "tab", "down":
			if m.step == StepNotes {
				return m, nil
			}
			return m.handleEnter()

		case "shift+tab", "up":
			return m.prevStep()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.step], cmd = m.inputs[m.step].Update(msg)
	return m, cmd
}

func (m QuickLogModel) handleEnter() (tea.Model, tea.Cmd) {
	m.validationErr = ""

	switch m.step {
	case StepExercise:
		id, err := parser.NormalizeExerciseID(m.inputs[StepExercise].Value())
		if err != nil {
			m.validationErr = err.Error()
			return m, nil
		}
		if _, ok := workout.Exercise(id); !ok {
			m.validationErr = fmt.Sprintf("'%s' is not on the roster", id)
			return m, nil
		}
		if id != m.exerciseID {
			m.selectExercise(id)
		}

	case StepWeight:
		if raw := strings.TrimSpace(m.inputs[StepWeight].Value()); raw != "" {
			if _, _, err := parser.ParseAmount(raw); err != nil {
				m.validationErr = "Weight must be a number, e.g. 82.5"
				return m, nil
			}
		}

	case StepNotes:
		return m.save()
	}

	return m.nextStep()
}

func (m QuickLogModel) nextStep() (tea.Model, tea.Cmd) {
	m.inputs[m.step].Blur()
	m.step++
	return m, m.inputs[m.step].Focus()
}

func (m QuickLogModel) prevStep() (tea.Model, tea.Cmd) {
	if m.step == StepExercise {
		return m, nil
	}
	m.validationErr = ""
	m.inputs[m.step].Blur()
	m.step--
	return m, m.inputs[m.step].Focus()
}

func (m QuickLogModel) save() (tea.Model, tea.Cmd) {
	weight, seconds := workout.QuickLogValues(m.inputs[StepWeight].Value(), m.inputs[StepTime].Value())

	created, err := m.store.Add(models.WorkoutEntry{
		ExerciseID:  m.exerciseID,
		WeightKg:    weight,
		TimeSeconds: seconds,
		Notes:       strings.TrimSpace(m.inputs[StepNotes].Value()),
	})
	m.err = err
	m.created = created
	m.completed = err == nil
	return m, tea.Quit
}

// View renders the TUI
func (m QuickLogModel) View() string {
	if m.cancelled || m.completed {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	doneStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))

	title := "💪 Log a set"
	if m.exerciseID != "" {
		title = fmt.Sprintf("💪 %s %s", m.exerciseID, workout.ExerciseName(m.exerciseID))
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	labels := []string{"Exercise", "Weight", "Time", "Notes"}
	for i, label := range labels {
		step := Step(i)
		switch {
		case step == m.step:
			b.WriteString(titleStyle.Render("▶ " + label))
			b.WriteString("\n")
			b.WriteString(m.inputs[i].View())
			b.WriteString("\n")
		case step < m.step:
			b.WriteString(doneStyle.Render(fmt.Sprintf("✓ %s: %s", label, m.inputs[i].Value())))
			b.WriteString("\n")
		default:
			b.WriteString(labelStyle.Render("  " + label))
			b.WriteString("\n")
		}
	}

	if m.validationErr != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render("⚠ " + m.validationErr))
		b.WriteString("\n")
	}

	form := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1).
		Width(50).
		Render(b.String())

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Italic(true)
	help := helpStyle.Render("enter next/save · shift+tab back · esc cancel")

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, form, " ", m.renderLastSet()),
		"",
		help,
	)
}

// renderLastSet shows the previous set and the machine settings of the exercise
func (m QuickLogModel) renderLastSet() string {
	if m.exerciseID == "" {
		return ""
	}

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	valueStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))

	var b strings.Builder
	if ex, ok := workout.Exercise(m.exerciseID); ok && ex.MachineSettings != "" {
		b.WriteString(labelStyle.Render("Machine"))
		b.WriteString("\n")
		b.WriteString(valueStyle.Render(ex.MachineSettings))
		b.WriteString("\n\n")
	}

	b.WriteString(labelStyle.Render("Last set"))
	b.WriteString("\n")
	if m.last == nil {
		b.WriteString(valueStyle.Render("none yet"))
	} else {
		b.WriteString(valueStyle.Render(fmt.Sprintf("%s for %ds", formatKg(m.last.WeightKg), m.last.TimeSeconds)))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(m.last.Date.Format("02/01/2006")))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1).
		Render(b.String())
}

func formatNumber(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
