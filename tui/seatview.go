package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"movietix-cli/seats"
	"movietix-cli/session"
)

type cursorPos struct {
	row int
	col int
}

func (m appModel) handleSeatKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	if m.ctrl == nil {
		return m, nil, true
	}

	if m.ctrl.State() == session.StateFailed {
		switch msg.String() {
		case "enter", "d":
			m.ctrl.Dismiss()
			m.warning = ""
		}
		return m, nil, true
	}

	screen := m.ctrl.Screen()
	switch msg.String() {
	case "up", "k":
		if m.cursor.row > 1 {
			m.cursor.row--
		}
		return m, nil, true
	case "down", "j":
		if m.cursor.row < screen.NumRows {
			m.cursor.row++
		}
		return m, nil, true
	case "left", "h":
		if m.cursor.col > 1 {
			m.cursor.col--
		}
		return m, nil, true
	case "right", "l":
		if m.cursor.col < screen.NumCols {
			m.cursor.col++
		}
		return m, nil, true
	case " ", "space":
		m.toggleAtCursor()
		return m, nil, true
	case "n":
		m.showSeatNumbers = !m.showSeatNumbers
		return m, nil, true
	case "r":
		return m.openSeatSelection(m.entry)
	case "c", "enter":
		return m.confirmSelection()
	}
	return m, nil, true
}

func (m *appModel) toggleAtCursor() {
	coord := seats.Coord{Row: m.cursor.row, Col: m.cursor.col}
	err := m.ctrl.Toggle(coord)
	switch {
	case err == nil:
		m.warning = ""
	case errors.Is(err, seats.ErrSelectionLimit):
		m.warning = fmt.Sprintf("You can select at most %d seats per booking.", seats.MaxSelection)
	default:
		m.warning = err.Error()
	}
}

func (m appModel) confirmSelection() (appModel, tea.Cmd, bool) {
	if m.ctrl.SelectedCount() == 0 {
		m.warning = "Select at least one seat first."
		return m, nil, true
	}
	m.warning = ""
	ctx, cancel := context.WithCancel(context.Background())
	m.pollCtx = ctx
	m.pollCancel = cancel
	m.state = stateBookingProgress
	return m, tea.Batch(m.submitCmd(ctx), m.spinner.Tick), true
}

func (m appModel) submitCmd(ctx context.Context) tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		return submitMsg{err: ctrl.Submit(ctx)}
	}
}

func (m appModel) awaitConfirmationCmd() tea.Cmd {
	ctrl := m.ctrl
	ctx := m.pollCtx
	if ctx == nil {
		ctx = context.Background()
	}
	return func() tea.Msg {
		return confirmedMsg{err: ctrl.AwaitConfirmation(ctx)}
	}
}

func (m appModel) renderSeatSelection() string {
	if m.ctrl == nil {
		return "No seat data."
	}

	if m.ctrl.State() == session.StateFailed {
		return m.renderBookingFailure()
	}

	screen := m.ctrl.Screen()
	if screen.NumRows < 1 || screen.NumCols < 1 {
		return "No seat data."
	}

	seatStyleAvailable := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	seatStyleBooked := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	seatStyleSelected := lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	cursorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Background(lipgloss.Color("236")).
		Bold(true)

	cellWidth := 2
	if m.showSeatNumbers {
		cellWidth = len(fmt.Sprintf("%d", screen.NumCols))
		if cellWidth < 2 {
			cellWidth = 2
		}
	}
	rowWidth := len(fmt.Sprintf("R%d", screen.NumRows))
	gridWidth := screen.NumCols*(cellWidth+1) - 1

	var b strings.Builder

	// Screen bar first: rows closest to the top are closest to the screen.
	screenStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("214"))
	screenBorderStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Background(lipgloss.Color("236"))
	screenBar := screenBarBlock(gridWidth, "SCREEN")
	b.WriteString(strings.Repeat(" ", rowWidth+1))
	b.WriteString(screenBorderStyle.Render(screenBar.top))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", rowWidth+1))
	b.WriteString(screenStyle.Render(screenBar.mid))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", rowWidth+1))
	b.WriteString(screenBorderStyle.Render(screenBar.bot))
	b.WriteString("\n\n")

	for row := 1; row <= screen.NumRows; row++ {
		label := fmt.Sprintf("R%d", row)
		b.WriteString(fmt.Sprintf("%*s ", rowWidth, label))
		for col := 1; col <= screen.NumCols; col++ {
			coord := seats.Coord{Row: row, Col: col}
			token := "[]"
			style := seatStyleAvailable
			switch {
			case m.ctrl.IsBooked(coord):
				token = "XX"
				style = seatStyleBooked
			case m.ctrl.IsSelected(coord):
				token = "()"
				style = seatStyleSelected
			}
			text := token
			if m.showSeatNumbers && token == "[]" {
				text = fmt.Sprintf("%d", col)
			}
			rendered := padCell(text, cellWidth)
			if m.cursor.row == row && m.cursor.col == col {
				rendered = cursorStyle.Render(rendered)
			} else {
				rendered = style.Render(rendered)
			}
			b.WriteString(rendered)
			if col < screen.NumCols {
				b.WriteString(" ")
			}
		}
		b.WriteString(fmt.Sprintf(" %*s\n", rowWidth, label))
	}
	b.WriteString("\n")

	legend := "Legend: [] available • XX booked • () selected"
	if m.showSeatNumbers {
		legend = "Legend: numbers are seat columns • XX booked • () selected"
	}
	b.WriteString(hint(legend))
	b.WriteString("\n")
	b.WriteString(hint(m.selectionSummary()))

	if m.warning != "" {
		warnStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
		b.WriteString("\n")
		b.WriteString(warnStyle.Render(m.warning))
	}
	return b.String()
}

func (m appModel) selectionSummary() string {
	selected := m.ctrl.Selected()
	showtime := m.ctrl.Showtime()
	if len(selected) == 0 {
		return fmt.Sprintf("No seats selected • $%.2f per seat", showtime.Price)
	}
	labels := make([]string, len(selected))
	for i, coord := range selected {
		labels[i] = coord.String()
	}
	return fmt.Sprintf("Selected: %s • %d of %d • Total: $%.2f",
		strings.Join(labels, ", "), len(selected), seats.MaxSelection,
		m.ctrl.TotalPrice())
}

func (m appModel) renderBookingFailure() string {
	alert := lipgloss.NewStyle().
		Padding(1, 2).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("1"))
	message := "Booking failed."
	if err := m.ctrl.Err(); err != nil {
		message = err.Error()
	}
	content := strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")).Render("Booking failed"),
		"",
		message,
		"",
		hint("Your seat selection is unchanged. Press ENTER to adjust it and try again."),
	}, "\n")
	return alert.Render(content)
}

type screenBlock struct {
	top string
	mid string
	bot string
}

func screenBarBlock(width int, label string) screenBlock {
	if width < len(label)+4 {
		width = len(label) + 4
	}
	if width < 10 {
		width = 10
	}

	border := "╭" + strings.Repeat("─", width-2) + "╮"
	bottom := "╰" + strings.Repeat("─", width-2) + "╯"

	labelText := " " + label + " "
	padding := width - len(labelText) - 2
	left := padding / 2
	right := padding - left
	mid := "│" + strings.Repeat(" ", left) + labelText + strings.Repeat(" ", right) + "│"
	return screenBlock{top: border, mid: mid, bot: bottom}
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	if len(text) >= width {
		return text[:width]
	}
	padding := width - len(text)
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}
