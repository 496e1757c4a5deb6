package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dmitrijs2005/lawlink/internal/client/models"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3b82f6"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c757d"))
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func (a *App) section(title string) {
	a.println()
	a.println(titleStyle.Render(title))
}

// renderTable prints rows under headers, or "(none)" when rows is empty.
func (a *App) renderTable(headers []string, rows [][]string) {
	if len(rows) == 0 {
		a.println(mutedStyle.Render("  (none)"))
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	a.println(t.Render())
}

// badge renders a case status in its colour.
func badge(s models.CaseStatus) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color(s.Color())).
		Padding(0, 1).
		Render(string(s))
}

func lawyerRows(lawyers []models.Lawyer) [][]string {
	rows := make([][]string, 0, len(lawyers))
	for _, l := range lawyers {
		rows = append(rows, []string{l.ID.String(), l.Name, l.Specialization, l.Location,
			fmt.Sprintf("%.1f", l.Rating), l.Experience, l.Price})
	}
	return rows
}

func appointmentRows(appts []models.Appointment) [][]string {
	rows := make([][]string, 0, len(appts))
	for _, ap := range appts {
		rows = append(rows, []string{ap.ID.String(), ap.CounterpartyName, ap.Date, ap.Time, ap.Reason, string(ap.Status)})
	}
	return rows
}

func documentRows(docs []models.Document, withOwner bool) [][]string {
	rows := make([][]string, 0, len(docs))
	for _, d := range docs {
		row := []string{d.ID.String(), d.Name, d.UploadedAt, string(d.Size)}
		if withOwner {
			row = append(row, d.OwnerOrClientName)
		}
		rows = append(rows, row)
	}
	return rows
}

func conversationRows(convs []models.Conversation) [][]string {
	rows := make([][]string, 0, len(convs))
	for _, c := range convs {
		unread := ""
		if c.UnreadCount > 0 {
			unread = fmt.Sprint(c.UnreadCount)
		}
		rows = append(rows, []string{c.ID.String(), c.CounterpartyName, c.LastMessagePreview, unread})
	}
	return rows
}
