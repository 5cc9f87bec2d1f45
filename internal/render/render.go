// Package render formats API data for the terminal.
package render

import (
	"fmt"
	"strings"
	"time"

	"industry-flow/internal/entities"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	pendingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	accentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	panelStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
)

const maxNameWidth = 30

// Notification renders one notification as a bordered panel.
func Notification(n entities.Notification) string {
	marker := successStyle.Render("read")
	if !n.Read {
		marker = pendingStyle.Render("new")
	}

	lines := []string{
		fmt.Sprintf("%s  %s", titleStyle.Render(n.Title), marker),
		accentStyle.Render(string(n.Type)),
	}
	if n.Message != "" {
		lines = append(lines, n.Message)
	}
	if !n.CreatedAt.IsZero() {
		lines = append(lines, mutedStyle.Render(n.CreatedAt.Local().Format(time.DateTime)))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

// OK renders a success line.
func OK(msg string) string {
	return successStyle.Render("✓ ") + msg
}

// Error renders a failure line.
func Error(err error) string {
	return errorStyle.Render("error: ") + err.Error()
}

// Project renders the details of one project as a panel.
func Project(p entities.Project) string {
	lines := []string{
		titleStyle.Render(p.Name),
		fmt.Sprintf("%s %s", mutedStyle.Render("client:"), p.Client),
		fmt.Sprintf("%s %s", mutedStyle.Render("sector:"), p.Sector),
		fmt.Sprintf("%s %s", mutedStyle.Render("stage: "), accentStyle.Render(string(p.Stage))),
		fmt.Sprintf("%s %s", mutedStyle.Render("status:"), statusStyle(p.Status).Render(string(p.Status))),
		fmt.Sprintf("%s %s %s", mutedStyle.Render("budget:"), p.Budget.StringFixed(2), p.Currency),
		fmt.Sprintf("%s %s %s", mutedStyle.Render("revenue:"), p.Revenue.StringFixed(2), p.Currency),
	}
	if p.Deadline != nil {
		lines = append(lines, fmt.Sprintf("%s %s", mutedStyle.Render("deadline:"), p.Deadline.Format(time.DateOnly)))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

// ProjectTable renders projects as an aligned table with a total line.
func ProjectTable(projects []entities.Project) string {
	if len(projects) == 0 {
		return mutedStyle.Render("No projects found")
	}

	nameW, clientW, sectorW := 4, 6, 6
	for _, p := range projects {
		nameW = max(nameW, min(len(p.Name), maxNameWidth))
		clientW = max(clientW, min(len(p.Client), maxNameWidth))
		sectorW = max(sectorW, len(p.Sector))
	}
	stageW, statusW := len(entities.StageNegotiation), len(entities.ProjectCancelled)

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s  %s  %s  %s  %s\n",
		headerStyle.Render(padRight("NAME", nameW)),
		headerStyle.Render(padRight("CLIENT", clientW)),
		headerStyle.Render(padRight("SECTOR", sectorW)),
		headerStyle.Render(padRight("STAGE", stageW)),
		headerStyle.Render(padRight("STATUS", statusW)),
		headerStyle.Render("BUDGET"),
	)
	b.WriteString(strings.Repeat("-", nameW+clientW+sectorW+stageW+statusW+20))
	b.WriteString("\n")

	for _, p := range projects {
		fmt.Fprintf(&b, "%s  %s  %s  %s  %s  %s\n",
			padRight(truncate(p.Name, nameW), nameW),
			padRight(truncate(p.Client, clientW), clientW),
			padRight(p.Sector, sectorW),
			accentStyle.Render(padRight(string(p.Stage), stageW)),
			statusStyle(p.Status).Render(padRight(string(p.Status), statusW)),
			mutedStyle.Render(p.Budget.StringFixed(2)+" "+p.Currency),
		)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Total: %d projects", len(projects))
	return b.String()
}

func statusStyle(s entities.ProjectStatus) lipgloss.Style {
	switch s {
	case entities.ProjectCompleted:
		return successStyle
	case entities.ProjectOnHold:
		return pendingStyle
	case entities.ProjectCancelled:
		return mutedStyle
	default:
		return lipgloss.NewStyle()
	}
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
