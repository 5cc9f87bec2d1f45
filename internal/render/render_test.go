package render

import (
	"errors"
	"strings"
	"testing"
	"time"

	"industry-flow/internal/entities"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestNotification(t *testing.T) {
	out := Notification(entities.Notification{
		Type:      entities.NotifyStageChanged,
		Title:     "Refinery moved to proposal",
		Message:   "Stage changed from qualified to proposal",
		CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	})

	require.Contains(t, out, "Refinery moved to proposal")
	require.Contains(t, out, "stage_changed")
	require.Contains(t, out, "Stage changed from qualified to proposal")
	require.Contains(t, out, "new")
}

func TestProjectTable(t *testing.T) {
	out := ProjectTable([]entities.Project{
		{Name: "Refinery upgrade", Client: "Acme", Sector: "Energy", Stage: entities.StageProposal, Status: entities.ProjectActive, Budget: decimal.NewFromInt(1500), Currency: "USD"},
		{Name: strings.Repeat("x", 40), Client: "Globex", Sector: "Mining", Stage: entities.StageLead, Status: entities.ProjectOnHold, Budget: decimal.Zero, Currency: "EUR"},
	})

	require.Contains(t, out, "NAME")
	require.Contains(t, out, "Refinery upgrade")
	require.Contains(t, out, "proposal")
	require.Contains(t, out, "1500.00 USD")
	require.Contains(t, out, strings.Repeat("x", 27)+"...")
	require.Contains(t, out, "Total: 2 projects")
}

func TestProjectTableEmpty(t *testing.T) {
	require.Contains(t, ProjectTable(nil), "No projects found")
}

func TestProjectAndStatusLines(t *testing.T) {
	deadline := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	out := Project(entities.Project{Name: "Pipeline", Client: "Acme", Stage: entities.StageContract, Deadline: &deadline, Budget: decimal.NewFromInt(10), Currency: "GBP"})
	require.Contains(t, out, "Pipeline")
	require.Contains(t, out, "contract")
	require.Contains(t, out, "2026-12-31")

	require.Contains(t, OK("done"), "done")
	require.Contains(t, Error(errors.New("boom")), "boom")
}
