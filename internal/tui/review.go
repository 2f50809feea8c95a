// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"

	"github.com/MKhiriev/gh-secret-sync/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// reviewModel drives the three review stages: the plan list, the
// per-entry detail view and the final confirmation overlay. Secret
// values stay masked in the detail view until explicitly revealed.
type reviewModel struct {
	plan models.SyncPlan
	rows []models.PlannedSecret
	idx  int

	detail     bool
	reveal     bool
	confirming bool

	status string

	approved   bool
	quitByUser bool
}

func newReviewModel(plan models.SyncPlan) reviewModel {
	return reviewModel{plan: plan, rows: plan.Rows()}
}

func (m reviewModel) current() (models.PlannedSecret, bool) {
	if len(m.rows) == 0 || m.idx < 0 || m.idx >= len(m.rows) {
		return models.PlannedSecret{}, false
	}
	return m.rows[m.idx], true
}

func (m reviewModel) Init() tea.Cmd {
	return nil
}

func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "name copied"
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m reviewModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirming {
		return m.handleConfirmKey(msg)
	}
	if m.detail {
		return m.handleDetailKey(msg)
	}
	return m.handleListKey(msg)
}

func (m reviewModel) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.rows)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if _, ok := m.current(); ok {
			m.detail = true
			m.reveal = false
		}
	case key.Matches(msg, keys.apply):
		m.confirming = true
	}
	return m, nil
}

func (m reviewModel) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.esc):
		m.detail = false
		m.reveal = false
		m.status = ""
	case key.Matches(msg, keys.reveal):
		m.reveal = !m.reveal
	case key.Matches(msg, keys.copy):
		if row, ok := m.current(); ok {
			return m, cmdCopyName(row.Name)
		}
	}
	return m, nil
}

func (m reviewModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes), key.Matches(msg, keys.enter):
		m.approved = true
		return m, tea.Quit
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.confirming = false
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func cmdCopyName(name string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(name); err != nil {
			return copiedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func statusIcon(s models.SecretStatus) string {
	switch s {
	case models.StatusNew:
		return "[+]"
	case models.StatusExisting:
		return "[~]"
	case models.StatusDeleted:
		return "[-]"
	default:
		return "[?]"
	}
}

func statusLabel(s models.SecretStatus) string {
	switch s {
	case models.StatusNew:
		return "create"
	case models.StatusExisting:
		return "update"
	case models.StatusDeleted:
		return "delete"
	default:
		return "unknown"
	}
}

func renderRow(row models.PlannedSecret) string {
	line := fmt.Sprintf("%s %s", statusIcon(row.Status), row.Name)
	switch row.Status {
	case models.StatusNew:
		return newStyle.Render(line)
	case models.StatusDeleted:
		return deletedStyle.Render(line)
	default:
		return line
	}
}

func (m reviewModel) View() string {
	if m.confirming {
		return m.viewConfirm()
	}
	if m.detail {
		return m.viewDetail()
	}
	return m.viewList()
}

func (m reviewModel) viewList() string {
	out := titleStyle.Render("gh-secret-sync · plan review") + "\n\n"

	if len(m.rows) == 0 {
		out += "nothing to do: remote store already matches the declared list\n"
	} else {
		for i, row := range m.rows {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += cursor + renderRow(row) + "\n"
		}
	}

	out += fmt.Sprintf("\n%d create  %d update  %d delete\n",
		len(m.plan.Create), len(m.plan.Update), len(m.plan.Delete))

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("enter open  a apply  q quit")
	return out
}

func (m reviewModel) viewDetail() string {
	row, ok := m.current()
	if !ok {
		return "no entry selected"
	}

	out := titleStyle.Render(row.Name) + "\n\n"
	out += fmt.Sprintf("Action:  %s\n", statusLabel(row.Status))

	if row.Status == models.StatusDeleted {
		out += "Value:   (stored remotely, not readable)\n"
	} else if m.reveal {
		out += fmt.Sprintf("Value:   %s\n", row.Value)
	} else {
		out += "Value:   ••••••••\n"
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("r reveal  c copy name  esc back  q quit")
	return out
}

func (m reviewModel) viewConfirm() string {
	content := fmt.Sprintf("Apply plan?  %d create, %d update, %d delete\n\n",
		len(m.plan.Create), len(m.plan.Update), len(m.plan.Delete))
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
