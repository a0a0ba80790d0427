package cli

// Copyright (C) 2025 Rizome Labs, Inc.
//
// This program is free software; you can redistribute it and/or
// modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; either version 2
// of the License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program; if not, write to the Free Software
// Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rizome-dev/cs2ir/pkg/translate"
	"github.com/spf13/cobra"
)

func (e codeEntry) FilterValue() string { return e.Name + " " + e.Diagnostic }
func (e codeEntry) Title() string       { return fmt.Sprintf("%d  %s", e.Code, e.Name) }
func (e codeEntry) Description() string { return e.Diagnostic }

// codesModel lists engine codes; enter picks one and quits.
type codesModel struct {
	list     list.Model
	selected *codeEntry
}

func newCodesModel(entries []codeEntry, width int) codesModel {
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, e)
	}

	l := list.New(items, list.NewDefaultDelegate(), width, 20)
	l.Title = "Engine Error Codes"
	l.SetShowStatusBar(false)
	l.Styles.Title = titleStyle

	return codesModel{list: l}
}

func (m codesModel) Init() tea.Cmd {
	return nil
}

func (m codesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
		return m, nil
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter":
			if e, ok := m.list.SelectedItem().(codeEntry); ok {
				m.selected = &e
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m codesModel) View() string {
	return "\n" + m.list.View()
}

func browseCodes(cmd *cobra.Command, a *app, entries []codeEntry) error {
	model := newCodesModel(entries, terminalWidth(cmd.OutOrStdout(), 80))
	final, err := tea.NewProgram(model, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout())).Run()
	if err != nil {
		return fmt.Errorf("codes browser failed: %w", err)
	}

	if m, ok := final.(codesModel); ok && m.selected != nil {
		printDiagnostic(cmd, a, translate.NewEngineError(a.engine, m.selected.Code))
	}
	return nil
}
