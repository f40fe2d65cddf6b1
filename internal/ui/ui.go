// Package ui hosts the file-transfer activity widgets: the title header, the
// transfer log, and a one-line key hint footer. It owns focus switching and
// feeds log content downward; navigation lives in the widgets themselves.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hack3ric/termscp/internal/config"
	"github.com/hack3ric/termscp/internal/ui/actions"
	"github.com/hack3ric/termscp/internal/ui/common"
	"github.com/hack3ric/termscp/internal/ui/log"
	"github.com/hack3ric/termscp/internal/ui/title"
	"github.com/hack3ric/termscp/internal/ui/view"
)

var cancelKey = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))

// AppendRecordMsg adds one transfer-log event. The full row sequence is
// rebuilt newest-first and pushed to the log widget wholesale.
type AppendRecordMsg struct {
	Record log.Record
}

type Model struct {
	*common.Sizeable
	router  *view.Router
	title   *title.Model
	log     *log.Model
	records []log.Record
	styles  styles
}

type styles struct {
	shortcut lipgloss.Style
	desc     lipgloss.Style
}

func New() *Model {
	logModel := log.New(0, 0)
	router := view.NewRouter(view.ScopeUI)
	router.Views[view.ScopeLog] = logModel
	return &Model{
		Sizeable: common.NewSizeable(0, 0),
		router:   router,
		title:    title.New("termscp — file transfer activity"),
		log:      logModel,
		styles: styles{
			shortcut: common.DefaultPalette.Get("help shortcut"),
			desc:     common.DefaultPalette.Get("help desc"),
		},
	}
}

func (m *Model) Init() tea.Cmd {
	return m.router.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil
	case AppendRecordMsg:
		m.records = append(m.records, msg.Record)
		rows := make([]log.Row, 0, len(m.records))
		for i := len(m.records) - 1; i >= 0; i-- {
			rows = append(rows, log.RowFromRecord(m.records[i]))
		}
		return m, m.router.Update(log.SetRowsMsg{Rows: rows})
	case common.FocusRequestedMsg:
		m.log.SetFocused(false)
		m.router.Focus(view.ScopeUI)
		return m, nil
	case actions.InvokeActionMsg:
		switch msg.Action.Id {
		case "quit":
			return m, tea.Quit
		case "ui.focus_log":
			m.log.SetFocused(true)
			m.router.Focus(view.ScopeLog)
			return m, nil
		}
		return m, m.router.Update(msg)
	case tea.KeyMsg:
		if key.Matches(msg, cancelKey) && m.log.Focused() {
			m.log.SetFocused(false)
			m.router.Focus(view.ScopeUI)
			return m, nil
		}
		if m.router.Scope == view.ScopeUI {
			if binding, ok := config.Current.GetBindings(string(view.ScopeUI)).Get(msg.String()); ok {
				return m, actions.Invoke(binding.Do)
			}
			return m, nil
		}
		return m, m.router.Update(msg)
	}
	return m, m.router.Update(msg)
}

func (m *Model) View() string {
	titleView := m.title.View()
	helpView := m.helpView()
	logHeight := m.Height - lipgloss.Height(titleView) - lipgloss.Height(helpView)
	m.log.SetWidth(m.Width)
	m.log.SetHeight(logHeight)
	return lipgloss.JoinVertical(lipgloss.Left, titleView, m.log.View(), helpView)
}

func (m *Model) helpView() string {
	am := config.Current.GetBindings(string(m.router.Scope))
	parts := make([]string, 0, len(am.Bindings))
	for _, binding := range am.Bindings {
		entry := m.styles.shortcut.Render(config.JoinKeys(binding.On))
		if binding.Do.Desc != "" {
			entry += " " + m.styles.desc.Render(binding.Do.Desc)
		}
		parts = append(parts, entry)
	}
	return strings.Join(parts, "  ")
}
