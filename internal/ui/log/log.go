// Package log implements the transfer-log widget: a bordered, bottom-anchored
// list of styled rows with a selection cursor driven by configured key
// bindings.
package log

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hack3ric/termscp/internal/config"
	"github.com/hack3ric/termscp/internal/ui/actions"
	"github.com/hack3ric/termscp/internal/ui/common"
	"github.com/hack3ric/termscp/internal/ui/common/list"
	"github.com/hack3ric/termscp/internal/ui/common/scroll"
	"github.com/hack3ric/termscp/internal/ui/view"
)

// pageStep is how many single moves a page command applies.
const pageStep = 8

const highlightSymbol = ">> "

var _ tea.Model = (*Model)(nil)
var _ list.IList = (*Model)(nil)
var _ view.IHasActionMap = (*Model)(nil)

type Model struct {
	*common.Sizeable
	rows     []Row
	cursor   scroll.Cursor
	renderer *list.ListRenderer
	focused  bool
	styles   styles
}

type styles struct {
	border        lipgloss.Style
	borderFocused lipgloss.Style
	selected      lipgloss.Style
}

// SetRowsMsg replaces the widget content wholesale. The cursor resets to the
// newest entry; there is no preserve-position behavior across updates.
type SetRowsMsg struct {
	Rows []Row
}

func New(width, height int) *Model {
	m := &Model{
		Sizeable: common.NewSizeable(width, height),
		styles: styles{
			border:        common.DefaultPalette.Get("log border"),
			borderFocused: common.DefaultPalette.Get("log border focused"),
			selected:      common.DefaultPalette.Get("log selected"),
		},
	}
	m.renderer = list.NewRenderer(m, common.NewSizeable(width, height))
	return m
}

func (m *Model) GetActionMap() actions.ActionMap {
	return config.Current.GetBindings("log")
}

func (m *Model) Len() int {
	return len(m.rows)
}

func (m *Model) GetItemRenderer(index int) list.IItemRenderer {
	return itemRenderer{
		row:      m.rows[index],
		selected: index == m.cursor.Index(),
		style:    m.styles.selected,
	}
}

// Index is the rendering query: the currently selected row.
func (m *Model) Index() int {
	return m.cursor.Index()
}

func (m *Model) Focused() bool {
	return m.focused
}

func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SetRowsMsg:
		m.rows = msg.Rows
		m.cursor.SetLength(len(m.rows))
		m.renderer.Reset()
		return m, nil
	case actions.InvokeActionMsg:
		// Rows are newest-first and drawn bottom-anchored, so the key
		// pointing up on screen moves toward older, higher-indexed entries.
		moved := false
		switch msg.Action.Id {
		case "log.up":
			moved = m.cursor.MoveDown()
		case "log.down":
			moved = m.cursor.MoveUp()
		case "log.pageup":
			moved = m.cursor.ScrollDown(pageStep)
		case "log.pagedown":
			moved = m.cursor.ScrollUp(pageStep)
		case "log.oldest":
			moved = m.cursor.JumpToEnd()
		case "log.newest":
			moved = m.cursor.JumpToStart()
		case "log.tab":
			return m, common.RequestFocus(string(view.ScopeLog))
		default:
			return m, nil
		}
		if moved {
			return m, common.SelectionChanged(m.cursor.Index())
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) View() string {
	if m.Width < 4 || m.Height < 2 {
		return ""
	}
	style := m.styles.border
	if m.focused {
		style = m.styles.borderFocused
	}

	innerWidth := m.Width - 2
	innerHeight := m.Height - 2
	m.renderer.SetWidth(innerWidth)
	m.renderer.SetHeight(innerHeight)
	content := m.renderer.Render(m.cursor.Index())

	border := lipgloss.RoundedBorder()
	block := lipgloss.NewStyle().
		Border(border, false, true, true, true).
		BorderForeground(style.GetForeground()).
		Width(innerWidth).
		Height(innerHeight).
		Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, m.topBorder(border, style), block)
}

// topBorder draws the top border line with the widget title spliced in,
// "╭─ Log ───╮".
func (m *Model) topBorder(border lipgloss.Border, style lipgloss.Style) string {
	title := " Log "
	fill := m.Width - 3 - lipgloss.Width(title)
	if fill < 0 {
		title = ""
		fill = m.Width - 3
	}
	line := border.TopLeft + border.Top + title + strings.Repeat(border.Top, fill) + border.TopRight
	return style.Render(line)
}

var _ list.IItemRenderer = (*itemRenderer)(nil)

type itemRenderer struct {
	row      Row
	selected bool
	style    lipgloss.Style
}

func (i itemRenderer) Render(w io.Writer, width int) {
	indent := strings.Repeat(" ", len(highlightSymbol))
	for n, line := range wrapSpans(i.row, width-len(highlightSymbol)) {
		prefix := indent
		if i.selected && n == 0 {
			prefix = i.style.Render(highlightSymbol)
		}
		_, _ = fmt.Fprintln(w, prefix+line)
	}
}

func (i itemRenderer) Height(width int) int {
	return len(wrapSpans(i.row, width-len(highlightSymbol)))
}
