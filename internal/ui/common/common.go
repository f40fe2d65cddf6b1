package common

import (
	tea "github.com/charmbracelet/bubbletea"
)

type Sizeable struct {
	Width  int
	Height int
}

func NewSizeable(width, height int) *Sizeable {
	return &Sizeable{Width: width, Height: height}
}

func (s *Sizeable) SetWidth(w int) {
	s.Width = w
}

func (s *Sizeable) SetHeight(h int) {
	s.Height = h
}

type ISizeable interface {
	SetWidth(w int)
	SetHeight(h int)
}

// SelectionChangedMsg reports that a component moved its selection to Index.
// Boundary no-ops emit nothing.
type SelectionChangedMsg struct {
	Index int
}

func SelectionChanged(index int) tea.Cmd {
	return func() tea.Msg {
		return SelectionChangedMsg{Index: index}
	}
}

// FocusRequestedMsg asks the owning view to move focus away from the named
// scope. It is a pass-through notification, not a selection change.
type FocusRequestedMsg struct {
	From string
}

func RequestFocus(from string) tea.Cmd {
	return func() tea.Msg {
		return FocusRequestedMsg{From: from}
	}
}
