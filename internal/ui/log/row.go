package log

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/hack3ric/termscp/internal/ui/common"
	"github.com/rivo/uniseg"
)

type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Record is one transfer-log event as produced by the application.
type Record struct {
	Time    time.Time
	Level   Level
	Message string
}

// Span is a run of text sharing one style. Rows arrive pre-formatted; the
// widget never re-interprets their content.
type Span struct {
	Text  string
	Style lipgloss.Style
}

type Row []Span

const timeLayout = "2006-01-02T15:04:05"

func RowFromRecord(rec Record) Row {
	return Row{
		{Text: rec.Time.Format(timeLayout), Style: common.DefaultPalette.Get("log time")},
		{Text: " [" + rec.Level.String() + "]", Style: common.DefaultPalette.Get("log level " + rec.Level.String())},
		{Text: " " + rec.Message},
	}
}

// wrapSpans hard-wraps a row at width terminal cells, breaking on grapheme
// cluster boundaries so wide characters never straddle a line.
func wrapSpans(row Row, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	var line strings.Builder
	col := 0
	for _, span := range row {
		var chunk strings.Builder
		flush := func() {
			if chunk.Len() > 0 {
				line.WriteString(span.Style.Render(chunk.String()))
				chunk.Reset()
			}
		}
		gr := uniseg.NewGraphemes(span.Text)
		for gr.Next() {
			s := gr.Str()
			if s == "\n" {
				flush()
				lines = append(lines, line.String())
				line.Reset()
				col = 0
				continue
			}
			w := gr.Width()
			if col+w > width && col > 0 {
				flush()
				lines = append(lines, line.String())
				line.Reset()
				col = 0
			}
			chunk.WriteString(s)
			col += w
		}
		flush()
	}
	if line.Len() > 0 || len(lines) == 0 {
		lines = append(lines, line.String())
	}
	return lines
}
