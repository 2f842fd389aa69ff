package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/encoding/charmap"

	"github.com/iw2rmb/linebuf/buffer"
)

type style struct {
	Prompt lipgloss.Style
	Text   lipgloss.Style
	Cursor lipgloss.Style
}

func newStyle(r *lipgloss.Renderer) style {
	return style{
		Prompt: r.NewStyle().Foreground(lipgloss.Color("244")).Bold(true),
		Text:   r.NewStyle(),
		Cursor: r.NewStyle().Reverse(true),
	}
}

type model struct {
	buf  *buffer.Buffer
	hist *buffer.History
	pos  int

	prompt, cprompt string
	width           int
	cs              *charmap.Charmap

	keys  keyMap
	help  help.Model
	style style

	accepted bool
}

func newModel(buf *buffer.Buffer, cfg config, st style) model {
	return model{
		buf:     buf,
		hist:    buffer.NewHistory(cfg.historyLimit),
		pos:     buf.Len(),
		prompt:  cfg.prompt,
		cprompt: cfg.cprompt,
		width:   cfg.width,
		cs:      cfg.cs,
		keys:    defaultKeyMap(),
		help:    help.New(),
		style:   st,
	}
}

func (m model) layout() buffer.Layout {
	return buffer.Layout{
		TermWidth:       m.width,
		PromptWidth:     buffer.StringWidth(m.prompt),
		ContPromptWidth: buffer.StringWidth(m.cprompt),
	}
}

// line returns the accepted content in the output charset.
func (m model) line() []byte {
	if m.cs == nil {
		return []byte(m.buf.String())
	}
	return m.buf.ToLocale(m.cs)
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

// edit runs fn and records an undo state if it changed the content.
func (m *model) edit(fn func(pos int) int) {
	before := m.buf.Snapshot(m.pos)
	v := m.buf.Version()
	m.pos = fn(m.pos)
	if m.buf.Version() != v {
		m.hist.Push(before)
	}
}

func (m *model) move(unit buffer.MoveUnit, dir buffer.MoveDir) {
	m.pos = m.buf.Move(m.pos, buffer.Move{Unit: unit, Dir: dir, Layout: m.layout()})
}

func (m model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	km := m.keys
	b := m.buf

	// Pasted text is always literal.
	if msg.Type == tea.KeyRunes && msg.Paste {
		m.edit(func(pos int) int { return b.InsertString(pos, string(msg.Runes)) })
		return m, nil
	}

	switch {
	case key.Matches(msg, km.Quit):
		return m, tea.Quit
	case key.Matches(msg, km.Accept):
		m.accepted = true
		return m, tea.Quit

	case key.Matches(msg, km.Left):
		m.move(buffer.MoveChar, buffer.DirLeft)
	case key.Matches(msg, km.Right):
		m.move(buffer.MoveChar, buffer.DirRight)
	case key.Matches(msg, km.WordLeft):
		m.move(buffer.MoveWord, buffer.DirLeft)
	case key.Matches(msg, km.WordRight):
		m.move(buffer.MoveWord, buffer.DirRight)
	case key.Matches(msg, km.Up):
		m.move(buffer.MoveRow, buffer.DirUp)
	case key.Matches(msg, km.Down):
		m.move(buffer.MoveRow, buffer.DirDown)
	case key.Matches(msg, km.Home):
		m.move(buffer.MoveLine, buffer.DirHome)
	case key.Matches(msg, km.End):
		m.move(buffer.MoveLine, buffer.DirEnd)

	case key.Matches(msg, km.Backspace):
		m.edit(b.DeleteCharBefore)
	case key.Matches(msg, km.Delete):
		m.edit(func(pos int) int { b.DeleteCharAt(pos); return pos })
	case key.Matches(msg, km.KillWord):
		m.edit(func(pos int) int {
			start := b.FindWSWordStart(pos)
			b.DeleteRange(start, pos)
			return start
		})
	case key.Matches(msg, km.KillEnd):
		m.edit(func(pos int) int {
			b.DeleteRange(pos, b.FindLineEnd(pos))
			return pos
		})
	case key.Matches(msg, km.Transpose):
		m.edit(func(pos int) int {
			n, _ := buffer.NextUnit(b.Bytes(), pos)
			if b.SwapChar(pos) == pos {
				return pos
			}
			return pos + n
		})
	case key.Matches(msg, km.Newline):
		m.edit(func(pos int) int { return b.InsertByte(pos, '\n') })

	case key.Matches(msg, km.Undo):
		if s, ok := m.hist.Undo(b.Snapshot(m.pos)); ok {
			m.pos = b.Restore(s)
		}
	case key.Matches(msg, km.Redo):
		if s, ok := m.hist.Redo(b.Snapshot(m.pos)); ok {
			m.pos = b.Restore(s)
		}

	case msg.Type == tea.KeyTab:
		m.edit(func(pos int) int { return b.InsertByte(pos, '\t') })
	case msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace:
		m.edit(func(pos int) int {
			for _, r := range msg.Runes {
				pos = b.InsertRune(pos, r)
			}
			return pos
		})
	}
	return m, nil
}

func (m model) View() string {
	if m.accepted {
		return ""
	}

	var sb strings.Builder
	s := m.buf.Bytes()
	l := m.layout()
	cur, _ := m.buf.RowColAt(l, m.pos)

	m.buf.ForEachRow(l, func(r buffer.Row) bool {
		p := m.cprompt
		if r.Index == 0 {
			p = m.prompt
		}
		sb.WriteString(m.style.Prompt.Render(p))

		text := s[r.Start : r.Start+r.Len]
		if r.Index != cur.Row {
			sb.WriteString(m.style.Text.Render(string(text)))
			sb.WriteByte('\n')
			return false
		}

		at := m.pos - r.Start
		under, rest := " ", text[at:]
		// Zero-width units (escapes, controls) stay in the text; the
		// cursor is drawn as a blank cell in front of them.
		if n, w := buffer.NextUnit(text, at); n > 0 && w > 0 {
			under, rest = string(text[at:at+n]), text[at+n:]
		}
		sb.WriteString(m.style.Text.Render(string(text[:at])))
		sb.WriteString(m.style.Cursor.Render(under))
		sb.WriteString(m.style.Text.Render(string(rest)))
		sb.WriteByte('\n')
		return false
	})

	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}
