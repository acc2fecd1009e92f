package tui

import (
	"github.com/goliatone/go-jsonform/pkg/form"
)

// cell is one recorded placement in a layout.
type cell struct {
	ctrl     form.Control
	title    string
	row, col int
}

// Layout implements form.Layout by recording placements in call order. The
// tea model walks the recorded tree for focus traversal and view rendering.
type Layout struct {
	strategy   form.Strategy
	horizontal bool // rows created by CreateRow render side by side
	cells      []cell
}

func (l *Layout) Strategy() form.Strategy { return l.strategy }

func (l *Layout) Append(ctrl form.Control) {
	l.cells = append(l.cells, cell{ctrl: ctrl})
}

func (l *Layout) AppendCell(row, col int, ctrl form.Control) {
	l.cells = append(l.cells, cell{ctrl: ctrl, row: row, col: col})
}

func (l *Layout) AppendPair(title string, ctrl form.Control) {
	l.cells = append(l.cells, cell{ctrl: ctrl, title: title})
}

func (l *Layout) Remove(ctrl form.Control) {
	kept := l.cells[:0]
	for _, c := range l.cells {
		if c.ctrl != ctrl {
			kept = append(kept, c)
		}
	}
	l.cells = kept
}

var _ form.Layout = (*Layout)(nil)

// visit walks every visible control in placement order, descending into
// container layouts, until fn returns false.
func (l *Layout) visit(fn func(ctrl form.Control, parent *Layout) bool) bool {
	for _, c := range l.cells {
		if !c.ctrl.Visible() {
			continue
		}
		if !fn(c.ctrl, l) {
			return false
		}
		if nested, ok := c.ctrl.(form.Container); ok {
			inner, ok := nested.Layout().(*Layout)
			if !ok {
				continue
			}
			if !inner.visit(fn) {
				return false
			}
		}
	}
	return true
}
