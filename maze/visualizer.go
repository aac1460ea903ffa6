package maze

import (
	"fmt"
	"strings"
)

// Visualizer receives progress notifications from the generator and the
// solver. Nothing is read back from it.
type Visualizer interface {
	// NotifyCellChanged is called after a cell is created or its walls change.
	NotifyCellChanged(c *Cell)

	// NotifyMove is called when the solver steps from one cell to another;
	// undo is true when the step is being retracted.
	NotifyMove(from, to *Cell, undo bool)
}

// NopVisualizer discards every notification.
type NopVisualizer struct{}

// NotifyCellChanged implements Visualizer.
func (NopVisualizer) NotifyCellChanged(*Cell) {}

// NotifyMove implements Visualizer.
func (NopVisualizer) NotifyMove(*Cell, *Cell, bool) {}

// EventKind tells Recorder events apart.
type EventKind int

const (
	CellChanged EventKind = iota
	MoveForward
	MoveUndo
)

// Event is one recorded notification.
type Event struct {
	Kind  EventKind
	Cell  CellPosition // changed cell, or the move origin
	To    CellPosition // move destination; zero for CellChanged
	Walls uint8        // wall mask at the time of a CellChanged
}

// String formats the event for trace output.
func (e Event) String() string {
	switch e.Kind {
	case CellChanged:
		return fmt.Sprintf("cell %v walls=%04b", e.Cell, e.Walls)
	case MoveForward:
		return fmt.Sprintf("move %v -> %v", e.Cell, e.To)
	default:
		return fmt.Sprintf("undo %v -> %v", e.Cell, e.To)
	}
}

// Recorder keeps every notification in order.
type Recorder struct {
	Events []Event
}

// NotifyCellChanged implements Visualizer.
func (r *Recorder) NotifyCellChanged(c *Cell) {
	r.Events = append(r.Events, Event{Kind: CellChanged, Cell: c.pos, Walls: c.walls})
}

// NotifyMove implements Visualizer.
func (r *Recorder) NotifyMove(from, to *Cell, undo bool) {
	kind := MoveForward
	if undo {
		kind = MoveUndo
	}
	r.Events = append(r.Events, Event{Kind: kind, Cell: from.pos, To: to.pos})
}

// Count returns how many events of kind k were recorded.
func (r *Recorder) Count(k EventKind) int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == k {
			n++
		}
	}
	return n
}

// String renders the event log one event per line.
func (r *Recorder) String() string {
	var b strings.Builder
	for _, e := range r.Events {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}
