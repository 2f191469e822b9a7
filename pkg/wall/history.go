package wall

// history is the mutable matrix of (subject, object) accesses. Cells move
// from untouched to accessed exactly once per reset cycle; only reset moves
// them back.
type history struct {
	cells [][]bool
}

func newHistory(subjects, objects int) *history {
	cells := make([][]bool, subjects)
	for i := range cells {
		cells[i] = make([]bool, objects)
	}
	return &history{cells: cells}
}

func (h *history) reset() {
	for _, row := range h.cells {
		for i := range row {
			row[i] = false
		}
	}
}

func (h *history) accessed(subject Subject, object Object) bool {
	return h.cells[subject][object]
}

func (h *history) mark(subject Subject, object Object) {
	h.cells[subject][object] = true
}
