package framework

import "slices"

// Snapshot is a full copy of the engine state that history can restore
type Snapshot struct {
	Selectables Selectables
	State       State
	Data        *Store
	Cursor      Cursor
}

// History is a stack of snapshots, capacity is left to the caller
type History struct {
	saves []Snapshot
}

// Push appends a snapshot
func (h *History) Push(s Snapshot) {
	h.saves = append(h.saves, s)
}

// Pop removes and returns the newest snapshot
func (h *History) Pop() (Snapshot, bool) {
	if len(h.saves) == 0 {
		return Snapshot{}, false
	}
	last := len(h.saves) - 1
	s := h.saves[last]
	h.saves[last] = Snapshot{}
	h.saves = h.saves[:last]
	return s, true
}

// Remove removes and returns the snapshot at index i, oldest first
func (h *History) Remove(i int) (Snapshot, bool) {
	if i < 0 || i >= len(h.saves) {
		return Snapshot{}, false
	}
	s := h.saves[i]
	h.saves = slices.Delete(h.saves, i, i+1)
	return s, true
}

func (h *History) Len() int { return len(h.saves) }

func (h *History) Clear() { h.saves = nil }
