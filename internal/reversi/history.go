package reversi

// Flip is a square that changed owner because of a capture.
type Flip struct {
	Square        Square
	PreviousOwner int
}

// HistoryRecord holds everything needed to undo one applied move.
type HistoryRecord struct {
	Mover  int
	Placed Square
	Flips  []Flip

	// State of the game before the move was applied.
	turn    int
	opening bool
	done    bool
	outcome []int
}

// History is a stack of applied moves, most recent last.
type History struct {
	records []HistoryRecord
}

// Push appends a record.
func (h *History) Push(record HistoryRecord) {
	h.records = append(h.records, record)
}

// Pop removes and returns the most recent record.
func (h *History) Pop() (HistoryRecord, error) {
	if len(h.records) == 0 {
		return HistoryRecord{}, ErrEmptyHistory
	}

	last := h.records[len(h.records)-1]
	h.records = h.records[:len(h.records)-1]
	return last, nil
}

// Last returns the most recent record without removing it.
func (h *History) Last() (HistoryRecord, bool) {
	if len(h.records) == 0 {
		return HistoryRecord{}, false
	}
	return h.records[len(h.records)-1], true
}

// Len returns the number of records.
func (h *History) Len() int {
	return len(h.records)
}

// Reset drops all records.
func (h *History) Reset() {
	h.records = nil
}

// Moves returns the placed squares in the order they were played.
func (h *History) Moves() []Square {
	moves := make([]Square, len(h.records))
	for i, record := range h.records {
		moves[i] = record.Placed
	}
	return moves
}

// Clone returns a deep copy of the history.
func (h *History) Clone() *History {
	records := make([]HistoryRecord, len(h.records))
	for i, record := range h.records {
		records[i] = record.clone()
	}
	return &History{records: records}
}

func (r HistoryRecord) clone() HistoryRecord {
	flips := make([]Flip, len(r.Flips))
	copy(flips, r.Flips)
	r.Flips = flips

	if r.outcome != nil {
		outcome := make([]int, len(r.outcome))
		copy(outcome, r.outcome)
		r.outcome = outcome
	}

	return r
}
