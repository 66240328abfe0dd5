package entity

// DefaultLogCapacity is the number of entries a mini statement keeps.
const DefaultLogCapacity = 5

// TxLog is a fixed-capacity list of transaction descriptions, oldest first.
// Adding past capacity drops the oldest entry.
type TxLog struct {
	entries  []string
	capacity int
}

// NewTxLog returns an empty log. Non-positive capacity means DefaultLogCapacity.
func NewTxLog(capacity int) *TxLog {
	if capacity < 1 {
		capacity = DefaultLogCapacity
	}

	return &TxLog{
		entries:  make([]string, 0, capacity),
		capacity: capacity,
	}
}

// Add appends an entry, evicting the oldest one when full.
func (l *TxLog) Add(entry string) {
	if len(l.entries) == l.capacity {
		copy(l.entries, l.entries[1:])
		l.entries[len(l.entries)-1] = entry
		return
	}

	l.entries = append(l.entries, entry)
}

// Entries returns a copy of the log, oldest first.
func (l *TxLog) Entries() []string {
	out := make([]string, len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *TxLog) Len() int { return len(l.entries) }

func (l *TxLog) Cap() int { return l.capacity }
